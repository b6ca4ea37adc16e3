package constants

import "time"

const (
	AppName           = "mealweek"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/mealweek/config.yaml"
	DefaultStorePath  = "~/.config/mealweek/mealweek.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PlanNamespace prefixes every persisted week plan key: <namespace>.<weekKey>
	PlanNamespace = "mealweek.weekPlan"

	// SlotCount is the fixed number of picks in a week plan.
	SlotCount = 3

	// MinPoolSize is the smallest candidate pool that can fill every slot.
	MinPoolSize = SlotCount

	// Diversity score weights and tie-break bounds
	CuisineWeight  = 3
	ProteinWeight  = 2
	SpiceWeight    = 1
	TieBreakJitter = 0.01
	TieTolerance   = 1e-3

	// AnimationDelay is how long transient UI flags stay set.
	AnimationDelay = 900 * time.Millisecond

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mealweek-"
)

// Batch sizes understood by the catalog.
const (
	BatchStandard = "2"
	BatchHalf     = "1"
)
