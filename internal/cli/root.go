package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/mealweek/internal/backup"
	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/config"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/session"
	"github.com/julianstephens/mealweek/internal/spice"
	"github.com/julianstephens/mealweek/internal/storage"
	"github.com/julianstephens/mealweek/internal/utils"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config  string `help:"Config file path." type:"path" default:"~/.config/mealweek/config.yaml"`
	Store   string `help:"Plan store path (.json for a JSON file, :memory: for a throwaway run, SQLite otherwise)."`
	Catalog string `help:"Recipe catalog file (JSON or YAML). Defaults to the bundled recipes." type:"path"`
	Debug   bool   `help:"Log debug output to stderr."`
	Date    string `help:"Any date inside the week to work on (YYYY-MM-DD or 'today')." default:"today"`
}

type Context struct {
	Config     *config.Config
	ConfigPath string
	Store      storage.Store
	Plans      *storage.PlanStore
	Catalog    *catalog.Catalog
	Session    *session.Session
	Backups    *backup.Manager // nil for the in-memory store

	Out io.Writer
	In  io.Reader
}

// NewContext loads config, opens the store and catalog, and wires a session
// for the week selected by g.Date.
func NewContext(g Globals) (*Context, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.Store != "" {
		cfg.Store = g.Store
	}
	if g.Catalog != "" {
		cfg.Catalog = g.Catalog
	}
	cfg.Debug = cfg.Debug || g.Debug

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.ConfigDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	day, err := utils.ParseDate(g.Date, time.Now())
	if err != nil {
		return nil, err
	}
	clock := time.Now
	if g.Date != "" && g.Date != "today" {
		clock = func() time.Time { return day }
	}

	store, err := storage.Open(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	logger.Debug("store opened", "path", store.GetConfigPath(), "recipes", cat.Len())

	ctx := &Context{
		Config:     cfg,
		ConfigPath: g.Config,
		Store:      store,
		Plans:      storage.NewPlanStore(store, cfg.Namespace),
		Catalog:    cat,
		Out:        os.Stdout,
		In:         os.Stdin,
	}
	if store.GetConfigPath() != storage.MemoryPath {
		ctx.Backups = backup.NewManager(store.GetConfigPath())
	}
	ctx.Session = ctx.newSession(clock)
	return ctx, nil
}

func (c *Context) newSession(clock func() time.Time, opts ...planner.Option) *session.Session {
	p := planner.New(c.Catalog, c.Plans, opts...)
	sessionOpts := []session.Option{
		session.WithClock(clock),
		session.WithAnimationDelay(c.Config.AnimationDelay),
		session.WithFilters(c.Config.Filters),
	}
	if c.Backups != nil {
		sessionOpts = append(sessionOpts, session.WithBackups(c.Backups))
	}
	return session.New(p, c.Plans, c.Catalog, sessionOpts...)
}

func (c *Context) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(config.ExpandPath(path))
}

// FilterFlags are the constraint flags shared by generate, reshuffle and recipes.
type FilterFlags struct {
	Protein string `help:"Protein type (e.g. Chicken, Tofu) or 'all'."`
	Cuisine string `help:"Cuisine (e.g. Thai, Korean) or 'all'."`
	Spice   string `help:"Heat level: all, mild, medium or hot."`
}

func (f FilterFlags) set() bool {
	return f.Protein != "" || f.Cuisine != "" || f.Spice != ""
}

// over returns base with every flag that was given replacing its field.
func (f FilterFlags) over(base models.Constraints) (models.Constraints, error) {
	if f.Spice != "" && !slices.Contains(spice.Options(), strings.ToLower(f.Spice)) {
		return base, fmt.Errorf("invalid spice level %q (valid: %s)", f.Spice, strings.Join(spice.Options(), ", "))
	}
	if f.Protein != "" {
		base.Protein = f.Protein
	}
	if f.Cuisine != "" {
		base.Cuisine = f.Cuisine
	}
	if f.Spice != "" {
		base.Spice = strings.ToLower(f.Spice)
	}
	return base.Normalize(), nil
}

// pickIndex converts a 1-based pick number to a slot index.
func pickIndex(pick int) (int, error) {
	if pick < 1 || pick > constants.SlotCount {
		return 0, fmt.Errorf("pick must be between 1 and %d, got %d", constants.SlotCount, pick)
	}
	return pick - 1, nil
}
