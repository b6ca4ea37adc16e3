package models

// Quest is a finishing technique suggested for one plan slot.
type Quest struct {
	ID          string `json:"id"`
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
