package models

import "time"

// Presentation is a generated slide deck. Markdown holds the slides
// separated by "---" dividers; SlideCount is derived on save.
type Presentation struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Topic      string    `json:"topic"`
	Markdown   string    `json:"markdown"`
	Theme      string    `json:"theme"`
	SlideCount int       `json:"slide_count"`
	AIProvider string    `json:"ai_provider"`
	AIModel    string    `json:"ai_model"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
