package models

import "time"

// Website is a generated single-page site. HTML is the full document
// produced by the generation upstream; Published gates public serving.
type Website struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	HTML      string    `json:"html"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
