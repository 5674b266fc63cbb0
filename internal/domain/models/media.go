package models

import "time"

// GeneratedImage records an image produced by the image upstream.
// URL points at the stored copy in Supabase Storage, not the upstream.
type GeneratedImage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID *string   `json:"project_id,omitempty"`
	Prompt    string    `json:"prompt"`
	Model     string    `json:"model"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// GeneratedAudio records a text-to-speech result.
type GeneratedAudio struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID *string   `json:"project_id,omitempty"`
	Text      string    `json:"text"`
	Voice     string    `json:"voice"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
