package domain

import "time"

const MessageIngestionCompleted = "ingestion_completed"

// IngestionMessage is published after every committed ingestion pass.
type IngestionMessage struct {
	Type       string    `json:"type"`
	RunID      string    `json:"run_id"`
	Eateries   int       `json:"eateries"`
	Events     int       `json:"events"`
	Categories int       `json:"categories"`
	Items      int       `json:"items"`
	Timestamp  time.Time `json:"timestamp"`
}
