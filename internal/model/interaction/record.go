package interaction

import "time"

// Record persists one chat exchange for later review. Records are never updated.
type Record struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Culture   string    `json:"culture"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
}
