package model

import "time"

// SolveID uniquely identifies a solve record
type SolveID string

// SolveRecord is one persisted solve: the classified grid that was
// searched and the ranked words found on it.
type SolveRecord struct {
	ID        SolveID    `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Grid      [][]string `json:"grid"`
	Words     []Word     `json:"words"`
}
