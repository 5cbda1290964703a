package domain

import (
	"encoding/json"
	"time"
)

type EstimateKind string

const (
	KindLoad    EstimateKind = "load"
	KindCost    EstimateKind = "cost"
	KindSavings EstimateKind = "savings"
)

// EstimateRecord is one entry of the quote history shown to sales staff.
type EstimateRecord struct {
	ID        string          `json:"id" db:"id"`
	Kind      EstimateKind    `json:"kind" db:"kind"`
	Input     json.RawMessage `json:"input" db:"input"`
	Result    json.RawMessage `json:"result" db:"result"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
