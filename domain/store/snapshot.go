package store

import (
	"errors"
	"time"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
)

// ErrNotFound is returned when no snapshot matches a lookup.
var ErrNotFound = errors.New("store: snapshot not found")

// Snapshot is a saved copy of one module's engine parameters.
type Snapshot struct {
	ID        string             `json:"id"`
	Module    beauty.Module      `json:"module"`
	Template  string             `json:"template"`
	Floats    map[string]float64 `json:"floats,omitempty"`
	Ints      map[string]int     `json:"ints,omitempty"`
	Areas     map[int]int        `json:"areas,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// Len returns the number of stored values.
func (s Snapshot) Len() int {
	return len(s.Floats) + len(s.Ints) + len(s.Areas)
}
