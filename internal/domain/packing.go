// Package domain contains the core data types for the Pack Buddy application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, cli).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Packing represents a single trip and its packing list.
// A packing is the top-level aggregate; categories belong to a packing.
type Packing struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Color     Color     `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Nights returns the number of nights between StartDate and EndDate,
// truncated to whole days. A same-day trip has zero nights.
func (p Packing) Nights() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

// PredefinedLocations are the location suggestions offered when creating a
// packing. The location field itself is free text; these are hints only.
var PredefinedLocations = []string{
	"Beach", "City", "Mountain", "Forest", "Desert", "Countryside", "Island",
}
