package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a named, iconized section of a packing list
// (e.g. "Clothing"). Items belong to a category.
//
// Open records whether the section is expanded in the UI. It is view state
// that lives on the entity so it survives restarts, matching the behavior
// users expect from the app.
type Category struct {
	ID        uuid.UUID `json:"id"`
	PackingID uuid.UUID `json:"packing_id"`
	Title     string    `json:"title"`
	Symbol    string    `json:"symbol"`
	Open      bool      `json:"open"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySymbols is the fixed catalog of icons a user can pick from when
// authoring a category. Template-seeded categories use their template's icon,
// which is also drawn from this set.
var CategorySymbols = []string{
	"tv", "airplane", "book", "tshirt", "shoe", "comb", "backpack", "dumbbell", "basketball",
	"camera", "bag", "creditcard", "hammer", "suitcase", "puzzlepiece", "powerplug", "toilet",
	"key", "pill", "hanger", "binoculars", "car", "gamecontroller", "lightrail", "ferry",
	"truck.box", "bicycle", "house", "heart", "scissors", "ear", "envelope", "umbrella",
}
