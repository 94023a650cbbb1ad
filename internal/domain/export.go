package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per item, with packing and
// category fields repeated for every item. Categories with no items yield
// one row with zero item fields; packings with no categories yield one row
// with zero category and item fields.
type ExportRow struct {
	// Packing fields — repeated for every row of the packing.
	PackingID       string `json:"packing_id"`
	PackingTitle    string `json:"packing_title"`
	PackingLocation string `json:"packing_location"`
	StartDate       string `json:"start_date"` // "2006-01-02" formatted date
	EndDate         string `json:"end_date"`
	Color           string `json:"color"`

	// Category fields — zero values when the packing has no categories.
	CategoryTitle  string `json:"category_title,omitempty"`
	CategorySymbol string `json:"category_symbol,omitempty"`

	// Item fields — ItemDone is nil when the row carries no item.
	ItemTitle string `json:"item_title,omitempty"`
	ItemDone  *bool  `json:"item_done,omitempty"`
}
