package domain

import "encoding/json"

// ItemType tags the payload carried by a SavedItem.
type ItemType string

const (
	ItemTypeFlight   ItemType = "flight"
	ItemTypeHotel    ItemType = "hotel"
	ItemTypeActivity ItemType = "activity"
	ItemTypePlace    ItemType = "place"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFlight, ItemTypeHotel, ItemTypeActivity, ItemTypePlace:
		return true
	}
	return false
}

// SavedItem is one itinerary entry. Data carries the provider payload as
// the client sent it; only the fields needed for event mirroring are
// probed, everything else round-trips untouched.
type SavedItem struct {
	ID   string          `json:"id"`
	Type ItemType        `json:"type"`
	Data json.RawMessage `json:"data"`
	Date string          `json:"date"` // ISO-8601 timestamp
}

// CustomEvent is a user-created calendar entry. Events mirrored from
// itinerary items share the item's id; that shared id is what the delete
// cascade keys on.
type CustomEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
}
