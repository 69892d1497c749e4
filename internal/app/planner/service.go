// Package planner implements the per-user itinerary and its linked
// calendar events.
//
// The two lists live in one service because deletes cascade in both
// directions: at rest, a non-place itinerary entry and its mirrored event
// must both exist or both be absent.
package planner

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/roamplan/travel-planner-api/internal/domain"
	"github.com/roamplan/travel-planner-api/internal/platform/keylock"
	"github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

type Service struct {
	kv     kvstore.Store
	locks  *keylock.KeyedMutex
	logger *slog.Logger

	newEventID func() string
}

func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		kv:         kv,
		locks:      keylock.New(),
		logger:     logger,
		newEventID: uuid.NewString,
	}
}

// LoadItinerary returns the user's saved items. A missing or unreadable
// record reads as an empty list.
func (s *Service) LoadItinerary(ctx context.Context, username string) ([]domain.SavedItem, error) {
	raw, ok, err := s.kv.Get(ctx, kvstore.ItineraryKey(username))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.SavedItem{}, nil
	}
	var items []domain.SavedItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Error("unreadable itinerary record", "username", username, "err", err)
		return []domain.SavedItem{}, nil
	}
	if items == nil {
		items = []domain.SavedItem{}
	}
	return items, nil
}

// SaveItinerary replaces the user's saved-item list wholesale.
func (s *Service) SaveItinerary(ctx context.Context, username string, items []domain.SavedItem) error {
	if username == "" {
		return errNotLoggedIn()
	}
	unlock := s.locks.Lock(username)
	defer unlock()
	return s.saveItinerary(ctx, username, items)
}

// AddItem appends item unless an entry with the same (id, type) already
// exists; re-adding is a no-op. Non-place items are mirrored into the
// calendar as a same-id event, unless that event id is already taken.
func (s *Service) AddItem(ctx context.Context, username string, item domain.SavedItem) error {
	if username == "" {
		return errNotLoggedIn()
	}
	if item.ID == "" {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid item",
			Details: map[string]any{"id": "must be non-empty"},
		}
	}
	if !item.Type.Valid() {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid item",
			Details: map[string]any{"type": "must be one of flight, hotel, activity, place"},
		}
	}

	unlock := s.locks.Lock(username)
	defer unlock()

	items, err := s.LoadItinerary(ctx, username)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == item.ID && existing.Type == item.Type {
			return nil
		}
	}
	if err := s.saveItinerary(ctx, username, append(items, item)); err != nil {
		return err
	}

	if item.Type == domain.ItemTypePlace {
		return nil
	}
	events, err := s.LoadEvents(ctx, username)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if ev.ID == item.ID {
			return nil
		}
	}
	return s.saveEvents(ctx, username, append(events, mirrorEvent(item)))
}

// DeleteItem removes every entry with id, regardless of type, along with
// the mirrored calendar event. It returns the remaining items.
func (s *Service) DeleteItem(ctx context.Context, username, id string) ([]domain.SavedItem, error) {
	if username == "" {
		return nil, errNotLoggedIn()
	}
	unlock := s.locks.Lock(username)
	defer unlock()

	if err := s.deleteByIDLocked(ctx, username, id); err != nil {
		return nil, err
	}
	return s.LoadItinerary(ctx, username)
}

// LoadEvents returns the user's calendar events. A missing or unreadable
// record reads as an empty list.
func (s *Service) LoadEvents(ctx context.Context, username string) ([]domain.CustomEvent, error) {
	raw, ok, err := s.kv.Get(ctx, kvstore.CustomEventsKey(username))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.CustomEvent{}, nil
	}
	var events []domain.CustomEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.logger.Error("unreadable custom events record", "username", username, "err", err)
		return []domain.CustomEvent{}, nil
	}
	if events == nil {
		events = []domain.CustomEvent{}
	}
	return events, nil
}

// SaveEvents replaces the user's event list wholesale.
func (s *Service) SaveEvents(ctx context.Context, username string, events []domain.CustomEvent) error {
	if username == "" {
		return errNotLoggedIn()
	}
	unlock := s.locks.Lock(username)
	defer unlock()
	return s.saveEvents(ctx, username, events)
}

// AddEvent appends a user-created calendar event, generating an id when
// the caller supplies none. A duplicate id is rejected rather than
// silently doubled.
func (s *Service) AddEvent(ctx context.Context, username string, event domain.CustomEvent) (domain.CustomEvent, error) {
	if username == "" {
		return domain.CustomEvent{}, errNotLoggedIn()
	}
	if event.Title == "" {
		return domain.CustomEvent{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid event",
			Details: map[string]any{"title": "must be non-empty"},
		}
	}
	if event.ID == "" {
		event.ID = s.newEventID()
	}

	unlock := s.locks.Lock(username)
	defer unlock()

	events, err := s.LoadEvents(ctx, username)
	if err != nil {
		return domain.CustomEvent{}, err
	}
	for _, existing := range events {
		if existing.ID == event.ID {
			return domain.CustomEvent{}, &Error{
				Status:  409,
				Code:    "EVENT_ALREADY_EXISTS",
				Message: "an event with this id already exists",
			}
		}
	}
	if err := s.saveEvents(ctx, username, append(events, event)); err != nil {
		return domain.CustomEvent{}, err
	}
	return event, nil
}

// DeleteEvent removes the event with id and filters the same id out of the
// itinerary, keeping the two lists consistent. Deleting an absent id is a
// no-op.
func (s *Service) DeleteEvent(ctx context.Context, username, id string) error {
	if username == "" {
		return errNotLoggedIn()
	}
	unlock := s.locks.Lock(username)
	defer unlock()
	return s.deleteByIDLocked(ctx, username, id)
}

// deleteByIDLocked drops id from both lists. Caller holds the user lock.
func (s *Service) deleteByIDLocked(ctx context.Context, username, id string) error {
	items, err := s.LoadItinerary(ctx, username)
	if err != nil {
		return err
	}
	keptItems := make([]domain.SavedItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			keptItems = append(keptItems, it)
		}
	}
	if err := s.saveItinerary(ctx, username, keptItems); err != nil {
		return err
	}

	events, err := s.LoadEvents(ctx, username)
	if err != nil {
		return err
	}
	keptEvents := make([]domain.CustomEvent, 0, len(events))
	for _, ev := range events {
		if ev.ID != id {
			keptEvents = append(keptEvents, ev)
		}
	}
	return s.saveEvents(ctx, username, keptEvents)
}

func (s *Service) saveItinerary(ctx context.Context, username string, items []domain.SavedItem) error {
	if items == nil {
		items = []domain.SavedItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.ItineraryKey(username), string(raw))
}

func (s *Service) saveEvents(ctx context.Context, username string, events []domain.CustomEvent) error {
	if events == nil {
		events = []domain.CustomEvent{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.CustomEventsKey(username), string(raw))
}

// mirrorEvent builds the calendar entry for a non-place itinerary item:
// the airline for flights, the payload name otherwise.
func mirrorEvent(item domain.SavedItem) domain.CustomEvent {
	var probe struct {
		Airline     string `json:"airline"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	_ = json.Unmarshal(item.Data, &probe)

	title := probe.Name
	if item.Type == domain.ItemTypeFlight {
		title = probe.Airline
	}
	return domain.CustomEvent{
		ID:          item.ID,
		Title:       title,
		Description: probe.Description,
		Date:        dateOnly(item.Date),
	}
}

// dateOnly reduces an ISO-8601 timestamp to its date component. Strings
// that are not timestamps pass through unchanged.
func dateOnly(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}
