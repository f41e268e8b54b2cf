package entity

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"planner/internal/errors"
)

// DateLayout is the calendar-date format events use on the wire.
const DateLayout = "2006-01-02"

// ID is an identifier assigned by a remote service. The events API has been
// observed returning both numeric and string identifiers, so decoding accepts
// either and normalises to a string.
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode string id")
		}
		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode numeric id")
	}
	*id = ID(n.String())

	return nil
}

// String returns the identifier as a string.
func (id ID) String() string {
	return string(id)
}

// Event is a user-owned planning unit such as a dinner party.
// The server filters events by owner, so the client trusts every event it
// receives to belong to the principal it asked for.
type Event struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	Location    string    `json:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	Recipes     []*Recipe `json:"recipes"`
}

// EventDraft carries the fields a user supplies when creating an event.
type EventDraft struct {
	Title       string `json:"title" validate:"required,max=200"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Location    string `json:"location,omitempty" validate:"max=300"`
	Description string `json:"description,omitempty" validate:"max=5000"`
}

// EventPatch carries an update; nil fields are left unchanged by the server.
type EventPatch struct {
	Title       *string `json:"title,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Clone returns a copy of p whose pointers do not alias p's.
func (p *EventPatch) Clone() *EventPatch {
	if p == nil {
		return &EventPatch{}
	}

	return &EventPatch{
		Title:       cloneString(p.Title),
		Date:        cloneString(p.Date),
		Location:    cloneString(p.Location),
		Description: cloneString(p.Description),
		ImageURL:    cloneString(p.ImageURL),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

// IsEmpty reports whether the patch changes nothing.
func (p *EventPatch) IsEmpty() bool {
	return p == nil || (p.Title == nil && p.Date == nil && p.Location == nil &&
		p.Description == nil && p.ImageURL == nil)
}

// Day parses the event date.
func (e *Event) Day() (time.Time, error) {
	day, err := time.Parse(DateLayout, strings.TrimSpace(e.Date))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "event %s has malformed date %q", e.ID, e.Date)
	}

	return day, nil
}

// FindRecipe returns the attached recipe with the given identifier.
func (e *Event) FindRecipe(recipeID string) *Recipe {
	for _, r := range e.Recipes {
		if r != nil && r.ID == recipeID {
			return r
		}
	}

	return nil
}

// HasRecipe reports whether recipeID is attached to the event.
func (e *Event) HasRecipe(recipeID string) bool {
	return e.FindRecipe(recipeID) != nil
}

// NormalizeRecipes drops nil entries and duplicate identifiers, keeping the
// first occurrence, and guarantees a non-nil slice.
func (e *Event) NormalizeRecipes() {
	seen := make(map[string]struct{}, len(e.Recipes))
	out := make([]*Recipe, 0, len(e.Recipes))
	for _, r := range e.Recipes {
		if r == nil {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	e.Recipes = out
}

// Clone returns a deep copy of e.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Recipes = make([]*Recipe, 0, len(e.Recipes))
	for _, r := range e.Recipes {
		cp.Recipes = append(cp.Recipes, r.Clone())
	}

	return &cp
}

// EventSummary is the dashboard view over a principal's events.
type EventSummary struct {
	TotalEvents  int      `json:"total_events"`
	TotalRecipes int      `json:"total_recipes"`
	Upcoming     []*Event `json:"upcoming"`
}

// Summarize counts events and attached recipes and lists the events dated
// today or later, soonest first. Events with malformed dates are counted but
// never listed as upcoming.
func Summarize(events []*Event, now time.Time, limit int) EventSummary {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	summary := EventSummary{TotalEvents: len(events), Upcoming: []*Event{}}
	type dated struct {
		event *Event
		day   time.Time
	}
	upcoming := make([]dated, 0, len(events))

	for _, e := range events {
		summary.TotalRecipes += len(e.Recipes)
		day, err := e.Day()
		if err != nil || day.Before(today) {
			continue
		}
		upcoming = append(upcoming, dated{event: e, day: day})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].day.Before(upcoming[j].day)
	})

	for i, d := range upcoming {
		if limit > 0 && i >= limit {
			break
		}
		summary.Upcoming = append(summary.Upcoming, d.event)
	}

	return summary
}
