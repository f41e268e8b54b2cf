// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
	"planner/internal/domain/service"
)

// SyncPhase is the engine's position in its principal lifecycle.
type SyncPhase string

const (
	PhaseUninitialized SyncPhase = "uninitialized"
	PhaseNoPrincipal   SyncPhase = "no_principal"
	PhaseLoading       SyncPhase = "loading"
	PhaseReady         SyncPhase = "ready"
)

// SyncState is a snapshot of the engine's local state. Snapshots are deep
// copies; mutating them never affects the engine.
type SyncState struct {
	Phase      SyncPhase
	Principal  *entity.Principal
	Events     []*entity.Event
	Loading    bool
	Refreshing bool
	Creating   bool
	LastError  error
}

// FindEvent returns the event with the given identifier from the snapshot.
func (s SyncState) FindEvent(id entity.ID) *entity.Event {
	for _, e := range s.Events {
		if e.ID == id {
			return e
		}
	}

	return nil
}

// --- Output DTOs ---

// CreateEventResult reports a created event. PhotoErr is set when the event
// exists but its photo could not be stored, including when the principal
// changed before the photo was attached.
type CreateEventResult struct {
	Event    *entity.Event
	PhotoErr error
}

// PhotoMissing reports whether a staged photo failed to attach.
func (r *CreateEventResult) PhotoMissing() bool {
	return r != nil && r.PhotoErr != nil
}

// UpdateEventResult reports an updated event. PhotoErr is set when the
// metadata was updated but the replacement photo could not be stored.
type UpdateEventResult struct {
	Event    *entity.Event
	PhotoErr error
}

// PhotoMissing reports whether a replacement photo failed to attach.
func (r *UpdateEventResult) PhotoMissing() bool {
	return r != nil && r.PhotoErr != nil
}

// EventSyncUsecase owns the signed-in principal's events and keeps them in
// step with the events API across sign-in, sign-out and account switches.
//
// Operations on different events may run concurrently. Operations on the
// same event should be issued one at a time by the caller; if they do race,
// a result older than one already applied for that event is discarded.
type EventSyncUsecase interface {
	// Start subscribes to principal changes; the first notification arrives before Start returns
	Start(ctx context.Context) error

	// Stop unsubscribes and waits for background fetches to finish
	Stop()

	// State returns a snapshot of the local state
	State() SyncState

	// Subscribe registers fn for state changes
	Subscribe(fn func(SyncState)) (unsubscribe func())

	// Refresh re-fetches events for the current principal, keeping the current ones visible meanwhile
	Refresh(ctx context.Context) error

	CreateEvent(ctx context.Context, draft *entity.EventDraft, photo *service.PhotoFile) (*CreateEventResult, error)
	UpdateEvent(ctx context.Context, id entity.ID, patch *entity.EventPatch, photo *service.PhotoFile) (*UpdateEventResult, error)
	DeleteEvent(ctx context.Context, id entity.ID) error
	AddRecipe(ctx context.Context, eventID entity.ID, recipe *entity.Recipe) (*entity.Event, error)
	RemoveRecipe(ctx context.Context, eventID entity.ID, recipeID string) (*entity.Event, error)

	// Summary counts events and recipes and lists upcoming events
	Summary(now time.Time) entity.EventSummary
}
