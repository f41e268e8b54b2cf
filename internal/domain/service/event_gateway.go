package service

import (
	"context"

	"planner/internal/domain/entity"
)

// EventGateway is the remote events API. Implementations are stateless and
// never touch the planner's local state.
type EventGateway interface {
	// ListEvents returns every event owned by the credential's principal
	ListEvents(ctx context.Context, cred Credential) ([]*entity.Event, error)

	// CreateEvent creates an event and returns it with its server-assigned identifier
	CreateEvent(ctx context.Context, cred Credential, draft *entity.EventDraft) (*entity.Event, error)

	// UpdateEvent applies patch and returns the server's representation
	UpdateEvent(ctx context.Context, cred Credential, id entity.ID, patch *entity.EventPatch) (*entity.Event, error)

	// DeleteEvent removes the event
	DeleteEvent(ctx context.Context, cred Credential, id entity.ID) error

	// AddRecipe attaches recipe and returns the full updated event
	AddRecipe(ctx context.Context, cred Credential, eventID entity.ID, recipe *entity.Recipe) (*entity.Event, error)

	// RemoveRecipe detaches recipeID and returns the full updated event
	RemoveRecipe(ctx context.Context, cred Credential, eventID entity.ID, recipeID string) (*entity.Event, error)
}
