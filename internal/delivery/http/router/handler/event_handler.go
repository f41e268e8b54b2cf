package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	photoField          = "photo"
	photoMissingWarning = "The event was saved, but the photo could not be uploaded"
)

// EventHandler serves the signed-in principal's events.
type EventHandler struct {
	events  usecase.EventSyncUsecase
	recipes usecase.RecipeUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(events usecase.EventSyncUsecase, recipes usecase.RecipeUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		events:  events,
		recipes: recipes,
		logger:  logger,
		now:     time.Now,
	}
}

// ErrorView is the last failure the engine recorded.
type ErrorView struct {
	Kind    domainerrors.Kind `json:"kind"`
	Message string            `json:"message"`
}

// EventStateResponse is the engine state as shown to the UI.
type EventStateResponse struct {
	Phase      usecase.SyncPhase  `json:"phase"`
	Principal  *PrincipalResponse `json:"principal,omitempty"`
	Events     []*entity.Event    `json:"events"`
	Loading    bool               `json:"loading"`
	Refreshing bool               `json:"refreshing"`
	Creating   bool               `json:"creating"`
	LastError  *ErrorView         `json:"last_error,omitempty"`
}

func toStateResponse(state usecase.SyncState) EventStateResponse {
	out := EventStateResponse{
		Phase:      state.Phase,
		Principal:  toPrincipalResponse(state.Principal),
		Events:     state.Events,
		Loading:    state.Loading,
		Refreshing: state.Refreshing,
		Creating:   state.Creating,
	}
	if out.Events == nil {
		out.Events = []*entity.Event{}
	}
	if state.LastError != nil {
		out.LastError = &ErrorView{
			Kind:    domainerrors.Classify(state.LastError),
			Message: domainerrors.UserMessage(state.LastError),
		}
	}

	return out
}

type addRecipeRequest struct {
	Recipe *entity.Recipe `json:"recipe"`
}

// List returns the current engine state.
func (h *EventHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, toStateResponse(h.events.State()), "")
}

// Summary returns event and recipe counts plus upcoming events.
func (h *EventHandler) Summary(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.events.Summary(h.now()), "")
}

// Refresh re-fetches events from the events API.
func (h *EventHandler) Refresh(c echo.Context) error {
	if err := h.events.Refresh(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStateResponse(h.events.State()), "Events refreshed")
}

// Create creates an event from JSON or a multipart form with an optional photo.
func (h *EventHandler) Create(c echo.Context) error {
	var draft entity.EventDraft
	var photo *service.PhotoFile

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return response.BindingError(c, "Invalid event form")
		}
		draft = entity.EventDraft{
			Title:       formValue(form, "title"),
			Date:        formValue(form, "date"),
			Location:    formValue(form, "location"),
			Description: formValue(form, "description"),
		}
		if photo, err = readPhoto(form); err != nil {
			return errors.WithStack(err)
		}
	} else if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "Invalid event input")
	}

	result, err := h.events.CreateEvent(c.Request().Context(), &draft, photo)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.PhotoMissing() {
		return response.PartialSuccess(c, http.StatusCreated, result.Event, "Event created", photoMissingWarning)
	}

	return response.Success(c, http.StatusCreated, result.Event, "Event created")
}

// Update applies the submitted fields and optionally replaces the photo.
func (h *EventHandler) Update(c echo.Context) error {
	patch := &entity.EventPatch{}
	var photo *service.PhotoFile

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return response.BindingError(c, "Invalid event form")
		}
		patch.Title = formPointer(form, "title")
		patch.Date = formPointer(form, "date")
		patch.Location = formPointer(form, "location")
		patch.Description = formPointer(form, "description")
		if photo, err = readPhoto(form); err != nil {
			return errors.WithStack(err)
		}
	} else if err := c.Bind(patch); err != nil {
		return response.BindingError(c, "Invalid event input")
	}

	// The photo URL is owned by the photo store.
	patch.ImageURL = nil

	result, err := h.events.UpdateEvent(c.Request().Context(), entity.ID(c.Param("id")), patch, photo)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.PhotoMissing() {
		return response.PartialSuccess(c, http.StatusOK, result.Event, "Event updated", photoMissingWarning)
	}

	return response.Success(c, http.StatusOK, result.Event, "Event updated")
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.events.DeleteEvent(c.Request().Context(), entity.ID(c.Param("id"))); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted")
}

// AddRecipe attaches a recipe. A recipe given only by id is completed from
// the catalog first.
func (h *EventHandler) AddRecipe(c echo.Context) error {
	var input addRecipeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid recipe input")
	}
	if input.Recipe == nil || input.Recipe.ID == "" {
		return domainerrors.NewValidationError("recipe.idMeal is required")
	}

	ctx := c.Request().Context()
	recipe, err := h.recipes.Resolve(ctx, input.Recipe)
	if err != nil {
		return errors.WithStack(err)
	}

	event, err := h.events.AddRecipe(ctx, entity.ID(c.Param("id")), recipe)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Recipe added to event")
}

// RemoveRecipe detaches a recipe.
func (h *EventHandler) RemoveRecipe(c echo.Context) error {
	event, err := h.events.RemoveRecipe(c.Request().Context(), entity.ID(c.Param("id")), c.Param("recipeId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Recipe removed from event")
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}

	return ""
}

// formPointer distinguishes an absent field from an empty one.
func formPointer(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]

	return &v
}

func readPhoto(form *multipart.Form) (*service.PhotoFile, error) {
	files := form.File[photoField]
	if len(files) == 0 {
		return nil, nil
	}
	header := files[0]

	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded photo")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded photo")
	}

	return &service.PhotoFile{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
