// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// EventSyncParams holds dependencies for the sync engine, injected by Fx.
type EventSyncParams struct {
	fx.In

	Accessor service.CredentialAccessor
	Gateway  service.EventGateway
	Photos   service.PhotoStore
	Config   *config.Config
	Logger   *slog.Logger
}

// eventSyncService implements usecase.EventSyncUsecase.
//
// generation increases on every principal change; any asynchronous result
// carrying an older generation is discarded. fetchSeq identifies the latest
// list request so an older fetch never overwrites a newer one. opSeq numbers
// per-event operations; applied records the last sequence merged for each
// event and deleted marks events removed locally.
type eventSyncService struct {
	accessor      service.CredentialAccessor
	gateway       service.EventGateway
	photos        service.PhotoStore
	validate      *validator.Validate
	upcomingLimit int
	logger        *slog.Logger

	mu          sync.Mutex
	started     bool
	stopped     bool
	unsubscribe func()
	bgCtx       context.Context
	cancelBg    context.CancelFunc
	fetches     sync.WaitGroup

	phase      usecase.SyncPhase
	principal  *entity.Principal
	events     []*entity.Event
	loading    bool
	refreshing bool
	creating   int
	lastErr    error

	generation uint64
	fetchSeq   uint64
	opSeq      uint64
	applied    map[entity.ID]uint64
	deleted    map[entity.ID]struct{}

	// commitSeq stamps every merged result; committed holds the stamp of the
	// last result merged per event. A fetch keeps the local version of any
	// event stamped after the fetch was issued.
	commitSeq uint64
	committed map[entity.ID]uint64

	// notifyMu orders listener callbacks; it is never held together with mu
	// while a listener runs.
	notifyMu sync.Mutex
	subs     map[int]func(usecase.SyncState)
	nextSub  int
}

// ticket is issued when an operation starts and checked when its result is merged.
type ticket struct {
	generation uint64
	seq        uint64
	principal  *entity.Principal
}

// NewEventSyncService is the constructor for the sync engine.
func NewEventSyncService(params EventSyncParams) usecase.EventSyncUsecase {
	return newEventSyncService(params.Accessor, params.Gateway, params.Photos,
		params.Config.Sync, params.Logger)
}

func newEventSyncService(
	accessor service.CredentialAccessor,
	gateway service.EventGateway,
	photos service.PhotoStore,
	cfg config.SyncConfig,
	logger *slog.Logger,
) *eventSyncService {
	bgCtx, cancel := context.WithCancel(context.Background())

	return &eventSyncService{
		accessor:      accessor,
		gateway:       gateway,
		photos:        photos,
		validate:      newValidator(),
		upcomingLimit: cfg.UpcomingLimit,
		logger:        logger,
		bgCtx:         bgCtx,
		cancelBg:      cancel,
		phase:         usecase.PhaseUninitialized,
		events:        []*entity.Event{},
		applied:       make(map[entity.ID]uint64),
		deleted:       make(map[entity.ID]struct{}),
		committed:     make(map[entity.ID]uint64),
		subs:          make(map[int]func(usecase.SyncState)),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start subscribes to principal changes.
func (srv *eventSyncService) Start(ctx context.Context) error {
	srv.mu.Lock()
	if srv.started {
		srv.mu.Unlock()

		return nil
	}
	if srv.stopped {
		srv.mu.Unlock()

		return errors.New("event sync engine already stopped")
	}
	srv.started = true
	srv.mu.Unlock()

	unsubscribe := srv.accessor.OnPrincipalChanged(srv.onPrincipalChanged)

	srv.mu.Lock()
	srv.unsubscribe = unsubscribe
	srv.mu.Unlock()

	srv.log(ctx).Info("Event sync engine started")

	return nil
}

// Stop unsubscribes from principal changes and waits for background fetches.
func (srv *eventSyncService) Stop() {
	srv.mu.Lock()
	if srv.stopped {
		srv.mu.Unlock()

		return
	}
	srv.stopped = true
	unsubscribe := srv.unsubscribe
	srv.unsubscribe = nil
	srv.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	srv.cancelBg()
	srv.fetches.Wait()

	srv.logger.Info("Event sync engine stopped")
}

// State returns a deep-copied snapshot.
func (srv *eventSyncService) State() usecase.SyncState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.snapshotLocked()
}

func (srv *eventSyncService) snapshotLocked() usecase.SyncState {
	events := make([]*entity.Event, 0, len(srv.events))
	for _, e := range srv.events {
		events = append(events, e.Clone())
	}

	return usecase.SyncState{
		Phase:      srv.phase,
		Principal:  srv.principal.Clone(),
		Events:     events,
		Loading:    srv.loading,
		Refreshing: srv.refreshing,
		Creating:   srv.creating > 0,
		LastError:  srv.lastErr,
	}
}

// Subscribe registers fn for state changes.
func (srv *eventSyncService) Subscribe(fn func(usecase.SyncState)) func() {
	srv.notifyMu.Lock()
	defer srv.notifyMu.Unlock()

	id := srv.nextSub
	srv.nextSub++
	srv.subs[id] = fn

	return func() {
		srv.notifyMu.Lock()
		defer srv.notifyMu.Unlock()
		delete(srv.subs, id)
	}
}

// notify delivers the current state to listeners. Callers must not hold mu.
func (srv *eventSyncService) notify() {
	srv.notifyMu.Lock()
	defer srv.notifyMu.Unlock()

	if len(srv.subs) == 0 {
		return
	}

	state := srv.State()
	for i := 0; i < srv.nextSub; i++ {
		if fn, ok := srv.subs[i]; ok {
			fn(state)
		}
	}
}

// Summary counts events and recipes and lists upcoming events.
func (srv *eventSyncService) Summary(now time.Time) entity.EventSummary {
	state := srv.State()

	return entity.Summarize(state.Events, now, srv.upcomingLimit)
}

// onPrincipalChanged handles a sign-in state transition. The recorded
// principal identifier is the only authority on whether cached events are
// still valid.
func (srv *eventSyncService) onPrincipalChanged(p *entity.Principal) {
	srv.mu.Lock()
	if srv.stopped {
		srv.mu.Unlock()

		return
	}

	if srv.phase != usecase.PhaseUninitialized && entity.SamePrincipal(srv.principal, p) {
		if p != nil {
			// Same account, possibly with new attributes.
			srv.principal = p.Clone()
		}
		srv.mu.Unlock()
		srv.notify()

		return
	}

	previous := srv.principal
	srv.generation++
	srv.events = []*entity.Event{}
	srv.applied = make(map[entity.ID]uint64)
	srv.deleted = make(map[entity.ID]struct{})
	srv.committed = make(map[entity.ID]uint64)
	srv.lastErr = nil
	srv.refreshing = false

	if p == nil {
		srv.phase = usecase.PhaseNoPrincipal
		srv.principal = nil
		srv.loading = false
		srv.mu.Unlock()

		srv.logger.Info("Principal signed out, cleared events",
			slog.String("previous", previous.ShortID()))
		srv.notify()

		return
	}

	srv.phase = usecase.PhaseLoading
	srv.principal = p.Clone()
	srv.loading = true
	srv.fetchSeq++
	t := ticket{generation: srv.generation, principal: p.Clone()}
	seq, mark := srv.fetchSeq, srv.commitSeq
	srv.fetches.Add(1)
	srv.mu.Unlock()

	srv.logger.Info("Principal changed, loading events",
		slog.String("previous", previous.ShortID()),
		slog.String("principal", p.ShortID()),
	)
	srv.notify()

	go func() {
		defer srv.fetches.Done()

		events, err := srv.listEvents(srv.bgCtx, t, true)
		srv.applyFetch(srv.bgCtx, t.generation, seq, mark, events, err)
	}()
}

// Refresh re-fetches events for the current principal. Current events stay
// visible while the request is in flight and after it fails. A refresh
// requested while another fetch is running is a no-op.
func (srv *eventSyncService) Refresh(ctx context.Context) error {
	srv.mu.Lock()
	if srv.principal == nil {
		srv.mu.Unlock()

		return domainerrors.ErrNotAuthenticated
	}
	if srv.loading || srv.refreshing {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Refresh already in flight")

		return nil
	}

	srv.refreshing = true
	srv.fetchSeq++
	t := ticket{generation: srv.generation, principal: srv.principal.Clone()}
	seq, mark := srv.fetchSeq, srv.commitSeq
	srv.mu.Unlock()
	srv.notify()

	srv.log(ctx).Info("Manual refresh requested")

	events, err := srv.listEvents(ctx, t, true)

	return srv.applyFetch(ctx, t.generation, seq, mark, events, err)
}

func (srv *eventSyncService) listEvents(ctx context.Context, t ticket, force bool) ([]*entity.Event, error) {
	return withCredential(ctx, srv, t, force, func(ctx context.Context, cred service.Credential) ([]*entity.Event, error) {
		return srv.gateway.ListEvents(ctx, cred)
	})
}

// applyFetch merges a list result. A result from an older generation or
// superseded by a newer fetch is dropped. Events with a result merged after
// the fetch was issued keep their local version, whenever that operation began.
func (srv *eventSyncService) applyFetch(
	ctx context.Context,
	gen, seq, mark uint64,
	events []*entity.Event,
	fetchErr error,
) error {
	srv.mu.Lock()

	if gen != srv.generation {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Discarding events fetched for a previous principal")

		return domainerrors.ErrPrincipalChanged
	}
	if seq != srv.fetchSeq {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Discarding superseded events fetch")

		return nil
	}

	srv.phase = usecase.PhaseReady
	srv.loading = false
	srv.refreshing = false
	principal := srv.principal

	if fetchErr != nil {
		// Current events stay as they are: empty after a principal change,
		// the previous list after a failed refresh.
		srv.lastErr = fetchErr
		srv.mu.Unlock()

		srv.log(ctx).Error("Failed to fetch events",
			slog.String("principal", principal.ShortID()),
			slog.Any("error", fetchErr),
		)
		srv.notify()

		return fetchErr
	}

	srv.events = srv.mergeFetchedLocked(events, mark)
	srv.lastErr = nil
	count := len(srv.events)
	srv.mu.Unlock()

	srv.log(ctx).Info("Events loaded",
		slog.String("principal", principal.ShortID()),
		slog.Int("count", count),
	)
	srv.notify()

	return nil
}

func (srv *eventSyncService) mergeFetchedLocked(fetched []*entity.Event, mark uint64) []*entity.Event {
	touched := func(id entity.ID) bool {
		return srv.committed[id] > mark
	}

	local := make(map[entity.ID]*entity.Event, len(srv.events))
	for _, e := range srv.events {
		local[e.ID] = e
	}

	merged := make([]*entity.Event, 0, len(fetched))
	seen := make(map[entity.ID]struct{}, len(fetched))
	for _, e := range fetched {
		if e == nil || e.ID == "" {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}

		if touched(e.ID) {
			if _, gone := srv.deleted[e.ID]; gone {
				continue
			}
			if mine, ok := local[e.ID]; ok {
				merged = append(merged, mine)

				continue
			}
		}

		e = e.Clone()
		e.NormalizeRecipes()
		merged = append(merged, e)
	}

	// Events created after the fetch was issued.
	for _, e := range srv.events {
		if _, ok := seen[e.ID]; !ok && touched(e.ID) {
			merged = append(merged, e)
		}
	}

	return merged
}

// CreateEvent creates an event and, when a photo is staged, uploads it under
// the new event's identifier and attaches its URL with a follow-up update.
// A photo failure never undoes the creation; it is reported in PhotoErr.
func (srv *eventSyncService) CreateEvent(
	ctx context.Context,
	draft *entity.EventDraft,
	photo *service.PhotoFile,
) (*usecase.CreateEventResult, error) {
	draft = normalizeDraft(draft)
	if err := validateDraft(srv.validate, draft); err != nil {
		return nil, err
	}
	if photo != nil {
		if err := srv.photos.Validate(photo); err != nil {
			return nil, err
		}
	}

	t, _, err := srv.begin("", false)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	srv.creating++
	srv.mu.Unlock()
	srv.notify()
	defer func() {
		srv.mu.Lock()
		srv.creating--
		srv.mu.Unlock()
		srv.notify()
	}()

	created, err := withCredential(ctx, srv, t, false, func(ctx context.Context, cred service.Credential) (*entity.Event, error) {
		return srv.gateway.CreateEvent(ctx, cred, draft)
	})
	if err != nil {
		return nil, srv.fail(ctx, "create event", err)
	}
	created.NormalizeRecipes()

	if err := srv.commit(t, created.ID, func() {
		if srv.indexLocked(created.ID) < 0 {
			srv.events = append(srv.events, created.Clone())
		}
	}); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.String("event_id", created.ID.String()))

	result := &usecase.CreateEventResult{Event: created}
	if photo == nil {
		return result, nil
	}

	// The event exists from here on, so every photo failure, a principal
	// change included, is reported through PhotoErr.
	withPhoto, photoErr := srv.attachPhoto(ctx, t, created, photo)
	if photoErr != nil {
		result.PhotoErr = photoErr

		return result, nil
	}
	result.Event = withPhoto

	return result, nil
}

// attachPhoto uploads photo for a freshly created event and records its URL.
func (srv *eventSyncService) attachPhoto(
	ctx context.Context,
	created ticket,
	event *entity.Event,
	photo *service.PhotoFile,
) (*entity.Event, error) {
	photoURL, err := srv.photos.Upload(ctx, photo, created.principal.ID, event.ID.String())
	if err != nil {
		srv.log(ctx).Warn("Event created without photo",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)

		return nil, asPhotoError(err)
	}

	t, _, err := srv.begin(event.ID, true)
	if err == nil && t.generation != created.generation {
		err = domainerrors.ErrPrincipalChanged
	}
	if err != nil {
		srv.photos.Delete(ctx, photoURL)
		if errors.IsAny(err, domainerrors.ErrNotAuthenticated, domainerrors.ErrEventNotFound) && srv.generationChanged(created) {
			err = domainerrors.ErrPrincipalChanged
		}

		return nil, err
	}

	patch := &entity.EventPatch{ImageURL: &photoURL}
	updated, err := withCredential(ctx, srv, t, false, func(ctx context.Context, cred service.Credential) (*entity.Event, error) {
		return srv.gateway.UpdateEvent(ctx, cred, event.ID, patch)
	})
	if err != nil {
		srv.photos.Delete(ctx, photoURL)
		srv.log(ctx).Warn("Failed to attach photo to event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)

		return nil, asPhotoError(err)
	}

	return srv.mergeUpdate(t, updated)
}

// UpdateEvent applies patch and, optionally, replaces the event photo. The
// server's fields win; the local recipe collection is left untouched.
func (srv *eventSyncService) UpdateEvent(
	ctx context.Context,
	id entity.ID,
	patch *entity.EventPatch,
	photo *service.PhotoFile,
) (*usecase.UpdateEventResult, error) {
	patch = normalizePatch(patch)
	if err := validatePatch(srv.validate, patch); err != nil {
		return nil, err
	}
	if photo != nil {
		if err := srv.photos.Validate(photo); err != nil {
			return nil, err
		}
	}

	t, current, err := srv.begin(id, true)
	if err != nil {
		return nil, err
	}

	result := &usecase.UpdateEventResult{Event: current}
	var newPhotoURL string
	if photo != nil {
		newPhotoURL, err = srv.photos.Upload(ctx, photo, t.principal.ID, id.String())
		if err != nil {
			srv.log(ctx).Warn("Updating event without new photo",
				slog.String("event_id", id.String()),
				slog.Any("error", err),
			)
			result.PhotoErr = asPhotoError(err)
			newPhotoURL = ""
		} else {
			patch.ImageURL = &newPhotoURL
		}
	}

	if patch.IsEmpty() {
		return result, nil
	}

	updated, err := withCredential(ctx, srv, t, false, func(ctx context.Context, cred service.Credential) (*entity.Event, error) {
		return srv.gateway.UpdateEvent(ctx, cred, id, patch)
	})
	if err != nil {
		if newPhotoURL != "" {
			srv.photos.Delete(ctx, newPhotoURL)
		}

		return nil, srv.fail(ctx, "update event", notFoundAsEventGone(err))
	}

	merged, err := srv.mergeUpdate(t, updated)
	if err != nil {
		return nil, err
	}
	result.Event = merged

	if newPhotoURL != "" && current.ImageURL != "" && current.ImageURL != newPhotoURL {
		srv.photos.Delete(ctx, current.ImageURL)
	}

	srv.log(ctx).Info("Event updated", slog.String("event_id", id.String()))

	return result, nil
}

// mergeUpdate folds an update response into the local event.
func (srv *eventSyncService) mergeUpdate(t ticket, updated *entity.Event) (*entity.Event, error) {
	var merged *entity.Event
	err := srv.commit(t, updated.ID, func() {
		i := srv.indexLocked(updated.ID)
		if i < 0 {
			return
		}
		local := srv.events[i]

		next := updated.Clone()
		next.Recipes = local.Clone().Recipes
		if next.CreatedAt == "" {
			next.CreatedAt = local.CreatedAt
		}
		srv.events[i] = next
		merged = next.Clone()
	})
	if err != nil {
		return nil, err
	}
	if merged == nil {
		// Superseded or removed meanwhile; report the server's view.
		merged = updated.Clone()
	}

	return merged, nil
}

// DeleteEvent releases the event photo, then deletes the event. The local
// collection changes only when the delete call succeeds.
func (srv *eventSyncService) DeleteEvent(ctx context.Context, id entity.ID) error {
	t, current, err := srv.begin(id, true)
	if err != nil {
		return err
	}

	if current.ImageURL != "" {
		srv.photos.Delete(ctx, current.ImageURL)
	}

	_, err = withCredential(ctx, srv, t, false, func(ctx context.Context, cred service.Credential) (struct{}, error) {
		return struct{}{}, srv.gateway.DeleteEvent(ctx, cred, id)
	})
	if err != nil {
		return srv.fail(ctx, "delete event", notFoundAsEventGone(err))
	}

	if err := srv.commit(t, id, func() {
		if i := srv.indexLocked(id); i >= 0 {
			srv.events = append(srv.events[:i], srv.events[i+1:]...)
		}
		srv.deleted[id] = struct{}{}
	}); err != nil {
		return err
	}

	srv.log(ctx).Info("Event deleted", slog.String("event_id", id.String()))

	return nil
}

// AddRecipe attaches recipe to the event and replaces the local event with
// the server's representation.
func (srv *eventSyncService) AddRecipe(ctx context.Context, eventID entity.ID, recipe *entity.Recipe) (*entity.Event, error) {
	if recipe == nil || recipe.ID == "" {
		return nil, domainerrors.NewValidationError("recipe id is required")
	}

	t, current, err := srv.begin(eventID, true)
	if err != nil {
		return nil, err
	}
	if current.HasRecipe(recipe.ID) {
		return nil, domainerrors.ErrRecipeAlreadyAdded
	}

	updated, err := withCredential(ctx, srv, t, false, func(ctx context.Context, cred service.Credential) (*entity.Event, error) {
		return srv.gateway.AddRecipe(ctx, cred, eventID, recipe)
	})
	if err != nil {
		if domainerrors.IsAPIStatus(err, http.StatusConflict) {
			return nil, errors.Join(domainerrors.ErrRecipeAlreadyAdded, err)
		}

		return nil, srv.fail(ctx, "add recipe", notFoundAsEventGone(err))
	}

	out, err := srv.replace(t, updated)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Recipe added to event",
		slog.String("event_id", eventID.String()),
		slog.String("recipe_id", recipe.ID),
	)

	return out, nil
}

// RemoveRecipe detaches a recipe and replaces the local event with the
// server's representation.
func (srv *eventSyncService) RemoveRecipe(ctx context.Context, eventID entity.ID, recipeID string) (*entity.Event, error) {
	if recipeID == "" {
		return nil, domainerrors.NewValidationError("recipe id is required")
	}

	t, current, err := srv.begin(eventID, true)
	if err != nil {
		return nil, err
	}
	if !current.HasRecipe(recipeID) {
		return nil, domainerrors.ErrRecipeNotInEvent
	}

	updated, err := withCredential(ctx, srv, t, false, func(ctx context.Context, cred service.Credential) (*entity.Event, error) {
		return srv.gateway.RemoveRecipe(ctx, cred, eventID, recipeID)
	})
	if err != nil {
		return nil, srv.fail(ctx, "remove recipe", notFoundAsEventGone(err))
	}

	out, err := srv.replace(t, updated)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Recipe removed from event",
		slog.String("event_id", eventID.String()),
		slog.String("recipe_id", recipeID),
	)

	return out, nil
}

// replace swaps the local event for the server's representation.
func (srv *eventSyncService) replace(t ticket, updated *entity.Event) (*entity.Event, error) {
	updated.NormalizeRecipes()
	if err := srv.commit(t, updated.ID, func() {
		if i := srv.indexLocked(updated.ID); i >= 0 {
			srv.events[i] = updated.Clone()
		}
	}); err != nil {
		return nil, err
	}

	return updated.Clone(), nil
}

// begin records the start of an operation. When id is set and requireKnown
// is true the event must be present locally; a copy of it is returned.
func (srv *eventSyncService) begin(id entity.ID, requireKnown bool) (ticket, *entity.Event, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.principal == nil {
		return ticket{}, nil, domainerrors.ErrNotAuthenticated
	}

	var current *entity.Event
	if id != "" {
		if i := srv.indexLocked(id); i >= 0 {
			current = srv.events[i].Clone()
		}
		if current == nil && requireKnown {
			return ticket{}, nil, domainerrors.ErrEventNotFound
		}
	}

	srv.opSeq++

	return ticket{
		generation: srv.generation,
		seq:        srv.opSeq,
		principal:  srv.principal.Clone(),
	}, current, nil
}

// commit runs mutate under the lock unless the principal changed since t was
// issued. A result older than the last one applied to the same event is
// dropped without error.
func (srv *eventSyncService) commit(t ticket, id entity.ID, mutate func()) error {
	srv.mu.Lock()
	if t.generation != srv.generation {
		srv.mu.Unlock()

		return domainerrors.ErrPrincipalChanged
	}
	if last := srv.applied[id]; last > t.seq {
		srv.mu.Unlock()
		srv.logger.Debug("Discarding stale event result",
			slog.String("event_id", id.String()),
			slog.Uint64("seq", t.seq),
			slog.Uint64("applied", last),
		)

		return nil
	}

	srv.applied[id] = t.seq
	srv.commitSeq++
	srv.committed[id] = srv.commitSeq
	srv.lastErr = nil
	mutate()
	srv.mu.Unlock()

	srv.notify()

	return nil
}

// fail records err as the last error and returns it.
func (srv *eventSyncService) fail(ctx context.Context, op string, err error) error {
	// The state now belongs to another principal.
	if errors.Is(err, domainerrors.ErrPrincipalChanged) {
		srv.log(ctx).Info("Event operation abandoned", slog.String("op", op))

		return err
	}

	srv.mu.Lock()
	srv.lastErr = err
	srv.mu.Unlock()

	srv.log(ctx).Error("Event operation failed", slog.String("op", op), slog.Any("error", err))
	srv.notify()

	return err
}

func (srv *eventSyncService) indexLocked(id entity.ID) int {
	for i, e := range srv.events {
		if e.ID == id {
			return i
		}
	}

	return -1
}

// withCredential runs call with a bearer credential issued to the principal
// t was issued for. A 401 from the events API forces a credential refresh and
// retries the call once.
func withCredential[T any](
	ctx context.Context,
	srv *eventSyncService,
	t ticket,
	force bool,
	call func(ctx context.Context, cred service.Credential) (T, error),
) (T, error) {
	var zero T

	cred, err := srv.credentialFor(ctx, t, force)
	if err != nil {
		return zero, err
	}

	out, err := call(ctx, cred)
	if err == nil || !domainerrors.IsAPIStatus(err, http.StatusUnauthorized) {
		return out, err
	}

	srv.log(ctx).Warn("Events API rejected credential, refreshing", slog.Any("error", err))

	cred, err = srv.credentialFor(ctx, t, true)
	if err != nil {
		return zero, err
	}

	return call(ctx, cred)
}

// credentialFor fetches a credential and refuses it when the signed-in
// principal is no longer the one t was issued for. The accessor switches its
// principal before notifying, so a token for a new account is never paired
// with an old ticket.
func (srv *eventSyncService) credentialFor(ctx context.Context, t ticket, force bool) (service.Credential, error) {
	cred, err := srv.accessor.GetCredential(ctx, force)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotAuthenticated) && srv.generationChanged(t) {
			return "", domainerrors.ErrPrincipalChanged
		}

		return "", err
	}

	if !entity.SamePrincipal(srv.accessor.CurrentPrincipal(), t.principal) || srv.generationChanged(t) {
		srv.log(ctx).Warn("Principal changed before the request was sent",
			slog.String("principal", t.principal.ShortID()))

		return "", domainerrors.ErrPrincipalChanged
	}

	return cred, nil
}

func (srv *eventSyncService) generationChanged(t ticket) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.generation != t.generation
}

func notFoundAsEventGone(err error) error {
	if domainerrors.IsAPIStatus(err, http.StatusNotFound) {
		return errors.Join(domainerrors.ErrEventNotFound, err)
	}

	return err
}

func asPhotoError(err error) error {
	if errors.IsAny(err, domainerrors.ErrPhotoStoreFailed, domainerrors.ErrValidationFailed, domainerrors.ErrPrincipalChanged) {
		return err
	}

	return errors.Join(domainerrors.ErrPhotoStoreFailed, err)
}
