package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"planner/config"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/domain/service"
	mockService "planner/internal/mocks/service"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeAccessor is a controllable credential accessor. Notifications are
// delivered synchronously in emission order.
type fakeAccessor struct {
	mu        sync.Mutex
	dispatch  sync.Mutex
	principal *entity.Principal
	subs      map[int]func(*entity.Principal)
	nextSub   int
	credErrs  []error
	credGates []*gate
	forced    []bool
}

func newFakeAccessor() *fakeAccessor {
	return &fakeAccessor{subs: map[int]func(*entity.Principal){}}
}

func (a *fakeAccessor) CurrentPrincipal() *entity.Principal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.principal.Clone()
}

func (a *fakeAccessor) OnPrincipalChanged(fn func(*entity.Principal)) func() {
	a.dispatch.Lock()
	defer a.dispatch.Unlock()

	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	current := a.principal.Clone()
	a.mu.Unlock()

	fn(current)

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

func (a *fakeAccessor) emit(p *entity.Principal) {
	a.dispatch.Lock()
	defer a.dispatch.Unlock()

	a.mu.Lock()
	a.principal = p.Clone()
	subs := make([]func(*entity.Principal), 0, len(a.subs))
	for i := 0; i < a.nextSub; i++ {
		if fn, ok := a.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(p.Clone())
	}
}

func (a *fakeAccessor) failNextCredential(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credErrs = append(a.credErrs, err)
}

// holdNextCredential blocks the next GetCredential before it reads the
// principal.
func (a *fakeAccessor) holdNextCredential() *gate {
	a.mu.Lock()
	defer a.mu.Unlock()
	gt := &gate{entered: make(chan struct{}), release: make(chan struct{})}
	a.credGates = append(a.credGates, gt)

	return gt
}

func (a *fakeAccessor) forcedCalls() []bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]bool(nil), a.forced...)
}

func (a *fakeAccessor) GetCredential(_ context.Context, force bool) (service.Credential, error) {
	a.mu.Lock()
	var gt *gate
	if len(a.credGates) > 0 {
		gt = a.credGates[0]
		a.credGates = a.credGates[1:]
	}
	a.mu.Unlock()

	if gt != nil {
		close(gt.entered)
		<-gt.release
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.forced = append(a.forced, force)
	if a.principal == nil {
		return "", domainerrors.ErrNotAuthenticated
	}
	if len(a.credErrs) > 0 {
		err := a.credErrs[0]
		a.credErrs = a.credErrs[1:]

		return "", err
	}

	return service.Credential("tok-" + a.principal.ID), nil
}

// gate blocks one gateway call until released.
type gate struct {
	entered chan struct{}
	release chan struct{}
}

// fakeGateway is an in-memory events API keyed by the principal encoded in
// the credential.
type fakeGateway struct {
	mu     sync.Mutex
	nextID int
	events map[string][]*entity.Event
	errs   map[string][]error
	gates  map[string][]*gate
	calls  map[string]int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		events: map[string][]*entity.Event{},
		errs:   map[string][]error{},
		gates:  map[string][]*gate{},
		calls:  map[string]int{},
	}
}

func owner(cred service.Credential) string {
	return strings.TrimPrefix(string(cred), "tok-")
}

func (g *fakeGateway) seed(uid string, events ...*entity.Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range events {
		e.NormalizeRecipes()
		g.events[uid] = append(g.events[uid], e)
	}
}

func (g *fakeGateway) failNext(op string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errs[op] = append(g.errs[op], err)
}

func (g *fakeGateway) holdNext(op string) *gate {
	g.mu.Lock()
	defer g.mu.Unlock()
	gt := &gate{entered: make(chan struct{}), release: make(chan struct{})}
	g.gates[op] = append(g.gates[op], gt)

	return gt
}

func (g *fakeGateway) callCount(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.calls[op]
}

// enter records a call, waits on a pending gate and pops a queued error.
func (g *fakeGateway) enter(op string) error {
	g.mu.Lock()
	g.calls[op]++
	g.mu.Unlock()

	g.pause(op)

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.errs[op]) > 0 {
		err := g.errs[op][0]
		g.errs[op] = g.errs[op][1:]

		return err
	}

	return nil
}

// pause waits on a pending gate for op without recording a call.
func (g *fakeGateway) pause(op string) {
	g.mu.Lock()
	var gt *gate
	if len(g.gates[op]) > 0 {
		gt = g.gates[op][0]
		g.gates[op] = g.gates[op][1:]
	}
	g.mu.Unlock()

	if gt != nil {
		close(gt.entered)
		<-gt.release
	}
}

func (g *fakeGateway) find(uid string, id entity.ID) *entity.Event {
	for _, e := range g.events[uid] {
		if e.ID == id {
			return e
		}
	}

	return nil
}

func (g *fakeGateway) ListEvents(_ context.Context, cred service.Credential) ([]*entity.Event, error) {
	uid := owner(cred)
	if err := g.enter("list:" + uid); err != nil {
		return nil, err
	}

	g.mu.Lock()
	out := make([]*entity.Event, 0)
	for _, e := range g.events[uid] {
		out = append(out, e.Clone())
	}
	g.mu.Unlock()

	// "listed:<uid>" holds the response after the snapshot was taken.
	g.pause("listed:" + uid)

	return out, nil
}

func (g *fakeGateway) CreateEvent(_ context.Context, cred service.Credential, draft *entity.EventDraft) (*entity.Event, error) {
	if err := g.enter("create"); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	e := &entity.Event{
		ID:          entity.ID(fmt.Sprintf("e%d", g.nextID)),
		Title:       draft.Title,
		Date:        draft.Date,
		Location:    draft.Location,
		Description: draft.Description,
		CreatedAt:   "2025-11-01T10:00:00Z",
		Recipes:     []*entity.Recipe{},
	}
	uid := owner(cred)
	g.events[uid] = append(g.events[uid], e)

	return e.Clone(), nil
}

func (g *fakeGateway) UpdateEvent(_ context.Context, cred service.Credential, id entity.ID, patch *entity.EventPatch) (*entity.Event, error) {
	if err := g.enter("update"); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.find(owner(cred), id)
	if e == nil {
		return nil, domainerrors.NewAPIError("updateEvent", http.StatusNotFound, "Event not found")
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		e.ImageURL = *patch.ImageURL
	}

	// The update endpoint answers with the event fields only.
	out := e.Clone()
	out.Recipes = nil

	return out, nil
}

func (g *fakeGateway) DeleteEvent(_ context.Context, cred service.Credential, id entity.ID) error {
	if err := g.enter("delete"); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	uid := owner(cred)
	for i, e := range g.events[uid] {
		if e.ID == id {
			g.events[uid] = append(g.events[uid][:i], g.events[uid][i+1:]...)

			return nil
		}
	}

	return domainerrors.NewAPIError("deleteEvent", http.StatusNotFound, "Event not found")
}

func (g *fakeGateway) AddRecipe(_ context.Context, cred service.Credential, eventID entity.ID, recipe *entity.Recipe) (*entity.Event, error) {
	if err := g.enter("addRecipe"); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.find(owner(cred), eventID)
	if e == nil {
		return nil, domainerrors.NewAPIError("addRecipe", http.StatusNotFound, "Event not found")
	}
	if e.HasRecipe(recipe.ID) {
		return nil, domainerrors.NewAPIError("addRecipe", http.StatusConflict, "Recipe already added")
	}
	e.Recipes = append(e.Recipes, recipe.Clone())

	return e.Clone(), nil
}

func (g *fakeGateway) RemoveRecipe(_ context.Context, cred service.Credential, eventID entity.ID, recipeID string) (*entity.Event, error) {
	if err := g.enter("removeRecipe"); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.find(owner(cred), eventID)
	if e == nil {
		return nil, domainerrors.NewAPIError("removeRecipe", http.StatusNotFound, "Event not found")
	}
	kept := make([]*entity.Recipe, 0, len(e.Recipes))
	for _, r := range e.Recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	e.Recipes = kept

	return e.Clone(), nil
}

type engineFixture struct {
	srv      *eventSyncService
	accessor *fakeAccessor
	gateway  *fakeGateway
	photos   *mockService.MockPhotoStore
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	f := &engineFixture{
		accessor: newFakeAccessor(),
		gateway:  newFakeGateway(),
		photos:   mockService.NewMockPhotoStore(t),
	}
	f.srv = newEventSyncService(f.accessor, f.gateway, f.photos,
		config.SyncConfig{UpcomingLimit: 3}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, f.srv.Start(context.Background()))
	t.Cleanup(f.srv.Stop)

	return f
}

func user(uid string) *entity.Principal {
	return &entity.Principal{ID: uid, Email: uid + "@example.com"}
}

func (f *engineFixture) signIn(t *testing.T, uid string) {
	t.Helper()

	f.accessor.emit(user(uid))
	f.waitReady(t, uid)
}

func (f *engineFixture) waitReady(t *testing.T, uid string) {
	t.Helper()

	require.Eventually(t, func() bool {
		state := f.srv.State()

		return state.Phase == usecase.PhaseReady && state.Principal != nil && state.Principal.ID == uid
	}, 2*time.Second, 5*time.Millisecond)
}

func eventIDs(state usecase.SyncState) []entity.ID {
	ids := make([]entity.ID, 0, len(state.Events))
	for _, e := range state.Events {
		ids = append(ids, e.ID)
	}

	return ids
}

func TestEventSync_StartWithoutPrincipal(t *testing.T) {
	f := newEngineFixture(t)

	state := f.srv.State()
	assert.Equal(t, usecase.PhaseNoPrincipal, state.Phase)
	assert.Nil(t, state.Principal)
	assert.Empty(t, state.Events)
	assert.False(t, state.Loading)
}

func TestEventSync_SignInLoadsEventsWithForcedCredential(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})

	f.signIn(t, "u1")

	state := f.srv.State()
	assert.Equal(t, []entity.ID{"a1"}, eventIDs(state))
	assert.NoError(t, state.LastError)
	assert.Equal(t, []bool{true}, f.accessor.forcedCalls())
}

func TestEventSync_ConcreteScenario(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.signIn(t, "u1")
	assert.Empty(t, f.srv.State().Events)

	created, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
	require.NoError(t, err)
	assert.False(t, created.PhotoMissing())

	state := f.srv.State()
	require.Len(t, state.Events, 1)
	e1 := state.Events[0]
	assert.Equal(t, entity.ID("e1"), e1.ID)
	assert.Equal(t, "Dinner", e1.Title)
	assert.Equal(t, "2025-12-01", e1.Date)
	assert.NotEmpty(t, e1.CreatedAt)
	assert.Empty(t, e1.Recipes)

	_, err = f.srv.AddRecipe(ctx, "e1", &entity.Recipe{ID: "r1", Name: "Soup"})
	require.NoError(t, err)

	e1 = f.srv.State().FindEvent("e1")
	require.Len(t, e1.Recipes, 1)
	assert.Equal(t, "r1", e1.Recipes[0].ID)
	assert.Equal(t, "Soup", e1.Recipes[0].Name)

	_, err = f.srv.RemoveRecipe(ctx, "e1", "r1")
	require.NoError(t, err)
	assert.Empty(t, f.srv.State().FindEvent("e1").Recipes)
}

func TestEventSync_SignOutThenOtherPrincipal(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "p1", Title: "u1 party", Date: "2025-12-01"})
	f.gateway.seed("u2", &entity.Event{ID: "p2", Title: "u2 party", Date: "2025-12-02"})

	var mu sync.Mutex
	var leaked []string
	f.srv.Subscribe(func(state usecase.SyncState) {
		if state.Principal != nil && state.Principal.ID == "u1" {
			return
		}
		for _, e := range state.Events {
			if strings.HasPrefix(e.Title, "u1") {
				mu.Lock()
				leaked = append(leaked, e.Title)
				mu.Unlock()
			}
		}
	})

	f.signIn(t, "u1")
	assert.Equal(t, []entity.ID{"p1"}, eventIDs(f.srv.State()))

	f.accessor.emit(nil)
	state := f.srv.State()
	assert.Equal(t, usecase.PhaseNoPrincipal, state.Phase)
	assert.Empty(t, state.Events)
	assert.NoError(t, state.LastError)

	f.signIn(t, "u2")
	assert.Equal(t, []entity.ID{"p2"}, eventIDs(f.srv.State()))

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, leaked)
}

func TestEventSync_LateResponseForPreviousPrincipalIsDiscarded(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "p1", Title: "u1 party", Date: "2025-12-01"})
	f.gateway.seed("u2", &entity.Event{ID: "p2", Title: "u2 party", Date: "2025-12-02"})

	held := f.gateway.holdNext("list:u1")
	f.accessor.emit(user("u1"))
	<-held.entered

	// Switching invalidates the collection before any fetch completes.
	f.accessor.emit(user("u2"))
	state := f.srv.State()
	assert.Equal(t, "u2", state.Principal.ID)
	assert.Empty(t, state.Events)

	f.waitReady(t, "u2")
	assert.Equal(t, []entity.ID{"p2"}, eventIDs(f.srv.State()))

	close(held.release)
	require.Eventually(t, func() bool {
		return f.gateway.callCount("list:u1") == 1
	}, time.Second, 5*time.Millisecond)

	// Stop waits for the u1 fetch to finish before the final check.
	f.srv.Stop()
	state = f.srv.State()
	assert.Equal(t, "u2", state.Principal.ID)
	assert.Equal(t, []entity.ID{"p2"}, eventIDs(state))
}

func TestEventSync_SamePrincipalNotificationDoesNotRefetch(t *testing.T) {
	f := newEngineFixture(t)
	f.signIn(t, "u1")

	renamed := user("u1")
	renamed.DisplayName = "Alice"
	f.accessor.emit(renamed)

	state := f.srv.State()
	assert.Equal(t, usecase.PhaseReady, state.Phase)
	assert.Equal(t, "Alice", state.Principal.DisplayName)
	assert.Equal(t, 1, f.gateway.callCount("list:u1"))
}

func TestEventSync_FetchFailureLeavesReadyWithError(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.failNext("list:u1", domainerrors.NewAPIError("listEvents", http.StatusInternalServerError, "boom"))

	f.signIn(t, "u1")

	state := f.srv.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Events)
	require.Error(t, state.LastError)
	assert.Equal(t, domainerrors.KindTransient, domainerrors.Classify(state.LastError))
}

func TestEventSync_RefreshIsIdempotentAndKeepsStaleOnFailure(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1",
		&entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"},
		&entity.Event{ID: "a2", Title: "Supper", Date: "2025-12-03"},
	)
	f.signIn(t, "u1")

	require.NoError(t, f.srv.Refresh(ctx))
	first := f.srv.State().Events
	require.NoError(t, f.srv.Refresh(ctx))
	assert.Equal(t, first, f.srv.State().Events)

	f.gateway.failNext("list:u1", errors.New("network down"))
	require.Error(t, f.srv.Refresh(ctx))

	state := f.srv.State()
	assert.Equal(t, []entity.ID{"a1", "a2"}, eventIDs(state))
	assert.Error(t, state.LastError)
	assert.False(t, state.Refreshing)
}

func TestEventSync_RefreshWithoutPrincipal(t *testing.T) {
	f := newEngineFixture(t)

	err := f.srv.Refresh(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestEventSync_RefreshKeepsEventsVisibleWhileInFlight(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	held := f.gateway.holdNext("list:u1")
	done := make(chan error, 1)
	go func() { done <- f.srv.Refresh(context.Background()) }()
	<-held.entered

	state := f.srv.State()
	assert.True(t, state.Refreshing)
	assert.Equal(t, []entity.ID{"a1"}, eventIDs(state))

	// A second refresh while one is running is coalesced.
	require.NoError(t, f.srv.Refresh(context.Background()))

	close(held.release)
	require.NoError(t, <-done)
	assert.False(t, f.srv.State().Refreshing)
}

func TestEventSync_CreateRequiresPrincipal(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.srv.CreateEvent(context.Background(), &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	assert.Equal(t, 0, f.gateway.callCount("create"))
}

func TestEventSync_CreateValidatesBeforeNetwork(t *testing.T) {
	f := newEngineFixture(t)
	f.signIn(t, "u1")

	_, err := f.srv.CreateEvent(context.Background(), &entity.EventDraft{Title: "   ", Date: "12/01/2025"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "title is required; date must be a date in YYYY-MM-DD format", domainerrors.UserMessage(err))
	assert.Equal(t, 0, f.gateway.callCount("create"))
}

func TestEventSync_CreateWithPhoto(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.signIn(t, "u1")

	photo := &service.PhotoFile{Name: "p.png", ContentType: "image/png", Data: []byte("png")}
	f.photos.EXPECT().Validate(photo).Return(nil)
	f.photos.EXPECT().Upload(mock.Anything, photo, "u1", "e1").Return("https://photos.test/u1/e1/1-event.jpg", nil)

	result, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, photo)
	require.NoError(t, err)
	assert.False(t, result.PhotoMissing())
	assert.Equal(t, "https://photos.test/u1/e1/1-event.jpg", result.Event.ImageURL)

	state := f.srv.State()
	require.Len(t, state.Events, 1)
	assert.Equal(t, "https://photos.test/u1/e1/1-event.jpg", state.Events[0].ImageURL)
	assert.NotNil(t, state.Events[0].Recipes)
	assert.False(t, state.Creating)
}

func TestEventSync_CreatePhotoFailureKeepsEvent(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.signIn(t, "u1")

	photo := &service.PhotoFile{ContentType: "image/png", Data: []byte("png")}
	f.photos.EXPECT().Validate(photo).Return(nil)
	f.photos.EXPECT().Upload(mock.Anything, photo, "u1", "e1").Return("", errors.New("bucket unavailable"))

	result, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, photo)
	require.NoError(t, err)
	require.True(t, result.PhotoMissing())
	assert.ErrorIs(t, result.PhotoErr, domainerrors.ErrPhotoStoreFailed)

	state := f.srv.State()
	require.Len(t, state.Events, 1)
	assert.Equal(t, "Dinner", state.Events[0].Title)
	assert.Empty(t, state.Events[0].ImageURL)
	assert.Equal(t, 0, f.gateway.callCount("update"))
}

func TestEventSync_CreatePhotoAfterPrincipalSwitchKeepsEvent(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.signIn(t, "u1")

	photo := &service.PhotoFile{ContentType: "image/png", Data: []byte("png")}
	photoURL := "https://photos.test/u1/e1/1-event.jpg"
	f.photos.EXPECT().Validate(photo).Return(nil)
	f.photos.EXPECT().Upload(mock.Anything, photo, "u1", "e1").
		Run(func(mock.Arguments) { f.accessor.emit(user("u2")) }).
		Return(photoURL, nil)
	f.photos.EXPECT().Delete(mock.Anything, photoURL).Return()

	result, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, photo)
	require.NoError(t, err)
	require.NotNil(t, result.Event)
	assert.Equal(t, entity.ID("e1"), result.Event.ID)
	assert.Empty(t, result.Event.ImageURL)
	require.True(t, result.PhotoMissing())
	assert.ErrorIs(t, result.PhotoErr, domainerrors.ErrPrincipalChanged)

	f.waitReady(t, "u2")
	assert.Empty(t, f.srv.State().Events)
	assert.Equal(t, 0, f.gateway.callCount("update"))
}

func TestEventSync_CreateFailureLeavesStateUnchanged(t *testing.T) {
	f := newEngineFixture(t)
	f.signIn(t, "u1")

	f.gateway.failNext("create", domainerrors.NewAPIError("createEvent", http.StatusBadRequest, "title missing"))

	_, err := f.srv.CreateEvent(context.Background(), &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.Classify(err))

	state := f.srv.State()
	assert.Empty(t, state.Events)
	assert.Error(t, state.LastError)
	assert.False(t, state.Creating)
}

func TestEventSync_CredentialUnavailableLeavesStateUnchanged(t *testing.T) {
	f := newEngineFixture(t)
	f.signIn(t, "u1")

	f.accessor.failNextCredential(domainerrors.ErrCredentialUnavailable)

	_, err := f.srv.CreateEvent(context.Background(), &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialUnavailable)
	assert.Empty(t, f.srv.State().Events)
	assert.Equal(t, 0, f.gateway.callCount("create"))
}

func TestEventSync_UnauthorizedRetriesOnceWithFreshCredential(t *testing.T) {
	f := newEngineFixture(t)
	f.signIn(t, "u1")

	f.gateway.failNext("create", domainerrors.NewAPIError("createEvent", http.StatusUnauthorized, "token expired"))

	_, err := f.srv.CreateEvent(context.Background(), &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, f.gateway.callCount("create"))
	assert.Equal(t, []bool{true, false, true}, f.accessor.forcedCalls())
	assert.Len(t, f.srv.State().Events, 1)
}

func TestEventSync_UpdateKeepsLocalRecipes(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1", &entity.Event{
		ID: "a1", Title: "Lunch", Date: "2025-12-01", Location: "Home",
		Recipes: []*entity.Recipe{{ID: "r1", Name: "Soup"}},
	})
	f.signIn(t, "u1")

	title := "Big Lunch"
	result, err := f.srv.UpdateEvent(ctx, "a1", &entity.EventPatch{Title: &title}, nil)
	require.NoError(t, err)
	assert.False(t, result.PhotoMissing())

	e := f.srv.State().FindEvent("a1")
	assert.Equal(t, "Big Lunch", e.Title)
	assert.Equal(t, "Home", e.Location)
	require.Len(t, e.Recipes, 1)
	assert.Equal(t, "r1", e.Recipes[0].ID)
	assert.Equal(t, e, result.Event)
}

func TestEventSync_UpdateReplacesPhoto(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01", ImageURL: "https://photos.test/old.jpg"})
	f.signIn(t, "u1")

	photo := &service.PhotoFile{ContentType: "image/jpeg", Data: []byte("jpg")}
	f.photos.EXPECT().Validate(photo).Return(nil)
	f.photos.EXPECT().Upload(mock.Anything, photo, "u1", "a1").Return("https://photos.test/new.jpg", nil)
	f.photos.EXPECT().Delete(mock.Anything, "https://photos.test/old.jpg").Return()

	result, err := f.srv.UpdateEvent(ctx, "a1", nil, photo)
	require.NoError(t, err)
	assert.Equal(t, "https://photos.test/new.jpg", result.Event.ImageURL)
	assert.Equal(t, "https://photos.test/new.jpg", f.srv.State().FindEvent("a1").ImageURL)
}

func TestEventSync_UpdateNotFound(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	title := "x"
	_, err := f.srv.UpdateEvent(context.Background(), "zz", &entity.EventPatch{Title: &title}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	assert.Equal(t, 0, f.gateway.callCount("update"))

	f.gateway.failNext("update", domainerrors.NewAPIError("updateEvent", http.StatusNotFound, "Event not found"))
	_, err = f.srv.UpdateEvent(context.Background(), "a1", &entity.EventPatch{Title: &title}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	assert.Equal(t, "Lunch", f.srv.State().FindEvent("a1").Title)
}

func TestEventSync_UpdateRejectsInvalidPatch(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	empty := " "
	_, err := f.srv.UpdateEvent(context.Background(), "a1", &entity.EventPatch{Title: &empty}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 0, f.gateway.callCount("update"))
}

func TestEventSync_StaleSameEventResultIsDiscarded(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	held := f.gateway.holdNext("update")
	first := "First"
	done := make(chan error, 1)
	go func() {
		_, err := f.srv.UpdateEvent(ctx, "a1", &entity.EventPatch{Title: &first}, nil)
		done <- err
	}()
	<-held.entered

	// The later operation completes first.
	_, err := f.srv.AddRecipe(ctx, "a1", &entity.Recipe{ID: "r1", Name: "Soup"})
	require.NoError(t, err)

	close(held.release)
	require.NoError(t, <-done)

	e := f.srv.State().FindEvent("a1")
	assert.Equal(t, "Lunch", e.Title)
	require.Len(t, e.Recipes, 1)
}

func TestEventSync_AddDuplicateRecipe(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	_, err := f.srv.AddRecipe(ctx, "a1", &entity.Recipe{ID: "r1", Name: "Soup"})
	require.NoError(t, err)

	_, err = f.srv.AddRecipe(ctx, "a1", &entity.Recipe{ID: "r1", Name: "Soup"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRecipeAlreadyAdded)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.Classify(err))

	assert.Len(t, f.srv.State().FindEvent("a1").Recipes, 1)
	assert.Equal(t, 1, f.gateway.callCount("addRecipe"))
}

func TestEventSync_AddRecipeServerConflict(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	f.gateway.failNext("addRecipe", domainerrors.NewAPIError("addRecipe", http.StatusConflict, "Recipe already added"))

	_, err := f.srv.AddRecipe(context.Background(), "a1", &entity.Recipe{ID: "r1", Name: "Soup"})
	assert.ErrorIs(t, err, domainerrors.ErrRecipeAlreadyAdded)
	assert.Empty(t, f.srv.State().FindEvent("a1").Recipes)
}

func TestEventSync_AddRecipeUnknownEvent(t *testing.T) {
	f := newEngineFixture(t)
	f.signIn(t, "u1")

	_, err := f.srv.AddRecipe(context.Background(), "nope", &entity.Recipe{ID: "r1", Name: "Soup"})
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	assert.Equal(t, 0, f.gateway.callCount("addRecipe"))
}

func TestEventSync_RemoveRecipeNotAttached(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	_, err := f.srv.RemoveRecipe(context.Background(), "a1", "r9")
	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotInEvent)
	assert.Equal(t, 0, f.gateway.callCount("removeRecipe"))
}

func TestEventSync_DeleteEvent(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1",
		&entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01", ImageURL: "https://photos.test/a1.jpg"},
		&entity.Event{ID: "a2", Title: "Supper", Date: "2025-12-02"},
	)
	f.signIn(t, "u1")

	f.photos.EXPECT().Delete(mock.Anything, "https://photos.test/a1.jpg").Return().Twice()

	f.gateway.failNext("delete", errors.New("connection reset"))
	err := f.srv.DeleteEvent(ctx, "a1")
	require.Error(t, err)
	assert.Equal(t, []entity.ID{"a1", "a2"}, eventIDs(f.srv.State()))

	require.NoError(t, f.srv.DeleteEvent(ctx, "a1"))
	assert.Equal(t, []entity.ID{"a2"}, eventIDs(f.srv.State()))

	err = f.srv.DeleteEvent(ctx, "a1")
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventSync_DeleteNotFoundOnServer(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	f.gateway.failNext("delete", domainerrors.NewAPIError("deleteEvent", http.StatusNotFound, "Event not found"))

	err := f.srv.DeleteEvent(context.Background(), "a1")
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	assert.Equal(t, "This event no longer exists, refresh your view", domainerrors.UserMessage(err))
	assert.Len(t, f.srv.State().Events, 1)
}

func TestEventSync_MutationAfterPrincipalSwitchIsNotMerged(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	held := f.gateway.holdNext("addRecipe")
	done := make(chan error, 1)
	go func() {
		_, err := f.srv.AddRecipe(context.Background(), "a1", &entity.Recipe{ID: "r1", Name: "Soup"})
		done <- err
	}()
	<-held.entered

	f.signIn(t, "u2")
	close(held.release)

	assert.ErrorIs(t, <-done, domainerrors.ErrPrincipalChanged)
	assert.Empty(t, f.srv.State().Events)
}

func TestEventSync_FetchKeepsEventsCreatedMeanwhile(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.signIn(t, "u1")

	held := f.gateway.holdNext("list:u1")
	done := make(chan error, 1)
	go func() { done <- f.srv.Refresh(ctx) }()
	<-held.entered

	_, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
	require.NoError(t, err)

	close(held.release)
	require.NoError(t, <-done)

	state := f.srv.State()
	assert.Equal(t, []entity.ID{"e1"}, eventIDs(state))
}

func TestEventSync_CreateCommittedDuringRefreshSurvivesStaleList(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.signIn(t, "u1")

	heldCreate := f.gateway.holdNext("create")
	created := make(chan error, 1)
	go func() {
		_, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
		created <- err
	}()
	<-heldCreate.entered

	// The list snapshot is taken before the create reaches the server.
	heldList := f.gateway.holdNext("listed:u1")
	refreshed := make(chan error, 1)
	go func() { refreshed <- f.srv.Refresh(ctx) }()
	<-heldList.entered

	close(heldCreate.release)
	require.NoError(t, <-created)
	assert.Equal(t, []entity.ID{"e1"}, eventIDs(f.srv.State()))

	close(heldList.release)
	require.NoError(t, <-refreshed)
	assert.Equal(t, []entity.ID{"e1"}, eventIDs(f.srv.State()))
}

func TestEventSync_DeleteCommittedDuringRefreshSurvivesStaleList(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	heldDelete := f.gateway.holdNext("delete")
	deleted := make(chan error, 1)
	go func() { deleted <- f.srv.DeleteEvent(ctx, "a1") }()
	<-heldDelete.entered

	heldList := f.gateway.holdNext("listed:u1")
	refreshed := make(chan error, 1)
	go func() { refreshed <- f.srv.Refresh(ctx) }()
	<-heldList.entered

	close(heldDelete.release)
	require.NoError(t, <-deleted)
	assert.Empty(t, f.srv.State().Events)

	close(heldList.release)
	require.NoError(t, <-refreshed)
	assert.Empty(t, f.srv.State().Events)
}

func TestEventSync_CredentialForSwitchedPrincipalIsNotUsed(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	f.signIn(t, "u1")

	held := f.accessor.holdNextCredential()
	done := make(chan error, 1)
	go func() {
		_, err := f.srv.CreateEvent(ctx, &entity.EventDraft{Title: "Dinner", Date: "2025-12-01"}, nil)
		done <- err
	}()
	<-held.entered

	f.accessor.emit(user("u2"))
	close(held.release)

	assert.ErrorIs(t, <-done, domainerrors.ErrPrincipalChanged)
	assert.Equal(t, 0, f.gateway.callCount("create"))

	f.waitReady(t, "u2")
	state := f.srv.State()
	assert.Empty(t, state.Events)
	assert.NoError(t, state.LastError)

	f.gateway.mu.Lock()
	defer f.gateway.mu.Unlock()
	assert.Empty(t, f.gateway.events["u2"])
}

func TestEventSync_Summary(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1",
		&entity.Event{ID: "a1", Title: "Past", Date: "2025-01-01", Recipes: []*entity.Recipe{{ID: "r1"}}},
		&entity.Event{ID: "a2", Title: "Later", Date: "2025-12-20", Recipes: []*entity.Recipe{{ID: "r1"}, {ID: "r2"}}},
		&entity.Event{ID: "a3", Title: "Soon", Date: "2025-12-02"},
	)
	f.signIn(t, "u1")

	summary := f.srv.Summary(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, summary.TotalEvents)
	assert.Equal(t, 3, summary.TotalRecipes)
	require.Len(t, summary.Upcoming, 2)
	assert.Equal(t, entity.ID("a3"), summary.Upcoming[0].ID)
	assert.Equal(t, entity.ID("a2"), summary.Upcoming[1].ID)
}

func TestEventSync_StateIsACopy(t *testing.T) {
	f := newEngineFixture(t)
	f.gateway.seed("u1", &entity.Event{ID: "a1", Title: "Lunch", Date: "2025-12-01"})
	f.signIn(t, "u1")

	state := f.srv.State()
	state.Events[0].Title = "changed"
	state.Principal.ID = "someone"

	again := f.srv.State()
	assert.Equal(t, "Lunch", again.Events[0].Title)
	assert.Equal(t, "u1", again.Principal.ID)
}
