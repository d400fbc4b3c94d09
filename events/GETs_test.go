package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devhub/access"
	"devhub/display"
	"devhub/membership"
	"devhub/metrics"
	"devhub/middleware"
	"devhub/models"
	"devhub/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) FetchEvents(context.Context) ([]models.Event, error) {
	return nil, errors.New("database unavailable")
}

func newRouter(h *Handler) *httprouter.Router {
	router := httprouter.New()
	router.GET("/api/events", middleware.OptionalAuth(h.GetEvents))
	router.GET("/api/events/:eventid", middleware.OptionalAuth(h.GetEvent))
	return router
}

func seedHandler() *Handler {
	return &Handler{
		Events:  store.Seed{},
		Joined:  membership.DefaultPlaceholder(),
		Loc:     time.UTC,
		Metrics: metrics.New(),
	}
}

func get(t *testing.T, router http.Handler, target string, viewer *models.Viewer) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if viewer != nil {
		tok, err := middleware.IssueToken(*viewer, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) ListResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func cardIDs(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestGetEventsAnonymous(t *testing.T) {
	resp := decodeList(t, get(t, newRouter(seedHandler()), "/api/events", nil))

	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, cardIDs(resp.Events))
	assert.Equal(t, 6, resp.Count)
	assert.False(t, resp.CanCreate)
	assert.Empty(t, resp.Tagline)
	assert.Equal(t, []string{"all"}, resp.Options.Scopes)
	assert.Equal(t, []string{"all", "workshop", "networking", "hackathon", "seminar"}, resp.Options.Types)

	first := resp.Events[0]
	assert.Equal(t, "Mar 15", first.DateInfo.Short)
	assert.Equal(t, "2:00 PM", first.DateInfo.Time)
	assert.Equal(t, "Friday, March 15, 2024", first.DateInfo.Full)
	assert.InDelta(t, 90.0, first.Attendance, 1e-9)
	assert.Equal(t, 90, first.Percent)
	assert.Equal(t, display.LevelMedium, first.Level, "exactly 90 percent full is not yet red")
	assert.True(t, first.Online)
	assert.Equal(t, "Workshop", first.Label)
	assert.Equal(t, "code", first.Icon)
	assert.Equal(t, access.ActionRegister, first.Action)
}

func TestGetEventsSearchAndType(t *testing.T) {
	router := newRouter(seedHandler())

	resp := decodeList(t, get(t, router, "/api/events?search=REACT", nil))
	assert.Equal(t, []string{"1"}, cardIDs(resp.Events))

	resp = decodeList(t, get(t, router, "/api/events?type=workshop", nil))
	assert.Equal(t, []string{"1", "6"}, cardIDs(resp.Events))

	resp = decodeList(t, get(t, router, "/api/events?search=kubernetes", nil))
	assert.Empty(t, resp.Events)
	assert.Equal(t, `No events match your search for "kubernetes"`, resp.Empty)
}

func TestGetEventsMyEventsForCompany(t *testing.T) {
	viewer := &models.Viewer{ID: "company1", Role: models.RoleCompany}
	resp := decodeList(t, get(t, newRouter(seedHandler()), "/api/events?scope=my-events", viewer))

	assert.Equal(t, []string{"1"}, cardIDs(resp.Events))
	assert.Equal(t, access.ActionManage, resp.Events[0].Action)
	assert.True(t, resp.CanCreate)
	assert.Equal(t, []string{"all", "joined", "my-events"}, resp.Options.Scopes)
	assert.Equal(t, "Host events, engage with talent, and build your brand", resp.Tagline)
}

func TestGetEventsMyEventsAnonymousIsEmpty(t *testing.T) {
	resp := decodeList(t, get(t, newRouter(seedHandler()), "/api/events?scope=my-events", nil))
	assert.Empty(t, resp.Events)
	assert.NotEmpty(t, resp.Empty)
}

func TestGetEventsJoined(t *testing.T) {
	viewer := &models.Viewer{ID: "student1", Role: models.RoleStudent}
	resp := decodeList(t, get(t, newRouter(seedHandler()), "/api/events?scope=joined", viewer))
	assert.Equal(t, []string{"1", "4"}, cardIDs(resp.Events))
	assert.False(t, resp.CanCreate)
}

func TestGetEventsBadScope(t *testing.T) {
	rec := get(t, newRouter(seedHandler()), "/api/events?scope=everything", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEventsProviderFailure(t *testing.T) {
	h := seedHandler()
	h.Events = failingProvider{}
	rec := get(t, newRouter(h), "/api/events", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch events"}`, rec.Body.String())
}

func TestGetEvent(t *testing.T) {
	router := newRouter(seedHandler())

	rec := get(t, router, "/api/events/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var card Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "AI/ML Career Fair 2024", card.Title)
	assert.InDelta(t, 64.0, card.Attendance, 1e-9)
	assert.False(t, card.Online)

	rec = get(t, router, "/api/events/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewCardFullAndUncapped(t *testing.T) {
	capacity := 10
	full := NewCard(models.Event{ID: "x", Type: "conference", MaxAttendees: &capacity, CurrentAttendees: 12}, nil, time.UTC)
	assert.Equal(t, 100.0, full.Attendance)
	assert.Equal(t, access.ActionFull, full.Action)
	assert.Equal(t, "calendar", full.Icon)

	uncapped := NewCard(models.Event{ID: "y", CurrentAttendees: 5}, nil, time.UTC)
	assert.Equal(t, 0.0, uncapped.Attendance)
	assert.Equal(t, access.ActionRegister, uncapped.Action)
}

func TestCardWireFormat(t *testing.T) {
	rec := get(t, newRouter(seedHandler()), "/api/events/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `"2024-03-15T14:00:00Z"`, string(raw["date"]))
	assert.JSONEq(t, `{"date":"Mar 15","time":"2:00 PM","full":"Friday, March 15, 2024"}`, string(raw["dateInfo"]))
	assert.JSONEq(t, `"yellow"`, string(raw["level"]))
}
