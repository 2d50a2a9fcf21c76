package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtletrack/turtletrack/internal/auth"
	"github.com/turtletrack/turtletrack/internal/events"
	"github.com/turtletrack/turtletrack/internal/model"
	"github.com/turtletrack/turtletrack/internal/services"
	"github.com/turtletrack/turtletrack/internal/store/memstore"
)

func newTestServer(t *testing.T) (*httptest.Server, *auth.Manager) {
	t.Helper()

	st, err := memstore.New(nil, zerolog.Nop())
	require.NoError(t, err)
	session, err := auth.NewManager(nil, zerolog.Nop())
	require.NoError(t, err)

	bus := events.NewBus(16)
	router := NewRouter(Deps{
		Turtles: services.NewTurtleService(st, bus, 0),
		Beaches: services.NewBeachService(st, bus, 0),
		Nests:   services.NewNestService(st, bus, 0),
		Stats:   services.NewStatsService(st, session),
		Store:   st,
		Session: session,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, session
}

// noRedirectClient stops at the first redirect so tests can observe it.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loginAdmin(t *testing.T, baseURL string) {
	t.Helper()
	resp := postJSON(t, baseURL+"/api/auth/login", map[string]string{
		"username": "admin", "password": "123456", "role": "admin",
	})
	var result auth.Result
	decodeInto(t, resp, &result)
	require.True(t, result.Success)
}

func TestLoginLogoutSession(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/auth/session")
	require.NoError(t, err)
	var sess struct {
		Authenticated bool        `json:"authenticated"`
		User          *model.User `json:"user"`
	}
	decodeInto(t, resp, &sess)
	assert.False(t, sess.Authenticated)

	// wrong password stays anonymous
	resp = postJSON(t, srv.URL+"/api/auth/login", map[string]string{
		"username": "admin", "password": "wrong", "role": "admin",
	})
	var result auth.Result
	decodeInto(t, resp, &result)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	loginAdmin(t, srv.URL)

	resp, err = http.Get(srv.URL + "/api/auth/session")
	require.NoError(t, err)
	decodeInto(t, resp, &sess)
	require.True(t, sess.Authenticated)
	assert.Equal(t, "admin-1", sess.User.ID)
	assert.Equal(t, model.RoleAdmin, sess.User.Role)

	resp = postJSON(t, srv.URL+"/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestTurtleMutationsAreAdminOnly(t *testing.T) {
	srv, _ := newTestServer(t)

	newTurtle := map[string]interface{}{
		"name": "Pacifica", "species": "Green Sea Turtle",
		"status": "active", "healthStatus": "good", "threatLevel": "low",
		"location": map[string]float64{"lat": 10.2, "lng": -83.5},
	}

	resp := postJSON(t, srv.URL+"/api/turtles", newTurtle)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// a volunteer may not manage the catalog
	reg := postJSON(t, srv.URL+"/api/auth/register", map[string]string{
		"username": "vol1", "email": "vol1@example.org", "password": "hunter2",
	})
	var result auth.Result
	decodeInto(t, reg, &result)
	require.True(t, result.Success)

	resp = postJSON(t, srv.URL+"/api/turtles", newTurtle)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	loginAdmin(t, srv.URL)
	resp = postJSON(t, srv.URL+"/api/turtles", newTurtle)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Turtle
	decodeInto(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pacifica", created.Name)
}

func TestTurtleCRUDFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	loginAdmin(t, srv.URL)

	// the seeded catalog is visible without authentication
	resp, err := http.Get(srv.URL + "/api/turtles")
	require.NoError(t, err)
	var listing struct {
		Turtles []*model.Turtle `json:"turtles"`
		Count   int             `json:"count"`
	}
	decodeInto(t, resp, &listing)
	require.Equal(t, 6, listing.Count)

	id := listing.Turtles[0].ID

	// partial update keeps unmentioned fields
	patch, _ := json.Marshal(map[string]float64{"weight": 200})
	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("%s/api/turtles/%s", srv.URL, id), bytes.NewReader(patch))
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	var updated model.Turtle
	decodeInto(t, resp, &updated)
	assert.Equal(t, float64(200), updated.Weight)
	assert.Equal(t, listing.Turtles[0].Name, updated.Name)

	req, err = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/turtles/%s", srv.URL, id), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(fmt.Sprintf("%s/api/turtles/%s", srv.URL, id))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestDeclareNestSnapshotsBeachName(t *testing.T) {
	srv, _ := newTestServer(t)

	reg := postJSON(t, srv.URL+"/api/auth/register", map[string]string{
		"username": "maria", "email": "maria@example.org", "password": "s3cret",
	})
	var result auth.Result
	decodeInto(t, reg, &result)
	require.True(t, result.Success)

	resp := postJSON(t, srv.URL+"/api/nests", map[string]interface{}{
		"beachId": "b1", "turtleCount": 90, "hatchDate": "2026-10-15",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var nest model.Nest
	decodeInto(t, resp, &nest)
	assert.Equal(t, "Tortuguero Beach", nest.BeachName)
	assert.Equal(t, "maria", nest.DeclaredBy)
	assert.Equal(t, model.NestActive, nest.Status)
}

func TestDeclareNestValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	loginAdmin(t, srv.URL)

	// missing beachId
	resp := postJSON(t, srv.URL+"/api/nests", map[string]interface{}{
		"turtleCount": 90, "hatchDate": "2026-10-15",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// out-of-range turtle count
	resp = postJSON(t, srv.URL+"/api/nests", map[string]interface{}{
		"beachId": "b1", "turtleCount": 501, "hatchDate": "2026-10-15",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestRegisterFieldValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/auth/register", map[string]string{
		"username": "u1", "email": "not-an-email", "password": "p",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	var stats model.Stats
	decodeInto(t, resp, &stats)
	assert.Equal(t, 6, stats.TotalTurtles)
	assert.Equal(t, 5, stats.NestingBeaches)
	assert.Equal(t, 2, stats.TotalNests)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	var body struct {
		Status string `json:"status"`
	}
	decodeInto(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
}

func TestAdminPageRedirectsAnonymousToLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	client := noRedirectClient()

	resp, err := client.Get(srv.URL + "/admin")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login?from=%2Fadmin", resp.Header.Get("Location"))
}

func TestVolunteerPageRedirectsWrongRoleHome(t *testing.T) {
	srv, _ := newTestServer(t)
	loginAdmin(t, srv.URL)
	client := noRedirectClient()

	resp, err := client.Get(srv.URL + "/volunteer")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAdminPageRendersForAdmin(t *testing.T) {
	srv, _ := newTestServer(t)
	loginAdmin(t, srv.URL)

	resp, err := http.Get(srv.URL + "/admin")
	require.NoError(t, err)
	var page struct {
		Page string `json:"page"`
	}
	decodeInto(t, resp, &page)
	assert.Equal(t, "admin-dashboard", page.Page)
}

func TestUnknownPathIsStructured404(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/no/such/page")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body struct {
		Error string `json:"error"`
		Home  string `json:"home"`
	}
	decodeInto(t, resp, &body)
	assert.Equal(t, "Page not found", body.Error)
	assert.Equal(t, "/", body.Home)
}

func TestUnknownPathIsInstrumented(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/definitely/not/a/page")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// the catch-all runs through the duration histogram like any route
	assert.Contains(t, string(raw), `turtletrack_http_request_duration_seconds_count{method="GET",route="/definitely/not/a/page",status="404"}`)
}

func TestTurtleListFilterParams(t *testing.T) {
	srv, _ := newTestServer(t)

	var listing struct {
		Turtles []*model.Turtle `json:"turtles"`
		Count   int             `json:"count"`
	}

	resp, err := http.Get(srv.URL + "/api/turtles?query=marina")
	require.NoError(t, err)
	decodeInto(t, resp, &listing)
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "Marina", listing.Turtles[0].Name)

	resp, err = http.Get(srv.URL + "/api/turtles?status=active")
	require.NoError(t, err)
	decodeInto(t, resp, &listing)
	require.Equal(t, 2, listing.Count)
	// store order survives filtering
	assert.Equal(t, "Atlas", listing.Turtles[0].Name)
	assert.Equal(t, "Luna", listing.Turtles[1].Name)

	// "all" is the no-op sentinel
	resp, err = http.Get(srv.URL + "/api/turtles?status=all")
	require.NoError(t, err)
	decodeInto(t, resp, &listing)
	assert.Equal(t, 6, listing.Count)

	resp, err = http.Get(srv.URL + "/api/turtles?species=Green+Sea+Turtle&status=active")
	require.NoError(t, err)
	decodeInto(t, resp, &listing)
	require.Equal(t, 1, listing.Count)
	assert.Equal(t, "Luna", listing.Turtles[0].Name)
}

func TestBeachListFilterParams(t *testing.T) {
	srv, _ := newTestServer(t)

	var listing struct {
		Beaches []*model.Beach `json:"beaches"`
		Count   int            `json:"count"`
	}

	resp, err := http.Get(srv.URL + "/api/beaches?threat=medium")
	require.NoError(t, err)
	decodeInto(t, resp, &listing)
	assert.Equal(t, 3, listing.Count)

	resp, err = http.Get(srv.URL + "/api/beaches?query=australia")
	require.NoError(t, err)
	decodeInto(t, resp, &listing)
	require.Equal(t, 2, listing.Count)
	assert.Equal(t, "Mon Repos Beach", listing.Beaches[0].Name)
	assert.Equal(t, "Raine Island", listing.Beaches[1].Name)
}

type selectResponse struct {
	Selected string `json:"selected"`
	Camera   *struct {
		Target     model.LatLng `json:"target"`
		Zoom       int          `json:"zoom"`
		DurationMs int64        `json:"durationMs"`
	} `json:"camera"`
}

func TestTrackSelectTogglesFromList(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/track/select", map[string]string{"id": "t1", "source": "list"})
	var sel selectResponse
	decodeInto(t, resp, &sel)
	require.Equal(t, "t1", sel.Selected)
	require.NotNil(t, sel.Camera)
	assert.InDelta(t, 9.7489, sel.Camera.Target.Lat, 1e-9)
	assert.Equal(t, 6, sel.Camera.Zoom)
	assert.Equal(t, int64(1500), sel.Camera.DurationMs)

	// clicking the selected row again deselects without moving the camera
	resp = postJSON(t, srv.URL+"/api/track/select", map[string]string{"id": "t1", "source": "list"})
	decodeInto(t, resp, &sel)
	assert.Empty(t, sel.Selected)
	assert.Nil(t, sel.Camera)
}

func TestTrackSelectFromMarkerRecenters(t *testing.T) {
	srv, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, srv.URL+"/api/track/select", map[string]string{"id": "t2", "source": "marker"})
		var sel selectResponse
		decodeInto(t, resp, &sel)
		require.Equal(t, "t2", sel.Selected)
		require.NotNil(t, sel.Camera)
		assert.InDelta(t, 25.7617, sel.Camera.Target.Lat, 1e-9)
	}
}

func TestTrackMapCarriesRenderDirectives(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/track/select", map[string]string{"id": "t1"})
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/track/map")
	require.NoError(t, err)
	var view struct {
		Selected string `json:"selected"`
		Count    int    `json:"count"`
		Turtles  []struct {
			ID          string `json:"id"`
			Selected    bool   `json:"selected"`
			MarkerColor string `json:"markerColor"`
			TrailStyle  struct {
				Color     string  `json:"color"`
				Weight    int     `json:"weight"`
				Opacity   float64 `json:"opacity"`
				DashArray string  `json:"dashArray"`
			} `json:"trailStyle"`
		} `json:"turtles"`
	}
	decodeInto(t, resp, &view)
	require.Equal(t, 6, view.Count)
	assert.Equal(t, "t1", view.Selected)

	byID := map[string]int{}
	for i, tr := range view.Turtles {
		byID[tr.ID] = i
	}
	sel := view.Turtles[byID["t1"]]
	assert.True(t, sel.Selected)
	assert.Equal(t, "#0891b2", sel.TrailStyle.Color)
	assert.Equal(t, 3, sel.TrailStyle.Weight)
	assert.Empty(t, sel.TrailStyle.DashArray)
	assert.Equal(t, "#3b82f6", sel.MarkerColor) // migrating

	other := view.Turtles[byID["t2"]]
	assert.False(t, other.Selected)
	assert.Equal(t, "#94a3b8", other.TrailStyle.Color)
	assert.Equal(t, "5, 10", other.TrailStyle.DashArray)
	assert.Equal(t, "#22c55e", other.MarkerColor) // active

	// filter parameters apply to the map view too
	resp, err = http.Get(srv.URL + "/api/track/map?status=resting")
	require.NoError(t, err)
	decodeInto(t, resp, &view)
	require.Equal(t, 1, view.Count)
	assert.Equal(t, "t5", view.Turtles[0].ID)

	// clearing drops the selection
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/track/select", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/track/map")
	require.NoError(t, err)
	decodeInto(t, resp, &view)
	assert.Empty(t, view.Selected)
}
