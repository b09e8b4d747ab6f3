package gateway_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/dto"
	"shareit/internal/gateway"
	"shareit/internal/middleware"
)

// newGatewayApp points at an unreachable server; every test here must be
// rejected by the gateway before anything is forwarded.
func newGatewayApp() *fiber.App {
	app := fiber.New()
	gateway.NewHandler("http://127.0.0.1:1").RegisterRoutes(app)
	return app
}

func send(t *testing.T, app *fiber.App, method, path string, userID string, body any) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(encoded))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGatewayRequiresIdentityHeader(t *testing.T) {
	app := newGatewayApp()

	resp := send(t, app, http.MethodGet, "/bookings", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/bookings", "abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/bookings", "0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGatewayRejectsUnknownState(t *testing.T) {
	app := newGatewayApp()

	resp := send(t, app, http.MethodGet, "/bookings?state=SOMETHING", "1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/bookings/owner?state=SOMETHING", "1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGatewayRejectsBadApprovedParam(t *testing.T) {
	app := newGatewayApp()

	resp := send(t, app, http.MethodPatch, "/bookings/1?approved=maybe", "1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodPatch, "/bookings/1", "1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGatewayRejectsInvalidBookingWindows(t *testing.T) {
	app := newGatewayApp()
	now := time.Now().Truncate(time.Second)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"start in the past", now.Add(-time.Hour), now.Add(time.Hour)},
		{"end before start", now.Add(2 * time.Hour), now.Add(time.Hour)},
		{"empty window", now.Add(time.Hour), now.Add(time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := send(t, app, http.MethodPost, "/bookings", "1", dto.NewBookingRequest{
				ItemID: 1,
				Start:  dto.FormatTime(tc.start),
				End:    dto.FormatTime(tc.end),
			})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGatewayRejectsMalformedBookingDates(t *testing.T) {
	app := newGatewayApp()

	resp := send(t, app, http.MethodPost, "/bookings", "1", dto.NewBookingRequest{
		ItemID: 1,
		Start:  "not-a-date",
		End:    "also-not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGatewayValidatesBodies(t *testing.T) {
	app := newGatewayApp()

	resp := send(t, app, http.MethodPost, "/users", "", map[string]string{
		"name":  "Alice",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "Email")

	resp = send(t, app, http.MethodPost, "/items", "1", map[string]string{
		"description": "No name, no available flag",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/requests", "1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/items/1/comment", "1", map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
