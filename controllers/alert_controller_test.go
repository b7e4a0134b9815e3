package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/models"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/routes"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/services"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"
	"github.com/shindepushkar677-sys/Disaster-management-alert-system/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.UserStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	users := storage.NewUserStore(filepath.Join(dir, "users.json"))
	alerts := storage.NewAlertStore(filepath.Join(dir, "alerts.json"))
	hub := services.NewRealtimeHub()
	svc := services.NewAlertService(alerts, users, hub, nil)

	r := routes.SetupRouter(routes.Deps{Users: users, Alerts: svc, Hub: hub})
	return r, users
}

func authToken(t *testing.T, users *storage.UserStore, email string) string {
	t.Helper()
	require.NoError(t, users.Register(email, "pw"))
	token, err := utils.GenerateJWT(email)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAddAlertAndList(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/add_alert",
		`{"type":"fire","desc":"brush fire","lat":34.05,"lng":-118.25}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, "ok", body["status"])
	id, _ := body["id"].(string)
	require.NoError(t, uuid.Validate(id))

	w = doJSON(r, http.MethodGet, "/get_alerts", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.Len(t, alerts, 1)
	require.Equal(t, id, alerts[0].ID)
	require.Equal(t, "a@x.com", alerts[0].User)
	require.False(t, alerts[0].Resolved)
}

func TestAddAlertRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(r, http.MethodPost, "/add_alert",
		`{"type":"fire","desc":"brush fire","lat":34.05,"lng":-118.25}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddAlertValidation(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/add_alert", `{"desc":"no type","lat":1,"lng":1}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing type or description", decodeBody(t, w)["message"])

	// a coordinate of exactly 0 counts as missing
	w = doJSON(r, http.MethodPost, "/add_alert", `{"type":"fire","desc":"x","lat":0,"lng":-118.25}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing coordinates", decodeBody(t, w)["message"])

	w = doJSON(r, http.MethodPost, "/add_alert", `{"lat":"not a number"}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid data format", decodeBody(t, w)["message"])
}

func TestMarkResolved(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/add_alert",
		`{"type":"flood","desc":"river rising","lat":29.76,"lng":-95.36}`, token)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(r, http.MethodPost, "/mark_resolved", `{"id":"`+id+`"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "resolved", decodeBody(t, w)["status"])

	w = doJSON(r, http.MethodGet, "/get_alerts", "", "")
	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.True(t, alerts[0].Resolved)
	require.Equal(t, "a@x.com", alerts[0].ResolvedBy)
}

func TestMarkResolvedUnknownID(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/mark_resolved", `{"id":"unknown-id"}`, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, "error", body["status"])
	require.Equal(t, "Alert not found", body["message"])
}

func TestMarkResolvedMissingID(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/mark_resolved", `{}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "No alert ID", decodeBody(t, w)["message"])
}

func TestRemoveAlert(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/add_alert",
		`{"type":"storm","desc":"high winds","lat":40.71,"lng":-74.0}`, token)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(r, http.MethodPost, "/remove_alert", `{"id":"`+id+`"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "removed", decodeBody(t, w)["status"])

	w = doJSON(r, http.MethodGet, "/get_alerts", "", "")
	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	require.Empty(t, alerts)
}

func TestConcurrentRemovesExactlyOneSucceeds(t *testing.T) {
	r, users := newTestRouter(t)
	token := authToken(t, users, "a@x.com")

	w := doJSON(r, http.MethodPost, "/add_alert",
		`{"type":"fire","desc":"brush fire","lat":34.05,"lng":-118.25}`, token)
	id := decodeBody(t, w)["id"].(string)

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			codes[n] = doJSON(r, http.MethodPost, "/remove_alert", `{"id":"`+id+`"}`, token).Code
		}(i)
	}
	wg.Wait()

	ok, notFound := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusNotFound:
			notFound++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, notFound)
}

func TestGetAlertsEmptyStoreReturnsArray(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(r, http.MethodGet, "/get_alerts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}
