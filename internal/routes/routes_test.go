package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vivafit/vivafit-api/internal/audit"
	"github.com/vivafit/vivafit-api/internal/config"
	dbpkg "github.com/vivafit/vivafit-api/internal/db"
	"github.com/vivafit/vivafit-api/internal/db/dbtest"
	"github.com/vivafit/vivafit-api/internal/dto"
	"github.com/vivafit/vivafit-api/internal/identity"
)

type app struct {
	t      *testing.T
	router *gin.Engine
	audit  *audit.Dispatcher
}

func newApp(t *testing.T) *app {
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	require.NoError(t, dbpkg.SeedDemo(db))

	log := zap.NewNop()
	dispatcher := audit.NewDispatcher(audit.New(db), log)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB: db,
		Config: &config.Config{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			Timezone:   "UTC",
		},
		Log:      log,
		Sessions: identity.NewMemorySessionStore(),
		Audit:    dispatcher,
	})

	return &app{t: t, router: r, audit: dispatcher}
}

func (a *app) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type loginResponse struct {
	Token string         `json:"token"`
	User  dto.ProfileDTO `json:"user"`
}

func (a *app) login(email string) loginResponse {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": dbpkg.DemoPassword,
	})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[loginResponse](a.t, rec)
}

type errorBody struct {
	Code string `json:"error_code"`
}

func TestConsultationFlow(t *testing.T) {
	a := newApp(t)

	client := a.login("user@example.com")
	pro := a.login("pro@example.com")
	assert.Equal(t, "client", client.User.Role)
	assert.Equal(t, "professional", pro.User.Role)

	// booking
	rec := a.do(http.MethodPost, "/api/me/consultations", client.Token, gin.H{
		"professional_id": pro.User.ID,
		"date":            "2025-06-01",
		"time":            "14:00",
		"notes":           "first visit",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	booked := decode[dto.WriteResultDTO](t, rec)
	id := booked.Consultation.ID
	assert.Equal(t, "scheduled", booked.Consultation.Status)
	assert.Equal(t, 60, booked.Consultation.DurationMinutes)
	assert.Equal(t, "2025-06-01", booked.Consultation.ScheduledDate)
	require.NotNil(t, booked.Consultation.Professional)
	assert.Equal(t, "Dr. Jane Smith", booked.Consultation.Professional.Name)
	require.Len(t, booked.Consultations, 1)
	assert.Equal(t, []string{"cancelled"}, booked.Consultation.Actions)

	// the professional sees it
	rec = a.do(http.MethodGet, "/api/me/consultations", pro.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Data  []dto.ConsultationDTO `json:"data"`
		Total int                   `json:"total"`
	}](t, rec)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, id, list.Data[0].ID)
	assert.Equal(t, []string{"confirmed", "cancelled"}, list.Data[0].Actions)

	// client cannot confirm
	rec = a.do(http.MethodPatch, "/api/me/consultations/"+id+"/confirm", client.Token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", decode[errorBody](t, rec).Code)

	// professional confirms then completes
	rec = a.do(http.MethodPatch, "/api/me/consultations/"+id+"/status", pro.Token, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "confirmed", decode[dto.WriteResultDTO](t, rec).Consultation.Status)

	rec = a.do(http.MethodPatch, "/api/me/consultations/"+id+"/complete", pro.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", decode[dto.WriteResultDTO](t, rec).Consultations[0].Status)

	// completed is final
	rec = a.do(http.MethodPatch, "/api/me/consultations/"+id+"/cancel", client.Token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodGet, "/api/me/consultations/"+id, client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	final := decode[dto.ConsultationDTO](t, rec)
	assert.Equal(t, "completed", final.Status)
	assert.Empty(t, final.Actions)

	// linked clients
	rec = a.do(http.MethodGet, "/api/me/clients", pro.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	clients := decode[struct {
		Data []dto.PartyDTO `json:"data"`
	}](t, rec)
	require.Len(t, clients.Data, 1)
	assert.Equal(t, client.User.ID, clients.Data[0].ID)

	rec = a.do(http.MethodGet, "/api/me/clients", client.Token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// audit trail
	a.audit.Close()
	rec = a.do(http.MethodGet, "/api/me/audit-logs", pro.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decode[struct {
		Total int `json:"total"`
	}](t, rec)
	assert.Equal(t, 2, logs.Total)
}

func TestBookingValidation(t *testing.T) {
	a := newApp(t)
	client := a.login("user@example.com")
	pro := a.login("pro@example.com")
	t.Cleanup(a.audit.Close)

	cases := []struct {
		name   string
		token  string
		body   gin.H
		status int
		code   string
	}{
		{"bad time", client.Token, gin.H{"professional_id": pro.User.ID, "date": "2025-06-01", "time": "2pm"}, http.StatusBadRequest, "invalid_request"},
		{"bad date", client.Token, gin.H{"professional_id": pro.User.ID, "date": "01/06/2025", "time": "14:00"}, http.StatusBadRequest, "invalid_request"},
		{"unknown professional", client.Token, gin.H{"professional_id": "missing", "date": "2025-06-01", "time": "14:00"}, http.StatusNotFound, "professional_not_found"},
		{"professional books", pro.Token, gin.H{"professional_id": pro.User.ID, "date": "2025-06-01", "time": "14:00"}, http.StatusForbidden, "invalid_actor"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, "/api/me/consultations", tc.token, tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Equal(t, tc.code, decode[errorBody](t, rec).Code)
		})
	}
}

func TestUnknownConsultationIsNotFound(t *testing.T) {
	a := newApp(t)
	client := a.login("user@example.com")
	t.Cleanup(a.audit.Close)

	rec := a.do(http.MethodGet, "/api/me/consultations/missing", client.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPatch, "/api/me/consultations/missing/status", client.Token, gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	a := newApp(t)
	t.Cleanup(a.audit.Close)

	rec := a.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "user@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	client := a.login("user@example.com")

	rec = a.do(http.MethodGet, "/api/me", client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[dto.ProfileDTO](t, rec)
	assert.Equal(t, "John Doe", me.Name)
	assert.Equal(t, "system", string(me.Preferences.Theme))

	rec = a.do(http.MethodPatch, "/api/me/preferences", client.Token, gin.H{"theme": "dark", "high_contrast": true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me = decode[dto.ProfileDTO](t, rec)
	assert.Equal(t, "dark", string(me.Preferences.Theme))
	assert.Equal(t, "medium", string(me.Preferences.FontSize))
	assert.True(t, me.Preferences.HighContrast)

	rec = a.do(http.MethodPatch, "/api/me/preferences", client.Token, gin.H{"font_size": "huge"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodPost, "/api/auth/logout", client.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(http.MethodGet, "/api/me", client.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExerciseTracking(t *testing.T) {
	a := newApp(t)
	client := a.login("user@example.com")
	pro := a.login("pro@example.com")
	t.Cleanup(a.audit.Close)

	type exerciseBody struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		Description     *string `json:"description"`
		DurationMinutes int     `json:"duration_minutes"`
		Completed       bool    `json:"completed"`
	}

	rec := a.do(http.MethodPost, "/api/me/exercises", client.Token, gin.H{"name": "Morning walk"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	walk := decode[exerciseBody](t, rec)
	assert.Equal(t, 30, walk.DurationMinutes)
	assert.Nil(t, walk.Description)
	assert.False(t, walk.Completed)

	rec = a.do(http.MethodPost, "/api/me/exercises", client.Token, gin.H{"name": "Plank", "description": "3 sets", "duration_minutes": 10})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	plank := decode[exerciseBody](t, rec)

	rec = a.do(http.MethodPost, "/api/me/exercises", client.Token, gin.H{"name": "Run", "duration_minutes": 900})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/me/exercises", client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Data  []exerciseBody `json:"data"`
		Total int            `json:"total"`
	}](t, rec)
	require.Equal(t, 2, list.Total)
	assert.ElementsMatch(t, []string{walk.ID, plank.ID}, []string{list.Data[0].ID, list.Data[1].ID})

	// each user only sees their own list
	rec = a.do(http.MethodGet, "/api/me/exercises", pro.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[struct {
		Total int `json:"total"`
	}](t, rec).Total)

	rec = a.do(http.MethodPatch, "/api/me/exercises/"+walk.ID+"/complete", client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[exerciseBody](t, rec).Completed)

	rec = a.do(http.MethodPatch, "/api/me/exercises/"+walk.ID+"/complete", client.Token, gin.H{"completed": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[exerciseBody](t, rec).Completed)

	rec = a.do(http.MethodPatch, "/api/me/exercises/"+walk.ID+"/complete", pro.Token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "exercise_not_found", decode[errorBody](t, rec).Code)

	rec = a.do(http.MethodGet, "/api/me/exercises?date=yesterday", client.Token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/api/me/exercises?date=2000-01-01", client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[struct {
		Total int `json:"total"`
	}](t, rec).Total)
}

func TestDailyProgress(t *testing.T) {
	a := newApp(t)
	client := a.login("user@example.com")
	t.Cleanup(a.audit.Close)

	type progressBody struct {
		Workout   int     `json:"workout"`
		Nutrition int     `json:"nutrition"`
		Hydration int     `json:"hydration"`
		Sleep     int     `json:"sleep"`
		Notes     *string `json:"notes"`
	}

	rec := a.do(http.MethodGet, "/api/me/progress", client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, progressBody{}, decode[progressBody](t, rec))

	rec = a.do(http.MethodPut, "/api/me/progress", client.Token, gin.H{
		"workout": 50, "nutrition": 75, "hydration": 60, "sleep": 80, "notes": "Good day",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/me/progress", client.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[progressBody](t, rec)
	assert.Equal(t, 75, got.Nutrition)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "Good day", *got.Notes)

	rec = a.do(http.MethodPut, "/api/me/progress", client.Token, gin.H{"workout": 120})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
