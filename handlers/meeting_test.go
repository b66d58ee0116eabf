package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meetly/models"
	"meetly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stubScheduler returns canned results per call.
type stubScheduler struct {
	createErr error
	created   *models.MeetingResponse

	lastServiceID string
	lastStart     time.Time
	lastUserID    string
}

func (s *stubScheduler) Get(_ context.Context) ([]models.Meeting, error) { return nil, nil }
func (s *stubScheduler) GetByID(_ context.Context, _ string) (*models.Meeting, error) {
	return nil, utils.ErrNotFound("")
}
func (s *stubScheduler) GetByBusinessID(_ context.Context, _ string) ([]models.Meeting, error) {
	return nil, nil
}
func (s *stubScheduler) GetByServiceID(_ context.Context, _ string) ([]models.Meeting, error) {
	return nil, nil
}
func (s *stubScheduler) Create(_ context.Context, serviceID string, start time.Time, userID string) (*models.MeetingResponse, error) {
	s.lastServiceID = serviceID
	s.lastStart = start
	s.lastUserID = userID
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}
func (s *stubScheduler) Update(_ context.Context, _ string, _ time.Time) (*models.MeetingResponse, error) {
	return nil, utils.ErrNotFound("")
}
func (s *stubScheduler) Delete(_ context.Context, _ string) error             { return nil }
func (s *stubScheduler) DeleteByServiceID(_ context.Context, _ string) error  { return nil }
func (s *stubScheduler) DeleteByBusinessID(_ context.Context, _ string) error { return nil }

func newTestRouter(stub *stubScheduler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMeetingHandler(stub)
	// The auth middleware is exercised separately; inject the user directly.
	r.Use(func(c *gin.Context) {
		c.Set("userID", "test-user")
	})
	r.POST("/api/meetings", h.Create)
	r.PUT("/api/meetings/:id", h.Update)
	return r
}

func TestCreateMeetingHandler_Success(t *testing.T) {
	serviceID := uuid.New().String()
	stub := &stubScheduler{
		created: &models.MeetingResponse{
			ID:        uuid.New().String(),
			ServiceID: serviceID,
			Date:      time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		},
	}
	router := newTestRouter(stub)

	body := `{"serviceId":"` + serviceID + `","date":"2026-01-05T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if stub.lastServiceID != serviceID {
		t.Fatalf("expected serviceID passed through, got %q", stub.lastServiceID)
	}
	if stub.lastUserID != "test-user" {
		t.Fatalf("expected authenticated user id, got %q", stub.lastUserID)
	}
	if !stub.lastStart.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected parsed start, got %s", stub.lastStart)
	}
}

func TestCreateMeetingHandler_MissingDate(t *testing.T) {
	stub := &stubScheduler{}
	router := newTestRouter(stub)

	body := `{"serviceId":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing date, got %d", w.Code)
	}
}

func TestCreateMeetingHandler_BadDate(t *testing.T) {
	stub := &stubScheduler{}
	router := newTestRouter(stub)

	body := `{"serviceId":"` + uuid.New().String() + `","date":"tomorrow"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed date, got %d", w.Code)
	}
}

func TestCreateMeetingHandler_Conflict(t *testing.T) {
	stub := &stubScheduler{createErr: utils.ErrDataAlreadyExists("")}
	router := newTestRouter(stub)

	body := `{"serviceId":"` + uuid.New().String() + `","date":"2026-01-05T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for overlap, got %d", w.Code)
	}
}

func TestUpdateMeetingHandler_NotFound(t *testing.T) {
	stub := &stubScheduler{}
	router := newTestRouter(stub)

	body := `{"date":"2026-01-05T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/meetings/"+uuid.New().String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
