package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/app/services"
	"github.com/varunm/batchswap/internal/middleware"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
	"github.com/varunm/batchswap/internal/pkg/session"
)

const testCookieName = "batch_swap_session"

// stubStudentStore is a minimal in-memory store for controller tests.
type stubStudentStore struct {
	nextID   int64
	students map[string]*models.Student
}

func newStubStudentStore() *stubStudentStore {
	return &stubStudentStore{nextID: 1, students: make(map[string]*models.Student)}
}

func (s *stubStudentStore) Create(_ context.Context, student *models.Student) error {
	if _, exists := s.students[student.Email]; exists {
		return apperrors.ErrAlreadyRegistered
	}
	student.ID = s.nextID
	s.nextID++
	s.students[student.Email] = student
	return nil
}

func (s *stubStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, student := range s.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	student, ok := s.students[email]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *stubStudentStore) UpdateCGPA(_ context.Context, id int64, cgpa float64) error {
	student, err := s.GetByID(context.Background(), id)
	if err != nil {
		return err
	}
	student.CGPA = cgpa
	return nil
}

func (s *stubStudentStore) ListByCGPAWindow(_ context.Context, _ int64, _, _ float64) ([]*models.Student, error) {
	return nil, nil
}

func (s *stubStudentStore) List(_ context.Context, _, _ int) ([]*models.Student, error) {
	return nil, nil
}

func newAuthRouter(store services.StudentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authService := services.NewAuthService(store, session.NewMemoryStore(time.Hour), "vitstudent.ac.in", zerolog.Nop())
	sessionMiddleware := middleware.NewSessionMiddleware(authService, testCookieName)
	ctrl := NewAuthController(authService, testCookieName, 3600, false)

	router := gin.New()
	router.POST("/auth/callback", ctrl.Callback)
	router.POST("/auth/register", sessionMiddleware.RequireSession(), ctrl.Register)
	return router
}

func loginCookie(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/callback",
		strings.NewReader(`{"email":"`+email+`"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func postRegister(router *gin.Engine, cookie *http.Cookie, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterAcceptsZeroCGPA(t *testing.T) {
	store := newStubStudentStore()
	router := newAuthRouter(store)
	cookie := loginCookie(t, router, "john.doe2021@vitstudent.ac.in")

	recorder := postRegister(router, cookie, `{"cgpa":0,"currentBatch":"Forenoon"}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var body struct {
		Data models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "john.doe2021@vitstudent.ac.in", body.Data.Email)
	assert.Zero(t, body.Data.CGPA)
	assert.Equal(t, models.BatchForenoon, body.Data.CurrentBatch)

	stored, err := store.GetByEmail(context.Background(), "john.doe2021@vitstudent.ac.in")
	require.NoError(t, err)
	assert.Zero(t, stored.CGPA)
}

func TestRegisterRejectsMissingCGPA(t *testing.T) {
	router := newAuthRouter(newStubStudentStore())
	cookie := loginCookie(t, router, "john.doe2021@vitstudent.ac.in")

	recorder := postRegister(router, cookie, `{"currentBatch":"Forenoon"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRegisterRejectsOutOfRangeCGPA(t *testing.T) {
	router := newAuthRouter(newStubStudentStore())
	cookie := loginCookie(t, router, "john.doe2021@vitstudent.ac.in")

	recorder := postRegister(router, cookie, `{"cgpa":10.5,"currentBatch":"Forenoon"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
