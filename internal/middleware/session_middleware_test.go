package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
	"github.com/varunm/batchswap/internal/pkg/session"
)

const testCookie = "batch_swap_session"

type stubResolver struct {
	sessions map[string]session.Data
	students map[string]*models.Student
}

func (s *stubResolver) ResolveSession(_ context.Context, sessionID string) (session.Data, *models.Student, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return session.Data{}, nil, apperrors.ErrNotAuthenticated
	}
	return data, s.students[sessionID], nil
}

func newMiddlewareRouter(resolver *stubResolver, requireStudent bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewSessionMiddleware(resolver, testCookie)

	guard := m.RequireSession()
	if requireStudent {
		guard = m.RequireStudent()
	}
	router.GET("/protected", guard, func(c *gin.Context) {
		if student, ok := StudentFromContext(c); ok {
			c.JSON(http.StatusOK, gin.H{"studentId": student.ID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"studentId": nil})
	})
	return router
}

func doRequest(router *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequireSessionWithoutCookie(t *testing.T) {
	router := newMiddlewareRouter(&stubResolver{}, false)

	recorder := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireSessionUnknownSession(t *testing.T) {
	router := newMiddlewareRouter(&stubResolver{sessions: map[string]session.Data{}}, false)

	recorder := doRequest(router, "missing")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireSessionRegisteredStudent(t *testing.T) {
	resolver := &stubResolver{
		sessions: map[string]session.Data{
			"sess-1": {Email: "a.b2021@vitstudent.ac.in"},
		},
		students: map[string]*models.Student{
			"sess-1": {ID: 7, Email: "a.b2021@vitstudent.ac.in"},
		},
	}
	router := newMiddlewareRouter(resolver, false)

	recorder := doRequest(router, "sess-1")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"studentId":7`)
}

func TestRequireStudentBlocksPendingRegistration(t *testing.T) {
	resolver := &stubResolver{
		sessions: map[string]session.Data{
			"sess-1": {Email: "a.b2021@vitstudent.ac.in", NeedsRegistration: true},
		},
	}
	router := newMiddlewareRouter(resolver, true)

	recorder := doRequest(router, "sess-1")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireSessionAllowsPendingRegistration(t *testing.T) {
	resolver := &stubResolver{
		sessions: map[string]session.Data{
			"sess-1": {Email: "a.b2021@vitstudent.ac.in", NeedsRegistration: true},
		},
	}
	router := newMiddlewareRouter(resolver, false)

	recorder := doRequest(router, "sess-1")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
