package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
	"github.com/varunm/batchswap/internal/pkg/session"
)

// Context keys set by the session middleware.
const (
	ContextStudent   = "student"
	ContextSessionID = "sessionID"
	ContextSession   = "sessionData"
)

// SessionResolver resolves a session id into its data and the bound student.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (session.Data, *models.Student, error)
}

// SessionMiddleware authenticates requests via the session cookie.
type SessionMiddleware struct {
	auth       SessionResolver
	cookieName string
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(auth SessionResolver, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{auth: auth, cookieName: cookieName}
}

func (m *SessionMiddleware) abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)))
}

// RequireSession loads the session behind the cookie and puts it in the gin
// context. Registration-pending sessions pass; handlers that need a full
// profile use RequireStudent instead.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(m.cookieName)
		if err != nil || sessionID == "" {
			m.abortUnauthorized(c, "Authentication required")
			return
		}

		data, student, err := m.auth.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotAuthenticated) {
				m.abortUnauthorized(c, "Session expired or invalid")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
			return
		}

		c.Set(ContextSessionID, sessionID)
		c.Set(ContextSession, data)
		if student != nil {
			c.Set(ContextStudent, student)
		}

		c.Next()
	}
}

// RequireStudent is RequireSession plus a registered profile.
func (m *SessionMiddleware) RequireStudent() gin.HandlerFunc {
	require := m.RequireSession()
	return func(c *gin.Context) {
		require(c)
		if c.IsAborted() {
			return
		}
		if _, exists := c.Get(ContextStudent); !exists {
			m.abortUnauthorized(c, "Registration required")
		}
	}
}

// StudentFromContext returns the authenticated student set by the middleware.
func StudentFromContext(c *gin.Context) (*models.Student, bool) {
	value, exists := c.Get(ContextStudent)
	if !exists {
		return nil, false
	}
	student, ok := value.(*models.Student)
	return student, ok
}

// SessionFromContext returns the session id and data set by the middleware.
func SessionFromContext(c *gin.Context) (string, session.Data, bool) {
	idValue, exists := c.Get(ContextSessionID)
	if !exists {
		return "", session.Data{}, false
	}
	id, ok := idValue.(string)
	if !ok {
		return "", session.Data{}, false
	}
	dataValue, _ := c.Get(ContextSession)
	data, _ := dataValue.(session.Data)
	return id, data, true
}
