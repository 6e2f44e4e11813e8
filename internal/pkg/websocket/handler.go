package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
	"github.com/varunm/batchswap/internal/pkg/metrics"
)

// StudentResolver looks up the student behind the connection token.
type StudentResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// ChatBackend authorizes chat access and persists messages.
type ChatBackend interface {
	Authorize(ctx context.Context, studentID, swapRequestID int64) (*models.SwapRequest, error)
	PostMessage(ctx context.Context, sender *models.Student, swapRequestID int64, text string) (*models.ChatMessage, error)
}

// inboundFrame is what the peer sends: a single message field.
type inboundFrame struct {
	Message string `json:"message"`
}

type connectedFrame struct {
	Type          string `json:"type"`
	SwapRequestID int64  `json:"swapRequestId"`
}

type messageFrame struct {
	Type    string              `json:"type"`
	Message *models.ChatMessage `json:"message"`
}

type errorFrame struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

// Handler upgrades chat connections and relays messages between the two
// participants of a swap request.
type Handler struct {
	registry *Registry
	students StudentResolver
	chat     ChatBackend
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *Registry, students StudentResolver, chat ChatBackend, m *metrics.Metrics, logger zerolog.Logger) *Handler {
	return &Handler{
		registry: registry,
		students: students,
		chat:     chat,
		metrics:  m,
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for swap request chat
// @Description Upgrades the HTTP connection to a WebSocket scoped to one swap request. The token query parameter carries the institutional email of an authenticated student.
// @Tags chat, websocket
// @Param swapRequestId path int true "Swap request ID"
// @Param token query string true "Institutional email of the connecting student"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Router /chat/ws/{swapRequestId} [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	swapRequestID, err := strconv.ParseInt(c.Param("swapRequestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid swap request ID"})
		return
	}

	// The connection is upgraded before auth so the peer receives a policy
	// close frame instead of a failed handshake.
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("swapRequestID", swapRequestID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		registry:      h.registry,
		conn:          conn,
		send:          make(chan []byte, 64),
		swapRequestID: swapRequestID,
		logger:        h.logger,
	}

	token := c.Query("token")
	if token == "" {
		client.close(gorilla.ClosePolicyViolation, "missing token")
		return
	}

	student, err := h.students.GetByEmail(c.Request.Context(), token)
	if err != nil {
		client.close(gorilla.ClosePolicyViolation, "unknown student")
		return
	}

	if _, err := h.chat.Authorize(c.Request.Context(), student.ID, swapRequestID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSwapRequestNotFound):
			client.close(gorilla.ClosePolicyViolation, "swap request not found")
		case errors.Is(err, apperrors.ErrNotRequestParticipant):
			client.close(gorilla.ClosePolicyViolation, "not a participant")
		default:
			h.logger.Error().
				Err(err).
				Int64("swapRequestID", swapRequestID).
				Int64("studentID", student.ID).
				Msg("Failed to authorize chat connection")
			client.close(gorilla.CloseInternalServerErr, "authorization failed")
		}
		return
	}

	client.studentID = student.ID
	client.onMessage = func(payload []byte) {
		h.handleInbound(client, student, payload)
	}

	if previous := h.registry.Register(client); previous != nil {
		previous.close(gorilla.ClosePolicyViolation, "superseded by a new connection")
	}
	h.metrics.SessionOpened()

	go client.writePump()
	go func() {
		defer h.metrics.SessionClosed()
		client.readPump()
	}()

	client.enqueue(mustMarshal(connectedFrame{Type: "connected", SwapRequestID: swapRequestID}))

	h.logger.Info().
		Int64("swapRequestID", swapRequestID).
		Int64("studentID", student.ID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}

// handleInbound persists one inbound chat message and fans it out to both
// participants. The sender always gets an echo; the counterparty only if
// currently connected.
func (h *Handler) handleInbound(client *Client, sender *models.Student, payload []byte) {
	ctx := context.Background()

	var frame inboundFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		client.enqueue(mustMarshal(errorFrame{Type: "error", Detail: "invalid message format"}))
		return
	}

	message, err := h.chat.PostMessage(ctx, sender, client.swapRequestID, frame.Message)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyMessage):
			client.enqueue(mustMarshal(errorFrame{Type: "error", Detail: "message cannot be empty"}))
		case errors.Is(err, apperrors.ErrSwapRequestNotFound), errors.Is(err, apperrors.ErrNotRequestParticipant):
			client.close(gorilla.ClosePolicyViolation, "chat no longer available")
		default:
			h.logger.Error().
				Err(err).
				Int64("swapRequestID", client.swapRequestID).
				Int64("studentID", sender.ID).
				Msg("Failed to persist chat message")
			client.enqueue(mustMarshal(errorFrame{Type: "error", Detail: "failed to deliver message"}))
		}
		return
	}

	outbound := mustMarshal(messageFrame{Type: "message", Message: message})
	client.enqueue(outbound)
	h.registry.Send(message.ReceiverID, outbound)
}

func mustMarshal(v any) []byte {
	payload, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return payload
}
