package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

type chatFixture struct {
	svc       *ChatService
	students  *fakeStudentStore
	requests  *fakeSwapRequestStore
	requester *models.Student
	target    *models.Student
	request   *models.SwapRequest
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	students := newFakeStudentStore()
	requests := newFakeSwapRequestStore(students)
	swaps := NewSwapService(students, requests, 0.06, zerolog.Nop())

	requester := seedStudent(students, "a.b2021@vitstudent.ac.in", 8.55, models.BatchForenoon)
	target := seedStudent(students, "c.d2021@vitstudent.ac.in", 8.50, models.BatchEvening1)

	request, err := swaps.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	return &chatFixture{
		svc:       NewChatService(requests, newFakeChatStore(students)),
		students:  students,
		requests:  requests,
		requester: requester,
		target:    target,
		request:   request,
	}
}

func TestPostMessage(t *testing.T) {
	f := newChatFixture(t)

	message, err := f.svc.PostMessage(context.Background(), f.requester, f.request.ID, "hello there")
	require.NoError(t, err)
	assert.Equal(t, f.requester.ID, message.SenderID)
	assert.Equal(t, f.target.ID, message.ReceiverID)
	assert.Equal(t, f.request.ID, message.SwapRequestID)
	require.NotNil(t, message.Sender)
	assert.Equal(t, f.requester.Email, message.Sender.Email)
}

func TestPostMessageWhitespaceOnly(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.svc.PostMessage(context.Background(), f.requester, f.request.ID, "   \t\n")
	assert.ErrorIs(t, err, apperrors.ErrEmptyMessage)
}

func TestPostMessageNonParticipant(t *testing.T) {
	f := newChatFixture(t)
	outsider := seedStudent(f.students, "e.f2021@vitstudent.ac.in", 8.52, models.BatchEvening2)

	_, err := f.svc.PostMessage(context.Background(), outsider, f.request.ID, "let me in")
	assert.ErrorIs(t, err, apperrors.ErrNotRequestParticipant)
}

func TestPostMessageUnknownRequest(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.svc.PostMessage(context.Background(), f.requester, 999, "anyone?")
	assert.ErrorIs(t, err, apperrors.ErrSwapRequestNotFound)
}

func TestHistoryOrderedOldestFirst(t *testing.T) {
	f := newChatFixture(t)

	texts := []string{"first", "second", "third"}
	senders := []*models.Student{f.requester, f.target, f.requester}
	for i, text := range texts {
		_, err := f.svc.PostMessage(context.Background(), senders[i], f.request.ID, text)
		require.NoError(t, err)
	}

	history, err := f.svc.History(context.Background(), f.target.ID, f.request.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, text := range texts {
		assert.Equal(t, text, history[i].Message)
		assert.Equal(t, senders[i].ID, history[i].SenderID)
		require.NotNil(t, history[i].Sender)
	}
}

func TestHistoryNonParticipant(t *testing.T) {
	f := newChatFixture(t)
	outsider := seedStudent(f.students, "e.f2021@vitstudent.ac.in", 8.52, models.BatchEvening2)

	_, err := f.svc.History(context.Background(), outsider.ID, f.request.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestParticipant)
}

func TestAuthorize(t *testing.T) {
	f := newChatFixture(t)

	request, err := f.svc.Authorize(context.Background(), f.requester.ID, f.request.ID)
	require.NoError(t, err)
	assert.Equal(t, f.request.ID, request.ID)

	request, err = f.svc.Authorize(context.Background(), f.target.ID, f.request.ID)
	require.NoError(t, err)
	assert.Equal(t, f.request.ID, request.ID)
}
