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

type swapFixture struct {
	svc      *SwapService
	students *fakeStudentStore
	requests *fakeSwapRequestStore
}

func newSwapFixture() *swapFixture {
	students := newFakeStudentStore()
	requests := newFakeSwapRequestStore(students)
	return &swapFixture{
		svc:      NewSwapService(students, requests, 0.06, zerolog.Nop()),
		students: students,
		requests: requests,
	}
}

func (f *swapFixture) pair(t *testing.T) (*models.Student, *models.Student) {
	t.Helper()
	requester := seedStudent(f.students, "a.b2021@vitstudent.ac.in", 8.55, models.BatchForenoon)
	target := seedStudent(f.students, "c.d2021@vitstudent.ac.in", 8.50, models.BatchEvening1)
	return requester, target
}

func TestCreateSwapRequest(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	message := "want to swap?"
	request, err := f.svc.Create(context.Background(), requester, target.ID, &message)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, request.Status)
	assert.Equal(t, requester.ID, request.RequesterID)
	assert.Equal(t, target.ID, request.TargetID)
	require.NotNil(t, request.Message)
	assert.Equal(t, message, *request.Message)
}

func TestCreateSwapRequestRejectsSelf(t *testing.T) {
	f := newSwapFixture()
	requester, _ := f.pair(t)

	_, err := f.svc.Create(context.Background(), requester, requester.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrSelfSwapRequest)
}

func TestCreateSwapRequestUnknownTarget(t *testing.T) {
	f := newSwapFixture()
	requester, _ := f.pair(t)

	_, err := f.svc.Create(context.Background(), requester, 999, nil)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateSwapRequestToleranceExceeded(t *testing.T) {
	f := newSwapFixture()
	requester, _ := f.pair(t)
	far := seedStudent(f.students, "e.f2021@vitstudent.ac.in", 9.50, models.BatchEvening2)

	_, err := f.svc.Create(context.Background(), requester, far.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrCGPAToleranceExceeded)
}

func TestCreateSwapRequestDuplicatePending(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	_, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), requester, target.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrPendingRequestExists)

	// The reverse direction is blocked as well
	_, err = f.svc.Create(context.Background(), target, requester.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrPendingRequestExists)
}

func TestAcceptSwapsBatches(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	accepted, err := f.svc.Accept(context.Background(), target.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusAccepted, accepted.Status)

	// Current batches exchanged, original batches untouched
	gotRequester, err := f.students.GetByID(context.Background(), requester.ID)
	require.NoError(t, err)
	gotTarget, err := f.students.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BatchEvening1, gotRequester.CurrentBatch)
	assert.Equal(t, models.BatchForenoon, gotTarget.CurrentBatch)
	assert.Equal(t, models.BatchForenoon, gotRequester.OriginalBatch)
	assert.Equal(t, models.BatchEvening1, gotTarget.OriginalBatch)
}

func TestAcceptOnlyByTarget(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Accept(context.Background(), requester.ID, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestTarget)
}

func TestAcceptProcessedRequest(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Accept(context.Background(), target.ID, request.ID)
	require.NoError(t, err)

	// A second accept must not swap batches back
	_, err = f.svc.Accept(context.Background(), target.ID, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrSwapRequestProcessed)

	gotRequester, err := f.students.GetByID(context.Background(), requester.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BatchEvening1, gotRequester.CurrentBatch)
}

func TestRejectOnlyByTarget(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Reject(context.Background(), requester.ID, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestTarget)

	rejected, err := f.svc.Reject(context.Background(), target.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusRejected, rejected.Status)
}

func TestCancelOnlyByRequester(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), target.ID, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestOwner)

	cancelled, err := f.svc.Cancel(context.Background(), requester.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusCancelled, cancelled.Status)
}

func TestCancelAfterReject(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	_, err = f.svc.Reject(context.Background(), target.ID, request.ID)
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), requester.ID, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrSwapRequestProcessed)
}

func TestGetVisibleToParticipantsOnly(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)
	outsider := seedStudent(f.students, "e.f2021@vitstudent.ac.in", 8.52, models.BatchEvening2)

	request, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), target.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, got.ID)

	_, err = f.svc.Get(context.Background(), outsider.ID, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotRequestParticipant)
}

func TestListFiltersByDirectionAndStatus(t *testing.T) {
	f := newSwapFixture()
	requester, target := f.pair(t)
	third := seedStudent(f.students, "e.f2021@vitstudent.ac.in", 8.52, models.BatchEvening2)

	first, err := f.svc.Create(context.Background(), requester, target.ID, nil)
	require.NoError(t, err)
	second, err := f.svc.Create(context.Background(), third, requester.ID, nil)
	require.NoError(t, err)

	sent, err := f.svc.List(context.Background(), requester.ID, true, nil)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, first.ID, sent[0].ID)

	received, err := f.svc.List(context.Background(), requester.ID, false, nil)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, second.ID, received[0].ID)

	_, err = f.svc.Reject(context.Background(), requester.ID, second.ID)
	require.NoError(t, err)

	pending := models.SwapStatusPending
	received, err = f.svc.List(context.Background(), requester.ID, false, &pending)
	require.NoError(t, err)
	assert.Empty(t, received)
}
