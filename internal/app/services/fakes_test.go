package services

import (
	"context"
	"sort"
	"time"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore for service tests.
type fakeStudentStore struct {
	nextID   int64
	students map[int64]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1, students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) add(student *models.Student) *models.Student {
	if student.ID == 0 {
		student.ID = f.nextID
		f.nextID++
	} else if student.ID >= f.nextID {
		f.nextID = student.ID + 1
	}
	f.students[student.ID] = student
	return student
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.Email == student.Email {
			return apperrors.ErrAlreadyRegistered
		}
	}
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	f.add(student)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *student
	return &clone, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, student := range f.students {
		if student.Email == email {
			clone := *student
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) UpdateCGPA(_ context.Context, id int64, cgpa float64) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.CGPA = cgpa
	student.UpdatedAt = time.Now()
	return nil
}

func (f *fakeStudentStore) ListByCGPAWindow(_ context.Context, excludeID int64, min, max float64) ([]*models.Student, error) {
	var result []*models.Student
	for _, student := range f.students {
		if student.ID == excludeID {
			continue
		}
		if student.CGPA < min || student.CGPA > max {
			continue
		}
		clone := *student
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CGPA != result[j].CGPA {
			return result[i].CGPA > result[j].CGPA
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (f *fakeStudentStore) List(_ context.Context, skip, limit int) ([]*models.Student, error) {
	var all []*models.Student
	for _, student := range f.students {
		clone := *student
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// fakeSwapRequestStore is an in-memory SwapRequestStore. It shares the
// student store so AcceptAndSwap can exchange batches.
type fakeSwapRequestStore struct {
	nextID   int64
	requests map[int64]*models.SwapRequest
	students *fakeStudentStore
}

func newFakeSwapRequestStore(students *fakeStudentStore) *fakeSwapRequestStore {
	return &fakeSwapRequestStore{
		nextID:   1,
		requests: make(map[int64]*models.SwapRequest),
		students: students,
	}
}

func (f *fakeSwapRequestStore) Create(_ context.Context, request *models.SwapRequest) error {
	for _, existing := range f.requests {
		if existing.Status != models.SwapStatusPending {
			continue
		}
		samePair := (existing.RequesterID == request.RequesterID && existing.TargetID == request.TargetID) ||
			(existing.RequesterID == request.TargetID && existing.TargetID == request.RequesterID)
		if samePair {
			return apperrors.ErrPendingRequestExists
		}
	}
	request.ID = f.nextID
	f.nextID++
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return nil
}

func (f *fakeSwapRequestStore) GetByID(_ context.Context, id int64) (*models.SwapRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrSwapRequestNotFound
	}
	clone := *request
	if requester, ok := f.students.students[request.RequesterID]; ok {
		rc := *requester
		clone.Requester = &rc
	}
	if target, ok := f.students.students[request.TargetID]; ok {
		tc := *target
		clone.Target = &tc
	}
	return &clone, nil
}

func (f *fakeSwapRequestStore) HasPendingBetween(_ context.Context, studentA, studentB int64) (bool, error) {
	for _, request := range f.requests {
		if request.Status != models.SwapStatusPending {
			continue
		}
		if (request.RequesterID == studentA && request.TargetID == studentB) ||
			(request.RequesterID == studentB && request.TargetID == studentA) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSwapRequestStore) ListByStudent(ctx context.Context, studentID int64, sent bool, status *models.SwapRequestStatus) ([]*models.SwapRequest, error) {
	var result []*models.SwapRequest
	for id, request := range f.requests {
		if sent && request.RequesterID != studentID {
			continue
		}
		if !sent && request.TargetID != studentID {
			continue
		}
		if status != nil && request.Status != *status {
			continue
		}
		clone, err := f.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, clone)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (f *fakeSwapRequestStore) Finalize(_ context.Context, id int64, status models.SwapRequestStatus) error {
	request, ok := f.requests[id]
	if !ok {
		return apperrors.ErrSwapRequestNotFound
	}
	if request.Status != models.SwapStatusPending {
		return apperrors.ErrSwapRequestProcessed
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return nil
}

func (f *fakeSwapRequestStore) AcceptAndSwap(_ context.Context, id int64) error {
	request, ok := f.requests[id]
	if !ok {
		return apperrors.ErrSwapRequestNotFound
	}
	if request.Status != models.SwapStatusPending {
		return apperrors.ErrSwapRequestProcessed
	}

	requester, ok := f.students.students[request.RequesterID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	target, ok := f.students.students[request.TargetID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}

	requester.CurrentBatch, target.CurrentBatch = target.CurrentBatch, requester.CurrentBatch
	request.Status = models.SwapStatusAccepted
	request.UpdatedAt = time.Now()
	return nil
}

// fakeChatStore is an in-memory ChatStore.
type fakeChatStore struct {
	nextID   int64
	messages []*models.ChatMessage
	students *fakeStudentStore
}

func newFakeChatStore(students *fakeStudentStore) *fakeChatStore {
	return &fakeChatStore{nextID: 1, students: students}
}

func (f *fakeChatStore) Create(_ context.Context, message *models.ChatMessage) error {
	message.ID = f.nextID
	f.nextID++
	message.CreatedAt = time.Now()
	clone := *message
	f.messages = append(f.messages, &clone)
	return nil
}

func (f *fakeChatStore) ListByRequest(_ context.Context, swapRequestID int64) ([]*models.ChatMessage, error) {
	var result []*models.ChatMessage
	for _, message := range f.messages {
		if message.SwapRequestID != swapRequestID {
			continue
		}
		clone := *message
		if sender, ok := f.students.students[message.SenderID]; ok {
			sc := *sender
			clone.Sender = &sc
		}
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
