package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunm/batchswap/internal/app/models"
	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

func seedStudent(students *fakeStudentStore, email string, cgpa float64, batch models.Batch) *models.Student {
	return students.add(&models.Student{
		Email:         email,
		FirstName:     "Test",
		LastName:      "Student",
		CGPA:          cgpa,
		CurrentBatch:  batch,
		OriginalBatch: batch,
	})
}

func TestListEligibleWindow(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	self := seedStudent(students, "a.b2021@vitstudent.ac.in", 8.55, models.BatchForenoon)
	lower := seedStudent(students, "c.d2021@vitstudent.ac.in", 8.50, models.BatchEvening1)
	upper := seedStudent(students, "e.f2021@vitstudent.ac.in", 8.60, models.BatchEvening2)
	seedStudent(students, "g.h2021@vitstudent.ac.in", 8.70, models.BatchEvening1)
	seedStudent(students, "i.j2021@vitstudent.ac.in", 8.40, models.BatchEvening2)

	eligible, err := svc.ListEligible(context.Background(), self)
	require.NoError(t, err)
	require.Len(t, eligible, 2)

	// Highest CGPA first, annotated with the absolute difference
	assert.Equal(t, upper.ID, eligible[0].ID)
	assert.InDelta(t, 0.05, eligible[0].CGPADifference, 1e-9)
	assert.Equal(t, lower.ID, eligible[1].ID)
	assert.InDelta(t, 0.05, eligible[1].CGPADifference, 1e-9)
}

func TestListEligibleExcludesSelf(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	self := seedStudent(students, "a.b2021@vitstudent.ac.in", 8.55, models.BatchForenoon)

	eligible, err := svc.ListEligible(context.Background(), self)
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestListEligibleSymmetry(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	a := seedStudent(students, "a.b2021@vitstudent.ac.in", 8.50, models.BatchForenoon)
	b := seedStudent(students, "c.d2021@vitstudent.ac.in", 8.56, models.BatchEvening1)

	fromA, err := svc.ListEligible(context.Background(), a)
	require.NoError(t, err)
	fromB, err := svc.ListEligible(context.Background(), b)
	require.NoError(t, err)

	require.Len(t, fromA, 1)
	require.Len(t, fromB, 1)
	assert.Equal(t, b.ID, fromA[0].ID)
	assert.Equal(t, a.ID, fromB[0].ID)
}

func TestUpdateCGPA(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	student := seedStudent(students, "a.b2021@vitstudent.ac.in", 8.50, models.BatchForenoon)

	updated, err := svc.UpdateCGPA(context.Background(), student.ID, 9.12)
	require.NoError(t, err)
	assert.InDelta(t, 9.12, updated.CGPA, 1e-9)
}

func TestUpdateCGPARejectsOutOfRange(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	student := seedStudent(students, "a.b2021@vitstudent.ac.in", 8.50, models.BatchForenoon)

	_, err := svc.UpdateCGPA(context.Background(), student.ID, 10.01)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCGPA)

	_, err = svc.UpdateCGPA(context.Background(), student.ID, -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCGPA)
}

func TestUpdateCGPAUnknownStudent(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	_, err := svc.UpdateCGPA(context.Background(), 99, 8.0)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListClampsPagination(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewStudentService(students, 0.06)

	for i := 0; i < 5; i++ {
		seedStudent(students, string(rune('a'+i))+".x2021@vitstudent.ac.in", 8.0, models.BatchForenoon)
	}

	page, err := svc.List(context.Background(), -3, 0)
	require.NoError(t, err)
	assert.Len(t, page, 5)

	page, err = svc.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}
