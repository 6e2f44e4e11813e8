package models

import "time"

// Student defines the student model based on the 'students' table.
// CurrentBatch is mutated only by an accepted swap; OriginalBatch is fixed
// at registration.
type Student struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	Email         string    `json:"email" db:"email" example:"anita.rao2022b@vitstudent.ac.in"`
	FirstName     string    `json:"firstName" db:"first_name" example:"Anita"`
	LastName      string    `json:"lastName" db:"last_name" example:"Rao"`
	CGPA          float64   `json:"cgpa" db:"cgpa" example:"8.55"`
	CurrentBatch  Batch     `json:"currentBatch" db:"current_batch" example:"Forenoon"`
	OriginalBatch Batch     `json:"originalBatch" db:"original_batch" example:"Evening 1"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name used in chat payloads.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
