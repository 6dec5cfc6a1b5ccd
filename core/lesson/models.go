package lesson

import (
	"time"

	"github.com/creativedak/tutor1/core"
)

// Lesson is a booking between a tutor and one of their students.
// TutorID is set at creation and never reassigned; StudentID must
// resolve to a student owned by the same tutor.
type Lesson struct {
	ID        string    `json:"id" db:"id"`
	TutorID   string    `json:"tutor_id" db:"tutor_id"`
	StudentID string    `json:"student_id" db:"student_id"`
	Title     string    `json:"title" db:"title"`
	Subject   string    `json:"subject" db:"subject"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewLesson contains the mutable fields of a Lesson; used for both
// creation and full-replace updates.
type NewLesson struct {
	Title     string    `json:"title" validate:"required"`
	StudentID string    `json:"student_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Subject   string    `json:"subject" validate:"required"`
	Notes     string    `json:"notes"`
}

func (nl *NewLesson) Validate() error {
	nl.Title = core.CleanString(nl.Title)
	nl.Subject = core.CleanString(nl.Subject)
	return core.Validate.Struct(nl)
}
