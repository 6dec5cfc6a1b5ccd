package student

import (
	"time"

	"github.com/creativedak/tutor1/core"
)

// Student is a record kept by a tutor. TutorID is set at creation and
// never reassigned.
type Student struct {
	ID             string    `json:"id" db:"id"`
	TutorID        string    `json:"tutor_id" db:"tutor_id"`
	Name           string    `json:"name" db:"name"`
	Notes          string    `json:"notes" db:"notes"`
	LessonLink     string    `json:"lesson_link" db:"lesson_link"`
	PaymentStatus  bool      `json:"payment_status" db:"payment_status"`
	HomeworkStatus bool      `json:"homework_status" db:"homework_status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// NewStudent contains the mutable fields of a Student; used for both
// creation and full-replace updates. The payment/homework flags are only
// reachable through the toggle operations.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	Notes      string `json:"notes"`
	LessonLink string `json:"lesson_link" validate:"omitempty,url"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.LessonLink = core.CleanString(ns.LessonLink)
	return core.Validate.Struct(ns)
}
