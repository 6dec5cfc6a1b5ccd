package student

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no student matches both the id and the
// owning tutor. A student owned by another tutor fails identically so
// that record existence never leaks across tenants.
var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(ctx context.Context, s Student) (Student, error)
		QueryStudentsByTutor(ctx context.Context, tutorID string) ([]Student, error)
		QueryAllStudents(ctx context.Context) ([]Student, error)
		GetStudent(ctx context.Context, id, tutorID string) (Student, error)
		UpdateStudent(ctx context.Context, s Student) (Student, error)
		DeleteStudent(ctx context.Context, id string) error
		DeleteStudentsByTutor(ctx context.Context, tutorID string) error
	}

	// LessonRemover deletes all lessons referencing a student.
	LessonRemover interface {
		DeleteLessonsByStudent(ctx context.Context, studentID string) error
	}

	Service struct {
		repo    Repository
		lessons LessonRemover
	}
)

func NewService(repo Repository, lessons LessonRemover) *Service {
	return &Service{repo: repo, lessons: lessons}
}

func (svc *Service) Create(ctx context.Context, tutorID string, ns NewStudent) (Student, error) {
	s := Student{
		ID:         uuid.New().String(),
		TutorID:    tutorID,
		Name:       ns.Name,
		Notes:      ns.Notes,
		LessonLink: ns.LessonLink,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateStudent(ctx, s)
}

func (svc *Service) QueryByTutor(ctx context.Context, tutorID string) ([]Student, error) {
	return svc.repo.QueryStudentsByTutor(ctx, tutorID)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) Get(ctx context.Context, id, tutorID string) (Student, error) {
	return svc.repo.GetStudent(ctx, id, tutorID)
}

// Update replaces the mutable fields of a student; id, owner, flags and
// creation timestamp are untouched.
func (svc *Service) Update(ctx context.Context, id, tutorID string, ns NewStudent) (Student, error) {
	s, err := svc.repo.GetStudent(ctx, id, tutorID)
	if err != nil {
		return Student{}, err
	}
	s.Name = ns.Name
	s.Notes = ns.Notes
	s.LessonLink = ns.LessonLink
	return svc.repo.UpdateStudent(ctx, s)
}

// TogglePayment flips the payment flag. Read-modify-write: concurrent
// toggles on the same student can lose an update (last write wins).
func (svc *Service) TogglePayment(ctx context.Context, id, tutorID string) (Student, error) {
	s, err := svc.repo.GetStudent(ctx, id, tutorID)
	if err != nil {
		return Student{}, err
	}
	s.PaymentStatus = !s.PaymentStatus
	return svc.repo.UpdateStudent(ctx, s)
}

// ToggleHomework flips the homework flag; same caveat as TogglePayment.
func (svc *Service) ToggleHomework(ctx context.Context, id, tutorID string) (Student, error) {
	s, err := svc.repo.GetStudent(ctx, id, tutorID)
	if err != nil {
		return Student{}, err
	}
	s.HomeworkStatus = !s.HomeworkStatus
	return svc.repo.UpdateStudent(ctx, s)
}

// Delete removes a student and cascades to the lessons referencing it.
// Sequential store calls, not one transaction.
func (svc *Service) Delete(ctx context.Context, id, tutorID string) error {
	if _, err := svc.repo.GetStudent(ctx, id, tutorID); err != nil {
		return err
	}
	if err := svc.repo.DeleteStudent(ctx, id); err != nil {
		return err
	}
	return svc.lessons.DeleteLessonsByStudent(ctx, id)
}
