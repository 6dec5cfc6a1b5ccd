package tutor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/creativedak/tutor1/core"
)

var (
	// errors
	ErrNotFound    = errors.New("tutor not found")
	ErrEmailExists = errors.New("a tutor with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string) error
		CreateTutor(ctx context.Context, t Tutor) (Tutor, error)
		QueryAllTutors(ctx context.Context) ([]Tutor, error)
		GetTutorByID(ctx context.Context, id string) (Tutor, error)
		GetTutorByEmail(ctx context.Context, email string) (Tutor, error)
		SetTutorAdmin(ctx context.Context, id string, isAdmin bool) (Tutor, error)
		SetTutorPassword(ctx context.Context, id string, hash []byte) error
		DeleteTutor(ctx context.Context, id string) error
	}

	// StudentRemover deletes all students owned by a tutor.
	StudentRemover interface {
		DeleteStudentsByTutor(ctx context.Context, tutorID string) error
	}

	// LessonRemover deletes all lessons owned by a tutor.
	LessonRemover interface {
		DeleteLessonsByTutor(ctx context.Context, tutorID string) error
	}

	Service struct {
		repo     Repository
		students StudentRemover
		lessons  LessonRemover
	}
)

func NewService(repo Repository, students StudentRemover, lessons LessonRemover) *Service {
	return &Service{repo: repo, students: students, lessons: lessons}
}

func (svc *Service) checkUniqueness(ctx context.Context, email string) error {
	if err := svc.repo.CheckEmailUniqueness(ctx, email); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Register(ctx context.Context, nt NewTutor) (Tutor, error) {
	t := Tutor{
		ID:        uuid.New().String(),
		Email:     nt.Email,
		Name:      nt.Name,
		IsAdmin:   nt.IsAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.SetPassword(nt.Password); err != nil {
		return Tutor{}, err
	}
	t, err := svc.repo.CreateTutor(ctx, t)
	if err == ErrEmailExists { // lost a registration race
		return Tutor{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
	}
	return t, err
}

func (svc *Service) QueryAll(ctx context.Context) ([]Tutor, error) {
	return svc.repo.QueryAllTutors(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Tutor, error) {
	return svc.repo.GetTutorByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Tutor, error) {
	return svc.repo.GetTutorByEmail(ctx, core.CleanString(email, true /* lower */))
}

// ToggleAdmin flips a tutor's admin flag. Read-modify-write: concurrent
// flips on the same tutor can lose an update (last write wins).
func (svc *Service) ToggleAdmin(ctx context.Context, id string) (Tutor, error) {
	t, err := svc.repo.GetTutorByID(ctx, id)
	if err != nil {
		return Tutor{}, err
	}
	return svc.repo.SetTutorAdmin(ctx, id, !t.IsAdmin)
}

func (svc *Service) ResetPassword(ctx context.Context, email, pwd string) error {
	t, err := svc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := t.SetPassword(pwd); err != nil {
		return err
	}
	return svc.repo.SetTutorPassword(ctx, t.ID, t.PasswordHash)
}

// Delete removes a tutor and cascades to their students and lessons.
// The cascade legs are sequential store calls, not one transaction: a crash
// between them leaves orphaned child records.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if _, err := svc.repo.GetTutorByID(ctx, id); err != nil {
		return err
	}
	if err := svc.repo.DeleteTutor(ctx, id); err != nil {
		return err
	}
	if err := svc.students.DeleteStudentsByTutor(ctx, id); err != nil {
		return err
	}
	return svc.lessons.DeleteLessonsByTutor(ctx, id)
}
