package lesson

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/creativedak/tutor1/core/student"
)

// ErrNotFound is returned when no lesson matches both the id and the
// owning tutor; see student.ErrNotFound for the cross-tenant rationale.
var ErrNotFound = errors.New("lesson not found")

type (
	Repository interface {
		CreateLesson(ctx context.Context, l Lesson) (Lesson, error)
		QueryLessonsByTutor(ctx context.Context, tutorID string) ([]Lesson, error)
		QueryAllLessons(ctx context.Context) ([]Lesson, error)
		GetLesson(ctx context.Context, id, tutorID string) (Lesson, error)
		UpdateLesson(ctx context.Context, l Lesson) (Lesson, error)
		DeleteLesson(ctx context.Context, id string) error
		DeleteLessonsByStudent(ctx context.Context, studentID string) error
		DeleteLessonsByTutor(ctx context.Context, tutorID string) error
	}

	// StudentGetter resolves a student scoped to its owning tutor; used
	// for the referential check before a lesson is written.
	StudentGetter interface {
		GetStudent(ctx context.Context, id, tutorID string) (student.Student, error)
	}

	Service struct {
		repo     Repository
		students StudentGetter
	}
)

func NewService(repo Repository, students StudentGetter) *Service {
	return &Service{repo: repo, students: students}
}

// Create persists a new lesson after verifying that the referenced
// student belongs to the owning tutor. The check failing aborts before
// any write.
func (svc *Service) Create(ctx context.Context, tutorID string, nl NewLesson) (Lesson, error) {
	if _, err := svc.students.GetStudent(ctx, nl.StudentID, tutorID); err != nil {
		return Lesson{}, err
	}
	l := Lesson{
		ID:        uuid.New().String(),
		TutorID:   tutorID,
		StudentID: nl.StudentID,
		Title:     nl.Title,
		Subject:   nl.Subject,
		StartTime: nl.StartTime,
		EndTime:   nl.EndTime,
		Notes:     nl.Notes,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateLesson(ctx, l)
}

func (svc *Service) QueryByTutor(ctx context.Context, tutorID string) ([]Lesson, error) {
	return svc.repo.QueryLessonsByTutor(ctx, tutorID)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Lesson, error) {
	return svc.repo.QueryAllLessons(ctx)
}

func (svc *Service) Get(ctx context.Context, id, tutorID string) (Lesson, error) {
	return svc.repo.GetLesson(ctx, id, tutorID)
}

// Update replaces the mutable fields of a lesson; the student
// referential check is re-run since StudentID may change.
func (svc *Service) Update(ctx context.Context, id, tutorID string, nl NewLesson) (Lesson, error) {
	l, err := svc.repo.GetLesson(ctx, id, tutorID)
	if err != nil {
		return Lesson{}, err
	}
	if _, err := svc.students.GetStudent(ctx, nl.StudentID, tutorID); err != nil {
		return Lesson{}, err
	}
	l.StudentID = nl.StudentID
	l.Title = nl.Title
	l.Subject = nl.Subject
	l.StartTime = nl.StartTime
	l.EndTime = nl.EndTime
	l.Notes = nl.Notes
	return svc.repo.UpdateLesson(ctx, l)
}

func (svc *Service) Delete(ctx context.Context, id, tutorID string) error {
	if _, err := svc.repo.GetLesson(ctx, id, tutorID); err != nil {
		return err
	}
	return svc.repo.DeleteLesson(ctx, id)
}
