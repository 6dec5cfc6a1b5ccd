package stats

import (
	"context"
	"fmt"

	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

// Stats is the system-wide report served to admins. LessonsByMonth
// buckets lessons by the calendar year-month of their start time as
// stored; no timezone normalization is applied.
type Stats struct {
	TutorCount     int            `json:"tutor_count"`
	StudentCount   int            `json:"student_count"`
	LessonCount    int            `json:"lesson_count"`
	LessonsByMonth map[string]int `json:"lessons_by_month"`
}

type (
	TutorQuerier interface {
		QueryAllTutors(ctx context.Context) ([]tutor.Tutor, error)
	}
	StudentQuerier interface {
		QueryAllStudents(ctx context.Context) ([]student.Student, error)
	}
	LessonQuerier interface {
		QueryAllLessons(ctx context.Context) ([]lesson.Lesson, error)
	}

	Service struct {
		tutors   TutorQuerier
		students StudentQuerier
		lessons  LessonQuerier
	}
)

func NewService(tutors TutorQuerier, students StudentQuerier, lessons LessonQuerier) *Service {
	return &Service{tutors: tutors, students: students, lessons: lessons}
}

// Stats computes all counts from the same capped reads the admin list
// endpoints use, so the lesson count always equals the histogram sum.
func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	tutors, err := svc.tutors.QueryAllTutors(ctx)
	if err != nil {
		return Stats{}, err
	}
	students, err := svc.students.QueryAllStudents(ctx)
	if err != nil {
		return Stats{}, err
	}
	lessons, err := svc.lessons.QueryAllLessons(ctx)
	if err != nil {
		return Stats{}, err
	}

	byMonth := make(map[string]int)
	for _, l := range lessons {
		key := fmt.Sprintf("%04d-%02d", l.StartTime.Year(), int(l.StartTime.Month()))
		byMonth[key]++
	}

	return Stats{
		TutorCount:     len(tutors),
		StudentCount:   len(students),
		LessonCount:    len(lessons),
		LessonsByMonth: byMonth,
	}, nil
}
