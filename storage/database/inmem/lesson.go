package inmemdb

import (
	"context"

	"github.com/creativedak/tutor1/core/lesson"
)

type lessonRepository struct {
	db *lessonTable
}

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db.lesson}
}

func (repo *lessonRepository) CreateLesson(ctx context.Context, l lesson.Lesson) (lesson.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[l.ID] = &l
	return l, nil
}

func (repo *lessonRepository) QueryLessonsByTutor(ctx context.Context, tutorID string) ([]lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	lessons := make([]lesson.Lesson, 0)
	for _, l := range repo.db.table {
		if len(lessons) == queryLimit {
			break
		}
		if l.TutorID == tutorID {
			lessons = append(lessons, *l)
		}
	}
	return lessons, nil
}

func (repo *lessonRepository) QueryAllLessons(ctx context.Context) ([]lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	lessons := make([]lesson.Lesson, 0, len(repo.db.table))
	for _, l := range repo.db.table {
		if len(lessons) == queryLimit {
			break
		}
		lessons = append(lessons, *l)
	}
	return lessons, nil
}

func (repo *lessonRepository) GetLesson(ctx context.Context, id, tutorID string) (lesson.Lesson, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if l, ok := repo.db.table[id]; ok && l.TutorID == tutorID {
		return *l, nil
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}

func (repo *lessonRepository) UpdateLesson(ctx context.Context, l lesson.Lesson) (lesson.Lesson, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	existing, ok := repo.db.table[l.ID]
	if !ok {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	existing.StudentID = l.StudentID
	existing.Title = l.Title
	existing.Subject = l.Subject
	existing.StartTime = l.StartTime
	existing.EndTime = l.EndTime
	existing.Notes = l.Notes
	return *existing, nil
}

func (repo *lessonRepository) DeleteLesson(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return lesson.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *lessonRepository) DeleteLessonsByStudent(ctx context.Context, studentID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, l := range repo.db.table {
		if l.StudentID == studentID {
			delete(repo.db.table, id)
		}
	}
	return nil
}

func (repo *lessonRepository) DeleteLessonsByTutor(ctx context.Context, tutorID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, l := range repo.db.table {
		if l.TutorID == tutorID {
			delete(repo.db.table, id)
		}
	}
	return nil
}
