package inmemdb

import (
	"context"

	"github.com/creativedak/tutor1/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[s.ID] = &s
	return s, nil
}

func (repo *studentRepository) QueryStudentsByTutor(ctx context.Context, tutorID string) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := make([]student.Student, 0)
	for _, s := range repo.db.table {
		if len(students) == queryLimit {
			break
		}
		if s.TutorID == tutorID {
			students = append(students, *s)
		}
	}
	return students, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		if len(students) == queryLimit {
			break
		}
		students = append(students, *s)
	}
	return students, nil
}

func (repo *studentRepository) GetStudent(ctx context.Context, id, tutorID string) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.table[id]; ok && s.TutorID == tutorID {
		return *s, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	existing, ok := repo.db.table[s.ID]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	existing.Name = s.Name
	existing.Notes = s.Notes
	existing.LessonLink = s.LessonLink
	existing.PaymentStatus = s.PaymentStatus
	existing.HomeworkStatus = s.HomeworkStatus
	return *existing, nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return student.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *studentRepository) DeleteStudentsByTutor(ctx context.Context, tutorID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, s := range repo.db.table {
		if s.TutorID == tutorID {
			delete(repo.db.table, id)
		}
	}
	return nil
}
