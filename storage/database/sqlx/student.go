package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/creativedak/tutor1/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	q := `
INSERT INTO student (id, tutor_id, name, notes, lesson_link, payment_status, homework_status, created_at)
VALUES (:id, :tutor_id, :name, :notes, :lesson_link, :payment_status, :homework_status, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, s); err != nil {
		return student.Student{}, err
	}
	return s, nil
}

func (repo *studentRepository) QueryStudentsByTutor(ctx context.Context, tutorID string) ([]student.Student, error) {
	students := make([]student.Student, 0)
	q := `SELECT * FROM student WHERE tutor_id = $1 ORDER BY created_at LIMIT $2`
	if err := repo.db.SelectContext(ctx, &students, q, tutorID, queryLimit); err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	students := make([]student.Student, 0)
	q := `SELECT * FROM student ORDER BY created_at LIMIT $1`
	if err := repo.db.SelectContext(ctx, &students, q, queryLimit); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent is scoped by both id and owning tutor; a record owned by
// another tutor is indistinguishable from an absent one.
func (repo *studentRepository) GetStudent(ctx context.Context, id, tutorID string) (student.Student, error) {
	var s student.Student
	q := `SELECT * FROM student WHERE id = $1 AND tutor_id = $2`
	if err := repo.db.GetContext(ctx, &s, q, id, tutorID); err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return s, nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	var updated student.Student
	q := `
UPDATE student
SET name = $2, notes = $3, lesson_link = $4, payment_status = $5, homework_status = $6
WHERE id = $1
RETURNING *`
	err := repo.db.GetContext(ctx, &updated, q, s.ID, s.Name, s.Notes, s.LessonLink, s.PaymentStatus, s.HomeworkStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, err
	}
	return updated, nil
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM student WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return student.ErrNotFound
	}
	return nil
}

func (repo *studentRepository) DeleteStudentsByTutor(ctx context.Context, tutorID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM student WHERE tutor_id = $1`, tutorID)
	return err
}
