package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/creativedak/tutor1/core/lesson"
)

type lessonRepository struct {
	db *sqlx.DB
}

func NewLessonRepository(db *sqlx.DB) lesson.Repository {
	return &lessonRepository{db: db}
}

func (repo *lessonRepository) CreateLesson(ctx context.Context, l lesson.Lesson) (lesson.Lesson, error) {
	q := `
INSERT INTO lesson (id, tutor_id, student_id, title, subject, start_time, end_time, notes, created_at)
VALUES (:id, :tutor_id, :student_id, :title, :subject, :start_time, :end_time, :notes, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, l); err != nil {
		return lesson.Lesson{}, err
	}
	return l, nil
}

func (repo *lessonRepository) QueryLessonsByTutor(ctx context.Context, tutorID string) ([]lesson.Lesson, error) {
	lessons := make([]lesson.Lesson, 0)
	q := `SELECT * FROM lesson WHERE tutor_id = $1 ORDER BY start_time LIMIT $2`
	if err := repo.db.SelectContext(ctx, &lessons, q, tutorID, queryLimit); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (repo *lessonRepository) QueryAllLessons(ctx context.Context) ([]lesson.Lesson, error) {
	lessons := make([]lesson.Lesson, 0)
	q := `SELECT * FROM lesson ORDER BY start_time LIMIT $1`
	if err := repo.db.SelectContext(ctx, &lessons, q, queryLimit); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (repo *lessonRepository) GetLesson(ctx context.Context, id, tutorID string) (lesson.Lesson, error) {
	var l lesson.Lesson
	q := `SELECT * FROM lesson WHERE id = $1 AND tutor_id = $2`
	if err := repo.db.GetContext(ctx, &l, q, id, tutorID); err != nil {
		if err == sql.ErrNoRows {
			return lesson.Lesson{}, lesson.ErrNotFound
		}
		return lesson.Lesson{}, err
	}
	return l, nil
}

func (repo *lessonRepository) UpdateLesson(ctx context.Context, l lesson.Lesson) (lesson.Lesson, error) {
	var updated lesson.Lesson
	q := `
UPDATE lesson
SET student_id = $2, title = $3, subject = $4, start_time = $5, end_time = $6, notes = $7
WHERE id = $1
RETURNING *`
	err := repo.db.GetContext(ctx, &updated, q, l.ID, l.StudentID, l.Title, l.Subject, l.StartTime, l.EndTime, l.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return lesson.Lesson{}, lesson.ErrNotFound
		}
		return lesson.Lesson{}, err
	}
	return updated, nil
}

func (repo *lessonRepository) DeleteLesson(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM lesson WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return lesson.ErrNotFound
	}
	return nil
}

func (repo *lessonRepository) DeleteLessonsByStudent(ctx context.Context, studentID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM lesson WHERE student_id = $1`, studentID)
	return err
}

func (repo *lessonRepository) DeleteLessonsByTutor(ctx context.Context, tutorID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM lesson WHERE tutor_id = $1`, tutorID)
	return err
}
