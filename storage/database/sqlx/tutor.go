package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/creativedak/tutor1/core/tutor"
)

type tutorRepository struct {
	db *sqlx.DB
}

func NewTutorRepository(db *sqlx.DB) tutor.Repository {
	return &tutorRepository{db: db}
}

func (repo *tutorRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	var exists bool
	q := `SELECT EXISTS(SELECT 1 FROM tutor WHERE email = $1)`
	if err := repo.db.GetContext(ctx, &exists, q, email); err != nil {
		return err
	}
	if exists {
		return tutor.ErrEmailExists
	}
	return nil
}

func (repo *tutorRepository) CreateTutor(ctx context.Context, t tutor.Tutor) (tutor.Tutor, error) {
	q := `
INSERT INTO tutor (id, email, name, password_hash, is_admin, created_at)
VALUES (:id, :email, :name, :password_hash, :is_admin, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, t); err != nil {
		if isUniqueViolation(err) {
			return tutor.Tutor{}, tutor.ErrEmailExists
		}
		return tutor.Tutor{}, err
	}
	return t, nil
}

func (repo *tutorRepository) QueryAllTutors(ctx context.Context) ([]tutor.Tutor, error) {
	tutors := make([]tutor.Tutor, 0)
	q := `SELECT * FROM tutor ORDER BY created_at LIMIT $1`
	if err := repo.db.SelectContext(ctx, &tutors, q, queryLimit); err != nil {
		return nil, err
	}
	return tutors, nil
}

func (repo *tutorRepository) GetTutorByID(ctx context.Context, id string) (tutor.Tutor, error) {
	var t tutor.Tutor
	q := `SELECT * FROM tutor WHERE id = $1`
	if err := repo.db.GetContext(ctx, &t, q, id); err != nil {
		if err == sql.ErrNoRows {
			return tutor.Tutor{}, tutor.ErrNotFound
		}
		return tutor.Tutor{}, err
	}
	return t, nil
}

func (repo *tutorRepository) GetTutorByEmail(ctx context.Context, email string) (tutor.Tutor, error) {
	var t tutor.Tutor
	q := `SELECT * FROM tutor WHERE email = $1`
	if err := repo.db.GetContext(ctx, &t, q, email); err != nil {
		if err == sql.ErrNoRows {
			return tutor.Tutor{}, tutor.ErrNotFound
		}
		return tutor.Tutor{}, err
	}
	return t, nil
}

func (repo *tutorRepository) SetTutorAdmin(ctx context.Context, id string, isAdmin bool) (tutor.Tutor, error) {
	var t tutor.Tutor
	q := `UPDATE tutor SET is_admin = $2 WHERE id = $1 RETURNING *`
	if err := repo.db.GetContext(ctx, &t, q, id, isAdmin); err != nil {
		if err == sql.ErrNoRows {
			return tutor.Tutor{}, tutor.ErrNotFound
		}
		return tutor.Tutor{}, err
	}
	return t, nil
}

func (repo *tutorRepository) SetTutorPassword(ctx context.Context, id string, hash []byte) error {
	q := `UPDATE tutor SET password_hash = $2 WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, q, id, hash)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return tutor.ErrNotFound
	}
	return nil
}

func (repo *tutorRepository) DeleteTutor(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM tutor WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return tutor.ErrNotFound
	}
	return nil
}
