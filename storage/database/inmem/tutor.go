package inmemdb

import (
	"context"

	"github.com/creativedak/tutor1/core/tutor"
)

type tutorRepository struct {
	db *tutorTable
}

func NewTutorRepository(db *DB) tutor.Repository {
	return &tutorRepository{db: db.tutor}
}

func (repo *tutorRepository) query() []tutor.Tutor {
	tutors := make([]tutor.Tutor, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		if len(tutors) == queryLimit {
			break
		}
		tutors = append(tutors, *t)
	}
	return tutors
}

func (repo *tutorRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.db.table {
		if t.Email == email {
			return tutor.ErrEmailExists
		}
	}
	return nil
}

func (repo *tutorRepository) CreateTutor(ctx context.Context, t tutor.Tutor) (tutor.Tutor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, existing := range repo.db.table {
		if existing.Email == t.Email {
			return tutor.Tutor{}, tutor.ErrEmailExists
		}
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *tutorRepository) QueryAllTutors(ctx context.Context) ([]tutor.Tutor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *tutorRepository) GetTutorByID(ctx context.Context, id string) (tutor.Tutor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return tutor.Tutor{}, tutor.ErrNotFound
}

func (repo *tutorRepository) GetTutorByEmail(ctx context.Context, email string) (tutor.Tutor, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.db.table {
		if t.Email == email {
			return *t, nil
		}
	}
	return tutor.Tutor{}, tutor.ErrNotFound
}

func (repo *tutorRepository) SetTutorAdmin(ctx context.Context, id string, isAdmin bool) (tutor.Tutor, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.table[id]
	if !ok {
		return tutor.Tutor{}, tutor.ErrNotFound
	}
	t.IsAdmin = isAdmin
	return *t, nil
}

func (repo *tutorRepository) SetTutorPassword(ctx context.Context, id string, hash []byte) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.table[id]
	if !ok {
		return tutor.ErrNotFound
	}
	t.PasswordHash = hash
	return nil
}

func (repo *tutorRepository) DeleteTutor(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return tutor.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
