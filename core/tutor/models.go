package tutor

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/creativedak/tutor1/core"
)

// Tutor is an account holder. Every student and lesson record in the
// system is owned by exactly one Tutor.
type Tutor struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (t *Tutor) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	t.PasswordHash = hash
	return nil
}

func (t *Tutor) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(t.PasswordHash, []byte(pwd))
}

// NewTutor contains information needed to register a new Tutor.
type NewTutor struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

func (nt *NewTutor) Validate(ctx context.Context, svc *Service) error {
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Name = core.CleanString(nt.Name)

	if err := core.Validate.Struct(nt); err != nil {
		return err
	}
	return svc.checkUniqueness(ctx, nt.Email)
}
