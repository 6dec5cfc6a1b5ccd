package main

import (
	"context"

	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/tutor"
)

// addTutor creates an admin tutor, or promotes an existing account and
// resets its password.
func (cli *commandLine) addTutor(email, name, pwd string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)
	name = core.CleanString(name)

	t, err := cli.tutorSvc.GetByEmail(ctx, email)
	if err != nil {
		if err != tutor.ErrNotFound {
			return err
		}
		_, err = cli.tutorSvc.Register(ctx, tutor.NewTutor{
			Email:    email,
			Name:     name,
			Password: pwd,
			IsAdmin:  true,
		})
		return err
	}

	if !t.IsAdmin {
		if _, err := cli.tutorSvc.ToggleAdmin(ctx, t.ID); err != nil {
			return err
		}
	}
	return cli.tutorSvc.ResetPassword(ctx, email, pwd)
}
