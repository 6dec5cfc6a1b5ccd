package main

import "context"

func (cli *commandLine) resetPassword(email, pwd string) error {
	return cli.tutorSvc.ResetPassword(context.Background(), email, pwd)
}
