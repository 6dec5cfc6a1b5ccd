package main

import (
	"github.com/pressly/goose/v3"

	"github.com/creativedak/tutor1/core"
	appfs "github.com/creativedak/tutor1/fs"
	"github.com/creativedak/tutor1/storage/database"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if err := database.CreateIfNotExist(core.Conf); err != nil {
		return err
	}
	goose.SetBaseFS(appfs.FS)
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db.DB, "migrations", arguments...)
}
