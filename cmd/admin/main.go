package main

import (
	"log"
	"os"

	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/tutor"
	"github.com/creativedak/tutor1/storage/database"
	sqlxrepos "github.com/creativedak/tutor1/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(database.Ping(db))

	tutorRepo := sqlxrepos.NewTutorRepository(db)
	studentRepo := sqlxrepos.NewStudentRepository(db)
	lessonRepo := sqlxrepos.NewLessonRepository(db)

	// start CLI
	cli := commandLine{
		db:       db,
		tutorSvc: tutor.NewService(tutorRepo, studentRepo, lessonRepo),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
