package main

import (
	"log"
	"os"

	echoapi "github.com/creativedak/tutor1/api/echo"
	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/stats"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
	logsvc "github.com/creativedak/tutor1/services/logger"
	"github.com/creativedak/tutor1/storage/database"
	sqlxrepos "github.com/creativedak/tutor1/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	} else {
		logger = logsvc.NewConsoleLogger(std)
	}

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(logger, err)
	defer func() { _ = db.Close() }()
	errAndDie(logger, database.Ping(db))
	if core.Conf.Debug { // apply pending migrations on local runs
		errAndDie(logger, database.Migrate(db))
	}

	// set up repositories & services
	tutorRepo := sqlxrepos.NewTutorRepository(db)
	studentRepo := sqlxrepos.NewStudentRepository(db)
	lessonRepo := sqlxrepos.NewLessonRepository(db)

	tutorSvc := tutor.NewService(tutorRepo, studentRepo, lessonRepo)
	studentSvc := student.NewService(studentRepo, lessonRepo)
	lessonSvc := lesson.NewService(lessonRepo, studentRepo)
	statsSvc := stats.NewService(tutorRepo, studentRepo, lessonRepo)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Addr:       core.Conf.Server.Address(),
		TutorSvc:   tutorSvc,
		StudentSvc: studentSvc,
		LessonSvc:  lessonSvc,
		StatsSvc:   statsSvc,
		Logger:     logger,
	})
	errAndDie(logger, app.Start())
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
