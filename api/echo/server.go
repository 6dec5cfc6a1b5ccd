package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/creativedak/tutor1/core"
	"github.com/creativedak/tutor1/core/lesson"
	"github.com/creativedak/tutor1/core/stats"
	"github.com/creativedak/tutor1/core/student"
	"github.com/creativedak/tutor1/core/tutor"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		TutorSvc   *tutor.Service
		StudentSvc *student.Service
		LessonSvc  *lesson.Service
		StatsSvc   *stats.Service
		Logger     core.Logger
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     core.Conf.Server.AllowedOrigins,
		AllowCredentials: true,
	}))
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	api := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(appJWTConfig)
	admin := adminMiddleware(s.opts.TutorSvc)

	registerTutorAPI(api, jwt, admin, s.opts.TutorSvc)
	registerStudentAPI(api, jwt, admin, s.opts.StudentSvc, s.opts.TutorSvc)
	registerLessonAPI(api, jwt, admin, s.opts.LessonSvc, s.opts.TutorSvc)
	registerStatsAPI(api, jwt, admin, s.opts.StatsSvc)
}

// signalShutdown triggers a graceful shutdown; called by the error
// handler when an integrity error is caught.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

// Start runs the server until it errors out or a shutdown signal arrives.
func (s *server) Start() error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.app.Start(s.opts.Addr)
	}()

	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")
	case sig := <-s.shutdown:
		s.opts.Logger.Info("shutdown started", map[string]interface{}{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), core.Conf.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Stop(ctx); err != nil {
			_ = s.app.Close()
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}
	return nil
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+core.Conf.AppName+" API!")
}
