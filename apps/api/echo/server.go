package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/eduhub/apps/api/echo/handlers"
	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assignment"
	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/enrollment"
	"github.com/trezcool/eduhub/core/report"
	"github.com/trezcool/eduhub/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Logger    core.Logger
		UserSvc   *user.Service
		CourseSvc *course.Service
		EnrollSvc *enrollment.Service
		AssignSvc *assignment.Service
		ReportSvc *report.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	handlers.RegisterUserAPI(v1, s.opts.UserSvc)
	handlers.RegisterCourseAPI(v1, s.opts.CourseSvc, s.opts.EnrollSvc)
	handlers.RegisterEnrollmentAPI(v1, s.opts.EnrollSvc)
	handlers.RegisterAssignmentAPI(v1, s.opts.AssignSvc)
	handlers.RegisterReportAPI(v1, s.opts.ReportSvc)
}

// signalShutdown lets the error handler request a graceful stop.
func (s *server) signalShutdown() {
	go func() { _ = s.Stop(context.Background()) }()
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to EduHub API!")
}
