package main

import (
	"context"
	"log"
	"os"

	echoapi "github.com/trezcool/eduhub/apps/api/echo"
	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/assignment"
	"github.com/trezcool/eduhub/core/course"
	"github.com/trezcool/eduhub/core/enrollment"
	"github.com/trezcool/eduhub/core/report"
	"github.com/trezcool/eduhub/core/user"
	emailsvc "github.com/trezcool/eduhub/services/email"
	logsvc "github.com/trezcool/eduhub/services/logger"
	"github.com/trezcool/eduhub/storage/database"
	mongorepos "github.com/trezcool/eduhub/storage/database/mongodb"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std)
	logger.Enable(!core.Conf.GetBool("debug"))

	// set up DB
	db, err := database.Open(context.Background())
	errAndDie(err, logger)
	defer func() { _ = database.Close(db) }()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.GetBool("debug") {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	usrRepo := mongorepos.NewUserRepository(db)
	enrRepo := mongorepos.NewEnrollmentRepository(db)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:   core.Conf.GetString("serverAddress"),
			Logger:    logger,
			UserSvc:   user.NewService(usrRepo),
			CourseSvc: course.NewService(mongorepos.NewCourseRepository(db)),
			EnrollSvc: enrollment.NewService(enrRepo, usrRepo, mailSvc),
			AssignSvc: assignment.NewService(mongorepos.NewAssignmentRepository(db)),
			ReportSvc: report.NewService(mongorepos.NewReportRepository(db)),
		},
	)
	app.Start()
}

func errAndDie(err error, logger core.Logger) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
