package main

import (
	"context"
	"log"
	"os"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/user"
	logsvc "github.com/trezcool/eduhub/services/logger"
	"github.com/trezcool/eduhub/storage/database"
	mongorepos "github.com/trezcool/eduhub/storage/database/mongodb"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std)
	logger.Enable(!core.Conf.GetBool("debug"))

	ctx := context.Background()
	db, err := database.Open(ctx)
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer func() { _ = database.Close(db) }()

	cli := commandLine{
		db:     db,
		usrSvc: user.NewService(mongorepos.NewUserRepository(db)),
		logger: logger,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}
