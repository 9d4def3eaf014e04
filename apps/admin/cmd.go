package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/schema"
	"github.com/trezcool/eduhub/core/user"
	"github.com/trezcool/eduhub/fixtures"
	"github.com/trezcool/eduhub/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db     *mongo.Database
	usrSvc *user.Service
	logger core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  initdb - create collections with validators and indexes")
	fmt.Println("  seed [-file PATH] [-generate] [-seed N] - load sample data")
	fmt.Println("  addstudent -email EMAIL -first FIRST -last LAST - create a student account")
	fmt.Println("  dropdb - drop the database")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedFile := seedCmd.String("file", core.Conf.GetString("sampleDataPath"), "Path to a sample data JSON file.")
	seedGenerate := seedCmd.Bool("generate", false, "Generate random sample data instead of reading a file.")
	seedSeed := seedCmd.Int64("seed", 42, "Random seed used with -generate.")

	addStudentCmd := flag.NewFlagSet("addstudent", flag.ExitOnError)
	addStudentEmail := addStudentCmd.String("email", "", "The student's email.")
	addStudentFirst := addStudentCmd.String("first", "", "The student's first name.")
	addStudentLast := addStudentCmd.String("last", "", "The student's last name.")

	ctx := context.Background()

	switch args[1] {
	case "initdb":
		return cli.initDB(ctx)
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(ctx, *seedFile, *seedGenerate, *seedSeed)
	case "addstudent":
		if err := addStudentCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addStudentEmail == "" || *addStudentFirst == "" || *addStudentLast == "" {
			addStudentCmd.Usage()
			return errHelp
		}
		return cli.addStudent(ctx, *addStudentEmail, *addStudentFirst, *addStudentLast)
	case "dropdb":
		return database.Drop(ctx, cli.db)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) loadValidators() (map[string]schema.Validator, error) {
	return schema.LoadValidators(core.Conf.GetString("schemasPath"))
}

func (cli *commandLine) initDB(ctx context.Context) error {
	validators, err := cli.loadValidators()
	if err != nil {
		return err
	}
	if err = database.CreateCollections(ctx, cli.db, validators); err != nil {
		return err
	}
	return database.EnsureIndexes(ctx, cli.db)
}

func (cli *commandLine) seed(ctx context.Context, path string, generate bool, seed int64) error {
	validators, err := cli.loadValidators()
	if err != nil {
		return err
	}

	var docs map[string][]map[string]interface{}
	if generate {
		docs = fixtures.Convert(fixtures.Generate(seed), validators, cli.logger)
	} else {
		if docs, err = fixtures.LoadFile(path, validators, cli.logger); err != nil {
			return err
		}
	}

	if err = database.Seed(ctx, cli.db, docs); err != nil {
		return err
	}
	for name, collDocs := range docs {
		cli.logger.Info(fmt.Sprintf("seeded %d documents into %q", len(collDocs), name))
	}
	return nil
}

func (cli *commandLine) addStudent(ctx context.Context, email, first, last string) error {
	ns := user.NewStudent{
		Email:     email,
		FirstName: first,
		LastName:  last,
	}
	if err := ns.Validate(cli.usrSvc); err != nil {
		return err
	}
	usr, err := cli.usrSvc.CreateStudent(ctx, ns)
	if err != nil {
		return err
	}
	cli.logger.Info("created student " + usr.UserID)
	return nil
}
