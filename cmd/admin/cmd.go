package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/creativedak/tutor1/core/tutor"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db       *sqlx.DB
	tutorSvc *tutor.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addtutor -email EMAIL -name NAME       - create or promote an admin tutor")
	fmt.Println("  resetpassword -email EMAIL             - reset a tutor's password")
	fmt.Println("  migrate COMMAND [ARGS...]              - run database migrations (goose commands)")
}

func (cli *commandLine) promptPassword(fs *flag.FlagSet) (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		fs.Usage()
		return "", errHelp
	}
	return string(pwd), nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addTutorCmd := flag.NewFlagSet("addtutor", flag.ExitOnError)
	addTutorEmail := addTutorCmd.String("email", "", "The tutor's email. The password will be prompted next.")
	addTutorName := addTutorCmd.String("name", "", "The tutor's display name.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The tutor's email. The password will be prompted next.")

	switch args[1] {
	case "addtutor":
		if err := addTutorCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addTutorEmail == "" || *addTutorName == "" {
			addTutorCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword(addTutorCmd)
		if err != nil {
			return err
		}
		return cli.addTutor(*addTutorEmail, *addTutorName, pwd)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword(resetPasswordCmd)
		if err != nil {
			return err
		}
		return cli.resetPassword(*resetPasswordEmail, pwd)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}
