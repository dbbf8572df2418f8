package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/pkg/validation"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errEmptyPassword    = errors.New("password must not be empty")
	errPasswordTooShort = fmt.Errorf("password must be at least %d characters", validation.PasswordMinLength)
	errPasswordMismatch = errors.New("passwords do not match")
)

type commandLine struct {
	users   services.UserService
	migrate func(ctx context.Context) error
	stdin   int
	out     io.Writer
}

func newCommandLine(users services.UserService, migrate func(ctx context.Context) error) *commandLine {
	return &commandLine{
		users:   users,
		migrate: migrate,
		stdin:   int(os.Stdin.Fd()),
		out:     os.Stdout,
	}
}

func (cl *commandLine) app() *cli.App {
	return &cli.App{
		Name:            "admin",
		Usage:           "maintenance commands for the Ramadan data service",
		Writer:          cl.out,
		ErrWriter:       cl.out,
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:  "createsuperuser",
				Usage: "create a superuser account; the password is prompted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Usage: "login name", Required: true},
					&cli.StringFlag{Name: "name", Usage: "display name", Required: true},
					&cli.StringFlag{Name: "phone", Usage: "unique phone number", Required: true},
				},
				Action: cl.createSuperuser,
			},
			{
				Name:  "resetpassword",
				Usage: "replace an account's password; the password is prompted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Usage: "login name", Required: true},
				},
				Action: cl.resetPassword,
			},
			{
				Name:  "migrate",
				Usage: "apply pending database migrations",
				Action: func(c *cli.Context) error {
					return cl.migrate(c.Context)
				},
			},
		},
	}
}

func (cl *commandLine) run(ctx context.Context, args []string) error {
	return cl.app().RunContext(ctx, args)
}

func (cl *commandLine) createSuperuser(c *cli.Context) error {
	password, err := cl.promptPassword()
	if err != nil {
		return err
	}

	user, err := cl.users.CreateUser(c.Context, services.NewUser{
		Name:        c.String("name"),
		Username:    c.String("username"),
		Password:    password,
		PhoneNumber: c.String("phone"),
		Role:        models.RoleSuperuser,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cl.out, "Superuser %q created (id %d)\n", user.Username, user.ID)
	return nil
}

func (cl *commandLine) resetPassword(c *cli.Context) error {
	password, err := cl.promptPassword()
	if err != nil {
		return err
	}

	username := c.String("username")
	if err := cl.users.ResetPassword(c.Context, username, password); err != nil {
		return err
	}

	fmt.Fprintf(cl.out, "Password of %q updated\n", username)
	return nil
}

// promptPassword reads the password twice without echo.
func (cl *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cl.out, "Password: ")
	first, err := readPasswordFunc(cl.stdin)
	fmt.Fprintln(cl.out)
	if err != nil {
		return "", err
	}
	if len(first) == 0 {
		return "", errEmptyPassword
	}
	if !validation.IsPassword(string(first)) {
		return "", errPasswordTooShort
	}

	fmt.Fprint(cl.out, "Password (again): ")
	second, err := readPasswordFunc(cl.stdin)
	fmt.Fprintln(cl.out)
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", errPasswordMismatch
	}
	return string(first), nil
}
