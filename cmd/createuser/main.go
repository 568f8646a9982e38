// Command createuser seeds an account that can log in and authorise ledger mutations.
//
//	go run ./cmd/createuser --id admin01 --nome "Maria" --email maria@example.com
//
// The password is read from --senha or, when that is empty, from EVENTO_USER_PASSWORD.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/projeto-evento/evento-api/cmd/app"
	"github.com/projeto-evento/evento-api/internal/config"
	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/logger"
	"github.com/projeto-evento/evento-api/internal/repository"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
	"github.com/projeto-evento/evento-api/internal/service"
)

type options struct {
	configPath string
	id         string
	name       string
	email      string
	password   string
	role       string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	conf, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	database, err := app.OpenDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(database); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	repo := repository.NewUserRepository(dao.NewUserDAO(database))
	svc := service.NewAuthService(repo, service.NewQueryPolicy(conf.Postgres))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user := domain.User{
		ID:       opts.id,
		Name:     opts.name,
		Password: opts.password,
		Role:     opts.role,
	}
	if opts.email != "" {
		user.Email = &opts.email
	}

	created, err := svc.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return fmt.Errorf("user %q already exists", opts.id)
		}

		return fmt.Errorf("svc.CreateUser -> %w", err)
	}

	zap.L().Info("user created", zap.String("id", created.ID), zap.String("perfil", created.Role))

	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("createuser", pflag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "./cmd/app/config.yml", "path to the API config file")
	fs.StringVar(&opts.id, "id", "", "login id of the new user (required)")
	fs.StringVar(&opts.name, "nome", "", "display name (required)")
	fs.StringVar(&opts.email, "email", "", "optional e-mail")
	fs.StringVar(&opts.password, "senha", "", "password, defaults to $EVENTO_USER_PASSWORD")
	fs.StringVar(&opts.role, "perfil", domain.RoleAdmin, "role of the new user")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.password == "" {
		opts.password = os.Getenv("EVENTO_USER_PASSWORD")
	}

	if opts.id == "" || opts.name == "" || opts.password == "" {
		return options{}, errors.New("--id, --nome and a password are required")
	}

	return opts, nil
}
