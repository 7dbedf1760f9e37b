// Command dreamjournal runs the dream journal API and its maintenance tasks.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/dreamjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dreamjournal-backend/internal/app"
	"github.com/heartmarshall/dreamjournal-backend/internal/config"
)

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "dreamjournal",
		Usage: "Dream journal API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "optional .env file loaded before configuration",
				Value:   ".env",
				Sources: cli.EnvVars("ENV_FILE"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := loadEnvFile(cmd.String("env-file")); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			versionCommand(),
		},
		DefaultCommand: "serve",
	}
}

// loadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server until SIGINT or SIGTERM",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file; environment variables take precedence",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadFrom(cmd.String("config"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg)
		},
	}
}

func migrateCommand() *cli.Command {
	dsn := &cli.StringFlag{
		Name:     "dsn",
		Usage:    "PostgreSQL connection string",
		Sources:  cli.EnvVars("DATABASE_DSN"),
		Required: true,
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Flags: []cli.Flag{dsn},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations",
				Action: withMigrator(func(ctx context.Context, m *postgres.Migrator) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					if len(applied) == 0 {
						fmt.Println("no pending migrations")
						return nil
					}
					for _, v := range applied {
						fmt.Printf("applied %d\n", v)
					}
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "Roll back the most recent migration",
				Action: withMigrator(func(ctx context.Context, m *postgres.Migrator) error {
					v, err := m.Down(ctx)
					if err != nil {
						return err
					}
					fmt.Printf("rolled back %d\n", v)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "List migrations and whether they are applied",
				Action: withMigrator(func(ctx context.Context, m *postgres.Migrator) error {
					states, err := m.Status(ctx)
					if err != nil {
						return err
					}
					for _, s := range states {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Printf("%-8s %d %s\n", state, s.Version, s.Path)
					}
					return nil
				}),
			},
		},
	}
}

func withMigrator(fn func(ctx context.Context, m *postgres.Migrator) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		m, err := postgres.OpenMigrator(ctx, cmd.String("dsn"))
		if err != nil {
			return err
		}
		defer m.Close()
		return fn(ctx, m)
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the build version",
		Action: func(_ context.Context, _ *cli.Command) error {
			fmt.Println(app.BuildVersion())
			return nil
		},
	}
}
