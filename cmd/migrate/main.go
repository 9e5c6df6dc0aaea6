package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfigueroa/ventas-api/internal/infrastructure/postgres"
	"github.com/mfigueroa/ventas-api/pkg/config"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

func main() {
	var (
		dsn     string
		timeout = 2 * time.Minute
		log     *logger.Logger
		db      *sql.DB
	)

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migraciones del esquema de ventas (goose, SQL embebido)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			if dsn == "" {
				dsn = cfg.DB.ConnectionString()
			}
			db, err = postgres.OpenDB(dsn)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if db != nil {
				return db.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "DSN de PostgreSQL (por defecto DATABASE_URL o DB_*)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", timeout, "Tiempo máximo de la operación")

	run := func(fn func(ctx context.Context, m *postgres.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return fn(ctx, postgres.NewMigrator(db, log))
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica todas las migraciones pendientes",
			RunE: run(func(ctx context.Context, m *postgres.Migrator) error {
				return m.Up(ctx)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revierte la última migración",
			RunE: run(func(ctx context.Context, m *postgres.Migrator) error {
				return m.Down(ctx)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Muestra el estado de cada migración",
			RunE: run(func(ctx context.Context, m *postgres.Migrator) error {
				return m.Status(ctx)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Imprime la versión aplicada del esquema",
			RunE: run(func(ctx context.Context, m *postgres.Migrator) error {
				v, err := m.Version(ctx)
				if err != nil {
					return err
				}
				fmt.Println(v)
				return nil
			}),
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
