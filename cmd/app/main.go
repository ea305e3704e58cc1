package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/config"
	"courseadmin/internal/infrastructure/repository"
	"courseadmin/internal/infrastructure/security"
	"courseadmin/internal/server"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	root := &cobra.Command{Use: "courseadmin"}
	root.AddCommand(serveCmd(cfg), migrateCmd(cfg), createAdminCmd(cfg))
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func serveCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(cfg)
		},
	}
}

func migrateCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := server.OpenDB(cfg)
			if err != nil {
				return err
			}
			if err := server.Migrate(db); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

// createadmin creates an administrator account from the CLI, useful
// for bootstrapping a fresh deployment.
func createAdminCmd(cfg config.Config) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "createadmin",
		Short: "create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := server.OpenDB(cfg)
			if err != nil {
				return err
			}
			auth := usecase.NewAuthUseCase(
				repository.NewUserRepository(db),
				security.NewPasswordHasher(),
				security.NewTokenManager(cfg.JWTSecret),
			)
			user, err := auth.Register(context.Background(), email, password, true)
			if err != nil {
				return err
			}
			log.Info().Str("email", user.Email).Msg("admin created")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}
