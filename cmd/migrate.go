package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated/migrate"
	appserver "github.com/eslsoft/courseboxd/internal/app/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnv(cmd); err != nil {
			return err
		}

		cfg, err := appserver.NewConfig()
		if err != nil {
			return err
		}
		logger, err := appserver.NewLogger(cfg)
		if err != nil {
			return err
		}

		client, err := appserver.OpenEntClient(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Schema.Create(cmd.Context()); err != nil {
			return err
		}
		logger.Info().Str("driver", cfg.DatabaseDriver).Int("tables", len(migrate.Tables)).Msg("schema migrated")
		return nil
	},
}

func init() {
	addDatabaseFlags(migrateCmd)
	rootCmd.AddCommand(migrateCmd)
}
