package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	appserver "github.com/eslsoft/courseboxd/internal/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the course catalog and account API",
	Long: `Serve the course catalog over HTTP.

The schema is migrated on startup. Configuration comes from the environment,
an optional dotenv file and the flags below, in increasing precedence.`,
	Example: `  courseboxd serve --addr :9000 --db-driver sqlite --db-url "file:catalog.db?_pragma=foreign_keys(1)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnv(cmd); err != nil {
			return err
		}

		srv, err := appserver.InitializeServer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (HTTP_ADDRESS)")
	addDatabaseFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}
