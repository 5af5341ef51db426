package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFlags maps command-line flags onto the environment variables read by
// config.Load. Flags win over the env file and the process environment.
var envFlags = map[string]string{
	"addr":      "HTTP_ADDRESS",
	"db-driver": "DATABASE_DRIVER",
	"db-url":    "DATABASE_URL",
	"log-level": "LOG_LEVEL",
}

func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().String("env-file", ".env", "dotenv file loaded before reading configuration")
	cmd.Flags().String("db-driver", "", "database driver, postgres or sqlite (DATABASE_DRIVER)")
	cmd.Flags().String("db-url", "", "database connection string (DATABASE_URL)")
	cmd.Flags().String("log-level", "", "minimum log level (LOG_LEVEL)")
}

// loadEnv reads the env file, when present, and exports changed flags.
func loadEnv(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return err
			}
		}
	}

	for name, env := range envFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := os.Setenv(env, flag.Value.String()); err != nil {
			return err
		}
	}
	return nil
}
