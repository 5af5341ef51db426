package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestLoadEnv_FlagsOverrideEnvFile(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HTTP_ADDRESS", "")
	os.Unsetenv("DATABASE_DRIVER")
	os.Unsetenv("DATABASE_URL")

	envFile := filepath.Join(t.TempDir(), "catalog.env")
	content := "DATABASE_DRIVER=postgres\nDATABASE_URL=postgres://catalog@localhost/catalog\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cmd := &cobra.Command{Use: "serve"}
	cmd.Flags().String("addr", "", "")
	addDatabaseFlags(cmd)
	for flag, value := range map[string]string{
		"env-file":  envFile,
		"db-driver": "sqlite",
		"addr":      ":9000",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("set %s: %v", flag, err)
		}
	}

	if err := loadEnv(cmd); err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}
	if got := os.Getenv("DATABASE_DRIVER"); got != "sqlite" {
		t.Fatalf("expected flag to win, got DATABASE_DRIVER=%q", got)
	}
	if got := os.Getenv("DATABASE_URL"); got != "postgres://catalog@localhost/catalog" {
		t.Fatalf("expected env file value, got DATABASE_URL=%q", got)
	}
	if got := os.Getenv("HTTP_ADDRESS"); got != ":9000" {
		t.Fatalf("expected HTTP_ADDRESS=:9000, got %q", got)
	}
}

func TestLoadEnv_MissingEnvFileIsIgnored(t *testing.T) {
	cmd := &cobra.Command{Use: "migrate"}
	addDatabaseFlags(cmd)
	if err := cmd.Flags().Set("env-file", filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("set env-file: %v", err)
	}
	if err := loadEnv(cmd); err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}
}
