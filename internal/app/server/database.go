package server

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	entgenerated "github.com/eslsoft/courseboxd/internal/adapter/db/ent/generated"
	"github.com/eslsoft/courseboxd/internal/config"
)

// OpenEntClient connects to the configured database without touching its schema.
func OpenEntClient(ctx context.Context, cfg config.Config) (*entgenerated.Client, error) {
	dialectName := dialect.Postgres
	if cfg.DatabaseDriver == config.DriverSQLite {
		dialectName = dialect.SQLite
	}

	sqlDB, err := stdsql.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DatabaseDriver, err)
	}
	if cfg.DatabaseDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.DatabaseDriver, err)
	}

	return entgenerated.NewClient(entgenerated.Driver(entsql.OpenDB(dialectName, sqlDB))), nil
}

// NewEntClient establishes an Ent client and runs migrations.
func NewEntClient(cfg config.Config) (*entgenerated.Client, error) {
	ctx := context.Background()
	client, err := OpenEntClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return client, nil
}
