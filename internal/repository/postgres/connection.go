package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"omnidesk/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Agents          string
	Leads           string
	Projects        string
	ProjectMembers  string
	Chats           string
	ChatMessages    string
	Presentations   string
	Websites        string
	GeneratedImages string
	GeneratedAudio  string
	SystemLogs      string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Agents:          prefix + "agents",
		Leads:           prefix + "leads",
		Projects:        prefix + "projects",
		ProjectMembers:  prefix + "project_members",
		Chats:           prefix + "chats",
		ChatMessages:    prefix + "chat_messages",
		Presentations:   prefix + "presentations",
		Websites:        prefix + "websites",
		GeneratedImages: prefix + "generated_images",
		GeneratedAudio:  prefix + "generated_audio",
		SystemLogs:      prefix + "system_logs",
	}
}

// CreateConnectionPool creates a pgx connection pool with PgBouncer
// compatibility for Supabase.
//
// Supabase's transaction pooler (port 6543) does not support prepared
// statements, so when that port is detected the pool switches to
// QueryExecModeCacheDescribe: extended protocol (needed for JSONB
// encoding of map[string]interface{}) without server-side prepared
// statements. An explicit default_query_exec_mode in the connection
// string takes precedence. Direct connections (port 5432) keep the
// default prepared-statement mode.
//
// Dynamic table prefixes (dev_, test_, prod_) are interpolated into the
// SQL string before it reaches the database, so each environment gets
// its own distinct statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context it is returned, otherwise
// the pool. This lets repositories participate in transactions
// transparently.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
