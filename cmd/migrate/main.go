// Command migrate creates (or drops) the application tables for the
// current environment's table prefix. It is idempotent: every CREATE
// uses IF NOT EXISTS.
//
//	go run ./cmd/migrate          # create tables
//	go run ./cmd/migrate -drop    # drop tables first, then recreate
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"omnidesk/internal/config"
	"omnidesk/internal/repository/postgres"
)

func main() {
	drop := flag.Bool("drop", false, "drop all tables before creating them")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.SupabaseDBURL == "" {
		log.Fatal("SUPABASE_DB_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *drop {
		// Children before parents so foreign keys don't block the drop
		for _, name := range []string{
			tables.ChatMessages,
			tables.Chats,
			tables.ProjectMembers,
			tables.Projects,
			tables.Leads,
			tables.Agents,
			tables.Presentations,
			tables.Websites,
			tables.GeneratedImages,
			tables.GeneratedAudio,
			tables.SystemLogs,
		} {
			if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", name)); err != nil {
				log.Fatalf("Failed to drop %s: %v", name, err)
			}
			log.Printf("dropped %s", name)
		}
	}

	for _, stmt := range createStatements(tables) {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed to create table: %v\nstatement: %s", err, stmt)
		}
	}

	log.Printf("tables ready with prefix %q", cfg.TablePrefix)
}

func createStatements(t *postgres.TableNames) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			name TEXT NOT NULL,
			welcome_message TEXT NOT NULL DEFAULT '',
			workspace_slug TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.Agents),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			agent_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			initial_message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'new',
			source TEXT NOT NULL DEFAULT 'widget',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.Leads, t.Agents),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			owner_id UUID NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.Projects),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			user_id UUID NOT NULL,
			role TEXT NOT NULL,
			invite_accepted BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (project_id, user_id)
		)`, t.ProjectMembers, t.Projects),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			project_id UUID REFERENCES %s(id) ON DELETE SET NULL,
			title TEXT NOT NULL,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.Chats, t.Projects),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			chat_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.ChatMessages, t.Chats),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			title TEXT NOT NULL,
			topic TEXT NOT NULL DEFAULT '',
			markdown TEXT NOT NULL,
			theme TEXT NOT NULL,
			slide_count INTEGER NOT NULL DEFAULT 0,
			ai_provider TEXT NOT NULL DEFAULT '',
			ai_model TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.Presentations),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			name TEXT NOT NULL,
			prompt TEXT NOT NULL DEFAULT '',
			html TEXT NOT NULL,
			published BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.Websites),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			project_id UUID,
			prompt TEXT NOT NULL,
			model TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.GeneratedImages),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL,
			project_id UUID,
			text TEXT NOT NULL,
			voice TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.GeneratedAudio),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID,
			level TEXT NOT NULL,
			message TEXT NOT NULL,
			context JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, t.SystemLogs),
	}
}
