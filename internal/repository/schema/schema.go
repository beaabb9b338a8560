// Package schema creates the subset of CMS tables the selectors read. The DDL
// is portable between PostgreSQL and SQLite.
package schema

import (
	"context"
	"fmt"

	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/repository/cms"
)

// Statements returns the CREATE TABLE statements for tables.
func Statements(t *cms.TableNames) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idcat INTEGER PRIMARY KEY,
			idclient INTEGER NOT NULL DEFAULT 0,
			parentid INTEGER NOT NULL DEFAULT 0
		)`, t.Cat),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idcatlang INTEGER PRIMARY KEY,
			idcat INTEGER NOT NULL,
			idlang INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			visible SMALLINT NOT NULL DEFAULT 0,
			public SMALLINT NOT NULL DEFAULT 1
		)`, t.CatLang),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idtree INTEGER PRIMARY KEY,
			idcat INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 0
		)`, t.CatTree),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idcatart INTEGER PRIMARY KEY,
			idcat INTEGER NOT NULL,
			idart INTEGER NOT NULL
		)`, t.CatArt),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idartlang INTEGER PRIMARY KEY,
			idart INTEGER NOT NULL,
			idlang INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			online SMALLINT NOT NULL DEFAULT 0
		)`, t.ArtLang),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idtype INTEGER PRIMARY KEY,
			type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`, t.Type),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idcontent INTEGER PRIMARY KEY,
			idartlang INTEGER NOT NULL,
			idtype INTEGER NOT NULL,
			typeid INTEGER NOT NULL,
			value TEXT
		)`, t.Content),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			idupl INTEGER PRIMARY KEY,
			idclient INTEGER NOT NULL,
			filename TEXT NOT NULL DEFAULT '',
			dirname TEXT NOT NULL DEFAULT '',
			filetype TEXT,
			size INTEGER NOT NULL DEFAULT 0
		)`, t.Upl),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			iddbfs INTEGER PRIMARY KEY,
			idclient INTEGER NOT NULL,
			dirname TEXT NOT NULL DEFAULT '',
			filename TEXT NOT NULL DEFAULT '',
			mimetype TEXT NOT NULL DEFAULT '',
			size INTEGER NOT NULL DEFAULT 0
		)`, t.Dbfs),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_client_dir ON %s (idclient, dirname)`, t.Upl, t.Upl),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_client_dir ON %s (idclient, dirname)`, t.Dbfs, t.Dbfs),
	}
}

// Create runs every statement.
func Create(ctx context.Context, db repositories.StatementExecer, t *cms.TableNames) error {
	for _, stmt := range Statements(t) {
		if _, err := db.ExecStatement(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Drop removes every table.
func Drop(ctx context.Context, db repositories.StatementExecer, t *cms.TableNames) error {
	all := t.All()
	for i := len(all) - 1; i >= 0; i-- {
		if _, err := db.ExecStatement(ctx, "DROP TABLE IF EXISTS "+all[i]); err != nil {
			return fmt.Errorf("drop %s: %w", all[i], err)
		}
	}
	return nil
}

// Clear deletes all rows but keeps the tables.
func Clear(ctx context.Context, db repositories.StatementExecer, t *cms.TableNames) error {
	for _, table := range t.All() {
		if _, err := db.ExecStatement(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
