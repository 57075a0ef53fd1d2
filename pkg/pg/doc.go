// Package pg wires PostgreSQL connectivity: a pgxpool connection pool with
// retry on startup, goose schema migrations and a health probe.
//
//	pool, err := pg.Connect(ctx, cfg.Postgres)
//	if err != nil { ... }
//	if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil { ... }
package pg
