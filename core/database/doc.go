// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure Postgres (Supabase), MySQL or
// SQLite connections based on the application's configuration.
//
// # Connect
//
// Connect builds the driver-specific DSN, applies pool settings and pings the
// database with the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the `check` command verify that the
// task table has every column the sync writes, without migrating anything.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "tareas", tasks.StoreColumns())
package database
