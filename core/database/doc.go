// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (or local SQLite)
// connections from the application's configuration. The database is optional:
// it only backs the index mirror table.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let callers verify that a table carries the
// columns they write before syncing data into it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "gdkp_index", []string{"uid", "title"})
package database
