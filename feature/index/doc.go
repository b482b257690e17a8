// Package index maintains the searchable index of ingested sessions.
//
// The index is an ordered, append-only collection of entries held in memory
// and persisted as a whole to a single JSON document:
//
//	{"records": [{"uuid": "...", "title": "...", "date": 0, "payout": 0, "total": 0}]}
//
// Appending never deduplicates: ingesting the same export twice yields two
// entries with the same uid. An optional Mirror receives the full index after
// every Persist, e.g. a database table backing external dashboards.
package index
