// Package records exposes ingested sessions over HTTP.
//
// # Routes
//
//   - GET /records?q=<title>: index entries, newest first, filtered by title.
//   - GET /records/:uid: the persisted record of one session.
//
// The index file is re-read on every listing so sessions ingested while the
// server runs are visible without a restart.
package records
