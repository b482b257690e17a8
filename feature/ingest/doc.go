// Package ingest converts directories of raw GDKP exports into session
// records and the session index.
//
// Two entry points exist:
//
//   - Rebuild parses every export of a source directory, writes one record per
//     session into <dest>/records and replaces <dest>/index.json.
//   - Add loads the existing index, ingests every export found in a staging
//     directory, copies each ingested export into the raw archive directory
//     and persists the merged index.
//
// Directories must exist beforehand; only <dest>/records is created by
// Rebuild. A malformed export is logged and skipped, the batch continues and
// the aggregated failures are returned once the index has been persisted.
package ingest
