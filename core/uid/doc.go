// Package uid derives the identifiers used across GDKP session records.
//
// Session and auction identifiers are short, deterministic digests of the raw
// identifiers found in an export. Player identifiers are extracted from the
// composite "<name>-<externalId>" tags the game addon emits.
//
// # Usage
//
//	id := uid.Derive(rawSessionID)         // "MFRGGZDF"
//	player := uid.PlayerFromTag("Alice-42") // "42"
//	name := uid.NameFromTag("Alice-42")     // "Alice"
package uid
