// Package models defines the GDKP session entities and their wire formats.
//
// Raw types (RawExport, RawAuction, ...) mirror the addon export and keep the
// source order of every JSON object through Object. Domain types (Player,
// Auction, GoldLedger, Session) are populated by the session parser and
// projected to the persisted schema with their Record methods.
package models
