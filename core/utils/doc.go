// Package utils provides common utility functions for the gdkp-ledger application.
// It includes helper functions for coercing the loosely typed numeric values found
// in addon exports, and other shared logic that doesn't fit into domain-specific packages.
package utils
