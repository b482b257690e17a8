package uid

import (
	"crypto/sha1"
	"encoding/base32"
	"encoding/hex"
	"strings"
)

// SyntheticPrefix marks players that only appear in trade logs.
const SyntheticPrefix = "FF"

// Derive returns base32(sha1(raw)[4:9]).
func Derive(raw string) string {
	sum := sha1.Sum([]byte(raw))
	return base32.StdEncoding.EncodeToString(sum[4:9])
}

// PlayerFromTag returns the external id of a composite tag, i.e. the part
// after the last hyphen. A tag without hyphen is returned as is.
func PlayerFromTag(tag string) string {
	if i := strings.LastIndex(tag, "-"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// NameFromTag returns the display name portion of a composite tag.
func NameFromTag(tag string) string {
	if i := strings.Index(tag, "-"); i >= 0 {
		return tag[:i]
	}
	return tag
}

// Synthetic returns the identifier of a player known only by name.
// The result only depends on the lower-cased name so re-ingesting the same
// export yields the same id.
func Synthetic(name string) string {
	sum := sha1.Sum([]byte(strings.ToLower(name)))
	return SyntheticPrefix + strings.ToUpper(hex.EncodeToString(sum[:3]))
}
