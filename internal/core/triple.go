package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifact-resolver/internal/types"
)

// versionedOSFamilies lists OS families whose triples embed an OS version
// in the OS token (e.g. "macosx12.0"). Only these are version-stripped by
// NormalizeTriple; every other OS passes through unchanged.
var versionedOSFamilies = map[string]struct{}{
	"macosx":    {},
	"ios":       {},
	"tvos":      {},
	"watchos":   {},
	"driverkit": {},
}

// ParseTriple parses a canonical triple string of the form
// arch-vendor-os[version][-environment].
func ParseTriple(value string) (types.Triple, error) {
	trimmed := strings.TrimSpace(value)
	parts := strings.Split(trimmed, "-")
	if len(parts) < 3 || len(parts) > 4 {
		return types.Triple{}, invalidTripleError(value)
	}
	for _, part := range parts {
		if part == "" {
			return types.Triple{}, invalidTripleError(value)
		}
	}
	osFamily, osVersion := splitOSVersion(parts[2])
	if osFamily == "" {
		return types.Triple{}, invalidTripleError(value)
	}
	triple := types.Triple{
		Arch:    parts[0],
		Vendor:  parts[1],
		OS:      osFamily,
		Version: osVersion,
	}
	if len(parts) == 4 {
		triple.Environment = parts[3]
	}
	return triple, nil
}

// NormalizeTriple strips the OS version from triples of versioned OS
// families so they can be compared version-insensitively. The stripped
// string form is reparsed so a malformed reconstruction surfaces as a
// parse error rather than a silently broken triple.
func NormalizeTriple(triple types.Triple) (types.Triple, error) {
	if _, ok := versionedOSFamilies[triple.OS]; !ok {
		return triple, nil
	}
	if triple.Version == "" {
		return triple, nil
	}
	stripped := triple
	stripped.Version = ""
	return ParseTriple(stripped.String())
}

// VersionEquivalent reports whether two triples are identical after
// version stripping. A request for macosx12.0 is version-equivalent to a
// declared macosx10.9 entry.
func VersionEquivalent(a types.Triple, b types.Triple) (bool, error) {
	normalizedA, err := NormalizeTriple(a)
	if err != nil {
		return false, err
	}
	normalizedB, err := NormalizeTriple(b)
	if err != nil {
		return false, err
	}
	return normalizedA == normalizedB, nil
}

// splitOSVersion splits an OS token into its family name and trailing
// version digits, e.g. "macosx12.0" -> ("macosx", "12.0").
func splitOSVersion(token string) (string, string) {
	cut := len(token)
	for cut > 0 {
		c := token[cut-1]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		cut--
	}
	return token[:cut], token[cut:]
}

func invalidTripleError(value string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid triple: %q", value))
}
