package provider

import (
	"fmt"
	"strings"
)

// Manifest describes what a store supports for one server version.
type Manifest interface {
	// Token identifies the manifest, see FormatManifestToken.
	Token() string

	// StoreType maps a type usage to the store's column type.
	StoreType(typ TypeUsage) (string, bool)
}

// FormatManifestToken builds a manifest token from a dialect and the server
// version reported by the store.
func FormatManifestToken(dialect, version string) string {
	return dialect + ":" + version
}

// ParseManifestToken splits a token built by FormatManifestToken.
func ParseManifestToken(token string) (dialect, version string, err error) {
	dialect, version, found := strings.Cut(token, ":")
	if !found || dialect == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownManifestToken, token)
	}
	return dialect, version, nil
}
