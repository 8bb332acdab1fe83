// Package shared provides common utility functions used across multiple
// packages in the artifact-resolver codebase.
package shared

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// SafeJoin joins a declared relative path onto a base directory and
// verifies the result stays inside it. Manifest paths are
// attacker-adjacent input (a downloaded archive), so absolute paths and
// traversal out of the base are rejected with CodePermissionDenied.
func SafeJoin(base string, rel string) (string, error) {
	cleaned := strings.TrimSpace(rel)
	if cleaned == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("declared path is empty")
	}
	if filepath.IsAbs(cleaned) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("declared path must be relative: " + cleaned)
	}
	joined := filepath.Join(base, cleaned)
	relToBase, err := filepath.Rel(base, joined)
	if err != nil || relToBase == ".." || strings.HasPrefix(relToBase, ".."+string(filepath.Separator)) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("declared path escapes its base directory: " + cleaned)
	}
	return joined, nil
}
