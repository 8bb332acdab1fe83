package types

// StaticLibraryMetadata carries the header and module-map declarations of
// a library variant. Paths are relative to the archive root.
type StaticLibraryMetadata struct {
	HeaderPaths   []string `json:"headerPaths,omitempty"`
	ModuleMapPath string   `json:"moduleMapPath,omitempty"`
}

// ArtifactVariant is one concrete build of an artifact within an artifact
// archive. SupportedTriples is nil when the field was absent from the
// manifest, which is distinct from an explicitly empty list: the
// executables operation treats absence as a hard metadata error while the
// libraries operation treats it as non-matching.
type ArtifactVariant struct {
	Path                  string                 `json:"path"`
	SupportedTriples      []string               `json:"supportedTriples,omitempty"`
	StaticLibraryMetadata *StaticLibraryMetadata `json:"staticLibraryMetadata,omitempty"`
}

// ArchiveArtifact is one named artifact of an artifact archive. Variant
// order is declaration order.
type ArchiveArtifact struct {
	Kind     ArtifactKind      `json:"type"`
	Version  string            `json:"version"`
	Variants []ArtifactVariant `json:"variants"`
}

// ArchiveManifest is the decoded info.json of an artifact archive.
type ArchiveManifest struct {
	SchemaVersion string                     `json:"schemaVersion"`
	Artifacts     map[string]ArchiveArtifact `json:"artifacts"`
}
