package ports

import "artifact-resolver/internal/types"

// BundleManifestPort loads the typed manifest of a multi-platform library
// bundle. Decoding the on-disk representation (format, schema version
// checks) lives behind this port; the resolver cores never touch raw
// bytes.
type BundleManifestPort interface {
	LoadBundleManifest(bundleRoot string) (types.LibraryBundleManifest, error)
}

// ArchiveManifestPort loads the typed manifest of an artifact archive.
type ArchiveManifestPort interface {
	LoadArchiveManifest(bundleRoot string) (types.ArchiveManifest, error)
}
