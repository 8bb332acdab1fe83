package types

type ArtifactKind string

const (
	ArtifactKindExecutable ArtifactKind = "executable"
	ArtifactKindLibrary    ArtifactKind = "library"
)

type BundleKind string

const (
	BundleKindLibraryBundle   BundleKind = "library-bundle"
	BundleKindArtifactArchive BundleKind = "artifact-archive"
)
