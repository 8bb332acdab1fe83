package app

import "artifact-resolver/internal/types"

type ResolveRequest struct {
	BundlePath string
	Triple     string
}

type ResolveResult struct {
	BundlePath string           `yaml:"bundle_path"`
	Triple     string           `yaml:"triple"`
	Kind       types.BundleKind `yaml:"kind"`

	// Library is set for library bundles when a slice matched.
	Library *types.LibraryInfo `yaml:"library,omitempty"`

	// Libraries and Executables are set for artifact archives. Both may
	// legitimately be empty when nothing applies to the triple.
	Libraries   []types.LibraryInfo    `yaml:"libraries,omitempty"`
	Executables []types.ExecutableInfo `yaml:"executables,omitempty"`
}

type InspectRequest struct {
	BundlePath string
}

type InspectSliceSummary struct {
	Identifier      string
	Platform        string
	PlatformVariant string
	Architectures   []string
}

type InspectArtifactSummary struct {
	Name     string
	Kind     types.ArtifactKind
	Version  string
	Variants int
	Triples  []string
}

type InspectResult struct {
	Kind      types.BundleKind
	Slices    []InspectSliceSummary
	Artifacts []InspectArtifactSummary
}

type ValidateRequest struct {
	BundlePath string
}

type ValidateResult struct {
	Kind      types.BundleKind
	Slices    int
	Artifacts int
}
