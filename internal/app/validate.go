package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"artifact-resolver/internal/core"
	"artifact-resolver/internal/shared"
	"artifact-resolver/internal/types"
)

// Validate loads a bundle's manifest and checks everything a resolution
// call would trip over later: malformed declared triples, paths escaping
// the bundle root, executables without applicability lists, and
// unparseable artifact versions. It performs no matching.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	bundlePath := strings.TrimSpace(req.BundlePath)
	if bundlePath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	kind, err := s.detectBundleKind(bundlePath)
	if err != nil {
		return ValidateResult{}, err
	}

	result := ValidateResult{Kind: kind}
	switch kind {
	case types.BundleKindLibraryBundle:
		manifest, err := s.Bundles.LoadBundleManifest(bundlePath)
		if err != nil {
			return ValidateResult{}, err
		}
		assert.NotEmpty(ctx, manifest.FormatVersion, "format_version must be set")
		for _, slice := range manifest.Libraries {
			if err := validateSlice(bundlePath, slice); err != nil {
				return ValidateResult{}, err
			}
		}
		result.Slices = len(manifest.Libraries)
	case types.BundleKindArtifactArchive:
		manifest, err := s.Archives.LoadArchiveManifest(bundlePath)
		if err != nil {
			return ValidateResult{}, err
		}
		assert.NotEmpty(ctx, manifest.SchemaVersion, "schemaVersion must be set")
		for name, artifact := range manifest.Artifacts {
			if err := validateArtifact(bundlePath, name, artifact); err != nil {
				return ValidateResult{}, err
			}
		}
		result.Artifacts = len(manifest.Artifacts)
	}
	return result, nil
}

func validateSlice(bundleRoot string, slice types.LibrarySlice) error {
	if slice.Identifier == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("library slice missing identifier")
	}
	if slice.Platform == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("slice %q missing platform", slice.Identifier))
	}
	if len(slice.Architectures) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("slice %q declares no architectures", slice.Identifier))
	}
	sliceDir, err := shared.SafeJoin(bundleRoot, slice.Identifier)
	if err != nil {
		return err
	}
	if _, err := shared.SafeJoin(sliceDir, slice.LibraryPath); err != nil {
		return err
	}
	if slice.HeadersPath != "" {
		if _, err := shared.SafeJoin(sliceDir, slice.HeadersPath); err != nil {
			return err
		}
	}
	return nil
}

func validateArtifact(bundleRoot string, name string, artifact types.ArchiveArtifact) error {
	if artifact.Version == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("artifact %q missing version", name))
	}
	if _, err := pep440.Parse(artifact.Version); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("artifact %q has malformed version %q", name, artifact.Version)).
			WithCause(err)
	}
	if len(artifact.Variants) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("artifact %q declares no variants", name))
	}
	for _, variant := range artifact.Variants {
		if _, err := shared.SafeJoin(bundleRoot, variant.Path); err != nil {
			return err
		}
		if artifact.Kind == types.ArtifactKindExecutable && variant.SupportedTriples == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("executable variant %q of artifact %q declares no supported triples", variant.Path, name))
		}
		for _, raw := range variant.SupportedTriples {
			if _, err := core.ParseTriple(raw); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("artifact %q declares malformed triple %q", name, raw)).
					WithCause(err)
			}
		}
		if variant.StaticLibraryMetadata == nil {
			continue
		}
		for _, headerPath := range variant.StaticLibraryMetadata.HeaderPaths {
			if _, err := shared.SafeJoin(bundleRoot, headerPath); err != nil {
				return err
			}
		}
		if variant.StaticLibraryMetadata.ModuleMapPath != "" {
			if _, err := shared.SafeJoin(bundleRoot, variant.StaticLibraryMetadata.ModuleMapPath); err != nil {
				return err
			}
		}
	}
	return nil
}
