package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artifact-resolver/internal/ports"
	"artifact-resolver/internal/shared"
	"artifact-resolver/internal/types"
)

// ArchiveResolverCore matches a requested triple against the artifacts
// declared by an artifact archive. Executables and libraries follow
// different matching policies (subset-filtering vs first-match-wins, and
// required vs optional supported-triples lists), so the two operations
// are separate entry points rather than a shared abstraction.
type ArchiveResolverCore struct {
	Manifests ports.ArchiveManifestPort
}

func NewArchiveResolverCore(manifests ports.ArchiveManifestPort) ArchiveResolverCore {
	return ArchiveResolverCore{Manifests: manifests}
}

// ResolveExecutables returns one ExecutableInfo per executable variant
// whose declared triples contain at least one version-equivalent match.
// SupportedTriples on each result is the matched subset, not the
// variant's full list. An executable variant that declares no
// supported-triples list at all fails the whole call: an executable must
// state its applicability. An empty result is a legitimate outcome.
func (r ArchiveResolverCore) ResolveExecutables(ctx context.Context, bundleRoot string, triple types.Triple) ([]types.ExecutableInfo, error) {
	manifest, err := r.loadManifest(bundleRoot)
	if err != nil {
		return nil, err
	}

	out := []types.ExecutableInfo{}
	for _, name := range sortedArtifactNames(manifest.Artifacts) {
		artifact := manifest.Artifacts[name]
		if artifact.Kind != types.ArtifactKindExecutable {
			continue
		}
		for _, variant := range artifact.Variants {
			if variant.SupportedTriples == nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("executable variant %q of artifact %q declares no supported triples", variant.Path, name))
			}
			matched, err := matchedTriples(name, variant.SupportedTriples, triple)
			if err != nil {
				return nil, err
			}
			if len(matched) == 0 {
				continue
			}
			executablePath, err := shared.SafeJoin(bundleRoot, variant.Path)
			if err != nil {
				return nil, err
			}
			out = append(out, types.ExecutableInfo{
				Name:             name,
				ExecutablePath:   executablePath,
				SupportedTriples: matched,
			})
		}
	}
	log.Ctx(ctx).Debug().
		Str("triple", triple.String()).
		Int("executables", len(out)).
		Msg("archive executables resolved")
	return out, nil
}

// ResolveArtifacts is a compatibility alias for ResolveExecutables.
//
// Deprecated: use ResolveExecutables.
func (r ArchiveResolverCore) ResolveArtifacts(ctx context.Context, bundleRoot string, triple types.Triple) ([]types.ExecutableInfo, error) {
	return r.ResolveExecutables(ctx, bundleRoot, triple)
}

// ResolveLibraries returns at most one LibraryInfo per library artifact:
// the first variant in declaration order with a version-equivalent
// declared triple wins and scanning of that artifact stops. Unlike the
// executables operation, a variant without a supported-triples list is
// simply non-matching, and header paths come only from the variant's own
// declarations with no directory fallback.
func (r ArchiveResolverCore) ResolveLibraries(ctx context.Context, bundleRoot string, triple types.Triple) ([]types.LibraryInfo, error) {
	manifest, err := r.loadManifest(bundleRoot)
	if err != nil {
		return nil, err
	}

	out := []types.LibraryInfo{}
	for _, name := range sortedArtifactNames(manifest.Artifacts) {
		artifact := manifest.Artifacts[name]
		if artifact.Kind != types.ArtifactKindLibrary {
			continue
		}
		for _, variant := range artifact.Variants {
			matched, err := matchedTriples(name, variant.SupportedTriples, triple)
			if err != nil {
				return nil, err
			}
			if len(matched) == 0 {
				continue
			}
			info, err := r.variantLibraryInfo(bundleRoot, variant)
			if err != nil {
				return nil, err
			}
			out = append(out, info)
			break
		}
	}
	log.Ctx(ctx).Debug().
		Str("triple", triple.String()).
		Int("libraries", len(out)).
		Msg("archive libraries resolved")
	return out, nil
}

func (r ArchiveResolverCore) loadManifest(bundleRoot string) (types.ArchiveManifest, error) {
	if r.Manifests == nil {
		return types.ArchiveManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("archive resolver requires an archive manifest port")
	}
	return r.Manifests.LoadArchiveManifest(bundleRoot)
}

func (r ArchiveResolverCore) variantLibraryInfo(bundleRoot string, variant types.ArtifactVariant) (types.LibraryInfo, error) {
	libraryPath, err := shared.SafeJoin(bundleRoot, variant.Path)
	if err != nil {
		return types.LibraryInfo{}, err
	}
	info := types.LibraryInfo{
		LibraryPath: libraryPath,
		HeaderPaths: []string{},
	}
	if variant.StaticLibraryMetadata == nil {
		return info, nil
	}
	for _, headerPath := range variant.StaticLibraryMetadata.HeaderPaths {
		resolved, err := shared.SafeJoin(bundleRoot, headerPath)
		if err != nil {
			return types.LibraryInfo{}, err
		}
		info.HeaderPaths = append(info.HeaderPaths, resolved)
	}
	if variant.StaticLibraryMetadata.ModuleMapPath != "" {
		resolved, err := shared.SafeJoin(bundleRoot, variant.StaticLibraryMetadata.ModuleMapPath)
		if err != nil {
			return types.LibraryInfo{}, err
		}
		info.ModuleMapPath = resolved
	}
	return info, nil
}

// matchedTriples parses the variant's declared triple strings and keeps
// the ones version-equivalent to the request. A declared triple that
// fails to parse is malformed metadata, not a non-match.
func matchedTriples(artifact string, declared []string, requested types.Triple) ([]types.Triple, error) {
	var matched []types.Triple
	for _, raw := range declared {
		parsed, err := ParseTriple(raw)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("artifact %q declares malformed triple %q", artifact, raw)).
				WithCause(err)
		}
		equivalent, err := VersionEquivalent(parsed, requested)
		if err != nil {
			return nil, err
		}
		if equivalent {
			matched = append(matched, parsed)
		}
	}
	return matched, nil
}

func sortedArtifactNames(artifacts map[string]types.ArchiveArtifact) []string {
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
