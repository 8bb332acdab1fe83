package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artifact-resolver/internal/ports"
	"artifact-resolver/internal/shared"
	"artifact-resolver/internal/types"
)

// LibraryResolverCore matches a requested triple against the slice list
// of a multi-platform library bundle. The format guarantees at most one
// slice is appropriate for a given triple, so the first matching slice in
// declaration order wins and cross-compilation fan-out across multiple
// slices is unsupported.
type LibraryResolverCore struct {
	Manifests ports.BundleManifestPort
}

func NewLibraryResolverCore(manifests ports.BundleManifestPort) LibraryResolverCore {
	return LibraryResolverCore{Manifests: manifests}
}

// ResolveLibrary returns the library descriptor of the first slice
// compatible with the triple, or ok=false when no slice applies. A triple
// whose OS or environment has no library-bundle mapping can never match;
// that is an empty result, not an error.
func (r LibraryResolverCore) ResolveLibrary(ctx context.Context, bundleRoot string, triple types.Triple) (types.LibraryInfo, bool, error) {
	if r.Manifests == nil {
		return types.LibraryInfo{}, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("library resolver requires a bundle manifest port")
	}
	manifest, err := r.Manifests.LoadBundleManifest(bundleRoot)
	if err != nil {
		return types.LibraryInfo{}, false, err
	}
	normalized, err := NormalizeTriple(triple)
	if err != nil {
		return types.LibraryInfo{}, false, err
	}

	platform, platformOK := PlatformForOS(normalized.OS)
	variant, variantOK := VariantForEnvironment(normalized.Environment)

	for _, slice := range manifest.Libraries {
		if !platformOK || slice.Platform != platform {
			continue
		}
		// Absence matches absence: a slice without a declared variant
		// only matches triples whose environment has no mapping, and
		// vice versa.
		if variantOK != (slice.PlatformVariant != "") || (variantOK && slice.PlatformVariant != variant) {
			continue
		}
		if !containsString(slice.Architectures, normalized.Arch) {
			continue
		}
		info, err := r.sliceLibraryInfo(bundleRoot, slice)
		if err != nil {
			return types.LibraryInfo{}, false, err
		}
		log.Ctx(ctx).Debug().
			Str("slice", slice.Identifier).
			Str("triple", triple.String()).
			Msg("library bundle slice selected")
		return info, true, nil
	}
	return types.LibraryInfo{}, false, nil
}

// sliceLibraryInfo resolves the slice's declared paths against its own
// subdirectory. When no headers path is declared the slice subdirectory
// itself is the sole headers directory. Library bundles never declare a
// module map.
func (r LibraryResolverCore) sliceLibraryInfo(bundleRoot string, slice types.LibrarySlice) (types.LibraryInfo, error) {
	sliceDir, err := shared.SafeJoin(bundleRoot, slice.Identifier)
	if err != nil {
		return types.LibraryInfo{}, err
	}
	libraryPath, err := shared.SafeJoin(sliceDir, slice.LibraryPath)
	if err != nil {
		return types.LibraryInfo{}, err
	}
	headersDir := sliceDir
	if slice.HeadersPath != "" {
		headersDir, err = shared.SafeJoin(sliceDir, slice.HeadersPath)
		if err != nil {
			return types.LibraryInfo{}, err
		}
	}
	return types.LibraryInfo{
		LibraryPath: libraryPath,
		HeaderPaths: []string{headersDir},
	}, nil
}

func containsString(values []string, wanted string) bool {
	for _, value := range values {
		if value == wanted {
			return true
		}
	}
	return false
}
