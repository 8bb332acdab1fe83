package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artifact-resolver/internal/core"
	"artifact-resolver/internal/types"
)

// Resolve answers "which binary slice applies to this triple" for a
// bundle root on either schema. Empty Libraries/Executables or an unset
// Library mean the bundle is simply not applicable to the triple; that
// is a successful result, distinct from malformed-bundle errors.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	bundlePath := strings.TrimSpace(req.BundlePath)
	if bundlePath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	triple, err := core.ParseTriple(req.Triple)
	if err != nil {
		return ResolveResult{}, err
	}
	kind, err := s.detectBundleKind(bundlePath)
	if err != nil {
		return ResolveResult{}, err
	}

	result := ResolveResult{
		BundlePath: bundlePath,
		Triple:     triple.String(),
		Kind:       kind,
	}
	switch kind {
	case types.BundleKindLibraryBundle:
		resolver := core.NewLibraryResolverCore(s.Bundles)
		info, ok, err := resolver.ResolveLibrary(ctx, bundlePath, triple)
		if err != nil {
			return ResolveResult{}, err
		}
		if ok {
			result.Library = &info
		}
	case types.BundleKindArtifactArchive:
		resolver := core.NewArchiveResolverCore(s.Archives)
		result.Executables, err = resolver.ResolveExecutables(ctx, bundlePath, triple)
		if err != nil {
			return ResolveResult{}, err
		}
		result.Libraries, err = resolver.ResolveLibraries(ctx, bundlePath, triple)
		if err != nil {
			return ResolveResult{}, err
		}
	}
	log.Ctx(ctx).Debug().
		Str("bundle", bundlePath).
		Str("kind", string(kind)).
		Msg("bundle resolved")
	return result, nil
}
