package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifact-resolver/internal/types"
)

// Inspect summarizes a bundle's manifest without resolving against any
// triple: which schema it is on, and what slices or artifacts it offers.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	bundlePath := strings.TrimSpace(req.BundlePath)
	if bundlePath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bundle path is required")
	}
	kind, err := s.detectBundleKind(bundlePath)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Kind: kind}
	switch kind {
	case types.BundleKindLibraryBundle:
		manifest, err := s.Bundles.LoadBundleManifest(bundlePath)
		if err != nil {
			return InspectResult{}, err
		}
		for _, slice := range manifest.Libraries {
			result.Slices = append(result.Slices, InspectSliceSummary{
				Identifier:      slice.Identifier,
				Platform:        slice.Platform,
				PlatformVariant: slice.PlatformVariant,
				Architectures:   slice.Architectures,
			})
		}
	case types.BundleKindArtifactArchive:
		manifest, err := s.Archives.LoadArchiveManifest(bundlePath)
		if err != nil {
			return InspectResult{}, err
		}
		for name, artifact := range manifest.Artifacts {
			result.Artifacts = append(result.Artifacts, InspectArtifactSummary{
				Name:     name,
				Kind:     artifact.Kind,
				Version:  artifact.Version,
				Variants: len(artifact.Variants),
				Triples:  declaredTriples(artifact),
			})
		}
		sort.Slice(result.Artifacts, func(i, j int) bool {
			return result.Artifacts[i].Name < result.Artifacts[j].Name
		})
	}
	return result, nil
}

// declaredTriples flattens an artifact's declared triples, deduplicated,
// in sorted order.
func declaredTriples(artifact types.ArchiveArtifact) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, variant := range artifact.Variants {
		for _, triple := range variant.SupportedTriples {
			if _, ok := seen[triple]; ok {
				continue
			}
			seen[triple] = struct{}{}
			out = append(out, triple)
		}
	}
	sort.Strings(out)
	return out
}
