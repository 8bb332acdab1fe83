package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifact-resolver/internal/types"
)

func TestInspectLibraryBundle(t *testing.T) {
	service, bundleRoot, _ := fixtureService(t)

	result, err := service.Inspect(context.Background(), InspectRequest{BundlePath: bundleRoot})
	require.NoError(t, err)
	assert.Equal(t, types.BundleKindLibraryBundle, result.Kind)
	require.Len(t, result.Slices, 2)
	assert.Equal(t, "macos-universal", result.Slices[0].Identifier)
	assert.Equal(t, "simulator", result.Slices[1].PlatformVariant)
	assert.Empty(t, result.Artifacts)
}

func TestInspectArtifactArchive(t *testing.T) {
	service, _, archiveRoot := fixtureService(t)

	result, err := service.Inspect(context.Background(), InspectRequest{BundlePath: archiveRoot})
	require.NoError(t, err)
	assert.Equal(t, types.BundleKindArtifactArchive, result.Kind)
	require.Len(t, result.Artifacts, 2)

	// Sorted by artifact name.
	assert.Equal(t, "fancy", result.Artifacts[0].Name)
	assert.Equal(t, types.ArtifactKindLibrary, result.Artifacts[0].Kind)
	assert.Equal(t, "tool", result.Artifacts[1].Name)
	assert.Equal(t, 2, result.Artifacts[1].Variants)
	assert.Equal(t, []string{"arm64-apple-macosx11.0", "x86_64-apple-macosx10.9"}, result.Artifacts[1].Triples)
}

func TestInspectRequiresBundlePath(t *testing.T) {
	service, _, _ := fixtureService(t)
	_, err := service.Inspect(context.Background(), InspectRequest{})
	require.Error(t, err)
}
