package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artifact-resolver/internal/app"
	"artifact-resolver/internal/types"
	"artifact-resolver/tests/testutil"
)

const integrationBundleYAML = `format_version: "1.0"
libraries:
  - identifier: macos-universal
    platform: macos
    architectures: [x86_64, arm64]
    library_path: libpayload.a
    headers_path: Headers
  - identifier: ios-device
    platform: ios
    architectures: [arm64]
    library_path: libpayload.a
`

const integrationArchiveJSON = `{
  "schemaVersion": "1.0",
  "artifacts": {
    "formatter": {
      "type": "executable",
      "version": "5.0.1",
      "variants": [
        {"path": "formatter-5.0.1/x86_64/formatter", "supportedTriples": ["x86_64-apple-macosx10.9"]},
        {"path": "formatter-5.0.1/arm64/formatter", "supportedTriples": ["arm64-apple-macosx11.0"]},
        {"path": "formatter-5.0.1/linux/formatter", "supportedTriples": ["x86_64-unknown-linux-gnu"]}
      ]
    }
  }
}`

// End-to-end through the real filesystem adapters: on-disk fixture
// bundles of both schemas resolved through the application service.
func TestResolveAgainstOnDiskBundles(t *testing.T) {
	root := t.TempDir()
	bundleRoot := filepath.Join(root, "Payload.binbundle")
	archiveRoot := filepath.Join(root, "formatter.artifactbundle")
	testutil.WriteFixtureFile(t, bundleRoot, "bundle.yaml", integrationBundleYAML)
	testutil.WriteFixtureFile(t, bundleRoot, "macos-universal/libpayload.a", "payload")
	testutil.WriteFixtureFile(t, archiveRoot, "info.json", integrationArchiveJSON)
	testutil.WriteFixtureFile(t, archiveRoot, "formatter-5.0.1/arm64/formatter", "#!binary")

	service := app.NewService(afero.NewOsFs())
	ctx := context.Background()

	library, err := service.Resolve(ctx, app.ResolveRequest{
		BundlePath: bundleRoot,
		Triple:     "x86_64-apple-macosx13.0",
	})
	require.NoError(t, err)
	assert.Equal(t, types.BundleKindLibraryBundle, library.Kind)
	require.NotNil(t, library.Library)
	assert.Equal(t, filepath.Join(bundleRoot, "macos-universal", "libpayload.a"), library.Library.LibraryPath)
	assert.Equal(t, []string{filepath.Join(bundleRoot, "macos-universal", "Headers")}, library.Library.HeaderPaths)

	archive, err := service.Resolve(ctx, app.ResolveRequest{
		BundlePath: archiveRoot,
		Triple:     "arm64-apple-macosx12.0",
	})
	require.NoError(t, err)
	assert.Equal(t, types.BundleKindArtifactArchive, archive.Kind)
	require.Len(t, archive.Executables, 1)
	assert.Equal(t, "formatter", archive.Executables[0].Name)
	assert.Equal(t, filepath.Join(archiveRoot, "formatter-5.0.1", "arm64", "formatter"), archive.Executables[0].ExecutablePath)

	// Same archive, non-Apple triple: a different variant applies.
	linux, err := service.Resolve(ctx, app.ResolveRequest{
		BundlePath: archiveRoot,
		Triple:     "x86_64-unknown-linux-gnu",
	})
	require.NoError(t, err)
	require.Len(t, linux.Executables, 1)
	assert.Equal(t, filepath.Join(archiveRoot, "formatter-5.0.1", "linux", "formatter"), linux.Executables[0].ExecutablePath)
}

func TestValidateAndInspectOnDiskBundles(t *testing.T) {
	root := t.TempDir()
	bundleRoot := filepath.Join(root, "Payload.binbundle")
	archiveRoot := filepath.Join(root, "formatter.artifactbundle")
	testutil.WriteFixtureFile(t, bundleRoot, "bundle.yaml", integrationBundleYAML)
	testutil.WriteFixtureFile(t, archiveRoot, "info.json", integrationArchiveJSON)

	service := app.NewService(afero.NewOsFs())
	ctx := context.Background()

	validated, err := service.Validate(ctx, app.ValidateRequest{BundlePath: bundleRoot})
	require.NoError(t, err)
	assert.Equal(t, 2, validated.Slices)

	inspected, err := service.Inspect(ctx, app.InspectRequest{BundlePath: archiveRoot})
	require.NoError(t, err)
	require.Len(t, inspected.Artifacts, 1)
	assert.Equal(t, "formatter", inspected.Artifacts[0].Name)
	assert.Equal(t, 3, inspected.Artifacts[0].Variants)
}
