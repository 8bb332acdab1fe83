package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"artifact-resolver/internal/app"
	"artifact-resolver/internal/types"
)

type inspectOptions struct {
	Bundle string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a bundle's manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Bundle root path")
	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{
		BundlePath: resolveString(cmd, opts.Bundle, "bundle", "bundle"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("kind: %s\n", result.Kind)
	if result.Kind == types.BundleKindLibraryBundle {
		fmt.Printf("slices: %d\n", len(result.Slices))
		for _, slice := range result.Slices {
			variant := ""
			if slice.PlatformVariant != "" {
				variant = "/" + slice.PlatformVariant
			}
			fmt.Printf("- %s (%s%s): %s\n", slice.Identifier, slice.Platform, variant, strings.Join(slice.Architectures, ", "))
		}
		return nil
	}
	fmt.Printf("artifacts: %d\n", len(result.Artifacts))
	for _, artifact := range result.Artifacts {
		fmt.Printf("- %s %s (%s): %d variants\n", artifact.Name, artifact.Version, artifact.Kind, artifact.Variants)
		if len(artifact.Triples) > 0 {
			fmt.Printf("  %s\n", strings.Join(artifact.Triples, ", "))
		}
	}
	return nil
}
