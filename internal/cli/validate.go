package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"artifact-resolver/internal/app"
	"artifact-resolver/internal/types"
)

type validateOptions struct {
	Bundle string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a bundle's manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Bundle root path")
	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(cmd.Context(), app.ValidateRequest{
		BundlePath: resolveString(cmd, opts.Bundle, "bundle", "bundle"),
	})
	if err != nil {
		return err
	}
	if result.Kind == types.BundleKindLibraryBundle {
		fmt.Printf("validated: %s (%d slices)\n", result.Kind, result.Slices)
		return nil
	}
	fmt.Printf("validated: %s (%d artifacts)\n", result.Kind, result.Artifacts)
	return nil
}
