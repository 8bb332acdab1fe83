package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"artifact-resolver/internal/app"
)

type resolveOptions struct {
	Bundle string
	Triple string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a bundle against a build triple",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Bundle, "bundle", "", "Bundle root path")
	cmd.Flags().StringVar(&opts.Triple, "triple", "", "Build triple, e.g. arm64-apple-macosx12.0")

	_ = viper.BindPFlag("bundle", cmd.Flags().Lookup("bundle"))
	_ = viper.BindPFlag("triple", cmd.Flags().Lookup("triple"))

	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(cmd.Context(), app.ResolveRequest{
		BundlePath: resolveString(cmd, opts.Bundle, "bundle", "bundle"),
		Triple:     resolveString(cmd, opts.Triple, "triple", "triple"),
	})
	if err != nil {
		return err
	}
	encoded, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Print(string(encoded))
	if result.Library == nil && len(result.Libraries) == 0 && len(result.Executables) == 0 {
		fmt.Printf("# bundle does not apply to %s\n", result.Triple)
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
