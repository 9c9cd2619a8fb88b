package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/jarpath/classpath"
	"github.com/dhamidi/jarpath/config"
)

func newClasspathCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classpath [jar...]",
		Short: "Print the class path implied by JARs and their manifests",
		Long: `Print the class path as a list of JAR paths joined by the path separator.

The given JARs, or all .jar files in the lib/ directory (or the one
specified via -l) when none are given, are listed in order. Each JAR is
followed by the entries of its manifest Class-Path attribute, resolved
relative to the JAR and expanded recursively. Every path is printed once.

Examples:
  jarpath classpath                  # lib/*.jar and what they reference
  jarpath classpath -l deps/         # use deps/ instead
  jarpath classpath app.jar          # app.jar and its Class-Path
  jarpath classpath --follow=false   # do not read manifests`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasspath(cmd, cfg, args)
		},
	}

	cmd.Flags().StringP("lib", "l", "lib", "directory containing JAR files")
	cmd.Flags().Bool("follow", true, "expand manifest Class-Path attributes")
	cmd.Flags().Bool("keep-missing", false, "keep referenced entries that do not exist")
	cmd.Flags().String("separator", "", "path separator (default is the platform list separator)")

	return cmd
}

func runClasspath(cmd *cobra.Command, cfg *config.Config, jars []string) error {
	if len(jars) == 0 {
		var err error
		jars, err = classpath.LibDir(cfg.LibDir)
		if err != nil {
			return err
		}
	}

	resolver := classpath.NewResolver()
	resolver.Follow = cfg.Follow
	resolver.KeepMissing = cfg.KeepMissing

	paths, err := resolver.Expand(jars)
	if err != nil {
		return fmt.Errorf("expand class path: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), classpath.Join(paths, cfg.Separator))
	return err
}
