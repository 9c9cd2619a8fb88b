package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/jarpath/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	cfg := new(config.Config)

	rootCmd := &cobra.Command{
		Use:          "jarpath",
		Short:        "Read and expand JAR manifest class paths",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			*cfg = *loaded
			commonlog.Configure(cfg.Verbosity, nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./"+config.FileName+" if present)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newManifestCmd())
	rootCmd.AddCommand(newClasspathCmd(cfg))

	return rootCmd
}
