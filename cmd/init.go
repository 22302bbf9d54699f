package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/qmc/minimize"
)

// initCmd: qmc init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	// the configuration file may not exist yet
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			if logger != nil {
				logger.Error("Error initializing config file", zap.Error(err))
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = minimize.DefaultConfigFile
	}
	if err := minimize.WriteConfig(configurationPath, minimize.DefaultConfig()); err != nil {
		return "", err
	}
	return configurationPath, nil
}
