package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/twin/internal/twin/config"
	"github.com/longkey1/twin/internal/twin/timeline"
	"github.com/spf13/cobra"
)

const timelineFileName = "timeline.toml"

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Initialize the configuration file with default settings.
The config file will be created at $HOME/.config/twin/config.toml by default.
You can specify a different location using the --config option.

A copy of the built-in career timeline is written next to it as timeline.toml,
so it can be edited; running chat sessions pick up changes automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Get home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %v", err)
		}

		// Set config file path
		configFile := filepath.Join(home, ".config", "twin", "config.toml")
		if cfgFile != "" {
			configFile = cfgFile
		}

		// Create config directory
		configDir := filepath.Dir(configFile)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %v", err)
		}

		// Check if config file already exists
		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("config file already exists at: %s", configFile)
		}

		// Create default config; relative paths resolve against the config dir
		cfg := config.NewDefaultConfig()
		cfg.TimelineFile = timelineFileName

		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("failed to create config file: %v", err)
		}
		defer f.Close()

		encoder := toml.NewEncoder(f)
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %v", err)
		}

		timelineFile := filepath.Join(configDir, timelineFileName)
		if _, err := os.Stat(timelineFile); err == nil {
			fmt.Printf("Configuration file created at: %s\n", configFile)
			fmt.Printf("Keeping existing timeline at: %s\n", timelineFile)
			return nil
		}
		if err := os.WriteFile(timelineFile, timeline.DefaultTOML(), 0644); err != nil {
			return fmt.Errorf("failed to write timeline file: %v", err)
		}

		fmt.Printf("Configuration file created at: %s\n", configFile)
		fmt.Printf("Timeline file created at: %s\n", timelineFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
