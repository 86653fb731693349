package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/longkey1/twin/internal/twin/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFields = "configfile, api_url, avatar_url, timeline_file, color, log_level, log_format, radar_size, radar_margin, radar_label_offset, mock_addr"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + configFields + `

Examples:
  twin config                  # Show all configuration
  twin config api_url          # Show only the backend URL
  twin config timeline_file    # Show only the timeline file`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		timelineFile := cfg.TimelineFile
		if timelineFile == "" {
			timelineFile = "(built-in)"
		}
		avatarURL := cfg.AvatarURL
		if avatarURL == "" {
			avatarURL = "(" + cfg.APIURL + "/avatar.png)"
		}

		// If a field is specified, show only that field
		if len(args) > 0 {
			field := strings.ToLower(args[0])
			switch field {
			case "configfile":
				fmt.Println(viper.ConfigFileUsed())
			case "api_url", "apiurl":
				fmt.Println(cfg.APIURL)
			case "avatar_url", "avatarurl":
				fmt.Println(avatarURL)
			case "timeline_file", "timelinefile":
				fmt.Println(timelineFile)
			case "color":
				fmt.Println(cfg.Color)
			case "log_level", "loglevel":
				fmt.Println(cfg.LogLevel)
			case "log_format", "logformat":
				fmt.Println(cfg.LogFormat)
			case "radar_size", "radarsize":
				fmt.Println(cfg.RadarSize)
			case "radar_margin", "radarmargin":
				fmt.Println(cfg.RadarMargin)
			case "radar_label_offset", "radarlabeloffset":
				fmt.Println(cfg.RadarLabelOffset)
			case "mock_addr", "mockaddr":
				fmt.Println(cfg.MockAddr)
			default:
				fmt.Fprintf(os.Stderr, "Unknown field: %s\n", args[0])
				fmt.Fprintf(os.Stderr, "Available fields: %s\n", configFields)
				os.Exit(1)
			}
			return
		}

		// Display all configuration values
		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("APIURL: %s\n", cfg.APIURL)
		fmt.Printf("AvatarURL: %s\n", avatarURL)
		fmt.Printf("TimelineFile: %s\n", timelineFile)
		fmt.Printf("Color: %v\n", cfg.Color)
		fmt.Printf("LogLevel: %s\n", cfg.LogLevel)
		fmt.Printf("LogFormat: %s\n", cfg.LogFormat)
		fmt.Printf("Radar: size=%v margin=%v label_offset=%v\n", cfg.RadarSize, cfg.RadarMargin, cfg.RadarLabelOffset)
		fmt.Printf("MockAddr: %s\n", cfg.MockAddr)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
