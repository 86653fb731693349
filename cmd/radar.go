package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/longkey1/twin/internal/render"
	"github.com/longkey1/twin/internal/twin/panel"
	"github.com/longkey1/twin/internal/twin/radar"
	"github.com/spf13/cobra"
)

var (
	radarSVG  string
	radarJSON bool
)

// radarCmd represents the radar command
var radarCmd = &cobra.Command{
	Use:   "radar NAME=SCORE...",
	Short: "Draw a skill radar",
	Long: `Draw a skill radar from NAME=SCORE pairs, scores between 0 and 100.

Examples:
  twin radar Go=80 Rust=60 Python=95
  twin radar Go=80 Rust=60 --svg radar.svg
  twin radar Go=80 Rust=60 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		profile, err := parseProfile(args)
		if err != nil {
			return err
		}

		chart, err := radar.Layout(profile, cfg.RadarOptions())
		if err != nil {
			return fmt.Errorf("laying out radar: %w", err)
		}

		if radarJSON {
			data, err := sonic.ConfigStd.MarshalIndent(chart, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding chart: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		view := &panel.RadarView{Title: "Skill Proficiency", Chart: chart}
		if radarSVG != "" {
			return writeSVGFile(radarSVG, view)
		}
		render.NewTerminal(os.Stdout, render.TerminalWidth(os.Stdout), cfg.Color).View(view)
		return nil
	},
}

// parseProfile parses NAME=SCORE arguments in order
func parseProfile(args []string) (radar.Profile, error) {
	var profile radar.Profile
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return radar.Profile{}, fmt.Errorf("invalid skill %q (expected NAME=SCORE)", arg)
		}
		name := strings.TrimSpace(arg[:i])
		score, err := strconv.ParseFloat(strings.TrimSpace(arg[i+1:]), 64)
		if err != nil {
			return radar.Profile{}, fmt.Errorf("invalid score in %q: %v", arg, err)
		}
		profile.Names = append(profile.Names, name)
		profile.Scores = append(profile.Scores, score)
	}
	return profile, nil
}

func init() {
	rootCmd.AddCommand(radarCmd)

	radarCmd.Flags().StringVar(&radarSVG, "svg", "", "Write the radar as SVG to this file ('-' for stdout)")
	radarCmd.Flags().BoolVar(&radarJSON, "json", false, "Print the chart coordinates as JSON")
}
