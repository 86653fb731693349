package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/longkey1/twin/internal/render"
	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/panel"
	"github.com/longkey1/twin/internal/twin/timeline"
	"github.com/spf13/cobra"
)

var panelSVG string

// panelCmd represents the panel command
var panelCmd = &cobra.Command{
	Use:   "panel [file]",
	Short: "Render the visual panel for a UI action",
	Long: `Render the visual panel selected by a UI action.

The action is read as JSON from the given file, or from stdin when the file is
omitted or "-":
  {"type": "SKILL_FOCUS", "payload": {"skills": ["Go", "Rust"], "scores": [80, 60]}}

Without an action document ("null") the idle timeline is shown. Unknown action
types render the waiting placeholder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading ui action: %w", err)
		}

		var action twin.Action
		if trimmed := strings.TrimSpace(string(data)); trimmed != "" && trimmed != "null" {
			action, err = twin.ParseAction(data)
			if errors.Is(err, twin.ErrMalformedPayload) {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			} else if err != nil {
				return err
			}
		}

		store, err := timeline.NewStore(cfg.TimelineFile)
		if err != nil {
			return fmt.Errorf("loading timeline: %w", err)
		}

		view := panel.NewDispatcher(store, cfg.RadarOptions()).Dispatch(action)
		render.NewTerminal(os.Stdout, render.TerminalWidth(os.Stdout), cfg.Color).View(view)

		if panelSVG != "" {
			radarView, ok := view.(*panel.RadarView)
			if !ok {
				return fmt.Errorf("--svg requires a SKILL_FOCUS action, got %s view", view.Category())
			}
			return writeSVGFile(panelSVG, radarView)
		}
		return nil
	},
}

// writeSVGFile saves a radar view as SVG; "-" writes to stdout.
func writeSVGFile(path string, view *panel.RadarView) error {
	if path == "-" {
		return render.SVG(os.Stdout, view.Chart, view.Title)
	}
	return render.WriteSVGFile(path, view.Chart, view.Title)
}

func init() {
	rootCmd.AddCommand(panelCmd)

	panelCmd.Flags().StringVar(&panelSVG, "svg", "", "Also write a skill radar as SVG to this file ('-' for stdout)")
}
