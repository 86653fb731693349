package cmd

import (
	"fmt"
	"os"

	"github.com/longkey1/twin/internal/render"
	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/panel"
	"github.com/longkey1/twin/internal/twin/timeline"
	"github.com/spf13/cobra"
)

var highlightID string

// timelineCmd represents the timeline command
var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the career timeline",
	Long: `Show the career timeline used by the visual panel.

With --highlight, every entry whose id contains the given text is highlighted,
exactly as a HIGHLIGHT_TIMELINE action would.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := timeline.NewStore(cfg.TimelineFile)
		if err != nil {
			return fmt.Errorf("loading timeline: %w", err)
		}

		var action twin.Action
		if highlightID != "" {
			action = &twin.HighlightTimeline{ID: highlightID}
		}

		view := panel.NewDispatcher(store, cfg.RadarOptions()).Dispatch(action)
		render.NewTerminal(os.Stdout, render.TerminalWidth(os.Stdout), cfg.Color).View(view)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().StringVar(&highlightID, "highlight", "", "Highlight entries whose id contains this text")
}
