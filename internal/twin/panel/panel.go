// Package panel selects the view shown in the visual panel next to the chat.
//
// Dispatch is a pure function of the live UI action: it performs no I/O and
// never fails. Actions it cannot honour resolve to the waiting placeholder.
package panel

import (
	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/radar"
	"github.com/longkey1/twin/internal/twin/timeline"
)

// WaitingMessage is shown for actions the panel cannot display.
const WaitingMessage = "Waiting for visual context..."

// Category names the kind of view selected.
type Category string

const (
	CategoryIdle        Category = "idle"
	CategoryTimeline    Category = "timeline"
	CategoryProject     Category = "project"
	CategoryRadar       Category = "radar"
	CategoryPlaceholder Category = "placeholder"
)

// View is one renderable panel state.
type View interface {
	Category() Category
	// Resting reports whether the view is a neutral state (idle timeline or
	// waiting placeholder) rather than a response to a specific action.
	Resting() bool
}

// TimelineView shows the career timeline, optionally highlighted.
type TimelineView struct {
	HighlightID string
	Entries     []timeline.Marked
	idle        bool
}

// ProjectView shows a project summary card.
type ProjectView struct {
	Project twin.ShowProject
}

// RadarView shows a skill radar.
type RadarView struct {
	Title string
	Chart *radar.Chart
}

// PlaceholderView is the neutral fallback.
type PlaceholderView struct {
	Tag     string // tag of the action that led here
	Message string
	Reason  error // set when a known action could not be laid out
}

func (v *TimelineView) Category() Category {
	if v.idle {
		return CategoryIdle
	}
	return CategoryTimeline
}
func (v *TimelineView) Resting() bool { return v.idle }

func (*ProjectView) Category() Category { return CategoryProject }
func (*ProjectView) Resting() bool      { return false }

func (*RadarView) Category() Category { return CategoryRadar }
func (*RadarView) Resting() bool      { return false }

func (*PlaceholderView) Category() Category { return CategoryPlaceholder }
func (*PlaceholderView) Resting() bool      { return true }

// Highlighted returns the ids of highlighted entries.
func (v *TimelineView) Highlighted() []string {
	var ids []string
	for _, entry := range v.Entries {
		if entry.Highlighted {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

// EntrySource supplies the static timeline entries.
type EntrySource interface {
	Entries() []timeline.Entry
}

// Dispatcher maps UI actions to views.
type Dispatcher struct {
	source EntrySource
	opts   radar.Options
}

// NewDispatcher creates a dispatcher reading timeline entries from source and
// laying out radar charts with opts.
func NewDispatcher(source EntrySource, opts radar.Options) *Dispatcher {
	return &Dispatcher{source: source, opts: opts}
}

// Dispatch returns the view for action. A nil action yields the idle timeline.
func (d *Dispatcher) Dispatch(action twin.Action) View {
	switch a := action.(type) {
	case nil:
		return d.timeline("", true)

	case *twin.HighlightTimeline:
		if a == nil {
			return d.timeline("", true)
		}
		return d.timeline(a.ID, false)

	case *twin.ShowProject:
		if a == nil {
			return d.placeholder(twin.TypeShowProject, nil)
		}
		return &ProjectView{Project: *a}

	case *twin.SkillFocus:
		if a == nil {
			return d.placeholder(twin.TypeSkillFocus, nil)
		}
		chart, err := radar.Layout(radar.Profile{Names: a.Skills, Scores: a.Scores}, d.opts)
		if err != nil {
			return d.placeholder(a.Type(), err)
		}
		return &RadarView{Title: "Skill Proficiency", Chart: chart}

	case *twin.UnknownAction:
		if a == nil {
			return d.placeholder("", nil)
		}
		return d.placeholder(a.Tag, nil)

	default:
		return d.placeholder(action.Type(), nil)
	}
}

func (d *Dispatcher) timeline(highlightID string, idle bool) *TimelineView {
	return &TimelineView{
		HighlightID: highlightID,
		Entries:     timeline.Highlight(d.source.Entries(), highlightID),
		idle:        idle,
	}
}

func (d *Dispatcher) placeholder(tag string, reason error) *PlaceholderView {
	return &PlaceholderView{Tag: tag, Message: WaitingMessage, Reason: reason}
}
