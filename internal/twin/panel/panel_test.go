package panel

import (
	"encoding/json"
	"testing"

	"github.com/longkey1/twin/internal/twin"
	"github.com/longkey1/twin/internal/twin/radar"
	"github.com/longkey1/twin/internal/twin/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher() *Dispatcher {
	return NewDispatcher(timeline.NewStaticStore(timeline.Default()), radar.DefaultOptions())
}

func TestDispatchNilIsIdleTimeline(t *testing.T) {
	view := newDispatcher().Dispatch(nil)

	tv, ok := view.(*TimelineView)
	require.True(t, ok)
	assert.Equal(t, CategoryIdle, view.Category())
	assert.True(t, view.Resting())
	assert.Len(t, tv.Entries, 4)
	assert.Empty(t, tv.Highlighted())
}

func TestDispatchNilAndUnknownAreBothResting(t *testing.T) {
	d := newDispatcher()
	idle := d.Dispatch(nil)
	unknown := d.Dispatch(&twin.UnknownAction{Tag: "anything-unrecognized", Payload: json.RawMessage(`{}`)})

	assert.Equal(t, idle.Resting(), unknown.Resting())
	assert.True(t, unknown.Resting())

	ph, ok := unknown.(*PlaceholderView)
	require.True(t, ok)
	assert.Equal(t, WaitingMessage, ph.Message)
	assert.Equal(t, "anything-unrecognized", ph.Tag)
	assert.NoError(t, ph.Reason)
}

func TestDispatchHighlightTimeline(t *testing.T) {
	view := newDispatcher().Dispatch(&twin.HighlightTimeline{ID: "edu"})

	tv, ok := view.(*TimelineView)
	require.True(t, ok)
	assert.Equal(t, CategoryTimeline, view.Category())
	assert.False(t, view.Resting())
	assert.Equal(t, "edu", tv.HighlightID)
	assert.Equal(t, []string{"education_bgu"}, tv.Highlighted())
}

func TestDispatchShowProject(t *testing.T) {
	project := &twin.ShowProject{
		ID:          "twin",
		Title:       "Digital Twin",
		Description: "Conversational portfolio",
		TechStack:   []string{"Go", "FastAPI"},
	}
	view := newDispatcher().Dispatch(project)

	pv, ok := view.(*ProjectView)
	require.True(t, ok)
	assert.Equal(t, CategoryProject, view.Category())
	assert.Equal(t, *project, pv.Project)
}

func TestDispatchSkillFocus(t *testing.T) {
	view := newDispatcher().Dispatch(&twin.SkillFocus{Skills: []string{"Go", "Rust"}, Scores: []float64{80, 60}})

	rv, ok := view.(*RadarView)
	require.True(t, ok)
	assert.Equal(t, CategoryRadar, view.Category())
	require.Len(t, rv.Chart.Axes, 2)
	assert.InDelta(t, -90, rv.Chart.Axes[0].Angle, 1e-9)
	assert.InDelta(t, 90, rv.Chart.Axes[1].Angle, 1e-9)
}

func TestDispatchInvalidSkillFocusFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		action  *twin.SkillFocus
		wantErr error
	}{
		{name: "empty", action: &twin.SkillFocus{}, wantErr: radar.ErrNoAxes},
		{name: "mismatched", action: &twin.SkillFocus{Skills: []string{"Go"}, Scores: []float64{1, 2}}, wantErr: radar.ErrMismatchedProfile},
		{name: "out of range", action: &twin.SkillFocus{Skills: []string{"Go"}, Scores: []float64{150}}, wantErr: radar.ErrScoreOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newDispatcher().Dispatch(tt.action)
			ph, ok := view.(*PlaceholderView)
			require.True(t, ok)
			assert.Equal(t, twin.TypeSkillFocus, ph.Tag)
			assert.ErrorIs(t, ph.Reason, tt.wantErr)
		})
	}
}

func TestDispatchTypedNilActionsDoNotPanic(t *testing.T) {
	d := newDispatcher()
	actions := []twin.Action{
		(*twin.HighlightTimeline)(nil),
		(*twin.ShowProject)(nil),
		(*twin.SkillFocus)(nil),
		(*twin.UnknownAction)(nil),
	}
	for _, action := range actions {
		assert.NotPanics(t, func() {
			view := d.Dispatch(action)
			assert.True(t, view.Resting())
		})
	}
}
