package radar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []float64
	}{
		{name: "single axis", n: 1, want: []float64{-90}},
		{name: "two axes", n: 2, want: []float64{-90, 90}},
		{name: "four axes", n: 4, want: []float64{-90, 0, 90, 180}},
		{name: "six axes", n: 6, want: []float64{-90, -30, 30, 90, 150, 210}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				assert.InDelta(t, want, Angle(i, tt.n), eps)
			}
		})
	}
}

func TestAnglesStrictlyIncreasingWithoutDuplicates(t *testing.T) {
	for n := 1; n <= 24; n++ {
		seen := make(map[int64]bool)
		for i := 0; i < n; i++ {
			angle := Angle(i, n)
			if i > 0 {
				assert.Greater(t, angle, Angle(i-1, n), "n=%d i=%d", n, i)
			}
			normalized := math.Mod(angle+360, 360)
			key := int64(math.Round(normalized * 1e6))
			assert.False(t, seen[key], "duplicate angle for n=%d i=%d", n, i)
			seen[key] = true
		}
	}
}

func TestLayoutDefaults(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 110.0, opts.Radius())
	assert.Equal(t, Point{X: 150, Y: 150}, opts.Center())
}

func TestLayoutTwoAxes(t *testing.T) {
	chart, err := Layout(Profile{Names: []string{"Go", "Rust"}, Scores: []float64{80, 60}}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, chart.Axes, 2)

	assert.InDelta(t, -90, chart.Axes[0].Angle, eps)
	assert.InDelta(t, 90, chart.Axes[1].Angle, eps)

	// Go points straight up, Rust straight down
	assert.InDelta(t, 150, chart.Axes[0].Data.X, eps)
	assert.InDelta(t, 150-88, chart.Axes[0].Data.Y, eps)
	assert.InDelta(t, 150, chart.Axes[1].Data.X, eps)
	assert.InDelta(t, 150+66, chart.Axes[1].Data.Y, eps)

	assert.InDelta(t, 40, chart.Axes[0].End.Y, eps)
	assert.InDelta(t, 260, chart.Axes[1].End.Y, eps)
}

func TestLayoutRadiusBounds(t *testing.T) {
	chart, err := Layout(Profile{
		Names:  []string{"zero", "full", "half"},
		Scores: []float64{0, 100, 50},
	}, DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, 0, distance(chart.Axes[0].Data, chart.Center), eps)
	assert.InDelta(t, chart.Radius, distance(chart.Axes[1].Data, chart.Center), eps)
	assert.InDelta(t, chart.Radius/2, distance(chart.Axes[2].Data, chart.Center), eps)

	for _, axis := range chart.Axes {
		assert.InDelta(t, chart.Radius, distance(axis.End, chart.Center), eps)
		assert.InDelta(t, chart.Radius+DefaultLabelOffset, distance(axis.Label, chart.Center), 1e-6)
	}
}

func TestLayoutRadiusMonotonic(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	previous := -1.0
	for v := 0.0; v <= 100; v += 5 {
		scores := []float64{v, v, v, v, v}
		chart, err := Layout(Profile{Names: names, Scores: scores}, DefaultOptions())
		require.NoError(t, err)
		r := distance(chart.Axes[2].Data, chart.Center)
		assert.Greater(t, r, previous)
		previous = r
	}
}

func TestLayoutRings(t *testing.T) {
	chart, err := Layout(Profile{Names: []string{"a", "b", "c"}, Scores: []float64{10, 20, 30}}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, chart.Rings, len(Levels))

	for i, ring := range chart.Rings {
		assert.Equal(t, Levels[i], ring.Level)
		require.Len(t, ring.Points, 3)
		for _, p := range ring.Points {
			assert.InDelta(t, ring.Level/100*chart.Radius, distance(p, chart.Center), eps)
		}
	}
	assert.Len(t, chart.DataPolygon(), 3)
}

func TestLayoutIsPure(t *testing.T) {
	profile := Profile{Names: []string{"Go", "SQL", "K8s"}, Scores: []float64{90, 70, 40}}
	first, err := Layout(profile, DefaultOptions())
	require.NoError(t, err)
	second, err := Layout(profile, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		opts    Options
		wantErr error
	}{
		{
			name:    "no axes",
			profile: Profile{},
			opts:    DefaultOptions(),
			wantErr: ErrNoAxes,
		},
		{
			name:    "mismatched lengths",
			profile: Profile{Names: []string{"Go", "Rust"}, Scores: []float64{80}},
			opts:    DefaultOptions(),
			wantErr: ErrMismatchedProfile,
		},
		{
			name:    "score above range",
			profile: Profile{Names: []string{"Go"}, Scores: []float64{101}},
			opts:    DefaultOptions(),
			wantErr: ErrScoreOutOfRange,
		},
		{
			name:    "negative score",
			profile: Profile{Names: []string{"Go"}, Scores: []float64{-1}},
			opts:    DefaultOptions(),
			wantErr: ErrScoreOutOfRange,
		},
		{
			name:    "nan score",
			profile: Profile{Names: []string{"Go"}, Scores: []float64{math.NaN()}},
			opts:    DefaultOptions(),
			wantErr: ErrScoreOutOfRange,
		},
		{
			name:    "margin swallows radius",
			profile: Profile{Names: []string{"Go"}, Scores: []float64{50}},
			opts:    Options{Size: 80, Margin: 40},
			wantErr: ErrInvalidOptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := Layout(tt.profile, tt.opts)
			assert.Nil(t, chart)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
