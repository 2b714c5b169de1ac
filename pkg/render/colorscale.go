package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrColorscaleLength is returned when the marker boundaries and colors do
// not describe a valid step function.
var ErrColorscaleLength = errors.New("need exactly one color per marker interval")

// Stop is one control point of a colorscale. It marshals as the
// [position, color] pair plotly expects.
type Stop struct {
	Pos   float64
	Color string
}

func (s Stop) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{s.Pos, s.Color})
}

func (s *Stop) UnmarshalJSON(data []byte) error {
	var pair [2]interface{}
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	pos, ok := pair[0].(float64)
	if !ok {
		return fmt.Errorf("colorscale stop: position %v is not a number", pair[0])
	}
	color, ok := pair[1].(string)
	if !ok {
		return fmt.Errorf("colorscale stop: color %v is not a string", pair[1])
	}
	s.Pos = pos
	s.Color = color
	return nil
}

// Colorscale is a piecewise-constant mapping from normalized value to
// display color.
type Colorscale []Stop

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// DiscreteColorscale builds a step colorscale from N+1 increasing marker
// boundaries and N colors. Markers are min-max normalized to [0,1]; each
// color contributes a stop at both of its interval boundaries.
func DiscreteColorscale(markers []float64, colors []string) (Colorscale, error) {
	if len(markers) < 2 || len(colors) != len(markers)-1 {
		return nil, fmt.Errorf("%d markers, %d colors: %w", len(markers), len(colors), ErrColorscaleLength)
	}

	sorted := append([]float64{}, markers...)
	sort.Float64s(sorted)

	span := sorted[len(sorted)-1] - sorted[0]
	if span == 0 {
		return nil, fmt.Errorf("markers span zero: %w", ErrColorscaleLength)
	}

	norm := make([]float64, len(sorted))
	for i, v := range sorted {
		norm[i] = round3((v - sorted[0]) / span)
	}

	scale := make(Colorscale, 0, 2*len(colors))
	for i, color := range colors {
		scale = append(scale,
			Stop{Pos: norm[i], Color: color},
			Stop{Pos: norm[i+1], Color: color},
		)
	}
	return scale, nil
}
