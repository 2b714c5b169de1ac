package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscreteColorscaleBase(t *testing.T) {
	scale, err := DiscreteColorscale([]float64{0.0, 1.0}, []string{"#fff"})
	require.NoError(t, err)
	assert.Equal(t, Colorscale{
		{Pos: 0.0, Color: "#fff"},
		{Pos: 1.0, Color: "#fff"},
	}, scale)
}

func TestDiscreteColorscaleNormalizes(t *testing.T) {
	scale, err := DiscreteColorscale(
		[]float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.2, 1.4},
		[]string{"a", "b", "c", "d", "e", "f", "g"},
	)
	require.NoError(t, err)
	require.Len(t, scale, 14)

	assert.Equal(t, 0.0, scale[0].Pos)
	assert.Equal(t, 0.143, scale[1].Pos)
	assert.Equal(t, 0.143, scale[2].Pos)
	assert.Equal(t, 1.0, scale[13].Pos)
	assert.Equal(t, "g", scale[13].Color)
}

func TestDiscreteColorscaleSortsMarkers(t *testing.T) {
	scale, err := DiscreteColorscale([]float64{1.0, 0.0, 0.5}, []string{"lo", "hi"})
	require.NoError(t, err)
	assert.Equal(t, Colorscale{
		{Pos: 0.0, Color: "lo"},
		{Pos: 0.5, Color: "lo"},
		{Pos: 0.5, Color: "hi"},
		{Pos: 1.0, Color: "hi"},
	}, scale)
}

func TestDiscreteColorscaleValidation(t *testing.T) {
	_, err := DiscreteColorscale([]float64{0.0, 0.5, 1.0}, []string{"only-one"})
	assert.ErrorIs(t, err, ErrColorscaleLength)

	_, err = DiscreteColorscale([]float64{1.0}, nil)
	assert.ErrorIs(t, err, ErrColorscaleLength)

	_, err = DiscreteColorscale([]float64{0.5, 0.5}, []string{"#000"})
	assert.ErrorIs(t, err, ErrColorscaleLength)
}

func TestStopJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Stop{Pos: 0.25, Color: "#4daf4a"})
	require.NoError(t, err)
	assert.JSONEq(t, `[0.25,"#4daf4a"]`, string(raw))

	var back Stop
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, Stop{Pos: 0.25, Color: "#4daf4a"}, back)
}
