package render

// Typed rendering of the plotly figure subset a VariantMap plot uses. The
// renderer itself is a JS client; this package only produces the figure
// description it consumes.

import (
	"github.com/cytham/variantmap/pkg/model"
)

// Default class colors, keyed by SV class tag.
var DefaultClassColors = map[string]string{
	"DEL": "#4daf4a",
	"INV": "#377eb8",
	"INS": "#e41a1c",
	"BND": "#984ea3",
	"DUP": "#ff7f00",
	"UKN": "#000000",
	"NIL": "#d1d9e0",
}

// Marker boundaries of the class bins and the colorbar tick positions
// centered inside them, both over the normalized class-code range.
var (
	classMarkers     = []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0, 1.2, 1.4}
	colorbarTickVals = []float64{0.071, 0.214, 0.357, 0.500, 0.643, 0.786, 0.929}
)

type Font struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

type Title struct {
	Text     string  `json:"text"`
	Font     Font    `json:"font"`
	X        float64 `json:"x,omitempty"`
	Standoff int     `json:"standoff,omitempty"`
}

type Colorbar struct {
	Title     Title     `json:"title"`
	Thickness int       `json:"thickness"`
	Tickvals  []float64 `json:"tickvals"`
	Ticktext  []string  `json:"ticktext"`
	Tickfont  Font      `json:"tickfont"`
}

type HeatmapTrace struct {
	Type       string      `json:"type"`
	Z          [][]float64 `json:"z"`
	Y          []string    `json:"y"`
	Colorscale Colorscale  `json:"colorscale"`
	Colorbar   Colorbar    `json:"colorbar"`
	Zmin       float64     `json:"zmin"`
	Zmax       float64     `json:"zmax"`
	Hovertext  [][]string  `json:"hovertext"`
	Hoverinfo  string      `json:"hoverinfo"`
	Xgap       int         `json:"xgap"`
	Ygap       int         `json:"ygap"`
}

type Rangeslider struct {
	Visible bool `json:"visible"`
}

type Axis struct {
	Title          Title        `json:"title"`
	Rangeslider    *Rangeslider `json:"rangeslider,omitempty"`
	Showticklabels *bool        `json:"showticklabels,omitempty"`
	Side           string       `json:"side,omitempty"`
	Type           string       `json:"type,omitempty"`
	Tickfont       *Font        `json:"tickfont,omitempty"`
}

type Layout struct {
	Title        Title  `json:"title"`
	Xaxis        Axis   `json:"xaxis"`
	Yaxis        Axis   `json:"yaxis"`
	Height       int    `json:"height"`
	Width        int    `json:"width"`
	PaperBgcolor string `json:"paper_bgcolor"`
	PlotBgcolor  string `json:"plot_bgcolor"`
}

type Figure struct {
	Data   []HeatmapTrace `json:"data"`
	Layout Layout         `json:"layout"`
}

// FigureOptions controls the cosmetic side of the plot. Start from
// DefaultFigureOptions and override what the caller asked for.
type FigureOptions struct {
	Title             string
	ColorbarThickness int
	Rangeslider       bool
	Height            int
	Width             int
	Colors            map[string]string // class color overrides, partial
}

func DefaultFigureOptions() FigureOptions {
	return FigureOptions{
		ColorbarThickness: 25,
		Rangeslider:       true,
		Height:            500,
		Width:             600,
	}
}

// classColors resolves one color per SV class in colorbar order. Partial
// override: classes missing from overrides keep their default color.
func classColors(overrides map[string]string) []string {
	colors := make([]string, 0, len(model.SVClasses))
	for _, class := range model.SVClasses {
		tag := class.String()
		if color, ok := overrides[tag]; ok {
			colors = append(colors, color)
		} else {
			colors = append(colors, DefaultClassColors[tag])
		}
	}
	return colors
}

func openSans(size int) Font {
	return Font{Family: "Open Sans", Size: size, Color: "#ffffff"}
}

// NewVariantMapFigure assembles the heatmap trace and layout for a built
// matrix.
func NewVariantMapFigure(m *model.RenderMatrix, opts FigureOptions) (*Figure, error) {
	if opts.ColorbarThickness == 0 {
		opts.ColorbarThickness = 25
	}
	if opts.Height == 0 {
		opts.Height = 500
	}
	if opts.Width == 0 {
		opts.Width = 600
	}

	scale, err := DiscreteColorscale(classMarkers, classColors(opts.Colors))
	if err != nil {
		return nil, err
	}

	trace := HeatmapTrace{
		Type:       "heatmap",
		Z:          m.Z,
		Y:          m.Labels,
		Colorscale: scale,
		Colorbar: Colorbar{
			Title:     Title{Text: "SV classes", Font: openSans(14)},
			Thickness: opts.ColorbarThickness,
			Tickvals:  colorbarTickVals,
			Ticktext:  model.SVClassTags(),
			Tickfont:  openSans(14),
		},
		Zmin:      0.0,
		Zmax:      1.0,
		Hovertext: m.Hover,
		Hoverinfo: "text",
		Xgap:      2,
		Ygap:      2,
	}

	hideTicks := false
	layout := Layout{
		Title: Title{
			Text: "<b>" + opts.Title + "<b>",
			Font: openSans(18),
			X:    0.48,
		},
		Xaxis: Axis{
			Title:          Title{Text: "Variants", Font: openSans(16), Standoff: 3},
			Rangeslider:    &Rangeslider{Visible: opts.Rangeslider},
			Showticklabels: &hideTicks,
			Side:           "top",
			Type:           "-",
		},
		Yaxis: Axis{
			Title:    Title{Text: "Samples", Font: openSans(16), Standoff: 3},
			Tickfont: &Font{Family: "Open Sans", Size: 14, Color: "#ffffff"},
		},
		Height:       opts.Height,
		Width:        opts.Width,
		PaperBgcolor: "rgba(10,43,77,255)",
		PlotBgcolor:  "rgba(255,255,255,255)",
	}

	return &Figure{Data: []HeatmapTrace{trace}, Layout: layout}, nil
}
