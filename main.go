// Package main provides the plotpick demo application: an interactive chart
// whose shapes can be picked with the pointer and stepped with arrow keys.
package main

import (
	"log"
	"math"
	"math/rand"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
	"plotpick/ui/chart"
)

const (
	appTitle   = "Plot Picker"
	appVersion = "0.1.0"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, appVersion)

	fyneApp := app.New()
	win := fyneApp.NewWindow(appTitle)

	c := demoChart()
	cursor := chart.NewCursor(c, log.Printf)

	status := widget.NewLabel("Click a shape to pick it; arrow keys step the selection.")
	cursor.OnUpdate = func(text string) {
		if text == "" {
			status.SetText("No selection.")
			return
		}
		status.SetText(strings.ReplaceAll(text, "\n", "  "))
	}

	view := chart.NewWidget(c, cursor)
	win.Canvas().SetOnTypedKey(view.TypedKey)
	win.SetContent(container.NewBorder(nil, status, nil, nil, view))
	win.Resize(fyne.NewSize(820, 560))
	win.ShowAndRun()
}

// demoChart plots one shape of every pickable kind.
func demoChart() *chart.Chart {
	c := chart.New(geometry.NewRect(0, -1.5, 10, 3), 800, 500)

	c.Add(chart.NewHeatmap("ripple", geometry.NewRect(6.5, 0.4, 3, 1), rippleGrid(12, 18)))
	c.Add(chart.NewPolygon(c, "wedge", []geometry.Point2D{
		{X: 1, Y: -1.2}, {X: 3, Y: -0.4}, {X: 2.2, Y: -1.4},
	}))

	line := chart.NewLine(c, "sin(x)", sineData(40))
	line.Style = shape.DrawStepsMid
	c.Add(line)

	c.Add(chart.NewScatter(c, "samples", scatterData(25)))
	c.Add(chart.NewTextLabel("_caption", "plotpick demo", geometry.NewPoint2D(0.3, 1.3)))
	return c
}

func sineData(n int) []geometry.Point2D {
	pts := make([]geometry.Point2D, n)
	for i := range pts {
		x := float64(i) / float64(n-1) * 10
		pts[i] = geometry.Point2D{X: x, Y: math.Sin(x)}
	}
	return pts
}

func scatterData(n int) []geometry.Point2D {
	rng := rand.New(rand.NewSource(7))
	pts := make([]geometry.Point2D, n)
	for i := range pts {
		pts[i] = geometry.Point2D{
			X: rng.Float64() * 10,
			Y: rng.Float64()*0.8 - 1.4,
		}
	}
	return pts
}

func rippleGrid(rows, cols int) [][]float64 {
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for col := range grid[r] {
			dr := float64(r) - float64(rows)/2
			dc := float64(col) - float64(cols)/2
			grid[r][col] = math.Cos(math.Hypot(dr, dc) / 2)
		}
	}
	return grid
}
