package chart

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// Widget displays a chart and routes pointer taps and arrow keys to the
// cursor.
type Widget struct {
	widget.BaseWidget
	chart  *Chart
	cursor *Cursor
	raster *fynecanvas.Raster
}

// NewWidget creates the chart widget.
func NewWidget(c *Chart, cur *Cursor) *Widget {
	w := &Widget{chart: c, cursor: cur}
	w.raster = fynecanvas.NewRaster(w.draw)
	w.raster.ScaleMode = fynecanvas.ImageScalePixels
	w.raster.SetMinSize(fyne.NewSize(float32(c.Width), float32(c.Height)))
	w.ExtendBaseWidget(w)
	return w
}

func (w *Widget) draw(width, height int) image.Image {
	// Track the viewport so the data-to-screen transform follows resizes.
	if width > 0 && height > 0 {
		w.chart.Width = width
		w.chart.Height = height
	}
	return Render(w.chart, w.cursor)
}

// Tapped handles left-click events.
func (w *Widget) Tapped(ev *fyne.PointEvent) {
	// Reject clicks outside the widget bounds.
	size := w.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}
	w.cursor.HandleTap(geometry.NewPoint2D(float64(ev.Position.X), float64(ev.Position.Y)))
	w.Refresh()
}

// TypedKey steps the selection on arrow keys; other keys are ignored.
// Wire it up with window.Canvas().SetOnTypedKey.
func (w *Widget) TypedKey(ev *fyne.KeyEvent) {
	var key shape.Key
	switch ev.Name {
	case fyne.KeyLeft:
		key = shape.KeyLeft
	case fyne.KeyRight:
		key = shape.KeyRight
	case fyne.KeyUp:
		key = shape.KeyUp
	case fyne.KeyDown:
		key = shape.KeyDown
	default:
		return
	}
	w.cursor.HandleKey(key)
	w.Refresh()
}

// Refresh redraws the chart raster.
func (w *Widget) Refresh() {
	w.raster.Refresh()
	w.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}
