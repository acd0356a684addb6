package chart

import (
	"plotpick/internal/annotate"
	"plotpick/internal/diag"
	"plotpick/internal/pick"
	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
)

// annotationBox is the overlay handle for a rendered annotation: the text
// block anchored at the selection target.
type annotationBox struct {
	At   geometry.Point2D // data coordinates
	Text string
}

// highlightMark is the overlay handle for the target crosshair drawn on top
// of the picked shape.
type highlightMark struct {
	At geometry.Point2D // data coordinates
}

// Cursor owns the active selection and its overlay handles, and connects
// pointer/key events to the picking engine. All methods run on the event
// thread; nothing here is safe for concurrent use.
type Cursor struct {
	chart    *Chart
	picker   *pick.Picker
	sink     diag.Sink
	overlays *pick.OverlayTable
	active   *pick.Selection

	// OnUpdate is called after every selection change with the current
	// annotation text, empty on dismissal.
	OnUpdate func(text string)
}

// NewCursor creates a cursor over the chart, reporting diagnostics to sink.
func NewCursor(c *Chart, sink diag.Sink) *Cursor {
	return &Cursor{
		chart:    c,
		picker:   pick.New(sink),
		sink:     sink,
		overlays: pick.NewOverlayTable(),
	}
}

// Active returns the current selection, or nil.
func (c *Cursor) Active() *pick.Selection { return c.active }

// ActiveOverlay returns the overlay record of the current selection for
// rendering, or nil when nothing is selected.
func (c *Cursor) ActiveOverlay() *pick.Overlay {
	if c.active == nil {
		return nil
	}
	return c.overlays.Overlay(c.active)
}

// HandleTap picks at a screen position. A hit replaces the active
// selection; a miss dismisses it.
func (c *Cursor) HandleTap(pos geometry.Point2D) {
	if sel := c.chart.PickAt(c.picker, pos); sel != nil {
		c.setActive(sel)
		return
	}
	c.dismiss()
}

// HandleKey steps the active selection along its data.
func (c *Cursor) HandleKey(key shape.Key) {
	if c.active == nil {
		return
	}
	moved := c.picker.Move(c.active, key)
	if moved.Same(c.active) {
		return
	}
	c.setActive(moved)
}

// Dismiss clears the active selection and its overlays.
func (c *Cursor) Dismiss() { c.dismiss() }

func (c *Cursor) setActive(sel *pick.Selection) {
	c.dropOverlays()
	c.active = sel

	text := annotate.Text(sel, c.chart, c.sink)
	ov := c.overlays.Overlay(sel)
	ov.Annotation = &annotationBox{At: sel.Target.Point2D, Text: text}
	ov.Extras = append(ov.Extras, &highlightMark{At: sel.Target.Point2D})

	if c.OnUpdate != nil {
		c.OnUpdate(text)
	}
}

func (c *Cursor) dismiss() {
	if c.active == nil {
		return
	}
	c.dropOverlays()
	c.active = nil
	if c.OnUpdate != nil {
		c.OnUpdate("")
	}
}

// dropOverlays releases the previous selection's overlay handles. The
// handles are plain render records here, so releasing them is just letting
// them go; a retained-mode host would dispose widgets instead.
func (c *Cursor) dropOverlays() {
	if c.active != nil {
		c.overlays.Clear(c.active)
	}
}
