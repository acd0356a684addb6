// Package annotate renders a Selection into the descriptive text shown next
// to it. Formatting of the raw coordinates belongs to the host; this package
// only reshapes that output and adds per-kind extras.
package annotate

import (
	"regexp"
	"strings"

	"plotpick/internal/diag"
	"plotpick/internal/pick"
	"plotpick/internal/shape"
)

// fieldPad matches the space- or comma-padded gaps between the fields of a
// host coordinate formatter, so they can be collapsed to one field per line.
var fieldPad = regexp.MustCompile(`[ ,] +`)

// Text computes the annotation text for sel using the host's coordinate
// formatter. Unsupported kinds produce a diagnostic and an empty string.
func Text(sel *pick.Selection, f shape.CoordFormatter, sink diag.Sink) string {
	if sel == nil {
		return ""
	}
	if sink == nil {
		sink = diag.Discard
	}
	switch sel.Shape.Kind() {
	case shape.KindLine, shape.KindScatter, shape.KindFilled:
		return coordText(sel, f)
	case shape.KindImage:
		text := coordText(sel, f)
		if img, ok := sel.Shape.(shape.ImageGrid); ok {
			if readout, ok := img.CursorData(sel.Target.X, sel.Target.Y); ok {
				text += "\n[" + readout + "]"
			}
		}
		return text
	}
	sink("annotate: support for %v shape %q is missing", sel.Shape.Kind(), sel.Shape.Label())
	return ""
}

func coordText(sel *pick.Selection, f shape.CoordFormatter) string {
	raw := f.FormatCoord(sel.Target.X, sel.Target.Y)
	text := strings.TrimSpace(fieldPad.ReplaceAllString(raw, "\n"))
	label := sel.Shape.Label()
	if label != "" && !strings.HasPrefix(label, "_") {
		text = label + "\n" + text
	}
	return text
}
