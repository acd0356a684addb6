// Command picktrace exercises the picking engine headlessly. Arguments are
// processed in order: an "x,y" pair picks at that screen position, a key
// name (left/right/up/down) moves the current selection.
//
//	picktrace 400,250 right right left
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"plotpick/internal/annotate"
	"plotpick/internal/diag"
	"plotpick/internal/pick"
	"plotpick/internal/shape"
	"plotpick/pkg/geometry"
	"plotpick/ui/chart"
)

func main() {
	verbose := flag.Bool("v", false, "print engine diagnostics")
	flag.Parse()
	log.SetFlags(0)

	sink := diag.Sink(nil)
	if *verbose {
		sink = log.Printf
	}

	c := sampleChart()
	picker := pick.New(sink)

	var sel *pick.Selection
	for _, arg := range flag.Args() {
		if strings.Contains(arg, ",") {
			pos, err := parsePos(arg)
			if err != nil {
				log.Fatalf("bad position %q: %v", arg, err)
			}
			sel = c.PickAt(picker, pos)
			if sel == nil {
				fmt.Printf("%s: no match\n", arg)
				continue
			}
			report(c, sel, sink)
			continue
		}
		if sel == nil {
			log.Fatalf("key %q without a selection; pick with x,y first", arg)
		}
		sel = picker.Move(sel, shape.Key(arg))
		report(c, sel, sink)
	}
}

func parsePos(arg string) (geometry.Point2D, error) {
	xs, ys, ok := strings.Cut(arg, ",")
	if !ok {
		return geometry.Point2D{}, fmt.Errorf("want x,y")
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Point2D{}, err
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Point2D{}, err
	}
	return geometry.Point2D{X: x, Y: y}, nil
}

func report(c *chart.Chart, sel *pick.Selection, sink diag.Sink) {
	idx := "-"
	if sel.Target.Index != nil {
		idx = sel.Target.Index.String()
	}
	fmt.Printf("%s dist=%.2fpx index=%s target=(%g, %g)\n",
		sel.Shape.Label(), sel.Dist, idx, sel.Target.X, sel.Target.Y)
	for _, line := range strings.Split(annotate.Text(sel, c, sink), "\n") {
		fmt.Printf("    %s\n", line)
	}
}

// sampleChart mirrors the demo application's chart so traces line up with
// what the GUI shows.
func sampleChart() *chart.Chart {
	c := chart.New(geometry.NewRect(0, -1.5, 10, 3), 800, 500)

	grid := make([][]float64, 12)
	for r := range grid {
		grid[r] = make([]float64, 18)
		for col := range grid[r] {
			dr := float64(r) - 6
			dc := float64(col) - 9
			grid[r][col] = math.Cos(math.Hypot(dr, dc) / 2)
		}
	}
	c.Add(chart.NewHeatmap("ripple", geometry.NewRect(6.5, 0.4, 3, 1), grid))
	c.Add(chart.NewPolygon(c, "wedge", []geometry.Point2D{
		{X: 1, Y: -1.2}, {X: 3, Y: -0.4}, {X: 2.2, Y: -1.4},
	}))

	pts := make([]geometry.Point2D, 40)
	for i := range pts {
		x := float64(i) / 39 * 10
		pts[i] = geometry.Point2D{X: x, Y: math.Sin(x)}
	}
	line := chart.NewLine(c, "sin(x)", pts)
	line.Style = shape.DrawStepsMid
	c.Add(line)
	return c
}
