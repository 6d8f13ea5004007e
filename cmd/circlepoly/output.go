package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"honnef.co/go/circlepoly"
)

type coord interface{ ~float32 | ~float64 }

type document[T coord] struct {
	Radius   float64 `json:"radius"`
	Segments int     `json:"segments"`
	Points   [][3]T  `json:"points"`
}

func rows(p circlepoly.Polyline) [][3]float64 {
	out := make([][3]float64, len(p))
	for i, pt := range p {
		out[i] = [3]float64{pt.X, pt.Y, pt.Z}
	}
	return out
}

func write[T coord](w io.Writer, format string, cs circlepoly.CircleSpec, pts [][3]T) error {
	switch format {
	case "text":
		return writeText(w, pts)
	case "json":
		return writeJSON(w, cs, pts)
	case "svg":
		return writeSVG(w, cs, pts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText[T coord](w io.Writer, pts [][3]T) error {
	for _, pt := range pts {
		if _, err := fmt.Fprintf(w, "%g %g %g\n", pt[0], pt[1], pt[2]); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON[T coord](w io.Writer, cs circlepoly.CircleSpec, pts [][3]T) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(document[T]{
		Radius:   cs.Radius,
		Segments: cs.Segments,
		Points:   pts,
	})
}

// writeSVG draws the polyline seen from above: x to the right, z downwards.
func writeSVG[T coord](w io.Writer, cs circlepoly.CircleSpec, pts [][3]T) error {
	pad := cs.Radius * 0.05
	extent := cs.Radius + pad
	var sb strings.Builder
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g,%g", pt[0], pt[2])
	}
	_, err := fmt.Fprintf(w,
		"<svg viewBox=\"%g %g %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n"+
			"<polyline points=\"%s\" fill=\"none\" stroke=\"black\" stroke-width=\"%g\" />\n"+
			"</svg>\n",
		-extent, -extent, 2*extent, 2*extent,
		sb.String(), cs.Radius/50)
	return err
}
