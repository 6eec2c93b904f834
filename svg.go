package pcurve

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Close the path after the last point.
	Close bool
}

// SVG converts a sequence of points, such as those returned by [Linspace],
// to SVG path data describing the polyline through them.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Point], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of points to SVG path data describing the
// polyline through them and writes it to w. The first point is a "move to"
// command and all following points are "line to" commands.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[Point], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		return strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	first := true
	for pt := range seq {
		if err != nil {
			return err
		}
		if first {
			writef("M%s,%s", format(pt.X), format(pt.Y))
			first = false
		} else {
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	if opts.Close && !first {
		writef(" Z")
	}
	return err
}
