// Command splinepath samples a cardinal spline through the control points
// of a route and prints the sampled positions.
//
// Without a route file the eight-knot demo loop is used. Flags override the
// parameters of the route:
//
//	splinepath -route track.yaml -spacing 0.25
//	splinepath -open -subdivisions 10
//	splinepath -at 0,0.25,0.5,0.75,1
//
// With -at, only the positions at the given progress values are printed,
// otherwise all filtered samples. Closed routes additionally report their
// footprint on the ground plane.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinepath"
	"github.com/npillmayer/splinepath/route"
)

var traceKeys = []string{"splinepath", "graphics", "route", "polyn"}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "splinepath: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("splinepath", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		routeFile    = fs.String("route", "", "YAML route file (default: built-in demo loop)")
		tension      = fs.Float64("tension", 0.5, "spline tension")
		subdivisions = fs.Int("subdivisions", 5, "samples per segment")
		open         = fs.Bool("open", false, "do not connect the last control point to the first")
		spacing      = fs.Float64("spacing", 0.1, "minimum distance between kept samples")
		rotate       = fs.Float64("rotate", 0, "rotate the route around the y-axis (degrees)")
		at           = fs.String("at", "", "comma-separated progress values to query")
		dump         = fs.Bool("dump", false, "print the effective route as YAML and exit")
		trace        = fs.String("trace", "error", "trace level: debug, info or error")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setTraceLevel(*trace); err != nil {
		return err
	}

	r := route.Default()
	if *routeFile != "" {
		var err error
		if r, err = route.Load(*routeFile); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tension":
			r.Config.Tension = *tension
		case "subdivisions":
			r.Config.Subdivisions = *subdivisions
		case "open":
			r.Config.Closed = !*open
		case "spacing":
			r.MinSpacing = *spacing
		}
	})
	if *rotate != 0 {
		for i, p := range r.Points {
			r.Points[i] = p.RotatedY(*rotate * splinepath.Deg2Rad)
		}
	}
	if *dump {
		return r.Encode(out)
	}

	ps, err := r.Sampler()
	if err != nil {
		return err
	}
	if *at != "" {
		alphas, err := parseProgress(*at)
		if err != nil {
			return err
		}
		for _, alpha := range alphas {
			p, err := ps.PointAt(alpha)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%g\t%s\n", alpha, format(p))
		}
		return nil
	}
	for _, p := range ps.Points() {
		fmt.Fprintln(out, format(p))
	}
	if r.Config.Closed {
		fp, err := r.Footprint()
		if err != nil {
			return err
		}
		min, max := fp.BoundingBox()
		fmt.Fprintf(out, "# footprint: %d knots, area %.4f, x %.4f … %.4f, z %.4f … %.4f\n",
			fp.N(), fp.Area(), min.X, max.X, min.Z, max.Z)
	}
	return nil
}

func format(p splinepath.V3) string {
	return fmt.Sprintf("%.4f\t%.4f\t%.4f", p.X, p.Y, p.Z)
}

func parseProgress(s string) ([]float64, error) {
	var alphas []float64
	for _, f := range strings.Split(s, ",") {
		alpha, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid progress value %q: %w", f, err)
		}
		alphas = append(alphas, alpha)
	}
	return alphas, nil
}

func setTraceLevel(level string) error {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error":
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}
