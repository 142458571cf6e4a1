/*
main.go - Command-line entry point

PURPOSE:
  Prints planetary period timelines and active-period paths from the
  command line. The engine itself is a pure library; this binary is the
  thinnest possible shell around it.

COMMAND-LINE FLAGS:
  -birth     Birth instant, RFC3339 (required), e.g. 2000-09-30T06:30:00Z
  -moon      Sidereal Moon longitude in degrees; resolved to an anchor
             via the selected system's nakshatra arithmetic
  -segment   Starting segment id (alternative to -moon)
  -fraction  Fraction of the starting segment already consumed [0,1)
  -system    vimshottari (default) or yogini
  -sequence  Path to a custom sequence file (.json/.yaml); requires
             -segment/-fraction since longitude mapping is
             system-specific
  -span      Timeline span in years (default: the system's own span)
  -depth     Nesting depth for subdivision (default 1)
  -at        Instant to query, RFC3339; prints the active path instead
             of the full timeline

EXAMPLES:
  # Full Mahadasha table from a Moon longitude
  ./dasha -birth=2000-09-30T06:30:00Z -moon=30

  # Active Mahadasha/Antardasha/Pratyantardasha today
  ./dasha -birth=2000-09-30T06:30:00Z -moon=30 -depth=2 -at=2026-08-31T00:00:00Z

  # Custom rotation from a config file
  ./dasha -birth=2000-09-30T06:30:00Z -sequence=rotations/custom.yaml \
          -segment=Sun -fraction=0.13
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/dasha-engine/factory"
	"github.com/warp/dasha-engine/generic"
	"github.com/warp/dasha-engine/vimshottari"
	"github.com/warp/dasha-engine/yogini"
)

func main() {
	var (
		birthFlag    = flag.String("birth", "", "birth instant, RFC3339 (required)")
		moonFlag     = flag.Float64("moon", math.NaN(), "sidereal Moon longitude in degrees")
		segmentFlag  = flag.String("segment", "", "starting segment id (alternative to -moon)")
		fractionFlag = flag.Float64("fraction", 0, "fraction of the starting segment already consumed")
		systemFlag   = flag.String("system", "vimshottari", "dasha system: vimshottari or yogini")
		sequenceFlag = flag.String("sequence", "", "path to a custom sequence file (.json/.yaml)")
		spanFlag     = flag.Float64("span", 0, "timeline span in years (0 = system default)")
		depthFlag    = flag.Int("depth", 1, "nesting depth for subdivision")
		atFlag       = flag.String("at", "", "instant to query, RFC3339")
	)
	flag.Parse()

	if *birthFlag == "" {
		flag.Usage()
		os.Exit(2)
	}
	birth, err := time.Parse(time.RFC3339, *birthFlag)
	if err != nil {
		log.Fatalf("invalid -birth: %v", err)
	}

	seq, spanYears, err := resolveSequence(*systemFlag, *sequenceFlag, *spanFlag)
	if err != nil {
		log.Fatalf("sequence setup failed: %v", err)
	}

	anchor, err := resolveAnchor(seq, *systemFlag, *sequenceFlag, birth, *moonFlag, *segmentFlag, *fractionFlag)
	if err != nil {
		log.Fatalf("anchor setup failed: %v", err)
	}

	if *atFlag != "" {
		at, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			log.Fatalf("invalid -at: %v", err)
		}
		path, err := generic.FindActivePath(anchor, seq, spanYears, at, *depthFlag)
		if err != nil {
			log.Fatalf("path query failed: %v", err)
		}
		printPath(path, at)
		return
	}

	tl, err := generic.BuildTimeline(anchor, seq, spanYears)
	if err != nil {
		log.Fatalf("timeline build failed: %v", err)
	}
	printTimeline(tl)
}

// resolveSequence picks the rotation: an explicit file wins, otherwise
// the named system's preset.
func resolveSequence(system, sequencePath string, span float64) (*generic.Sequence, decimal.Decimal, error) {
	if sequencePath != "" {
		seq, err := factory.LoadSequenceFile(sequencePath)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if span <= 0 {
			// A custom rotation defaults to one full cycle.
			return seq, seq.TotalCycleYears(), nil
		}
		return seq, decimal.NewFromFloat(span), nil
	}

	switch system {
	case "vimshottari":
		if span <= 0 {
			span = vimshottari.SpanYears
		}
		return vimshottari.Sequence(), decimal.NewFromFloat(span), nil
	case "yogini":
		if span <= 0 {
			span = yogini.SpanYears
		}
		return yogini.Sequence(), decimal.NewFromFloat(span), nil
	default:
		return nil, decimal.Zero, fmt.Errorf("unknown system %q", system)
	}
}

// resolveAnchor builds the anchor from -moon for known systems, or
// from -segment/-fraction otherwise.
func resolveAnchor(seq *generic.Sequence, system, sequencePath string, birth time.Time, moon float64, segment string, fraction float64) (generic.Anchor, error) {
	if !math.IsNaN(moon) {
		if sequencePath != "" {
			return generic.Anchor{}, fmt.Errorf("-moon requires a named -system; use -segment/-fraction with -sequence")
		}
		switch system {
		case "vimshottari":
			return vimshottari.AnchorFromMoonLongitude(birth, moon)
		case "yogini":
			return yogini.AnchorFromMoonLongitude(birth, moon)
		}
	}

	if segment == "" {
		return generic.Anchor{}, fmt.Errorf("either -moon or -segment is required")
	}
	idx, err := seq.IndexOf(generic.SegmentID(segment))
	if err != nil {
		return generic.Anchor{}, err
	}
	return generic.NewAnchor(birth, idx, decimal.NewFromFloat(fraction), seq)
}

func printTimeline(tl generic.Timeline) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEGMENT\tSTART\tEND\tDAYS\tSPAN")
	for _, iv := range tl {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			iv.SegmentID,
			iv.Start.Format(time.RFC3339),
			iv.End.Format(time.RFC3339),
			iv.DurationDays.StringFixed(4),
			generic.BreakdownDays(iv.DurationDays),
		)
	}
	w.Flush()
}

func printPath(path []generic.Interval, at time.Time) {
	fmt.Printf("active periods at %s\n", at.Format(time.RFC3339))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tSEGMENT\tSTART\tEND\tSPAN")
	for _, iv := range path {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			iv.Level,
			iv.SegmentID,
			iv.Start.Format(time.RFC3339),
			iv.End.Format(time.RFC3339),
			generic.BreakdownDays(iv.DurationDays),
		)
	}
	w.Flush()
}
