// Command dirinfo samples and evaluates Dirichlet distributions.
//
// Usage:
//
//	dirinfo [flags] alpha...
//
// Without -pdf it prints -n samples drawn from Dirichlet(alpha).
//
// Examples:
//
//	dirinfo 1 1 1
//	dirinfo -n 10 -seed 7 0.5 2 4
//	dirinfo -pdf 0.2,0.3,0.5 2 3 5
//	dirinfo -summary -n 10000 2 3 5
//	dirinfo -config params.toml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-randist/randist"
	"github.com/cwbudde/algo-randist/stats/moments"
)

func main() {
	flag.Int("n", defaultSamples, "number of samples to draw")
	flag.Uint64("seed", 0, "random seed (0 picks a random seed)")
	pdf := flag.String("pdf", "", "comma-separated point at which to evaluate the density")
	summary := flag.Bool("summary", false, "print empirical vs analytic moments instead of samples")
	configPath := flag.String("config", "", "TOML file with alpha, samples and seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dirinfo [flags] alpha...\n\n")
		fmt.Fprintf(os.Stderr, "Samples and evaluates Dirichlet distributions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dirinfo -n 10 -seed 7 0.5 2 4\n")
		fmt.Fprintf(os.Stderr, "  dirinfo -pdf 0.2,0.3,0.5 2 3 5\n")
		fmt.Fprintf(os.Stderr, "  dirinfo -summary -n 10000 2 3 5\n")
	}
	flag.Parse()

	params := defaultParams()
	if *configPath != "" {
		loaded, err := loadParams(*configPath)
		if err != nil {
			fail(err)
		}

		params = loaded
	}

	params = overlayFlags(flag.CommandLine, params)

	if flag.NArg() > 0 {
		alpha, err := parseFloats(flag.Args())
		if err != nil {
			fail(err)
		}

		params.Alpha = alpha
	}

	if params.Seed == 0 {
		params.Seed = rand.Uint64()
	}

	dist, err := randist.NewDirichlet(params.Alpha,
		randist.WithRNG(rand.New(rand.NewPCG(params.Seed, 0))),
	)
	if err != nil {
		fail(err)
	}

	switch {
	case *pdf != "":
		theta, err := parseFloats(strings.Split(*pdf, ","))
		if err != nil {
			fail(err)
		}

		err = printDensity(os.Stdout, dist, theta)
		if err != nil {
			fail(err)
		}
	case *summary:
		err = printSummary(os.Stdout, dist, params.Samples)
		if err != nil {
			fail(err)
		}
	default:
		err = printSamples(os.Stdout, dist, params.Samples)
		if err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, errors.New("empty number")
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func printSamples(w io.Writer, dist *randist.DirichletDist, n int) error {
	if n <= 0 {
		return fmt.Errorf("sample count must be > 0: %d", n)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "#\t%s\tln p\n", componentHeader(dist.Dim())); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	theta := make([]float64, dist.Dim())
	for i := range n {
		dist.Sample(theta)

		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.6f\n", i+1, formatRow(theta), dist.LogProb(theta)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func printDensity(w io.Writer, dist *randist.DirichletDist, theta []float64) error {
	if len(theta) != dist.Dim() {
		return fmt.Errorf("point has %d components, alpha has %d", len(theta), dist.Dim())
	}

	alpha := dist.Alpha()
	lnp := randist.DirichletLnPDF(alpha, theta)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "theta\t%s\n", formatRow(theta)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "pdf\t%.10g\nln pdf\t%.10g\n", randist.DirichletPDF(alpha, theta), lnp); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if math.IsInf(dist.LogProb(theta), -1) && !math.IsInf(lnp, -1) {
		if _, err := fmt.Fprintf(tw, "note\tpoint is off the simplex\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return tw.Flush()
}

func printSummary(w io.Writer, dist *randist.DirichletDist, n int) error {
	if n <= 0 {
		return fmt.Errorf("sample count must be > 0: %d", n)
	}

	acc := moments.NewAccumulator(dist.Dim())
	theta := make([]float64, dist.Dim())

	for range n {
		acc.Add(dist.Sample(theta))
	}

	mean := acc.Mean(nil)
	variance := acc.Variance(nil)
	wantMean := dist.Mean(nil)
	wantVar := dist.Variance(nil)
	alpha := dist.Alpha()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "i\talpha\tmean\tE[mean]\tvar\tE[var]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range alpha {
		if _, err := fmt.Fprintf(tw, "%d\t%g\t%.6f\t%.6f\t%.6g\t%.6g\n",
			i, alpha[i], mean[i], wantMean[i], variance[i], wantVar[i]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\nsamples\t%d\nentropy\t%.6f\n", acc.Count(), dist.Entropy()); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	return tw.Flush()
}

func componentHeader(k int) string {
	names := make([]string, k)
	for i := range names {
		names[i] = "θ" + strconv.Itoa(i+1)
	}

	return strings.Join(names, "\t")
}

func formatRow(theta []float64) string {
	cells := make([]string, len(theta))
	for i, v := range theta {
		cells[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}

	return strings.Join(cells, "\t")
}
