package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/preview"
	"github.com/jmylchreest/tonal/pkg/colour"
	"github.com/jmylchreest/tonal/pkg/material"
	"github.com/jmylchreest/tonal/pkg/theme"
)

// WCAG 2 contrast thresholds.
const (
	contrastAALarge = 3.0
	contrastAA      = 4.5
	contrastAAA     = 7.0
)

func newPaletteCmd(_ *app) *cobra.Command {
	var (
		tones       []float64
		showPreview bool
	)

	cmd := &cobra.Command{
		Use:   "palette <colour>",
		Short: "Print the tonal palette of a colour",
		Example: `  tonal palette "#769cdf"
  tonal palette 0xFFFF5733 --tones 0,10,50,90,100 --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return err
			}
			p, err := theme.CreatePalette(c)
			if err != nil {
				return err
			}
			if len(tones) == 0 {
				tones = theme.DefaultPaletteTones()
			}

			out := cmd.OutOrStdout()
			if showPreview {
				_, err := fmt.Fprintln(out, preview.Palette(c.String(), p, tones, previewWidth(out)))
				return err
			}

			fmt.Fprintf(out, "hue %.1f, chroma %.1f\n\n", p.Hue(), p.Chroma())
			table := NewTable([]string{"TONE", "HEX"})
			m := theme.PaletteColors(p, tones)
			for _, kv := range m.Order {
				table.AddRow([]string{strconv.FormatFloat(kv.Key, 'f', -1, 64), colour.ToHex(kv.Value)})
			}
			_, err = fmt.Fprint(out, table.Render())
			return err
		},
	}

	cmd.Flags().Float64SliceVar(&tones, "tones", nil, "tones to print (default 0,5,10,...,100)")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "render a colour strip")
	return cmd
}

func newScoreCmd(_ *app) *cobra.Command {
	opts := material.DefaultScoreOptions()
	var (
		noFilter bool
		fallback colour.Color
	)

	cmd := &cobra.Command{
		Use:   "score <colour[=count]>...",
		Short: "Rank colours by how well they would seed a theme",
		Long: `Rank candidate source colours. Each argument is a colour, optionally followed
by =count giving how many pixels it covers (default 1). Colours are read from
stdin when no arguments are given.`,
		Example: `  tonal score "#ff5733=120" "#3357ff=40" "#808080=900"
  tonal quantize < pixels.txt | tonal score --desired 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var err error
				if args, err = readFields(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			population, err := parsePopulation(args)
			if err != nil {
				return err
			}

			opts.Filter = !noFilter
			if !fallback.IsZero() {
				if opts.FallbackColor, err = fallback.ARGB(); err != nil {
					return err
				}
			}

			for _, c := range material.Score(population, opts) {
				fmt.Fprintln(cmd.OutOrStdout(), colour.ToHex(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Desired, "desired", "n", opts.Desired, "maximum number of colours returned")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "keep near-grey and rarely used colours")
	cmd.Flags().Var(&fallback, "fallback", "colour returned when nothing survives filtering (default #000000)")
	return cmd
}

func newQuantizeCmd(_ *app) *cobra.Command {
	var maxColors int

	cmd := &cobra.Command{
		Use:   "quantize [colour...]",
		Short: "Reduce a list of pixel colours to a small set with counts",
		Long: `Cluster pixel colours into at most --max colours and print each as
colour=count, most common first. The output feeds straight into score.
Colours are read from stdin when no arguments are given.`,
		Example: `  tonal quantize --max 16 < pixels.txt
  tonal quantize "#ff0000" "#fe0101" "#0000ff"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				var err error
				if args, err = readFields(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			pixels, err := parseColours(args)
			if err != nil {
				return err
			}

			counts := material.Quantize(pixels, maxColors)
			keys := make([]uint32, 0, len(counts))
			for c := range counts {
				keys = append(keys, c)
			}
			sort.Slice(keys, func(i, j int) bool {
				if counts[keys[i]] != counts[keys[j]] {
					return counts[keys[i]] > counts[keys[j]]
				}
				return keys[i] < keys[j]
			})

			for _, c := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n", colour.ToHex(c), counts[c])
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxColors, "max", "m", material.DefaultQuantizeMaxColors, "maximum number of colours")
	return cmd
}

func newContrastCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Print the WCAG contrast ratio of two colours",
		Example: `  tonal contrast "#ffffff" "#769cdf"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColours(args)
			if err != nil {
				return err
			}
			ratio := colour.ContrastRatio(cs[0], cs[1])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s on %s: %.2f:1\n", colour.ToHex(cs[0]), colour.ToHex(cs[1]), ratio)
			fmt.Fprintf(out, "  AA large text  %s\n", passFail(ratio >= contrastAALarge))
			fmt.Fprintf(out, "  AA             %s\n", passFail(ratio >= contrastAA))
			fmt.Fprintf(out, "  AAA            %s\n", passFail(ratio >= contrastAAA))
			return nil
		},
	}
}

func passFail(ok bool) string {
	if ok {
		return "✓ pass"
	}
	return "✗ fail"
}

// parsePopulation reads "colour" or "colour=count" arguments. Repeated
// colours add up.
func parsePopulation(args []string) (map[uint32]int, error) {
	population := make(map[uint32]int, len(args))
	for _, arg := range args {
		c, n := arg, 1
		if i := strings.LastIndexByte(arg, '='); i >= 0 {
			var err error
			c = arg[:i]
			if n, err = strconv.Atoi(arg[i+1:]); err != nil || n < 0 {
				return nil, fmt.Errorf("invalid count in %q", arg)
			}
		}
		vs, err := parseColours([]string{c})
		if err != nil {
			return nil, err
		}
		population[vs[0]] += n
	}
	if len(population) == 0 {
		return nil, errors.New("no colours given")
	}
	return population, nil
}

// readFields splits r on whitespace.
func readFields(r io.Reader) ([]string, error) {
	var fields []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colours: %w", err)
	}
	return fields, nil
}
