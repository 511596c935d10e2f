package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LittlePapers/calendarizer/internal/render"
	"github.com/LittlePapers/calendarizer/internal/render/raster"
	"github.com/LittlePapers/calendarizer/internal/render/svg"
	"github.com/LittlePapers/calendarizer/internal/scene"
	"github.com/LittlePapers/calendarizer/pkg/diff"
)

type renderOptions struct {
	calendar calendarFlags
	format   string
	output   string
	photo    string
	width    int
	height   int
	check    string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a calendar year as SVG, PNG, JSON or YAML",
		Long: `Render builds the calendar described by the config file and flags and
writes it to --output (or stdout). With --check the output is compared to a
golden file instead and the command fails when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	opts.calendar.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: svg, png, json or yaml (defaults to the output extension)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().StringVar(&opts.photo, "photo", "", "Background photo for svg and png output")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Canvas height in pixels")
	cmd.Flags().StringVar(&opts.check, "check", "", "Compare the output with this golden file")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	s, err := resolveSettings(root, &opts.calendar)
	if err != nil {
		return err
	}

	format, err := resolveFormat(opts, s)
	if err != nil {
		return err
	}
	canvas := render.Options{
		Width:  firstNonZero(opts.width, s.output.Width),
		Height: firstNonZero(opts.height, s.output.Height),
		Photo:  firstNonEmpty(opts.photo, s.output.Photo),
	}

	tree, err := s.composer.Compose(s.year, s.opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := encode(&buf, tree, format, canvas); err != nil {
		return err
	}

	if opts.check != "" {
		return checkGolden(cmd.OutOrStdout(), opts.check, buf.Bytes())
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	root.log.Info(fmt.Sprintf("wrote %s calendar for %d to %s", format, s.year, opts.output))
	return nil
}

func resolveFormat(opts *renderOptions, s *settings) (render.Format, error) {
	switch {
	case opts.format != "":
		return render.ParseFormat(opts.format)
	case opts.output != "" && filepath.Ext(opts.output) != "":
		return render.ParseFormat(filepath.Ext(opts.output))
	case opts.check != "" && filepath.Ext(opts.check) != "":
		return render.ParseFormat(filepath.Ext(opts.check))
	case s.output.Format != "":
		return render.ParseFormat(s.output.Format)
	default:
		return render.FormatSVG, nil
	}
}

func encode(w io.Writer, tree scene.Node, format render.Format, canvas render.Options) error {
	switch format {
	case render.FormatSVG:
		return svg.Render(w, tree, canvas)
	case render.FormatPNG:
		return raster.Render(w, tree, canvas)
	case render.FormatJSON:
		return render.WriteJSON(w, tree)
	case render.FormatYAML:
		return render.WriteYAML(w, tree)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func checkGolden(out io.Writer, golden string, rendered []byte) error {
	expected, err := os.ReadFile(golden)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}
	if d := diff.Unified(expected, rendered, golden, "rendered"); d != "" {
		fmt.Fprint(out, d)
		return fmt.Errorf("rendered calendar differs from %s", golden)
	}
	fmt.Fprintf(out, "%s is up to date\n", golden)
	return nil
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
