package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	termrender "github.com/LittlePapers/calendarizer/internal/render/term"
	"github.com/LittlePapers/calendarizer/internal/tui"
)

type previewOptions struct {
	calendar calendarFlags
	static   bool
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a calendar year in the terminal",
		Long: `Preview draws the calendar in the terminal. On an interactive terminal it
opens an editor where the year, layout, language, region and color can be
changed; otherwise it prints the calendar once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, opts)
		},
	}

	opts.calendar.register(cmd)
	cmd.Flags().BoolVar(&opts.static, "static", false, "Print the calendar once instead of opening the editor")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts *previewOptions) error {
	s, err := resolveSettings(root, &opts.calendar)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)
	if opts.static || !interactive {
		tree, err := s.composer.Compose(s.year, s.opts)
		if err != nil {
			return err
		}
		cells := termrender.DefaultOptions()
		cells.Plain = !interactive
		text, err := termrender.Render(tree, cells)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, text)
		return err
	}

	program := tea.NewProgram(tui.NewModel(s.composer, s.year, s.opts), tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
