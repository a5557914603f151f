package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/layout"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleCached = lipgloss.NewStyle().Foreground(colorGreen)
	styleDirty  = lipgloss.NewStyle().Foreground(colorAmber)
	styleKind   = lipgloss.NewStyle().Foreground(colorDim).Width(12)
)

// groupRow is one group seen in the repaint pass.
type groupRow struct {
	depth   int
	label   string
	kind    layout.GroupKind
	cache   layout.CacheState
	rect    layout.Rect
	content layout.Rect
	entries int
}

type dumpOptions struct {
	width, height int
	frames        int
	click         int
	scroll        float32
}

func newDumpCmd(a *app) *cobra.Command {
	opts := dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Run the demo headless and print the laid out group tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), a, opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 640, "display width")
	cmd.Flags().IntVar(&opts.height, "height", 480, "display height")
	cmd.Flags().IntVar(&opts.frames, "frames", 2, "frames to run before the dump")
	cmd.Flags().IntVar(&opts.click, "click", -1, "visible row to click before the dump")
	cmd.Flags().Float32Var(&opts.scroll, "scroll", 0, "wheel notches over the list before the dump")
	return cmd
}

func runDump(w io.Writer, a *app, opts dumpOptions) error {
	s := newScene(a.items, a.logger)

	var rows []groupRow
	ui := layout.New(nil,
		layout.WithStyle(a.style),
		layout.WithInspector(func(g *layout.Group) {
			depth := 0
			for p := g.Parent(); p != nil; p = p.Parent() {
				depth++
			}
			rows = append(rows, groupRow{
				depth:   depth,
				label:   g.Label(),
				kind:    g.Kind(),
				cache:   g.CacheState(),
				rect:    g.ContainerRect(),
				content: g.ContentRect(),
				entries: g.Entries(),
			})
		}))
	defer ui.Close()

	in := layout.NewInputState()
	size := layout.Vec2{X: float32(opts.width), Y: float32(opts.height)}
	frame := func() error {
		rows = rows[:0]
		err := ui.Frame(in, size, 1.0/60.0, s.build)
		in.Reset()
		return err
	}

	for range max(opts.frames, 1) {
		if err := frame(); err != nil {
			return err
		}
	}

	list, ok := findRow(rows, "items")
	if !ok {
		return fmt.Errorf("list view was not laid out in a %dx%d display", opts.width, opts.height)
	}
	center := layout.Vec2{X: list.content.X + list.content.W/2, Y: list.content.Y + list.content.H/2}

	if opts.scroll != 0 {
		in.SetMousePos(center.X, center.Y)
		in.SetMouseWheel(0, -opts.scroll)
		if err := frame(); err != nil {
			return err
		}
	}
	if opts.click >= 0 {
		rowH := s.list.RowHeight()
		y := list.content.Y + float32(opts.click)*rowH + rowH/2
		in.SetMousePos(center.X, y)
		in.SetMouseButton(layout.MouseButtonLeft, true)
		if err := frame(); err != nil {
			return err
		}
		in.SetMouseButton(layout.MouseButtonLeft, false)
		if err := frame(); err != nil {
			return err
		}
	}
	if err := frame(); err != nil {
		return err
	}

	printDump(w, rows, ui.Stats(), s)
	return nil
}

func findRow(rows []groupRow, label string) (groupRow, bool) {
	for _, r := range rows {
		if r.label == label {
			return r, true
		}
	}
	return groupRow{}, false
}

func printDump(w io.Writer, rows []groupRow, stats layout.FrameStats, s *scene) {
	fmt.Fprintln(w, styleTitle.Render("Groups"))
	for _, r := range rows {
		cache := styleCached.Render(r.cache.String())
		if r.cache != layout.Cached {
			cache = styleDirty.Render(r.cache.String())
		}
		fmt.Fprintf(w, "%s%s %s %s %s %s\n",
			strings.Repeat("  ", r.depth),
			styleValue.Render(r.label),
			styleKind.Render(r.kind.String()),
			formatRect(r.rect),
			styleDim.Render(fmt.Sprintf("entries=%d", r.entries)),
			cache)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render("Frame"))
	fmt.Fprintf(w, "  measurements %s  interactions %s  relayouts %s  nodes %s\n",
		styleNumber.Render(fmt.Sprint(stats.Measurements)),
		styleNumber.Render(fmt.Sprint(stats.Interactions)),
		styleNumber.Render(fmt.Sprint(stats.Relayouts)),
		styleNumber.Render(fmt.Sprint(stats.Nodes)))

	win := s.list.Window()
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render("List"))
	fmt.Fprintf(w, "  rows %s  window %s+%s  offset %s  pool %s  mode %s\n",
		styleNumber.Render(fmt.Sprint(s.items.Len())),
		styleNumber.Render(fmt.Sprint(win.First)),
		styleNumber.Render(fmt.Sprint(win.Count)),
		styleNumber.Render(fmt.Sprintf("%.1f", win.Offset)),
		styleNumber.Render(fmt.Sprint(s.list.PoolSize())),
		styleValue.Render(s.list.Mode().String()))
	if sel := s.list.Selection(); len(sel) > 0 {
		fmt.Fprintf(w, "  selected %s\n", styleValue.Render(fmt.Sprint(sel)))
	}
}

func formatRect(r layout.Rect) string {
	return styleNumber.Render(fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H))
}
