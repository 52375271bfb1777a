package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/phanxgames/sitefx"
	"github.com/phanxgames/sitefx/ggcanvas"
	"github.com/phanxgames/sitefx/internal/demo"
	"github.com/spf13/cobra"
)

var (
	replayPage    string
	replayScript  string
	replayPNG     string
	replayHTML    string
	replaySeed    uint64
	replayReduced bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a scenario script against a page and print the result",
	Long: `Load a page (HTML with data-rect layout boxes) and a scenario script
(YAML or JSON), attach every effect, run the script and print the final
state. Without --page and --script the built-in landing page and visit are
used.`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayPage, "page", "", "HTML page to load (default: built-in landing page)")
	replayCmd.Flags().StringVar(&replayScript, "script", "", "Scenario script, YAML or JSON (default: built-in visit)")
	replayCmd.Flags().StringVar(&replayPNG, "png", "", "Write the final starfield frame to this PNG file")
	replayCmd.Flags().StringVar(&replayHTML, "html", "", "Write the final document to this HTML file")
	replayCmd.Flags().Uint64Var(&replaySeed, "seed", 1, "Random seed for star generation")
	replayCmd.Flags().BoolVar(&replayReduced, "reduced-motion", false, "Prefer reduced motion (overrides SITEFX_REDUCED_MOTION)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	markup, err := readOr(replayPage, []byte(demo.Landing))
	if err != nil {
		return err
	}
	script, err := readOr(replayScript, demo.Visit)
	if err != nil {
		return err
	}
	sc, err := sitefx.LoadScenario(script)
	if err != nil {
		return err
	}
	if cfg.FrameMs > 0 && sc.FrameMs == 0 {
		sc.FrameMs = cfg.FrameMs
	}

	reduced := cfg.ReducedMotion
	if cmd.Flags().Changed("reduced-motion") {
		reduced = replayReduced
	}

	var canvas *ggcanvas.Surface
	loop := sitefx.NewFrameLoop()
	loop.SetDebugMode(verbose || cfg.Debug)
	page, err := sitefx.LoadPage(bytes.NewReader(markup), sitefx.PageConfig{
		ViewportWidth:          cfg.ViewportWidth,
		ViewportHeight:         cfg.ViewportHeight,
		ReducedMotion:          reduced,
		DevicePixelRatio:       cfg.DPR,
		NoIntersectionObserver: cfg.NoObserver,
		Scheduler:              loop,
		Surfaces: func(*sitefx.PageElement) sitefx.Surface {
			canvas = ggcanvas.New(1, 1)
			return canvas
		},
	})
	if err != nil {
		return err
	}

	ui := sitefx.Attach(page, sitefx.WithRand(rand.New(rand.NewPCG(replaySeed, replaySeed))))
	if err := sc.Run(cmd.Context(), page, loop); err != nil {
		return err
	}

	report(cmd.OutOrStdout(), page, loop, ui)

	if replayPNG != "" {
		if canvas == nil || ui.Starfield() == nil {
			return fmt.Errorf("--png: starfield is not running on this page")
		}
		if err := canvas.SavePNG(replayPNG); err != nil {
			return err
		}
	}
	if replayHTML != "" {
		f, err := os.Create(replayHTML)
		if err != nil {
			return fmt.Errorf("--html: %w", err)
		}
		defer f.Close()
		if err := page.Render(f); err != nil {
			return err
		}
	}
	return nil
}

func readOr(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func report(w io.Writer, page *sitefx.Page, loop *sitefx.FrameLoop, ui *sitefx.UIState) {
	st := loop.Stats()
	fmt.Fprintf(w, "reduced motion: %v\n", ui.Capabilities().ReducedMotion)
	fmt.Fprintf(w, "frames: ticks=%d ran=%d cancelled=%d pending=%d\n", st.Ticks, st.Ran, st.Cancelled, loop.Pending())

	revealed := 0
	for _, r := range ui.Reveals() {
		if r.Revealed() {
			revealed++
		}
	}
	fmt.Fprintf(w, "reveal: %d/%d visible\n", revealed, len(ui.Reveals()))

	var texts []string
	for _, el := range page.QueryAll(sitefx.SelectorCounter) {
		texts = append(texts, el.Text())
	}
	fmt.Fprintf(w, "counters: %s\n", strings.Join(texts, " | "))

	if sp := ui.ScrollProgress(); sp != nil {
		fmt.Fprintf(w, "scroll: %.2f%%\n", sp.Percent())
	}
	if f := ui.Starfield(); f != nil {
		width, height, scale := f.Size()
		fmt.Fprintf(w, "starfield: %d stars, %.0fx%.0f @%.1fx, running=%v, frames=%d\n",
			len(f.Stars()), width, height, scale, f.Running(), f.Frames())
	} else {
		fmt.Fprintln(w, "starfield: off")
	}
	if p := ui.Parallax(); p != nil {
		fmt.Fprintf(w, "parallax: %v\n", p.Offsets())
	}
	for i, c := range ui.Tilts() {
		fmt.Fprintf(w, "tilt[%d]: %q\n", i, c.Transform())
	}
	if tl := ui.Timeline(); tl != nil {
		fmt.Fprintf(w, "timeline: %s %.2f%%", tl.State(), tl.Progress())
		for _, m := range tl.Milestones() {
			if m.Active() {
				fmt.Fprintf(w, " active=%v", m.Pct())
			}
		}
		fmt.Fprintln(w)
	}
}
