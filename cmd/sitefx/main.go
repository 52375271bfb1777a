// Command sitefx replays scripted visitor sessions against a landing page
// headlessly and reports what every effect rendered.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     config
)

var rootCmd = &cobra.Command{
	Use:   "sitefx",
	Short: "Replay scroll and pointer effects headlessly",
	Long: `sitefx drives the landing-page effects (reveal, counters, starfield,
parallax, tilt, scroll progress and the roadmap timeline) from a scripted
visit, without a browser.

Environment:
  SITEFX_REDUCED_MOTION  act as if the visitor prefers reduced motion
  SITEFX_DPR             device pixel ratio (default 1)
  SITEFX_NO_OBSERVER     simulate a host without intersection support
  SITEFX_FRAME_MS        frame interval for wait steps (default 16)
  SITEFX_VIEWPORT_WIDTH  viewport width in CSS pixels (default 1280)
  SITEFX_VIEWPORT_HEIGHT viewport height in CSS pixels (default 800)
  SITEFX_DEBUG           log at debug level, including per-frame stats`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c
		level := slog.LevelWarn
		if verbose || cfg.Debug {
			level = slog.LevelDebug
		}
		setupLogging(cmd.ErrOrStderr(), level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
