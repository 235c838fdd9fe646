package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ai-intui/internal/config"
	"ai-intui/internal/console"
	"ai-intui/internal/feed"
	"ai-intui/internal/telemetry"
	"ai-intui/internal/tui"
)

// version is set via ldflags at build time.
var version = "dev"

var (
	configPath   string
	headlessFlag bool
	duration     time.Duration
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "intui",
	Short: "Simulated monitoring console for the terminal",
	Long: `Ai-inTUI draws a full-screen monitoring dashboard fed by synthetic
telemetry: five modes, a scrolling log and a modal command line.

Keys:
  1-5   switch mode
  :     command mode (help, mode, clear, set mode <name>)
  q     quit

Examples:
  intui
  intui --mode cloud --palette terminal
  intui --headless --duration 10s`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "config file (yaml, toml or json)")
	f.BoolVar(&headlessFlag, "headless", false, "print the log feed to stdout instead of drawing the dashboard")
	f.DurationVar(&duration, "duration", 0, "stop the headless feed after this long (0 = until interrupted)")
	f.BoolVar(&debugFlag, "debug", false, "enable debug logging")
	f.String("mode", "ai", "start mode (ai, robotics, cloud, forensics, sandbox)")
	f.String("palette", "cyberpunk", "color palette (cyberpunk, terminal, auto)")
	f.Uint64("seed", 0, "random seed (0 = seed from the clock)")
	f.Int("tick-ms", int(console.DefaultTickInterval/time.Millisecond), "generator tick interval in milliseconds")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfgMgr, err := config.NewManager(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	state, err := newState(cfgMgr.Get())
	if err != nil {
		return err
	}

	if headless() {
		return runHeadless(cmd.Context(), state, cfgMgr.Get())
	}
	return runWithTUI(state, cfgMgr)
}

// headless reports whether to skip the dashboard: on request, or when stdout
// is not a terminal.
func headless() bool {
	if headlessFlag || os.Getenv("HEADLESS") == "1" {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func newState(cfg *config.Config) (*console.State, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}
	emit := cfg.Console.EmitProbability
	return console.New(console.Options{
		LogCapacity:     cfg.Console.LogCapacity,
		EmitProbability: &emit,
		StartMode:       mode,
		Rand:            newRand(cfg.Console.Seed),
	}), nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func runHeadless(ctx context.Context, state *console.State, cfg *config.Config) error {
	setupLogger()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	log.Info().
		Str("mode", state.Mode().Tag()).
		Dur("tick", cfg.TickInterval()).
		Dur("duration", duration).
		Msg("Ai-inTUI starting (headless mode)")

	metrics := telemetry.NewMetrics()
	err := feed.Run(ctx, state, feed.NewWriter(os.Stdout, nil), feed.Options{
		Interval: cfg.TickInterval(),
		Metrics:  metrics,
	})
	logSummary(state, metrics)
	return err
}

func runWithTUI(state *console.State, cfgMgr *config.Manager) error {
	cfg := cfgMgr.Get()
	tuiCfg := cfgMgr.GetTUI()

	// Logs go to a file so they don't draw over the dashboard
	logFile, err := openLogFile(tuiCfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open log file: %v\n", err)
		log.Logger = zerolog.Nop()
	} else {
		defer logFile.Close()
		log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	}
	setLevel()

	profile := termenv.EnvColorProfile()
	palette := tui.ResolvePalette(tuiCfg.Palette, profile)
	metrics := telemetry.NewMetrics()

	model := tui.NewModel(state, tui.Options{
		Interval: cfg.TickInterval(),
		Palette:  palette,
		Metrics:  metrics,
		Logger:   &log.Logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	cfgMgr.SetOnChange(func(c *config.Config) {
		p.Send(tui.PaletteMsg{Palette: tui.ResolvePalette(c.TUI.Palette, profile)})
	})

	log.Info().
		Str("mode", state.Mode().Tag()).
		Dur("tick", cfg.TickInterval()).
		Str("palette", palette.Name).
		Msg("Ai-inTUI starting")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	logSummary(state, metrics)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func setupLogger() {
	log.Logger = zerolog.New(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"},
	).With().Timestamp().Logger()
	setLevel()
}

func setLevel() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debugFlag || os.Getenv("DEBUG") == "1" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func logSummary(state *console.State, m *telemetry.Metrics) {
	s := m.Snapshot()
	log.Info().
		Dur("uptime", state.Elapsed().Truncate(time.Second)).
		Str("mode", state.Mode().Tag()).
		Uint64("lines", state.LogTotal()).
		Int64("ticks", s.Ticks).
		Int64("emitted", s.Emitted).
		Float64("emit_rate", s.EmitRate()).
		Int64("commands", s.Commands).
		Int64("mode_changes", s.ModeChanges).
		Int("frames", s.Frames).
		Dur("frame_last", s.LastFrame).
		Dur("frame_p50", s.FrameP50).
		Dur("frame_p95", s.FrameP95).
		Msg("session summary")
}
