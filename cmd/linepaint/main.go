package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/linepaint/internal/canvas"
	"github.com/san-kum/linepaint/internal/config"
	"github.com/san-kum/linepaint/internal/export"
	"github.com/san-kum/linepaint/internal/history"
	"github.com/san-kum/linepaint/internal/interp"
	"github.com/san-kum/linepaint/internal/logger"
	"github.com/san-kum/linepaint/internal/session"
	"github.com/san-kum/linepaint/internal/transcript"
	"github.com/san-kum/linepaint/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFile string
	dataDir    string
	pen        string
	historyOut string
	preset     string
	strictClip bool
	debug      bool
	theme      string
	archiveAs  string
	svgOut     string
	plot       bool
)

// errUsage marks startup argument problems.
var errUsage = errors.New("usage error")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "linepaint <width> <height>",
		Short:        "draw straight lines on a character canvas",
		Args:         dimensionArgs,
		SilenceUsage: true,
		RunE:         runSession,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory (logs, archive)")
	rootCmd.PersistentFlags().StringVar(&pen, "pen", config.DefaultPen, "pen character")
	rootCmd.PersistentFlags().StringVar(&historyOut, "history", config.DefaultHistoryFile, "file a bare save writes to")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "canvas size preset")
	rootCmd.PersistentFlags().BoolVar(&strictClip, "strict-clip", false, "clip the start point of lines too")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&archiveAs, "archive", "", "archive the session under this name on exit")

	tuiCmd := &cobra.Command{
		Use:   "tui <width> <height>",
		Short: "full-screen drawing session",
		Args:  dimensionArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+fmt.Sprint(tui.ThemeNames())+")")

	replayCmd := &cobra.Command{
		Use:   "replay <width> <height> <file>",
		Short: "replay a saved transcript and print the canvas",
		Args:  cobra.ExactArgs(3),
		RunE:  runReplay,
	}
	replayCmd.Flags().StringVar(&svgOut, "svg", "", "also write the canvas as svg")
	replayCmd.Flags().BoolVar(&plot, "plot", false, "plot ink per column")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas size presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\n", name, p.Width, p.Height)
			}
			return w.Flush()
		},
	}

	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "inspect archived sessions",
	}
	archiveCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list archived sessions",
			Args:  cobra.NoArgs,
			RunE:  listArchive,
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "replay an archived session",
			Args:  cobra.ExactArgs(1),
			RunE:  showArchive,
		},
	)

	rootCmd.AddCommand(tuiCmd, replayCmd, presetsCmd, archiveCmd)
	return rootCmd
}

// dimensionArgs accepts <width> <height>, or nothing when --preset
// supplies the size.
func dimensionArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && preset != "" {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: %s", errUsage, cmd.UseLine())
	}
	for _, a := range args {
		if _, err := parseDimension(a); err != nil {
			return err
		}
	}
	return nil
}

// parseDimension requires the whole argument to be a base-10 integer.
func parseDimension(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s: out of range", errUsage, s)
		}
		return 0, fmt.Errorf("%w: %s: irregular character found", errUsage, s)
	}
	return v, nil
}

// loadConfig layers defaults, config file, preset, flags and positional
// dimensions, in increasing precedence.
func loadConfig(cmd *cobra.Command, dims []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("pen") {
		cfg.Pen = pen
	}
	if flags.Changed("history") {
		cfg.HistoryFile = historyOut
	}
	if flags.Changed("strict-clip") {
		cfg.StrictClip = strictClip
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if len(dims) == 2 {
		w, err := parseDimension(dims[0])
		if err != nil {
			return nil, err
		}
		h, err := parseDimension(dims[1])
		if err != nil {
			return nil, err
		}
		cfg.Width, cfg.Height = w, h
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) func() {
	cleanup, err := logger.Setup(logger.Config{Dir: cfg.DataDir, Debug: cfg.Debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func newSession(cfg *config.Config, redraw bool) (*session.Session, error) {
	p, err := cfg.PenRune()
	if err != nil {
		return nil, err
	}
	return session.New(session.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Pen:         p,
		StrictClip:  cfg.StrictClip,
		Redraw:      redraw,
		HistoryFile: cfg.HistoryFile,
		Logger:      logger.L(),
	})
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	defer setupLogging(cfg)()
	logger.L().Info("config.loaded", "width", cfg.Width, "height", cfg.Height, "pen", cfg.Pen, "file", configFile)

	redraw := term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	s, err := newSession(cfg, redraw)
	if err != nil {
		return err
	}

	if err := s.Run(context.Background(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return err
	}
	return archive(cfg, s.Log)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	defer setupLogging(cfg)()

	s, err := newSession(cfg, false)
	if err != nil {
		return err
	}
	return tui.Run(s, cfg.Theme)
}

func archive(cfg *config.Config, log *history.Log) error {
	if archiveAs == "" {
		return nil
	}
	st := transcript.NewStore(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name, err := st.Save(transcript.Meta{
		Name:   archiveAs,
		Width:  cfg.Width,
		Height: cfg.Height,
		Pen:    cfg.Pen,
	}, log)
	if err != nil {
		return err
	}
	logger.L().Info("session.archived", "name", name, "entries", log.Len())
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[:2])
	if err != nil {
		return err
	}

	log, err := transcript.Load(args[2])
	if err != nil {
		return err
	}
	return printReplay(cmd, cfg, log)
}

func printReplay(cmd *cobra.Command, cfg *config.Config, log *history.Log) error {
	p, err := cfg.PenRune()
	if err != nil {
		return err
	}
	c, err := canvas.New(cfg.Width, cfg.Height, p)
	if err != nil {
		return err
	}
	c.StrictClip = cfg.StrictClip

	drawn := interp.New(c, history.New(), logger.L()).Replay(log.All())

	out := cmd.OutOrStdout()
	fmt.Fprint(out, c.Render())
	fmt.Fprintf(out, "%d of %d entries drawn\n", drawn, log.Len())

	if plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, export.InkPlot(c, "ink per column"))
	}
	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.CanvasToSVG(c, 10)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "svg written to %s\n", svgOut)
	}
	return nil
}

func listArchive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	st := transcript.NewStore(cfg.DataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "no archived sessions")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tPEN\tENTRIES\tSAVED")
	for _, m := range sessions {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\t%s\n", m.Name, m.Width, m.Height, m.Pen, m.Entries, m.SavedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func showArchive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	meta, log, err := transcript.NewStore(cfg.DataDir).Load(args[0])
	if err != nil {
		return err
	}
	cfg.Width, cfg.Height, cfg.Pen = meta.Width, meta.Height, meta.Pen
	return printReplay(cmd, cfg, log)
}
