// Package main provides the CLI entrypoint for tasbih.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tasbih/internal/config"
	"github.com/verte-zerg/tasbih/internal/counter"
	"github.com/verte-zerg/tasbih/internal/feedback"
	"github.com/verte-zerg/tasbih/internal/model"
	"github.com/verte-zerg/tasbih/internal/stats"
	"github.com/verte-zerg/tasbih/internal/store"
	"github.com/verte-zerg/tasbih/internal/tui"
)

const defaultStatsDays = 7

var (
	counterTarget    int
	counterSound     bool
	counterVibration bool
	counterDhikr     string

	dbPath    string
	ephemeral bool
	verbose   bool

	statsDays int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tasbih",
		Short:         "TUI tasbeeh counter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCounterCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep counts in memory only")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&counterTarget, "target", model.DefaultTarget, "target used on first run")
	rootCmd.PersistentFlags().BoolVar(&counterSound, "sound", true, "sound enabled on first run")
	rootCmd.PersistentFlags().BoolVar(&counterVibration, "vibration", true, "vibration enabled on first run")
	rootCmd.PersistentFlags().StringVar(&counterDhikr, "dhikr", model.DefaultDhikr, "dhikr selected on first run")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newLabelsCmd())
	rootCmd.AddCommand(newTargetCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

func runCounterCmd(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger(config.DefaultLogPath())
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	ctx := context.Background()
	m := tui.NewModel(ctx)
	sess, st, err := openSession(cmd, m, logger, feedback.NewBell(os.Stderr))
	if err != nil {
		return err
	}
	defer closeStore(st, logger)
	m.Attach(sess)

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show counters and daily history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsDays, "days", defaultStatsDays, "number of days in the history")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsDays < 0 {
		return fmt.Errorf("--days must be >= 0")
	}
	logger := newStderrLogger()
	sess, st, err := openSession(cmd, nil, logger, nil)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx := context.Background()
	sess.Load(ctx)
	report, err := stats.BuildReport(ctx, st, sess.Record(), time.Now(), statsDays)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.WriteReport(out, report, stats.TerminalWidth(out), stats.ShouldUseColor(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List dhikr labels",
		Args:  cobra.NoArgs,
		RunE:  runLabelsCmd,
	}
}

func runLabelsCmd(cmd *cobra.Command, _ []string) error {
	logger := newStderrLogger()
	sess, st, err := openSession(cmd, nil, logger, nil)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	sess.Load(context.Background())
	for i, c := range sess.View().Labels {
		marker := " "
		if c.Active {
			marker = "*"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", marker, i+1, c.Label); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target <n>",
		Short: "Set the target count",
		Args:  cobra.ExactArgs(1),
		RunE:  runTargetCmd,
	}
}

func runTargetCmd(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", args[0], err)
	}
	logger := newStderrLogger()
	sess, st, err := openSession(cmd, nil, logger, nil)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx := context.Background()
	sess.Load(ctx)
	sess.SetTarget(ctx, n)
	v := sess.View()
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "target %d (%s)\n", v.Target, v.Progress); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the current count",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	logger := newStderrLogger()
	sess, st, err := openSession(cmd, nil, logger, nil)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx := context.Background()
	sess.Load(ctx)
	sess.Reset(ctx)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", sess.View().Label, sess.View().Progress); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

type sessionStore interface {
	counter.KV
	counter.Journal
	stats.TallySource
	Close() error
}

// openSession resolves config, opens the store and builds a session over it.
func openSession(cmd *cobra.Command, presenter counter.Presenter, logger *log.Logger, cue feedback.Cue) (*counter.Session, sessionStore, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	var st sessionStore
	if ephemeral {
		st = store.NewMemory()
	} else {
		path := dbPath
		if path == "" {
			path = config.DefaultDBPath()
		}
		opened, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open db: %w", err)
		}
		st = opened
	}

	defaults := model.DefaultRecord()
	defaults.Target = cfg.Target
	defaults.SoundEnabled = cfg.Sound
	defaults.VibrationEnabled = cfg.Vibration
	defaults.CurrentDhikr = cfg.Dhikr

	sess := counter.New(st, presenter, counter.Options{
		Cue:      cue,
		Haptics:  feedback.None{},
		Journal:  st,
		Logger:   logger,
		Labels:   cfg.Labels,
		Defaults: &defaults,
	})
	return sess, st, nil
}

func closeStore(st sessionStore, logger *log.Logger) {
	if cerr := st.Close(); cerr != nil {
		logger.Error("failed to close db", "err", cerr)
	}
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "target", &counterTarget, fileCfg.Counter.Target)
	applyBoolConfig(cmd, "sound", &counterSound, fileCfg.Counter.Sound)
	applyBoolConfig(cmd, "vibration", &counterVibration, fileCfg.Counter.Vibration)
	applyStringConfig(cmd, "dhikr", &counterDhikr, fileCfg.Counter.Dhikr)

	cfg := model.Config{
		Target:    counterTarget,
		Sound:     counterSound,
		Vibration: counterVibration,
		Dhikr:     counterDhikr,
		Labels:    model.DefaultLabels,
	}
	if len(fileCfg.Counter.Labels) > 0 {
		cfg.Labels = fileCfg.Counter.Labels
	}
	if err := config.Validate(cfg); err != nil {
		return model.Config{}, fmt.Errorf("invalid counter config: %w", err)
	}
	return cfg, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func newStderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "tasbih",
		Level:  logLevel(),
	})
}

// newFileLogger logs to path so output never lands on the alt screen.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "tasbih",
		Level:           logLevel(),
	})
	return logger, func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}, nil
}

func logLevel() log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tasbih configuration
# Uncomment a value to enable it. CLI flags override config values.
# The counter values below seed the first run only;
# after that the stored counter state wins.

[counter]
# target = %d             # Target count
# sound = true            # Terminal bell on each count
# vibration = true        # Haptic pulse where the host supports it
# dhikr = %q
# labels = [%s]
`,
		model.DefaultTarget,
		model.DefaultDhikr,
		quoteLabels(model.DefaultLabels),
	)
}

func quoteLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, label := range labels {
		quoted[i] = strconv.Quote(label)
	}
	return strings.Join(quoted, ", ")
}
