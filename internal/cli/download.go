package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"interm.dev/interm/internal/config"
	"interm.dev/interm/internal/download"
	"interm.dev/interm/internal/output"
)

// runDownloadFunc is replaced in tests to capture the resolved configuration
var runDownloadFunc = runDownload

type downloadFlags struct {
	count    int
	maxDelay time.Duration
	fancy    bool
	noColor  bool
	log      bool
	logFile  string
	debug    bool
}

// newDownloadCmd creates the download command
func newDownloadCmd() *cobra.Command {
	var flags downloadFlags
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Simulate concurrent downloads, one progress line each",
		Long: `Simulate concurrent downloads, one progress line each.

Every download runs on its own goroutine; a single writer redraws its line in
place. When stdout is not a terminal, progress is logged line by line instead.

Settings can also come from INTERM_* environment variables or a .env file in
the current directory. Flags win over both.

Examples:
  interm download
  interm download --count 4 --max-delay 50ms
  interm download --fancy --log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveDownloadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runDownloadFunc(cmd, cfg)
		},
	}

	cmd.Flags().IntVarP(&flags.count, "count", "n", defaults.Count, "Number of downloads")
	cmd.Flags().DurationVar(&flags.maxDelay, "max-delay", defaults.MaxDelay, "Upper bound of the random delay between progress steps")
	cmd.Flags().BoolVar(&flags.fancy, "fancy", false, "Render gradient progress bars")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&flags.log, "log", false, "Write a debug log to the default log file")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write a debug log to this file")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Print debug messages")

	return cmd
}

// resolveDownloadConfig layers explicitly set flags over the loaded configuration
func resolveDownloadConfig(cmd *cobra.Command, flags downloadFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("count") {
		cfg.Count = flags.count
	}
	if fs.Changed("max-delay") {
		cfg.MaxDelay = flags.maxDelay
	}
	if fs.Changed("fancy") {
		cfg.Fancy = flags.fancy
	}
	if fs.Changed("no-color") {
		cfg.NoColor = flags.noColor
	}
	if fs.Changed("debug") {
		cfg.Debug = flags.debug
	}
	if fs.Changed("log-file") {
		cfg.LogFile = flags.logFile
	} else if flags.log && cfg.LogFile == "" {
		cfg.LogFile = output.GetLogFilePath()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runDownload(cmd *cobra.Command, cfg config.Config) error {
	if cfg.NoColor {
		output.DisableColor()
	}

	splog, err := output.NewSplogWithOptions(output.SplogOptions{
		LogFile:  cfg.LogFile,
		Rotation: output.LogRotationFromEnv(),
		Debug:    cfg.Debug,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = splog.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ui := download.NewProgressUI(splog, cfg)
	sim := download.NewSimulator(ui, splog, cfg)
	splog.Debug("running %d downloads, max delay %s", len(sim.Names()), cfg.MaxDelay)

	if err := sim.Run(ctx); err != nil {
		splog.Error("download failed: %v", err)
		return err
	}
	return nil
}
