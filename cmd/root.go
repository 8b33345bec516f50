package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/leifetch/internal/config"
	"github.com/zjrosen/leifetch/internal/log"
	uifetcher "github.com/zjrosen/leifetch/internal/ui/fetcher"
	"github.com/zjrosen/leifetch/internal/ui/styles"
	"github.com/zjrosen/leifetch/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// defaultConfigPath is where a default config is written when none exists.
const defaultConfigPath = ".leifetch/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	configErr error

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "leifetch",
	Short: "Look up legal entities by LEI",
	Long: `Look up a Legal Entity Identifier (LEI) in the GLEIF registry and view the
registered entity's details.

Run without arguments to open the interactive lookup widget, or use
'leifetch lookup <LEI>' for scripted output.`,
	Version:           version,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) { closeLogging() },
	RunE:              runApp,
	SilenceUsage:      true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .leifetch/config.yaml, then ~/.config/leifetch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs (path from LEIFETCH_LOG, default debug.log)")
}

func initConfig() {
	configErr = nil
	cfg = config.Config{}
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .leifetch/config.yaml (current directory)
		// 2. ~/.config/leifetch/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "leifetch"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file found anywhere - create default at .leifetch/config.yaml
		if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
			viper.SetConfigFile(defaultConfigPath)
			_ = viper.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		configErr = fmt.Errorf("decoding config: %w", err)
	}
}

// setupLogging enables the debug log when --debug or LEIFETCH_DEBUG is set.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if os.Getenv("LEIFETCH_DEBUG") == "" && !debugFlag {
		return nil
	}
	logPath := os.Getenv("LEIFETCH_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.InitWithTeaLog(logPath, "leifetch")
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	logCleanup = cleanup

	log.Info(log.CatConfig, "leifetch starting", "command", cmd.Name(), "version", version, "config", viper.ConfigFileUsed())
	return nil
}

func closeLogging() {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	log.Reset()
}

// loadedConfig returns the validated config with the theme applied.
func loadedConfig() (config.Config, error) {
	if configErr != nil {
		return config.Config{}, configErr
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	theme := styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}
	if err := styles.ApplyTheme(theme); err != nil {
		return config.Config{}, fmt.Errorf("invalid theme configuration: %w", err)
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	c, err := loadedConfig()
	if err != nil {
		return err
	}

	f, shutdown, err := newFetcher(c)
	if err != nil {
		return err
	}
	defer shutdown()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	zone.NewGlobal()

	model := uifetcher.New(ctx, f)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	stopWatch := watchLabels(ctx, viper.ConfigFileUsed(), p)
	defer stopWatch()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// labelSender is the part of *tea.Program used to deliver reloaded labels.
type labelSender interface {
	Send(msg tea.Msg)
}

// watchLabels reloads the labels whenever the config file changes and hands
// them to the running widget. Returns a function that stops watching.
func watchLabels(ctx context.Context, path string, p labelSender) func() {
	if path == "" {
		return func() {}
	}

	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "config watcher unavailable", err)
		return func() {}
	}
	changes, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "config watcher unavailable", err)
		_ = w.Stop()
		return func() {}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				reloaded, err := config.Load(path)
				if err != nil {
					log.ErrorErr(log.CatConfig, "reloading config", err, "path", path)
					continue
				}
				log.Info(log.CatConfig, "labels reloaded", "path", path)
				p.Send(uifetcher.LabelsReloadedMsg{Labels: reloaded.Labels.FetcherLabels()})
			}
		}
	}()

	return func() { _ = w.Stop() }
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
