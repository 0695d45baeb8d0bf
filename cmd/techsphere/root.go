package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"techsphere/internal/catalog"
	"techsphere/internal/config"
	"techsphere/internal/logging"
	"techsphere/internal/nav"
	"techsphere/internal/site"
	"techsphere/internal/telemetry"
	"techsphere/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// options holds command line flags. Set flags override the config file.
type options struct {
	configPath  string
	logFile     string
	logLevel    string
	noAltScreen bool
	noMouse     bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "techsphere",
		Short: "Read the TechSphere blog in your terminal",
		Long: `techsphere is a terminal rendition of the TechSphere blog: a home page,
an article listing, article pages, an about page and a contact form.

Navigate with the mouse, the 1-4 keys, or SPC for the leader menu.`,
		Version: version,
		// Errors are ours to report; usage only helps with flag mistakes.
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.Flags().Changed)
		},
	}
	cmd.SetVersionTemplate(`{{printf "techsphere version %s\n" .Version}}`)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $TECHSPHERE_HOME/config.yaml or ~/.techsphere/config.yaml)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// apply overrides cfg with the flags the user set, then normalizes and
// revalidates it.
func (o options) apply(cfg *config.Config, changed func(string) bool) error {
	if changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if o.noAltScreen {
		cfg.UI.AltScreen = false
	}
	if o.noMouse {
		cfg.UI.Mouse = false
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func run(ctx context.Context, opts options, changed func(string) bool) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(cfg, changed); err != nil {
		return err
	}

	_, logCloser, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logCloser.Close()

	recorder, err := telemetry.NewOTLPRecorder(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		slog.Warn("tracing disabled", "error", err)
		recorder = nil
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := recorder.Shutdown(sctx); err != nil {
			slog.Warn("flush traces", "error", err)
		}
	}()

	cat := catalog.Default()
	state := newNavState(ctx, cat, recorder)
	slog.Info("starting", "version", version, "tracing", recorder != nil)

	model := ui.NewAppModel(state, cat).AsTeaModel()
	if _, err := tea.NewProgram(model, programOptions(ctx, cfg)...).Run(); err != nil {
		slog.Error("program failed", "error", err)
		return fmt.Errorf("run: %w", err)
	}
	slog.Info("exiting", "page", state.Current().Tag())
	return nil
}

// newNavState returns a state at home that logs and traces each navigation.
func newNavState(ctx context.Context, cat *catalog.Catalog, recorder *telemetry.Recorder) *nav.State {
	state := nav.NewState()
	state.OnChange = func(from, to nav.Page) {
		view := site.Resolve(to, cat).Kind
		slog.Debug("navigate", "from", from.Tag(), "to", to.Tag(), "view", view.String())
		recorder.RecordNavigation(ctx, from.Tag(), to.Tag(), view.String())
	}
	return state
}

func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}
