package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/viewhub/pkg/config"
	"github.com/dmitrymomot/viewhub/pkg/logger"
	"github.com/dmitrymomot/viewhub/pkg/metrics"
	"github.com/dmitrymomot/viewhub/pkg/notification"
	"github.com/dmitrymomot/viewhub/pkg/view"
)

type rootOptions struct {
	envFile   string
	logLevel  string
	logFormat string
}

type runOptions struct {
	interests   []string
	body        string
	noteType    string
	showMetrics bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "viewhub",
		Short:         "In-process notification registry for mediators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load variables from this .env file before reading config")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides LOG_LEVEL)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text|json (overrides LOG_FORMAT)")

	root.AddCommand(newRunCmd(opts))
	return root
}

func newRunCmd(rootOpts *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run NAME...",
		Short: "Register a console mediator and broadcast notifications",
		Example: "  viewhub run user.login\n" +
			"  viewhub run --interest user.login --body alice user.login user.logout",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBroadcast(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.interests, "interest", "i", nil, "Notification names the console observes (defaults to every NAME)")
	cmd.Flags().StringVar(&opts.body, "body", "", "Body attached to every notification")
	cmd.Flags().StringVar(&opts.noteType, "type", "", "Type attached to every notification")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "Print collected metrics after the run")
	return cmd
}

func loadConfig(opts *rootOptions) (Config, error) {
	if opts.envFile != "" {
		if err := config.LoadEnv(opts.envFile); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	return cfg, nil
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithOutput(out),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	return logger.New(logOpts...), nil
}

func runBroadcast(cmd *cobra.Command, rootOpts *rootOptions, opts *runOptions, names []string) error {
	cfg, err := loadConfig(rootOpts)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg, cfg.MetricsNamespace)
	if err != nil {
		return err
	}

	v, err := view.New(view.WithLogger(log), view.WithMetrics(rec))
	if err != nil {
		return err
	}

	ctx := logger.WithAttrs(cmd.Context(), logger.RunID(uuid.NewString()))
	interests := opts.interests
	if len(interests) == 0 {
		interests = names
	}

	out := cmd.OutOrStdout()
	v.RegisterMediator(ctx, newConsole(out, interests))
	for _, name := range names {
		if err := v.SendNotification(ctx, name, bodyOrNil(opts.body), noteOptions(opts)...); err != nil {
			return fmt.Errorf("broadcast %s: %w", name, err)
		}
	}
	v.RemoveMediator(ctx, consoleName)
	log.InfoContext(ctx, "run finished", slog.Int("notifications", len(names)))

	if opts.showMetrics {
		return printMetrics(out, reg)
	}
	return nil
}

func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}

			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			series := mf.GetName()
			if len(labels) > 0 {
				series += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", series, value))
		}
	}

	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func bodyOrNil(body string) any {
	if body == "" {
		return nil
	}
	return body
}

func noteOptions(opts *runOptions) []notification.Option {
	if opts.noteType == "" {
		return nil
	}
	return []notification.Option{notification.WithType(opts.noteType)}
}
