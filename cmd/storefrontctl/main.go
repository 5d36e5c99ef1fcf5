// Command storefrontctl inspects and drives the storefront session and admin
// state containers against the configured persistence backend.
package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront/internal/admin"
	"storefront/internal/config"
	"storefront/internal/core"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/pkg/domain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	a := &app{stdout: stdout, stderr: stderr, getenv: getenv}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(context.Background())
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "storefrontctl: %v\n", err)
		return 1
	}
	return 0
}

type expvarExport struct {
	container string
	rec       *core.ExpvarMetricsRecorder
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	configPath  string
	verbose     bool
	withMetrics bool
	withTrace   bool

	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	expvars  []expvarExport
	tracer   *core.JSONTraceTracer

	slots   domain.SlotStore
	session *session.Store
	admin   *admin.Store
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefrontctl",
		Short:         "Inspect and update persisted storefront state",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.flushMetrics()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.withMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")
	flags.BoolVar(&a.withTrace, "trace", false, "write dispatch spans to stderr as JSON lines")

	root.AddCommand(newSessionCmd(a), newCartCmd(a), newWishlistCmd(a), newAdminCmd(a), newMenuCmd(a), newBreadcrumbsCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath, a.getenv)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Log.ZapLevel()
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger = zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zcfg.EncoderConfig),
		zapcore.AddSync(a.stderr),
		zcfg.Level,
	))
	return nil
}

// options opens the slot store on first use and returns the container
// options shared by both stores.
func (a *app) options(ctx context.Context, key string) ([]core.Option, error) {
	if a.slots == nil {
		slots, err := storage.Open(ctx, a.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		a.slots = slots
		a.logger.Debug("storage opened", zap.String("driver", string(a.cfg.Storage.Driver)))
	}
	opts := []core.Option{
		core.WithLogger(core.NewZapLogger(a.logger)),
		core.WithSlots(a.slots, key),
	}
	if a.withMetrics {
		rec, err := a.metricsRecorder(key)
		if err != nil {
			return nil, err
		}
		opts = append(opts, core.WithMetricsRecorder(rec))
	}
	if a.withTrace {
		if a.tracer == nil {
			a.tracer = core.NewJSONTracer(a.stderr)
		}
		opts = append(opts, core.WithTracer(a.tracer))
	}
	return opts, nil
}

// metricsRecorder builds the recorders selected by metrics.exporter for the
// container stored under key.
func (a *app) metricsRecorder(key string) (core.MetricsRecorder, error) {
	var recs core.MultiMetricsRecorder
	exporter := a.cfg.Metrics.Exporter
	if exporter.Prometheus() {
		if a.registry == nil {
			a.registry = prometheus.NewRegistry()
		}
		rec, err := core.NewPrometheusMetricsRecorder(prometheus.WrapRegistererWith(prometheus.Labels{"container": key}, a.registry), a.cfg.Metrics.Namespace)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if exporter.Expvar() {
		rec := core.NewExpvarMetricsRecorder("")
		a.expvars = append(a.expvars, expvarExport{container: key, rec: rec})
		recs = append(recs, rec)
	}
	if len(recs) == 1 {
		return recs[0], nil
	}
	return recs, nil
}

func (a *app) sessionStore(ctx context.Context) (*session.Store, error) {
	if a.session != nil {
		return a.session, nil
	}
	opts, err := a.options(ctx, session.SlotKey)
	if err != nil {
		return nil, err
	}
	a.session = session.NewStore(ctx, opts...)
	return a.session, nil
}

func (a *app) adminStore(ctx context.Context) (*admin.Store, error) {
	if a.admin != nil {
		return a.admin, nil
	}
	opts, err := a.options(ctx, admin.SlotKey)
	if err != nil {
		return nil, err
	}
	a.admin = admin.NewStore(ctx, opts...)
	return a.admin, nil
}

func (a *app) flushMetrics() error {
	if a.registry != nil {
		families, err := a.registry.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(a.stderr, mf); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}
	}
	enc := json.NewEncoder(a.stderr)
	for _, exp := range a.expvars {
		v := expvar.Get(exp.rec.Name())
		if v == nil {
			continue
		}
		line := struct {
			Container string          `json:"container"`
			Expvar    string          `json:"expvar"`
			Metrics   json.RawMessage `json:"metrics"`
		}{exp.container, exp.rec.Name(), json.RawMessage(v.String())}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("write expvar metrics: %w", err)
		}
	}
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.slots == nil {
		return nil
	}
	return a.slots.Close()
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
