// Package metrics owns the process's prometheus registry and reports it when
// the process stops, as a logged snapshot and optionally a Pushgateway push.
package metrics

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"snapgram/config"
	"snapgram/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/fx"
)

// JobName is the Pushgateway job the registry is pushed under.
const JobName = "snapgram"

// Params holds dependencies for the registry, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRegistry creates the registry collectors are registered on. With metrics
// enabled it is reported on shutdown.
func NewRegistry(params Params) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	cfg := params.Config.Cache
	if !cfg.Metrics {
		return reg
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := LogSnapshot(reg, params.Logger); err != nil {
				params.Logger.Warn("Failed to gather metrics", slog.Any("error", err))
			}
			if cfg.PushGatewayURL == "" {
				return nil
			}
			// The command has already run; a failed push is only logged.
			if err := Push(ctx, reg, cfg.PushGatewayURL); err != nil {
				params.Logger.Warn("Failed to push metrics",
					slog.String("url", cfg.PushGatewayURL),
					slog.Any("error", err),
				)
			}

			return nil
		},
	})

	return reg
}

// LogSnapshot logs the current value of every counter and gauge in g on one
// line. Labelled samples are grouped under the metric name and keyed by their
// label values.
func LogSnapshot(g prometheus.Gatherer, logger *slog.Logger) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	attrs := make([]any, 0, len(families))
	for _, mf := range families {
		if attr, ok := familyAttr(mf); ok {
			attrs = append(attrs, attr)
		}
	}
	logger.Info("Metrics snapshot", attrs...)

	return nil
}

// Push sends g to the Pushgateway at url, replacing the job's previous metrics.
func Push(ctx context.Context, g prometheus.Gatherer, url string) error {
	if err := push.New(url, JobName).Gatherer(g).PushContext(ctx); err != nil {
		return errors.Wrap(err, "push metrics")
	}

	return nil
}

func familyAttr(mf *dto.MetricFamily) (slog.Attr, bool) {
	samples := make([]slog.Attr, 0, len(mf.GetMetric()))
	for _, m := range mf.GetMetric() {
		value, ok := sampleValue(mf.GetType(), m)
		if !ok {
			continue
		}
		if len(m.GetLabel()) == 0 {
			return slog.Float64(mf.GetName(), value), true
		}
		samples = append(samples, slog.Float64(labelKey(m.GetLabel()), value))
	}
	if len(samples) == 0 {
		return slog.Attr{}, false
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Key < samples[j].Key })

	return slog.Attr{Key: mf.GetName(), Value: slog.GroupValue(samples...)}, true
}

func sampleValue(t dto.MetricType, m *dto.Metric) (float64, bool) {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue(), true
	default:
		return 0, false
	}
}

func labelKey(labels []*dto.LabelPair) string {
	values := make([]string, 0, len(labels))
	for _, l := range labels {
		values = append(values, l.GetValue())
	}

	return strings.Join(values, ",")
}
