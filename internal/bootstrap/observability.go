package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/config"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/notify"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/notify/slack"
	"github.com/APVS-BRO/ai-careers-hub/internal/observability/statsd"
)

// Observability bundles the worker's metric sink and failure notification
// channel. Failures is nil when no webhook is configured.
type Observability struct {
	Metrics  *statsd.Client
	Failures notify.Sink
}

// BuildObservability wires the StatsD client and the Slack failure sink from
// configuration. The StatsD client is always returned; when disabled it
// drops every metric without dialing.
func BuildObservability(cfg config.ObservabilityConfig, logger *slog.Logger) (*Observability, error) {
	metricsClient, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Statsd.Enabled,
		Address: cfg.Statsd.Address,
		Prefix:  cfg.Statsd.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build statsd client: %w", err)
	}
	if metricsClient.Enabled() {
		logger.Info("statsd metrics enabled", "address", cfg.Statsd.Address, "prefix", cfg.Statsd.Prefix)
	}

	obs := &Observability{Metrics: metricsClient}

	if strings.TrimSpace(cfg.Slack.WebhookURL) != "" {
		sink, sinkErr := slack.NewClient(slack.Config{
			WebhookURL: cfg.Slack.WebhookURL,
			Channel:    cfg.Slack.Channel,
			Username:   cfg.Slack.Username,
			RetryLimit: cfg.Slack.RetryLimit,
			Timeout:    5 * time.Second,
		})
		if sinkErr != nil {
			closeStatsd(metricsClient, logger)
			return nil, fmt.Errorf("build slack sink: %w", sinkErr)
		}
		obs.Failures = sink
		logger.Info("slack failure notifications enabled", "channel", cfg.Slack.Channel)
	}

	return obs, nil
}

// Close releases the observability resources.
func (o *Observability) Close(logger *slog.Logger) {
	if o == nil {
		return
	}
	closeStatsd(o.Metrics, logger)
}

func closeStatsd(client *statsd.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Warn("statsd close failed", "error", err)
	}
}
