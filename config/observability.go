package config

// StatsdConfig configures the optional StatsD metrics sink used by the
// agent worker. Metrics are disabled unless STATSD_ENABLED is set.
type StatsdConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Address string `env:"ADDRESS" envDefault:"localhost:8125"`
	Prefix  string `env:"PREFIX" envDefault:"careershub"`
}

// SlackConfig configures run failure notifications to a Slack incoming
// webhook. Notifications are disabled when no webhook URL is set.
type SlackConfig struct {
	WebhookURL string `env:"WEBHOOK_URL"`
	Channel    string `env:"CHANNEL"`
	Username   string `env:"USERNAME" envDefault:"careershub"`
	RetryLimit int    `env:"RETRY_LIMIT" envDefault:"2"`
}

// ObservabilityConfig groups metrics and notification settings.
type ObservabilityConfig struct {
	Statsd StatsdConfig `envPrefix:"STATSD_"`
	Slack  SlackConfig  `envPrefix:"SLACK_"`
}

// Sanitize applies guardrails to observability settings.
func (c *ObservabilityConfig) Sanitize() {
	if c.Slack.RetryLimit < 0 {
		c.Slack.RetryLimit = 0
	}
}
