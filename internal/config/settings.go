package config

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultAPIEndpoint is the base URL of the LINE Messaging API.
	DefaultAPIEndpoint = "https://api.line.me/"
	// DefaultCallbackPath is the route the webhook is served on.
	DefaultCallbackPath = "/callback"
	// DefaultFollowGreeting is the reply sent to new followers.
	DefaultFollowGreeting = "follow"
	// DefaultEventArchiveTopic is the Kafka topic inbound events are archived to.
	DefaultEventArchiveTopic = "line.webhook.events"
	// DefaultEventDedupTTL is how long an answered webhook event id is remembered.
	DefaultEventDedupTTL = 10 * time.Minute
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	ChannelSecret  string        `env:"CHANNEL_SECRET"`
	ChannelToken   string        `env:"CHANNEL_TOKEN"`
	APIEndpoint    string        `env:"API_ENDPOINT"`
	CallbackPath   string        `env:"CALLBACK_PATH"`
	FollowGreeting string        `env:"FOLLOW_GREETING"`
	EventDedupTTL  time.Duration `env:"EVENT_DEDUP_TTL"`

	KafkaBrokers      string `env:"KAFKA_BROKERS"`
	EventArchiveTopic string `env:"EVENT_ARCHIVE_TOPIC"`
}

// ApplyDefaults fills every optional setting that was left empty.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.MonPort == 0 {
		s.MonPort = 8888
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "line-bot-api"
	}
	if s.APIEndpoint == "" {
		s.APIEndpoint = DefaultAPIEndpoint
	}
	if s.CallbackPath == "" {
		s.CallbackPath = DefaultCallbackPath
	}
	if s.FollowGreeting == "" {
		s.FollowGreeting = DefaultFollowGreeting
	}
	if s.EventDedupTTL <= 0 {
		s.EventDedupTTL = DefaultEventDedupTTL
	}
	if s.EventArchiveTopic == "" {
		s.EventArchiveTopic = DefaultEventArchiveTopic
	}
}

// Validate checks that the channel credentials are present.
func (s *Settings) Validate() error {
	var errs error
	if s.ChannelSecret == "" {
		errs = errors.Join(errs, errors.New("CHANNEL_SECRET is required"))
	}
	if s.ChannelToken == "" {
		errs = errors.Join(errs, errors.New("CHANNEL_TOKEN is required"))
	}
	if !strings.HasPrefix(s.CallbackPath, "/") {
		errs = errors.Join(errs, errors.New("CALLBACK_PATH must start with '/'"))
	}
	return errs
}

// KafkaBrokerList splits the comma separated broker setting.
// An empty result means event archiving is disabled.
func (s *Settings) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(s.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
