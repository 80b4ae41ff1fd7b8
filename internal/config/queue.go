package config

import (
	"fmt"
	"net/url"
)

const defaultRequestEventsQueueName = "vault_request_events"

type QueueConfig struct {
	QueueUser              string `mapstructure:"queue_user"`
	QueuePassword          string `mapstructure:"queue_password"`
	Url                    string `mapstructure:"url"`
	QueueProcessingTimeout int    `mapstructure:"processing_timeout"`
	MsgMaxRetryAttempts    int32  `mapstructure:"max_retry_attempts"`
	RequestEventsQueueName string `mapstructure:"request_events_queue_name"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if _, err := url.Parse("amqp://" + cfg.Url); err != nil {
		return fmt.Errorf("invalid queue url: %w", err)
	}

	if cfg.QueueUser == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("invalid queue processing timeout")
	}

	if cfg.MsgMaxRetryAttempts < 0 {
		return fmt.Errorf("invalid queue max retry attempts")
	}

	if cfg.RequestEventsQueueName == "" {
		cfg.RequestEventsQueueName = defaultRequestEventsQueueName
	}
	return nil
}
