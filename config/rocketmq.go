package config

import "time"

type RocketMQConfig struct {
	Enabled bool `yaml:"enabled"`

	NameServer []string `yaml:"nameserver"`

	Topic string `yaml:"topic"`

	Producer Producer `yaml:"producer"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
	// 单条消息发送超时, 秒
	Timeout int `yaml:"timeout"`
}

// SendTimeout 默认 3 秒
func (p Producer) SendTimeout() time.Duration {
	if p.Timeout <= 0 {
		return 3 * time.Second
	}
	return time.Duration(p.Timeout) * time.Second
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
