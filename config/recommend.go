package config

// Recommend 推荐语种子配置, 为空时使用内置列表
type Recommend struct {
	Seeds []string `json:"seeds" yaml:"seeds"`
}

func ProvideRecommendConfig(cfg *Config) *Recommend {
	return cfg.Recommend
}
