package config

import "time"

// Redis Redis配置信息
type Redis struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// 点赞计数缓存时长(秒)
	LikeCountTTL int `json:"like_count_ttl" yaml:"like_count_ttl"`
}

func (r *Redis) CountTTL() time.Duration {
	if r.LikeCountTTL <= 0 {
		return 60 * time.Second
	}
	return time.Duration(r.LikeCountTTL) * time.Second
}
