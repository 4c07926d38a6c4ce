package config

import (
	"fmt"
	"time"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// MySQL 数据库配置, driver=sqlite 时只使用 Path
type MySQL struct {
	Driver          string `json:"driver" yaml:"driver"`
	Host            string `json:"host" yaml:"host"`
	Port            int    `json:"port" yaml:"port"`
	UserName        string `json:"username" yaml:"username"`
	Password        string `json:"password" yaml:"password"`
	Database        string `json:"database" yaml:"database"`
	Charset         string `json:"charset" yaml:"charset"`
	Path            string `json:"path" yaml:"path"`
	MaxOpenConns    int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime int    `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

func (m *MySQL) DriverName() string {
	if m.Driver == "" {
		return DriverMySQL
	}
	return m.Driver
}

func (m *MySQL) Dsn() string {
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=UTC",
		m.UserName, m.Password, m.Host, m.Port, m.Database, charset)
}

func (m *MySQL) Lifetime() time.Duration {
	if m.ConnMaxLifetime <= 0 {
		return time.Hour
	}
	return time.Duration(m.ConnMaxLifetime) * time.Second
}
