package config

import "time"

// Config is the root configuration for the ticker feed service.
type Config struct {
	Binance  BinanceConfig  `yaml:"binance"`
	Listener ListenerConfig `yaml:"listener"`
	Flush    FlushConfig    `yaml:"flush"`
	Hub      HubConfig      `yaml:"hub"`
	Database DBConfig       `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// BinanceConfig holds upstream stream settings.
type BinanceConfig struct {
	WSURL   string   `yaml:"ws_url"`
	Symbols []string `yaml:"symbols"`
}

// ListenerConfig holds stream listener settings.
type ListenerConfig struct {
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
	BufferSize     int           `yaml:"buffer_size"`
	PingTimeout    time.Duration `yaml:"ping_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

// FlushConfig holds flush scheduler settings.
type FlushConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// HubConfig holds broadcast hub settings.
type HubConfig struct {
	SubscriberBuffer int `yaml:"subscriber_buffer"`
}

// DBConfig holds the database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// ServerConfig holds the HTTP/WebSocket server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}
