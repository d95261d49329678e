package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultWSURL            = "wss://stream.binance.com:9443/stream"
	DefaultReconnectDelay   = 5 * time.Second
	DefaultBufferSize       = 1000
	DefaultPingTimeout      = 60 * time.Second
	DefaultWriteTimeout     = 5 * time.Second
	DefaultFlushInterval    = 60 * time.Second
	DefaultSubscriberBuffer = 16
	DefaultDBPort           = 5432
	DefaultDBSSLMode        = "prefer"
	DefaultMaxConns         = 10
	DefaultMinConns         = 2
	DefaultServerAddr       = ":8000"
)

// DefaultSymbols are subscribed when no symbol list is configured.
var DefaultSymbols = []string{"btcusdt", "ethusdt"}

// ApplyDefaults fills in zero-valued optional fields.
func (c *Config) ApplyDefaults() {
	if c.Binance.WSURL == "" {
		c.Binance.WSURL = DefaultWSURL
	}
	if len(c.Binance.Symbols) == 0 {
		c.Binance.Symbols = append([]string(nil), DefaultSymbols...)
	}

	if c.Listener.ReconnectDelay == 0 {
		c.Listener.ReconnectDelay = DefaultReconnectDelay
	}
	if c.Listener.BufferSize == 0 {
		c.Listener.BufferSize = DefaultBufferSize
	}
	if c.Listener.PingTimeout == 0 {
		c.Listener.PingTimeout = DefaultPingTimeout
	}
	if c.Listener.WriteTimeout == 0 {
		c.Listener.WriteTimeout = DefaultWriteTimeout
	}

	if c.Flush.Interval == 0 {
		c.Flush.Interval = DefaultFlushInterval
	}

	if c.Hub.SubscriberBuffer == 0 {
		c.Hub.SubscriberBuffer = DefaultSubscriberBuffer
	}

	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}
