package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Binance.WSURL == "" {
		return errors.New("binance.ws_url is required")
	}
	if len(c.Binance.Symbols) == 0 {
		return errors.New("binance.symbols must list at least one symbol")
	}
	for i, s := range c.Binance.Symbols {
		if s == "" {
			return fmt.Errorf("binance.symbols[%d] is empty", i)
		}
	}

	if c.Listener.ReconnectDelay <= 0 {
		return errors.New("listener.reconnect_delay must be positive")
	}
	if c.Listener.BufferSize < 1 {
		return errors.New("listener.buffer_size must be >= 1")
	}

	if c.Flush.Interval <= 0 {
		return errors.New("flush.interval must be positive")
	}

	if c.Hub.SubscriberBuffer < 1 {
		return errors.New("hub.subscriber_buffer must be >= 1")
	}

	if err := c.Database.validate("database"); err != nil {
		return err
	}

	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
