// Package config provides configuration structures and functions for the
// socks5dial project.
package config

import (
	"errors"
	"sync"

	"github.com/Iam54r1n4/socks5dial/internal/logger"
)

// timeoutConfig holds the relay's timeout settings, in seconds.
type timeoutConfig struct {
	DialTimeout      int `toml:"dialTimeout"`      // parsed and defaulted, but not applied by the relay
	HandshakeTimeout int `toml:"handshakeTimeout"` // bounds the proxy TCP connects and the SOCKS5 handshake together
}

// Account holds optional username/password credentials for RFC 1929
// authentication against the proxy.
type Account struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

var (
	relayConfig            *RelayConfig
	relayConfigLoadingOnce sync.Once
	configLog              = logger.Component("config")
)

// GetRelayConfig loads and returns the relay configuration, using
// sync.Once so concurrent callers all observe the same parsed config. A
// malformed config file is a fatal, unrecoverable startup error.
func GetRelayConfig(path string) *RelayConfig {
	relayConfigLoadingOnce.Do(func() {
		var err error
		if relayConfig, err = loadRelayConfig(path); err != nil {
			configLog.Fatal(errors.Join(errInvalidConfigFile, err))
		}
	})
	return relayConfig
}
