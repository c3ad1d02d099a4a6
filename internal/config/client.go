package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Iam54r1n4/socks5dial/pkg/socks5"
)

// RelayConfig is the complete configuration for the demo relay: a local
// TCP listener that forwards every accepted connection through a SOCKS5
// proxy to a single target address.
type RelayConfig struct {
	Listen  string        `toml:"listen"`  // local address the relay listens on
	Proxies []string      `toml:"proxies"` // candidate proxy addresses, tried in order
	Target  string        `toml:"target"`  // "host:port" forwarded to the proxy
	Mode    string        `toml:"mode"`    // "connect" (default) or "bind"
	Account Account       `toml:"account"` // optional; empty username disables auth
	Timeout timeoutConfig `toml:"timeout"`
}

// loadRelayConfig reads and parses the relay configuration from a TOML file.
func loadRelayConfig(path string) (*RelayConfig, error) {
	var cfg RelayConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaultValues()
	return &cfg, nil
}

// IsAuthEnabled reports whether username/password authentication is configured.
func (rc *RelayConfig) IsAuthEnabled() bool {
	return rc.Account.Username != ""
}

// validate checks that RelayConfig's required fields are present and well-formed.
func (rc *RelayConfig) validate() error {
	var missingFields []string

	if len(rc.Listen) < 1 {
		missingFields = append(missingFields, "listen")
	}
	if len(rc.Target) < 1 {
		missingFields = append(missingFields, "target")
	}
	if len(missingFields) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missingFields, ", "))
	}
	if len(rc.Proxies) < 1 {
		return errNoProxyConfigured
	}

	if _, err := socks5.ParseTargetAddr(rc.Target); err != nil {
		return fmt.Errorf("%w: relay.target: %w", errInvalidTarget, err)
	}
	for _, p := range rc.Proxies {
		if _, _, err := net.SplitHostPort(p); err != nil {
			return fmt.Errorf("%w: relay.proxies entry %q: %w", errInvalidTarget, p, err)
		}
	}

	if rc.Mode != "" && rc.Mode != "connect" && rc.Mode != "bind" {
		return fmt.Errorf("relay.mode must be \"connect\" or \"bind\", got %q", rc.Mode)
	}

	if (rc.Account.Username == "") != (rc.Account.Password == "") {
		return fmt.Errorf("account.username and account.password must both be set or both empty")
	}

	return nil
}

// applyDefaultValues fills in unset optional fields.
func (rc *RelayConfig) applyDefaultValues() {
	if rc.Mode == "" {
		rc.Mode = "connect"
	}
	if rc.Timeout.DialTimeout == 0 {
		rc.Timeout.DialTimeout = 10
	}
	if rc.Timeout.HandshakeTimeout == 0 {
		rc.Timeout.HandshakeTimeout = 10
	}
}
