package config

import "testing"

func validConfig() RelayConfig {
	return RelayConfig{
		Listen:  "127.0.0.1:1080",
		Proxies: []string{"proxy.example.com:1080"},
		Target:  "example.com:443",
	}
}

func TestRelayConfig_Validate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRelayConfig_Validate_MissingFields(t *testing.T) {
	cfg := RelayConfig{}
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected an error for a config with every field unset")
	}
}

func TestRelayConfig_Validate_NoProxies(t *testing.T) {
	cfg := validConfig()
	cfg.Proxies = nil
	err := cfg.validate()
	if err != errNoProxyConfigured {
		t.Fatalf("expected errNoProxyConfigured, got %v", err)
	}
}

func TestRelayConfig_Validate_InvalidTarget(t *testing.T) {
	cfg := validConfig()
	cfg.Target = "not-a-valid-target"
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected an error for an invalid target address")
	}
}

func TestRelayConfig_Validate_InvalidMode(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = "relay"
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected an error for an unrecognized mode")
	}
}

func TestRelayConfig_Validate_PartialAccount(t *testing.T) {
	cfg := validConfig()
	cfg.Account.Username = "alice"
	if err := cfg.validate(); err == nil {
		t.Fatalf("expected an error when only username is set")
	}
}

func TestRelayConfig_ApplyDefaultValues(t *testing.T) {
	cfg := validConfig()
	cfg.applyDefaultValues()
	if cfg.Mode != "connect" {
		t.Fatalf("expected default mode \"connect\", got %q", cfg.Mode)
	}
	if cfg.Timeout.DialTimeout != 10 || cfg.Timeout.HandshakeTimeout != 10 {
		t.Fatalf("expected default timeouts of 10s, got %+v", cfg.Timeout)
	}
}

func TestRelayConfig_ApplyDefaultValues_PreservesSetFields(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = "bind"
	cfg.Timeout.DialTimeout = 5
	cfg.applyDefaultValues()
	if cfg.Mode != "bind" {
		t.Fatalf("expected mode to stay \"bind\", got %q", cfg.Mode)
	}
	if cfg.Timeout.DialTimeout != 5 {
		t.Fatalf("expected DialTimeout to stay 5, got %d", cfg.Timeout.DialTimeout)
	}
	if cfg.Timeout.HandshakeTimeout != 10 {
		t.Fatalf("expected HandshakeTimeout to default to 10, got %d", cfg.Timeout.HandshakeTimeout)
	}
}

func TestRelayConfig_IsAuthEnabled(t *testing.T) {
	cfg := validConfig()
	if cfg.IsAuthEnabled() {
		t.Fatalf("expected auth disabled when Account is unset")
	}
	cfg.Account = Account{Username: "alice", Password: "secret"}
	if !cfg.IsAuthEnabled() {
		t.Fatalf("expected auth enabled once Account.Username is set")
	}
}
