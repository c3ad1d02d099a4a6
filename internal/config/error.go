package config

import "errors"

var (
	errInvalidConfigFile = errors.New("invalid config file")
	errNoProxyConfigured = errors.New("relay.proxies is empty")
	errInvalidTarget     = errors.New("relay.target is invalid")
)
