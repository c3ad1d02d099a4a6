// Package proxy_error collects the sentinel errors used by the demo
// relay's orchestration code (config loading, local listening, the
// connect/bind loop). Wire-protocol errors belong to pkg/socks5 instead;
// this package only covers what happens around a socks5.Dialer call, not
// inside one.
package proxy_error

import "errors"

// Config errors
var (
	ErrInvalidConfigFile  = errors.New("invalid config file")
	ErrNoProxyConfigured  = errors.New("config.proxies is empty")
	ErrInvalidTargetInCfg = errors.New("config.target is invalid")
)

// Listening errors
var (
	ErrLocalListenFailed        = errors.New("relay failed to start listening on the local address")
	ErrListenerIsNotInitialized = errors.New("listener is not initialized")
	ErrAcceptingLocalConn       = errors.New("failed to accept incoming local connection")
)

// Connection errors
var (
	ErrConnectionClosed = errors.New("connection unexpectedly closed")
	ErrTransferError    = errors.New("data transfer failed between local peer and proxied target")
)
