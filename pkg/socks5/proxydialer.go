package socks5

import (
	"context"
	"net"

	"golang.org/x/net/proxy"
)

// DialProxy dials addr through d using the (network, addr string) shape
// golang.org/x/net/proxy.Dialer expects; see AsProxyDialer to obtain a
// value satisfying that interface directly.
//
// network must be "tcp", "tcp4" or "tcp6"; SOCKS5 CONNECT has no notion
// of other network types.
func (d *Dialer) DialProxy(network, addr string) (net.Conn, error) {
	return d.DialProxyContext(context.Background(), network, addr)
}

// DialProxyContext is DialProxy with an explicit context. It has the
// signature of golang.org/x/net/proxy.ContextDialer's DialContext; the
// value returned by AsProxyDialer exposes it under that name.
func (d *Dialer) DialProxyContext(ctx context.Context, network, addr string) (net.Conn, error) {
	if network != "tcp" && network != "tcp4" && network != "tcp6" {
		return nil, &net.OpError{Op: "dial", Net: network, Err: ErrUnknownAddressType}
	}
	target, err := ParseTargetAddr(addr)
	if err != nil {
		return nil, err
	}
	s, err := d.DialContext(ctx, target)
	if err != nil {
		return nil, err
	}
	return s, nil
}

var (
	_ proxy.Dialer        = (*proxyDialerAdapter)(nil)
	_ proxy.ContextDialer = (*proxyDialerAdapter)(nil)
)

// proxyDialerAdapter adapts *Dialer to proxy.Dialer/proxy.ContextDialer
// under their expected method name (Dial/DialContext), since this
// package's own Dial/DialContext methods have a different, SOCKS5-typed
// signature (TargetAddr, *Stream) for direct callers.
type proxyDialerAdapter struct {
	d *Dialer
}

// AsProxyDialer wraps d so it satisfies golang.org/x/net/proxy.Dialer and
// proxy.ContextDialer, for interop with code such as
// http.Transport.DialContext that expects those exact signatures.
func (d *Dialer) AsProxyDialer() proxy.ContextDialer {
	return proxyDialerAdapter{d: d}
}

func (a proxyDialerAdapter) Dial(network, addr string) (net.Conn, error) {
	return a.d.DialProxy(network, addr)
}

func (a proxyDialerAdapter) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return a.d.DialProxyContext(ctx, network, addr)
}
