package socks5

import (
	"context"
	"errors"
	"net"
)

// Dialer establishes SOCKS5 connections through one or more candidate
// proxy addresses, trying each in turn until one accepts a TCP
// connection. Only the TCP-connect step triggers failover to the next
// candidate: once a proxy accepts the connection, any protocol or
// authentication error is terminal and is returned as-is.
type Dialer struct {
	proxies   ProxyAddrs
	auth      *Auth
	netDialer net.Dialer
}

// NewDialer builds a Dialer over the given proxy address sequence,
// without username/password authentication.
func NewDialer(proxies ProxyAddrs) *Dialer {
	return &Dialer{proxies: proxies}
}

// NewDialerWithAuth builds a Dialer that authenticates with auth against
// whichever candidate proxy accepts the TCP connection.
func NewDialerWithAuth(proxies ProxyAddrs, auth *Auth) *Dialer {
	return &Dialer{proxies: proxies, auth: auth}
}

// Dial connects to target through one of the dialer's candidate proxies
// using CONNECT, with a background context.
func (d *Dialer) Dial(target TargetAddr) (*Stream, error) {
	return d.DialContext(context.Background(), target)
}

// DialContext is Dial with an explicit context, bounding both the TCP
// connect attempts and the SOCKS5 handshake.
func (d *Dialer) DialContext(ctx context.Context, target TargetAddr) (*Stream, error) {
	c, err := d.handshakeContext(ctx, CmdConnect, target)
	if err != nil {
		return nil, err
	}
	return &Stream{conn: c}, nil
}

// Bind asks a candidate proxy to listen on its side and returns a
// Listener describing the bound address; call Listener.Accept to
// complete the BIND rendezvous once a peer connects.
func (d *Dialer) Bind(target TargetAddr) (*Listener, error) {
	return d.BindContext(context.Background(), target)
}

// BindContext is Bind with an explicit context.
func (d *Dialer) BindContext(ctx context.Context, target TargetAddr) (*Listener, error) {
	c, err := d.handshakeContext(ctx, CmdBind, target)
	if err != nil {
		return nil, err
	}
	return &Listener{conn: c}, nil
}

// handshakeContext tries each candidate proxy in turn, dialing TCP and
// running the SOCKS5 handshake against the first one that accepts a
// connection.
func (d *Dialer) handshakeContext(ctx context.Context, cmd Command, target TargetAddr) (*conn, error) {
	var lastResolveErr, lastDialErr error
	for {
		addr, resolveErr, ok := d.proxies.Next()
		if !ok {
			if lastResolveErr != nil {
				return nil, lastResolveErr
			}
			return nil, errors.Join(ErrProxyServerUnreachable, lastDialErr)
		}
		if resolveErr != nil {
			lastResolveErr = resolveErr
			continue
		}

		tcpConn, err := d.netDialer.DialContext(ctx, "tcp", addr.String())
		if err != nil {
			lastDialErr = err
			continue
		}

		c := &conn{Conn: tcpConn}
		if _, err := handshake(ctx, c, cmd, target, d.auth); err != nil {
			tcpConn.Close()
			return nil, err
		}
		c.handshakeComplete.Store(true)
		return c, nil
	}
}
