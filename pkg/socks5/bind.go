package socks5

import (
	"context"
	"net"
)

// Listener represents the first phase of a SOCKS5 BIND rendezvous: the
// proxy has opened a listening socket on its side and reported the
// address external peers should connect to. Call Accept to block for the
// second reply, which arrives once a peer connects to that address.
type Listener struct {
	conn *conn
}

// BindAddr returns the proxy-chosen rendezvous address (the first
// reply's BND.ADDR/BND.PORT) that an external peer must connect to.
func (l *Listener) BindAddr() TargetAddr { return l.conn.bindAddr }

// Accept blocks until the proxy's second BIND reply arrives, signaling
// that a peer connected to the bound address, and returns the resulting
// Stream to that peer. The same socket is reused: a second reply is read
// directly, with no new request sent.
func (l *Listener) Accept() (*Stream, error) {
	return l.AcceptContext(context.Background())
}

// AcceptContext is Accept with an explicit context bounding the wait for
// the second reply.
func (l *Listener) AcceptContext(ctx context.Context) (*Stream, error) {
	peerAddr, err := readReply(ctx, l.conn)
	if err != nil {
		return nil, err
	}
	l.conn.target = peerAddr
	return &Stream{conn: l.conn}, nil
}

// Close closes the underlying connection to the proxy, abandoning the
// rendezvous if Accept has not yet been called.
func (l *Listener) Close() error { return l.conn.Close() }

// Addr implements net.Listener's Addr, returning the same value as BindAddr
// adapted to a net.Addr for interop with code written against net.Listener.
func (l *Listener) Addr() net.Addr {
	return bindNetAddr{l.conn.bindAddr}
}

// bindNetAddr adapts a TargetAddr to the net.Addr interface.
type bindNetAddr struct {
	target TargetAddr
}

func (a bindNetAddr) Network() string { return "tcp" }
func (a bindNetAddr) String() string  { return a.target.String() }
