package socks5

import "context"

// Association is the result of a SOCKS5 UDP ASSOCIATE request: the proxy
// reports the address it will relay UDP datagrams through. Building and
// driving the actual UDP datagram relay (the ASSOCIATE data-plane) is
// left to the caller; this type only carries the control connection and
// the negotiated relay address.
//
// The TCP connection behind an Association must be kept open for as
// long as the UDP relay is needed; the proxy tears down the association
// once it sees the control connection close.
type Association struct {
	conn *conn
}

// RelayAddr returns the address the proxy will relay UDP datagrams
// through (the reply's BND.ADDR/BND.PORT).
func (a *Association) RelayAddr() TargetAddr { return a.conn.bindAddr }

// Close closes the control connection, tearing down the association.
func (a *Association) Close() error { return a.conn.Close() }

// Associate issues a SOCKS5 UDP ASSOCIATE request for target, with a
// background context.
func (d *Dialer) Associate(target TargetAddr) (*Association, error) {
	return d.AssociateContext(context.Background(), target)
}

// AssociateContext is Associate with an explicit context bounding the
// TCP connect attempts and the handshake.
func (d *Dialer) AssociateContext(ctx context.Context, target TargetAddr) (*Association, error) {
	c, err := d.handshakeContext(ctx, CmdAssociate, target)
	if err != nil {
		return nil, err
	}
	return &Association{conn: c}, nil
}
