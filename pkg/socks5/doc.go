// Package socks5 implements a SOCKS5 client, as defined by RFC 1928, plus
// the RFC 1929 username/password sub-negotiation.
//
// It dials a target address through an intermediate SOCKS5 proxy and
// returns a [Stream] whose Read/Write pass straight through to the
// negotiated TCP connection, or it drives the BIND rendezvous flow and
// returns a [Listener]. Authentication and request framing are handled
// internally; the TCP connect and every handshake read and write are
// ordinary blocking calls bounded by a [context.Context]. Proxy name
// resolution ([ResolveProxyAddrs]) runs up front with a background context.
package socks5
