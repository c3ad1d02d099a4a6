package socks5

import (
	"net"
	"time"
)

// Stream is an established SOCKS5 connection, returned by Dialer.Dial for
// CONNECT or by Listener.Accept for BIND: reads and writes pass straight
// through to the negotiated TCP connection with the proxy, which relays
// them to the far end.
type Stream struct {
	conn *conn
}

// Read implements io.Reader, reading data relayed from the target.
func (s *Stream) Read(b []byte) (int, error) { return s.conn.Read(b) }

// Write implements io.Writer, writing data relayed to the target.
func (s *Stream) Write(b []byte) (int, error) { return s.conn.Write(b) }

// Close closes the underlying connection to the proxy.
func (s *Stream) Close() error { return s.conn.Close() }

// halfCloser is implemented by *net.TCPConn.
type halfCloser interface {
	CloseRead() error
	CloseWrite() error
}

// CloseRead shuts down the read half of the connection, if the
// underlying net.Conn supports it (true for *net.TCPConn); otherwise it
// closes the whole connection.
func (s *Stream) CloseRead() error {
	if hc, ok := s.conn.Conn.(halfCloser); ok {
		return hc.CloseRead()
	}
	return s.conn.Close()
}

// CloseWrite shuts down the write half of the connection, if the
// underlying net.Conn supports it (true for *net.TCPConn); otherwise it
// closes the whole connection.
func (s *Stream) CloseWrite() error {
	if hc, ok := s.conn.Conn.(halfCloser); ok {
		return hc.CloseWrite()
	}
	return s.conn.Close()
}

// LocalAddr returns the local network address of the connection to the proxy.
func (s *Stream) LocalAddr() net.Addr { return s.conn.LocalAddr() }

// RemoteAddr returns the proxy's network address, not the target's.
func (s *Stream) RemoteAddr() net.Addr { return s.conn.RemoteAddr() }

// TargetAddr returns the address that was requested via CONNECT or, for a
// Stream returned by Listener.Accept, the peer address from the second
// BIND reply.
func (s *Stream) TargetAddr() TargetAddr { return s.conn.target }

// SetDeadline sets the read and write deadlines on the underlying connection.
func (s *Stream) SetDeadline(t time.Time) error { return s.conn.SetDeadline(t) }

// SetReadDeadline sets the read deadline on the underlying connection.
func (s *Stream) SetReadDeadline(t time.Time) error { return s.conn.SetReadDeadline(t) }

// SetWriteDeadline sets the write deadline on the underlying connection.
func (s *Stream) SetWriteDeadline(t time.Time) error { return s.conn.SetWriteDeadline(t) }

// Release returns the raw net.Conn established with the proxy, detaching
// it from the Stream so the caller can take over the socket directly.
// After Release, the Stream must not be used.
func (s *Stream) Release() net.Conn {
	c := s.conn.Conn
	s.conn = nil
	return c
}
