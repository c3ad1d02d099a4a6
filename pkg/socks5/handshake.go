package socks5

import (
	"context"
	"errors"
)

/*
SOCKS5 client handshake, per RFC 1928 and RFC 1929:

Client -> Proxy: Greeting
+----+----------+----------+
|VER | NMETHODS | METHODS  |
+----+----------+----------+
| 1  |    1     | 1 to 255 |
+----+----------+----------+

Proxy -> Client: Method selection
+----+--------+
|VER | METHOD |
+----+--------+
| 1  |   1    |
+----+--------+

If METHOD is 0x02 (username/password), RFC 1929 sub-negotiation:
Client -> Proxy
+----+------+----------+------+----------+
|VER | ULEN |  UNAME   | PLEN |  PASSWD  |
+----+------+----------+------+----------+
| 1  |  1   | 1 to 255 |  1   | 1 to 255 |
+----+------+----------+------+----------+

Proxy -> Client
+----+--------+
|VER | STATUS |
+----+--------+
| 1  |   1    |
+----+--------+

Client -> Proxy: Request
+----+-----+-------+------+----------+----------+
|VER | CMD |  RSV  | ATYP | DST.ADDR | DST.PORT |
+----+-----+-------+------+----------+----------+
| 1  |  1  | X'00' |  1   | Variable |    2     |
+----+-----+-------+------+----------+----------+

Proxy -> Client: Reply (sent twice for BIND: once on listen, once on accept)
+----+-----+-------+------+----------+----------+
|VER | REP |  RSV  | ATYP | BND.ADDR | BND.PORT |
+----+-----+-------+------+----------+----------+
| 1  |  1  | X'00' |  1   | Variable |    2     |
+----+-----+-------+------+----------+----------+
*/

// handshake drives the full client-side negotiation over c for the given
// command and target, authenticating with auth if non-nil, and returns
// the BND.ADDR/BND.PORT the proxy reported in its first reply.
//
// Every step is bounded by ctx, using the same context-bounded blocking
// I/O helpers as the rest of this package.
func handshake(ctx context.Context, c *conn, cmd Command, target TargetAddr, auth *Auth) (TargetAddr, error) {
	if err := sendGreeting(ctx, c, auth); err != nil {
		return TargetAddr{}, errors.Join(errFailedToSendGreeting, err)
	}
	method, err := readMethodSelection(ctx, c, auth)
	if err != nil {
		return TargetAddr{}, err
	}
	if method == methodUserPass {
		if err := performPasswordAuth(ctx, c, auth); err != nil {
			return TargetAddr{}, err
		}
	}
	if err := sendRequest(ctx, c, cmd, target); err != nil {
		return TargetAddr{}, errors.Join(errFailedToSendRequest, err)
	}
	bindAddr, err := readReply(ctx, c)
	if err != nil {
		return TargetAddr{}, err
	}
	c.target = target
	c.bindAddr = bindAddr
	return bindAddr, nil
}

// sendGreeting sends the VER/NMETHODS/METHODS frame, offering NO AUTH
// always, and USERNAME/PASSWORD additionally when auth is non-nil.
func sendGreeting(ctx context.Context, c *conn, auth *Auth) error {
	methods := []byte{methodNoAuth}
	if auth != nil {
		methods = []byte{methodNoAuth, methodUserPass}
	}
	buf := make([]byte, 0, 2+len(methods))
	buf = append(buf, protocolVersion, byte(len(methods)))
	buf = append(buf, methods...)
	_, err := writeWithContext(ctx, c, buf)
	return err
}

// readMethodSelection reads the proxy's VER/METHOD reply, validates that
// it chose a method this client actually offered, and returns that
// method so the caller knows whether to run password auth.
func readMethodSelection(ctx context.Context, c *conn, auth *Auth) (byte, error) {
	buf := make([]byte, 2)
	if err := readFullWithContext(ctx, c, buf); err != nil {
		return 0, errors.Join(errFailedToReadMethodSelection, err)
	}
	if buf[0] != protocolVersion {
		return 0, errors.Join(ErrInvalidResponseVersion, errUnexpectedVersionByte(buf[0]))
	}

	switch buf[1] {
	case methodNoAcceptable:
		return 0, ErrNoAcceptableAuthMethod
	case methodNoAuth:
	case methodUserPass:
		if auth == nil {
			return 0, ErrUnknownAuthMethod
		}
	default:
		return 0, ErrUnknownAuthMethod
	}
	return buf[1], nil
}

// performPasswordAuth runs the RFC 1929 username/password sub-negotiation.
func performPasswordAuth(ctx context.Context, c *conn, auth *Auth) error {
	buf := make([]byte, 0, 3+len(auth.username)+len(auth.password))
	buf = append(buf, userPassAuthVersion, byte(len(auth.username)))
	buf = append(buf, auth.username...)
	buf = append(buf, byte(len(auth.password)))
	buf = append(buf, auth.password...)
	if _, err := writeWithContext(ctx, c, buf); err != nil {
		return errors.Join(errFailedToSendPasswordAuth, err)
	}

	resp := make([]byte, 2)
	if err := readFullWithContext(ctx, c, resp); err != nil {
		return errors.Join(errFailedToReadPasswordAuthReply, err)
	}
	if resp[0] != userPassAuthVersion {
		return errors.Join(ErrInvalidResponseVersion, errUnexpectedVersionByte(resp[0]))
	}
	if resp[1] != userPassAuthSuccess {
		return &PasswordAuthFailureError{Status: resp[1]}
	}
	return nil
}

// sendRequest sends the VER/CMD/RSV/ATYP/DST.ADDR/DST.PORT request frame.
func sendRequest(ctx context.Context, c *conn, cmd Command, target TargetAddr) error {
	buf := make([]byte, 0, maxFrameLen)
	buf = append(buf, protocolVersion, byte(cmd), 0x00)
	buf = target.appendWire(buf)
	_, err := writeWithContext(ctx, c, buf)
	return err
}

// readReply reads one VER/REP/RSV/ATYP/BND.ADDR/BND.PORT reply frame and
// returns the bound address, or the error the REP byte represents.
func readReply(ctx context.Context, c *conn) (TargetAddr, error) {
	hdr := make([]byte, 3)
	if err := readFullWithContext(ctx, c, hdr); err != nil {
		return TargetAddr{}, errors.Join(errFailedToReadReply, err)
	}
	if hdr[0] != protocolVersion {
		return TargetAddr{}, errors.Join(ErrInvalidResponseVersion, errUnexpectedVersionByte(hdr[0]))
	}
	if hdr[2] != 0x00 {
		return TargetAddr{}, ErrInvalidReservedByte
	}
	if hdr[1] != 0x00 {
		return TargetAddr{}, replyError(hdr[1])
	}

	bindAddr, err := readAddrWithContext(ctx, c)
	if err != nil {
		return TargetAddr{}, errors.Join(errFailedToReadBoundAddress, err)
	}
	return bindAddr, nil
}
