package socks5

import (
	"io"
	"net"
	"net/netip"
	"testing"
)

// fakeBindProxy accepts one connection and drives a two-phase BIND
// exchange, reporting listenAddr on the first reply and peerAddr on the
// second.
func fakeBindProxy(t *testing.T, ln net.Listener, listenAddr, peerAddr [6]byte) {
	t.Helper()
	go func() {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		defer c.Close()

		greeting := make([]byte, 3)
		if _, err := io.ReadFull(c, greeting); err != nil {
			return
		}
		c.Write([]byte{0x05, 0x00})

		req := make([]byte, 10)
		if _, err := io.ReadFull(c, req); err != nil {
			return
		}
		c.Write(append([]byte{0x05, 0x00, 0x00, 0x01}, listenAddr[:]...))
		c.Write(append([]byte{0x05, 0x00, 0x00, 0x01}, peerAddr[:]...))
	}()
}

func TestDialer_Bind(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to start live listener: %v", err)
	}
	defer ln.Close()

	listenAddr := [6]byte{170, 170, 170, 170, 0x04, 0xD2} // 170.170.170.170:1234
	peerAddr := [6]byte{187, 187, 187, 187, 0x00, 0x50}   // 187.187.187.187:80
	fakeBindProxy(t, ln, listenAddr, peerAddr)

	addr := ln.Addr().(*net.TCPAddr)
	proxies := SingleProxyAddr(netip.AddrPortFrom(netip.MustParseAddr(addr.IP.String()), uint16(addr.Port)))

	dialer := NewDialer(proxies)
	target := NewIPTargetAddr(netip.MustParseAddr("0.0.0.0"), 0)
	listener, err := dialer.Bind(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer listener.Close()

	if listener.BindAddr().String() != "170.170.170.170:1234" {
		t.Fatalf("unexpected bind addr: %v", listener.BindAddr())
	}

	stream, err := listener.Accept()
	if err != nil {
		t.Fatalf("unexpected error from Accept: %v", err)
	}
	defer stream.Close()

	if stream.TargetAddr().String() != "187.187.187.187:80" {
		t.Fatalf("unexpected peer addr: %v", stream.TargetAddr())
	}
}
