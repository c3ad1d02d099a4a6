// Package main is the entry point for the socks5dial demo relay: it
// listens locally and forwards every accepted connection through a
// SOCKS5 proxy to a single configured target, either by CONNECTing
// straight through or by driving a BIND rendezvous.
package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/netip"
	"sync"
	"time"

	"github.com/Iam54r1n4/socks5dial/internal/config"
	"github.com/Iam54r1n4/socks5dial/internal/logger"
	"github.com/Iam54r1n4/socks5dial/internal/proxy_error"
	"github.com/Iam54r1n4/socks5dial/internal/redact"
	"github.com/Iam54r1n4/socks5dial/pkg/socks5"
)

// cfg is the global relay configuration.
var cfg *config.RelayConfig

// relayLog and dialerLog tag log lines with the relay subsystem that
// produced them, so local-accept activity and proxy-dial activity can be
// told apart in one log stream.
var (
	relayLog  = logger.Component("relay")
	dialerLog = logger.Component("dialer")
)

func main() {
	cfg = config.GetRelayConfig("./config.toml")

	dialer := buildDialer(cfg)

	l, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		relayLog.Fatal(errors.Join(proxy_error.ErrLocalListenFailed, err))
	}
	relayLog.Info("relay listening on: ", cfg.Listen, " mode=", cfg.Mode, " target=", cfg.Target)

	for {
		conn, err := l.Accept()
		if err != nil {
			relayLog.Warn(errors.Join(proxy_error.ErrAcceptingLocalConn, err))
			continue
		}
		relayLog.Debug("accepted local connection from:", conn.RemoteAddr())
		go handleConnection(dialer, conn)
	}
}

// buildDialer resolves the configured proxy candidates and, if
// credentials are configured, logs a redacted correlation tag for them
// instead of the raw username/password pair.
func buildDialer(cfg *config.RelayConfig) *socks5.Dialer {
	addrs := make([]netip.AddrPort, 0, len(cfg.Proxies))
	for _, p := range cfg.Proxies {
		seq := socks5.ResolveProxyAddrs(p)
		for {
			addr, err, ok := seq.Next()
			if !ok {
				break
			}
			if err != nil {
				dialerLog.Warn("failed to resolve proxy candidate ", p, ": ", err)
				continue
			}
			addrs = append(addrs, addr)
		}
	}
	proxies := socks5.NewProxyAddrs(addrs)

	if !cfg.IsAuthEnabled() {
		return socks5.NewDialer(proxies)
	}

	dialerLog.Debug("authenticating as account tag=", redact.Tag(cfg.Account.Username))
	auth, err := socks5.NewAuth(cfg.Account.Username, cfg.Account.Password)
	if err != nil {
		dialerLog.Fatal(err)
	}
	return socks5.NewDialerWithAuth(proxies, auth)
}

// handleConnection drives one local connection through the proxy to the
// configured target and relays bytes bidirectionally until both copy
// directions have ended.
func handleConnection(dialer *socks5.Dialer, c net.Conn) {
	defer c.Close()

	target, err := socks5.ParseTargetAddr(cfg.Target)
	if err != nil {
		relayLog.Error(errors.Join(proxy_error.ErrInvalidTargetInCfg, err))
		return
	}

	handshakeTimeout := time.Duration(cfg.Timeout.HandshakeTimeout) * time.Second

	var peer io.ReadWriteCloser
	switch cfg.Mode {
	case "bind":
		peer, err = dialBind(dialer, target, handshakeTimeout)
	default:
		peer, err = dialConnect(dialer, target, handshakeTimeout)
	}
	if err != nil {
		relayLog.Warn(errors.Join(proxy_error.ErrConnectionClosed, err))
		return
	}
	defer peer.Close()

	relay(c, peer)
}

// dialConnect performs a plain SOCKS5 CONNECT to target.
func dialConnect(dialer *socks5.Dialer, target socks5.TargetAddr, timeout time.Duration) (io.ReadWriteCloser, error) {
	ctx, cancel := contextWithTimeout(timeout)
	defer cancel()
	return dialer.DialContext(ctx, target)
}

// dialBind drives the BIND rendezvous: ask the proxy to listen, log the
// bound address so an external peer can be told where to connect, then
// block for the second reply.
func dialBind(dialer *socks5.Dialer, target socks5.TargetAddr, timeout time.Duration) (io.ReadWriteCloser, error) {
	ctx, cancel := contextWithTimeout(timeout)
	defer cancel()
	ln, err := dialer.BindContext(ctx, target)
	if err != nil {
		return nil, err
	}
	dialerLog.Info("proxy listening for peer on: ", ln.BindAddr())

	acceptCtx, acceptCancel := contextWithTimeout(timeout)
	defer acceptCancel()
	return ln.AcceptContext(acceptCtx)
}

// relay copies bytes bidirectionally between a and b and returns once
// both directions have ended (each copy stops when its source reaches EOF
// or a read or write fails), logging any transfer error other than EOF.
func relay(a, b io.ReadWriteCloser) {
	wg := sync.WaitGroup{}
	wg.Add(2)
	errChan := make(chan error, 2)

	go transfer(&wg, errChan, a, b)
	go transfer(&wg, errChan, b, a)

	go func() {
		wg.Wait()
		close(errChan)
	}()

	for err := range errChan {
		if !errors.Is(err, io.EOF) {
			relayLog.Error(errors.Join(proxy_error.ErrTransferError, err))
		}
	}
}

// contextWithTimeout returns a background context bounded by timeout.
func contextWithTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// transfer copies from src to dst, sends any copy error on errChan, and
// marks completion on wg.
func transfer(wg *sync.WaitGroup, errChan chan error, dst io.Writer, src io.Reader) {
	defer wg.Done()
	if _, err := io.Copy(dst, src); err != nil {
		errChan <- err
	}
}
