package httpclient

import (
	"net"
	"net/http"
	"time"
)

// Pool owns the HTTP connection pool shared by every case within one run. It
// is opened once at run start and must be closed at run end; callers are
// expected to defer Close so the underlying connections are released on every
// exit path, including early termination. Cases execute sequentially, so the
// pool does not need to be safe for concurrent requests.
type Pool struct {
	client    *http.Client
	transport *http.Transport
}

func NewPool(connectTimeout, readTimeout time.Duration) *Pool {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Pool{
		transport: transport,
		client: &http.Client{
			Transport: transport,
			Timeout:   readTimeout,
		},
	}
}

func (p *Pool) Client() *http.Client {
	return p.client
}

func (p *Pool) Close() {
	p.transport.CloseIdleConnections()
}
