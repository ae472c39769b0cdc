package http

import "time"

// HttpOpts customizes the underlying http.Client of a Connector.
type HttpOpts func(*httpConfig)

// WithConnClientTimeout bounds connection establishment.
func WithConnClientTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { c.connClientTimeout = timeout }
}

// WithRequestTimeout bounds a whole request, body read included.
func WithRequestTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { c.requestTimeout = timeout }
}

func WithClientKeepAlive(keepAlive time.Duration) HttpOpts {
	return func(c *httpConfig) { c.clientKeepAlive = keepAlive }
}

func WithTLSHandshakeTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { c.tlsHandshakeTimeout = timeout }
}

func WithResponseHeaderTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { c.responseHeaderTimeout = timeout }
}

func WithIdleConnTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { c.idleConnTimeout = timeout }
}

func WithMaxIdleConns(maxConns int) HttpOpts {
	return func(c *httpConfig) { c.maxIdleConns = maxConns }
}

func WithMaxIdleConnsPerHost(maxConns int) HttpOpts {
	return func(c *httpConfig) { c.maxIdleConnsPerHost = maxConns }
}

// WithTransport stacks a RoundTripper wrapper on top of the client
// transport; wrappers apply in the order given.
func WithTransport(transport TransportFunc) HttpOpts {
	return func(c *httpConfig) { c.transports = append(c.transports, transport) }
}

// WithInsecureSkipVerify disables TLS certificate verification. Meant
// for local collaborator stubs only.
func WithInsecureSkipVerify(skip bool) HttpOpts {
	return func(c *httpConfig) { c.insecureSkipVerify = skip }
}
