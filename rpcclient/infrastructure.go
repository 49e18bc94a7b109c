// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"syscall"

	"github.com/btcsuite/corerpc/corejson"
	"github.com/btcsuite/corerpc/internal/version"
	"github.com/btcsuite/go-socks/socks"
)

// requestID is the id of every request.  Each call travels on its own HTTP
// request, so responses never need to be matched against requests.
const requestID = 1

// response is the raw bytes of a JSON-RPC result, or the error if the response
// error object was non-null.
type response struct {
	result []byte
	err    error
}

// ConnConfig describes the connection configuration parameters for the client.
type ConnConfig struct {
	// URL is the full URL of the node's RPC endpoint, for example
	// http://127.0.0.1:18443.  Requests are posted to it without any path
	// suffix.
	URL string

	// User is the username to use to authenticate to the RPC server.
	User string

	// Pass is the passphrase to use to authenticate to the RPC server.
	Pass string

	// CookiePath is the path to a cookie file containing the username and
	// passphrase to use to authenticate to the RPC server.  It is used
	// instead of User and Pass if non-empty.
	CookiePath string

	// Certificates are the bytes for a PEM-encoded certificate chain used
	// to verify the server when the URL scheme is https.  The system roots
	// are used when empty.
	Certificates []byte

	// TLSSkipVerify disables verification of the server certificate.
	TLSSkipVerify bool

	// Proxy specifies to connect through a SOCKS 5 proxy server.  It may
	// be an empty string if a proxy is not required.
	Proxy string

	// ProxyUser is an optional username to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyUser string

	// ProxyPass is an optional password to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyPass string

	// HTTPClient, when set, is used as is for every request.  Certificates,
	// TLSSkipVerify and the proxy settings are ignored in that case.
	HTTPClient *http.Client

	// retrieveCookie is populated by New when CookiePath is set.
	retrieveCookie func() (username, passphrase string, err error)
}

// getAuth returns the username and passphrase that will actually be used for
// this connection.  This will be the result of checking the cookie if a cookie
// path is configured; if not, it will be the user-configured username and
// passphrase.
func (config *ConnConfig) getAuth() (username, passphrase string, err error) {
	if config.retrieveCookie == nil {
		return config.User, config.Pass, nil
	}
	return config.retrieveCookie()
}

// lifecycle is the shutdown state shared by a client and the wallet clients
// derived from it.
type lifecycle struct {
	mtx    sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// add registers a new in-flight request.  It returns false once the client
// has been shut down.
func (l *lifecycle) add() bool {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if l.ctx.Err() != nil {
		return false
	}
	l.wg.Add(1)
	return true
}

// Client represents a JSON-RPC client connected to a node over HTTP POST.
//
// Every method is available both as a blocking call and as an asynchronous
// variant suffixed with Async, which returns a future whose Receive function
// blocks until the result is available.  Each call is sent on its own HTTP
// request as soon as it is made, so any number of calls may be in flight at
// once.  All methods are safe for concurrent use.
type Client struct {
	config     *ConnConfig
	httpClient *http.Client
	lc         *lifecycle
}

// New creates a new RPC client based on the provided connection configuration
// details.  No request is made until the first call.
func New(config *ConnConfig) (*Client, error) {
	if config == nil {
		return nil, errors.New("no connection configuration")
	}
	cfg := *config

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", cfg.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q in URL %q, "+
			"expected http or https", u.Scheme, cfg.URL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in URL %q", cfg.URL)
	}

	if cfg.CookiePath != "" {
		if cfg.User != "" || cfg.Pass != "" {
			return nil, errors.New("a cookie path and a username or " +
				"passphrase may not both be set")
		}
		cfg.retrieveCookie = cookieRetriever(cfg.CookiePath)
	}

	httpClient, err := newHTTPClient(&cfg, u.Scheme == "https")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	log.Debugf("Created RPC client for %s", u.Redacted())

	return &Client{
		config:     &cfg,
		httpClient: httpClient,
		lc: &lifecycle{
			ctx:    ctx,
			cancel: cancel,
		},
	}, nil
}

// WalletClient returns a client whose calls address the wallet endpoint
// <URL>/wallet/<name> of the same node.  The returned client shares the
// credentials, transport and shutdown state of c.
func (c *Client) WalletClient(name string) *Client {
	cfg := *c.config
	cfg.URL = strings.TrimSuffix(c.config.URL, "/") + "/wallet/" +
		url.PathEscape(name)

	return &Client{
		config:     &cfg,
		httpClient: c.httpClient,
		lc:         c.lc,
	}
}

// Shutdown cancels every request in flight and causes all later calls to fail
// with ErrClientShutdown.  It does not wait for the requests to return, use
// WaitForShutdown for that.
func (c *Client) Shutdown() {
	c.lc.mtx.Lock()
	defer c.lc.mtx.Unlock()

	if c.lc.ctx.Err() != nil {
		return
	}
	log.Tracef("Shutting down RPC client %s", c.config.URL)
	c.lc.cancel()
}

// WaitForShutdown blocks until every request issued before Shutdown has
// returned.  It is meant to follow Shutdown and returns at once while the
// client is still running.
func (c *Client) WaitForShutdown() {
	// No request is registered after cancel, so the wait cannot race with
	// add.
	if c.lc.ctx.Err() == nil {
		return
	}
	c.lc.wg.Wait()
}

// newHTTPClient returns a new http client that is configured according to the
// proxy and TLS settings in the associated connection configuration.
func newHTTPClient(config *ConnConfig, useTLS bool) (*http.Client, error) {
	if config.HTTPClient != nil {
		return config.HTTPClient, nil
	}

	// Set proxy function if there is a proxy configured.
	var dial func(ctx context.Context, network, addr string) (net.Conn, error)
	if config.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     config.Proxy,
			Username: config.ProxyUser,
			Password: config.ProxyPass,
		}
		dial = func(_ context.Context, network, addr string) (net.Conn, error) {
			return proxy.Dial(network, addr)
		}
	}

	// Configure TLS if needed.
	var tlsConfig *tls.Config
	if useTLS {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: config.TLSSkipVerify,
		}
		if len(config.Certificates) > 0 {
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(config.Certificates) {
				return nil, errors.New("no valid PEM certificates " +
					"in the supplied certificate chain")
			}
			tlsConfig.RootCAs = pool
		}
	}

	client := http.Client{
		Transport: &http.Transport{
			DialContext:     dial,
			TLSClientConfig: tlsConfig,
		},
	}

	return &client, nil
}

// isUnset reports whether a parameter was not supplied by the caller.  Untyped
// nils and nil pointers, slices, maps and interfaces are all unset.
func isUnset(param interface{}) bool {
	if param == nil {
		return true
	}

	v := reflect.ValueOf(param)
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// filterParams drops every unset parameter while preserving the order of the
// remaining ones.
func filterParams(params []interface{}) []interface{} {
	filtered := make([]interface{}, 0, len(params))
	for _, param := range params {
		if isUnset(param) {
			continue
		}
		filtered = append(filtered, param)
	}
	return filtered
}

// sendCmd sends the passed method and parameters to the node and returns a
// response channel on which the reply will be delivered at some point in the
// future.  The method is lower-cased and unset parameters are omitted.
func (c *Client) sendCmd(method string, params ...interface{}) chan *response {
	responseChan := make(chan *response, 1)

	method = strings.ToLower(method)
	params = filterParams(params)
	body, err := corejson.MarshalRequest(corejson.RpcVersion2, requestID,
		method, params)
	if err != nil {
		responseChan <- &response{err: err}
		return responseChan
	}

	if !c.lc.add() {
		responseChan <- &response{err: ErrClientShutdown}
		return responseChan
	}

	log.Tracef("Sending command [%s] with id %d: %v", method, requestID,
		paramsDump(params))

	go func() {
		defer c.lc.wg.Done()

		result, err := c.sendPost(method, body)
		responseChan <- &response{result: result, err: err}
	}()

	return responseChan
}

// sendPost posts a marshalled request to the node and returns the raw result
// or the classified failure.
func (c *Client) sendPost(method string, body []byte) ([]byte, error) {
	ctx := c.lc.ctx
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())

	// Configure basic access authorization.
	user, pass, err := c.config.getAuth()
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials: %w", err)
	}
	if user != "" || pass != "" {
		httpReq.SetBasicAuth(user, pass)
	}

	httpResponse, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrClientShutdown
		}
		err = classifyTransportError(err)
		log.Debugf("Command [%s] failed: %v", method, err)
		return nil, err
	}
	defer httpResponse.Body.Close()

	// Read the raw bytes.
	respBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrClientShutdown
		}
		err = &UnknownError{
			Err: fmt.Errorf("error reading json reply: %w", err),
		}
		log.Debugf("Command [%s] failed: %v", method, err)
		return nil, err
	}

	result, err := classifyResponse(httpResponse.StatusCode, respBytes)
	if err != nil {
		log.Debugf("Command [%s] failed: %v", method, err)
		return nil, err
	}
	return result, nil
}

// isDialError reports whether the transport failed before a connection to the
// node could be established.
func isDialError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED)
}

// classifyTransportError maps a failed HTTP round trip to a ConnectionError
// or an UnknownError.
func classifyTransportError(err error) error {
	if isDialError(err) {
		return &ConnectionError{Err: err}
	}
	return &UnknownError{Err: err}
}

// classifyResponse extracts the result of a reply received from the node.  An
// error object in the body takes precedence over the status code, then 401
// maps to an AuthError and any other failure to an UnknownError.
func classifyResponse(statusCode int, body []byte) ([]byte, error) {
	var resp corejson.Response
	unmarshalErr := json.Unmarshal(body, &resp)
	if unmarshalErr == nil && resp.Error != nil {
		return nil, resp.Error
	}

	if statusCode == http.StatusUnauthorized {
		return nil, &AuthError{}
	}

	if statusCode < 200 || statusCode >= 300 {
		return nil, &UnknownError{
			Err: fmt.Errorf("status code: %d, response: %q",
				statusCode, string(body)),
		}
	}

	if unmarshalErr != nil {
		return nil, &UnknownError{
			Err: fmt.Errorf("status code: %d, response: %q, err: %w",
				statusCode, string(body), unmarshalErr),
		}
	}

	return resp.Result, nil
}

// receiveFuture receives from the passed futureResult channel to extract a
// reply or any errors.  The examined errors include an error in the
// futureResult and the error in the reply from the server.  This will block
// until the result is available on the passed channel.
func receiveFuture(f chan *response) ([]byte, error) {
	// Wait for a response on the returned channel.
	r := <-f
	return r.result, r.err
}

// newFutureError returns a new future result channel that already has the
// passed error waiting on the channel with the reply set to nil.  This is
// useful to easily return errors from the various Async functions.
func newFutureError(err error) chan *response {
	responseChan := make(chan *response, 1)
	responseChan <- &response{err: err}
	return responseChan
}
