package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

const userAgent = "crousmenu/1.0"

type Response struct {
	Status     string
	StatusCode int
	Body       []byte
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Proxy is an optional proxy URL (socks5://host:port) every request dials through.
	Proxy string
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(opt Options) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opt.Proxy != "" {
		u, err := url.Parse(opt.Proxy)
		if err != nil {
			return nil, fmt.Errorf("proxy url: %w", err)
		}
		d, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("proxy dialer: %w", err)
		}
		transport.Proxy = nil
		if cd, ok := d.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return d.Dial(network, addr)
			}
		}
	}
	return &Client{
		baseURL: opt.BaseURL,
		http:    &http.Client{Timeout: opt.Timeout, Transport: transport},
	}, nil
}

// Send performs a GET on baseURL+path and returns the raw response. Transport
// failures come back classified as ConnectionError, TimeoutError or RequestError.
func (c *Client) Send(ctx context.Context, path string) (*Response, error) {
	target := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &RequestError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	t0 := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		cerr := classify(target, err)
		log.WithError(err).WithField("url", target).Warn("[httpclient] Request failed")
		return nil, cerr
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, classify(target, err)
	}
	log.WithFields(log.Fields{
		"url":      target,
		"status":   res.StatusCode,
		"bytes":    len(data),
		"duration": time.Since(t0),
	}).Debug("[httpclient] Response received")

	return &Response{
		Status:     res.Status,
		StatusCode: res.StatusCode,
		Body:       data,
	}, nil
}

// Get fetches path and returns the envelope's data field.
// A 404 or an unparsable body yields ErrNotFound; any other non-2xx status
// yields a RequestError.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	res, err := c.Send(ctx, path)
	if err != nil {
		return nil, err
	}
	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &RequestError{
			URL: c.baseURL + path,
			Err: fmt.Errorf("%s for url: %s", res.Status, c.baseURL+path),
		}
	}
	return Unwrap(res.Body)
}

// GetJSON is Get followed by decoding data into v. A payload that does not
// match v is reported as ErrNotFound.
func (c *Client) GetJSON(ctx context.Context, path string, v any) error {
	data, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.WithError(err).WithField("path", path).Debug("[httpclient] Unexpected payload shape")
		return ErrNotFound
	}
	return nil
}
