package httpclient

import (
	"errors"
	"net"
	"os"
	"syscall"
)

// ErrNotFound covers a 404, an unparsable body and a payload of the wrong shape.
var ErrNotFound = errors.New("not found")

// ConnectionError means no network path to the host (DNS, refused, unreachable).
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string { return "connection failed: " + e.Err.Error() }
func (e *ConnectionError) Unwrap() error { return e.Err }

// TimeoutError means the host did not answer within the client timeout.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string { return "timeout: " + e.Err.Error() }
func (e *TimeoutError) Unwrap() error { return e.Err }

// RequestError is any other transport failure, including unexpected HTTP statuses.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }
func (e *RequestError) Unwrap() error { return e.Err }

func classify(target string, err error) error {
	if isTimeout(err) {
		return &TimeoutError{URL: target, Err: err}
	}
	if isConnection(err) {
		return &ConnectionError{URL: target, Err: err}
	}
	return &RequestError{URL: target, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

func isConnection(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// Describe turns a fetch error into the line shown to the user. It returns ""
// for ErrNotFound, which callers report in their own words.
func Describe(err error) string {
	if err == nil || errors.Is(err, ErrNotFound) {
		return ""
	}
	var (
		apiErr  *APIError
		timeout *TimeoutError
		conn    *ConnectionError
		req     *RequestError
	)
	switch {
	case errors.As(err, &apiErr):
		return "Erreur API : " + apiErr.Message
	case errors.As(err, &timeout):
		return "Erreur : l'API ne répond pas (timeout)."
	case errors.As(err, &conn):
		return "Erreur : impossible de se connecter à l'API. Vérifie ta connexion internet."
	case errors.As(err, &req):
		return "Erreur : " + req.Error()
	}
	return "Erreur : " + err.Error()
}
