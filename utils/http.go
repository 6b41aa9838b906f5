package utils

import (
	"net/http"
	"time"
)

const (
	UserAgent = "Steamlens/1.0 (steamlens@fastmail.com)"
)

type UARoundtripper struct {
	RT http.RoundTripper
}

func (uart *UARoundtripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Add("User-Agent", UserAgent)
	rt := uart.RT
	if rt == nil {
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(req)
}

// NewHTTPClient returns the shared outbound client. The timeout stops a hung
// Steam call from stalling an entire lookup.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &UARoundtripper{},
		Timeout:   10 * time.Second,
	}
}
