package classy

import (
	"context"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatal("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Timeout: time.Second}
	c := &Client{http: &http.Client{}}
	if err := WithHTTPClient(hc)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http != hc {
		t.Fatal("http client not replaced")
	}
	if err := WithHTTPClient(nil)(c); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestWithAPIURLAndToken_RejectEmpty(t *testing.T) {
	t.Parallel()
	c := &Client{http: &http.Client{}}
	if err := WithAPIURL("")(c); err == nil {
		t.Fatal("expected error for empty url")
	}
	if err := WithAPIToken("")(c); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestWithDebugLogging_WrapsTransport(t *testing.T) {
	t.Parallel()
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("dev.cz",
		WithAPIURL("http://example.com"),
		WithAPIToken("tok"),
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatal("base transport not invoked")
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("CLASSY_DEBUG", "true")
	c, err := New("dev.cz", WithAPIURL("http://example.com"), WithAPIToken("tok"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	akt, ok := c.http.Transport.(*apiKeyTransport)
	if !ok {
		t.Fatalf("expected apiKeyTransport, got %T", c.http.Transport)
	}
	mt, ok := akt.base.(*metricsTransport)
	if !ok {
		t.Fatalf("expected metricsTransport, got %T", akt.base)
	}
	if _, ok := mt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport when CLASSY_DEBUG=true, got %T", mt.base)
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	t.Parallel()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := dt.RoundTrip(req); err == nil {
		t.Fatal("expected error from underlying transport")
	}
}
