package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
	"time"

	apperrors "github.com/zarazaex69/zik-landing/internal/services/landing/platform/errors"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestRequireMethodRejectsUnexpectedMethod(t *testing.T) {
	t.Parallel()

	h := RequireMethod(http.MethodGet, http.MethodPut)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPut} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(method, "/", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("%s status = %d, want %d", method, rr.Code, http.StatusNoContent)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, PUT, HEAD" {
		t.Fatalf("Allow = %q", got)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type = %q, want application/json", ct)
	}
	if body := rr.Body.String(); !strings.Contains(body, `"error":"method not allowed"`) {
		t.Fatalf("body = %q", body)
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || !strings.HasPrefix(seen, "zik-") {
		t.Fatalf("request id = %q", seen)
	}
	if rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("response id = %q, want %q", rr.Header().Get(RequestIDHeader), seen)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "req-1" {
		t.Fatalf("request id = %q, want req-1", got)
	}
}

func TestRecoverPanicWrites500AndLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := RecoverPanic(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/explode", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	for _, marker := range []string{"panic recovered", "path=/explode", "panic=boom"} {
		if !strings.Contains(buf.String(), marker) {
			t.Fatalf("log missing %q: %s", marker, buf.String())
		}
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	h := CORS("")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q", got)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/hello", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rr.Code)
	}

	rr = httptest.NewRecorder()
	CORS("https://zik.zarazaex.xyz")(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rr.Header().Get("Vary"); got != "Origin" {
		t.Fatalf("Vary = %q, want Origin", got)
	}
}

func TestWriteErrorUsesTypedStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteError(rr, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if body := rr.Body.String(); !strings.Contains(body, `"error":"missing"`) {
		t.Fatalf("body = %q", body)
	}

	rr = httptest.NewRecorder()
	WriteError(rr, errors.New("plain"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestWriteHelpersRejectNilWriter(t *testing.T) {
	t.Parallel()

	if err := WriteJSON(nil, http.StatusOK, nil); err == nil {
		t.Fatal("WriteJSON(nil) should fail")
	}
	if err := WriteContent(nil, http.StatusOK, "text/plain", nil); err == nil {
		t.Fatal("WriteContent(nil) should fail")
	}
}

func TestRateLimiterAllowsBurstThenBlocks(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	limiter := NewRateLimiter(60, 2)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("1.1.1.1") || !limiter.Allow("1.1.1.1") {
		t.Fatal("burst requests rejected")
	}
	if limiter.Allow("1.1.1.1") {
		t.Fatal("request beyond burst allowed")
	}
	if !limiter.Allow("2.2.2.2") {
		t.Fatal("other client blocked")
	}

	now = now.Add(time.Second)
	if !limiter.Allow("1.1.1.1") {
		t.Fatal("token not refilled after one second")
	}
}

func TestRateLimiterPrunesIdleVisitors(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	limiter := NewRateLimiter(60, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("1.1.1.1")
	limiter.Allow("2.2.2.2")
	if got := limiter.Visitors(); got != 2 {
		t.Fatalf("visitors = %d, want 2", got)
	}
	now = now.Add(defaultVisitorTTL + time.Second)
	limiter.Allow("3.3.3.3")
	if got := limiter.Visitors(); got != 1 {
		t.Fatalf("visitors after prune = %d, want 1", got)
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1, 1)
	h := RateLimit(limiter, TrustedProxies{}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", rr.Code)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After")
	}
}

func TestRateLimiterSweepsAtMostOncePerTTL(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	limiter := NewRateLimiter(60, 1)
	limiter.now = func() time.Time { return now }

	limiter.Allow("1.1.1.1")
	now = now.Add(defaultVisitorTTL)
	limiter.Allow("2.2.2.2")
	now = now.Add(2 * time.Second)
	// 1.1.1.1 is idle past the TTL but the last sweep is still recent.
	limiter.Allow("3.3.3.3")
	if got := limiter.Visitors(); got != 3 {
		t.Fatalf("visitors = %d, want 3", got)
	}
	now = now.Add(defaultVisitorTTL - 2*time.Second)
	limiter.Allow("3.3.3.3")
	if got := limiter.Visitors(); got != 2 {
		t.Fatalf("visitors after sweep = %d, want 2", got)
	}
}

func TestRateLimitIgnoresForwardedHeadersFromUntrustedPeer(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(1, 1)
	h := RateLimit(limiter, TrustedProxies{}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	allowed := 0
	for i := range 50 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.1.0.%d", i))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code == http.StatusNoContent {
			allowed++
		} else if rr.Code != http.StatusTooManyRequests {
			t.Fatalf("request %d status = %d", i, rr.Code)
		}
	}
	if allowed != 1 {
		t.Fatalf("allowed = %d, want 1", allowed)
	}
	if got := limiter.Visitors(); got != 1 {
		t.Fatalf("visitors = %d, want 1", got)
	}
}

func TestParseTrustedProxies(t *testing.T) {
	t.Parallel()

	proxies, err := ParseTrustedProxies([]string{" 10.0.0.0/8 ", "", "192.0.2.1", "::1"})
	if err != nil {
		t.Fatalf("ParseTrustedProxies() error = %v", err)
	}
	for _, raw := range []string{"10.20.30.40", "192.0.2.1", "::1", "::ffff:10.0.0.1"} {
		if !proxies.Trusts(netip.MustParseAddr(raw)) {
			t.Fatalf("Trusts(%s) = false", raw)
		}
	}
	if proxies.Trusts(netip.MustParseAddr("192.0.2.2")) {
		t.Fatal("Trusts(192.0.2.2) = true")
	}
	if _, err := ParseTrustedProxies([]string{"not-an-ip"}); err == nil {
		t.Fatal("expected error for invalid address")
	}
	if _, err := ParseTrustedProxies([]string{"10.0.0.0/99"}); err == nil {
		t.Fatal("expected error for invalid prefix")
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	proxies, err := ParseTrustedProxies([]string{"10.0.0.0/8"})
	if err != nil {
		t.Fatalf("ParseTrustedProxies() error = %v", err)
	}

	tests := []struct {
		name      string
		remote    string
		forwarded string
		realIP    string
		want      string
	}{
		{name: "untrusted peer", remote: "198.51.100.1:1234", forwarded: "198.51.100.9", realIP: "198.51.100.8", want: "198.51.100.1"},
		{name: "trusted peer without headers", remote: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "trusted peer real ip", remote: "10.0.0.1:1234", realIP: "198.51.100.2", want: "198.51.100.2"},
		{name: "trusted peer forwarded", remote: "10.0.0.1:1234", forwarded: "198.51.100.3", want: "198.51.100.3"},
		{name: "skips trusted hops", remote: "10.0.0.1:1234", forwarded: "198.51.100.4, 198.51.100.3, 10.0.0.2", want: "198.51.100.3"},
		{name: "invalid hop stops walk", remote: "10.0.0.1:1234", forwarded: "198.51.100.4, junk", realIP: "198.51.100.5", want: "198.51.100.5"},
		{name: "remote without port", remote: "198.51.100.6", want: "198.51.100.6"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			if got := proxies.ClientIP(req); got != tc.want {
				t.Fatalf("ClientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
