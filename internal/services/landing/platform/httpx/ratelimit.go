package httpx

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	apperrors "github.com/zarazaex69/zik-landing/internal/services/landing/platform/errors"
	"golang.org/x/time/rate"
)

const defaultVisitorTTL = 5 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perMinute requests per IP with the given burst.
func NewRateLimiter(perMinute int, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = perMinute
	}
	return &RateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    burst,
		ttl:      defaultVisitorTTL,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Allow reports whether key may proceed now. Idle visitors are swept at
// most once per TTL.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.ttl {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (l *RateLimiter) sweep(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

// Visitors returns the number of tracked clients.
func (l *RateLimiter) Visitors() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// TrustedProxies lists the peers whose forwarding headers are believed.
// The zero value trusts nobody.
type TrustedProxies struct {
	prefixes []netip.Prefix
}

// ParseTrustedProxies accepts bare addresses and CIDR ranges.
func ParseTrustedProxies(values []string) (TrustedProxies, error) {
	var proxies TrustedProxies
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if strings.Contains(value, "/") {
			prefix, err := netip.ParsePrefix(value)
			if err != nil {
				return TrustedProxies{}, fmt.Errorf("parse trusted proxy %q: %w", value, err)
			}
			proxies.prefixes = append(proxies.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(value)
		if err != nil {
			return TrustedProxies{}, fmt.Errorf("parse trusted proxy %q: %w", value, err)
		}
		addr = addr.Unmap()
		proxies.prefixes = append(proxies.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return proxies, nil
}

// Trusts reports whether addr belongs to a trusted proxy.
func (p TrustedProxies) Trusts(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range p.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the remote host. Forwarding headers are consulted only
// when the peer is trusted: X-Forwarded-For is walked right to left past
// trusted hops, then X-Real-IP.
func (p TrustedProxies) ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer, err := netip.ParseAddr(host)
	if err != nil || !p.Trusts(peer) {
		return host
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for idx := len(hops) - 1; idx >= 0; idx-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[idx]))
		if err != nil {
			break
		}
		if !p.Trusts(hop) {
			return hop.Unmap().String()
		}
	}
	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}
	return host
}

// RateLimit rejects clients that exceed the limiter with 429.
func RateLimit(limiter *RateLimiter, proxies TrustedProxies, logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.ClientIP(r)
			if !limiter.Allow(ip) {
				logger.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("ip", ip),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "60")
				WriteError(w, apperrors.E(apperrors.KindRateLimited, "rate limit exceeded"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
