package middleware

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"investmate/utils"
)

// In-memory rate limiting and login lockout. Per-process state only; intended
// to be swapped for Redis when the service runs with more than one replica.

type timestamps []int64 // unix nanos

func nowUnix() int64 { return time.Now().UnixNano() }

func getEnvDuration(key string, def time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return time.Duration(v) * time.Second
		}
	}
	return def
}

// IPRateLimiter implements per-IP fixed-window counters with optional
// trusted-proxy parsing of X-Forwarded-For / X-Real-IP.
type IPRateLimiter struct {
	max         int
	window      time.Duration
	mu          sync.Mutex
	state       map[string]timestamps
	cleanupTick time.Duration
	trustedCIDR []string
}

func NewIPRateLimiter(maxReq int, window time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		max:         maxReq,
		window:      window,
		state:       make(map[string]timestamps),
		cleanupTick: getEnvDuration("RATE_CLEANUP_SECONDS", 60*time.Second),
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		l.trustedCIDR = strings.Split(v, ",")
	}
	go l.cleanupLoop()
	return l
}

// clientIPGeneric returns the client IP string. If trustedCIDR is provided,
// forwarding headers are honored when the remote addr is inside one of the
// trusted CIDRs or IPs.
func clientIPGeneric(r *http.Request, trustedCIDR []string) string {
	remoteHost, _, _ := net.SplitHostPort(r.RemoteAddr)
	remoteIP := net.ParseIP(remoteHost)
	trusted := false
	for _, cidr := range trustedCIDR {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		if strings.Contains(cidr, "/") {
			if _, ipnet, err := net.ParseCIDR(cidr); err == nil {
				if remoteIP != nil && ipnet.Contains(remoteIP) {
					trusted = true
					break
				}
			}
			continue
		}
		if ip := net.ParseIP(cidr); ip != nil && remoteIP != nil && ip.Equal(remoteIP) {
			trusted = true
			break
		}
	}
	if trusted {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if len(parts) > 0 {
				return strings.TrimSpace(parts[0])
			}
		}
		if xr := r.Header.Get("X-Real-IP"); xr != "" {
			return strings.TrimSpace(xr)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (l *IPRateLimiter) allow(key string) (bool, int) {
	now := nowUnix()
	cutoff := now - l.window.Nanoseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.state[key]
	kept := ts[:0]
	for _, t := range ts {
		if t > cutoff {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.max {
		l.state[key] = kept
		return false, 0
	}
	kept = append(kept, now)
	l.state[key] = kept
	return true, l.max - len(kept)
}

// Middleware applies the per-IP limit and sets rate-limit headers.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIPGeneric(r, l.trustedCIDR)
		ok, remaining := l.allow(ip)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.max))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{Success: false, Message: "Terlalu banyak permintaan, coba lagi nanti"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) cleanupLoop() {
	for range time.Tick(l.cleanupTick) {
		cutoff := nowUnix() - l.window.Nanoseconds()
		l.mu.Lock()
		for k, ts := range l.state {
			kept := ts[:0]
			for _, t := range ts {
				if t > cutoff {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(l.state, k)
			} else {
				l.state[k] = kept
			}
		}
		l.mu.Unlock()
	}
}

// UserRateLimiter limits authenticated traffic per user id with separate read
// and write budgets. Falls back to IP keying when the request is anonymous.
type UserRateLimiter struct {
	reads  *IPRateLimiter
	writes *IPRateLimiter
}

func NewUserRateLimiter(maxRead, maxWrite int, windowSec int) *UserRateLimiter {
	window := time.Duration(windowSec) * time.Second
	return &UserRateLimiter{
		reads:  NewIPRateLimiter(maxRead, window),
		writes: NewIPRateLimiter(maxWrite, window),
	}
}

func (l *UserRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := l.reads
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			limiter = l.writes
		}

		key := clientIPGeneric(r, limiter.trustedCIDR)
		if uid, ok := utils.GetUserID(r); ok && uid != 0 {
			key = "u:" + strconv.FormatUint(uint64(uid), 10)
		}

		ok, remaining := limiter.allow(key)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.max))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{Success: false, Message: "Terlalu banyak permintaan, coba lagi nanti"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Login lockout: after maxFailedLogins failed attempts within the lockout
// window the account is blocked until the window passes.

const maxFailedLogins = 5

var (
	lockoutMu     sync.Mutex
	failedLogins  = make(map[uint]timestamps)
	lockoutWindow = getEnvDuration("LOGIN_LOCKOUT_SECONDS", 15*time.Minute)
)

// IsAccountLocked reports whether the user is locked out and for how long.
func IsAccountLocked(userID uint) (bool, time.Duration) {
	lockoutMu.Lock()
	defer lockoutMu.Unlock()

	cutoff := nowUnix() - lockoutWindow.Nanoseconds()
	ts := failedLogins[userID]
	kept := ts[:0]
	for _, t := range ts {
		if t > cutoff {
			kept = append(kept, t)
		}
	}
	failedLogins[userID] = kept

	if len(kept) < maxFailedLogins {
		return false, 0
	}
	oldest := kept[0]
	retry := time.Duration(oldest+lockoutWindow.Nanoseconds()-nowUnix()) * time.Nanosecond
	if retry < 0 {
		retry = 0
	}
	return true, retry
}

// RecordFailedLogin registers one failed attempt for lockout tracking.
func RecordFailedLogin(userID uint) {
	lockoutMu.Lock()
	defer lockoutMu.Unlock()
	failedLogins[userID] = append(failedLogins[userID], nowUnix())
}

// ResetFailedLogin clears the counter after a successful login.
func ResetFailedLogin(userID uint) {
	lockoutMu.Lock()
	defer lockoutMu.Unlock()
	delete(failedLogins, userID)
}
