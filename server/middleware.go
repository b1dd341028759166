package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
	"github.com/Bios-Marcel/donatehub/session"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type contextKey struct{}

var sessionKey = contextKey{}

// sessionFrom returns the session loadSession attached to the request.
func sessionFrom(request *http.Request) *data.Session {
	session, _ := request.Context().Value(sessionKey).(*data.Session)
	if session == nil {
		return data.NewSession("")
	}
	return session
}

// loadSession resolves the session cookie. Browsers without a valid cookie
// get a fresh token.
func (server *Server) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		token, err := server.cookies.read(request)
		if err != nil {
			token = server.sessions.Create()
			if errWrite := server.cookies.write(responseWriter, token); errWrite != nil {
				server.internalError(responseWriter, request, errWrite)
				return
			}
		}

		session, err := server.sessions.Load(token)
		if err != nil {
			session, err = server.replaceCorrupt(responseWriter, token, err)
		}
		if err != nil {
			server.internalError(responseWriter, request, err)
			return
		}

		ctx := context.WithValue(request.Context(), sessionKey, session)
		next.ServeHTTP(responseWriter, request.WithContext(ctx))
	})
}

// replaceCorrupt drops a session that can't be decoded anymore and hands
// the browser a fresh token, so it continues logged out instead of failing
// on every request. Other errors are returned unchanged.
func (server *Server) replaceCorrupt(responseWriter http.ResponseWriter, token string, cause error) (*data.Session, error) {
	if !errors.Is(cause, session.ErrCorruptSession) {
		return nil, cause
	}

	server.logger.Warn("dropping unreadable session", zap.Error(cause))
	if err := server.sessions.Logout(token); err != nil {
		return nil, err
	}

	token = server.sessions.Create()
	if err := server.cookies.write(responseWriter, token); err != nil {
		return nil, err
	}
	return server.sessions.Load(token)
}

// guardRoutes redirects every request the route guard doesn't let through.
func (server *Server) guardRoutes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		session := sessionFrom(request)
		decision := guard.Decide(session.IsLoggedIn, session.Mode, request.URL.Path)
		if !decision.Allowed() {
			server.logger.Debug("guard redirect",
				zap.String("path", request.URL.Path),
				zap.String("mode", string(session.Mode)),
				zap.Bool("logged_in", session.IsLoggedIn),
				zap.String("to", decision.Redirect))
			http.Redirect(responseWriter, request, decision.Redirect, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(responseWriter, request)
	})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			wrapped := middleware.NewWrapResponseWriter(responseWriter, request.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(wrapped, request)
			logger.Info("request",
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
				zap.Int("status", wrapped.Status()),
				zap.Int("bytes", wrapped.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote", request.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(request.Context())))
		})
	}
}

type visitor struct {
	limiter *rate.Limiter
	last    time.Time
}

// ipLimiter throttles requests per client IP. Idle visitors are dropped
// whenever a new one is added, so there is no cleanup goroutine. At most
// maxVisitors are tracked, addresses beyond that share overflow.
type ipLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	overflow    *rate.Limiter
	limit       rate.Limit
	burst       int
	maxVisitors int
	idle        time.Duration
}

func newIPLimiter(rps float64, burst, maxVisitors int) *ipLimiter {
	return &ipLimiter{
		visitors:    make(map[string]*visitor),
		overflow:    rate.NewLimiter(rate.Limit(rps), burst),
		limit:       rate.Limit(rps),
		burst:       burst,
		maxVisitors: maxVisitors,
		idle:        30 * time.Minute,
	}
}

func (limiter *ipLimiter) allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	entry, ok := limiter.visitors[ip]
	if !ok {
		for key, other := range limiter.visitors {
			if now.Sub(other.last) > limiter.idle {
				delete(limiter.visitors, key)
			}
		}
		if len(limiter.visitors) >= limiter.maxVisitors {
			return limiter.overflow.Allow()
		}
		entry = &visitor{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.visitors[ip] = entry
	}
	entry.last = now
	return entry.limiter.Allow()
}

// throttle only limits form submissions, rendering the forms stays free.
func (limiter *ipLimiter) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodPost && !limiter.allow(clientIP(request)) {
			http.Error(responseWriter, "Too many attempts. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(responseWriter, request)
	})
}

// clientIP is the peer address. Forwarding headers only count when
// middleware.RealIP rewrote RemoteAddr, which the router does for trusted
// proxies alone.
func clientIP(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
