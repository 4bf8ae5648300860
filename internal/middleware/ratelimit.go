package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client IP. The bucket refills at
// max/window and holds at most max tokens, so a client gets max requests
// per window and is throttled beyond that.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket

	limit   rate.Limit
	burst   int
	window  time.Duration
	message string
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewClientLimiter(max int, window time.Duration, message string) *ClientLimiter {
	l := &ClientLimiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Every(window / time.Duration(max)),
		burst:   max,
		window:  window,
		message: message,
	}
	go l.cleanupLoop()
	return l
}

func (l *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			// Throttling responses deliberately skip the standard envelope.
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": l.message,
			})
			return
		}
		c.Next()
	}
}

func (l *ClientLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.clients[clientIP]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[clientIP] = b
	}
	b.lastSeen = time.Now()
	return b.limiter.Allow()
}

// cleanupLoop drops buckets idle for longer than the window; their state no
// longer matters because an idle bucket is full again.
func (l *ClientLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, b := range l.clients {
			if b.lastSeen.Before(cutoff) {
				delete(l.clients, ip)
			}
		}
		l.mu.Unlock()
	}
}
