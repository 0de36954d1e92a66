package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"resto-backend/internal/timeutil"
)

// requestRecord is one access-log line, written off the request path
type requestRecord struct {
	method   string
	path     string
	status   int
	duration time.Duration
	ip       string
}

// RequestLogging writes access logs through a buffered channel so slow log
// sinks never block request handling.
type RequestLogging struct {
	logChan chan requestRecord
}

func NewRequestLogging() *RequestLogging {
	m := &RequestLogging{
		logChan: make(chan requestRecord, 1000),
	}
	go m.writer()
	return m
}

func (m *RequestLogging) writer() {
	for rec := range m.logChan {
		log.Printf("[HTTP] %s %s %d %s %s", rec.method, rec.path, rec.status, rec.duration.Round(time.Millisecond), rec.ip)
	}
}

func (m *RequestLogging) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shouldSkipLogging(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := timeutil.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		rec := requestRecord{
			method:   r.Method,
			path:     sanitizePath(r.URL.Path),
			status:   wrapped.statusCode,
			duration: time.Since(start),
			ip:       getClientIP(r),
		}

		select {
		case m.logChan <- rec:
		default:
			// Buffer full, drop rather than block the request
		}
	})
}

// Close flushes pending logs
func (m *RequestLogging) Close() {
	close(m.logChan)
}

func shouldSkipLogging(path string) bool {
	skipPaths := []string{
		"/health",
		"/metrics",
		"/favicon.ico",
	}
	for _, skip := range skipPaths {
		if strings.HasPrefix(path, skip) {
			return true
		}
	}
	return false
}

func sanitizePath(path string) string {
	if idx := strings.Index(path, "?"); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 500 {
		path = path[:500]
	}
	return path
}

func getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
