package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			path:           "/api/v1/raid/boss",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			path:           "/api/v1/raid/boss",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			path:           "/api/v1/raid/tap",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Version",
			providedKey:    "",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/raid/boss", nil)
	rec := httptest.NewRecorder()

	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, req)

	headers := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("expected %s=%q, got %q", name, want, got)
		}
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expected       string
	}{
		{
			name:       "No proxy",
			remoteAddr: "198.51.100.7:1234",
			expected:   "198.51.100.7",
		},
		{
			name:           "Untrusted proxy header ignored",
			remoteAddr:     "198.51.100.7:1234",
			forwardedFor:   "203.0.113.9",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.7",
		},
		{
			name:           "Trusted proxy uses rightmost forwarded entry",
			remoteAddr:     "10.0.0.1:1234",
			forwardedFor:   "203.0.113.9, 198.51.100.7",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			if got := extractIP(req, tt.trustedProxies); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSuspiciousActivityDetector_RateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < 1000; i++ {
		if !detector.RecordRequest("203.0.113.9") {
			t.Fatalf("request %d unexpectedly blocked", i)
		}
	}

	if detector.RecordRequest("203.0.113.9") {
		t.Error("expected request over the limit to be blocked")
	}

	// Other IPs are unaffected.
	if !detector.RecordRequest("198.51.100.7") {
		t.Error("expected fresh IP to be allowed")
	}
}
