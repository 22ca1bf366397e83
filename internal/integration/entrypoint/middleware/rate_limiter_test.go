package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit within a window", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !limiter.allow("10.0.0.1") {
				t.Fatalf("expected attempt %d to be allowed", i+1)
			}
		}
		if limiter.allow("10.0.0.1") {
			t.Error("expected attempt over the limit to be blocked")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)

		if !limiter.allow("10.0.0.1") {
			t.Fatal("expected first key to be allowed")
		}
		if !limiter.allow("10.0.0.2") {
			t.Error("expected a different key to have its own window")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		limiter := NewRateLimiter(1, 10*time.Millisecond)

		if !limiter.allow("10.0.0.1") {
			t.Fatal("expected first attempt to be allowed")
		}
		if limiter.allow("10.0.0.1") {
			t.Fatal("expected second attempt to be blocked")
		}

		time.Sleep(20 * time.Millisecond)

		if !limiter.allow("10.0.0.1") {
			t.Error("expected attempt after window expiry to be allowed")
		}
	})

	t.Run("Reset clears all state", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)

		limiter.allow("10.0.0.1")
		limiter.Reset()

		if !limiter.allow("10.0.0.1") {
			t.Error("expected attempt after Reset to be allowed")
		}
	})

	t.Run("Cleanup drops expired entries only", func(t *testing.T) {
		limiter := NewRateLimiter(1, 10*time.Millisecond)
		limiter.allow("10.0.0.1")

		time.Sleep(20 * time.Millisecond)
		limiter.Cleanup()

		if len(limiter.entries) != 0 {
			t.Errorf("expected no entries after cleanup, got %d", len(limiter.entries))
		}
	})
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	doRequest := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/login", nil)
		request.RemoteAddr = "10.0.0.1:1234"
		engine.ServeHTTP(recorder, request)
		return recorder
	}

	if recorder := doRequest(); recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	recorder := doRequest()
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", recorder.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if body["message"] != "Too many requests. Please try again later." {
		t.Errorf("unexpected message %q", body["message"])
	}
}
