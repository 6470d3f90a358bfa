package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xihu-next/internal/config"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if strings.TrimSpace(generated) == "" {
		t.Fatalf("generated request id should not be blank")
	}
}

func TestUserJWTAuthMiddlewareMissingSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(UserJWTAuthMiddleware("", nil))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("status_code want 401 got %d", resp.StatusCode)
	}
}

func TestOptionalUserAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	secret := "optional-auth-secret"
	r := gin.New()
	r.Use(OptionalUserAuthMiddleware(secret))
	r.GET("/cart", func(c *gin.Context) {
		userID := uint(0)
		if value, ok := c.Get("user_id"); ok {
			userID, _ = value.(uint)
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	// 无凭证时放行
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"user_id":0`) {
		t.Fatalf("anonymous request should carry no user identity, got %s", w.Body.String())
	}

	// 合法凭证注入用户身份
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = secret
	cfg.UserJWT.ExpireHours = 1
	svc := service.NewUserAuthService(cfg, nil)
	token, _, err := svc.GenerateUserJWT(&models.User{ID: 7, Username: "alice"})
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w2, req2)
	if !strings.Contains(w2.Body.String(), `"user_id":7`) {
		t.Fatalf("authorized request should carry user identity, got %s", w2.Body.String())
	}

	// 篡改凭证按匿名处理
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req3.Header.Set("Authorization", "Bearer "+token+"x")
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusOK {
		t.Fatalf("tampered token status want 200 got %d", w3.Code)
	}
	if !strings.Contains(w3.Body.String(), `"user_id":0`) {
		t.Fatalf("tampered token should fall back to anonymous, got %s", w3.Body.String())
	}
}

func TestParseUserClaimsRejectsWrongAlgorithm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	claims := &service.UserJWTClaims{
		UserID:   9,
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	if _, ok := parseUserClaims(c, "secret"); ok {
		t.Fatalf("HS512 token should be rejected")
	}
}
