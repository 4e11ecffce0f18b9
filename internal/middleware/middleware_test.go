package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== JWT 测试 ====================

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Subject != "access" {
		t.Errorf("subject = %s, want access", claims.Subject)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("伪造 token 必须解析失败")
	}
}

func TestJWTAuth(t *testing.T) {
	router := gin.New()
	router.GET("/protected", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})

	// 不带 token → 401
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("无 token 状态码 = %d, want 401", w.Code)
	}

	// 带合法 token → 200
	token, err := GenerateAccessToken(7, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("合法 token 状态码 = %d, want 200, body = %s", w.Code, w.Body.String())
	}
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	router := gin.New()
	router.GET("/protected", JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// refresh token 不能当 access token 用
	refresh, err := GenerateRefreshToken(7, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("refresh token 状态码 = %d, want 401", w.Code)
	}
}

// ==================== 限流测试 ====================

func TestActionRateLimiter(t *testing.T) {
	limiter := &ActionRateLimiter{}

	if result := limiter.Check("k1", 100*time.Millisecond); !result.Allowed {
		t.Fatal("第一次必须放行")
	}
	if result := limiter.Check("k1", 100*time.Millisecond); result.Allowed {
		t.Fatal("冷却期内必须拦截")
	}
	// 不同 key 互不影响
	if result := limiter.Check("k2", 100*time.Millisecond); !result.Allowed {
		t.Fatal("不同 key 不应被拦截")
	}

	limiter.Reset("k1")
	if result := limiter.Check("k1", 100*time.Millisecond); !result.Allowed {
		t.Fatal("Reset 后必须放行")
	}
}

func TestThrottle(t *testing.T) {
	router := gin.New()
	router.POST("/checkout", Throttle("test-checkout", time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/checkout", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("第一次状态码 = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/checkout", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("第二次状态码 = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 响应缺少 Retry-After 头")
	}
}

// ==================== CORS 测试 ====================

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.POST("/api", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("预检状态码 = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("缺少 Access-Control-Allow-Origin 头")
	}
}
