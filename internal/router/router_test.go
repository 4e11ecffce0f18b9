package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"turnstone_admin_v1/internal/controller"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestEngine 注册完整路由表
// 预检和参数校验在进 service 前就返回，这里不需要真实依赖
func setupTestEngine() *gin.Engine {
	r := gin.New()
	InitRoutes(r,
		controller.NewAuthController(nil),
		controller.NewStoreController(nil),
		controller.NewProductController(nil, nil),
		controller.NewShippingController(nil),
		controller.NewSizeController(nil),
		controller.NewCategoryController(nil),
		controller.NewGalleryController(nil),
		controller.NewOrderController(nil, nil),
		controller.NewCheckoutController(nil, nil),
		controller.NewUploadController(nil),
	)
	return r
}

// 浏览器跨域结账先发 OPTIONS 预检，必须拿到 204 和 CORS 头
func TestPublicRoutes_Preflight(t *testing.T) {
	router := setupTestEngine()

	for _, path := range []string{
		"/api/v1/stores/1/checkout",
		"/api/v1/payment/webhook",
	} {
		req, _ := http.NewRequest("OPTIONS", path, nil)
		req.Header.Set("Origin", "https://store.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code, "path=%s", path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), "path=%s", path)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "OPTIONS", "path=%s", path)
	}
}

// 预检后正式请求也带 CORS 头
func TestPublicRoutes_CheckoutHasCORSHeaders(t *testing.T) {
	router := setupTestEngine()

	req, _ := http.NewRequest("POST", "/api/v1/stores/1/checkout", strings.NewReader("not-json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 参数不合法 400，但跨域头必须在
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
