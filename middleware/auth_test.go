package middleware

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// tokenWithRole tạo token có payload userinfo như token thật,
// chữ ký không được kiểm tra ở tầng middleware
func tokenWithRole(role int) string {
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf(`{"userinfo":{"userid":7,"role":%d}}`, role)))
	return "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig"
}

func newGatedRouter(roles ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/gated", AuthMiddleware(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/gated", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRoleGates(t *testing.T) {
	t.Run("thiếu Authorization header", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("mong đợi 401, nhận %d", w.Code)
		}
	})

	t.Run("token hỏng", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1), "not-a-token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("mong đợi 401, nhận %d", w.Code)
		}
	})

	// Đặt lịch chỉ dành cho admin và quản lý ca
	t.Run("route 1,3: điều dưỡng bị chặn", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1, 3), tokenWithRole(2))
		if w.Code != http.StatusForbidden {
			t.Fatalf("mong đợi 403, nhận %d", w.Code)
		}
	})

	t.Run("route 1,3: quản lý ca được phép", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1, 3), tokenWithRole(3))
		if w.Code != http.StatusOK {
			t.Fatalf("mong đợi 200, nhận %d", w.Code)
		}
	})

	// Đổi trạng thái giường chỉ dành cho admin
	t.Run("route 1: điều dưỡng bị chặn", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1), tokenWithRole(2))
		if w.Code != http.StatusForbidden {
			t.Fatalf("mong đợi 403, nhận %d", w.Code)
		}
	})

	t.Run("route 1: admin được phép", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1), tokenWithRole(1))
		if w.Code != http.StatusOK {
			t.Fatalf("mong đợi 200, nhận %d", w.Code)
		}
	})

	// Check-in mở cho cả ba vai trò nội bộ
	t.Run("route 1,2,3: cả ba vai trò được phép", func(t *testing.T) {
		for _, role := range []int{1, 2, 3} {
			w := requestWithToken(newGatedRouter(1, 2, 3), tokenWithRole(role))
			if w.Code != http.StatusOK {
				t.Fatalf("role %d: mong đợi 200, nhận %d", role, w.Code)
			}
		}
	})

	t.Run("route 1,2,3: bệnh nhân bị chặn", func(t *testing.T) {
		w := requestWithToken(newGatedRouter(1, 2, 3), tokenWithRole(0))
		if w.Code != http.StatusForbidden {
			t.Fatalf("mong đợi 403, nhận %d", w.Code)
		}
	})
}
