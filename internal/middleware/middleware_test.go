package middleware

import (
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/repository"
	"educanvas_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := repository.NewUserRepository([]model.User{{ID: "u1", Name: "Alex"}, {ID: "u2", Name: "Sam"}})

	r := gin.New()
	r.Use(RequestID(), CurrentUser(users, "u1"))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserIDFromContext(c))
	})
	return r
}

func TestCurrentUser(t *testing.T) {
	r := newRouter()

	cases := []struct {
		header   string
		wantCode int
		wantBody string
	}{
		{"", http.StatusOK, "u1"},
		{"u2", http.StatusOK, "u2"},
		{"  u2 ", http.StatusOK, "u2"},
		{"ghost", http.StatusUnauthorized, ""},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if tc.header != "" {
			req.Header.Set(util.HeaderUserID, tc.header)
		}
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.wantCode, w.Code, "header %q", tc.header)
		if tc.wantBody != "" {
			assert.Equal(t, tc.wantBody, w.Body.String())
		}
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	_, err := uuid.Parse(w.Header().Get(util.HeaderRequestID))
	assert.NoError(t, err)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(util.HeaderRequestID, "trace-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get(util.HeaderRequestID))
}

func TestRequestIDOnRejectedRequest(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(util.HeaderUserID, "ghost")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get(util.HeaderRequestID))
}
