package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/model"
)

type stubParser struct {
	principal model.Principal
	err       error
}

func (p stubParser) Parse(string) (model.Principal, error) {
	return p.principal, p.err
}

func newEngine(parser TokenParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.Nop()))
	r.GET("/me", Auth(parser), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID})
	})
	return r
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name   string
		header string
		parser stubParser
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer abc", parser: stubParser{err: errors.New("bad")}, want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer abc", parser: stubParser{principal: model.Principal{UserID: userID, Role: model.UserRoleAdmin}}, want: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			newEngine(tc.parser).ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRequestIDPropagation(t *testing.T) {
	engine := newEngine(stubParser{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if _, err := uuid.Parse(rec.Header().Get("X-Request-ID")); err != nil {
		t.Fatalf("expected generated uuid request id: %v", err)
	}
}
