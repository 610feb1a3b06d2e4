package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/Boatschool/drfirst-business-case-generator-sub005/pkg/statemachine"
)

func TestExtractAuthContext(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		expect  AuthContext
	}{
		{
			name: "full identity",
			headers: map[string]string{
				"X-Forwarded-User":  "u-123",
				"X-Forwarded-Email": "dev@example.com",
				"X-Forwarded-Role":  "DEVELOPER",
			},
			expect: AuthContext{UserID: "u-123", Email: "dev@example.com", SystemRole: statemachine.RoleDeveloper},
		},
		{
			name: "email falls back as user id",
			headers: map[string]string{
				"X-Forwarded-Email": "dev@example.com",
			},
			expect: AuthContext{UserID: "dev@example.com", Email: "dev@example.com"},
		},
		{
			name:    "no identity",
			headers: map[string]string{},
			expect:  AuthContext{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			got := extractAuthContext(c)
			assert.Equal(t, tt.expect, got)
			assert.Equal(t, tt.expect.UserID != "", got.Authenticated())
		})
	}
}
