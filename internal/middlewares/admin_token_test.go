package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminTokenMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "matching token passes",
			configuredKey:  "secret-token",
			providedKey:    "secret-token",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token rejected",
			configuredKey:  "secret-token",
			providedKey:    "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "mismatched token rejected",
			configuredKey:  "secret-token",
			providedKey:    "wrong-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token with extra prefix rejected",
			configuredKey:  "secret-token",
			providedKey:    "Bearer secret-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token differing in case rejected",
			configuredKey:  "secret-token",
			providedKey:    "Secret-Token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := AdminTokenMiddleware(tt.configuredKey)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/save", nil)
			if tt.providedKey != "" {
				req.Header.Set("Authorization", tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			}
		})
	}
}
