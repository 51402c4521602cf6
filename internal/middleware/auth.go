package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-connector/pkg/utils"
)

// BearerAuth пропускает запрос только с заголовком "Authorization: Bearer <token>".
// С пустым token проверка выключена.
func BearerAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="marketplace-connector"`)
				utils.WriteError(w, utils.CodeUnauthorized, "invalid or missing bearer token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
