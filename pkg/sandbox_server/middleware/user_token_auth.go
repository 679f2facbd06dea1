package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/auth"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

type UserTokenAuth struct {
	auth auth.UserManager
}

func NewUserTokenAuth(auth auth.UserManager) *UserTokenAuth {
	return &UserTokenAuth{
		auth: auth,
	}
}

func (a *UserTokenAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := getBearerToken(r)
		if token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		ts := time.Now().Unix()
		user, err := a.auth.TokenAuthorization(ctx, ts, token)
		if errors.Is(err, model.ErrUserError) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		} else if err != nil {
			http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, USER, user)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the user Authenticate placed in ctx.
func UserFromContext(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(USER).(auth.User)
	return user, ok
}

func getBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
