// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// key is unexported so no other package can collide with or forge these values.
type key[T any] struct{ name string }

func (k key[T]) get(ctx context.Context) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

var (
	userKey    = key[uuid.UUID]{"user"}
	requestKey = key[string]{"request"}
	tokenKey   = key[string]{"bearer"}
)

// WithUserID marks the context as belonging to an authenticated user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey, id)
}

// UserIDFromCtx reports the authenticated user. A stored uuid.Nil counts as
// anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := userKey.get(ctx)
	return id, ok && id != uuid.Nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey, id)
}

// RequestIDFromCtx is "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := requestKey.get(ctx)
	return id
}

// WithAccessToken keeps the raw bearer token for calls made on the user's
// behalf, such as a provider sign-out.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func AccessTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := tokenKey.get(ctx)
	return token, ok && token != ""
}
