// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	operatorKey ctxKey = iota
	roleKey
	requestIDKey
)

func WithOperatorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, operatorKey, id)
}

// OperatorIDFromCtx reports the authenticated operator. uuid.Nil is treated
// as absent.
func OperatorIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(operatorKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx returns "" when no role was stored.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
