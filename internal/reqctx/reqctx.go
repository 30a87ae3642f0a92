package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keyUserEmail
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, keyUserEmail, email)
}

func GetUserEmail(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyUserEmail).(string)
	return v, ok
}
