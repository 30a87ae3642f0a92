package middleware

type ContextKey string

const (
	ContextUserID ContextKey = "user_id"
	ContextRole   ContextKey = "role"
	ContextEmail  ContextKey = "email"
)
