package utils

import (
	"context"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal_email"
)

// SetPrincipalContext stores the authenticated user's email on the context.
// The email is the only identity the core layers ever see.
func SetPrincipalContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, PrincipalKey, email)
}

func GetPrincipalFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(PrincipalKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}
