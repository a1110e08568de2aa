package middleware

import (
	"context"

	"github.com/ryazanov/inkstudio/internal/models"
)

// PayloadFromContext extracts the verified token payload stored by Auth
func PayloadFromContext(ctx context.Context) (*models.TokenPayload, bool) {
	payload, ok := ctx.Value(contextKeyPayload).(*models.TokenPayload)
	return payload, ok
}

// WithPayload returns a context carrying the verified token payload
func WithPayload(ctx context.Context, payload *models.TokenPayload) context.Context {
	return context.WithValue(ctx, contextKeyPayload, payload)
}
