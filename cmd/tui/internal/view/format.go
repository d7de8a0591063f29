package view

import (
	"context"
	"time"

	"github.com/loqeyusa/housingsupport/internal/money"
)

const dbTimeout = 5 * time.Second

// FormatAmount colors negative amounts red and the rest green.
func FormatAmount(m money.Money) string {
	if m.IsNegative() {
		return badStyle.Render(m.String())
	}

	return goodStyle.Render(m.String())
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
