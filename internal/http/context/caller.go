package context

import (
	"context"

	"github.com/bornholm/taskbot/internal/core/model"
)

type contextKey string

const keyCaller contextKey = "caller"

func Caller(ctx context.Context) *model.Caller {
	caller, ok := ctx.Value(keyCaller).(*model.Caller)
	if !ok {
		return nil
	}

	return caller
}

func SetCaller(ctx context.Context, caller *model.Caller) context.Context {
	return context.WithValue(ctx, keyCaller, caller)
}
