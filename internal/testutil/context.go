package testutil

import (
	"context"

	"github.com/anishchandragiri369/studio-sub000/internal/types"
)

// SetupContext returns a context carrying a default test identity
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetUserID(ctx, types.DefaultUserID)
	return ctx
}
