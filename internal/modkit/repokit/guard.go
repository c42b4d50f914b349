package repokit

import (
	"context"
	"time"

	perr "filmnames/internal/platform/errors"
)

// GuardTimeout applies when ctx has no deadline of its own
const GuardTimeout = 5 * time.Second

// Guard checks backends are reachable before a run starts; failure is ErrorCodeUnavailable
func Guard(ctx context.Context, st interface{ Guard(context.Context) error }) error {
	if st == nil {
		return perr.Unavailablef("guard: no store")
	}
	if _, set := ctx.Deadline(); !set {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	return perr.WrapIf(st.Guard(ctx), perr.ErrorCodeUnavailable, "backends not ready")
}
