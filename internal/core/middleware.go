package core

import (
	"time"

	"github.com/keshon/prefixkit/internal/args"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

// Capability passthroughs so wrapping does not hide the inner command
// from the dispatcher.

func (w *wrappedCommand) ArgSpec() []args.Arg {
	if ap, ok := w.Command.(ArgProvider); ok {
		return ap.ArgSpec()
	}
	return nil
}

func (w *wrappedCommand) Cooldown() time.Duration {
	if cd, ok := w.Command.(Cooldowner); ok {
		return cd.Cooldown()
	}
	return 0
}

func (w *wrappedCommand) Permissions() []int64 {
	if pc, ok := w.Command.(Permissioner); ok {
		return pc.Permissions()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}
