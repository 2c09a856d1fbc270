package core

import (
	"log"
)

// WithCommandLogger wraps a command to record its execution in the
// guild's command history.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				// Run the actual command first.
				err := cmd.Run(ctx)

				if v, ok := ctx.(*MessageContext); ok && v.Storage != nil && v.Event.GuildID != "" {
					if e := LogCommand(v, cmd.Name(), v.Raw); e != nil {
						log.Printf("[WARN] Failed to log command %s: %v", cmd.Name(), e)
					}
				}

				return err
			},
		}
	}
}
