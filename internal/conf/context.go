package conf

import (
	"io"

	"github.com/tphakala/qwell/internal/logger"
)

// Context holds the application state shared by the commands. The root
// command fills it in before any subcommand runs.
type Context struct {
	Settings *Settings
	Logger   *logger.CentralLogger
}

// Log returns the logger for module, or a discarding logger when the
// context has not been initialized.
func (c *Context) Log(module string) logger.Logger {
	if c == nil || c.Logger == nil {
		return logger.NewSlogLogger(io.Discard, logger.LogLevelError)
	}
	return c.Logger.Module(module)
}
