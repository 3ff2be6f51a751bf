// Package buildinfo contains build-time metadata kept apart from user configuration
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Context contains build-time metadata that is not user-configurable.
// Values are injected by main from -ldflags.
type Context struct {
	// Version holds the Git version tag from build
	Version string

	// BuildDate is the time when the binary was built
	BuildDate string
}

// GetVersion returns the injected version, then the module version recorded
// by the toolchain, then "unknown".
func (c *Context) GetVersion() string {
	if c != nil && c.Version != "" {
		return c.Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return unknown
}

// GetBuildDate returns the build date or "unknown"
func (c *Context) GetBuildDate() string {
	if c == nil || c.BuildDate == "" {
		return unknown
	}
	return c.BuildDate
}

// String formats the metadata for display
func (c *Context) String() string {
	return fmt.Sprintf("qwell %s (built %s)", c.GetVersion(), c.GetBuildDate())
}
