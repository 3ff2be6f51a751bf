package main

import (
	"fmt"
	"os"

	"github.com/tphakala/qwell/cmd"
	"github.com/tphakala/qwell/internal/buildinfo"
	"github.com/tphakala/qwell/internal/conf"
	"github.com/tphakala/qwell/internal/errors"
	"github.com/tphakala/qwell/internal/logger"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   string
	buildDate string
)

func main() {
	os.Exit(mainWithExitCode())
}

// mainWithExitCode runs the CLI and returns the process exit code.
func mainWithExitCode() int {
	v, err := conf.NewViper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	ctx := &conf.Context{}
	rootCmd := cmd.RootCommand(v, ctx, &buildinfo.Context{
		Version:   version,
		BuildDate: buildDate,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		category := string(errors.CategoryGeneric)
		var ee *errors.EnhancedError
		if errors.As(err, &ee) {
			category = ee.GetCategory()
		}
		ctx.Log("main").Debug("command failed",
			logger.String("category", category),
			logger.Error(err))
		return 1
	}

	return 0
}
