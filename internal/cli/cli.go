// Package cli implements the lago command-line interface.
//
// The CLI wraps the library pipeline for the common batch use: read a 2D
// g2o dataset, compute the LAGO orientation initialization, and write the
// dataset back with corrected headings. It is built with cobra and logs
// through charmbracelet/log; --verbose (-v) lifts the level to debug.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// CLI owns the logger shared by all commands.
type CLI struct {
	logger *log.Logger
}

// New builds a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{logger: newLogger(w, level)}
}

// SetLogLevel adjusts the shared logger's level; used once flags are parsed.
func (c *CLI) SetLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

// RootCommand assembles the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lago",
		Short:         "Planar pose-graph orientation initialization (LAGO)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(c.initCommand())

	return root
}
