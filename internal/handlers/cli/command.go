package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommandHandler defines the interface for console commands
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the cobra command definition
	GetCommand() *cobra.Command
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Command *cobra.Command
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Command.Name()
}

// GetCommand returns the cobra command definition
func (c *BaseCommand) GetCommand() *cobra.Command {
	return c.Command
}

func newCommand(cmd *cobra.Command) *BaseCommand {
	return &BaseCommand{Command: cmd}
}

// RespondWithMessage writes one line to the command output
func RespondWithMessage(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
