package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	envProduction = "production"
	confirmYes    = "yes"

	defaultAPIURL = "http://localhost:8080"
)

// Command is one devtool subcommand. Database commands read the same DB_*
// settings as the API server.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps subcommand names to commands
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	slices.SortFunc(cmds, func(a, b Command) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return cmds
}

// Dispatch runs the command named by args[0] and returns the process exit code
func (r *Registry) Dispatch(args []string) int {
	if len(args) == 0 {
		r.PrintHelp(console.w)
		return 1
	}

	cmd, ok := r.Get(args[0])
	if !ok {
		PrintError("Unknown command: %s", args[0])
		r.PrintHelp(console.w)
		return 1
	}

	if err := cmd.Run(args[1:]); err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w, "\nDatabase commands use the DB_* variables from .env.")
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-*s  %s\n", width, cmd.Name(), cmd.Description())
	}
}
