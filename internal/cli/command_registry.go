package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"task-manager/internal/errors"
)

// ExitChoice is the menu number that ends the session
const ExitChoice = 9

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

type menuEntry struct {
	label   string
	command Command
}

// CommandRegistry maps menu numbers to commands
type CommandRegistry struct {
	commands map[int]menuEntry
}

// NewCommandRegistry creates a registry holding every menu action
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[int]menuEntry),
	}

	registry.Register(1, "Add Worker", NewAddWorkerCommand(app))
	registry.Register(2, "Add Task", NewAddTaskCommand(app))
	registry.Register(3, "Assign Task", NewAssignTaskCommand(app))
	registry.Register(4, "Complete Task", NewCompleteTaskCommand(app))
	registry.Register(5, "Show All Tasks", NewShowTasksCommand(app))
	registry.Register(6, "Show All Workers", NewShowWorkersCommand(app))
	registry.Register(7, "Save to File", NewSaveCommand(app))
	registry.Register(8, "Load from File", NewLoadCommand(app))

	return registry
}

// Register adds a command under a menu number
func (r *CommandRegistry) Register(choice int, label string, command Command) {
	r.commands[choice] = menuEntry{label: label, command: command}
}

// Execute runs the command registered for choice
func (r *CommandRegistry) Execute(ctx context.Context, choice int, args []string) error {
	entry, exists := r.commands[choice]
	if !exists {
		return errors.NewInvalidInputError("choice", choice, "unknown menu option")
	}
	return entry.command.Execute(ctx, args)
}

// GetMenu renders the menu text, ending with the selection prompt
func (r *CommandRegistry) GetMenu() string {
	choices := make([]int, 0, len(r.commands))
	for choice := range r.commands {
		choices = append(choices, choice)
	}
	sort.Ints(choices)

	var b strings.Builder
	b.WriteString("\n--- Task Management System ---\n")
	for _, choice := range choices {
		b.WriteString(strconv.Itoa(choice) + ". " + r.commands[choice].label + "\n")
	}
	fmt.Fprintf(&b, "%d. Exit\n", ExitChoice)
	b.WriteString("Choose an option: ")
	return b.String()
}
