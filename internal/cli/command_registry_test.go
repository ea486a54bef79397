package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "task-manager/internal/errors"
)

type recordingCommand struct {
	calls int
}

func (c *recordingCommand) Execute(ctx context.Context, args []string) error {
	c.calls++
	return nil
}

func TestNewCommandRegistry(t *testing.T) {
	s := newTestSession(newMockAPI(), nil, "")
	registry := NewCommandRegistry(s.app)

	assert.NotNil(t, registry)
	assert.Len(t, registry.commands, 8)
}

func TestCommandRegistry_GetMenu(t *testing.T) {
	s := newTestSession(newMockAPI(), nil, "")

	expected := "\n--- Task Management System ---\n" +
		"1. Add Worker\n" +
		"2. Add Task\n" +
		"3. Assign Task\n" +
		"4. Complete Task\n" +
		"5. Show All Tasks\n" +
		"6. Show All Workers\n" +
		"7. Save to File\n" +
		"8. Load from File\n" +
		"9. Exit\n" +
		"Choose an option: "
	assert.Equal(t, expected, s.app.registry.GetMenu())
}

func TestCommandRegistry_Execute(t *testing.T) {
	m := newMockAPI()
	s := newTestSession(m, nil, "")
	registry := s.app.registry
	ctx := context.Background()

	t.Run("executes show workers", func(t *testing.T) {
		m.AddWorker("Tom")
		require.NoError(t, registry.Execute(ctx, 6, nil))
		assert.Contains(t, s.out.String(), "ID: 1, Name: Tom")
	})

	t.Run("rejects unknown choice", func(t *testing.T) {
		err := registry.Execute(ctx, 42, nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
		assert.True(t, s.app.errorHandler.IsInvalidChoice(err))
	})

	t.Run("exit is not a registered command", func(t *testing.T) {
		err := registry.Execute(ctx, ExitChoice, nil)
		assert.Error(t, err)
	})

	t.Run("register replaces an entry", func(t *testing.T) {
		cmd := &recordingCommand{}
		registry.Register(5, "Show Everything", cmd)
		require.NoError(t, registry.Execute(ctx, 5, nil))
		assert.Equal(t, 1, cmd.calls)
		assert.Contains(t, registry.GetMenu(), "5. Show Everything\n")
	})
}
