package designer

import "github.com/user/breakstudio/pkg/events"

// Command encapsulates one reversible mutation of designer state.
// Execute and Undo must be exact inverses over every affected widget's
// observable state.
type Command interface {
	Execute()
	Undo()

	// Description is a human-readable label for history display.
	Description() string
}

// CommandManager provides linear undo/redo history. It is the sole
// mutation gateway for anything that must be undoable. Both stacks are
// unbounded, matching the original contract.
type CommandManager struct {
	undo []Command
	redo []Command
	bus  *events.Bus
}

// NewCommandManager creates an empty history publishing on bus.
func NewCommandManager(bus *events.Bus) *CommandManager {
	return &CommandManager{bus: bus}
}

// Execute runs the command, pushes it onto the undo stack and discards
// the redo stack; no redo survives a divergent action.
func (m *CommandManager) Execute(c Command) {
	c.Execute()
	m.undo = append(m.undo, c)
	m.redo = nil
	m.publish()
}

// Undo reverses the most recent command, if any.
func (m *CommandManager) Undo() {
	if len(m.undo) == 0 {
		return
	}
	last := len(m.undo) - 1
	c := m.undo[last]
	m.undo = m.undo[:last]
	c.Undo()
	m.redo = append(m.redo, c)
	m.publish()
}

// Redo re-applies the most recently undone command, if any.
func (m *CommandManager) Redo() {
	if len(m.redo) == 0 {
		return
	}
	last := len(m.redo) - 1
	c := m.redo[last]
	m.redo = m.redo[:last]
	c.Execute()
	m.undo = append(m.undo, c)
	m.publish()
}

// CanUndo reports whether the undo stack is non-empty.
func (m *CommandManager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (m *CommandManager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDescription returns the label of the command Undo would reverse.
func (m *CommandManager) UndoDescription() string {
	if len(m.undo) == 0 {
		return ""
	}
	return m.undo[len(m.undo)-1].Description()
}

// Reset drops both stacks. Used when a design is cleared or reloaded.
func (m *CommandManager) Reset() {
	m.undo = nil
	m.redo = nil
	m.publish()
}

func (m *CommandManager) publish() {
	m.bus.Publish(events.HistoryChanged{CanUndo: m.CanUndo(), CanRedo: m.CanRedo()})
}
