package designer

// KeyInput is the platform-neutral keyboard event frontends feed into
// the designer. Key holds a lowercase key name ("a", "z", "[",
// "delete", "backspace", "escape"); Command marks the platform
// shortcut modifier (Ctrl or Cmd).
type KeyInput struct {
	Key     string
	Command bool
	Shift   bool

	// InTextField suppresses destructive shortcuts while focus sits in
	// a text input or contenteditable region.
	InTextField bool
}

// HandleKey applies the keyboard surface and reports whether the input
// was consumed.
func (d *Designer) HandleKey(k KeyInput) bool {
	switch {
	case k.Command && k.Key == "a":
		d.SelectAll()
	case k.Command && k.Key == "c":
		d.CopySelection()
	case k.Command && k.Key == "x":
		d.CutSelection()
	case k.Command && k.Key == "v":
		d.Paste()
	case k.Command && k.Key == "z" && k.Shift:
		d.Redo()
	case k.Command && k.Key == "z":
		d.Undo()
	case k.Command && k.Key == "y":
		d.Redo()
	case k.Key == "]":
		d.BringSelectionToFront()
	case k.Key == "[":
		d.SendSelectionToBack()
	case k.Key == "delete" || k.Key == "backspace":
		if k.InTextField {
			return false
		}
		d.DeleteSelection()
	case k.Key == "escape":
		d.selection.Clear()
	default:
		return false
	}
	return true
}
