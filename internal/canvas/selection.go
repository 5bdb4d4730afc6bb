package canvas

// Select makes id the selection, or appends it when additive. The
// selected id receives focus. Selection order is preserved: it decides
// where focus lands when the focused id is deselected. Selecting an id
// absent from the canvas never fails; it simply cannot take focus.
func (c *Canvas) Select(id string, additive bool) {
	if !additive {
		c.selected = c.selected[:0]
		c.selected = append(c.selected, id)
	} else if !c.isSelected(id) {
		c.selected = append(c.selected, id)
	}

	if c.Has(id) {
		c.focused = id
	} else {
		if !c.isSelected(c.focused) {
			c.focused = ""
		}
		c.repairFocus()
	}
}

// Deselect removes id from the selection. If it held focus, focus
// transfers to the first remaining selected id, or clears.
func (c *Canvas) Deselect(id string) {
	for i, sid := range c.selected {
		if sid == id {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			break
		}
	}
	if c.focused == id {
		c.focused = ""
		c.repairFocus()
	}
}

// ClearSelection empties the selection and clears focus.
func (c *Canvas) ClearSelection() {
	c.selected = c.selected[:0]
	c.focused = ""
}

// Focus moves focus to id without changing selection membership.
// Focusing an id outside the selection is a no-op: focus must always
// point at a selected component or at nothing.
func (c *Canvas) Focus(id string) {
	if c.isSelected(id) && c.Has(id) {
		c.focused = id
	}
}

// SelectedIDs returns the ordered selection.
func (c *Canvas) SelectedIDs() []string {
	out := make([]string, len(c.selected))
	copy(out, c.selected)
	return out
}

// FocusedID returns the focused component id, or "" when none.
func (c *Canvas) FocusedID() string {
	return c.focused
}

// IsSelected reports whether id is in the selection.
func (c *Canvas) IsSelected(id string) bool {
	return c.isSelected(id)
}

func (c *Canvas) isSelected(id string) bool {
	for _, sid := range c.selected {
		if sid == id {
			return true
		}
	}
	return false
}

// repairFocus points focus at the first selected id that exists on the
// canvas, or clears it.
func (c *Canvas) repairFocus() {
	if c.focused != "" {
		return
	}
	for _, sid := range c.selected {
		if c.Has(sid) {
			c.focused = sid
			return
		}
	}
	c.focused = ""
}
