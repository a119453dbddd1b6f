// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"slices"

	"github.com/emberui/ember/events"
	"github.com/emberui/ember/styles/abilities"
)

// SelectionList is a vertical list whose items can be selected,
// extended with shift (contiguous) or the platform action modifier
// (toggle one), reordered by dragging, and erased. It implements
// [SelectionProvider] and [ListMutator] so an enclosing
// [DropInserter] and the item [Draggable]s can coordinate with it.
type SelectionList struct {
	Composite

	// selected has an entry per selected child index.
	selected map[int]struct{}

	// selectEnd is the latest index involved in the current selection
	// gesture, or -1.
	selectEnd int
}

// NewSelectionList returns a selection list with the given items.
func NewSelectionList(items ...Element) *SelectionList {
	sl := &SelectionList{selected: map[int]struct{}{}, selectEnd: -1}
	sl.SetChildren(items)
	sl.SetAbilities(true, abilities.Selectable)
	return sl
}

// GetSelection returns the selected indices in ascending order.
func (sl *SelectionList) GetSelection() []int {
	indices := make([]int, 0, len(sl.selected))
	for ix := range sl.selected {
		indices = append(indices, ix)
	}
	slices.Sort(indices)
	return indices
}

// GetSelectEnd returns the latest index involved in the current
// selection gesture, or -1 when there is no selection.
func (sl *SelectionList) GetSelectEnd() int { return sl.selectEnd }

// UpdateSelection replaces the selection with the contiguous range
// [lo, hi], clamped to the list, and marks hi as the gesture end.
func (sl *SelectionList) UpdateSelection(lo, hi int) {
	sl.selected = map[int]struct{}{}
	lo = max(lo, 0)
	hi = min(hi, len(sl.Children())-1)
	for i := lo; i <= hi; i++ {
		sl.selected[i] = struct{}{}
	}
	sl.selectEnd = hi
	sl.applyStates()
}

// SelectNone clears the selection.
func (sl *SelectionList) SelectNone() {
	sl.selected = map[int]struct{}{}
	sl.selectEnd = -1
	sl.applyStates()
}

// IsIndexSelected returns whether the given index is selected.
func (sl *SelectionList) IsIndexSelected(ix int) bool {
	_, ok := sl.selected[ix]
	return ok
}

// selectableChild is the per-item state surface the list drives.
type selectableChild interface {
	SetSelected(on bool)
}

// applyStates pushes the selection set into the child item states.
func (sl *SelectionList) applyStates() {
	for i, c := range sl.Children() {
		if s, ok := c.(selectableChild); ok {
			s.SetSelected(sl.IsIndexSelected(i))
		}
	}
}

// SelectIndexEvent selects the given index per the given mode:
// plain select-one, contiguous extension, or single toggle.
func (sl *SelectionList) SelectIndexEvent(ix int, mode events.SelectModes) {
	switch mode {
	case events.SelectOne:
		sl.selected = map[int]struct{}{ix: {}}
	case events.ExtendContinuous:
		if len(sl.selected) == 0 {
			sl.selected = map[int]struct{}{ix: {}}
			break
		}
		sel := sl.GetSelection()
		lo := min(sel[0], ix)
		hi := max(sel[len(sel)-1], ix)
		sl.selected = map[int]struct{}{}
		for i := lo; i <= hi; i++ {
			sl.selected[i] = struct{}{}
		}
	case events.ExtendOne:
		if sl.IsIndexSelected(ix) {
			delete(sl.selected, ix)
		} else {
			sl.selected[ix] = struct{}{}
		}
	case events.NoSelect, events.SelectQuiet:
		return
	}
	sl.selectEnd = ix
	sl.applyStates()
}

// Move moves the children at the given ascending indices so they
// land contiguously at the insertion position pos, which indexes the
// gaps of the pre-move list.
func (sl *SelectionList) Move(pos int, indices []int) {
	children := sl.Children()
	if len(indices) == 0 || pos < 0 || pos > len(children) {
		return
	}
	moving := map[int]struct{}{}
	for _, ix := range indices {
		moving[ix] = struct{}{}
	}
	block := make([]Element, 0, len(indices))
	for _, ix := range indices {
		block = append(block, children[ix])
	}
	rest := make([]Element, 0, len(children)-len(block))
	at := pos
	for i, c := range children {
		if i < pos {
			if _, ok := moving[i]; ok {
				at--
				continue
			}
		}
		if _, ok := moving[i]; ok {
			continue
		}
		rest = append(rest, c)
	}
	out := make([]Element, 0, len(children))
	out = append(out, rest[:at]...)
	out = append(out, block...)
	out = append(out, rest[at:]...)
	sl.SetChildren(out)
}

// Erase removes the children at the given ascending indices.
func (sl *SelectionList) Erase(indices []int) {
	children := sl.Children()
	for i := len(indices) - 1; i >= 0; i-- {
		ix := indices[i]
		if ix < 0 || ix >= len(children) {
			continue
		}
		children = append(children[:ix], children[ix+1:]...)
	}
	sl.SetChildren(children)
}

// Click handles the selection gesture: a press first goes to the hit
// item, and if the item does not consume it (no drag began), the
// press updates the selection instead.
func (sl *SelectionList) Click(ctx *Context, e *events.Mouse) bool {
	if !e.IsDown() {
		return sl.Composite.Click(ctx, e)
	}
	hit := sl.HitChild(ctx, e.Where)
	if hit.Elem == nil {
		return false
	}
	if sl.Composite.Click(ctx, e) {
		return true
	}
	sl.SelectIndexEvent(hit.Index, e.SelectMode())
	ctx.View.RefreshBounds(ctx.Bounds)
	return true
}
