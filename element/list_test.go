// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"testing"

	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/stretchr/testify/assert"
)

func newTestItems(n int) []Element {
	items := make([]Element, n)
	for i := range items {
		items[i] = NewDraggable(NewBox(math32.Vec2(60, 20), colors.Indicator))
	}
	return items
}

func TestSelectIndexEventModes(t *testing.T) {
	sl := NewSelectionList(newTestItems(6)...)
	assert.Empty(t, sl.GetSelection())
	assert.Equal(t, -1, sl.GetSelectEnd())

	sl.SelectIndexEvent(2, events.SelectOne)
	assert.Equal(t, []int{2}, sl.GetSelection())
	assert.Equal(t, 2, sl.GetSelectEnd())

	sl.SelectIndexEvent(5, events.ExtendContinuous)
	assert.Equal(t, []int{2, 3, 4, 5}, sl.GetSelection())
	assert.Equal(t, 5, sl.GetSelectEnd())

	sl.SelectIndexEvent(0, events.ExtendContinuous)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sl.GetSelection())

	sl.SelectIndexEvent(3, events.ExtendOne)
	assert.Equal(t, []int{0, 1, 2, 4, 5}, sl.GetSelection())

	sl.SelectIndexEvent(3, events.ExtendOne)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sl.GetSelection())

	sl.SelectIndexEvent(1, events.NoSelect)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sl.GetSelection())
}

func TestSelectionDrivesItemStates(t *testing.T) {
	items := newTestItems(3)
	sl := NewSelectionList(items...)

	sl.UpdateSelection(0, 1)
	assert.True(t, items[0].(*Draggable).IsSelected())
	assert.True(t, items[1].(*Draggable).IsSelected())
	assert.False(t, items[2].(*Draggable).IsSelected())

	sl.SelectNone()
	assert.False(t, items[0].(*Draggable).IsSelected())
	assert.Equal(t, -1, sl.GetSelectEnd())
}

func TestUpdateSelectionClamps(t *testing.T) {
	sl := NewSelectionList(newTestItems(3)...)
	sl.UpdateSelection(-2, 10)
	assert.Equal(t, []int{0, 1, 2}, sl.GetSelection())
	assert.Equal(t, 2, sl.GetSelectEnd())
}

func TestListMove(t *testing.T) {
	items := newTestItems(5)
	sl := NewSelectionList(items...)

	// move rows 3 and 4 into the gap above row 1
	sl.Move(1, []int{3, 4})
	got := sl.Children()
	want := []Element{items[0], items[3], items[4], items[1], items[2]}
	assert.Equal(t, want, got)
}

func TestListMoveDownward(t *testing.T) {
	items := newTestItems(5)
	sl := NewSelectionList(items...)

	// the insertion gap indexes the pre-move list, so rows moving from
	// above it land one position earlier
	sl.Move(3, []int{0, 1})
	got := sl.Children()
	want := []Element{items[2], items[0], items[1], items[3], items[4]}
	assert.Equal(t, want, got)
}

func TestListMoveToEnd(t *testing.T) {
	items := newTestItems(4)
	sl := NewSelectionList(items...)

	sl.Move(4, []int{0})
	want := []Element{items[1], items[2], items[3], items[0]}
	assert.Equal(t, want, sl.Children())
}

func TestListErase(t *testing.T) {
	items := newTestItems(5)
	sl := NewSelectionList(items...)

	sl.Erase([]int{1, 3})
	want := []Element{items[0], items[2], items[4]}
	assert.Equal(t, want, sl.Children())

	// out-of-range indices are skipped
	sl.Erase([]int{7})
	assert.Equal(t, want, sl.Children())
}

func TestListClickOnEmptyAreaIsNotHandled(t *testing.T) {
	tv := &testView{}
	sl := NewSelectionList(newTestItems(2)...)
	ctx := NewContext(tv, nil, sl, math32.B2(0, 0, 100, 100))
	sl.Layout(ctx)

	// rows cover y 0..40 only
	down := events.NewMouse(events.MouseDown, events.Left, math32.Vec2(10, 80), 0)
	assert.False(t, sl.Click(ctx, down))
	assert.Empty(t, sl.GetSelection())
}
