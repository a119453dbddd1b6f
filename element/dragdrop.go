// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"strconv"
	"sync/atomic"

	"github.com/emberui/ember/colors"
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/mimedata"
	"github.com/emberui/ember/styles"
	"github.com/emberui/ember/styles/abilities"
)

// TargetID is the minted identity of a drop target, usable as a MIME
// type so a drag source can address one specific target by adding an
// empty membership token of this type to its payload.
type TargetID string

var targetCounter atomic.Uint64

// NewTargetID mints a process-unique drop-target identity.
func NewTargetID() TargetID {
	return TargetID(mimedata.TargetPrefix + strconv.FormatUint(targetCounter.Add(1), 10))
}

// SelectionProvider is implemented by containers that maintain a set
// of selected child indices.
type SelectionProvider interface {
	// GetSelection returns the selected indices in ascending order.
	GetSelection() []int

	// GetSelectEnd returns the latest index involved in the current
	// selection gesture, or -1 when there is no selection.
	GetSelectEnd() int

	// UpdateSelection replaces the selection with the contiguous
	// range [lo, hi].
	UpdateSelection(lo, hi int)

	// SelectNone clears the selection.
	SelectNone()
}

// ListMutator is implemented by containers whose children can be
// reordered and removed by index.
type ListMutator interface {
	// Move moves the children at the given ascending indices so the
	// first lands at position pos, preserving their relative order.
	Move(pos int, indices []int)

	// Erase removes the children at the given ascending indices.
	Erase(indices []int)
}

// InsertionTarget is the capability draggable items look up in their
// parent chain to commit a drag: an identified drop target that
// tracks an insertion position and can mutate its wrapped list.
type InsertionTarget interface {
	ID() TargetID
	InsertionPos() int
	Move(indices []int)
	Erase(indices []int)
}

// DropBase is the common machinery of drop targets: an accepted
// content-type set, a minted identity, and the payload-gated tracking
// state. It is embedded by [DropBox] and [DropInserter].
type DropBase struct {
	Proxy
	id         TargetID
	mimeTypes  []string
	isTracking bool
}

func (db *DropBase) initDrop(subject Element, types []string) {
	db.SetSubject(subject)
	db.SetAbilities(true, abilities.Droppable)
	db.id = NewTargetID()
	db.mimeTypes = append([]string{string(db.id)}, types...)
}

// ID returns the target's minted identity.
func (db *DropBase) ID() TargetID { return db.id }

// AcceptedTypes returns the content types the target accepts,
// including its own identity token type.
func (db *DropBase) AcceptedTypes() []string { return db.mimeTypes }

// Matches returns whether the payload shares at least one content
// type with the accepted set.
func (db *DropBase) Matches(data mimedata.Mimes) bool {
	return data.HasAnyType(db.mimeTypes...)
}

// IsTracking returns whether a matching payload is currently over
// the target.
func (db *DropBase) IsTracking() bool { return db.isTracking }

// WantsControl marks drop targets as control elements so drag-over
// notifications reach them regardless of hit depth.
func (db *DropBase) WantsControl() bool { return true }

// TrackDrop updates the tracking state from a drag-over
// notification. Payloads with no matching content type are ignored.
// A repaint is requested only when the state actually flips.
func (db *DropBase) TrackDrop(ctx *Context, info *events.Drop, status events.TrackingStatus) {
	if !db.Matches(info.Data) {
		return
	}
	was := db.isTracking
	db.isTracking = status != events.Leaving
	if db.isTracking != was {
		ctx.View.RefreshBounds(ctx.Bounds)
	}
}

// Drop ends tracking. It does not accept the payload; embedding
// types override it to do so.
func (db *DropBase) Drop(ctx *Context, info *events.Drop) bool {
	db.isTracking = false
	return false
}

// DropBox is a drop target that hands accepted payloads to a
// callback and highlights its border while a matching payload is
// over it.
type DropBox struct {
	DropBase

	// OnDrop is called when an accepted payload is dropped on the
	// box, returning whether it consumed it.
	OnDrop func(data mimedata.Mimes) bool
}

// NewDropBox returns a drop box around the given subject, accepting
// payloads carrying any of the given content types.
func NewDropBox(subject Element, types ...string) *DropBox {
	db := &DropBox{}
	db.initDrop(subject, types)
	return db
}

func (db *DropBox) Draw(ctx *Context) {
	db.Proxy.Draw(ctx)
	if !db.isTracking {
		return
	}
	cv := ctx.Canvas
	cv.BeginPath()
	cv.AddRect(ctx.Bounds)
	cv.StrokeStyle(colors.ApplyOpacity(styles.TheTheme.IndicatorHighlightColor, 0.5))
	cv.LineWidth(styles.TheTheme.IndicatorLineWidth)
	cv.Stroke()
}

func (db *DropBox) Drop(ctx *Context, info *events.Drop) bool {
	db.DropBase.Drop(ctx, info)
	if !db.Matches(info.Data) || db.OnDrop == nil {
		return false
	}
	r := db.OnDrop(info.Data)
	ctx.View.RefreshBounds(ctx.Bounds)
	return r
}

// DropInserter is a drop target wrapping a list container. While a
// matching payload is over it, it computes the insertion position
// from the cursor each draw and renders an indicator line there; on
// commit it moves or inserts at that position and keeps the wrapped
// list's selection consistent.
type DropInserter struct {
	DropBase

	// insertionPos is the index the payload would be inserted at,
	// or -1 when no valid position is known.
	insertionPos int

	// OnDrop is called when an external payload is dropped, with the
	// insertion position, returning whether it was consumed.
	OnDrop func(data mimedata.Mimes, pos int) bool

	// OnMove is called after items were moved to a new position.
	OnMove func(pos int, indices []int)

	// OnErase is called after items were erased.
	OnErase func(indices []int)

	// OnSelect is called after a selection change, with the selected
	// indices and the latest index involved.
	OnSelect func(indices []int, latest int)
}

// NewDropInserter returns a drop inserter around the given list
// subject, accepting payloads with any of the given content types.
func NewDropInserter(subject Element, types ...string) *DropInserter {
	di := &DropInserter{insertionPos: -1}
	di.initDrop(subject, types)
	return di
}

// InsertionPos returns the insertion position computed by the last
// draw, or -1.
func (di *DropInserter) InsertionPos() int { return di.insertionPos }

func (di *DropInserter) Draw(ctx *Context) {
	di.Proxy.Draw(ctx)
	if di.isTracking {
		di.drawInsertion(ctx)
	}
}

// drawInsertion recomputes the insertion position from the live
// cursor and draws the indicator line. A cursor above a child's
// vertical midpoint inserts before it, at or below inserts after.
func (di *DropInserter) drawInsertion(ctx *Context) {
	c, ok := FindSubject[Container](di.Subject())
	if !ok {
		return
	}
	cursor := ctx.CursorPos()
	var at math32.Box2
	if c.ChildCount() == 0 {
		di.insertionPos = 0
		at = math32.B2(ctx.Bounds.Min.X, ctx.Bounds.Min.Y, ctx.Bounds.Max.X, ctx.Bounds.Min.Y)
	} else {
		hit := c.HitChild(ctx, cursor)
		if hit.Elem == nil {
			return
		}
		if cursor.Y < hit.Bounds.Center().Y {
			di.insertionPos = hit.Index
			at = math32.B2(hit.Bounds.Min.X, hit.Bounds.Min.Y, hit.Bounds.Max.X, hit.Bounds.Min.Y)
		} else {
			di.insertionPos = hit.Index + 1
			at = math32.B2(hit.Bounds.Min.X, hit.Bounds.Max.Y, hit.Bounds.Max.X, hit.Bounds.Max.Y)
		}
	}
	cv := ctx.Canvas
	cv.BeginPath()
	cv.MoveTo(at.Min)
	cv.LineTo(at.Max)
	cv.StrokeStyle(colors.ApplyOpacity(styles.TheTheme.IndicatorHighlightColor, 0.5))
	cv.LineWidth(styles.TheTheme.IndicatorLineWidth)
	cv.Stroke()
}

// TrackDrop refreshes on every matching move while tracking, so the
// insertion indicator follows the cursor.
func (di *DropInserter) TrackDrop(ctx *Context, info *events.Drop, status events.TrackingStatus) {
	di.DropBase.TrackDrop(ctx, info, status)
	if di.isTracking {
		ctx.View.RefreshBounds(ctx.Bounds)
	}
}

func (di *DropInserter) Drop(ctx *Context, info *events.Drop) bool {
	di.DropBase.Drop(ctx, info)
	if di.insertionPos < 0 || !di.Matches(info.Data) || di.OnDrop == nil {
		return false
	}
	r := di.OnDrop(info.Data, di.insertionPos)
	di.insertionPos = -1
	ctx.View.RefreshBounds(ctx.Bounds)
	return r
}

// Click republishes the selection through OnSelect after the wrapped
// list handled a button release.
func (di *DropInserter) Click(ctx *Context, e *events.Mouse) bool {
	r := di.Proxy.Click(ctx, e)
	if r && !e.IsDown() {
		di.publishSelection()
	}
	return r
}

// Key republishes the selection after a handled key, since keyboard
// commands can change it.
func (di *DropInserter) Key(ctx *Context, e *events.Key) bool {
	r := di.Proxy.Key(ctx, e)
	if r {
		di.publishSelection()
	}
	return r
}

func (di *DropInserter) publishSelection() {
	if di.OnSelect == nil {
		return
	}
	s, ok := FindSubject[SelectionProvider](di.Subject())
	if !ok {
		return
	}
	latest := s.GetSelectEnd()
	if latest < 0 {
		return
	}
	di.OnSelect(s.GetSelection(), latest)
}

// Move commits a drag of the given selected indices to the current
// insertion position, then selects the moved range. It does nothing
// when no insertion position is known.
func (di *DropInserter) Move(indices []int) {
	if di.insertionPos < 0 || len(indices) == 0 {
		return
	}
	pos := di.insertionPos
	l, ok := FindSubject[ListMutator](di.Subject())
	if !ok {
		return
	}
	l.Move(pos, indices)
	if di.OnMove != nil {
		di.OnMove(pos, indices)
	}
	if s, ok := FindSubject[SelectionProvider](di.Subject()); ok {
		s.UpdateSelection(pos, pos+len(indices)-1)
	}
}

// Erase removes the given indices from the wrapped list and clears
// its selection.
func (di *DropInserter) Erase(indices []int) {
	if len(indices) == 0 {
		return
	}
	l, ok := FindSubject[ListMutator](di.Subject())
	if !ok {
		return
	}
	l.Erase(indices)
	if s, ok := FindSubject[SelectionProvider](di.Subject()); ok {
		s.SelectNone()
	}
	if di.OnErase != nil {
		di.OnErase(indices)
	}
}
