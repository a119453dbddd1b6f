// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
)

// HitInfo identifies a child of a container at a given point.
type HitInfo struct {
	Elem   Element
	Bounds math32.Box2
	Index  int
}

// Container is the child-access surface of composite elements,
// used by elements that operate on a wrapped list of children
// without knowing its concrete type.
type Container interface {
	ChildCount() int
	Child(i int) Element
	ChildBounds(i int) math32.Box2
	HitChild(ctx *Context, p math32.Vector2) HitInfo
}

// Composite stacks child elements vertically, each at its minimum
// height and the full available width. Events are routed to the child
// under the pointer; a button press captures its child so the
// matching drag and release reach the same one.
type Composite struct {
	Base
	children []Element

	// child bounds assigned by the last Layout, in view coordinates.
	childBounds []math32.Box2

	clickIndex int
	hoverIndex int
}

// NewComposite returns a composite with the given children.
func NewComposite(children ...Element) *Composite {
	c := &Composite{clickIndex: -1, hoverIndex: -1}
	c.children = append(c.children, children...)
	return c
}

// AddChild appends a child element.
func (c *Composite) AddChild(child Element) {
	c.children = append(c.children, child)
}

// ChildCount returns the number of children.
func (c *Composite) ChildCount() int { return len(c.children) }

// Child returns the i-th child.
func (c *Composite) Child(i int) Element { return c.children[i] }

// ChildBounds returns the bounds assigned to the i-th child by the
// last Layout.
func (c *Composite) ChildBounds(i int) math32.Box2 {
	if i < 0 || i >= len(c.childBounds) {
		return math32.Box2{}
	}
	return c.childBounds[i]
}

// ContentBounds returns the union of the child bounds from the last
// Layout.
func (c *Composite) ContentBounds() math32.Box2 {
	b := math32.B2Empty()
	for _, cb := range c.childBounds {
		b = b.Union(cb)
	}
	return b
}

// SetChildren replaces the child list.
func (c *Composite) SetChildren(children []Element) {
	c.children = children
	c.childBounds = nil
	c.clickIndex = -1
	c.hoverIndex = -1
}

// Children returns the child slice.
func (c *Composite) Children() []Element { return c.children }

func (c *Composite) childContext(ctx *Context, i int) *Context {
	return ctx.SubContext(c.children[i], c.ChildBounds(i))
}

func (c *Composite) Limits(ctx *Context) Limits {
	l := Limits{Max: math32.Vec2(FullExtent, 0)}
	for _, child := range c.children {
		cl := child.Limits(ctx.SubContext(child, ctx.Bounds))
		l.Min.X = math32.Max(l.Min.X, cl.Min.X)
		l.Min.Y += cl.Min.Y
		l.Max.Y += cl.Max.Y
	}
	l.Max.X = math32.Min(l.Max.X, FullExtent)
	l.Max.Y = math32.Min(l.Max.Y, FullExtent)
	if l.Max.Y < l.Min.Y {
		l.Max.Y = l.Min.Y
	}
	return l
}

func (c *Composite) Layout(ctx *Context) {
	c.childBounds = make([]math32.Box2, len(c.children))
	y := ctx.Bounds.Min.Y
	for i, child := range c.children {
		cctx := ctx.SubContext(child, ctx.Bounds)
		h := child.Limits(cctx).Min.Y
		cb := math32.B2(ctx.Bounds.Min.X, y, ctx.Bounds.Max.X, y+h)
		c.childBounds[i] = cb
		child.Layout(ctx.SubContext(child, cb))
		y += h
	}
}

func (c *Composite) Draw(ctx *Context) {
	for i, child := range c.children {
		child.Draw(c.childContext(ctx, i))
	}
}

// HitChild returns the child whose bounds contain p, or a HitInfo
// with a nil Elem and Index -1.
func (c *Composite) HitChild(ctx *Context, p math32.Vector2) HitInfo {
	for i := range c.children {
		if c.ChildBounds(i).ContainsPoint(p) {
			return HitInfo{Elem: c.children[i], Bounds: c.ChildBounds(i), Index: i}
		}
	}
	return HitInfo{Index: -1}
}

func (c *Composite) HitTest(ctx *Context, p math32.Vector2) Element {
	hit := c.HitChild(ctx, p)
	if hit.Elem == nil {
		return nil
	}
	return hit.Elem.HitTest(ctx.SubContext(hit.Elem, hit.Bounds), p)
}

func (c *Composite) Walk(ctx *Context, fun func(cctx *Context) bool) bool {
	if !fun(ctx) {
		return false
	}
	for i, child := range c.children {
		if !child.Walk(c.childContext(ctx, i), fun) {
			return false
		}
	}
	return true
}

func (c *Composite) Click(ctx *Context, e *events.Mouse) bool {
	if e.IsDown() {
		hit := c.HitChild(ctx, e.Where)
		c.clickIndex = hit.Index
		if hit.Elem == nil {
			return false
		}
		return hit.Elem.Click(c.childContext(ctx, hit.Index), e)
	}
	i := c.clickIndex
	c.clickIndex = -1
	if i < 0 || i >= len(c.children) {
		return false
	}
	return c.children[i].Click(c.childContext(ctx, i), e)
}

func (c *Composite) Drag(ctx *Context, e *events.Mouse) {
	if c.clickIndex < 0 || c.clickIndex >= len(c.children) {
		return
	}
	c.children[c.clickIndex].Drag(c.childContext(ctx, c.clickIndex), e)
}

func (c *Composite) Cursor(ctx *Context, p math32.Vector2, status events.TrackingStatus) bool {
	hit := c.HitChild(ctx, p)
	if c.hoverIndex >= 0 && c.hoverIndex < len(c.children) && c.hoverIndex != hit.Index {
		prev := c.hoverIndex
		c.children[prev].Cursor(c.childContext(ctx, prev), p, events.Leaving)
	}
	c.hoverIndex = hit.Index
	if hit.Elem == nil {
		return false
	}
	return hit.Elem.Cursor(c.childContext(ctx, hit.Index), p, status)
}

func (c *Composite) Scroll(ctx *Context, delta, p math32.Vector2) bool {
	hit := c.HitChild(ctx, p)
	if hit.Elem == nil {
		return false
	}
	return hit.Elem.Scroll(c.childContext(ctx, hit.Index), delta, p)
}

func (c *Composite) Key(ctx *Context, e *events.Key) bool {
	for i, child := range c.children {
		if child.Key(c.childContext(ctx, i), e) {
			return true
		}
	}
	return false
}

func (c *Composite) Text(ctx *Context, e *events.Text) bool {
	for i, child := range c.children {
		if child.Text(c.childContext(ctx, i), e) {
			return true
		}
	}
	return false
}

func (c *Composite) Poll(ctx *Context) {
	for i, child := range c.children {
		child.Poll(c.childContext(ctx, i))
	}
}

func (c *Composite) TrackDrop(ctx *Context, info *events.Drop, status events.TrackingStatus) {
	for i, child := range c.children {
		child.TrackDrop(c.childContext(ctx, i), info, status)
	}
}

func (c *Composite) Drop(ctx *Context, info *events.Drop) bool {
	hit := c.HitChild(ctx, info.Where)
	if hit.Elem == nil {
		return false
	}
	return hit.Elem.Drop(c.childContext(ctx, hit.Index), info)
}
