// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
)

// Proxy wraps a single subject element and forwards everything to it.
// Wrapper elements embed Proxy and override the calls they need to
// intercept or augment.
type Proxy struct {
	Base
	subject Element
}

// NewProxy returns a proxy wrapping the given subject.
func NewProxy(subject Element) *Proxy {
	return &Proxy{subject: subject}
}

// Subject returns the wrapped element.
func (p *Proxy) Subject() Element { return p.subject }

// SetSubject replaces the wrapped element.
func (p *Proxy) SetSubject(subject Element) { p.subject = subject }

// SubjectContext returns a context for the subject, covering the same
// bounds as the proxy.
func (p *Proxy) SubjectContext(ctx *Context) *Context {
	return ctx.SubContext(p.subject, ctx.Bounds)
}

func (p *Proxy) Limits(ctx *Context) Limits {
	return p.subject.Limits(p.SubjectContext(ctx))
}

func (p *Proxy) Layout(ctx *Context) {
	p.subject.Layout(p.SubjectContext(ctx))
}

func (p *Proxy) Draw(ctx *Context) {
	p.subject.Draw(p.SubjectContext(ctx))
}

func (p *Proxy) HitTest(ctx *Context, pt math32.Vector2) Element {
	return p.subject.HitTest(p.SubjectContext(ctx), pt)
}

func (p *Proxy) Walk(ctx *Context, fun func(cctx *Context) bool) bool {
	if !fun(ctx) {
		return false
	}
	return p.subject.Walk(p.SubjectContext(ctx), fun)
}

func (p *Proxy) Click(ctx *Context, e *events.Mouse) bool {
	return p.subject.Click(p.SubjectContext(ctx), e)
}

func (p *Proxy) Drag(ctx *Context, e *events.Mouse) {
	p.subject.Drag(p.SubjectContext(ctx), e)
}

func (p *Proxy) Cursor(ctx *Context, pt math32.Vector2, status events.TrackingStatus) bool {
	return p.subject.Cursor(p.SubjectContext(ctx), pt, status)
}

func (p *Proxy) Scroll(ctx *Context, delta, pt math32.Vector2) bool {
	return p.subject.Scroll(p.SubjectContext(ctx), delta, pt)
}

func (p *Proxy) Key(ctx *Context, e *events.Key) bool {
	return p.subject.Key(p.SubjectContext(ctx), e)
}

func (p *Proxy) Text(ctx *Context, e *events.Text) bool {
	return p.subject.Text(p.SubjectContext(ctx), e)
}

func (p *Proxy) BeginFocus() bool { return p.subject.BeginFocus() }

func (p *Proxy) EndFocus() bool { return p.subject.EndFocus() }

func (p *Proxy) Poll(ctx *Context) {
	p.subject.Poll(p.SubjectContext(ctx))
}

func (p *Proxy) WantsControl() bool { return p.subject.WantsControl() }

func (p *Proxy) WantsFocus() bool { return p.subject.WantsFocus() }

func (p *Proxy) TrackDrop(ctx *Context, info *events.Drop, status events.TrackingStatus) {
	p.subject.TrackDrop(p.SubjectContext(ctx), info, status)
}

func (p *Proxy) Drop(ctx *Context, info *events.Drop) bool {
	return p.subject.Drop(p.SubjectContext(ctx), info)
}
