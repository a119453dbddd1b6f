// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mimedata defines MIME-typed data payloads for drag-and-drop
// and clipboard transfers. A payload is a list of typed parts; a drop
// target accepts a payload when the two share at least one type.
package mimedata

// Standard MIME types used throughout the toolkit.
const (
	// TextPlain is the MIME type for plain text data.
	TextPlain = "text/plain"

	// TargetPrefix is the MIME type prefix for minted drop-target
	// identity tokens. See [NewToken].
	TargetPrefix = "application/x-ember-target-"
)

// Data is a single item of MIME-typed data.
type Data struct {
	// Type is the MIME type of this item.
	Type string

	// Data is the raw content. It is empty for pure membership
	// tokens such as drop-target identities.
	Data []byte
}

// NewTextData returns a new [Data] of type [TextPlain]
// with the given text content.
func NewTextData(text string) *Data {
	return &Data{Type: TextPlain, Data: []byte(text)}
}

// NewToken returns a new [Data] carrying no content, serving purely as a
// membership token for the given type. Drop sources use tokens to signal
// which targets a drag is intended for, without carrying any payload.
func NewToken(typ string) *Data {
	return &Data{Type: typ}
}

// Mimes is a list of [Data] items: the payload carried by one transfer.
type Mimes []*Data

// NewMimes returns a new [Mimes] list with the given length and capacity.
func NewMimes(ln, cp int) Mimes {
	return make(Mimes, ln, cp)
}

// NewText returns a new [Mimes] payload holding a single
// plain-text item with the given text.
func NewText(text string) Mimes {
	return Mimes{NewTextData(text)}
}

// HasType returns whether the payload contains an item of the given type.
func (mi Mimes) HasType(typ string) bool {
	for _, d := range mi {
		if d.Type == typ {
			return true
		}
	}
	return false
}

// HasAnyType returns whether the payload contains an item matching
// any of the given types.
func (mi Mimes) HasAnyType(types ...string) bool {
	for _, typ := range types {
		if mi.HasType(typ) {
			return true
		}
	}
	return false
}

// TypeData returns the data of the first item of the given type,
// or nil if there is none.
func (mi Mimes) TypeData(typ string) []byte {
	for _, d := range mi {
		if d.Type == typ {
			return d.Data
		}
	}
	return nil
}

// Text returns the concatenation of all [TextPlain] items,
// separated by newlines.
func (mi Mimes) Text() string {
	str := ""
	for _, d := range mi {
		if d.Type != TextPlain {
			continue
		}
		if str != "" {
			str += "\n"
		}
		str += string(d.Data)
	}
	return str
}
