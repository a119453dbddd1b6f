// Copyright (c) 2025, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mimedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimesTypes(t *testing.T) {
	md := Mimes{NewTextData("hello"), NewToken(TargetPrefix + "1")}
	assert.True(t, md.HasType(TextPlain))
	assert.True(t, md.HasType(TargetPrefix+"1"))
	assert.False(t, md.HasType(TargetPrefix+"2"))
	assert.True(t, md.HasAnyType(TargetPrefix+"2", TextPlain))
	assert.False(t, md.HasAnyType(TargetPrefix+"2", TargetPrefix+"3"))
}

func TestMimesData(t *testing.T) {
	md := NewText("hello")
	assert.Equal(t, []byte("hello"), md.TypeData(TextPlain))
	assert.Nil(t, md.TypeData("application/json"))

	md = append(md, NewTextData("world"))
	assert.Equal(t, "hello\nworld", md.Text())

	tok := NewToken(TargetPrefix + "7")
	assert.Empty(t, tok.Data)
}
