// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArity(t *testing.T) {
	a := newArity(0)
	assert.Equal(t, "", a.TypeParams())
	assert.Equal(t, "Tuple0", a.Tuple())
	assert.Equal(t, "Func0[R]", a.Func("R"))

	a = newArity(3)
	assert.Equal(t, "P1, P2, P3", a.Types())
	assert.Equal(t, "P1, P2, P3, ", a.TypeParams())
	assert.Equal(t, "p1 P1, p2 P2, p3 P3", a.Params())
	assert.Equal(t, "p1, p2, p3", a.Args())
	assert.Equal(t, "Tuple3[P1, P2, P3]", a.Tuple())
	assert.Equal(t, "Func3[P1, P2, P3, CR]", a.Func("CR"))
	assert.Equal(t, "V3", a.Fields[2].Name)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	arities := []Arity{newArity(0), newArity(1), newArity(2)}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		require.NoError(t, render(path, f.tmpl, arities), f.name)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		src := string(b)
		assert.True(t, strings.HasPrefix(src, "// ©Hayabusa Cloud"), f.name)
		assert.Contains(t, src, "// Code generated by internal/cmd/gen; DO NOT EDIT.", f.name)
		assert.Contains(t, src, "package callback", f.name)
	}

	into, err := os.ReadFile(filepath.Join(dir, "into_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(into), "func IntoCallbackOnce0[S Scope, F CallableOnce[Tuple0, R], R any](f F) Func0[R] {")
	assert.Contains(t, string(into), "func AdaptCallbackMutWith2[")
	assert.NotContains(t, string(into), "With0[", "user-data conversions need a parameter")

	proxy, err := os.ReadFile(filepath.Join(dir, "proxy_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(proxy), "Tuple2[P1, P2]{p1, p2}")
	assert.Contains(t, string(proxy), "Tuple0{}")
}
