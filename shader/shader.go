// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shader provides the uniform-level view of a compiled shader program:
// the set of uniforms it declares, and typed uniform values that can be
// stored per object and pushed into the program before drawing.
//
// A [Program] is a capability: callers must check [Program.HasUniform]
// before computing a value, because different variants of a shader
// declare different subsets of uniforms, and a uniform that is not
// declared is simply not requested by that variant.
package shader

// Program is a compiled shader program, as seen by code that
// feeds uniform values into it.
type Program interface {

	// HasUniform returns true if the program declares an active
	// uniform of the given name.
	HasUniform(name string) bool

	// SetUniform writes the given value into the program's live uniform
	// state. It is only called for uniforms that HasUniform reports.
	SetUniform(u *Uniform)
}
