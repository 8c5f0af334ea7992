// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"cogentcore.org/core/base/ordmap"
)

// Uniforms is an ordered set of named uniform values, typically owned by
// an object that is drawn with a shader. Values are stored here during
// render callbacks and pushed into the [Program] by [Uniforms.Apply]
// just before the draw call.
type Uniforms struct {

	// Values are the uniforms, in the order they were first created.
	Values ordmap.Map[string, *Uniform]
}

// Uniform returns the uniform of the given name, creating it
// (unset) if it does not yet exist.
func (us *Uniforms) Uniform(name string) *Uniform {
	if u, ok := us.Values.ValueByKeyTry(name); ok {
		return u
	}
	u := NewUniform(name)
	us.Values.Add(name, u)
	return u
}

// ByName returns the uniform of the given name, or nil if not present.
func (us *Uniforms) ByName(name string) *Uniform {
	u, ok := us.Values.ValueByKeyTry(name)
	if !ok {
		return nil
	}
	return u
}

// Has returns true if a uniform of the given name is present.
func (us *Uniforms) Has(name string) bool {
	_, ok := us.Values.ValueByKeyTry(name)
	return ok
}

// Len returns the number of uniforms.
func (us *Uniforms) Len() int {
	return us.Values.Len()
}

// Names returns the uniform names in order.
func (us *Uniforms) Names() []string {
	return us.Values.Keys()
}

// Delete removes the uniform of the given name, returning false if absent.
func (us *Uniforms) Delete(name string) bool {
	return us.Values.DeleteKey(name)
}

// Reset removes all uniforms.
func (us *Uniforms) Reset() {
	us.Values.Reset()
}

// Apply writes every set uniform that the program declares into the
// program, in order, and returns the number written.
func (us *Uniforms) Apply(p Program) int {
	n := 0
	for _, kv := range us.Values.Order {
		u := kv.Value
		if !u.IsSet() || !p.HasUniform(u.Name) {
			continue
		}
		p.SetUniform(u)
		n++
	}
	return n
}
