// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// Uniform is a named uniform value: a fixed-size array of elements of one
// [Types] type. Float data and integer data are stored in separate slices
// so that each can be handed to a graphics API without conversion.
type Uniform struct {

	// Name is the name of the uniform in the shader source.
	Name string

	// Type is the element type of the value.
	Type Types

	// Count is the number of array elements (1 for a non-array uniform).
	Count int

	// Floats holds Count * Type.Components() values for float types.
	Floats []float32

	// Ints holds Count values for Int32.
	Ints []int32
}

// NewUniform returns a new, unset uniform of the given name.
func NewUniform(name string) *Uniform {
	return &Uniform{Name: name}
}

// IsSet returns true if a value has been assigned.
func (u *Uniform) IsSet() bool {
	return u.Type != UndefinedType
}

func (u *Uniform) setFloats(tp Types, count int) []float32 {
	n := count * tp.Components()
	u.Type = tp
	u.Count = count
	u.Ints = nil
	if cap(u.Floats) >= n {
		u.Floats = u.Floats[:n]
	} else {
		u.Floats = make([]float32, n)
	}
	return u.Floats
}

// SetFloat32 sets a single float value.
func (u *Uniform) SetFloat32(v float32) {
	fl := u.setFloats(Float32, 1)
	fl[0] = v
}

// SetVector3 sets a single vec3 value.
func (u *Uniform) SetVector3(v math32.Vector3) {
	u.SetVector3s(v)
}

// SetVector3s sets a vec3 array value, one element per given vector.
func (u *Uniform) SetVector3s(vs ...math32.Vector3) {
	fl := u.setFloats(Float32Vector3, len(vs))
	for i, v := range vs {
		fl[3*i] = v.X
		fl[3*i+1] = v.Y
		fl[3*i+2] = v.Z
	}
}

// SetVector4 sets a single vec4 value.
func (u *Uniform) SetVector4(v math32.Vector4) {
	fl := u.setFloats(Float32Vector4, 1)
	v.ToSlice(fl, 0)
}

// SetMatrix4 sets a single mat4 value, in column-major order.
func (u *Uniform) SetMatrix4(m *math32.Matrix4) {
	fl := u.setFloats(Float32Matrix4, 1)
	copy(fl, m[:])
}

// SetInt32s sets an int array value. Bool uniforms use this with 0 / 1.
func (u *Uniform) SetInt32s(vs ...int32) {
	u.Type = Int32
	u.Count = len(vs)
	u.Floats = nil
	u.Ints = append(u.Ints[:0], vs...)
}

// SetBools sets a bool array value, stored as Int32 0 / 1.
func (u *Uniform) SetBools(vs ...bool) {
	u.Type = Int32
	u.Count = len(vs)
	u.Floats = nil
	u.Ints = u.Ints[:0]
	for _, b := range vs {
		var iv int32
		if b {
			iv = 1
		}
		u.Ints = append(u.Ints, iv)
	}
}

// Vector3 returns element i of a Float32Vector3 value.
func (u *Uniform) Vector3(i int) math32.Vector3 {
	if u.Type != Float32Vector3 || i < 0 || i >= u.Count {
		return math32.Vector3{}
	}
	return math32.Vec3(u.Floats[3*i], u.Floats[3*i+1], u.Floats[3*i+2])
}

// Bool returns element i of an Int32 value as a bool.
func (u *Uniform) Bool(i int) bool {
	if u.Type != Int32 || i < 0 || i >= u.Count {
		return false
	}
	return u.Ints[i] != 0
}

// Clone returns a deep copy of the uniform.
func (u *Uniform) Clone() *Uniform {
	cu := *u
	cu.Floats = slices.Clone(u.Floats)
	cu.Ints = slices.Clone(u.Ints)
	return &cu
}

// Equal returns true if both uniforms have the same name, type and values.
func (u *Uniform) Equal(o *Uniform) bool {
	return u.Name == o.Name && u.Type == o.Type && u.Count == o.Count &&
		slices.Equal(u.Floats, o.Floats) && slices.Equal(u.Ints, o.Ints)
}

func (u *Uniform) String() string {
	if u.Type.IsInt() {
		return fmt.Sprintf("%s %v[%d] = %v", u.Name, u.Type, u.Count, u.Ints)
	}
	return fmt.Sprintf("%s %v[%d] = %v", u.Name, u.Type, u.Count, u.Floats)
}
