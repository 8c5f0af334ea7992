// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)

// Types is the list of uniform data types that can be stored in a [Uniform].
// Bool uniforms are transported as Int32 (0 or 1), as in GLSL.
type Types int32

const (
	UndefinedType Types = iota

	Int32
	Float32
	Float32Vector3
	Float32Vector4
	Float32Matrix4

	// TypesN is the number of uniform types.
	TypesN
)

// TypeComponents gives the number of scalar components per element of each type.
var TypeComponents = [TypesN]int{
	UndefinedType:  0,
	Int32:          1,
	Float32:        1,
	Float32Vector3: 3,
	Float32Vector4: 4,
	Float32Matrix4: 16,
}

var typeNames = [TypesN]string{
	UndefinedType:  "UndefinedType",
	Int32:          "Int32",
	Float32:        "Float32",
	Float32Vector3: "Float32Vector3",
	Float32Vector4: "Float32Vector4",
	Float32Matrix4: "Float32Matrix4",
}

// Components returns the number of scalar components per element.
func (tp Types) Components() int {
	if tp < 0 || tp >= TypesN {
		return 0
	}
	return TypeComponents[tp]
}

// IsInt returns true if the type stores integer values.
func (tp Types) IsInt() bool {
	return tp == Int32
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "Types(invalid)"
	}
	return typeNames[tp]
}
