// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rlshader implements [shader.Program] on top of a raylib shader.
package rlshader

import (
	"math"

	"cogentcore.org/raycast/shader"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Program wraps a loaded raylib shader. Uniform locations are looked
// up once per name and cached; raylib reports -1 for a uniform that the
// linked program does not declare (or that the GLSL compiler removed
// because it is unused).
type Program struct {

	// Shader is the raylib shader handle.
	Shader rl.Shader

	locs map[string]int32
	buf  []float32
}

// New returns a new Program for the given shader.
func New(sh rl.Shader) *Program {
	return &Program{Shader: sh, locs: make(map[string]int32)}
}

// Location returns the uniform location for the given name, or -1.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := rl.GetShaderLocation(p.Shader, name)
	p.locs[name] = loc
	return loc
}

// IsValid returns true if the underlying shader compiled and linked.
func (p *Program) IsValid() bool {
	return rl.IsShaderValid(p.Shader)
}

// HasUniform returns true if the linked shader has an active uniform of the given name.
func (p *Program) HasUniform(name string) bool {
	return p.Location(name) >= 0
}

// SetUniform writes the value into the shader, ignoring undeclared or empty uniforms.
func (p *Program) SetUniform(u *shader.Uniform) {
	loc := p.Location(u.Name)
	if loc < 0 || u.Count == 0 {
		return
	}
	switch u.Type {
	case shader.Int32:
		// raylib takes a float32 slice for every type and hands the raw
		// memory to GL, so ints travel as their bit patterns.
		p.buf = p.buf[:0]
		for _, iv := range u.Ints {
			p.buf = append(p.buf, math.Float32frombits(uint32(iv)))
		}
		rl.SetShaderValueV(p.Shader, loc, p.buf, rl.ShaderUniformInt, int32(u.Count))
	case shader.Float32:
		rl.SetShaderValueV(p.Shader, loc, u.Floats, rl.ShaderUniformFloat, int32(u.Count))
	case shader.Float32Vector3:
		rl.SetShaderValueV(p.Shader, loc, u.Floats, rl.ShaderUniformVec3, int32(u.Count))
	case shader.Float32Vector4:
		rl.SetShaderValueV(p.Shader, loc, u.Floats, rl.ShaderUniformVec4, int32(u.Count))
	case shader.Float32Matrix4:
		rl.SetShaderValueMatrix(p.Shader, loc, matrixFromFloats(u.Floats))
	}
}

// matrixFromFloats converts a column-major 4x4 into a raylib Matrix,
// whose fields are named by row and column (M0, M4, M8, M12 is the first row).
func matrixFromFloats(f []float32) rl.Matrix {
	return rl.Matrix{
		M0: f[0], M1: f[1], M2: f[2], M3: f[3],
		M4: f[4], M5: f[5], M6: f[6], M7: f[7],
		M8: f[8], M9: f[9], M10: f[10], M11: f[11],
		M12: f[12], M13: f[13], M14: f[14], M15: f[15],
	}
}
