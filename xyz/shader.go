// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/raycast/shader"
)

// MaxLights is the number of light slots on a [Shader].
const MaxLights = 8

// Shader is the render state used to draw an actor: the compiled program
// (nil until compiled) and the lights bound to it, by slot.
type Shader struct {

	// Name is the name of the shader.
	Name string

	// Program is the compiled program, nil if none is bound.
	Program shader.Program

	// Lights are the lights bound to this shader, indexed by slot.
	// Entries may be nil.
	Lights []*Light
}

// NewShader returns a new Shader using the given program (which may be nil).
func NewShader(name string, prog shader.Program) *Shader {
	return &Shader{Name: name, Program: prog}
}

// HasProgram returns true if a compiled program is bound.
func (sh *Shader) HasProgram() bool {
	return sh != nil && sh.Program != nil
}

// SetLight binds the light to the given slot, growing the slot list as
// needed. Passing nil clears the slot.
func (sh *Shader) SetLight(slot int, lt *Light) *Shader {
	if slot < 0 || slot >= MaxLights {
		panic("xyz.Shader SetLight: slot out of range")
	}
	for len(sh.Lights) <= slot {
		sh.Lights = append(sh.Lights, nil)
	}
	sh.Lights[slot] = lt
	return sh
}

// AddLight binds the light to the first free slot, returning the slot,
// or -1 if all slots are taken.
func (sh *Shader) AddLight(lt *Light) int {
	for i := range MaxLights {
		if i >= len(sh.Lights) || sh.Lights[i] == nil {
			sh.SetLight(i, lt)
			return i
		}
	}
	return -1
}

// Light returns the light occupying the given slot, or nil if the slot is
// out of range, empty, or holds a light that is off.
func (sh *Shader) Light(slot int) *Light {
	if slot < 0 || slot >= len(sh.Lights) {
		return nil
	}
	lt := sh.Lights[slot]
	if lt == nil || !lt.On {
		return nil
	}
	return lt
}
