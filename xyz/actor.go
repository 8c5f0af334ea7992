// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/shader"
)

// MaxLODs is the number of level-of-detail slots on an [Actor].
const MaxLODs = 4

// Renderable is anything an [Actor] can draw: typically a mesh.
type Renderable interface {

	// MeshSize returns the number of vertices and indices.
	MeshSize() (numVertex, numIndex int)

	// MeshBBox returns the bounding box of the vertices, in object space.
	MeshBBox() math32.Box3
}

// RenderCallback is notified by the [Renderer] as an actor is drawn.
// Implementations must be comparable (typically pointer types), because
// an actor de-duplicates its callbacks by identity.
type RenderCallback interface {

	// OnRenderStarted is called for each pass, strictly before the draw
	// of that pass is submitted. The camera, renderable and shader are
	// only valid for the duration of the call.
	OnRenderStarted(actor *Actor, time float64, cam *Camera, rend Renderable, sh *Shader, pass int)
}

// Actor binds a [Renderable] to a [Transform] and a [Shader], and carries
// the uniform values specific to this actor.
type Actor struct {

	// Name is the name of the actor.
	Name string

	// Transform places the actor in the world; nil means identity.
	Transform *Transform

	// Shader is the shader the actor is drawn with.
	Shader *Shader

	// Uniforms are the uniform values for this actor, applied to
	// the program before each draw.
	Uniforms shader.Uniforms

	lods      [MaxLODs]Renderable
	callbacks []RenderCallback
}

// NewActor returns a new actor drawing the given renderable in LOD slot 0.
func NewActor(name string, rend Renderable, sh *Shader, tr *Transform) *Actor {
	ac := &Actor{Name: name, Shader: sh, Transform: tr}
	ac.SetLOD(0, rend)
	return ac
}

// SetLOD sets the renderable for the given level-of-detail slot.
func (ac *Actor) SetLOD(slot int, rend Renderable) {
	if slot < 0 || slot >= MaxLODs {
		panic("xyz.Actor SetLOD: slot out of range")
	}
	ac.lods[slot] = rend
}

// LOD returns the renderable in the given level-of-detail slot, or nil.
func (ac *Actor) LOD(slot int) Renderable {
	if slot < 0 || slot >= MaxLODs {
		return nil
	}
	return ac.lods[slot]
}

// Uniform returns the actor uniform of the given name, creating it if needed.
func (ac *Actor) Uniform(name string) *shader.Uniform {
	return ac.Uniforms.Uniform(name)
}

// WorldMatrix returns the actor world matrix, the identity if it has no Transform.
func (ac *Actor) WorldMatrix() math32.Matrix4 {
	if ac.Transform == nil {
		return *math32.Identity4()
	}
	return ac.Transform.WorldMatrix
}

// AddRenderCallback registers the callback at the end of the callback list.
// A callback that is already registered is first removed, so each callback
// appears at most once and the others keep their relative order.
func (ac *Actor) AddRenderCallback(cb RenderCallback) {
	ac.RemoveRenderCallback(cb)
	ac.callbacks = append(ac.callbacks, cb)
}

// RemoveRenderCallback removes the callback, returning false if it was not registered.
func (ac *Actor) RemoveRenderCallback(cb RenderCallback) bool {
	i := slices.Index(ac.callbacks, cb)
	if i < 0 {
		return false
	}
	ac.callbacks = slices.Delete(ac.callbacks, i, i+1)
	return true
}

// HasRenderCallback returns true if the callback is registered.
func (ac *Actor) HasRenderCallback(cb RenderCallback) bool {
	return slices.Contains(ac.callbacks, cb)
}

// RenderCallbacks returns a copy of the registered callbacks, in order.
func (ac *Actor) RenderCallbacks() []RenderCallback {
	return slices.Clone(ac.callbacks)
}

// RenderStarted calls OnRenderStarted on every registered callback, in order.
func (ac *Actor) RenderStarted(time float64, cam *Camera, rend Renderable, sh *Shader, pass int) {
	for _, cb := range ac.callbacks {
		cb.OnRenderStarted(ac, time, cam, rend, sh, pass)
	}
}
