// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package volume renders a 3D scalar field by GPU raycasting.
//
// A [Raycast] owns the bounding box mesh of the volume, and is registered
// as a render callback on the [xyz.Actor] that draws that mesh. Before the
// first pass of every draw, it computes the light positions, eye position and
// eye look direction in the object space of the actor, and stores them as
// uniforms of the actor for the raycasting shader to use:
//
//	uniform vec3 light_position[4];
//	uniform bool light_enable[4];
//	uniform vec3 eye_position;
//	uniform vec3 eye_look;
//
// Each uniform is only computed if the shader program declares it.
// The marching of rays through the 3D texture is done by the shader.
package volume

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/xyz"
)

// Raycast is the render callback that prepares an actor for GPU raycasting
// of a volume, and the owner of the box mesh the volume is drawn with.
type Raycast struct {

	// OnUpdate, if set, is called after the standard uniforms have been
	// updated, to compute any additional uniforms the shader needs.
	// It runs under the same conditions as [Raycast.UpdateUniforms].
	OnUpdate func(rc *Raycast, ac *xyz.Actor, time float64, cam *xyz.Camera, rend xyz.Renderable, sh *xyz.Shader)

	box  math32.Box3
	mesh *BoxMesh

	// singular holds the singular world matrices already reported, by transform.
	singular map[*xyz.Transform]math32.Matrix4
}

var _ xyz.RenderCallback = (*Raycast)(nil)

// New returns a new Raycast with the unit box [0,0,0]-[1,1,1]
// and default texture coordinates.
func New() *Raycast {
	rc := &Raycast{mesh: NewBoxMesh("volume-box")}
	rc.SetBox(math32.B3(0, 0, 0, 1, 1, 1))
	return rc
}

// Mesh returns the box mesh, which is shared with the actors this is bound to.
func (rc *Raycast) Mesh() *BoxMesh {
	return rc.mesh
}

// Box returns the box last set by [Raycast.SetBox].
func (rc *Raycast) Box() math32.Box3 {
	return rc.box
}

// SetBox sets the object space box of the volume, regenerating the mesh vertices.
// It must not be called while the mesh is being drawn.
func (rc *Raycast) SetBox(box math32.Box3) {
	rc.box = box
	rc.mesh.SetBox(box)
}

// GenerateTextureCoordinates sets texture coordinates inset by half a voxel
// for a volume with the given number of voxels along each axis, so that the
// box faces sample at voxel centers. If any axis is not positive, the error
// is logged and returned and the texture coordinates are left unchanged.
func (rc *Raycast) GenerateTextureCoordinates(size math32.Vector3i) error {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return errors.Log(fmt.Errorf("volume.Raycast GenerateTextureCoordinates: size %v does not represent a 3D image", size))
	}
	rc.mesh.SetVoxelTexCoords(size)
	return nil
}

// ResetTextureCoordinates restores the default texture coordinates
// (the unit cube corners, without inset).
func (rc *Raycast) ResetTextureCoordinates() {
	rc.mesh.ResetTexCoords()
}

// BindActor registers this as a render callback of the actor, moving it to
// the end if it was already registered, and sets the box mesh as the
// actor's level-of-detail 0 renderable.
func (rc *Raycast) BindActor(ac *xyz.Actor) {
	ac.AddRenderCallback(rc)
	ac.SetLOD(0, rc.mesh)
}

// UnbindActor undoes [Raycast.BindActor], returning false if the actor
// was not bound. LOD 0 is cleared only if it still holds the box mesh.
func (rc *Raycast) UnbindActor(ac *xyz.Actor) bool {
	if !ac.RemoveRenderCallback(rc) {
		return false
	}
	if ac.LOD(0) == xyz.Renderable(rc.mesh) {
		ac.SetLOD(0, nil)
	}
	return true
}

// OnRenderStarted updates the uniforms on the first pass only,
// and only if the shader has a compiled program.
func (rc *Raycast) OnRenderStarted(ac *xyz.Actor, time float64, cam *xyz.Camera, rend xyz.Renderable, sh *xyz.Shader, pass int) {
	if pass > 0 {
		return
	}
	if sh.HasProgram() {
		rc.UpdateUniforms(ac, time, cam, rend, sh)
	}
}
