// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/xyz"
)

// Names of the uniforms computed by [Raycast.UpdateUniforms].
const (
	LightPositionName = "light_position"
	LightEnableName   = "light_enable"
	EyePositionName   = "eye_position"
	EyeLookName       = "eye_look"
)

// NumLights is the number of light slots passed to the shader.
const NumLights = 4

// UpdateUniforms computes the raycasting uniforms in the object space of
// the actor and stores them in the actor uniforms. Each uniform is only
// computed if the shader program declares it; light_position and
// light_enable are only computed if both are declared, and always as full
// arrays of [NumLights], with zero positions for empty slots.
//
// Positions are taken into object space with the inverse of the actor
// world matrix. The look direction uses the transpose of that inverse,
// which keeps it correct under non-uniform scaling; it is not normalized.
//
// The shader must have a compiled program: calling this without one is a
// programming error and panics.
func (rc *Raycast) UpdateUniforms(ac *xyz.Actor, time float64, cam *xyz.Camera, rend xyz.Renderable, sh *xyz.Shader) {
	if !sh.HasProgram() {
		panic("volume.Raycast UpdateUniforms: shader has no program")
	}
	prog := sh.Program
	inv := rc.objectMatrix(ac)

	if prog.HasUniform(LightPositionName) && prog.HasUniform(LightEnableName) {
		var pos [NumLights]math32.Vector3
		var enable [NumLights]bool
		for i := range NumLights {
			lt := sh.Light(i)
			if lt == nil {
				continue
			}
			enable[i] = true
			pos[i] = lt.WorldPosition(cam).MulMatrix4(&inv)
		}
		ac.Uniform(LightPositionName).SetVector3s(pos[:]...)
		ac.Uniform(LightEnableName).SetBools(enable[:]...)
	}

	if prog.HasUniform(EyePositionName) {
		ac.Uniform(EyePositionName).SetVector3(cam.EyePosition().MulMatrix4(&inv))
	}

	if prog.HasUniform(EyeLookName) {
		look := cam.EyeLook()
		if ac.Transform != nil {
			invT := inv
			invT.Transpose()
			look = math32.Vector3FromVector4(look.MulMatrix4AsVector4(&invT, 0))
		}
		ac.Uniform(EyeLookName).SetVector3(look)
	}

	if rc.OnUpdate != nil {
		rc.OnUpdate(rc, ac, time, cam, rend, sh)
	}
}

// objectMatrix returns the matrix taking world coordinates into the
// object space of the actor: the identity for an actor without a transform.
// A singular world matrix is treated as the identity, and logged once
// per transform until its world matrix changes.
func (rc *Raycast) objectMatrix(ac *xyz.Actor) math32.Matrix4 {
	tr := ac.Transform
	if tr == nil {
		return *math32.Identity4()
	}
	inv, err := tr.InverseWorldMatrix()
	if err == nil {
		delete(rc.singular, tr)
		return inv
	}
	if last, ok := rc.singular[tr]; ok && last == tr.WorldMatrix {
		return inv
	}
	if rc.singular == nil {
		rc.singular = make(map[*xyz.Transform]math32.Matrix4)
	}
	rc.singular[tr] = tr.WorldMatrix
	errors.Log(fmt.Errorf("volume.Raycast UpdateUniforms: actor %q world matrix: %w", ac.Name, err))
	return inv
}
