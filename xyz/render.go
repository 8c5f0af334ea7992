// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// DrawFunc submits the draw of one pass of an actor. It is called after all
// render callbacks have run for that pass and the actor uniforms have been
// applied to the program.
type DrawFunc func(ac *Actor, rend Renderable, sh *Shader, pass int)

// Renderer draws actors with a camera, pass by pass. All work happens
// synchronously on the calling goroutine.
type Renderer struct {

	// Camera is the camera used for rendering.
	Camera *Camera

	// Passes is the number of passes per actor; values < 1 mean 1.
	Passes int

	// Draw submits the draw for a pass; nil only runs the callbacks and uniforms.
	Draw DrawFunc
}

// NewRenderer returns a single-pass renderer for the given camera.
func NewRenderer(cam *Camera, draw DrawFunc) *Renderer {
	return &Renderer{Camera: cam, Passes: 1, Draw: draw}
}

// Render draws the given actors at the given time. Actors without a
// renderable in LOD slot 0 are skipped. For each pass, the actor's render
// callbacks complete before the pass is drawn.
func (rn *Renderer) Render(time float64, actors ...*Actor) {
	np := max(rn.Passes, 1)
	for _, ac := range actors {
		rend := ac.LOD(0)
		if rend == nil {
			continue
		}
		sh := ac.Shader
		for pass := range np {
			ac.RenderStarted(time, rn.Camera, rend, sh, pass)
			if sh.HasProgram() {
				ac.Uniforms.Apply(sh.Program)
			}
			if rn.Draw != nil {
				rn.Draw(ac, rend, sh, pass)
			}
		}
	}
}
