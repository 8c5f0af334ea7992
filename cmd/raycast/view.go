// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/raycast/shader/rlshader"
	"cogentcore.org/raycast/volume"
	"cogentcore.org/raycast/xyz"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// View opens a window showing the scene, orbiting the camera around
// its target. The scene is reloaded when the file changes, if Watch is set.
func View(c *Config) error { //cli:cmd -root
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(c.Width), int32(c.Height), "raycast: "+c.Scene)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	sh := rl.LoadShaderFromMemory(raycastVS, raycastFS)
	defer rl.UnloadShader(sh)
	if !rl.IsShaderValid(sh) {
		return errors.New("raycast View: raycasting shader did not compile")
	}
	prog := rlshader.New(sh)

	st, err := loadStage(c, prog)
	if err != nil {
		return err
	}
	vw := &viewer{config: c, program: prog, stage: st}
	vw.resetCamera()

	if c.Watch {
		w, err := NewWatcher(c.Scene)
		if err != nil {
			slog.Error("raycast View: not watching scene", "file", c.Scene, "err", err)
		} else {
			defer w.Close()
			vw.changed = w.Changed
		}
	}

	for !rl.WindowShouldClose() {
		vw.update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(24, 24, 28, 255))
		rl.BeginMode3D(vw.camera)
		vw.stage.Render(rl.GetTime(), c.Passes, vw.draw)
		rl.EndMode3D()
		rl.DrawFPS(10, 10)
		rl.DrawText(vw.status, 10, 34, 16, rl.LightGray)
		rl.EndDrawing()
	}
	return nil
}

// viewer holds the state of the [View] window.
type viewer struct {
	config  *Config
	program *rlshader.Program
	stage   *volume.Stage
	camera  rl.Camera3D
	changed <-chan struct{}
	status  string
}

// resetCamera sets the raylib camera from the stage camera.
func (vw *viewer) resetCamera() {
	cam := vw.stage.Camera
	proj := rl.CameraPerspective
	fovy := float32(45)
	if vw.config.Orthographic {
		proj = rl.CameraOrthographic
		fovy = 2 * cam.Pose.Pos.Sub(cam.Target).Length()
	}
	vw.camera = rl.Camera3D{
		Position:   rlVector3(cam.Pose.Pos),
		Target:     rlVector3(cam.Target),
		Up:         rlVector3(cam.UpDir),
		Fovy:       fovy,
		Projection: proj,
	}
	vw.status = fmt.Sprintf("%s: %d light(s)", vw.config.Scene, vw.numLights())
}

// update handles scene reloads and moves the camera, keeping the stage
// camera in sync with the raylib one.
func (vw *viewer) update() {
	select {
	case <-vw.changed:
		vw.reload()
	default:
	}
	rl.UpdateCamera(&vw.camera, rl.CameraOrbital)
	cam := vw.stage.Camera
	cam.Pose.Pos = math32.Vec3(vw.camera.Position.X, vw.camera.Position.Y, vw.camera.Position.Z)
	cam.LookAt(math32.Vec3(vw.camera.Target.X, vw.camera.Target.Y, vw.camera.Target.Z),
		math32.Vec3(vw.camera.Up.X, vw.camera.Up.Y, vw.camera.Up.Z))
}

// reload reopens the scene, keeping the current one if it fails
// or has not changed.
func (vw *viewer) reload() {
	sc, err := volume.OpenScene(vw.config.Scene)
	if err == nil && reflect.DeepEqual(sc, vw.stage.Scene) {
		return
	}
	var st *volume.Stage
	if err == nil {
		st, err = buildStage(vw.config, sc, vw.program)
	}
	if err != nil {
		slog.Error("raycast View: reloading scene", "err", err)
		vw.status = "error: " + err.Error()
		return
	}
	vw.stage.Raycast.UnbindActor(vw.stage.Actor)
	vw.stage = st
	vw.resetCamera()
	slog.Info("raycast View: reloaded scene", "file", vw.config.Scene)
}

func (vw *viewer) numLights() int {
	n := 0
	for i := range xyz.MaxLights {
		if vw.stage.Shader.Light(i) != nil {
			n++
		}
	}
	return n
}

// draw draws the box mesh as triangles in object space; the model matrix
// is applied by the vertex shader. Only back faces produce fragments.
func (vw *viewer) draw(ac *xyz.Actor, rend xyz.Renderable, sh *xyz.Shader, pass int) {
	ms, ok := rend.(*volume.BoxMesh)
	if !ok {
		return
	}
	verts := ms.Vertices()
	rl.DisableBackfaceCulling()
	rl.BeginShaderMode(vw.program.Shader)
	rl.Begin(rl.Triangles)
	rl.Color4ub(255, 255, 255, 255)
	for _, i := range volume.TriangleIndex() {
		v := verts[i]
		rl.Vertex3f(v.X, v.Y, v.Z)
	}
	rl.End()
	rl.EndShaderMode()
	rl.EnableBackfaceCulling()
}

func rlVector3(v math32.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
