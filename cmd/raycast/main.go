// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command raycast renders a volume described by a scene file with GPU
// raycasting, and prints the uniforms it computes for the shader.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/cli"
	"cogentcore.org/raycast/shader"
	"cogentcore.org/raycast/xyz"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the raycast cli.
type Config struct {

	// Scene is the TOML scene file describing the volume, camera and lights.
	Scene string `posarg:"0" required:"-" default:"scene.toml"`

	// Time is the render time passed to the render callbacks
	// by the uniforms command.
	Time float64 `cmd:"uniforms"`

	// Passes is the number of render passes per frame.
	Passes int `default:"1" min:"1"`

	// Steps is the number of samples taken along each ray.
	Steps int `default:"128" min:"1"`

	// Orthographic uses parallel rays along the camera look direction.
	Orthographic bool `flag:"o,ortho"`

	// Width is the initial window width.
	Width int `cmd:"view" default:"960"`

	// Height is the initial window height.
	Height int `cmd:"view" default:"720"`

	// Watch reloads the scene file when it changes.
	Watch bool `cmd:"view" default:"true"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("raycast", "Raycast renders a 3D volume on the GPU.")
	cli.Run(opts, &Config{}, View, Uniforms)
}

// Uniforms prints the uniforms that would be passed to the raycasting
// shader for the first frame of the scene, without opening a window.
func Uniforms(c *Config) error { //cli:cmd
	return printUniforms(os.Stdout, c)
}

// printProgram is a [shader.Program] that declares every uniform of the
// raycasting shader and prints the values it is given, colored if the
// output is a terminal.
type printProgram struct {
	out *termenv.Output
}

func (pp *printProgram) HasUniform(name string) bool {
	return true
}

func (pp *printProgram) SetUniform(u *shader.Uniform) {
	fmt.Fprintln(pp.out, pp.out.String(u.Name).Bold(), strings.TrimPrefix(u.String(), u.Name+" "))
}

func (pp *printProgram) comment(format string, args ...any) {
	fmt.Fprintln(pp.out, pp.out.String("# "+fmt.Sprintf(format, args...)).Faint())
}

func printUniforms(w io.Writer, c *Config) error {
	pp := &printProgram{out: termenv.NewOutput(w)}
	st, err := loadStage(c, pp)
	if err != nil {
		return err
	}
	pp.comment("%s: %d pass(es) at time %g", c.Scene, max(c.Passes, 1), c.Time)
	st.Render(c.Time, c.Passes, func(ac *xyz.Actor, rend xyz.Renderable, sh *xyz.Shader, pass int) {
		pp.comment("draw %s pass %d", ac.Name, pass)
	})
	return nil
}
