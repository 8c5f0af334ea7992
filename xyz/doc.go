// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the scene-level objects that a GPU volume renderer
// works with: transforms, cameras, lights bound to shaders, and actors
// that carry a renderable, per-actor uniforms, and an ordered list of
// render callbacks, along with a [Renderer] that drives them.
package xyz
