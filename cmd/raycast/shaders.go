// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// The volume is drawn as the back faces of its box in object space; the
// fragment shader marches the ray from the eye through the box and
// composites a procedural density field front to back. Texture
// coordinates are recovered from object space positions with the affine
// map of the box mesh, so they follow the voxel inset of the mesh.
const (
	raycastVS = `#version 330
in vec3 vertexPosition;
uniform mat4 mvp;
uniform mat4 model;
out vec3 fragPosition;
void main() {
  fragPosition = vertexPosition;
  gl_Position = mvp * model * vec4(vertexPosition, 1.0);
}
`

	raycastFS = `#version 330
in vec3 fragPosition;
out vec4 finalColor;

uniform vec3 light_position[4];
uniform bool light_enable[4];
uniform vec3 eye_position;
uniform vec3 eye_look;

uniform vec3 box_min;
uniform vec3 box_max;
uniform vec3 vertex_origin;
uniform vec3 tex_origin;
uniform vec3 tex_scale;
uniform float time;
uniform int steps;
uniform bool orthographic;

vec3 texcoord(vec3 p) {
  return tex_origin + tex_scale * (p - vertex_origin);
}

float density(vec3 t) {
  vec3 c = t - vec3(0.5);
  float shell = 0.38 - length(c);
  float g = sin(12.0 * t.x + time) * cos(12.0 * t.y) + sin(12.0 * t.y) * cos(12.0 * t.z) + sin(12.0 * t.z) * cos(12.0 * t.x);
  return clamp(shell * 8.0, 0.0, 1.0) * smoothstep(0.2, 0.9, g);
}

vec3 normalAt(vec3 p, float h) {
  vec3 dx = vec3(h, 0.0, 0.0);
  vec3 dy = vec3(0.0, h, 0.0);
  vec3 dz = vec3(0.0, 0.0, h);
  vec3 g = vec3(
    density(texcoord(p + dx)) - density(texcoord(p - dx)),
    density(texcoord(p + dy)) - density(texcoord(p - dy)),
    density(texcoord(p + dz)) - density(texcoord(p - dz)));
  float l = length(g);
  return l > 0.0 ? -g / l : vec3(0.0);
}

void main() {
  if (gl_FrontFacing) {
    discard;
  }
  vec3 dir;
  vec3 origin;
  if (orthographic) {
    dir = normalize(eye_look);
    origin = fragPosition - dir * 2.0 * length(box_max - box_min);
  } else {
    dir = normalize(fragPosition - eye_position);
    origin = eye_position;
  }
  vec3 inv = 1.0 / dir;
  vec3 t0 = (box_min - origin) * inv;
  vec3 t1 = (box_max - origin) * inv;
  vec3 tmin = min(t0, t1);
  vec3 tmax = max(t0, t1);
  float tnear = max(max(tmin.x, tmin.y), max(tmin.z, 0.0));
  float tfar = min(min(tmax.x, tmax.y), tmax.z);
  if (tfar <= tnear) {
    discard;
  }
  float dt = (tfar - tnear) / float(steps);
  vec4 acc = vec4(0.0);
  for (int i = 0; i < steps && acc.a < 0.99; i++) {
    vec3 p = origin + dir * (tnear + (float(i) + 0.5) * dt);
    float d = density(texcoord(p));
    if (d <= 0.0) {
      continue;
    }
    vec3 n = normalAt(p, dt);
    vec3 col = vec3(0.15);
    for (int l = 0; l < 4; l++) {
      if (light_enable[l]) {
        col += 0.85 * max(dot(n, normalize(light_position[l] - p)), 0.0);
      }
    }
    col *= mix(vec3(0.9, 0.6, 0.3), vec3(0.3, 0.6, 0.9), texcoord(p).z);
    float a = 1.0 - exp(-d * dt * 40.0);
    acc.rgb += (1.0 - acc.a) * a * col;
    acc.a += (1.0 - acc.a) * a;
  }
  finalColor = acc;
}
`
)
