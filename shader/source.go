package shader

// SamplerPrefix marks uniforms that are bound to textures by file naming
// convention rather than set as values.
const SamplerPrefix = "tex"

// VertexSource is the fixed vertex stage: a passthrough that supplies
// clip-space position and a texture coordinate for the full-screen quad.
// Only the fragment stage is user-supplied.
const VertexSource = `#version 410 core
layout (location = 0) in vec3 in_pos;
layout (location = 1) in vec2 in_texcoord;
out vec2 out_texcoord;

void main() {
    gl_Position = vec4(in_pos, 1.0);
    out_texcoord = in_texcoord;
}
`
