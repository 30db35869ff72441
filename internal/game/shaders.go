package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape modes carried per vertex in aMode.
const (
	modeSolid = 0.0
	modeDisc  = 1.0
	modeGlyph = 2.0
)

// Vertex shader: surface-space quads. aLocal is the quad's own coordinate
// system: [-1,1] for discs, atlas UVs for glyphs, unused for solid fills.
const shapeVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aLocal;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aMode;

uniform vec2 uResolution;

out vec2 vLocal;
out vec4 vColor;
flat out int vMode;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vLocal = aLocal;
    vColor = aColor;
    vMode = int(aMode + 0.5);
}
` + "\x00"

// Fragment shader: solid fill, anti-aliased disc, or font atlas sample.
const shapeFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vLocal;
in vec4 vColor;
flat in int vMode;
out vec4 FragColor;

void main() {
    if (vMode == 1) {
        float d = length(vLocal);
        float edge = fwidth(d);
        float a = 1.0 - smoothstep(1.0 - edge, 1.0, d);
        if (a <= 0.0) discard;
        FragColor = vec4(vColor.rgb, vColor.a * a);
        return;
    }
    if (vMode == 2) {
        vec4 t = texture(uFontTex, vLocal);
        if (t.a < 0.01) discard;
        FragColor = vec4(vColor.rgb, t.a * vColor.a);
        return;
    }
    FragColor = vColor;
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
