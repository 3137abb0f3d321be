package main

import (
	"fmt"
	"math"

	"github.com/crystalbridge/builderweb/scene"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	webgl "github.com/seqsense/webgl-go"
)

type lightLocations struct {
	position, direction, color, cone webgl.Location
}

type renderer struct {
	gl      *webgl.WebGL
	program webgl.Program
	buf     webgl.Buffer
	points  int
	stride  int
	scale   float32

	modelMatrix, viewMatrix, projectionMatrix webgl.Location
	cameraPosition                            webgl.Location

	color, emissive, surface [scene.NumMaterials]webgl.Location

	ambient, keyDirection, keyColor webgl.Location
	fillDirection, fillColor        webgl.Location
	sky, ground                     webgl.Location
	numLights, transparentPass      webgl.Location
	lights                          [maxLights]lightLocations

	revision int
}

const (
	aVertexPosition = 0
	aVertexMaterial = 1
)

func newRenderer(gl *webgl.WebGL, pp *pc.PointCloud, scale float32) (*renderer, error) {
	program, err := buildProgram(gl, vsSource, fsSource)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		gl:      gl,
		program: program,
		points:  pp.Points,
		stride:  pp.Stride(),
		scale:   scale,
	}
	loc := func(name string) webgl.Location {
		return gl.GetUniformLocation(program, name)
	}
	r.modelMatrix = loc("uModelMatrix")
	r.viewMatrix = loc("uViewMatrix")
	r.projectionMatrix = loc("uProjectionMatrix")
	r.cameraPosition = loc("uCameraPosition")
	for i := range r.color {
		r.color[i] = loc(fmt.Sprintf("uColor[%d]", i))
		r.emissive[i] = loc(fmt.Sprintf("uEmissive[%d]", i))
		r.surface[i] = loc(fmt.Sprintf("uSurface[%d]", i))
	}
	r.ambient = loc("uAmbient")
	r.keyDirection = loc("uKeyDirection")
	r.keyColor = loc("uKeyColor")
	r.fillDirection = loc("uFillDirection")
	r.fillColor = loc("uFillColor")
	r.sky = loc("uSkyColor")
	r.ground = loc("uGroundColor")
	r.numLights = loc("uNumLights")
	r.transparentPass = loc("uTransparentPass")
	for i := range r.lights {
		r.lights[i] = lightLocations{
			position:  loc(fmt.Sprintf("uLightPosition[%d]", i)),
			direction: loc(fmt.Sprintf("uLightDirection[%d]", i)),
			color:     loc(fmt.Sprintf("uLightColor[%d]", i)),
			cone:      loc(fmt.Sprintf("uLightCone[%d]", i)),
		}
	}

	r.buf = gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.buf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(pp.Data), gl.STATIC_DRAW)

	gl.UseProgram(program)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexMaterial)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearDepth(1.0)

	return r, nil
}

func (r *renderer) setCamera(width, height int, cam cameraConfig) {
	gl := r.gl
	pos := mat.Vec3{cam.Position[0], cam.Position[1], cam.Position[2]}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projectionMatrix, false, mat.Perspective(
		cam.FOV*math.Pi/180,
		float32(width)/float32(height),
		cam.Near, cam.Far,
	))
	gl.UniformMatrix4fv(r.viewMatrix, false, mat.Translate(-pos[0], -pos[1], -pos[2]))
	gl.Uniform3fv(r.cameraPosition, pos)
	gl.Viewport(0, 0, width, height)
}

// applyTheme uploads the theme uniforms when th was recomputed since the
// last call.
func (r *renderer) applyTheme(th *scene.Theme) bool {
	if th.Revision() == r.revision {
		return false
	}
	r.revision = th.Revision()

	u := newThemeUniforms(th, r.scale)
	gl := r.gl
	gl.UseProgram(r.program)
	for i := range u.color {
		gl.Uniform3fv(r.color[i], u.color[i])
		gl.Uniform3fv(r.emissive[i], u.emissive[i])
		gl.Uniform3fv(r.surface[i], u.surface[i])
	}
	gl.Uniform3fv(r.ambient, u.ambient)
	gl.Uniform3fv(r.keyDirection, u.keyDirection)
	gl.Uniform3fv(r.keyColor, u.keyColor)
	gl.Uniform3fv(r.fillDirection, u.fillDirection)
	gl.Uniform3fv(r.fillColor, u.fillColor)
	gl.Uniform3fv(r.sky, u.sky)
	gl.Uniform3fv(r.ground, u.ground)
	gl.Uniform1i(r.numLights, len(u.lights))
	for i, l := range u.lights {
		gl.Uniform3fv(r.lights[i].position, l.position)
		gl.Uniform3fv(r.lights[i].direction, l.direction)
		gl.Uniform3fv(r.lights[i].color, l.color)
		gl.Uniform3fv(r.lights[i].cone, l.cone)
	}
	return true
}

func (r *renderer) draw(model mat.Mat4) {
	gl := r.gl
	// Transparent so that the page background shows through.
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.points == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.buf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, r.stride, 0)
	gl.VertexAttribIPointer(aVertexMaterial, 1, gl.UNSIGNED_INT, r.stride, 3*4)
	gl.UniformMatrix4fv(r.modelMatrix, false, model)

	gl.Disable(gl.BLEND)
	gl.Uniform1i(r.transparentPass, 0)
	gl.DrawArrays(gl.TRIANGLES, 0, r.points)

	gl.Enable(gl.BLEND)
	gl.Uniform1i(r.transparentPass, 1)
	gl.DrawArrays(gl.TRIANGLES, 0, r.points)
}
