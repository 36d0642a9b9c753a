package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is a VAO/VBO pair holding interleaved float vertices.
type Mesh struct {
	vao, vbo uint32
	count    int32
}

// NewMesh uploads vertices. components lists the float count of each
// attribute in order, e.g. {3, 2} for position + uv.
func NewMesh(vertices []float32, components ...int32) *Mesh {
	var stride int32
	for _, c := range components {
		stride += c
	}

	m := &Mesh{count: int32(len(vertices)) / stride}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var offset uintptr
	for i, c := range components {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), c, gl.FLOAT, false, stride*4, offset)
		offset += uintptr(c) * 4
	}

	gl.BindVertexArray(0)
	return m
}

// Draw issues one glDrawArrays over the whole mesh.
func (m *Mesh) Draw(mode uint32) {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(mode, 0, m.count)
}

// Delete releases the GL objects. Safe to call more than once.
func (m *Mesh) Delete() {
	if m == nil {
		return
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
