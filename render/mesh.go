package render

// Mesh is a vertex array uploaded to the device.
type Mesh struct {
	dev     Device
	vao     uint32
	count   int32
	indexed bool
}

// NewMesh uploads vertices laid out as described by layout, e.g. {3, 3}
// for position followed by normal. With indices the mesh is drawn indexed.
func NewMesh(dev Device, vertices []float32, indices []uint32, layout ...int32) *Mesh {
	var stride int32
	for _, size := range layout {
		stride += size
	}

	m := &Mesh{
		dev: dev,
		vao: dev.CreateMesh(vertices, indices, layout),
	}
	if len(indices) > 0 {
		m.count = int32(len(indices))
		m.indexed = true
	} else if stride > 0 {
		m.count = int32(len(vertices)) / stride
	}
	return m
}

func (m *Mesh) VertexCount() int32 {
	return m.count
}

func (m *Mesh) Draw() {
	if m.indexed {
		m.dev.DrawElements(m.vao, m.count)
		return
	}
	m.dev.DrawArrays(m.vao, m.count)
}

func (m *Mesh) Delete() {
	m.dev.DeleteMesh(m.vao)
}

var (
	// QuadVertices is a unit quad in the XY plane, drawn with QuadIndices.
	QuadVertices = []float32{
		0.5, 0.5, 0.0,
		0.5, -0.5, 0.0,
		-0.5, -0.5, 0.0,
		-0.5, 0.5, 0.0,
	}
	QuadIndices = []uint32{
		0, 1, 2,
		0, 2, 3,
	}

	// CubeVertices holds 36 vertices of a unit cube, position then face normal.
	CubeVertices = []float32{
		// back
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,

		// front
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,

		// left
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0,
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,

		// right
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0,

		// bottom
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,

		// top
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	}
)
