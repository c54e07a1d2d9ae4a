package cubewire

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix is a 4x4 transform in the row-vector convention: points multiply
// from the left, row 3 carries translation and column 3 carries the
// perspective terms. The zero value is the all-zero matrix.
type Matrix [4][4]float32

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func NewMatrixFromData(data [4][4]float32) Matrix {
	return Matrix(data)
}

func IdentMatrix() Matrix {
	var m Matrix
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return m
}

func TransMatrix(x, y, z float32) Matrix {
	m := IdentMatrix()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func NewRotationMatrix(axis int, theta float64) Matrix {
	var m Matrix
	c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
	m[3][3] = 1.0
	switch axis {
	case ROTX:
		m[0][0] = 1.0
		m[1][1] = c
		m[2][1] = -s
		m[1][2] = s
		m[2][2] = c
	case ROTY:
		m[1][1] = 1.0
		m[0][0] = c
		m[2][0] = s
		m[0][2] = -s
		m[2][2] = c
	case ROTZ:
		m[2][2] = 1.0
		m[0][0] = c
		m[1][0] = -s
		m[0][1] = s
		m[1][1] = c
	}
	return m
}

// FromMgl32 converts an mgl32 column-vector matrix into the row-vector
// form used here. The flat mgl layout is column-major, so reading it in
// groups of four transposes it into row-vector convention.
func FromMgl32(m mgl32.Mat4) Matrix {
	return Matrix{
		{m[0], m[1], m[2], m[3]},
		{m[4], m[5], m[6], m[7]},
		{m[8], m[9], m[10], m[11]},
		{m[12], m[13], m[14], m[15]},
	}
}

func (m Matrix) MultiplyBy(other Matrix) Matrix {
	var result Matrix
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			result[x][y] = m[0][y]*other[x][0] +
				m[1][y]*other[x][1] +
				m[2][y]*other[x][2] +
				m[3][y]*other[x][3]
		}
	}
	return result
}

// TransformVector applies the affine part of the matrix to v: rotation and
// scale from the upper 3x3 plus the translation row. No perspective divide
// happens here; ProjectVector is the projective variant.
func (m Matrix) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2],
	}
}

func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
