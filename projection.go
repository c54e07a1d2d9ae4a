package cubewire

import "math"

// ProjectVector multiplies v (as a row vector with an implicit w of 1)
// through m and completes the perspective divide. When the homogeneous
// weight comes out exactly zero the divide is skipped and the undivided
// components are returned; a point on the camera plane passes through
// unprojected rather than blowing up.
func ProjectVector(v Vector3, m Matrix) Vector3 {
	o := Vector3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2],
	}

	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]

	if w != 0.0 {
		o.X /= w
		o.Y /= w
		o.Z /= w
	}

	return o
}

// NewProjectionMatrix builds the perspective projection used by the frame
// renderer. fovDegrees/2 is fed to Tan as-is, in degrees; converting it to
// radians changes the rendered field of view, so the degree value stays.
func NewProjectionMatrix(fovDegrees, near, far, width, height float32) Matrix {
	aspect := height / width
	scale := float32(1.0 / math.Tan(float64(fovDegrees)/2.0))

	var m Matrix
	m[0][0] = aspect * scale
	m[1][1] = scale
	m[2][2] = far / (far - near)
	m[3][2] = (-far * near) / (far - near)
	m[2][3] = 1.0
	m[3][3] = 0.0
	return m
}
