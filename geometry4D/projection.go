package geometry4D

// Stereographic projects the unit 3-sphere minus the pole (0,0,0,1) onto R3.
// The map is conformal with pointwise factor 1/(1-w).
type Stereographic struct {
	// PoleMargin is the smallest admissible projection denominator (1-w).
	// Closer to the pole the image blows up and the cell is reported as
	// undefined rather than as a huge finite number.
	PoleMargin float64
}

// NewStereographic uses the default safety margin. The fixed PoleRotation
// keeps the whole sampled strip more than an order of magnitude outside it.
func NewStereographic() Stereographic {
	return Stereographic{PoleMargin: 0.01}
}

// Project maps a (rotated) point on S3 to R3 and returns the local conformal
// scale factor of the map at that point. Within PoleMargin of the pole both
// results are NaN.
func (st Stereographic) Project(x Vec4) (c Vec3, scale float64) {
	var (
		denom = 1. - x[3]
	)
	if denom < st.PoleMargin {
		return Vec3{nan, nan, nan}, nan
	}
	scale = 1. / denom
	c = Vec3{x[0] * scale, x[1] * scale, x[2] * scale}
	return
}
