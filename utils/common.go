package utils

const (
	// NODETOL is the tolerance below which two sampled coordinates are
	// considered coincident.
	NODETOL = 1.e-12
	// UNITTOL bounds the allowed deviation of embedded points from unit norm.
	UNITTOL = 1.e-9
)
