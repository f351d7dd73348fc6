package grid

// SeamIndex resolves neighbor offsets on the mixed periodic/open grid. It is
// the single place the boundary policy lives: u indexes wrap through the
// deck identification (a wrap that crosses the seam an odd number of times
// flips the v index), v indexes clamp at the open edges where the
// differencing switches to one-sided stencils.
type SeamIndex struct {
	Nu, Nv int
}

// WrapU maps any u index onto the stored range [0,Nu) and reports whether
// the reference crossed the seam an odd number of times.
func (s SeamIndex) WrapU(i int) (iw int, flipped bool) {
	var crossings int
	iw = i
	for iw < 0 {
		iw += s.Nu
		crossings++
	}
	for iw >= s.Nu {
		iw -= s.Nu
		crossings++
	}
	flipped = crossings%2 == 1
	return
}

// FlipV mirrors a v index across the strip's center line, the partner of a
// seam crossing.
func (s SeamIndex) FlipV(j int) int { return s.Nv - 1 - j }

// ClampV pins out-of-range v indexes to the open edges.
func (s SeamIndex) ClampV(j int) int {
	if j < 0 {
		return 0
	}
	if j >= s.Nv {
		return s.Nv - 1
	}
	return j
}

// Neighbor resolves an arbitrary (i,j) offset pair to the stored sample it
// refers to under the full boundary policy.
func (s SeamIndex) Neighbor(i, j int) (iw, jw int) {
	iw, flipped := s.WrapU(i)
	jw = s.ClampV(j)
	if flipped {
		jw = s.FlipV(jw)
	}
	return
}
