package core

import "math"

const perlinPointCount = 256

// Perlin is a lattice-gradient noise generator: 256 random unit vectors
// indexed through three independent permutation tables, sampled with
// trilinear interpolation and Hermite smoothing.
type Perlin struct {
	randVec [perlinPointCount]Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a generator seeded from the package's random source
func NewPerlin() *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = RandomInUnitSphere()
	}
	perlinGeneratePerm(&p.permX)
	perlinGeneratePerm(&p.permY)
	perlinGeneratePerm(&p.permZ)
	return p
}

// Noise samples smoothed lattice noise at point p, roughly in [-1, 1]
func (p *Perlin) Noise(point Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return trilinearInterpolate(c, u, v, w)
}

// Turb sums |Noise| at successively doubled frequencies and halved weights,
// producing the turbulent pattern used for marble-like textures.
func (p *Perlin) Turb(point Vec3, depth int) float64 {
	accum := 0.0
	tempP := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(p.Noise(tempP))
		weight *= 0.5
		tempP = tempP.Multiply(2.0)
	}

	return accum
}

func trilinearInterpolate(c [2][2][2]Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := Vec3{X: u - float64(i), Y: v - float64(j), Z: w - float64(k)}
				accum += (float64(i)*uu + (1-float64(i))*(1-uu)) *
					(float64(j)*vv + (1-float64(j))*(1-vv)) *
					(float64(k)*ww + (1-float64(k))*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

func perlinGeneratePerm(p *[perlinPointCount]int) {
	for i := range p {
		p[i] = i
	}
	permute(p, perlinPointCount)
}

func permute(p *[perlinPointCount]int, n int) {
	for i := n - 1; i > 0; i-- {
		target := int(RandomDoubleRange(0, float64(i+1)))
		if target > i {
			target = i
		}
		p[i], p[target] = p[target], p[i]
	}
}
