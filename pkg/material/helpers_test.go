package material

import "github.com/df07/go-pathtracer/pkg/core"

// fixedSampler returns the same value for every draw
type fixedSampler struct {
	value float64
}

func (s fixedSampler) Get1D() float64 { return s.value }
func (s fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

// floorHit is a front-face hit on the y=0 plane at the origin
func floorHit(m Material) *HitRecord {
	return &HitRecord{
		Point:     core.NewPoint(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  m,
	}
}
