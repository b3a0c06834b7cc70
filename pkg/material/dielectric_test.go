package material

import (
	"testing"

	"github.com/arkhaios/photon-raytracer/pkg/core"
)

func TestDielectricAttenuationIsAlwaysOnes(t *testing.T) {
	d := NewDielectric(1.5)
	hit := HitRecord{Point: core.Vec3{}, Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0.3))

	for i := 0; i < 20; i++ {
		attenuation, _, ok := d.Scatter(ray, hit)
		if !ok {
			t.Fatal("Dielectric should always scatter")
		}
		if attenuation != core.Ones() {
			t.Fatalf("attenuation = %v, want (1,1,1)", attenuation)
		}
	}
}
