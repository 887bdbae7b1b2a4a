package integrators

import (
	"math"
	"testing"
)

func forced(t, y float64) (float64, error) {
	return -0.5*y + math.Sin(t), nil
}

func BenchmarkEuler(b *testing.B) {
	integ := NewEuler()
	y := 1.0
	for i := 0; i < b.N; i++ {
		y, _ = integ.Step(forced, float64(i)*0.01, y, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	y := 1.0
	for i := 0; i < b.N; i++ {
		y, _ = integ.Step(forced, float64(i)*0.01, y, 0.01)
	}
}

func BenchmarkRK45(b *testing.B) {
	integ := NewRK45()
	y := 1.0
	for i := 0; i < b.N; i++ {
		y, _, _ = integ.StepAdaptive(forced, float64(i)*0.01, y, 0.01, 1e-6)
	}
}
