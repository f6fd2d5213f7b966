package pixelfilter

import "testing"

func TestMedianUniformGray(t *testing.T) {
	src := newUniformBuffer(t, 6, 4, RGB{77, 77, 77})
	if dst := applyTest(t, Median{}, src); !dst.Equal(src) {
		t.Error("median changed a uniform gray image")
	}
}

func TestMedianRemovesImpulse(t *testing.T) {
	src := newUniformBuffer(t, 3, 3, RGB{10, 10, 10})
	src.set(1, 1, RGB{255, 255, 255})
	dst := applyTest(t, Median{}, src)

	for i, p := range dst.Pixels() {
		if p != (RGB{10, 10, 10}) {
			t.Errorf("pixel %d = %v, want {10 10 10}", i, p)
		}
	}
}

func TestMedianUsesFlooredAverage(t *testing.T) {
	src := newUniformBuffer(t, 3, 3, RGB{1, 1, 0})
	// floor(2/3) = 0
	if got := applyTest(t, Median{}, src).At(1, 1); got != Black {
		t.Errorf("At(1, 1) = %v, want black", got)
	}
}

func TestMedianPicksFifthValue(t *testing.T) {
	src := newTestBuffer(t, 3, 3,
		gray(90), gray(10), gray(80),
		gray(20), gray(70), gray(30),
		gray(60), gray(40), gray(50),
	)
	if got := applyTest(t, Median{}, src).At(1, 1); got != gray(50) {
		t.Errorf("At(1, 1) = %v, want 50", got)
	}
}
