package pixelfilter

import (
	"math/rand"
	"testing"
)

func newTestBuffer(t *testing.T, width, height int, pix ...RGB) *Buffer {
	t.Helper()
	b, err := NewBuffer(width, height, pix)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) error = %v", width, height, err)
	}
	return b
}

func newUniformBuffer(t *testing.T, width, height int, c RGB) *Buffer {
	t.Helper()
	b, err := NewUniform(width, height, c)
	if err != nil {
		t.Fatalf("NewUniform(%d, %d) error = %v", width, height, err)
	}
	return b
}

func randomBuffer(seed int64, width, height int) *Buffer {
	r := rand.New(rand.NewSource(seed))
	b := newBuffer(width, height)
	for i := range b.pix {
		b.pix[i] = RGB{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256))}
	}
	return b
}

func catalogFilters(t *testing.T) map[string]Filter {
	t.Helper()
	filters := make(map[string]Filter)
	for _, name := range Names() {
		f, err := New(name, DefaultParams())
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		filters[name] = f
	}
	return filters
}
