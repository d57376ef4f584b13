package identity_test

import (
	"testing"

	"github.com/valentin-kaiser/go-deviceid/identity"
)

func TestAvalanche(t *testing.T) {
	tests := map[uint32]uint32{
		0:          0,
		1:          270369,
		0xdeadbeef: 1199382711,
	}

	for in, expected := range tests {
		if got := identity.Avalanche(in); got != expected {
			t.Errorf("Avalanche(%#x) = %d, expected %d", in, got, expected)
		}
	}
}

func TestMix(t *testing.T) {
	if got := identity.Mix(); got != 0 {
		t.Errorf("Mix() = %d, expected 0", got)
	}

	if got := identity.Mix(1, 2, 3, 4, 5); got != 1226860081 {
		t.Errorf("Mix(1, 2, 3, 4, 5) = %d, expected 1226860081", got)
	}

	if identity.Mix(1, 2, 3, 4, 5) != identity.Mix(1, 2, 3, 4, 5) {
		t.Error("Mix() is not deterministic")
	}

	if identity.Mix(1, 2, 3, 4, 5) == identity.Mix(5, 4, 3, 2, 1) {
		t.Error("Mix() should depend on candidate order")
	}
}
