package flag_test

import (
	"os"
	"testing"

	"github.com/valentin-kaiser/go-deviceid/flag"
)

func TestDefaultFlags(t *testing.T) {
	if flag.Path != "./data" {
		t.Errorf("Expected default Path to be './data', got '%s'", flag.Path)
	}

	if flag.Help || flag.Version || flag.Debug {
		t.Errorf("Expected boolean flags to default to false, got help=%v version=%v debug=%v", flag.Help, flag.Version, flag.Debug)
	}
}

func TestRegisterFlag(t *testing.T) {
	var stringFlag string
	flag.Register("test-string", &stringFlag, "A test string flag")

	var boolFlag bool
	flag.Register("test-bool", &boolFlag, "A test bool flag")

	var uint32Flag uint32
	flag.Register("test-uint32", &uint32Flag, "A test uint32 flag")

	var float64Flag float64
	flag.Register("test-float64", &float64Flag, "A test float64 flag")

	locations := []string{"/var/tmp/a.dat", "/var/tmp/b.dat"}
	flag.Register("test-locations", &locations, "A test string slice flag")

	f := flag.Lookup("test-locations")
	if f == nil {
		t.Fatal("Lookup should find the registered slice flag")
	}

	if f.DefValue != "[/var/tmp/a.dat,/var/tmp/b.dat]" {
		t.Errorf("unexpected default value %q", f.DefValue)
	}

	if err := f.Value.Set("/opt/c.dat"); err != nil {
		t.Fatalf("setting slice flag failed: %v", err)
	}

	if len(locations) != 1 || locations[0] != "/opt/c.dat" {
		t.Errorf("slice flag did not update the bound value: %v", locations)
	}
}

func TestRegisterFlagPanics(t *testing.T) {
	var testFlag string
	flag.Register("unique-flag", &testFlag, "A unique flag")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when registering duplicate flag")
		}
	}()
	flag.Register("unique-flag", &testFlag, "A duplicate flag")
}

func TestRegisterFlagNonPointer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when registering non-pointer flag")
		}
	}()
	var testFlag string
	flag.Register("non-pointer", testFlag, "A non-pointer flag")
}

func TestRegisterFlagNilPointer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when registering nil pointer flag")
		}
	}()
	var testFlag *string
	flag.Register("nil-pointer", testFlag, "A nil pointer flag")
}

func TestRegisterFlagUnsupportedType(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when registering unsupported type")
		}
	}()
	var testFlag []int
	flag.Register("unsupported", &testFlag, "An unsupported type flag")
}

func TestInit(_ *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"program"}
	flag.Init()
}
