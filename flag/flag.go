// Package flag holds the global command line flags shared by every binary of
// this module and lets other packages register additional flags before Init
// parses the command line. It is a thin layer on top of spf13/pflag.
package flag

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/pflag"
)

var (
	// Path is the data directory for configuration, logs and diagnostic reports
	Path = "./data"
	// Help prints the usage and exits
	Help = false
	// Version prints the version information and exits
	Version = false
	// Debug enables debug logging
	Debug = false
)

func init() {
	pflag.StringVar(&Path, "path", Path, "Sets the data directory path")
	pflag.BoolVarP(&Help, "help", "h", Help, "Prints the help page")
	pflag.BoolVarP(&Version, "version", "v", Version, "Prints the software version")
	pflag.BoolVar(&Debug, "debug", Debug, "Enables debug mode")
}

// Init parses the command line. With --help it prints the usage and exits.
func Init() {
	pflag.Parse()
	if Help {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}
}

// Register adds a flag bound to the value pointer points to.
// It panics when the name is taken, the pointer is nil or not a pointer, or the
// type is not supported.
func Register(name string, pointer interface{}, usage string) {
	if pflag.Lookup(name) != nil {
		panic(fmt.Sprintf("flag %s already registered", name))
	}

	v := reflect.ValueOf(pointer)
	if v.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("flag %s: value must be a pointer, got %T", name, pointer))
	}

	if v.IsNil() {
		panic(fmt.Sprintf("flag %s: value must not be a nil pointer", name))
	}

	switch p := pointer.(type) {
	case *string:
		pflag.StringVar(p, name, *p, usage)
	case *bool:
		pflag.BoolVar(p, name, *p, usage)
	case *int:
		pflag.IntVar(p, name, *p, usage)
	case *int8:
		pflag.Int8Var(p, name, *p, usage)
	case *int16:
		pflag.Int16Var(p, name, *p, usage)
	case *int32:
		pflag.Int32Var(p, name, *p, usage)
	case *int64:
		pflag.Int64Var(p, name, *p, usage)
	case *uint:
		pflag.UintVar(p, name, *p, usage)
	case *uint8:
		pflag.Uint8Var(p, name, *p, usage)
	case *uint16:
		pflag.Uint16Var(p, name, *p, usage)
	case *uint32:
		pflag.Uint32Var(p, name, *p, usage)
	case *uint64:
		pflag.Uint64Var(p, name, *p, usage)
	case *float32:
		pflag.Float32Var(p, name, *p, usage)
	case *float64:
		pflag.Float64Var(p, name, *p, usage)
	case *[]string:
		pflag.StringSliceVar(p, name, *p, usage)
	default:
		panic(fmt.Sprintf("flag %s: unsupported type %T", name, pointer))
	}
}

// Lookup returns the registered flag with the given name or nil
func Lookup(name string) *pflag.Flag {
	return pflag.Lookup(name)
}
