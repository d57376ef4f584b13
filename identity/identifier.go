// Package identity derives a pseudo-random, machine scoped identifier on first
// use, hides it in an obfuscated cache record and reports the same value on
// every later call for as long as the record stays readable.
//
// Example usage:
//
//	id, err := identity.Get()
//	if err != nil {
//	    // no cache location accepted the record
//	    log.Fatal(err)
//	}
//	fmt.Println(id)
//
// Custom locations and salt:
//
//	svc, err := identity.New(&identity.Config{
//	    Locations: []string{"/var/lib/app/id.dat", "/var/tmp/app-id.dat"},
//	    Salt:      "my-app-salt",
//	})
//	id, err := svc.Identifier()
package identity

const (
	// Length of every identifier
	Length = 36
	// First is the sentinel at index 0
	First = 'd'
	// Last is the sentinel at index Length-1
	Last = '3'
	// Separator is placed at the indexes in separators
	Separator = '-'

	alphabet = "0123456789abcdef"
)

var separators = [...]int{8, 13, 18, 23}

// Identifier is the 36 character device token, e.g.
// d1234567-89ab-cdef-0123-456789abcde3
type Identifier string

// String returns the identifier as plain text
func (id Identifier) String() string {
	return string(id)
}

// HasSentinels reports whether the identifier has the right length and both
// sentinel characters. This is the check applied to cache records.
func (id Identifier) HasSentinels() bool {
	return len(id) == Length && id[0] == First && id[Length-1] == Last
}

// Valid reports whether the identifier is fully well formed: sentinels,
// separators and lowercase hex everywhere else
func (id Identifier) Valid() bool {
	if !id.HasSentinels() {
		return false
	}

	for i := 1; i < Length-1; i++ {
		switch {
		case isSeparator(i):
			if id[i] != Separator {
				return false
			}
		case !isHex(id[i]):
			return false
		}
	}
	return true
}

func isSeparator(i int) bool {
	for _, s := range separators {
		if i == s {
			return true
		}
	}
	return false
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
