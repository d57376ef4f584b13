package identity

// Avalanche runs one xorshift round (13, 17, 5) over x
func Avalanche(x uint32) uint32 {
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

// Mix folds every candidate into a single seed: acc = Avalanche(acc ^ c).
// It decorrelates weak inputs and is not meant to be cryptographically strong.
func Mix(candidates ...uint32) uint32 {
	var acc uint32
	for _, c := range candidates {
		acc = Avalanche(acc ^ c)
	}
	return acc
}
