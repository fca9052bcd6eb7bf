package dissolve

// Salts for the independent per-primitive random streams.
//
// Each stream hashes ID*salt, so adding a new random quantity requires
// picking a salt that is not already listed here.
const (
	SaltSweep     uint32 = 761
	SaltSwirl     uint32 = 367
	SaltCellSize  uint32 = 701
	SaltScatter   uint32 = 131
	SaltSelection uint32 = 877
	SaltHighlight uint32 = 329
	SaltShading   uint32 = 227
)

// Hash maps a seed to a pseudo-random value in [0, 1).
//
// The result depends only on the seed, so it may be called from any number
// of Goroutines at once.
func Hash(seed uint32) float64 {
	x := seed ^ 2747636419
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return float64(x) / (1 << 32)
}

// StreamHash is the value of the random stream identified by salt for the
// primitive with the given ID. The product wraps modulo 2^32.
func StreamHash(id, salt uint32) float64 {
	return Hash(id * salt)
}
