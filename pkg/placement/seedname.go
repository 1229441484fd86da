package placement

import "time"

// seedNameAlphabet omits vowels so that a generated name is unlikely to
// accidentally spell an offensive word, while staying pronounceable enough
// to read aloud or type from memory.
const seedNameAlphabet = "bcdfghjklmnpqrstvwxyz0123456789"

// seedNameLength is the fixed length of a generated display name.
const seedNameLength = 11

// NewSeedName derives an 11-character vowel-free display name from the
// current time, distinct from the numeric attempt seed: two randomizer runs
// started moments apart get different display names even when (by
// coincidence or explicit request) they share a numeric seed.
func NewSeedName() string {
	return seedNameFromNanos(uint64(time.Now().UnixNano()))
}

func seedNameFromNanos(n uint64) string {
	buf := make([]byte, seedNameLength)
	for i := range buf {
		buf[i] = seedNameAlphabet[n%uint64(len(seedNameAlphabet))]
		n /= uint64(len(seedNameAlphabet))
		n = n*2654435761 + 1 // mix so low-order exhaustion doesn't repeat characters
	}
	return string(buf)
}
