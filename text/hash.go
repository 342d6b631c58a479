package text

import "github.com/zeebo/xxh3"

// Hash returns a 64-bit XXH3 digest of the content, suitable for hash
// tables and content fingerprints. The poison flag does not participate.
func (s *String) Hash() uint64 {
	return xxh3.Hash(s.Data())
}

// HashSeed returns a seeded 64-bit XXH3 digest of the content.
func (s *String) HashSeed(seed uint64) uint64 {
	return xxh3.HashSeed(s.Data(), seed)
}
