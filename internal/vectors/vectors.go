// Package vectors holds SHA-1 known-answer tests from FIPS PUB 180-1 and RFC 3174.
package vectors

import "strings"

// Vector is a message given as Pattern repeated Count times, and its expected digest in lowercase hex.
type Vector struct {
	Name    string
	Pattern string
	Count   int
	Digest  string
}

// Message returns the full message.
func (v Vector) Message() []byte {
	return []byte(strings.Repeat(v.Pattern, v.Count))
}

// Len returns the length of the message in bytes.
func (v Vector) Len() int {
	return len(v.Pattern) * v.Count
}

// All lists the known-answer tests.
var All = []Vector{
	{
		Name:    "empty",
		Pattern: "",
		Count:   1,
		Digest:  "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	},
	{
		Name:    "abc",
		Pattern: "abc",
		Count:   1,
		Digest:  "a9993e364706816aba3e25717850c26c9cd0d89d",
	},
	{
		Name:    "448 bits",
		Pattern: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		Count:   1,
		Digest:  "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
	},
	{
		Name:    "million a",
		Pattern: "a",
		Count:   1000000,
		Digest:  "34aa973cd4c4daa4f61eeb2bdbad27316534016f",
	},
	{
		Name:    "512-bit multiple",
		Pattern: "0123456701234567012345670123456701234567012345670123456701234567",
		Count:   10,
		Digest:  "dea356a2cddd90c7a7ecedc5ebb563934f460452",
	},
	{
		Name:    "alphabet",
		Pattern: "abcdefghijklmnopqrstuvwxyz",
		Count:   1,
		Digest:  "32d10c7b8cf96570ca04ce37f2a19d84240d3a89",
	},
	{
		Name:    "quick brown fox",
		Pattern: "The quick brown fox jumps over the lazy dog",
		Count:   1,
		Digest:  "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
	},
}
