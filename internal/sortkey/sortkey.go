// Package sortkey implements fractional ordering keys for gallery items.
//
// Keys are opaque byte strings compared lexicographically (SQLite BLOB
// comparison semantics). A key can always be generated between any two
// existing keys, before the first key, or after the last key, without
// renumbering neighbours.
package sortkey

import (
	"bytes"
	"math/big"
)

// Initial is the key assigned to the first item in an empty gallery.
func Initial() []byte {
	return []byte{0x40}
}

// Head is the lower bound sentinel, strictly less than any valid key.
// Valid keys are non-empty, and a key never sorts at or below {0x00}
// because After and Between never produce it.
func Head() []byte {
	return []byte{0x00}
}

// Tail returns an upper bound strictly greater than prev: one more 0xFF
// byte than prev is long. Used as the notional "next" key when inserting
// after the last item.
func Tail(prev []byte) []byte {
	b := make([]byte, len(prev)+1)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}

// After returns a key strictly greater than a: the big-endian successor,
// or an extension when a is saturated with 0xFF bytes.
func After(a []byte) []byte {
	allFF := true
	for _, b := range a {
		if b != 0xFF {
			allFF = false
			break
		}
	}
	if allFF {
		out := make([]byte, len(a)+1)
		for i := range out {
			out[i] = 0xFF
		}
		out[len(a)] = 0x01
		return out
	}

	n := new(big.Int).SetBytes(a)
	n.Add(n, big.NewInt(1))
	return n.Bytes()
}

// Between returns a key strictly between a and b. The arguments may be
// given in either order. When the padded values differ by exactly one,
// the midpoint does not exist at the current width and the key is
// extended with 0x80 instead.
func Between(a, b []byte) []byte {
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}

	width := len(a)
	if len(b) > width {
		width = len(b)
	}

	av := pad(a, width)
	bv := pad(b, width)

	ai := new(big.Int).SetBytes(av)
	bi := new(big.Int).SetBytes(bv)

	if new(big.Int).Add(ai, big.NewInt(1)).Cmp(bi) == 0 {
		return append(av, 0x80)
	}

	// FillBytes keeps leading zero bytes; Bytes() would strip them and
	// the midpoint could escape the bracket once keys start with 0x00.
	mi := new(big.Int).Add(ai, bi)
	mi.Rsh(mi, 1)
	return mi.FillBytes(make([]byte, width))
}

func pad(a []byte, width int) []byte {
	out := make([]byte, width)
	copy(out, a)
	return out
}
