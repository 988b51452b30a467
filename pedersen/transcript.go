package pedersen

import (
	"math/big"

	"github.com/pedersen-nizk/arith/group"
)

// Transcript accumulates the canonical byte encoding of a sigma protocol's
// public values, in the exact order they are appended, and derives the
// Fiat-Shamir challenge from the result. Every protocol in this module
// opens its transcript with the same two elements, G and H, so that a
// transcript can never be replayed across a different pair of generators.
type Transcript struct {
	group group.Group
	buf   []byte
}

// NewTranscript starts a transcript bound to p's generators.
func NewTranscript(p Params) *Transcript {
	t := &Transcript{group: p.Group}
	return t.Append(p.G).Append(p.H)
}

// Append encodes e canonically and appends it to the transcript.
func (t *Transcript) Append(e group.Element) *Transcript {
	b, err := e.MarshalBinary()
	if err != nil {
		panic(err)
	}
	t.buf = append(t.buf, b...)
	return t
}

// Challenge derives e = H*(transcript), the Fiat-Shamir challenge in Z_q.
func (t *Transcript) Challenge() *big.Int {
	return group.HashToScalar(t.group.N(), t.buf)
}
