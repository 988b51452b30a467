package group

import (
	"crypto/sha256"
	"math/big"
)

// HashToScalar deterministically maps the concatenation of parts to an
// element of Z_n. It is the H* of the Fiat-Shamir transform: every sigma
// protocol built on top of a Group derives its challenge by hashing the
// canonical byte encoding of the protocol's public transcript through this
// function.
func HashToScalar(n *big.Int, parts ...[]byte) *big.Int {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	digest := h.Sum(nil)
	return new(big.Int).Mod(new(big.Int).SetBytes(digest), n)
}

// DeriveGenerator produces a group element from seed whose discrete
// logarithm with respect to g.Generator() is unknown to any party. This is
// how a Pedersen blinding base H is obtained from a group that only
// natively exposes a single distinguished generator.
func DeriveGenerator(g Group, seed string) Element {
	h, err := g.Element().MapToGroup(seed)
	if err != nil {
		panic(err)
	}
	return h
}
