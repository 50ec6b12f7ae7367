// Package dice provides the game's random number source. Combat and loot
// rolls go through a Roller so tests can script outcomes.
package dice

import (
	crand "crypto/rand"
	"math/big"
)

// Roller produces uniformly distributed integers in an inclusive range.
type Roller interface {
	// NumberBetween returns a uniform random value in [min, max], both ends
	// inclusive. min > max returns min.
	NumberBetween(min, max int) int
}

// CryptoRoller draws from crypto/rand. A plain linear generator shows
// visible cycles over a long play session, so the extra cost is accepted.
type CryptoRoller struct{}

// NewCryptoRoller returns the production Roller.
func NewCryptoRoller() CryptoRoller { return CryptoRoller{} }

// NumberBetween returns a uniform random value in [min, max].
func (CryptoRoller) NumberBetween(min, max int) int {
	if min >= max {
		return min
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// a weapon that always rolls minimum keeps the game playable.
		return min
	}
	return int(n.Int64()) + min
}
