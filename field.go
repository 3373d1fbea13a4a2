package smt

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fr is an element of the BN254 scalar field, the native field of the
// engine. Every scalar that enters or leaves the processor is an Fr.
type Fr = fr.Element

var (
	FrZero Fr
	FrOne  Fr
)

func init() {
	FrZero.SetZero()
	FrOne.SetOne()
}

func CopyFr(dst, src *Fr) {
	copy(dst[:], src[:])
}

// FrFromBig sets res to v. Values outside [0, q) are rejected rather than
// reduced, to match the circuit's range constraints.
func FrFromBig(res *Fr, v *big.Int) error {
	if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return fmt.Errorf("%w: %s", ErrInputOutOfField, v.String())
	}
	res.SetBigInt(v)
	return nil
}

// FrFromDecimal parses a base-10 scalar with the same range policy as
// FrFromBig.
func FrFromDecimal(res *Fr, s string) error {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid decimal scalar %q", s)
	}
	return FrFromBig(res, v)
}

func frToBig(v *Fr) *big.Int {
	return v.BigInt(new(big.Int))
}
