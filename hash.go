// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package smt

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// HashLeaf computes Poseidon(key, value, 1). The trailing 1 separates the
// leaf domain from the internal-node domain; without it every root differs
// from the circomlib circuits.
func HashLeaf(res *Fr, key, value *Fr) error {
	h, err := poseidon.Hash([]*big.Int{frToBig(key), frToBig(value), big.NewInt(1)})
	if err != nil {
		return err
	}
	res.SetBigInt(h)
	return nil
}

// HashNode computes Poseidon(left, right), the internal-node hash.
func HashNode(res *Fr, left, right *Fr) error {
	h, err := poseidon.Hash([]*big.Int{frToBig(left), frToBig(right)})
	if err != nil {
		return err
	}
	res.SetBigInt(h)
	return nil
}
