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

// Arithmetised boolean primitives. Each one is the low-degree field
// polynomial a constraint system would use, not the fastest bit trick:
// the polynomial form is the contract, keep it as written.

// xorBit computes a + b - 2ab. For a, b in {0,1} this is the boolean XOR.
func xorBit(res, a, b *Fr) {
	var ab Fr
	ab.Mul(a, b)
	ab.Double(&ab)
	res.Add(a, b)
	res.Sub(res, &ab)
}

// isEqual returns 1 if a == b and 0 otherwise, as a field element.
func isEqual(res *Fr, a, b *Fr) {
	if a.Equal(b) {
		res.SetOne()
	} else {
		res.SetZero()
	}
}

// switcher is the two-output mux: (L, R) when sel = 0, (R, L) when sel = 1,
// via the single-product factorisation aux = (R-L)*sel.
func switcher(outL, outR *Fr, sel, l, r *Fr) {
	var aux Fr
	aux.Sub(r, l)
	aux.Mul(&aux, sel)
	outL.Add(l, &aux)
	outR.Sub(r, &aux)
}

// multiAnd folds its inputs with binary products, halving the slice the way
// the circuit builds its AND tree.
func multiAnd(in []Fr) Fr {
	var out Fr
	switch len(in) {
	case 0:
		out.SetOne()
	case 1:
		out.Set(&in[0])
	case 2:
		out.Mul(&in[0], &in[1])
	default:
		n1 := len(in) / 2
		l := multiAnd(in[:n1])
		r := multiAnd(in[n1:])
		out.Mul(&l, &r)
	}
	return out
}

// forceEqualIfEnabled reports whether enabled*(a-b) == 0, i.e. a == b
// whenever the operation is enabled.
func forceEqualIfEnabled(enabled, a, b *Fr) bool {
	return enabled.IsZero() || a.Equal(b)
}

// keyBits decomposes key into its n least significant bits, LSB first,
// lifted into the field: bits[i] = (key >> i) & 1.
func keyBits(key *Fr, n int) []Fr {
	kb := frToBig(key)
	bits := make([]Fr, n)
	for i := 0; i < n; i++ {
		bits[i].SetUint64(uint64(kb.Bit(i)))
	}
	return bits
}
