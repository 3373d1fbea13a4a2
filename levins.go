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

// levIns marks the unique level at which an insert places the new branch:
// levIns[j] = 1 iff sibling j and every deeper sibling are zero and either
// j = 0 or sibling j-1 is non-zero. The walk runs from the deepest level
// upward, carrying a monotone done flag once some deeper level has claimed
// the branch point.
//
// Precondition: the deepest sibling is zero whenever the operation is
// enabled.
func levIns(siblings []Fr, enabled *Fr) ([]Fr, error) {
	n := len(siblings)

	if !enabled.IsZero() && !siblings[n-1].IsZero() {
		return nil, ErrNonZeroLastSibling
	}

	lev := make([]Fr, n)
	done := make([]Fr, n-1)

	var isZero, notZero Fr
	isEqual(&isZero, &siblings[n-2], &FrZero)
	lev[n-1].Sub(&FrOne, &isZero)
	done[n-2].Set(&lev[n-1])

	for i := n - 2; i >= 1; i-- {
		isEqual(&isZero, &siblings[i-1], &FrZero)
		notZero.Sub(&FrOne, &isZero)
		lev[i].Sub(&FrOne, &done[i])
		lev[i].Mul(&lev[i], &notZero)
		done[i-1].Add(&lev[i], &done[i])
	}

	lev[0].Sub(&FrOne, &done[0])
	return lev, nil
}
