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

// processorState holds the six per-level selectors. At every level exactly
// one of them is 1 when the operation is enabled:
//
//	top  - still on the shared prefix of the old and new keys
//	old0 - branch point of an insert into a previously empty prefix
//	bot  - below the branch point, on the new key's side, no conflict
//	new1 - the level where the old leaf is rehung as the new leaf's sibling
//	na   - inactive (past the leaf, or operation disabled)
//	upd  - the level holding the leaf being updated or deleted
type processorState struct {
	top  Fr
	old0 Fr
	bot  Fr
	new1 Fr
	na   Fr
	upd  Fr
}

// smInit is the state feeding level 0: top carries enabled, na its
// complement.
func smInit(enabled *Fr) processorState {
	var st processorState
	st.top.Set(enabled)
	st.na.Sub(&FrOne, enabled)
	return st
}

// smStep advances the state machine by one level. The identities are the
// circomlib SMTProcessorSM constraints; the aux1/aux2 factorisation must be
// computed exactly as written.
func smStep(prev *processorState, is0, xor, levIns, f0 *Fr) processorState {
	var st processorState
	var aux1, aux2, mid Fr

	aux1.Mul(&prev.top, levIns)
	aux2.Mul(&aux1, f0)

	// st_top = prev_top - aux1
	st.top.Sub(&prev.top, &aux1)

	// st_old0 = aux2 * is0
	st.old0.Mul(&aux2, is0)

	// mid = aux2 - st_old0 + prev_bot
	mid.Sub(&aux2, &st.old0)
	mid.Add(&mid, &prev.bot)

	// st_new1 = mid * xor, st_bot = (1 - xor) * mid
	st.new1.Mul(&mid, xor)
	st.bot.Sub(&FrOne, xor)
	st.bot.Mul(&st.bot, &mid)

	// st_upd = aux1 - aux2
	st.upd.Sub(&aux1, &aux2)

	// st_na = prev_new1 + prev_old0 + prev_na + prev_upd
	st.na.Add(&prev.new1, &prev.old0)
	st.na.Add(&st.na, &prev.na)
	st.na.Add(&st.na, &prev.upd)

	return st
}

// terminalOK checks the deepest level's collapsed one-hot invariant:
// na + new1 + old0 + upd must equal exactly 1.
func (st *processorState) terminalOK() bool {
	var sum Fr
	sum.Add(&st.na, &st.new1)
	sum.Add(&sum, &st.old0)
	sum.Add(&sum, &st.upd)
	return sum.IsOne()
}
