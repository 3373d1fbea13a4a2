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

// levelRoots is the pair a level hands to the level above it.
type levelRoots struct {
	oldRoot Fr
	newRoot Fr
}

// processorLevel recomputes one level of both accumulators from the level's
// selectors, its sibling, the two leaf hashes, the new key's direction bit
// and the roots of the level below. Each selector picks exactly one term of
// each sum, so the whole level is a single algebraic circuit.
func processorLevel(st *processorState, sibling, old1leaf, new1leaf, newlrbit, oldChild, newChild *Fr) (levelRoots, error) {
	var out levelRoots
	var sel, term Fr

	// Old side: hash the old child against the sibling, orientated by the
	// new key's bit, and let top select it; bot/new1/upd select the old
	// leaf hash directly.
	var oldL, oldR, oldProofHash Fr
	switcher(&oldL, &oldR, newlrbit, oldChild, sibling)
	if err := HashNode(&oldProofHash, &oldL, &oldR); err != nil {
		return out, err
	}

	sel.Add(&st.bot, &st.new1)
	sel.Add(&sel, &st.upd)
	out.oldRoot.Mul(old1leaf, &sel)
	term.Mul(&oldProofHash, &st.top)
	out.oldRoot.Add(&out.oldRoot, &term)

	// New side: on top the new child pairs with the sibling, on bot it
	// pairs with zero, on new1 the new leaf pairs with the rehung old leaf.
	var newSwL, newSwR Fr
	sel.Add(&st.top, &st.bot)
	newSwL.Mul(newChild, &sel)
	term.Mul(new1leaf, &st.new1)
	newSwL.Add(&newSwL, &term)

	newSwR.Mul(sibling, &st.top)
	term.Mul(old1leaf, &st.new1)
	newSwR.Add(&newSwR, &term)

	var newOutL, newOutR, newProofHash Fr
	switcher(&newOutL, &newOutR, newlrbit, &newSwL, &newSwR)
	if err := HashNode(&newProofHash, &newOutL, &newOutR); err != nil {
		return out, err
	}

	sel.Add(&st.top, &st.bot)
	sel.Add(&sel, &st.new1)
	out.newRoot.Mul(&newProofHash, &sel)
	sel.Add(&st.old0, &st.upd)
	term.Mul(new1leaf, &sel)
	out.newRoot.Add(&out.newRoot, &term)

	return out, nil
}
