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

// Package smt implements the update processor for a Poseidon-hashed sparse
// Merkle tree, compatible with the iden3 circomlib SMT circuits. Given a
// sibling path and a single operation (insert, update or delete), it
// recomputes the old root implied by the path and the new root produced by
// the operation, enforcing the same field-arithmetic constraints the
// circuits do. It holds no tree: storage, path extraction and proof
// generation are the caller's problem.
package smt

import (
	"errors"
	"fmt"
)

// MaxLevels is the tree depth the circomlib test vectors use. Callers may
// pick any depth >= 2; interoperability with published roots requires 254.
const MaxLevels = 254

var (
	// ErrInvalidFnc is returned when an operation selector component is
	// neither 0 nor 1.
	ErrInvalidFnc = errors.New("invalid function selector")
	// ErrInvalidDepth is returned when nLevels disagrees with the sibling
	// path length or is below the minimum of 2.
	ErrInvalidDepth = errors.New("invalid tree depth")
	// ErrNonZeroLastSibling is returned when an enabled operation carries a
	// non-zero sibling at the deepest level.
	ErrNonZeroLastSibling = errors.New("non-zero sibling at the last level")
	// ErrInvalidTerminalState is returned when the state machine reaches the
	// deepest level without collapsing to a legal one-hot state, i.e. the
	// supplied path does not describe the requested operation.
	ErrInvalidTerminalState = errors.New("invalid state at the last level")
	// ErrOldRootMismatch is returned when the root implied by the sibling
	// path differs from the supplied old root.
	ErrOldRootMismatch = errors.New("supplied old root does not match the sibling path")
	// ErrKeyMismatchOnUpdate is returned when an update names two different
	// keys.
	ErrKeyMismatchOnUpdate = errors.New("old and new keys differ on update")
	// ErrInputOutOfField is returned when a scalar is not a canonical BN254
	// scalar field element.
	ErrInputOutOfField = errors.New("scalar out of field range")
)

// Fnc is the two-bit operation selector (f0, f1): (0,0) no-op, (1,0)
// insert, (0,1) update, (1,1) delete.
type Fnc [2]Fr

var (
	FncNop    Fnc
	FncInsert Fnc
	FncUpdate Fnc
	FncDelete Fnc
)

func init() {
	FncInsert[0].SetOne()
	FncUpdate[1].SetOne()
	FncDelete[0].SetOne()
	FncDelete[1].SetOne()
}

// enabled computes f0 + f1 - f0*f1, the arithmetic OR of the selector bits.
func (f *Fnc) enabled() Fr {
	var e, p Fr
	e.Add(&f[0], &f[1])
	p.Mul(&f[0], &f[1])
	e.Sub(&e, &p)
	return e
}

func (f *Fnc) validate() error {
	for i := range f {
		if !f[i].IsZero() && !f[i].IsOne() {
			return fmt.Errorf("%w: component %d is %s", ErrInvalidFnc, i, f[i].String())
		}
	}
	return nil
}

// ProcessUpdate applies one operation to the accumulator and returns the new
// root. siblings[0] is the child of the root, siblings[nLevels-1] the
// deepest co-path node. The old root is recomputed from the path and checked
// against oldRoot before the new root is released; any constraint violation
// is fatal and returns one of the sentinel errors.
func ProcessUpdate(nLevels int, oldRoot *Fr, siblings []Fr, oldKey, oldValue *Fr, isOld0 bool, newKey, newValue *Fr, fnc Fnc) (Fr, error) {
	var newRoot Fr

	if err := fnc.validate(); err != nil {
		return newRoot, err
	}
	if nLevels != len(siblings) || nLevels < 2 {
		return newRoot, fmt.Errorf("%w: nLevels=%d, len(siblings)=%d", ErrInvalidDepth, nLevels, len(siblings))
	}

	enabled := fnc.enabled()

	// An update may not move the leaf: keysOk = (1-f0)*f1*(1-eq) must be 0.
	var eq, notF0 Fr
	isEqual(&eq, oldKey, newKey)
	notF0.Sub(&FrOne, &fnc[0])
	var notEq Fr
	notEq.Sub(&FrOne, &eq)
	keysOk := multiAnd([]Fr{notF0, fnc[1], notEq})
	if !keysOk.IsZero() {
		return newRoot, ErrKeyMismatchOnUpdate
	}

	var is0 Fr
	if isOld0 {
		is0.SetOne()
	}

	var hash1Old, hash1New Fr
	if err := HashLeaf(&hash1Old, oldKey, oldValue); err != nil {
		return newRoot, err
	}
	if err := HashLeaf(&hash1New, newKey, newValue); err != nil {
		return newRoot, err
	}

	n2bOld := keyBits(oldKey, nLevels)
	n2bNew := keyBits(newKey, nLevels)

	lev, err := levIns(siblings, &enabled)
	if err != nil {
		return newRoot, err
	}

	xors := make([]Fr, nLevels)
	for i := range xors {
		xorBit(&xors[i], &n2bOld[i], &n2bNew[i])
	}

	// Forward pass, root to leaf.
	sm := make([]processorState, nLevels)
	prev := smInit(&enabled)
	for i := 0; i < nLevels; i++ {
		sm[i] = smStep(&prev, &is0, &xors[i], &lev[i], &fnc[0])
		prev = sm[i]
	}
	if !sm[nLevels-1].terminalOK() {
		return newRoot, ErrInvalidTerminalState
	}

	// Backward pass, leaf to root. Child roots start at zero below the
	// deepest level.
	levels := make([]levelRoots, nLevels)
	var oldChild, newChild Fr
	for i := nLevels - 1; i >= 0; i-- {
		levels[i], err = processorLevel(&sm[i], &siblings[i], &hash1Old, &hash1New, &n2bNew[i], &oldChild, &newChild)
		if err != nil {
			return newRoot, err
		}
		oldChild.Set(&levels[i].oldRoot)
		newChild.Set(&levels[i].newRoot)
	}

	// Delete swaps the two accumulators: its old root is an insert's new
	// root and vice versa.
	var sel, topL, topR Fr
	sel.Mul(&fnc[0], &fnc[1])
	switcher(&topL, &topR, &sel, &levels[0].oldRoot, &levels[0].newRoot)

	if !forceEqualIfEnabled(&enabled, oldRoot, &topL) {
		return newRoot, fmt.Errorf("%w: implied %s, supplied %s", ErrOldRootMismatch, topL.String(), oldRoot.String())
	}

	// newRoot = enabled*(topR - oldRoot) + oldRoot; a disabled call returns
	// the old root verbatim.
	newRoot.Sub(&topR, oldRoot)
	newRoot.Mul(&newRoot, &enabled)
	newRoot.Add(&newRoot, oldRoot)

	return newRoot, nil
}
