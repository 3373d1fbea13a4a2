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

import "testing"

// runSM replays the forward pass for a given operation and returns the
// per-level states.
func runSM(t *testing.T, nLevels int, siblings []Fr, oldKey, newKey Fr, isOld0 bool, fnc Fnc) []processorState {
	t.Helper()

	enabled := fnc.enabled()
	lev, err := levIns(siblings, &enabled)
	if err != nil {
		t.Fatalf("levIns: %v", err)
	}

	n2bOld := keyBits(&oldKey, nLevels)
	n2bNew := keyBits(&newKey, nLevels)

	var is0 Fr
	if isOld0 {
		is0.SetOne()
	}

	sm := make([]processorState, nLevels)
	prev := smInit(&enabled)
	for i := 0; i < nLevels; i++ {
		var xor Fr
		xorBit(&xor, &n2bOld[i], &n2bNew[i])
		sm[i] = smStep(&prev, &is0, &xor, &lev[i], &fnc[0])
		prev = sm[i]
	}
	return sm
}

func selectorSum(st *processorState) Fr {
	var sum Fr
	sum.Add(&st.top, &st.old0)
	sum.Add(&sum, &st.bot)
	sum.Add(&sum, &st.new1)
	sum.Add(&sum, &st.na)
	sum.Add(&sum, &st.upd)
	return sum
}

// TestStateMachineOneHot checks that the six selectors stay mutually
// exclusive 0/1 flags summing to 1 at every level, for each operation kind.
func TestStateMachineOneHot(t *testing.T) {
	t.Parallel()

	const depth = 16
	siblings := make([]Fr, depth)

	cases := []struct {
		name   string
		oldKey uint64
		newKey uint64
		isOld0 bool
		fnc    Fnc
	}{
		{"insert empty slot", 0, 111, true, FncInsert},
		{"insert occupied prefix", 111, 110, false, FncInsert},
		{"update", 111, 111, false, FncUpdate},
		{"delete last leaf", 0, 111, true, FncDelete},
		{"nop", 3, 5, false, FncNop},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sm := runSM(t, depth, siblings, frFromUint(tc.oldKey), frFromUint(tc.newKey), tc.isOld0, tc.fnc)
			for i := range sm {
				if sum := selectorSum(&sm[i]); !sum.IsOne() {
					t.Fatalf("level %d: selector sum = %s, want 1", i, sum.String())
				}
				for _, sel := range []Fr{sm[i].top, sm[i].old0, sm[i].bot, sm[i].new1, sm[i].na, sm[i].upd} {
					if !sel.IsZero() && !sel.IsOne() {
						t.Fatalf("level %d: selector %s out of {0,1}", i, sel.String())
					}
				}
			}
			if !sm[depth-1].terminalOK() {
				t.Fatalf("terminal state invalid for %s", tc.name)
			}
		})
	}
}

func TestStateMachineDisabled(t *testing.T) {
	t.Parallel()

	const depth = 8
	siblings := make([]Fr, depth)

	sm := runSM(t, depth, siblings, frFromUint(1), frFromUint(2), false, FncNop)
	for i := range sm {
		if !sm[i].na.IsOne() {
			t.Fatalf("level %d: na = %s, want 1 on a disabled operation", i, sm[i].na.String())
		}
	}
}

func TestStateMachineInitial(t *testing.T) {
	t.Parallel()

	st := smInit(&FrOne)
	if !st.top.IsOne() || !st.na.IsZero() {
		t.Fatal("enabled initial state must be top")
	}

	st = smInit(&FrZero)
	if !st.na.IsOne() || !st.top.IsZero() {
		t.Fatal("disabled initial state must be na")
	}
}
