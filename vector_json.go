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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Vector is one record of the circomlib conformance suite: the full input
// of an operation plus the root it is expected to produce.
type Vector struct {
	NLevels  int
	OldRoot  Fr
	Siblings []Fr
	OldKey   Fr
	OldValue Fr
	IsOld0   bool
	NewKey   Fr
	NewValue Fr
	Fnc      Fnc
	NewRoot  Fr
}

// The suite encodes scalars as decimal strings or bare integers, and isOld0
// as a bool, a 0/1 number or a "0"/"1" string, depending on which generator
// produced the file. The marshaller accepts all of them; it emits scalars as
// decimal strings, isOld0 as a bool and nlevels as a number.
type vectorMarshaller struct {
	NLevels  int                `json:"nlevels"`
	OldRoot  json.RawMessage    `json:"oldRoot"`
	Siblings []json.RawMessage  `json:"siblings"`
	OldKey   json.RawMessage    `json:"oldKey"`
	OldValue json.RawMessage    `json:"oldValue"`
	IsOld0   json.RawMessage    `json:"isOld0"`
	NewKey   json.RawMessage    `json:"newKey"`
	NewValue json.RawMessage    `json:"newValue"`
	Fnc      [2]json.RawMessage `json:"fnc"`
	NewRoot  json.RawMessage    `json:"newRoot"`
}

func scalarFromRaw(res *Fr, raw json.RawMessage) error {
	s := string(bytes.TrimSpace(raw))
	if len(s) == 0 {
		return fmt.Errorf("empty scalar")
	}
	if s[0] == '"' {
		var err error
		if s, err = strconv.Unquote(s); err != nil {
			return fmt.Errorf("invalid scalar %s: %w", raw, err)
		}
	}
	return FrFromDecimal(res, s)
}

func boolFromRaw(res *bool, raw json.RawMessage) error {
	switch s := string(bytes.TrimSpace(raw)); s {
	case "true", "1", `"1"`:
		*res = true
	case "false", "0", `"0"`:
		*res = false
	default:
		return fmt.Errorf("invalid isOld0 value %s", s)
	}
	return nil
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	aux := &vectorMarshaller{}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	v.NLevels = aux.NLevels
	if err := scalarFromRaw(&v.OldRoot, aux.OldRoot); err != nil {
		return fmt.Errorf("oldRoot: %w", err)
	}
	v.Siblings = make([]Fr, len(aux.Siblings))
	for i, raw := range aux.Siblings {
		if err := scalarFromRaw(&v.Siblings[i], raw); err != nil {
			return fmt.Errorf("siblings[%d]: %w", i, err)
		}
	}
	if err := scalarFromRaw(&v.OldKey, aux.OldKey); err != nil {
		return fmt.Errorf("oldKey: %w", err)
	}
	if err := scalarFromRaw(&v.OldValue, aux.OldValue); err != nil {
		return fmt.Errorf("oldValue: %w", err)
	}
	if err := boolFromRaw(&v.IsOld0, aux.IsOld0); err != nil {
		return err
	}
	if err := scalarFromRaw(&v.NewKey, aux.NewKey); err != nil {
		return fmt.Errorf("newKey: %w", err)
	}
	if err := scalarFromRaw(&v.NewValue, aux.NewValue); err != nil {
		return fmt.Errorf("newValue: %w", err)
	}
	for i, raw := range aux.Fnc {
		if err := scalarFromRaw(&v.Fnc[i], raw); err != nil {
			return fmt.Errorf("fnc[%d]: %w", i, err)
		}
	}
	if err := scalarFromRaw(&v.NewRoot, aux.NewRoot); err != nil {
		return fmt.Errorf("newRoot: %w", err)
	}
	return nil
}

func (v *Vector) MarshalJSON() ([]byte, error) {
	quote := func(e *Fr) json.RawMessage {
		return json.RawMessage(strconv.Quote(e.String()))
	}
	aux := &vectorMarshaller{
		NLevels:  v.NLevels,
		OldRoot:  quote(&v.OldRoot),
		Siblings: make([]json.RawMessage, len(v.Siblings)),
		OldKey:   quote(&v.OldKey),
		OldValue: quote(&v.OldValue),
		IsOld0:   json.RawMessage(strconv.FormatBool(v.IsOld0)),
		NewKey:   quote(&v.NewKey),
		NewValue: quote(&v.NewValue),
		Fnc:      [2]json.RawMessage{quote(&v.Fnc[0]), quote(&v.Fnc[1])},
		NewRoot:  quote(&v.NewRoot),
	}
	for i := range v.Siblings {
		aux.Siblings[i] = quote(&v.Siblings[i])
	}
	return json.Marshal(aux)
}

// ParseVectors decodes a conformance suite file: a JSON array of records.
func ParseVectors(data []byte) ([]Vector, error) {
	var vs []Vector
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, err
	}
	return vs, nil
}

// Run applies the record's operation and returns the computed root. The
// caller compares it against NewRoot.
func (v *Vector) Run() (Fr, error) {
	return ProcessUpdate(v.NLevels, &v.OldRoot, v.Siblings, &v.OldKey, &v.OldValue, v.IsOld0, &v.NewKey, &v.NewValue, v.Fnc)
}
