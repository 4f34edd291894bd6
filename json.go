/*
 * json.go, part of gostoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goStoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package stoich

import (
	"bufio"
	"encoding/json"
	"io"
)

//Record kinds.
const (
	RecordReaction  = "reaction"
	RecordMolarMass = "molarmass"
)

// JSONRecord is an easily JSON-serializable envelope for one engine result,
// so results can be passed to other programs (or logged, see the srf
// package) one line at a time.
type JSONRecord struct {
	Kind      string           `json:"kind"`
	Input     string           `json:"input"`
	Balanced  string           `json:"balanced,omitempty"`
	Coeffs    []int            `json:"coefficients,omitempty"`
	Reactants []*Compound      `json:"reactants,omitempty"`
	Products  []*Compound      `json:"products,omitempty"`
	Mass      *MolarMassResult `json:"molarmass,omitempty"`
}

// Record wraps a balanced reaction in a JSONRecord. input should be the
// equation text the reaction was balanced from.
func (B *BalancedReaction) Record(input string) *JSONRecord {
	return &JSONRecord{
		Kind:      RecordReaction,
		Input:     input,
		Balanced:  B.String(),
		Coeffs:    B.Coeffs,
		Reactants: B.Reactants,
		Products:  B.Products,
	}
}

// Record wraps a molar mass result in a JSONRecord.
func (M *MolarMassResult) Record() *JSONRecord {
	return &JSONRecord{
		Kind:  RecordMolarMass,
		Input: M.Formula,
		Mass:  M,
	}
}

// Send writes the record to out as one JSON line.
func (J *JSONRecord) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	return enc.Encode(J) //Encode appends the newline itself
}

// ReadJSONRecord reads the next JSON line from in and decodes it. It returns
// io.EOF (possibly wrapped in a partial-line error from bufio) when in is
// exhausted.
func ReadJSONRecord(in *bufio.Reader) (*JSONRecord, error) {
	line, err := in.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, err
	}
	ret := new(JSONRecord)
	if err2 := json.Unmarshal(line, ret); err2 != nil {
		return nil, err2
	}
	return ret, nil
}
