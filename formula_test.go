/*
 * formula_test.go
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 */

package stoich

import (
	"fmt"
	"testing"
)

func sameCounts(a, b ElementCount) bool {
	if len(a) != len(b) {
		return false
	}
	for sym, n := range a {
		if b[sym] != n {
			return false
		}
	}
	return true
}

//TestParseFormula checks the grammar: plain formulas, additive merging of
//repeated elements, nested groups and whitespace removal.
func TestParseFormula(Te *testing.T) {
	cases := []struct {
		formula string
		want    ElementCount
	}{
		{"H2O", ElementCount{"H": 2, "O": 1}},
		{"H2O2", ElementCount{"H": 2, "O": 2}},
		{"HHOO", ElementCount{"H": 2, "O": 2}},
		{"Ca3(PO4)2", ElementCount{"Ca": 3, "P": 2, "O": 8}},
		{"(NH4)2SO4", ElementCount{"N": 2, "H": 8, "S": 1, "O": 4}},
		{"K4(ON(SO3)2)2", ElementCount{"K": 4, "O": 14, "N": 2, "S": 4}},
		{"Mg(OH)2", ElementCount{"Mg": 1, "O": 2, "H": 2}},
		{" C H 3 COOH ", ElementCount{"C": 2, "H": 4, "O": 2}},
		{"CuSO4(H2O)5", ElementCount{"Cu": 1, "S": 1, "O": 9, "H": 10}},
	}
	for _, v := range cases {
		counts, err := ParseFormula(v.formula, nil)
		if err != nil {
			Te.Error(err)
			continue
		}
		if !sameCounts(counts, v.want) {
			Te.Errorf("%s: got %v, want %v", v.formula, counts, v.want)
		}
		fmt.Println(v.formula, counts)
	}
}

//TestParseFormulaErrors checks that each bad input fails with the right
//error type and payload.
func TestParseFormulaErrors(Te *testing.T) {
	if _, err := ParseFormula("", nil); err == nil {
		Te.Error("empty formula accepted")
	} else if _, ok := err.(*EmptyFormulaError); !ok {
		Te.Errorf("empty formula: got %T, want *EmptyFormulaError", err)
	}
	if _, err := ParseFormula("   ", nil); err == nil {
		Te.Error("blank formula accepted")
	} else if _, ok := err.(*EmptyFormulaError); !ok {
		Te.Errorf("blank formula: got %T, want *EmptyFormulaError", err)
	}
	for _, bad := range []string{"xyz", "2H2O", "H2O)", "(H2O", "H2(O", "Na)2(", "H2O+"} {
		_, err := ParseFormula(bad, nil)
		if err == nil {
			Te.Errorf("%q accepted", bad)
			continue
		}
		if _, ok := err.(*FormulaSyntaxError); !ok {
			Te.Errorf("%q: got %T (%v), want *FormulaSyntaxError", bad, err, err)
		}
	}
	_, err := ParseFormula("H2Xy3", nil)
	uerr, ok := err.(*UnknownElementError)
	if !ok {
		Te.Fatalf("unknown element: got %T (%v)", err, err)
	}
	if uerr.Symbol != "Xy" {
		Te.Errorf("unknown element symbol: got %q, want \"Xy\"", uerr.Symbol)
	}
}

//TestParseCompound checks the explicit leading multiplier.
func TestParseCompound(Te *testing.T) {
	c, err := ParseCompound(" 2 H2O ", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Coefficient != 2 || c.Formula != "H2O" || !sameCounts(c.Counts, ElementCount{"H": 2, "O": 1}) {
		Te.Errorf("got %+v", c)
	}
	if c.String() != "2H2O" {
		Te.Errorf("String: got %q", c.String())
	}
	c, err = ParseCompound("NaCl", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Coefficient != 1 || c.String() != "NaCl" {
		Te.Errorf("got %+v", c)
	}
	if _, err := ParseCompound("0H2O", nil); err == nil {
		Te.Error("zero multiplier accepted")
	}
	if _, err := ParseCompound("42", nil); err == nil {
		Te.Error("bare multiplier accepted")
	}
}

//A tiny Elementer to check that the data source is honored.
type hydrogenOnly struct{}

func (h hydrogenOnly) Element(symbol string) *Element {
	if symbol == "H" {
		return &Element{Symbol: "H", Number: 1, Mass: 1.008}
	}
	return nil
}

func TestCustomElementer(Te *testing.T) {
	if _, err := ParseFormula("H2", hydrogenOnly{}); err != nil {
		Te.Error(err)
	}
	_, err := ParseFormula("H2O", hydrogenOnly{})
	if _, ok := err.(*UnknownElementError); !ok {
		Te.Errorf("got %T (%v), want *UnknownElementError", err, err)
	}
}
