/*
 * molarmass.go, part of gostoich.
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
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// MassComponent is the contribution of one element to a compound's molar
// mass.
type MassComponent struct {
	Symbol       string  `json:"symbol"`
	Number       int     `json:"number"`
	Count        int     `json:"count"`
	AtomicMass   float64 `json:"atomicmass"`
	Contribution float64 `json:"contribution"` //AtomicMass*Count
}

// MolarMassResult is the molar mass of a compound together with its
// per-element breakdown. Components are ordered by ascending atomic number,
// regardless of the order in which the elements appear in the formula. This
// ordering is relied upon by display code, don't change it.
type MolarMassResult struct {
	Formula    string          `json:"formula"`
	Total      float64         `json:"total"` //in g/mol
	Components []MassComponent `json:"components"`
}

func (M *MolarMassResult) String() string {
	return fmt.Sprintf("%s: %.3f g/mol", M.Formula, M.Total)
}

// MolarMass parses formula and returns its molar mass and per-element
// breakdown. A nil Elementer selects the built-in periodic table. Parsing
// failures are returned unchanged, decorated with this function's name.
func MolarMass(formula string, elems Elementer) (*MolarMassResult, error) {
	el := table(elems)
	counts, err := ParseFormula(formula, el)
	if err != nil {
		return nil, errDecorate(err, "MolarMass")
	}
	comps := make([]MassComponent, 0, len(counts))
	for sym, n := range counts {
		e := el.Element(sym) //can't be nil, ParseFormula validated it
		comps = append(comps, MassComponent{
			Symbol:       sym,
			Number:       e.Number,
			Count:        n,
			AtomicMass:   e.Mass,
			Contribution: e.Mass * float64(n),
		})
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i].Number < comps[j].Number })
	contribs := make([]float64, len(comps))
	for i, c := range comps {
		contribs[i] = c.Contribution
	}
	return &MolarMassResult{
		Formula:    stripSpaces(formula),
		Total:      floats.Sum(contribs),
		Components: comps,
	}, nil
}
