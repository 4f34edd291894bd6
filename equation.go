/*
 * equation.go, part of gostoich.
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
	"strings"
)

// Reaction is an ordered set of reactant and product compounds, as read from
// an equation string.
type Reaction struct {
	Reactants []*Compound
	Products  []*Compound
}

/*ParseEquation splits an equation into its reactant and product compounds.
The two sides must be separated by exactly one occurrence of either "->" or
"=" (the two tokens are equivalent); compounds within a side are separated by
"+". Each compound may carry a leading integer multiplier, which is stored in
its Coefficient field; note that the balancer ignores stored coefficients and
computes its own.

A nil Elementer selects the built-in periodic table. Failures are
EquationFormatError for a malformed overall shape, or the formula-level error
for the first compound that does not parse, decorated with the side and
position of that compound.*/
func ParseEquation(equation string, elems Elementer) (*Reaction, error) {
	arrows := strings.Count(equation, "->")
	equals := strings.Count(equation, "=")
	var sep string
	switch {
	case arrows+equals == 0:
		return nil, errDecorate(&EquationFormatError{Separators: 0, msg: "no \"->\" or \"=\" separator"}, "ParseEquation")
	case arrows+equals > 1:
		return nil, errDecorate(&EquationFormatError{Separators: arrows + equals, msg: fmt.Sprintf("%d separators found, want exactly 1", arrows+equals)}, "ParseEquation")
	case arrows == 1:
		sep = "->"
	default:
		sep = "="
	}
	sides := strings.SplitN(equation, sep, 2)
	react, err := parseSide(sides[0], "reactant", elems)
	if err != nil {
		return nil, errDecorate(err, "ParseEquation")
	}
	prod, err := parseSide(sides[1], "product", elems)
	if err != nil {
		return nil, errDecorate(err, "ParseEquation")
	}
	return &Reaction{Reactants: react, Products: prod}, nil
}

//parseSide splits one side of an equation on "+" and parses each term.
func parseSide(side, name string, elems Elementer) ([]*Compound, error) {
	if strings.TrimSpace(side) == "" {
		return nil, &EquationFormatError{Separators: 1, msg: "empty " + name + " side"}
	}
	terms := strings.Split(side, "+")
	comps := make([]*Compound, 0, len(terms))
	for i, t := range terms {
		c, err := ParseCompound(t, elems)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("parseSide: %s %d", name, i+1))
		}
		comps = append(comps, c)
	}
	return comps, nil
}

// Elements returns the sorted set of element symbols appearing in any
// compound of the reaction.
func (R *Reaction) Elements() []string {
	seen := make(map[string]bool)
	for _, c := range R.Reactants {
		for sym := range c.Counts {
			seen[sym] = true
		}
	}
	for _, c := range R.Products {
		for sym := range c.Counts {
			seen[sym] = true
		}
	}
	elems := make([]string, 0, len(seen))
	for sym := range seen {
		elems = append(elems, sym)
	}
	sort.Strings(elems)
	return elems
}

// Balanced reports whether the reaction, with the coefficients its compounds
// currently carry, conserves every element (reactant atoms == product atoms,
// in exact integer arithmetic).
func (R *Reaction) Balanced() bool {
	for _, sym := range R.Elements() {
		net := 0
		for _, c := range R.Reactants {
			net += c.Coefficient * c.Counts[sym]
		}
		for _, c := range R.Products {
			net -= c.Coefficient * c.Counts[sym]
		}
		if net != 0 {
			return false
		}
	}
	return true
}

// String renders the reaction with its current coefficients, reactants and
// products joined by " + " and the sides separated by the arrow glyph.
func (R *Reaction) String() string {
	return renderSide(R.Reactants) + " → " + renderSide(R.Products)
}

func renderSide(comps []*Compound) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = c.String()
	}
	return strings.Join(parts, " + ")
}
