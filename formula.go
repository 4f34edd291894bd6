/*
 * formula.go, part of gostoich.
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
	"strconv"
	"strings"
	"unicode"
)

// ElementCount maps element symbols to how many atoms of that element a
// formula contains. Counts are always >= 1; a symbol absent from the map
// means zero atoms of that element.
type ElementCount map[string]int

// Compound is one chemical species as written in a formula or equation.
// Coefficient is the leading integer multiplier read from the source text
// (1 if absent). Note that the balancer does not trust this field: it always
// computes its own coefficients and overwrites it.
type Compound struct {
	Formula     string
	Counts      ElementCount
	Coefficient int
}

// String returns the compound as it would appear in an equation, with the
// coefficient prefixed unless it is 1.
func (C *Compound) String() string {
	if C.Coefficient == 1 {
		return C.Formula
	}
	return fmt.Sprintf("%d%s", C.Coefficient, C.Formula)
}

/*ParseFormula interprets a chemical formula and returns the atom count for
each element in it. The grammar is the usual one: an element is an uppercase
letter optionally followed by one lowercase letter, an element or a
parenthesized group may be followed by a decimal count (1 if absent), and
groups nest to arbitrary depth. Counts merge additively, so "H2O2" and
"HHOO" mean the same thing. All whitespace is removed before parsing.

Every symbol is validated against elems; passing a nil Elementer selects the
built-in periodic table. The possible failures are EmptyFormulaError,
FormulaSyntaxError and UnknownElementError.*/
func ParseFormula(formula string, elems Elementer) (ElementCount, error) {
	f := stripSpaces(formula)
	if f == "" {
		return nil, errDecorate(new(EmptyFormulaError), "ParseFormula")
	}
	counts, rest, err := parseGroup(f, table(elems), false)
	if err != nil {
		return nil, errDecorate(err, "ParseFormula")
	}
	if rest != "" {
		//the only way the top-level scan stops early is an unmatched ')'
		return nil, errDecorate(&FormulaSyntaxError{Remaining: rest}, "ParseFormula")
	}
	return counts, nil
}

// ParseCompound reads one compound term: an optional leading integer
// multiplier immediately followed by a formula body (e.g. "2H2O"). The
// multiplier becomes the compound's Coefficient; the body is parsed with
// ParseFormula.
func ParseCompound(term string, elems Elementer) (*Compound, error) {
	t := stripSpaces(term)
	if t == "" {
		return nil, errDecorate(new(EmptyFormulaError), "ParseCompound")
	}
	i := 0
	for i < len(t) && isDigit(t[i]) {
		i++
	}
	coeff := 1
	if i > 0 {
		var err error
		coeff, err = strconv.Atoi(t[:i])
		if err != nil || coeff < 1 {
			return nil, errDecorate(&FormulaSyntaxError{Remaining: t}, "ParseCompound")
		}
	}
	counts, err := ParseFormula(t[i:], elems)
	if err != nil {
		return nil, errDecorate(err, "ParseCompound")
	}
	return &Compound{Formula: t[i:], Counts: counts, Coefficient: coeff}, nil
}

//parseGroup scans terms left to right, accumulating counts, until the string
//is exhausted or, when nested, until the group's closing parenthesis (whose
//trailing count it also consumes, multiplying the whole group by it). It
//returns the accumulated counts and the unconsumed remainder.
func parseGroup(s string, elems Elementer, nested bool) (ElementCount, string, error) {
	counts := make(ElementCount)
	for s != "" {
		c := s[0]
		switch {
		case c == '(':
			inner, rest, err := parseGroup(s[1:], elems, true)
			if err != nil {
				return nil, "", err
			}
			for sym, n := range inner {
				counts[sym] += n
			}
			s = rest
		case c == ')':
			if !nested {
				return nil, "", &FormulaSyntaxError{Remaining: s}
			}
			n, rest := parseCount(s[1:])
			for sym := range counts {
				counts[sym] *= n
				if counts[sym] == 0 { //explicit 0 multiplier wipes the group
					delete(counts, sym)
				}
			}
			return counts, rest, nil
		case c >= 'A' && c <= 'Z':
			sym := s[:1]
			if len(s) > 1 && s[1] >= 'a' && s[1] <= 'z' {
				sym = s[:2]
			}
			if elems.Element(sym) == nil {
				return nil, "", &UnknownElementError{Symbol: sym}
			}
			n, rest := parseCount(s[len(sym):])
			if n > 0 {
				counts[sym] += n
			}
			s = rest
		default:
			return nil, "", &FormulaSyntaxError{Remaining: s}
		}
	}
	if nested { //ran out of input inside a group: a '(' was never closed
		return nil, "", &FormulaSyntaxError{Remaining: ""}
	}
	return counts, "", nil
}

//parseCount reads a decimal count prefix, defaulting to 1 when absent.
func parseCount(s string) (int, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 1, s
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil { //only possible for absurdly long digit runs
		n = 1
	}
	return n, s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

//stripSpaces removes every whitespace rune from s.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
