/*
 * errors.go, part of gostoich.
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

import "fmt"

//Each failure family gets its own type so callers can type-switch (or
//errors.As) on them and build their own messages from the structured fields.
//All of them implement the package Error interface, so information can be
//added with Decorate as the error travels up.

//errDecorate is a helper function that asserts that the error implements
//stoich.Error and decorates it with the caller's name before returning it.
//If used with an error from outside this library, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// EmptyFormulaError is returned when a formula is empty, or becomes empty
// once all whitespace is removed.
type EmptyFormulaError struct {
	deco []string
}

func (err *EmptyFormulaError) Error() string { return "stoich: empty formula" }

// Decorate adds new information to the error.
func (err *EmptyFormulaError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FormulaSyntaxError is returned when a formula contains a malformed token,
// such as a leading lowercase letter or an unmatched parenthesis. Remaining
// holds the still-unconsumed text starting at the offending character (it is
// empty when the problem is input ending too early, as with an unclosed
// group).
type FormulaSyntaxError struct {
	Remaining string
	deco      []string
}

func (err *FormulaSyntaxError) Error() string {
	if err.Remaining == "" {
		return "stoich: malformed formula: unexpected end of input"
	}
	return fmt.Sprintf("stoich: malformed formula at %q", err.Remaining)
}

// Decorate adds new information to the error.
func (err *FormulaSyntaxError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// UnknownElementError is returned when a well-formed element symbol is not
// present in the element data source used for the call.
type UnknownElementError struct {
	Symbol string
	deco   []string
}

func (err *UnknownElementError) Error() string {
	return fmt.Sprintf("stoich: unknown element %q", err.Symbol)
}

// Decorate adds new information to the error.
func (err *UnknownElementError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// EquationFormatError is returned when an equation string does not have
// exactly one reactants/products separator ("->" or "="), or when one of its
// sides is empty. Separators holds how many separator tokens were found.
type EquationFormatError struct {
	Separators int
	msg        string
	deco       []string
}

func (err *EquationFormatError) Error() string {
	return "stoich: bad equation: " + err.msg
}

// Decorate adds new information to the error.
func (err *EquationFormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// SingularSystemError is returned when the stoichiometric linear system for
// an equation is degenerate: elimination and back-substitution fail to
// produce one finite, consistent, strictly positive coefficient per compound.
// It usually means the equation cannot be balanced as written.
type SingularSystemError struct {
	msg  string
	deco []string
}

func (err *SingularSystemError) Error() string {
	return "stoich: singular stoichiometric system: " + err.msg
}

// Decorate adds new information to the error.
func (err *SingularSystemError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// NonIntegerConvergenceError is returned when a solved coefficient cannot be
// approximated by a fraction within the iteration bound of the
// continued-fraction expansion. It only happens for pathological inputs.
type NonIntegerConvergenceError struct {
	Value float64
	deco  []string
}

func (err *NonIntegerConvergenceError) Error() string {
	return fmt.Sprintf("stoich: coefficient %v did not converge to a fraction", err.Value)
}

// Decorate adds new information to the error.
func (err *NonIntegerConvergenceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
