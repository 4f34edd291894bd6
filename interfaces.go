/*
 * interfaces.go, part of gostoich.
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

// Element holds the reference data for one chemical element: its symbol,
// atomic number and atomic mass (in g/mol).
type Element struct {
	Symbol string
	Number int
	Mass   float64
}

// Elementer is the basic interface for any read-only source of element data.
// The library ships a built-in periodic table (see PeriodicTable) but hosting
// applications can supply their own. An Elementer must not be mutated while a
// call that uses it is in flight; if the host keeps a mutable registry, it
// should hand this library an immutable snapshot.
type Elementer interface {

	//Element returns the data for the element with the given symbol,
	//or nil if the symbol is not known to the data source. Symbols are
	//case-sensitive ("Co" is cobalt, "CO" is not an element).
	Element(symbol string) *Element
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}
