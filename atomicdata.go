/*
 * atomicdata.go, part of gostoich.
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

//A map for assigning mass to elements.
//Standard atomic weights, abridged. For elements with no stable
//isotope, the mass number of the longest-lived isotope is used.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.18,
	"Na": 22.99,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.95,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.63,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468,
	"Sr": 87.62,
	"Y":  88.906,
	"Zr": 91.224,
	"Nb": 92.906,
	"Mo": 95.95,
	"Tc": 98.0,
	"Ru": 101.07,
	"Rh": 102.91,
	"Pd": 106.42,
	"Ag": 107.87,
	"Cd": 112.41,
	"In": 114.82,
	"Sn": 118.71,
	"Sb": 121.76,
	"Te": 127.60,
	"I":  126.90,
	"Xe": 131.29,
	"Cs": 132.91,
	"Ba": 137.33,
	"La": 138.91,
	"Ce": 140.12,
	"Pr": 140.91,
	"Nd": 144.24,
	"Pm": 145.0,
	"Sm": 150.36,
	"Eu": 151.96,
	"Gd": 157.25,
	"Tb": 158.93,
	"Dy": 162.50,
	"Ho": 164.93,
	"Er": 167.26,
	"Tm": 168.93,
	"Yb": 173.05,
	"Lu": 174.97,
	"Hf": 178.49,
	"Ta": 180.95,
	"W":  183.84,
	"Re": 186.21,
	"Os": 190.23,
	"Ir": 192.22,
	"Pt": 195.08,
	"Au": 196.97,
	"Hg": 200.59,
	"Tl": 204.38,
	"Pb": 207.2,
	"Bi": 208.98,
	"Po": 209.0,
	"At": 210.0,
	"Rn": 222.0,
	"Fr": 223.0,
	"Ra": 226.0,
	"Ac": 227.0,
	"Th": 232.04,
	"Pa": 231.04,
	"U":  238.03,
	"Np": 237.0,
	"Pu": 244.0,
	"Am": 243.0,
	"Cm": 247.0,
	"Bk": 247.0,
	"Cf": 251.0,
	"Es": 252.0,
	"Fm": 257.0,
	"Md": 258.0,
	"No": 259.0,
	"Lr": 266.0,
	"Rf": 267.0,
	"Db": 268.0,
	"Sg": 269.0,
	"Bh": 270.0,
	"Hs": 277.0,
	"Mt": 278.0,
	"Ds": 281.0,
	"Rg": 282.0,
	"Cn": 285.0,
	"Nh": 286.0,
	"Fl": 289.0,
	"Mc": 290.0,
	"Lv": 293.0,
	"Ts": 294.0,
	"Og": 294.0,
}

//A map for assigning atomic numbers to elements.
var symbolNumber = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Sc": 21,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ga": 31,
	"Ge": 32,
	"As": 33,
	"Se": 34,
	"Br": 35,
	"Kr": 36,
	"Rb": 37,
	"Sr": 38,
	"Y":  39,
	"Zr": 40,
	"Nb": 41,
	"Mo": 42,
	"Tc": 43,
	"Ru": 44,
	"Rh": 45,
	"Pd": 46,
	"Ag": 47,
	"Cd": 48,
	"In": 49,
	"Sn": 50,
	"Sb": 51,
	"Te": 52,
	"I":  53,
	"Xe": 54,
	"Cs": 55,
	"Ba": 56,
	"La": 57,
	"Ce": 58,
	"Pr": 59,
	"Nd": 60,
	"Pm": 61,
	"Sm": 62,
	"Eu": 63,
	"Gd": 64,
	"Tb": 65,
	"Dy": 66,
	"Ho": 67,
	"Er": 68,
	"Tm": 69,
	"Yb": 70,
	"Lu": 71,
	"Hf": 72,
	"Ta": 73,
	"W":  74,
	"Re": 75,
	"Os": 76,
	"Ir": 77,
	"Pt": 78,
	"Au": 79,
	"Hg": 80,
	"Tl": 81,
	"Pb": 82,
	"Bi": 83,
	"Po": 84,
	"At": 85,
	"Rn": 86,
	"Fr": 87,
	"Ra": 88,
	"Ac": 89,
	"Th": 90,
	"Pa": 91,
	"U":  92,
	"Np": 93,
	"Pu": 94,
	"Am": 95,
	"Cm": 96,
	"Bk": 97,
	"Cf": 98,
	"Es": 99,
	"Fm": 100,
	"Md": 101,
	"No": 102,
	"Lr": 103,
	"Rf": 104,
	"Db": 105,
	"Sg": 106,
	"Bh": 107,
	"Hs": 108,
	"Mt": 109,
	"Ds": 110,
	"Rg": 111,
	"Cn": 112,
	"Nh": 113,
	"Fl": 114,
	"Mc": 115,
	"Lv": 116,
	"Ts": 117,
	"Og": 118,
}

// PeriodicTable is the built-in element data source, covering elements 1-118.
// Its zero value is ready to use. It satisfies Elementer.
type PeriodicTable struct{}

// Element returns the data for the element with the given symbol, or nil if
// the symbol is not in the table.
func (P PeriodicTable) Element(symbol string) *Element {
	n, ok := symbolNumber[symbol]
	if !ok {
		return nil
	}
	return &Element{Symbol: symbol, Number: n, Mass: symbolMass[symbol]}
}

//used whenever the caller passes a nil Elementer.
var periodic = PeriodicTable{}

//table resolves the element data source for a call.
func table(elems Elementer) Elementer {
	if elems == nil {
		return periodic
	}
	return elems
}
