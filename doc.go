/*
 * doc.go, part of gostoich.
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

/*Package stoich interprets chemical formulas and balances reaction equations.
It is the computational core behind interactive chemistry reference tools: the
part that turns free text such as "Ca3(PO4)2" or "H2 + O2 -> H2O" into
validated, quantitatively correct data.


	**goStoich Capabilities**

    Parses chemical formulas with arbitrarily nested parenthesized groups
	into per-element atom counts.

    Computes molar masses with a per-element breakdown, ordered by
	atomic number.

    Parses reaction equations (both the "->" and the "=" separator are
	accepted) into reactant and product compounds.

    Balances reaction equations by solving the stoichiometric linear
	system with Gaussian elimination, then recovering the smallest
	positive integer coefficients via continued-fraction rationalization.

    Ships a built-in periodic table, but any type implementing the
	Elementer interface can be used as the element data source instead.

    Results can be JSON-encoded (see also the srf subpackage, which
	writes compressed record files, and stoichplot, which draws
	composition charts).

All operations are pure functions of their input and the element data source;
they keep no state between calls and are safe to call concurrently as long as
the Elementer given to them is not mutated during the call.*/
package stoich
