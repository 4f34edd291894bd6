/*
 * balance_test.go
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

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBalanceWater(Te *testing.T) {
	B, err := BalanceEquation("H2 + O2 -> H2O", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !sameInts(B.Coeffs, []int{2, 1, 2}) {
		Te.Errorf("coefficients: got %v, want [2 1 2]", B.Coeffs)
	}
	if B.String() != "2H2 + O2 → 2H2O" {
		Te.Errorf("rendered: got %q", B.String())
	}
	if !B.Balanced() {
		Te.Error("balanced reaction reports unbalanced")
	}
	fmt.Println(B)
}

//TestBalanceConservation runs a battery of real reactions and checks the two
//properties every balanced result must have: exact element conservation and
//no common factor among the coefficients.
func TestBalanceConservation(Te *testing.T) {
	equations := []string{
		"H2 + O2 -> H2O",
		"Fe + O2 -> Fe2O3",
		"C3H8 + O2 -> CO2 + H2O",
		"Al + HCl -> AlCl3 + H2",
		"KMnO4 + HCl -> KCl + MnCl2 + H2O + Cl2",
		"Ca3(PO4)2 + SiO2 + C -> CaSiO3 + CO + P4",
		"C6H12O6 -> C2H5OH + CO2",
		"NaOH + H2SO4 -> Na2SO4 + H2O",
		"N2 + H2 = NH3",
		"C2H6 + O2 -> CO2 + H2O",
	}
	for _, eq := range equations {
		B, err := BalanceEquation(eq, nil)
		if err != nil {
			Te.Errorf("%s: %v", eq, err)
			continue
		}
		if !B.Balanced() {
			Te.Errorf("%s: not conserved: %s", eq, B)
		}
		g := 0
		for _, c := range B.Coeffs {
			if c < 1 {
				Te.Errorf("%s: non-positive coefficient %d", eq, c)
			}
			g = gcd(g, c)
		}
		if g != 1 {
			Te.Errorf("%s: coefficients %v share factor %d", eq, B.Coeffs, g)
		}
		fmt.Println(eq, "→→", B)
	}
}

//Pre-scaled input must give the same minimal form as the plain one; the
//balancer never trusts coefficients in the source text.
func TestBalanceRescaled(Te *testing.T) {
	plain, err := BalanceEquation("H2 + O2 -> H2O", nil)
	if err != nil {
		Te.Fatal(err)
	}
	scaled, err := BalanceEquation("4H2 + 2O2 -> 4H2O", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !sameInts(plain.Coeffs, scaled.Coeffs) {
		Te.Errorf("got %v vs %v", plain.Coeffs, scaled.Coeffs)
	}
	if scaled.String() != plain.String() {
		Te.Errorf("rendered: %q vs %q", scaled.String(), plain.String())
	}
}

func TestBalanceEqualsSeparator(Te *testing.T) {
	B, err := BalanceEquation("N2 + H2 = NH3", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !sameInts(B.Coeffs, []int{1, 3, 2}) {
		Te.Errorf("got %v, want [1 3 2]", B.Coeffs)
	}
}

func TestBalanceErrors(Te *testing.T) {
	_, err := BalanceEquation("H2 O2", nil)
	if _, ok := err.(*EquationFormatError); !ok {
		Te.Errorf("no separator: got %T (%v)", err, err)
	}
	_, err = BalanceEquation("H2 + Xy2 -> H2O", nil)
	if _, ok := err.(*UnknownElementError); !ok {
		Te.Errorf("unknown element: got %T (%v)", err, err)
	}
	_, err = BalanceEquation("H2 -> O2", nil)
	if _, ok := err.(*SingularSystemError); !ok {
		Te.Errorf("impossible reaction: got %T (%v)", err, err)
	}
	_, err = BalanceEquation("H2 -> H2 + O2", nil)
	if _, ok := err.(*SingularSystemError); !ok {
		Te.Errorf("creation from nothing: got %T (%v)", err, err)
	}
}

func TestRealToFraction(Te *testing.T) {
	cases := []struct {
		v        float64
		num, den int64
	}{
		{0.5, 1, 2},
		{2.0, 2, 1},
		{1.0 / 3.0, 1, 3},
		{7.0 / 2.0, 7, 2},
		{11.0 / 6.0, 11, 6},
	}
	for _, c := range cases {
		num, den, err := realToFraction(c.v)
		if err != nil {
			Te.Errorf("%v: %v", c.v, err)
			continue
		}
		if num != c.num || den != c.den {
			Te.Errorf("%v: got %d/%d, want %d/%d", c.v, num, den, c.num, c.den)
		}
	}
}
