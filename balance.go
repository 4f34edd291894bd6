/*
 * balance.go, part of gostoich.
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
	"math"
	"math/big"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 1e-10 //used to correct floating point
//errors. Pivot candidates and solved values with magnitude equal or less
//than this are considered zero.

//bound for the continued-fraction expansion. Real reactions converge in a
//handful of iterations.
const maxFracIter = 64

//residual tolerance when checking the solved coefficients against the
//original conservation system.
const restol = 1e-8

// BalancedReaction is a Reaction whose compounds carry the smallest positive
// integer coefficients that conserve every element. Coeffs lists the same
// coefficients in compound order, reactants first.
type BalancedReaction struct {
	*Reaction
	Coeffs []int
}

/*BalanceEquation parses equation (see ParseEquation for the accepted shape)
and balances it: it finds the smallest positive integer coefficient for each
compound such that, for every element, the atoms produced equal the atoms
consumed. Any explicit coefficients in the input text are ignored and
recomputed.

The conservation laws form a homogeneous linear system with a one-dimensional
solution space (a balanced equation stays balanced under uniform rescaling).
The system is pinned by fixing the first compound's coefficient to 1, solved
by Gaussian elimination with partial pivoting, and the rational solution is
converted to integers by continued-fraction expansion, scaling by the least
common multiple of the denominators, and a final GCD reduction.

A nil Elementer selects the built-in periodic table. On top of the parsing
failures, balancing can fail with SingularSystemError (the equation cannot be
balanced as written) or NonIntegerConvergenceError (a solved coefficient
could not be recognized as a fraction; only contrived inputs do this).*/
func BalanceEquation(equation string, elems Elementer) (*BalancedReaction, error) {
	R, err := ParseEquation(equation, elems)
	if err != nil {
		return nil, errDecorate(err, "BalanceEquation")
	}
	coeffs, err := balance(R)
	if err != nil {
		return nil, errDecorate(err, "BalanceEquation")
	}
	for i, c := range R.Reactants {
		c.Coefficient = coeffs[i]
	}
	for i, c := range R.Products {
		c.Coefficient = coeffs[len(R.Reactants)+i]
	}
	return &BalancedReaction{Reaction: R, Coeffs: coeffs}, nil
}

//balance builds and solves the stoichiometric system for R.
func balance(R *Reaction) ([]int, error) {
	symbols := R.Elements()
	comps := make([]*Compound, 0, len(R.Reactants)+len(R.Products))
	comps = append(comps, R.Reactants...)
	comps = append(comps, R.Products...)
	n := len(comps)
	rows := len(symbols) + 1 //one conservation row per element, plus the pin row
	M := mat.NewDense(rows, n, nil)
	b := make([]float64, rows)
	for i, sym := range symbols {
		for j, c := range comps {
			count := float64(c.Counts[sym])
			if j >= len(R.Reactants) { //products count as consumed atoms
				count = -count
			}
			M.Set(i, j, count)
		}
	}
	//pin the first coefficient to 1, collapsing the solution ray to a point
	M.Set(rows-1, 0, 1)
	b[rows-1] = 1
	x, err := gaussSolve(M, b)
	if err != nil {
		return nil, errDecorate(err, "balance")
	}
	coeffs, err := rationalize(x)
	if err != nil {
		return nil, errDecorate(err, "balance")
	}
	return coeffs, nil
}

//gaussSolve solves M·x = b by Gaussian elimination with partial pivoting.
//The system may be overdetermined; columns with no usable pivot are left
//free at zero and the candidate solution is checked against the original
//system afterwards, so degenerate input surfaces as SingularSystemError
//rather than as a silently wrong answer.
func gaussSolve(M *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := M.Dims()
	A := mat.DenseCopyOf(M)
	rhs := make([]float64, rows)
	copy(rhs, b)
	pivots := make([]int, cols)
	r := 0
	for j := 0; j < cols; j++ {
		pivots[j] = -1
		if r >= rows {
			continue
		}
		//pick the largest-magnitude candidate to bound roundoff
		p, best := -1, appzero
		for i := r; i < rows; i++ {
			if v := math.Abs(A.At(i, j)); v > best {
				p, best = i, v
			}
		}
		if p == -1 {
			continue
		}
		if p != r {
			swapRows(A, p, r)
			rhs[p], rhs[r] = rhs[r], rhs[p]
		}
		for i := r + 1; i < rows; i++ {
			f := A.At(i, j) / A.At(r, j)
			if f == 0 {
				continue
			}
			for k := j; k < cols; k++ {
				A.Set(i, k, A.At(i, k)-f*A.At(r, k))
			}
			rhs[i] -= f * rhs[r]
		}
		pivots[j] = r
		r++
	}
	x := make([]float64, cols)
	for j := cols - 1; j >= 0; j-- {
		pr := pivots[j]
		if pr == -1 {
			continue //free column
		}
		sum := rhs[pr]
		for k := j + 1; k < cols; k++ {
			sum -= A.At(pr, k) * x[k]
		}
		x[j] = sum / A.At(pr, j)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SingularSystemError{msg: "non-finite coefficient after back-substitution"}
		}
	}
	for i := 0; i < rows; i++ {
		res := -b[i]
		for j := 0; j < cols; j++ {
			res += M.At(i, j) * x[j]
		}
		if math.Abs(res) > restol {
			return nil, &SingularSystemError{msg: "conservation system has no consistent solution"}
		}
	}
	return x, nil
}

func swapRows(A *mat.Dense, i, j int) {
	ri := mat.Row(nil, i, A)
	rj := mat.Row(nil, j, A)
	A.SetRow(i, rj)
	A.SetRow(j, ri)
}

//rationalize turns the (possibly fractional) solved coefficients into the
//smallest consistent positive integers.
func rationalize(x []float64) ([]int, error) {
	nums := make([]*big.Int, len(x))
	dens := make([]*big.Int, len(x))
	for i, v := range x {
		if v <= appzero { //every compound must end up with a positive coefficient
			return nil, &SingularSystemError{msg: fmt.Sprintf("coefficient %d solved to %v, want > 0", i+1, v)}
		}
		num, den, err := realToFraction(v)
		if err != nil {
			return nil, err
		}
		nums[i] = big.NewInt(num)
		dens[i] = big.NewInt(den)
	}
	//scale everything by the least common multiple of the denominators
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, d := range dens {
		g.GCD(nil, nil, lcm, d)
		lcm.Div(lcm, g)
		lcm.Mul(lcm, d)
	}
	coeffs := make([]int, len(x))
	t := new(big.Int)
	for i := range x {
		t.Div(lcm, dens[i])
		t.Mul(t, nums[i])
		coeffs[i] = int(t.Int64())
	}
	//The LCM scale-up alone does not guarantee lowest terms: if the pinned
	//unknown was not the most constrained one, every coefficient can share a
	//common factor. Hence the final reduction.
	reduceCoeffs(coeffs)
	return coeffs, nil
}

//reduceCoeffs divides all coefficients by their collective GCD, in place.
func reduceCoeffs(coeffs []int) {
	g := 0
	for _, c := range coeffs {
		g = gcd(g, c)
	}
	if g <= 1 {
		return
	}
	for i := range coeffs {
		coeffs[i] /= g
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

//realToFraction recovers a numerator/denominator pair for v by
//continued-fraction expansion, iterating until the convergent reproduces v
//within tolerance or the iteration bound is hit.
func realToFraction(v float64) (int64, int64, error) {
	h0, h1 := int64(1), int64(math.Floor(v))
	k0, k1 := int64(0), int64(1)
	rem := v - math.Floor(v)
	for i := 0; i < maxFracIter; i++ {
		if math.Abs(v-float64(h1)/float64(k1)) <= appzero*math.Max(1, math.Abs(v)) {
			return h1, k1, nil
		}
		if rem <= appzero {
			break
		}
		r := 1 / rem
		a := math.Floor(r)
		h0, h1 = h1, int64(a)*h1+h0
		k0, k1 = k1, int64(a)*k1+k0
		rem = r - a
	}
	return 0, 0, &NonIntegerConvergenceError{Value: v}
}
