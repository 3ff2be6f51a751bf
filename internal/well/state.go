package well

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Triple is a set of wavenumbers along the three axes of the well.
// Enumerate produces them in non-decreasing form, NX <= NY <= NZ.
type Triple struct {
	NX, NY, NZ int
}

// SumOfSquares returns nx²+ny²+nz²
func (t Triple) SumOfSquares() int {
	return t.NX*t.NX + t.NY*t.NY + t.NZ*t.NZ
}

// String formats the triple as space separated wavenumbers
func (t Triple) String() string {
	return fmt.Sprintf("%d %d %d", t.NX, t.NY, t.NZ)
}

// Enumerate yields every non-decreasing triple with components in [1, n],
// i.e. the combinations with replacement of three values from 1..n.
// Nothing is yielded for n < 1.
func Enumerate(n int) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for nx := 1; nx <= n; nx++ {
			for ny := nx; ny <= n; ny++ {
				for nz := ny; nz <= n; nz++ {
					if !yield(Triple{nx, ny, nz}) {
						return
					}
				}
			}
		}
	}
}

// Count returns the number of triples Enumerate yields for n, n(n+1)(n+2)/6.
func Count(n int) int {
	if n < 1 {
		return 0
	}
	return n * (n + 1) * (n + 2) / 6
}

// Energy returns h²/(8m)·(nx²+ny²+nz²)/L² in joules.
func Energy(c Constants, t Triple) float64 {
	return c.planck * c.planck / (8 * c.mass) * float64(t.SumOfSquares()) / (c.length * c.length)
}

// Degeneracy returns the number of distinct orderings of t: 1 when all
// wavenumbers are equal, 3 when exactly two are, 6 when all differ.
// Triples of different wavenumbers that happen to share an energy are not
// counted here.
func Degeneracy(t Triple) int {
	switch distinct(t) {
	case 1:
		return 1
	case 2:
		return 3
	default:
		return 6
	}
}

func distinct(t Triple) int {
	switch {
	case t.NX == t.NY && t.NY == t.NZ:
		return 1
	case t.NX == t.NY || t.NY == t.NZ || t.NX == t.NZ:
		return 2
	default:
		return 3
	}
}

// State is one row of the energy table.
type State struct {
	Triple
	Energy     float64
	Degeneracy int
}

// Evaluate computes the energy and degeneracy of t.
func Evaluate(c Constants, t Triple) State {
	return State{
		Triple:     t,
		Energy:     Energy(c, t),
		Degeneracy: Degeneracy(t),
	}
}

// Table is a list of states in ascending order of energy.
type Table []State

// BuildTable evaluates every triple up to n and sorts the result by energy.
// States with exactly equal energies keep their enumeration order.
func BuildTable(c Constants, n int) Table {
	table := make(Table, 0, Count(n))
	for t := range Enumerate(n) {
		table = append(table, Evaluate(c, t))
	}

	slices.SortStableFunc(table, func(a, b State) int {
		return cmp.Compare(a.Energy, b.Energy)
	})

	return table
}

// TotalDegeneracy sums the degeneracy column. For a complete table built
// with bound n this equals n³, the number of ordered triples.
func (t Table) TotalDegeneracy() int {
	total := 0
	for _, s := range t {
		total += s.Degeneracy
	}
	return total
}
