package shamir

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// testCase1 is generated by f(x) = x^2 + 3.
var testCase1 = []Record{
	{X: "1", Base: "10", Value: "4"},
	{X: "2", Base: "2", Value: "111"},
	{X: "3", Base: "10", Value: "12"},
	{X: "6", Base: "4", Value: "213"},
}

// testCase2 has threshold 7; the share at x=8 is corrupted.
var testCase2 = []Record{
	{X: "1", Base: "6", Value: "13444211440455345511"},
	{X: "2", Base: "15", Value: "aed7015a346d63"},
	{X: "3", Base: "15", Value: "6aeeb69631c227c"},
	{X: "4", Base: "16", Value: "e1b5e05623d881f"},
	{X: "5", Base: "8", Value: "316034514573652620673"},
	{X: "6", Base: "3", Value: "2122212201122002221120200210011020220200"},
	{X: "7", Base: "3", Value: "20120221122211000100210021102001201112121"},
	{X: "8", Base: "6", Value: "20220554335330240002224253"},
	{X: "9", Base: "12", Value: "45153788322a1255483"},
	{X: "10", Base: "7", Value: "1101613130313526312514143"},
}

const testCase2Secret = "79836264049851"

// intPolynomial holds integer coefficients, index 0 is the constant term.
type intPolynomial []*big.Int

func (p intPolynomial) evaluate(x *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p[i])
	}
	return result
}

func (p intPolynomial) points(xs ...int64) []Point {
	points := make([]Point, len(xs))
	for i, x := range xs {
		bx := big.NewInt(x)
		points[i] = Point{X: bx, Y: p.evaluate(bx)}
	}
	return points
}

// randomPolynomial returns a polynomial of the given degree with secret as the
// constant term and random signed coefficients below 2^bits.
func randomPolynomial(t testing.TB, secret *big.Int, degree, bits int) intPolynomial {
	t.Helper()

	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	poly := make(intPolynomial, degree+1)
	poly[0] = new(big.Int).Set(secret)

	for i := 1; i <= degree; i++ {
		coef, err := rand.Int(rand.Reader, limit)
		require.NoError(t, err)
		if coef.Bit(0) == 1 {
			coef.Neg(coef)
		}
		poly[i] = coef
	}

	return poly
}

func mustPointSet(t testing.TB, points []Point) *PointSet {
	t.Helper()

	set, err := NewPointSet(len(points), points)
	require.NoError(t, err)
	return set
}

func mustDecode(t testing.TB, records []Record) []Point {
	t.Helper()

	points, err := DecodeRecords(records)
	require.NoError(t, err)
	return points
}

// combinations calls fn with every k-element index subset of [0, n).
func combinations(n, k int, fn func([]int)) {
	indexes := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(indexes)
			return
		}
		for i := start; i < n; i++ {
			indexes[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

func permutations(points []Point, fn func([]Point)) {
	var walk func(int)
	walk = func(i int) {
		if i == len(points) {
			fn(points)
			return
		}
		for j := i; j < len(points); j++ {
			points[i], points[j] = points[j], points[i]
			walk(i + 1)
			points[i], points[j] = points[j], points[i]
		}
	}
	walk(0)
}
