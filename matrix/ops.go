package matrix

import "gonum.org/v1/gonum/mat"

// Mul returns a*b. The inner product is delegated to gonum's BLAS-backed
// mat.Dense.Mul, then copied back into this package's own Dense — the
// public surface and error sentinels stay this package's own, the
// O(n^3) inner loop is gonum's. Used by MatrixPower's repeated-squaring.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	if a.c != b.r {
		return nil, matrixErrorf("Mul", ErrDimensionMismatch)
	}

	ga := mat.NewDense(a.r, a.c, a.data)
	gb := mat.NewDense(b.r, b.c, b.data)
	gc := mat.NewDense(a.r, b.c, nil)
	gc.Mul(ga, gb)

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			out.MustSet(i, j, gc.At(i, j))
		}
	}
	return out, nil
}

// MatrixPower returns a^exp via exponentiation by squaring, using Mul for
// every squaring/multiply step. For a K^L×K^L transition matrix this is
// O(n^3 log(exp)) against Mul's gonum-backed inner loop, versus the
// O(exp*n^2) cost of walking a single state vector through VecMat exp
// times — the two evolution strategies trade off at large exp, which is
// why AtDiagTime switches to this path once t grows past matrixPowerCutoff.
func MatrixPower(a *Dense, exp int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("MatrixPower", err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf("MatrixPower", err)
	}
	if exp < 0 {
		return nil, matrixErrorf("MatrixPower", ErrNegativeExponent)
	}

	result, err := NewIdentity(a.r)
	if err != nil {
		return nil, matrixErrorf("MatrixPower", err)
	}
	base := a.Clone()
	for exp > 0 {
		if exp&1 == 1 {
			result, err = Mul(result, base)
			if err != nil {
				return nil, matrixErrorf("MatrixPower", err)
			}
		}
		exp >>= 1
		if exp > 0 {
			base, err = Mul(base, base)
			if err != nil {
				return nil, matrixErrorf("MatrixPower", err)
			}
		}
	}
	return result, nil
}

// MatVec returns y = m*x.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf("MatVec", ErrDimensionMismatch)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		sum := 0.0
		base := i * m.c
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}
	return y, nil
}

// VecMat returns y = x*m (row vector times matrix).
func VecMat(x []float64, m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("VecMat", err)
	}
	if len(x) != m.r {
		return nil, matrixErrorf("VecMat", ErrDimensionMismatch)
	}

	y := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		base := i * m.c
		for j := 0; j < m.c; j++ {
			y[j] += xi * m.data[base+j]
		}
	}
	return y, nil
}

// RowSums returns per-row sums.
func RowSums(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]float64, m.c)
	for i := range ones {
		ones[i] = 1
	}
	return MatVec(m, ones)
}

// Scale returns alpha*m.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}
	return out, nil
}

// Add returns a+b element-wise.
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}
	return out, nil
}

// ScaleVec returns alpha*x.
func ScaleVec(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * alpha
	}
	return out
}

// AddVec returns a+b element-wise for equal-length vectors.
func AddVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// DotVec returns the inner product of a and b.
func DotVec(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
