// Package matrix is the dense linear-algebra substrate shared by the
// state-transition assembler, the time-evolution engine, and the
// likelihood/posterior queries.
//
// Dense is a flat, row-major float64 matrix. Most
// time evolution walks a single state vector through the transition
// matrix one step at a time (VecMat, a hand-rolled O(n^2) inner loop —
// cheap when the number of steps is small). MatrixPower instead raises
// the K^L×K^L transition matrix to a power directly via exponentiation
// by squaring, and Mul delegates that squaring's inner product to
// gonum.org/v1/gonum/mat rather than a hand-rolled triple loop; evolve
// switches to this path once the diagnose time grows past a cutoff
// where O(n^3*log(t)) beats O(t*n^2).
package matrix
