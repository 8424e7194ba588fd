// Package quadrature generates point/weight rules on the reference cells.
//
// Simplex rules are Gauss-Jacobi tensor rules pushed through the collapsed
// (Duffy) map, so a rule of m points per direction integrates polynomials of
// total degree 2m-1 exactly on the interval, triangle and tetrahedron.
// Gauss-Jacobi roots are found by Newton iteration with deflation, and the
// Gauss and Gauss-Lobatto-Legendre variants are computed from the eigen
// structure of the symmetric tridiagonal Jacobi matrix.
//
// All reference cells use the [0,1] convention: the triangle has vertices
// (0,0), (1,0), (0,1) and the tetrahedron adds (0,0,1).
package quadrature
