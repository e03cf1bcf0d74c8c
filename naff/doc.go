// Package naff implements the Numerical Analysis of Fundamental
// Frequencies (NAFF) method of Laskar, as modified by Valluri & Merritt,
// for extracting the fundamental oscillation frequencies of quasi-periodic
// time series such as orbital coordinates from a dynamical simulation.
//
// The input series is treated as a finite sum of complex exponentials.
// The strongest frequency is located by Fourier transforming the series
// convolved with a Hanning filter and refining the peak by bounded
// minimization, the corresponding component is removed by a weighted
// Gram-Schmidt projection, and the process repeats on the residual. The
// fundamental frequencies are then chosen from the extracted components by
// an amplitude- and distinctness-based heuristic, and every component is
// expressed as an approximate integer combination of the fundamentals.
//
// References:
//
//   - Laskar, J., Froeschlé, C., and Celletti, A. (1992)
//   - Laskar, J. (1993)
//   - Papaphilippou, Y. and Laskar, J. (1996)
//   - Valluri, M. and Merritt, D. (1998)
package naff
