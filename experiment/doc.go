// SPDX-License-Identifier: MIT

// Package experiment runs the two classic random-graph experiments.
//
//   - Connectivity: the fraction of G(n,p) samples that are connected, for
//     one p (ConnectivityRate) or a whole curve (ConnectivityCurve), with
//     the mean share of vertices in the largest component. The Erdős–Rényi
//     threshold ln(n)/n is available as ConnectivityThreshold.
//   - Watts–Strogatz sweep: for each rewiring probability p, build the ring
//     lattice, rewire it, and record C(p) and L(p) together with their ratios
//     to the unrewired lattice (Sweep).
//
// Every run draws from the *rand.Rand it is given, so a fixed seed
// reproduces the numbers exactly. The *Context variants check ctx between
// samples and return ctx.Err() once it is done.
package experiment
