// SPDX-License-Identifier: MIT

// Package growth drives the search across increasing graph orders.
//
// For each order n in [Start, End] the driver appends node n to a single
// square-sum graph and searches it, seeding the search with the path found
// for n-1 when there is one. A Catalog, when attached, persists every found
// path and supplies seeds that are missing in memory, so a run can resume
// where an earlier one stopped.
//
// NotConnected and Timeout are reported per order and the run continues
// unseeded. Any other error is an invariant violation and aborts Run.
//
// Each order draws its random stream from hamilton.DeriveRand(Seed, n), so
// a run is reproducible order by order.
package growth
