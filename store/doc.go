// SPDX-License-Identifier: MIT

// Package store persists found square-sum paths in an embedded BadgerDB
// catalog, one entry per graph order.
//
// A growth run that starts above 1 resumes from the catalog: the stored path
// for order n-1 seeds the search for n.
//
//	cat, err := store.Open(store.InMemoryConfig())
//	if err != nil { ... }
//	defer cat.Close()
//	_ = cat.Save(15, path)
//	p, err := cat.Load(15)
//
// Keys are "path/" followed by the big-endian order, so Orders lists them in
// ascending order. Values are uvarint-encoded path values.
package store
