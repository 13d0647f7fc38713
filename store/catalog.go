// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: badger-backed path catalog keyed by graph order.

package store

import (
	"encoding/binary"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

var (
	// ErrBadConfig is returned by Open for unusable configurations.
	ErrBadConfig = errors.New("store: bad catalog config")

	// ErrNotFound means the catalog holds no path for the requested order.
	ErrNotFound = errors.New("store: no path for order")

	// ErrBadOrder is returned for orders < 1.
	ErrBadOrder = errors.New("store: order must be ≥ 1")

	// ErrCorrupt means a stored value does not decode to a path of its order.
	ErrCorrupt = errors.New("store: corrupt catalog entry")
)

// keyPrefix namespaces path entries.
var keyPrefix = []byte("path/")

// Catalog stores one path per graph order. Safe for concurrent use.
type Catalog struct {
	db *badger.DB
}

// Open opens (creating if needed) the catalog described by cfg.
func Open(cfg Config) (*Catalog, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.Wrap(ErrBadConfig, "Path must be set for an on-disk catalog")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, errors.Wrapf(err, "create catalog directory %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger catalog")
	}

	return &Catalog{db: db}, nil
}

// Save stores seq as the path for order, replacing any previous entry.
// len(seq) must equal order.
func (c *Catalog) Save(order int, seq []int) error {
	if order < 1 {
		return errors.Wrapf(ErrBadOrder, "Save: order=%d", order)
	}
	if len(seq) != order {
		return errors.Wrapf(ErrCorrupt, "Save: order=%d len=%d", order, len(seq))
	}
	val := encodePath(seq)

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(orderKey(order), val)
	})

	return errors.Wrapf(err, "save path for order %d", order)
}

// Load returns the stored path for order, or ErrNotFound.
func (c *Catalog) Load(order int) ([]int, error) {
	if order < 1 {
		return nil, errors.Wrapf(ErrBadOrder, "Load: order=%d", order)
	}

	var seq []int
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(orderKey(order))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var derr error
			seq, derr = decodePath(val)
			return derr
		})
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, errors.Wrapf(ErrNotFound, "order %d", order)
	case err != nil:
		return nil, errors.Wrapf(err, "load path for order %d", order)
	case len(seq) != order:
		return nil, errors.Wrapf(ErrCorrupt, "order %d holds %d values", order, len(seq))
	}

	return seq, nil
}

// Orders lists every stored order, ascending.
func (c *Catalog) Orders() ([]int, error) {
	var out []int
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = keyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			out = append(out, int(binary.BigEndian.Uint64(key[len(keyPrefix):])))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list catalog orders")
	}

	return out, nil
}

// Latest returns the largest stored order at most limit, or 0 when there is
// none.
func (c *Catalog) Latest(limit int) (int, error) {
	orders, err := c.Orders()
	if err != nil {
		return 0, err
	}
	best := 0
	for _, o := range orders {
		if o <= limit {
			best = o
		}
	}

	return best, nil
}

// Close releases the underlying database.
func (c *Catalog) Close() error {
	return errors.Wrap(c.db.Close(), "close badger catalog")
}

func orderKey(order int) []byte {
	key := make([]byte, len(keyPrefix)+8)
	copy(key, keyPrefix)
	binary.BigEndian.PutUint64(key[len(keyPrefix):], uint64(order))

	return key
}

func encodePath(seq []int) []byte {
	buf := make([]byte, 0, len(seq)*binary.MaxVarintLen32)
	for _, v := range seq {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return buf
}

func decodePath(val []byte) ([]int, error) {
	var seq []int
	for len(val) > 0 {
		v, n := binary.Uvarint(val)
		if n <= 0 {
			return nil, errors.Wrap(ErrCorrupt, "truncated varint")
		}
		seq = append(seq, int(v))
		val = val[n:]
	}

	return seq, nil
}
