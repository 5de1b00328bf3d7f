package ports

import "context"

// Ledger is the storage gateway backing the escrow workflow: a replicated
// key-value store with point reads/writes and an ordered range scan. The
// contract is load-bearing even though implementations vary:
//
//   - Put is an idempotent last-write-wins point write. Serializing
//     concurrent writers to the same key is the ledger's responsibility,
//     not the caller's; callers are written so that re-execution after a
//     lost write race is safe (re-read, re-validate, write).
//   - Range iterates keys in ascending lexicographic order and observes a
//     consistent snapshot for the duration of the scan.
//
// Operations against different keys may run concurrently with no ordering
// guarantee between them.
type Ledger interface {
	// Get returns the value stored under key. found is false when the key
	// is absent; absence is not an error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Range returns an iterator over keys in [startKey, endKey), ordered by
	// key. An empty startKey or endKey leaves that bound open; both empty
	// scans the full keyspace. The caller must Close the iterator.
	Range(ctx context.Context, startKey, endKey string) (LedgerIterator, error)
}

// LedgerIterator walks the entries of a range scan in key order, following
// the database-rows idiom: Next advances and reports whether an entry is
// available, Err reports any error that terminated iteration early.
type LedgerIterator interface {
	Next() bool
	Key() string
	Value() []byte
	Err() error
	Close() error
}
