// Package redisledger implements the ledger port on Redis. Values live
// under namespaced string keys; a companion sorted set indexes the keys
// lexicographically so range scans come back in key order, which plain
// SCAN does not guarantee.
package redisledger

import (
	"context"
	"errors"
	"fmt"

	"tradefinance/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// RedisLedger is a Redis-backed key-value ledger.
type RedisLedger struct {
	client    *redis.Client
	namespace string
}

// NewRedisLedger creates a ledger storing entries under the given
// namespace. The namespace isolates this workflow's records from other
// users of the same Redis instance.
func NewRedisLedger(client *redis.Client, namespace string) *RedisLedger {
	return &RedisLedger{
		client:    client,
		namespace: namespace,
	}
}

var _ ports.Ledger = (*RedisLedger)(nil)

func (l *RedisLedger) valueKey(key string) string {
	return fmt.Sprintf("%s:%s", l.namespace, key)
}

func (l *RedisLedger) indexKey() string {
	return fmt.Sprintf("%s:keys", l.namespace)
}

// Get returns the value stored under key.
func (l *RedisLedger) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := l.client.Get(ctx, l.valueKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// Put stores value under key and records the key in the lexicographic
// index. Both writes go through one transactional pipeline so a key never
// exists in only one of the two structures.
func (l *RedisLedger) Put(ctx context.Context, key string, value []byte) error {
	pipe := l.client.TxPipeline()
	pipe.Set(ctx, l.valueKey(key), value, 0)
	pipe.ZAdd(ctx, l.indexKey(), redis.Z{Score: 0, Member: key})
	_, err := pipe.Exec(ctx)
	return err
}

// Range scans keys in [startKey, endKey) via the lexicographic index and
// fetches their values in one MGET. The entry list is materialized up
// front, which is as close to a snapshot as Redis offers; entries deleted
// between the index read and the value fetch are skipped.
func (l *RedisLedger) Range(ctx context.Context, startKey, endKey string) (ports.LedgerIterator, error) {
	min := "-"
	if startKey != "" {
		min = "[" + startKey
	}
	max := "+"
	if endKey != "" {
		max = "(" + endKey
	}

	keys, err := l.client.ZRangeByLex(ctx, l.indexKey(), &redis.ZRangeBy{
		Min: min,
		Max: max,
	}).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return &rangeIterator{pos: -1}, nil
	}

	valueKeys := make([]string, len(keys))
	for i, key := range keys {
		valueKeys[i] = l.valueKey(key)
	}

	rawValues, err := l.client.MGet(ctx, valueKeys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]rangeEntry, 0, len(keys))
	for i, raw := range rawValues {
		s, ok := raw.(string)
		if !ok {
			continue
		}
		entries = append(entries, rangeEntry{key: keys[i], value: []byte(s)})
	}

	return &rangeIterator{entries: entries, pos: -1}, nil
}

type rangeEntry struct {
	key   string
	value []byte
}

type rangeIterator struct {
	entries []rangeEntry
	pos     int
}

func (it *rangeIterator) Next() bool {
	if it.pos+1 >= len(it.entries) {
		return false
	}
	it.pos++
	return true
}

func (it *rangeIterator) Key() string {
	return it.entries[it.pos].key
}

func (it *rangeIterator) Value() []byte {
	return it.entries[it.pos].value
}

func (it *rangeIterator) Err() error {
	return nil
}

func (it *rangeIterator) Close() error {
	return nil
}
