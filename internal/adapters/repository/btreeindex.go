package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/btree"
)

const defaultDegree = 16

type item struct {
	id       string
	position string
}

func (i item) Less(than btree.Item) bool {
	return i.id < than.(item).id
}

// BTreeIndex is an ordered, read-only player index. It is populated once
// at startup and only read afterwards, so lookups need no locking.
type BTreeIndex struct {
	tree      *btree.BTree
	positions map[string]int
}

// Option applies a configuration option to the BTreeIndex.
type Option func(*builder)

type builder struct {
	degree int
}

// WithDegree sets the btree branching factor.
func WithDegree(d int) Option {
	return func(b *builder) {
		if d > 1 {
			b.degree = d
		}
	}
}

// NewBTreeIndex builds an index from the given entries.
func NewBTreeIndex(_ context.Context, entries []Entry, opts ...Option) *BTreeIndex {
	b := &builder{degree: defaultDegree}
	for _, opt := range opts {
		opt(b)
	}

	idx := &BTreeIndex{
		tree:      btree.New(b.degree),
		positions: make(map[string]int),
	}
	for _, e := range entries {
		if idx.tree.ReplaceOrInsert(item{id: e.PlayerID, position: e.Position}) == nil {
			idx.positions[e.Position]++
		}
	}
	return idx
}

// Players returns ids in lexicographic order, optionally restricted to a
// prefix and capped at limit.
func (x *BTreeIndex) Players(_ context.Context, prefix string, limit int) []Entry {
	var out []Entry
	collect := func(i btree.Item) bool {
		it := i.(item)
		if prefix != "" && !strings.HasPrefix(it.id, prefix) {
			return false // past the prefix range; stop the scan
		}
		out = append(out, Entry{PlayerID: it.id, Position: it.position})
		return limit <= 0 || len(out) < limit
	}
	if prefix == "" {
		x.tree.Ascend(collect)
	} else {
		x.tree.AscendGreaterOrEqual(item{id: prefix}, collect)
	}
	return out
}

// Get returns the indexed entry for a player id.
func (x *BTreeIndex) Get(_ context.Context, playerID string) (Entry, error) {
	got := x.tree.Get(item{id: playerID})
	if got == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, playerID)
	}
	it := got.(item)
	return Entry{PlayerID: it.id, Position: it.position}, nil
}

// Positions returns a copy of the position counts.
func (x *BTreeIndex) Positions(_ context.Context) map[string]int {
	out := make(map[string]int, len(x.positions))
	for k, v := range x.positions {
		out[k] = v
	}
	return out
}

// Count returns the number of indexed players.
func (x *BTreeIndex) Count(_ context.Context) int {
	return x.tree.Len()
}
