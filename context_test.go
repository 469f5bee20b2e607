package movediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// collidingComparator hashes every line to the same value.
type collidingComparator struct {
	Comparator
}

func (collidingComparator) Hash(*Text, int) uint32 { return 1 }

func TestHashedComparator_CollisionFallsBackToEqual(t *testing.T) {
	a, b := text("a\nb\n"), text("b\nc\n")
	ctx := newDiffContext(a, b, collidingComparator{Default})

	assert.Equal(t, ctx.a.hashes, ctx.b.hashes)
	assert.True(t, ctx.equal(1, 0))
	assert.False(t, ctx.equal(0, 0))
	assert.False(t, ctx.equal(1, 1))
}

func TestHashedComparator_HashMismatchRejects(t *testing.T) {
	// alwaysEqual would match anything; distinct hashes must still reject.
	a, b := text("a\n"), text("b\n")
	ctx := newDiffContext(a, b, alwaysEqual{Default})
	assert.False(t, ctx.equal(0, 0))
}

type alwaysEqual struct {
	Comparator
}

func (alwaysEqual) Equal(*Text, int, *Text, int) bool { return true }

func TestWrap(t *testing.T) {
	tx := text("a\nb\na\n")
	s := wrap(tx, Default)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, s.hashes[0], s.hashes[2])
	assert.NotEqual(t, s.hashes[0], s.hashes[1])
	assert.Equal(t, Default.Hash(tx, 1), s.hashes[1])
}

func TestDiff_CollidingHashes(t *testing.T) {
	a, b := text("1\n2\n3\n"), text("3\n9\n1\n")
	got := Diff(a, b, collidingComparator{Default})
	assert.Equal(t, Diff(a, b, Default), got)
}
