package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(k int) *Node[int, struct{}] {
	return &Node[int, struct{}]{Key: k}
}

func newCompleteTree_2Tall() *Node[int, struct{}] {
	t := &Node[int, struct{}]{
		Left: &Node[int, struct{}]{
			Left:  leaf(1),
			Key:   2,
			Right: leaf(3),
		},
		Key: 4,
		Right: &Node[int, struct{}]{
			Left:  leaf(5),
			Key:   6,
			Right: leaf(7),
		},
	}

	UpdateHeights(t)

	return t
}

func TestNode_RotateLeft(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should6 := tr.RotateLeft()

	require.Equal(t, 6, should6.Key)
	assert.Equal(t, 4, should6.Left.Key)
	assert.Equal(t, 7, should6.Right.Key)
	assert.Equal(t, 2, should6.Left.Left.Key)
	assert.Equal(t, 5, should6.Left.Right.Key)
	assert.NoError(t, CheckOrder[int, struct{}](should6, nil, nil))
}

func TestNode_RotateRight(t *testing.T) {
	tr := newCompleteTree_2Tall()

	should2 := tr.RotateRight()

	require.Equal(t, 2, should2.Key)
	assert.Equal(t, 1, should2.Left.Key)
	assert.Equal(t, 4, should2.Right.Key)
	assert.Equal(t, 3, should2.Right.Left.Key)
	assert.Equal(t, 6, should2.Right.Right.Key)
	assert.NoError(t, CheckOrder[int, struct{}](should2, nil, nil))
}

func TestNode_RotateSparse(t *testing.T) {
	// 1 -> 2 -> 3, a right-leaning chain
	chain := leaf(1)
	chain.Right = leaf(2)
	chain.Right.Right = leaf(3)

	top := chain.RotateLeft()
	UpdateHeights(top)

	assert.Equal(t, 2, top.Key)
	assert.Equal(t, 1, top.Left.Key)
	assert.Equal(t, 3, top.Right.Key)
	assert.Nil(t, top.Left.Right)
	assert.Equal(t, 1, top.Height)

	back := top.RotateRight()
	UpdateHeights(back)

	assert.Equal(t, 1, back.Key)
	assert.Nil(t, back.Left)
	assert.Equal(t, 2, back.Right.Key)
	assert.Equal(t, 2, back.Height)
}

func TestNode_RotatePanics(t *testing.T) {
	assert.Panics(t, func() {
		(*Node[int, struct{}])(nil).RotateLeft()
	})
	assert.Panics(t, func() {
		leaf(1).RotateLeft()
	})
	assert.Panics(t, func() {
		leaf(1).RotateRight()
	})
}
