package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/fleet/tree"
)

func TestPreOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int, struct{}]
		want   []int
	}{
		{
			name: "empty",
			create: func() *tree.Node[int, struct{}] {
				return nil
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			want:   []int{4, 2, 1, 3, 6, 5, 7},
		},
		{
			name:   "lopsided",
			create: newLopsided,
			want:   []int{3, 1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewPreOrder(tt.create(), 0)

			assert.Equal(t, tt.want, collect(i))
			assert.False(t, i.Next())
		})
	}
}
