package pairtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DetectsBrokenParentLink(t *testing.T) {
	tr := MustParse("[[1,2],3]")
	require.NoError(t, tr.Validate())

	leaf := tr.LeftmostLeaf(tr.Root())
	tr.nodes[leaf].parent = tr.Root()
	assert.ErrorIs(t, tr.Validate(), ErrStructuralInvariant)
}

func TestValidate_DetectsParentedRoot(t *testing.T) {
	tr := MustParse("[1,2]")
	tr.nodes[tr.root].parent = 0
	assert.ErrorIs(t, tr.Validate(), ErrStructuralInvariant)
}

func TestValidate_DetectsSharedChild(t *testing.T) {
	tr := MustParse("[[1,2],3]")
	left, right := tr.nodes[tr.root].left, tr.nodes[tr.root].right
	tr.nodes[tr.root].right = left
	tr.nodes[right].parent = Nil
	assert.ErrorIs(t, tr.Validate(), ErrStructuralInvariant)
}

func TestValidate_DetectsFreeListDrift(t *testing.T) {
	tr := MustParse("[1,2]")
	tr.free = append(tr.free, 0)
	assert.ErrorIs(t, tr.Validate(), ErrStructuralInvariant)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "leaf", Leaf.String())
	assert.Equal(t, "branch", Branch.String())
	assert.Equal(t, "free", Free.String())
}
