package pairtree

import "fmt"

// Validate checks the structural invariants of the tree reachable from Root:
// the root has no parent, every branch has two live children, and every
// child's parent link names the branch that holds it. It also checks that
// the live-node count matches the arena. Violations wrap
// ErrStructuralInvariant.
func (t *Tree) Validate() error {
	if t.root == Nil {
		return nil
	}
	rn, err := t.lookup(t.root)
	if err != nil {
		return fmt.Errorf("%w: root: %v", ErrStructuralInvariant, err)
	}
	if rn.parent != Nil {
		return fmt.Errorf("%w: root %d has parent %d", ErrStructuralInvariant, t.root, rn.parent)
	}

	seen := make(map[NodeID]struct{}, t.live)
	var verr error
	t.Walk(t.root, func(id NodeID, _ int) bool {
		if _, dup := seen[id]; dup {
			verr = fmt.Errorf("%w: node %d reachable twice", ErrStructuralInvariant, id)
			return false
		}
		seen[id] = struct{}{}

		nd := t.nodes[id]
		if nd.kind != Branch {
			return true
		}
		for _, child := range [2]NodeID{nd.left, nd.right} {
			cn, err := t.lookup(child)
			if err != nil {
				verr = fmt.Errorf("%w: branch %d child: %v", ErrStructuralInvariant, id, err)
				return false
			}
			if cn.parent != id {
				verr = fmt.Errorf("%w: node %d is a child of %d but links to %d",
					ErrStructuralInvariant, child, id, cn.parent)
				return false
			}
		}

		return true
	})
	if verr != nil {
		return verr
	}

	free := 0
	for i := range t.nodes {
		if t.nodes[i].kind == Free {
			free++
		}
	}
	if free != len(t.free) || len(t.nodes)-free != t.live {
		return fmt.Errorf("%w: arena accounting: %d slots, %d free, %d live",
			ErrStructuralInvariant, len(t.nodes), len(t.free), t.live)
	}

	return nil
}
