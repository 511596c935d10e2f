package scene

import "errors"

// SkipChildren may be returned by a WalkFunc visiting a group to skip its subtree.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node. toRoot maps coordinates of the node's
// parent space (the space its Bounds are expressed in) to root space.
type WalkFunc func(n Node, toRoot Transform) error

// Walk visits the tree rooted at root depth-first in paint order.
func Walk(root Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	return walk(root, Identity, fn)
}

func walk(n Node, toRoot Transform, fn WalkFunc) error {
	err := fn(n, toRoot)
	g, isGroup := n.(*Group)
	if errors.Is(err, SkipChildren) && isGroup {
		return nil
	}
	if err != nil {
		return err
	}
	if !isGroup {
		return nil
	}

	inner := g.Local().Then(toRoot)
	for _, child := range g.Children {
		if child == nil {
			continue
		}
		if err := walk(child, inner, fn); err != nil {
			return err
		}
	}
	return nil
}

// Leaves returns every drawable node with its absolute bounding box, in paint order.
func Leaves(root Node) []Placed {
	var out []Placed
	_ = Walk(root, func(n Node, toRoot Transform) error {
		if n.Kind() == KindGroup {
			return nil
		}
		out = append(out, Placed{Node: n, Box: toRoot.ApplyBox(n.Bounds()), Transform: toRoot})
		return nil
	})
	return out
}

// Placed is a leaf paired with its absolute box and the transform of its parent space.
type Placed struct {
	Node      Node
	Box       Box
	Transform Transform
}
