package admin

import "storefront/pkg/domain"

// The tree helpers rebuild every level they walk and never write through to
// the input slices. Each reports whether the target node was found.

func containsCategory(nodes []domain.CategoryNode, id string) bool {
	for _, n := range nodes {
		if n.ID == id || containsCategory(n.Children, id) {
			return true
		}
	}
	return false
}

func attachChild(nodes []domain.CategoryNode, parentID string, child domain.CategoryNode) ([]domain.CategoryNode, bool) {
	if nodes == nil {
		return nil, false
	}
	out := make([]domain.CategoryNode, len(nodes))
	found := false
	for i, n := range nodes {
		cp := domain.CategoryNode{ID: n.ID, Name: n.Name}
		if !found && n.ID == parentID {
			cp.Children = append(domain.CloneCategories(n.Children), child)
			found = true
		} else {
			var sub bool
			cp.Children, sub = attachChild(n.Children, parentID, child)
			found = found || sub
		}
		out[i] = cp
	}
	return out, found
}

func renameNode(nodes []domain.CategoryNode, id, name string) ([]domain.CategoryNode, bool) {
	if nodes == nil {
		return nil, false
	}
	out := make([]domain.CategoryNode, len(nodes))
	found := false
	for i, n := range nodes {
		cp := domain.CategoryNode{ID: n.ID, Name: n.Name}
		if n.ID == id {
			cp.Name = name
			found = true
		}
		var sub bool
		cp.Children, sub = renameNode(n.Children, id, name)
		found = found || sub
		out[i] = cp
	}
	return out, found
}

func removeNode(nodes []domain.CategoryNode, id string) ([]domain.CategoryNode, bool) {
	out := make([]domain.CategoryNode, 0, len(nodes))
	found := false
	for _, n := range nodes {
		if n.ID == id {
			found = true
			continue
		}
		cp := domain.CategoryNode{ID: n.ID, Name: n.Name}
		if n.Children != nil {
			children, sub := removeNode(n.Children, id)
			if len(children) > 0 {
				cp.Children = children
			}
			found = found || sub
		}
		out = append(out, cp)
	}
	return out, found
}

// FindCategory returns the node with id anywhere in the tree.
func FindCategory(nodes []domain.CategoryNode, id string) (domain.CategoryNode, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n.Clone(), true
		}
		if hit, ok := FindCategory(n.Children, id); ok {
			return hit, true
		}
	}
	return domain.CategoryNode{}, false
}
