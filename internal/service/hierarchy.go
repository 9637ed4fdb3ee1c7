package service

import (
	"context"

	"storefront/internal/domain"

	"go.uber.org/zap"
)

// ResolveAncestors walks parent links upward from leaf and returns the
// ordered chain root→leaf, inclusive. The walk never fails: a read error or
// a parent id that resolves to no active category truncates the chain at the
// last node that could be resolved, so the caller always gets a usable list.
func (s *catalogService) ResolveAncestors(ctx context.Context, leaf *domain.Category) []*domain.Category {
	chain := []*domain.Category{leaf}
	if leaf.Root() {
		return chain
	}

	index, err := s.activeCategoryIndex(ctx)
	if err != nil {
		s.logger.Warn("ancestor walk degraded to leaf only",
			zap.String("category_id", leaf.ID),
			zap.Error(err),
		)
		return chain
	}

	// The seen set makes the walk terminate on any input, cycles included,
	// so no depth cap is needed and arbitrarily deep valid chains resolve
	// in full.
	seen := map[string]bool{leaf.ID: true}
	current := leaf
	for !current.Root() {
		parent, ok := index[*current.ParentID]
		if !ok {
			// broken link: treat the last resolvable node as the root
			s.logger.Warn("ancestor walk hit broken parent link",
				zap.String("category_id", current.ID),
				zap.String("parent_id", *current.ParentID),
			)
			break
		}
		if seen[parent.ID] {
			s.logger.Warn("ancestor walk detected a parent cycle",
				zap.String("category_id", parent.ID),
			)
			break
		}
		seen[parent.ID] = true
		chain = append([]*domain.Category{parent}, chain...)
		current = parent
	}

	return chain
}

// ResolveDescendantIDs returns categoryID plus the id of every active
// category beneath it, for "include subcategory products" queries. The
// result always contains the input id; a read failure degrades to exactly
// that.
func (s *catalogService) ResolveDescendantIDs(ctx context.Context, categoryID string) []string {
	ids := []string{categoryID}

	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		s.logger.Warn("descendant expansion degraded to the input category",
			zap.String("category_id", categoryID),
			zap.Error(err),
		)
		return ids
	}

	children := map[string][]*domain.Category{}
	for _, c := range categories {
		if c.Root() {
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	seen := map[string]bool{categoryID: true}
	queue := []string{categoryID}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, child := range children[next] {
			if seen[child.ID] {
				continue
			}
			seen[child.ID] = true
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return ids
}

// activeCategoryIndex reads the active category set once and indexes it by
// id, so each hop of the ancestor walk is a map lookup instead of a scan.
func (s *catalogService) activeCategoryIndex(ctx context.Context) (map[string]*domain.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index, nil
}
