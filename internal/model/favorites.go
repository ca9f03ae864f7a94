package model

// FavoritesList is an ordered list of recipe snapshots, unique by ID.
type FavoritesList []Recipe

// Contains reports whether a recipe with the given id is in the list.
func (l FavoritesList) Contains(id string) bool {
	for _, r := range l {
		if r.ID == id {
			return true
		}
	}
	return false
}

// With returns the list with r appended. If r.ID is already present the
// list is returned unchanged.
func (l FavoritesList) With(r Recipe) FavoritesList {
	if l.Contains(r.ID) {
		return l
	}
	out := make(FavoritesList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, r)
}

// Without returns the list with every entry matching id removed.
func (l FavoritesList) Without(id string) FavoritesList {
	out := make(FavoritesList, 0, len(l))
	for _, r := range l {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// Dedupe drops later entries whose ID was already seen. Lists read from
// storage written by other tools may violate the uniqueness invariant.
func (l FavoritesList) Dedupe() FavoritesList {
	seen := make(map[string]struct{}, len(l))
	out := make(FavoritesList, 0, len(l))
	for _, r := range l {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
