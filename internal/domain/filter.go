package domain

// TreeFilter narrows a tree listing. Zero values mean "no filter".
type TreeFilter struct {
	State  string     // case-insensitive exact match on location.state
	Status TreeStatus // exact match
	Search string     // case-insensitive substring of name, species or state
	Limit  int        // <= 0 means no limit
}

// IsEmpty reports whether no filter is set
func (f TreeFilter) IsEmpty() bool {
	return f.State == "" && f.Status == "" && f.Search == "" && f.Limit <= 0
}
