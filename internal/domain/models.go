package domain

// ItemList is an ordered sequence of repository names.
// Insertion order is meaningful and duplicates are allowed.
type ItemList []string

// Clone returns an independent copy of the list
func (l ItemList) Clone() ItemList {
	if l == nil {
		return ItemList{}
	}
	out := make(ItemList, len(l))
	copy(out, l)
	return out
}

// Equal reports whether both lists hold the same names in the same order
func (l ItemList) Equal(other ItemList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Repository is a single record returned by the repository-listing API
type Repository struct {
	FullName string `json:"full_name"`
}

// FetchState describes the remote source from the UI's point of view
type FetchState struct {
	Source  string // identifier of the newest request
	Loading bool   // a request for Source is in flight
	LastErr string // error message of the last failed request, if any
}
