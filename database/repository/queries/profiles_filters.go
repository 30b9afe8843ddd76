package queries

// ProfileFilters holds the list filters as received. The user type is matched
// exactly, so callers validate it before querying.
type ProfileFilters struct {
	UserType string
}

func (f ProfileFilters) GetUserType() string {
	return f.UserType
}
