package pagination

// Window is an offset based slice of a result set.
type Window struct {
	Skip     int
	Limit    int
	NumItems int64
}

// NewWindow clamps skip to zero and limit to [1, MaxLimit]. A missing or zero
// limit falls back to MaxLimit.
func NewWindow(skip, limit int) Window {
	if skip < 0 {
		skip = 0
	}

	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	return Window{Skip: skip, Limit: limit}
}

func (w *Window) SetNumItems(number int64) {
	w.NumItems = number
}

func (w *Window) GetNumItems() int64 {
	return w.NumItems
}

func (w *Window) GetLimit() int {
	if w.Limit <= 0 || w.Limit > MaxLimit {
		return MaxLimit
	}

	return w.Limit
}

func (w *Window) GetSkip() int {
	if w.Skip < 0 {
		return 0
	}

	return w.Skip
}
