package pagination

const MaxLimit = 100

// Page holds one window of rows plus the total number of matching rows.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

func MakePage[T any](data []T, window Window) *Page[T] {
	if data == nil {
		data = []T{}
	}

	return &Page[T]{
		Data:  data,
		Total: window.GetNumItems(),
		Skip:  window.GetSkip(),
		Limit: window.GetLimit(),
	}
}

// HydratePage maps the rows of a page into another type and keeps the
// window metadata.
func HydratePage[S any, D any](source *Page[S], mapper func(S) D) *Page[D] {
	mapped := make([]D, len(source.Data))

	for i, item := range source.Data {
		mapped[i] = mapper(item)
	}

	return &Page[D]{
		Data:  mapped,
		Total: source.Total,
		Skip:  source.Skip,
		Limit: source.Limit,
	}
}
