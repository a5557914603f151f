package layout

// Option configures a list view.
type Option func(ListOptions)

// ListOptions holds the values set by Options, by key name.
type ListOptions map[string]any

// OptKey names a list view option of type T and carries its default.
//
//	var OptStriped = layout.NewOptKey("striped", true)
//
//	lv := layout.NewListView("files", seq, newRow, layout.WithOpt(OptStriped, false))
//	striped := layout.GetOpt(lv.Options(), OptStriped)
type OptKey[T any] struct {
	name string
	def  T
}

func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

func (k OptKey[T]) Name() string { return k.name }

func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o ListOptions) { o[key.name] = value }
}

// GetOpt returns the value set for key, or its default when the value is
// missing or of another type.
func GetOpt[T any](o ListOptions, key OptKey[T]) T {
	if v, ok := o[key.name].(T); ok {
		return v
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o ListOptions, key OptKey[T]) bool {
	_, ok := o[key.name]
	return ok
}

func collectOptions(opts []Option) ListOptions {
	o := make(ListOptions, len(opts))
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var (
	OptWidth       = NewOptKey[float32]("width", 0)     // outer width, 0 fills the parent
	OptHeight      = NewOptKey[float32]("height", 200)  // viewport height
	OptRowHeight   = NewOptKey[float32]("rowHeight", 0) // 0 uses the default style
	OptEmptyLabel  = NewOptKey("emptyLabel", "No items")
	OptEmptyIcon   = NewOptKey("emptyIcon", "[ ]")
	OptMultiSelect = NewOptKey("multiSelect", true)
	OptReorderable = NewOptKey("reorderable", true)
)

func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithRowHeight fixes the height of every row.
func WithRowHeight(h float32) Option { return WithOpt(OptRowHeight, h) }

// WithEmptyState sets what an empty list shows.
func WithEmptyState(icon, label string) Option {
	return func(o ListOptions) {
		o[OptEmptyIcon.name] = icon
		o[OptEmptyLabel.name] = label
	}
}

// SingleSelect turns shift and ctrl clicks into plain clicks.
func SingleSelect() Option { return WithOpt(OptMultiSelect, false) }

// FixedOrder disables drag reordering.
func FixedOrder() Option { return WithOpt(OptReorderable, false) }
