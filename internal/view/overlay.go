package view

// Overlay is the single-slot lightbox state of one widget. Items are
// identified by key, so navigation works on whatever list is current when
// Next or Prev is called.
type Overlay[T any] struct {
	key  func(T) string
	item T
	open bool
}

// NewOverlay returns a closed overlay that identifies items by key.
func NewOverlay[T any](key func(T) string) *Overlay[T] {
	return &Overlay[T]{key: key}
}

func (o *Overlay[T]) Open(item T) {
	o.item = item
	o.open = true
}

func (o *Overlay[T]) Close() {
	var zero T
	o.item = zero
	o.open = false
}

func (o *Overlay[T]) IsOpen() bool {
	return o.open
}

// Current returns the open item.
func (o *Overlay[T]) Current() (T, bool) {
	return o.item, o.open
}

// Key returns the open item's key, or "" when closed.
func (o *Overlay[T]) Key() string {
	if !o.open {
		return ""
	}
	return o.key(o.item)
}

// OpenKey opens the first item in list with the given key. Unknown keys
// leave the overlay closed and return false.
func (o *Overlay[T]) OpenKey(list []T, key string) bool {
	if key == "" {
		return false
	}
	for _, item := range list {
		if o.key(item) == key {
			o.Open(item)
			return true
		}
	}
	return false
}

// Next moves to the following item of list, wrapping at the end.
func (o *Overlay[T]) Next(list []T) {
	o.step(list, 1)
}

// Prev moves to the preceding item of list, wrapping at the start.
func (o *Overlay[T]) Prev(list []T) {
	o.step(list, -1)
}

// step locates the open item in list at call time. An item missing from
// list counts as index -1, so Next lands on the first entry and Prev on the
// second to last.
func (o *Overlay[T]) step(list []T, delta int) {
	n := len(list)
	if !o.open || n == 0 {
		return
	}
	o.Open(list[wrap(o.indexIn(list)+delta, n)])
}

func (o *Overlay[T]) indexIn(list []T) int {
	k := o.key(o.item)
	for i, item := range list {
		if o.key(item) == k {
			return i
		}
	}
	return -1
}

// Index returns the position of the open item in list, or -1.
func (o *Overlay[T]) Index(list []T) int {
	if !o.open {
		return -1
	}
	return o.indexIn(list)
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
