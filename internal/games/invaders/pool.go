package invaders

import "fmt"

// pool is fixed-capacity slot storage for game entities. Slots are
// addressed by index and never compacted, so an entity's slot handle stays
// valid until it is released. Allocation scans for the first free slot in
// ascending order; when the pool is full the spawn is silently dropped and
// callers carry on.
type pool[T any] struct {
	slots []T
	used  []bool
	count int
}

func newPool[T any](capacity int) *pool[T] {
	return &pool[T]{
		slots: make([]T, capacity),
		used:  make([]bool, capacity),
	}
}

// alloc claims the first free slot and returns its index. Returns ok=false
// when every slot is occupied; the caller is expected to drop the spawn.
func (p *pool[T]) alloc() (int, bool) {
	for i := range p.used {
		if !p.used[i] {
			var zero T
			p.slots[i] = zero
			p.used[i] = true
			p.count++
			return i, true
		}
	}
	return 0, false
}

// release frees the slot at index i. Releasing an out-of-range or already
// free slot is a programming error: the pools are the sole source of truth
// for entity lifecycle, so corruption here is unrecoverable.
func (p *pool[T]) release(i int) {
	if i < 0 || i >= len(p.slots) {
		panic(fmt.Sprintf("pool: release index %d out of range [0,%d)", i, len(p.slots)))
	}
	if !p.used[i] {
		panic(fmt.Sprintf("pool: double release of slot %d", i))
	}
	p.used[i] = false
	p.count--
}

// at returns a pointer to the entity in slot i. The slot must be live.
func (p *pool[T]) at(i int) *T {
	if i < 0 || i >= len(p.slots) || !p.used[i] {
		panic(fmt.Sprintf("pool: access to dead slot %d", i))
	}
	return &p.slots[i]
}

// live reports whether slot i currently holds an entity.
func (p *pool[T]) live(i int) bool {
	return i >= 0 && i < len(p.slots) && p.used[i]
}

// forEach visits every live entity in ascending slot order. The visitor may
// release the current slot (or any other) mid-iteration.
func (p *pool[T]) forEach(visit func(i int, e *T)) {
	for i := range p.slots {
		if p.used[i] {
			visit(i, &p.slots[i])
		}
	}
}

// clear releases every slot at once.
func (p *pool[T]) clear() {
	for i := range p.used {
		p.used[i] = false
	}
	p.count = 0
}

// size returns the number of live entities.
func (p *pool[T]) size() int {
	return p.count
}

// capacity returns the fixed slot count.
func (p *pool[T]) capacity() int {
	return len(p.slots)
}
