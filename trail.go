package starburst

// TrailConfig enables a motion trail: a bounded ring buffer of short-lived
// snapshots of the owning entity.
type TrailConfig struct {
	// Lifetime is the snapshot lifetime in seconds.
	Lifetime float64
	// MaxLength is the maximum number of live snapshots. The oldest snapshot
	// is evicted when a new one would exceed it. Values below 1 mean 1.
	MaxLength int
	// Smooth adds an extra snapshot halfway between consecutive positions,
	// which closes the gaps left by fast movers. Circles only.
	Smooth bool
}

// trail is the ring buffer behind TrailConfig. Snapshots leave the buffer
// only through eviction, never by expiring.
type trail[E Entity] struct {
	cfg   TrailConfig
	items []E
}

func newTrail[E Entity](cfg TrailConfig) *trail[E] {
	cfg.MaxLength = max(cfg.MaxLength, 1)
	return &trail[E]{cfg: cfg, items: make([]E, 0, cfg.MaxLength)}
}

// lifetimeTicks returns the snapshot lifetime in ticks.
func (t *trail[E]) lifetimeTicks() float64 {
	return t.cfg.Lifetime * TicksPerSecond
}

func (t *trail[E]) push(e E) {
	if len(t.items) >= t.cfg.MaxLength {
		var zero E
		copy(t.items, t.items[1:])
		t.items[len(t.items)-1] = zero
		t.items = t.items[:len(t.items)-1]
	}
	t.items = append(t.items, e)
}

// newest returns the most recent snapshot.
func (t *trail[E]) newest() (E, bool) {
	if len(t.items) == 0 {
		var zero E
		return zero, false
	}
	return t.items[len(t.items)-1], true
}

func (t *trail[E]) update() {
	for _, e := range t.items {
		e.Update(nil)
	}
}

func (t *trail[E]) draw(s Surface) {
	for _, e := range t.items {
		e.Draw(s)
	}
}

func (t *trail[E]) len() int {
	if t == nil {
		return 0
	}
	return len(t.items)
}
