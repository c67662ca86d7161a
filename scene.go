package starburst

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// EventStore receives sky events. Adapters forward them to an ECS world or
// play sounds.
type EventStore interface {
	EmitEvent(event SkyEvent)
}

// SkyEvent describes something that happened in the sky.
type SkyEvent struct {
	Type EventType
	// X, Y is where it happened, when that applies.
	X, Y float64
	// Count is the number of entities involved. For EventVisibility it is 1
	// when the sky became visible and 0 when hidden.
	Count int
	Tick  uint64
}

const (
	defaultEntityCap = 4096

	// maxCatchUpTicks bounds how many ticks Advance runs for one call.
	// Backlog beyond it is dropped.
	maxCatchUpTicks = 4

	debugLogEvery = TicksPerSecond
)

// Sky owns the live circles and shards and everything that drives them:
// bounds, the spawn scheduler, click handlers and event stores. All methods
// must be called from the driver goroutine.
type Sky struct {
	bounds  Rect
	circles []*Circle
	shards  []*Polygon

	scheduler Scheduler
	visible   bool
	ticks     uint64
	accum     time.Duration

	stores []EventStore
	log    zerolog.Logger
	debug  bool
	stats  debugStats

	// Input state
	handlers     clickRegistry
	pointers     [maxPointers]pointerState
	poll         func()
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// Background is painted behind the entities on surfaces that implement
	// GradientFiller. Nil skips it.
	Background *LinearGradient
}

// NewSky creates an empty, visible sky.
func NewSky(bounds Rect) *Sky {
	return &Sky{
		bounds:        bounds,
		circles:       make([]*Circle, 0, defaultEntityCap),
		visible:       true,
		log:           zerolog.Nop(),
		ScreenshotDir: "screenshots",
	}
}

// Bounds returns the collision and spawn bounds.
func (s *Sky) Bounds() Rect {
	return s.bounds
}

// SetBounds replaces the bounds, typically after a resize.
func (s *Sky) SetBounds(r Rect) {
	if r == s.bounds {
		return
	}
	s.bounds = r
	s.log.Debug().Float64("w", r.Dimensions.X).Float64("h", r.Dimensions.Y).Msg("bounds changed")
}

// Scheduler returns the sky's spawn scheduler.
func (s *Sky) Scheduler() *Scheduler {
	return &s.scheduler
}

// AddCircles appends circles to the live set.
func (s *Sky) AddCircles(cs ...*Circle) {
	s.circles = append(s.circles, cs...)
}

// AddShards appends polygons to the live set.
func (s *Sky) AddShards(ps ...*Polygon) {
	s.shards = append(s.shards, ps...)
}

// SpawnFirework adds a burst of the given style at pos.
func (s *Sky) SpawnFirework(style FireworkStyle, pos Point) {
	circles, shards := SpawnFirework(style, pos, s.bounds)
	s.AddCircles(circles...)
	s.AddShards(shards...)
	s.emit(SkyEvent{Type: EventFirework, X: pos.X, Y: pos.Y, Count: len(circles) + len(shards)})
}

// SpawnShootingStars adds shooting stars somewhere in region.
func (s *Sky) SpawnShootingStars(region Rect) {
	stars := GenShootingStar(region)
	s.AddCircles(stars...)
	if len(stars) > 0 {
		s.emit(SkyEvent{Type: EventShootingStar, X: stars[0].X, Y: stars[0].Y, Count: len(stars)})
	}
}

// SpawnTwinkle adds one twinkling star somewhere in region.
func (s *Sky) SpawnTwinkle(region Rect) {
	star := TwinklingStar(region)
	s.AddCircles(star)
	s.emit(SkyEvent{Type: EventTwinkle, X: star.X, Y: star.Y, Count: 1})
}

// SeedStars adds count static background stars in region.
func (s *Sky) SeedStars(region Rect, count int) error {
	stars, err := GenStars(region, count)
	if err != nil {
		return err
	}
	s.AddCircles(stars...)
	s.emit(SkyEvent{Type: EventStars, Count: count})
	return nil
}

// Update runs one logical tick: the test runner, one pointer event, due
// scheduled spawns, every entity, then culling.
func (s *Sky) Update() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.ticks++

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() && s.poll != nil {
		s.poll()
	}

	s.scheduler.Advance(TickDuration)

	b := s.bounds
	for _, c := range s.circles {
		c.Update(&b)
	}
	for _, p := range s.shards {
		p.Update(&b)
	}
	culled := s.Cull()

	if s.debug {
		s.stats.updateTime += time.Since(t0)
		s.stats.culled += culled
		s.debugLog()
	}
}

// Advance runs as many ticks as elapsed covers at TicksPerSecond, carrying
// the remainder. At most maxCatchUpTicks run per call; older backlog is
// dropped. It returns the number of ticks run.
func (s *Sky) Advance(elapsed time.Duration) int {
	s.accum += elapsed
	n := 0
	for s.accum >= TickDuration && n < maxCatchUpTicks {
		s.Update()
		s.accum -= TickDuration
		n++
	}
	if s.accum >= TickDuration {
		s.accum = 0
	}
	return n
}

// Draw paints the background (when set and supported) and then every live
// circle and shard. Drawing does not change simulation state.
func (s *Sky) Draw(surface Surface) {
	if s.Background != nil {
		if gf, ok := surface.(GradientFiller); ok {
			gf.FillGradient(Rect{Dimensions: s.bounds.Dimensions}, *s.Background)
		}
	}
	for _, c := range s.circles {
		c.Draw(surface)
	}
	for _, p := range s.shards {
		p.Draw(surface)
	}
}

// Cull removes inert entities in place, keeping the order of the rest, and
// returns how many were removed.
func (s *Sky) Cull() int {
	n := len(s.circles) + len(s.shards)
	s.circles = cull(s.circles)
	s.shards = cull(s.shards)
	removed := n - len(s.circles) - len(s.shards)
	if removed > 0 {
		s.emit(SkyEvent{Type: EventCull, Count: removed})
	}
	return removed
}

func cull[E Entity](items []E) []E {
	live := items[:0]
	for _, e := range items {
		if e.Alive() {
			live = append(live, e)
		}
	}
	var zero E
	for i := len(live); i < len(items); i++ {
		items[i] = zero
	}
	return live
}

// Circles returns the live circles. The returned slice MUST NOT be mutated.
func (s *Sky) Circles() []*Circle {
	return s.circles
}

// Shards returns the live polygons. The returned slice MUST NOT be mutated.
func (s *Sky) Shards() []*Polygon {
	return s.shards
}

// Len returns the number of live entities.
func (s *Sky) Len() int {
	return len(s.circles) + len(s.shards)
}

// Clear drops every entity. Scheduled tasks keep running.
func (s *Sky) Clear() {
	clear(s.circles)
	clear(s.shards)
	s.circles = s.circles[:0]
	s.shards = s.shards[:0]
}

// Ticks returns the number of ticks run.
func (s *Sky) Ticks() uint64 {
	return s.ticks
}

// SetVisible pauses the scheduler while hidden and restarts every interval
// when shown again. Entities keep animating either way.
func (s *Sky) SetVisible(visible bool) {
	if visible == s.visible {
		return
	}
	s.visible = visible
	count := 0
	if visible {
		s.scheduler.Resume()
		count = 1
	} else {
		s.scheduler.Pause()
	}
	s.log.Info().Bool("visible", visible).Msg("visibility changed")
	s.emit(SkyEvent{Type: EventVisibility, Count: count})
}

// Visible reports whether the sky is visible.
func (s *Sky) Visible() bool {
	return s.visible
}

// AddEventStore registers a store that receives every sky event.
func (s *Sky) AddEventStore(store EventStore) {
	s.stores = append(s.stores, store)
}

func (s *Sky) emit(ev SkyEvent) {
	ev.Tick = s.ticks
	for _, st := range s.stores {
		st.EmitEvent(ev)
	}
}

// SetLogger replaces the logger. The default discards everything.
func (s *Sky) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Logger returns the sky's logger.
func (s *Sky) Logger() *zerolog.Logger {
	return &s.log
}

// SetDebugMode enables or disables debug mode. When enabled, update timing
// and live entity counts are logged at debug level once per second.
func (s *Sky) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.stats = debugStats{}
}

// String summarizes the sky for logs.
func (s *Sky) String() string {
	return fmt.Sprintf("sky{circles: %d, shards: %d, tick: %d}", len(s.circles), len(s.shards), s.ticks)
}
