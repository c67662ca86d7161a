package starburst

import "testing"

// --- Sky benchmarks ---

func benchSky(bursts int) *Sky {
	s := NewSky(NewRect(Vec2{}, 1280, 720))
	for i := range bursts {
		s.SpawnFirework(FireworkStyle(i%3), NewPoint(640, 360))
	}
	return s
}

func BenchmarkSkyUpdate_10Bursts(b *testing.B) {
	s := benchSky(10)
	live := s.circles
	b.ReportAllocs()
	for b.Loop() {
		for _, c := range live {
			c.Update(&s.bounds)
		}
	}
}

func BenchmarkSkyDraw_10Bursts(b *testing.B) {
	s := benchSky(10)
	var rec Recorder
	b.ReportAllocs()
	for b.Loop() {
		rec.Reset()
		s.Draw(&rec)
	}
}

func BenchmarkImageSurface_10Bursts(b *testing.B) {
	s := benchSky(10)
	surface := NewImageSurface(nil)
	b.ReportAllocs()
	for b.Loop() {
		surface.SetTarget(nil)
		s.Draw(surface)
	}
}

func BenchmarkSeedStars_500(b *testing.B) {
	s := NewSky(NewRect(Vec2{}, 1280, 720))
	for b.Loop() {
		s.Clear()
		if err := s.SeedStars(s.Bounds(), 500); err != nil {
			b.Fatal(err)
		}
	}
}
