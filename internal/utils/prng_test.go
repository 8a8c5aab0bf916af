package utils

import (
	"go-arena-shooter/internal/defs"
	"math"
	"testing"
)

func TestChooseWeighted_Empty(t *testing.T) {
	rng := NewPRNGService(1)
	if _, ok := rng.ChooseWeighted(nil); ok {
		t.Error("ChooseWeighted(nil) reported success")
	}
}

func TestChooseWeighted_SingleEntry(t *testing.T) {
	rng := NewPRNGService(1)
	entries := []defs.SpawnEntry{{Kind: defs.KindTank, Weight: 3}}
	for i := 0; i < 100; i++ {
		if kind, ok := rng.ChooseWeighted(entries); !ok || kind != defs.KindTank {
			t.Fatalf("ChooseWeighted = %v, %v; want TANK", kind, ok)
		}
	}
}

func TestChooseWeighted_Distribution(t *testing.T) {
	rng := NewPRNGService(42)
	entries := []defs.SpawnEntry{
		{Kind: defs.KindBasic, Weight: 50},
		{Kind: defs.KindFast, Weight: 25},
		{Kind: defs.KindTank, Weight: 15},
		{Kind: defs.KindShooter, Weight: 10},
	}
	const draws = 20000
	counts := make(map[defs.EnemyKind]int)
	for i := 0; i < draws; i++ {
		kind, _ := rng.ChooseWeighted(entries)
		counts[kind]++
	}
	for _, e := range entries {
		got := float64(counts[e.Kind]) / draws
		want := float64(e.Weight) / 100
		if math.Abs(got-want) > 0.03 {
			t.Errorf("%s frequency = %.3f, want about %.2f", e.Kind, got, want)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 50; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Seed() = %d, want 7", a.Seed())
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("seed 0 must be replaced by a time-based seed")
	}
}

func TestIntInclusive(t *testing.T) {
	rng := NewPRNGService(3)
	if got := rng.IntInclusive(0); got != 0 {
		t.Errorf("IntInclusive(0) = %d", got)
	}
	if got := rng.IntInclusive(-5); got != 0 {
		t.Errorf("IntInclusive(-5) = %d", got)
	}
	sawMax := false
	for i := 0; i < 1000; i++ {
		v := rng.IntInclusive(3)
		if v < 0 || v > 3 {
			t.Fatalf("IntInclusive(3) = %d out of range", v)
		}
		sawMax = sawMax || v == 3
	}
	if !sawMax {
		t.Error("IntInclusive(3) never returned the upper bound")
	}
}
