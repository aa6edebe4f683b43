package engine

import (
	"testing"

	"github.com/vovakirdan/grid-agent/internal/core"
)

func TestSpawnPellets(t *testing.T) {
	g := Generate()
	f := SpawnPellets(g, PlayerSpawn)

	if f.Total() != g.PathCount()-1 {
		t.Errorf("Expected %d pellets, got %d", g.PathCount()-1, f.Total())
	}
	if f.Remaining() != f.Total() {
		t.Errorf("Fresh field should have all pellets remaining, got %d/%d", f.Remaining(), f.Total())
	}
	if f.CollectAt(PlayerSpawn) {
		t.Error("No pellet should occupy the player spawn")
	}
	for _, p := range f.Live() {
		if !g.IsPath(p.Pos.X, p.Pos.Y) {
			t.Errorf("Pellet on non-path cell %v", p.Pos)
		}
	}
}

func TestPelletCollectAt(t *testing.T) {
	f := SpawnPellets(Generate(), PlayerSpawn)
	total := f.Total()

	if !f.CollectAt(P(1, 1)) {
		t.Fatal("Expected pellet at (1,1)")
	}
	if f.CollectAt(P(1, 1)) {
		t.Error("A pellet should only be collected once")
	}
	if f.CollectAt(P(0, 0)) {
		t.Error("Walls carry no pellets")
	}
	if f.Remaining() != total-1 {
		t.Errorf("Expected %d remaining, got %d", total-1, f.Remaining())
	}
	if len(f.Live()) != total-1 {
		t.Errorf("Live should omit collected pellets, got %d", len(f.Live()))
	}
	if f.Total() != total {
		t.Error("Total must not change when pellets are collected")
	}
}

func TestAnomalyCount(t *testing.T) {
	tests := []struct {
		level, base, want int
	}{
		{1, 6, 6},
		{2, 6, 7},
		{3, 6, 7},
		{4, 6, 8},
		{10, 6, 11},
	}
	for _, tt := range tests {
		got := SpawnAnomalies(tt.level, tt.base)
		if len(got) != tt.want {
			t.Errorf("SpawnAnomalies(%d, %d) yielded %d, want %d", tt.level, tt.base, len(got), tt.want)
		}
	}
}

func TestSpawnAnomaliesCycles(t *testing.T) {
	roster := SpawnAnomalies(1, 9)

	for i, a := range roster {
		if a.ID != i {
			t.Errorf("Anomaly %d has ID %d", i, a.ID)
		}
		if a.Dir != DirNone || a.MoveCounter != 0 {
			t.Errorf("Anomaly %d should start still with zero counter", i)
		}
		if a.Pos != anomalySpawns[i%8] {
			t.Errorf("Anomaly %d at %v, want %v", i, a.Pos, anomalySpawns[i%8])
		}
		if a.Color != Palette[i%6] {
			t.Errorf("Anomaly %d color %v, want %v", i, a.Color, Palette[i%6])
		}
	}

	// The ninth anomaly wraps back to the first spawn cell, the seventh to the first color.
	if roster[8].Pos != P(1, 1) {
		t.Errorf("Expected spawn cycle to wrap, got %v", roster[8].Pos)
	}
	if roster[6].Color != core.ColorBrightMagenta {
		t.Errorf("Expected palette cycle to wrap, got %v", roster[6].Color)
	}
}
