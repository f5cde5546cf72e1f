package physics

import (
	"math/rand"
	"slices"
	"testing"
)

func queryAll(g *SpatialGrid, p Vec2) []int {
	var got []int
	g.QueryAround(p, func(i int) bool {
		got = append(got, i)
		return false
	})
	slices.Sort(got)
	return got
}

func TestSpatialGridNeighborhood(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(Vec2{X: 5, Y: 5}, 0)   // cell (0,0)
	g.Insert(Vec2{X: 15, Y: 15}, 1) // cell (1,1)
	g.Insert(Vec2{X: 55, Y: 55}, 2) // far away
	g.Insert(Vec2{X: 95, Y: 95}, 3) // opposite corner, no wrapping

	if got := queryAll(g, Vec2{X: 1, Y: 1}); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("query at corner = %v, want [0 1]", got)
	}
	if got := queryAll(g, Vec2{X: 50, Y: 50}); !slices.Equal(got, []int{2}) {
		t.Errorf("query in the middle = %v, want [2]", got)
	}
}

func TestSpatialGridOutsideFieldClamps(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(Vec2{X: -30, Y: 120}, 7)
	if got := queryAll(g, Vec2{X: 2, Y: 98}); !slices.Equal(got, []int{7}) {
		t.Fatalf("query near bottom-left = %v, want [7]", got)
	}
}

func TestSpatialGridStopsEarly(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	for i := range 5 {
		g.Insert(Vec2{X: 10, Y: 10}, i)
	}
	calls := 0
	g.QueryAround(Vec2{X: 10, Y: 10}, func(int) bool {
		calls++
		return calls == 2
	})
	if calls != 2 {
		t.Fatalf("fn called %d times after asking to stop", calls)
	}
}

func TestSpatialGridReset(t *testing.T) {
	g := NewSpatialGrid(100, 50, 0)
	if g.cols != 1 || g.rows != 1 {
		t.Fatalf("non-positive cell size gave %dx%d cells", g.cols, g.rows)
	}
	g.Insert(Vec2{X: 10, Y: 10}, 1)
	g.Reset(0)
	if got := queryAll(g, Vec2{X: 10, Y: 10}); len(got) != 0 {
		t.Fatalf("Reset kept %v", got)
	}
	g.Reset(25)
	if g.cols != 4 || g.rows != 2 || g.CellSize() != 25 {
		t.Fatalf("Reset(25) = %dx%d cells of %v", g.cols, g.rows, g.CellSize())
	}
}

// Every pair closer than the cell size is found by the neighborhood query.
func TestSpatialGridFindsAllClosePairs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const reach = 30.0
	g := NewSpatialGrid(400, 300, reach)

	points := make([]Vec2, 200)
	for i := range points {
		points[i] = Vec2{X: rng.Float64() * 400, Y: rng.Float64() * 300}
		g.Insert(points[i], i)
	}
	for i, p := range points {
		found := make(map[int]bool)
		g.QueryAround(p, func(j int) bool {
			found[j] = true
			return false
		})
		for j, q := range points {
			if p.DistanceTo(q) < reach && !found[j] {
				t.Fatalf("pair %d/%d at distance %v missed", i, j, p.DistanceTo(q))
			}
		}
	}
}
