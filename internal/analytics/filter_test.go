package analytics

import (
	"testing"
	"time"

	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleTrades() []model.Trade {
	return []model.Trade{
		{ID: "t1", Date: day("2024-01-15"), Symbol: "EUR/USD", Side: model.SideLong, Pnl: 150, Tags: []string{"breakout"}, JournalID: "j1"},
		{ID: "t2", Date: day("2024-01-15"), Symbol: "GBP/USD", Side: model.SideShort, Pnl: -75, Tags: []string{"news", "fomc"}},
		{ID: "t3", Date: day("2024-01-16"), Symbol: "EUR/USD", Side: model.SideShort, Pnl: 320, Tags: []string{}},
		{ID: "t4", Date: day("2024-01-17"), Symbol: "US500", Side: model.SideLong, Pnl: 40, Tags: []string{"breakout"}, JournalID: "j2"},
	}
}

func ids(trades []model.Trade) []string {
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.ID
	}
	return out
}

func assertIDs(t *testing.T, got []model.Trade, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("Expected trades %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("Expected trades %v, got %v", want, gotIDs)
		}
	}
}

func TestApply_NoFilter(t *testing.T) {
	got := Apply(sampleTrades(), Filter{})
	assertIDs(t, got, "t1", "t2", "t3", "t4")
}

func TestApply_DateRange(t *testing.T) {
	t.Run("inclusive boundaries", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Start: "2024-01-15", End: "2024-01-16"})
		assertIDs(t, got, "t1", "t2", "t3")
	})

	t.Run("open start", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{End: "2024-01-15"})
		assertIDs(t, got, "t1", "t2")
	})

	t.Run("open end", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Start: "2024-01-17"})
		assertIDs(t, got, "t4")
	})

	t.Run("time of day does not exclude boundary trades", func(t *testing.T) {
		trades := []model.Trade{
			{ID: "late", Date: time.Date(2024, 1, 16, 23, 45, 0, 0, time.UTC)},
		}
		got := Apply(trades, Filter{Start: "2024-01-16", End: "2024-01-16"})
		assertIDs(t, got, "late")
	})
}

func TestApply_Dimensions(t *testing.T) {
	t.Run("symbols", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Symbols: []string{"EUR/USD", "US500"}})
		assertIDs(t, got, "t1", "t3", "t4")
	})

	t.Run("sides", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Sides: []model.Side{model.SideShort}})
		assertIDs(t, got, "t2", "t3")
	})

	t.Run("tags match on any overlap", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Tags: []string{"fomc", "breakout"}})
		assertIDs(t, got, "t1", "t2", "t4")
	})

	t.Run("journaled only", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{JournaledOnly: true})
		assertIDs(t, got, "t1", "t4")
	})
}

func TestApply_EmptySliceMatchesNothing(t *testing.T) {
	// A present-but-empty dimension is not the same as an absent one: it is a
	// filter that no trade can satisfy.
	t.Run("empty symbols", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Symbols: []string{}})
		if len(got) != 0 {
			t.Errorf("Expected no matches for empty symbols filter, got %d", len(got))
		}
	})

	t.Run("empty sides", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Sides: []model.Side{}})
		if len(got) != 0 {
			t.Errorf("Expected no matches for empty sides filter, got %d", len(got))
		}
	})

	t.Run("empty tags", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Tags: []string{}})
		if len(got) != 0 {
			t.Errorf("Expected no matches for empty tags filter, got %d", len(got))
		}
	})

	t.Run("nil symbols matches everything", func(t *testing.T) {
		got := Apply(sampleTrades(), Filter{Symbols: nil})
		if len(got) != 4 {
			t.Errorf("Expected all 4 trades for absent symbols filter, got %d", len(got))
		}
	})
}

func TestApply_Conjunction(t *testing.T) {
	// Combining dimensions must equal the intersection of applying each
	// dimension independently.
	trades := sampleTrades()

	combined := Apply(trades, Filter{
		Symbols:       []string{"EUR/USD", "US500"},
		JournaledOnly: true,
	})

	bySymbol := map[string]bool{}
	for _, tr := range Apply(trades, Filter{Symbols: []string{"EUR/USD", "US500"}}) {
		bySymbol[tr.ID] = true
	}
	intersection := []string{}
	for _, tr := range Apply(trades, Filter{JournaledOnly: true}) {
		if bySymbol[tr.ID] {
			intersection = append(intersection, tr.ID)
		}
	}

	assertIDs(t, combined, intersection...)
}

func TestApply_PreservesOrderAndInput(t *testing.T) {
	trades := sampleTrades()
	got := Apply(trades, Filter{Symbols: []string{"EUR/USD", "GBP/USD", "US500"}})
	assertIDs(t, got, "t1", "t2", "t3", "t4")

	// Input must not be mutated.
	if trades[0].ID != "t1" || trades[3].ID != "t4" {
		t.Error("Expected input slice to be unchanged")
	}
}
