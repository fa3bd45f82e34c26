package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/testutil"
)

func TestTradeHandler_ListTrades(t *testing.T) {
	setupHandler := func(t *testing.T) (*TradeHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTradeService(t, db)
		return NewTradeHandler(ts), db
	}

	t.Run("returns empty array when no trades exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/trade", nil)
		w := httptest.NewRecorder()

		handler.ListTrades(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d trades", len(response))
		}
	})

	t.Run("returns all trades successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr1 := testutil.NewTrade().WithDate("2024-01-15").Build(t, db)
		tr2 := testutil.NewTrade().WithDate("2024-01-16").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/trade", nil)
		w := httptest.NewRecorder()

		handler.ListTrades(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 trades, got %d", len(response))
		}

		// Verify trade IDs are present
		foundTrades := make(map[string]bool)
		for _, tr := range response {
			foundTrades[tr.ID] = true
		}

		if !foundTrades[tr1.ID] {
			t.Error("Expected to find tr1 in response")
		}
		if !foundTrades[tr2.ID] {
			t.Error("Expected to find tr2 in response")
		}
	})

	t.Run("filters by symbol", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.NewTrade().WithSymbol("EUR/USD").Build(t, db)
		keep := testutil.NewTrade().WithSymbol("GBP/USD").Build(t, db)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/trade",
			map[string]string{"symbols": "GBP/USD"},
		)
		w := httptest.NewRecorder()

		handler.ListTrades(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 1 {
			t.Fatalf("Expected 1 trade, got %d", len(response))
		}
		if response[0].ID != keep.ID {
			t.Errorf("Expected trade %s, got %s", keep.ID, response[0].ID)
		}
	})

	t.Run("returns 400 on malformed date filter", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/trade",
			map[string]string{"start_date": "not-a-date"},
		)
		w := httptest.NewRecorder()

		handler.ListTrades(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/trade", nil)
		w := httptest.NewRecorder()

		handler.ListTrades(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTradeHandler_GetTrade(t *testing.T) {
	setupHandler := func(t *testing.T) (*TradeHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTradeService(t, db)
		return NewTradeHandler(ts), db
	}

	t.Run("returns trade by ID successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().WithTags("breakout").Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
		)
		w := httptest.NewRecorder()

		handler.GetTrade(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID != tr.ID {
			t.Errorf("Expected trade ID %s, got %s", tr.ID, response.ID)
		}
		if len(response.Tags) != 1 || response.Tags[0] != "breakout" {
			t.Errorf("Expected tags [breakout], got %v", response.Tags)
		}
	})

	t.Run("returns 404 when trade not found", func(t *testing.T) {
		handler, _ := setupHandler(t)

		nonExistentID := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/trade/"+nonExistentID,
			map[string]string{"uuid": nonExistentID},
		)
		w := httptest.NewRecorder()

		handler.GetTrade(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().Build(t, db)
		db.Close()

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
		)
		w := httptest.NewRecorder()

		handler.GetTrade(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTradeHandler_CreateTrade(t *testing.T) {
	setupHandler := func(t *testing.T) (*TradeHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTradeService(t, db)
		return NewTradeHandler(ts), db
	}

	t.Run("creates trade successfully", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{
			"date": "2024-01-15",
			"symbol": "EUR/USD",
			"side": "LONG",
			"size": 1.5,
			"riskReward": 2.0,
			"pnl": 150.0,
			"tags": ["breakout"],
			"notes": "clean entry"
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/trade", body)
		w := httptest.NewRecorder()

		handler.CreateTrade(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected trade ID to be set")
		}
		if response.Symbol != "EUR/USD" {
			t.Errorf("Expected symbol EUR/USD, got %s", response.Symbol)
		}
		if response.Side != model.SideLong {
			t.Errorf("Expected side LONG, got %s", response.Side)
		}
		if response.Size != 1.5 {
			t.Errorf("Expected size 1.5, got %f", response.Size)
		}
		if response.Pnl != 150.0 {
			t.Errorf("Expected pnl 150.0, got %f", response.Pnl)
		}
	})

	t.Run("returns 400 on invalid JSON", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/trade", "invalid json")
		w := httptest.NewRecorder()

		handler.CreateTrade(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on missing required fields", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{
			"date": "2024-01-15",
			"side": "LONG"
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/trade", body)
		w := httptest.NewRecorder()

		handler.CreateTrade(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on invalid side", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{
			"date": "2024-01-15",
			"symbol": "EUR/USD",
			"side": "SIDEWAYS",
			"size": 1.0
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/trade", body)
		w := httptest.NewRecorder()

		handler.CreateTrade(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on invalid date format", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{
			"date": "15-01-2024",
			"symbol": "EUR/USD",
			"side": "LONG",
			"size": 1.0
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/trade", body)
		w := httptest.NewRecorder()

		handler.CreateTrade(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		body := `{
			"date": "2024-01-15",
			"symbol": "EUR/USD",
			"side": "LONG",
			"size": 1.0
		}`

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/trade", body)
		w := httptest.NewRecorder()

		handler.CreateTrade(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTradeHandler_UpdateTrade(t *testing.T) {
	setupHandler := func(t *testing.T) (*TradeHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTradeService(t, db)
		return NewTradeHandler(ts), db
	}

	t.Run("updates trade successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().WithPnl(150).Build(t, db)

		body := `{
			"pnl": -75.5,
			"notes": "gave it back"
		}`

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
			body,
		)
		w := httptest.NewRecorder()

		handler.UpdateTrade(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID != tr.ID {
			t.Errorf("Expected trade ID %s, got %s", tr.ID, response.ID)
		}
		if response.Pnl != -75.5 {
			t.Errorf("Expected pnl -75.5, got %f", response.Pnl)
		}
		if response.Notes != "gave it back" {
			t.Errorf("Expected notes to be updated, got %q", response.Notes)
		}
		// Untouched fields survive a partial update.
		if response.Symbol != tr.Symbol {
			t.Errorf("Expected symbol %s, got %s", tr.Symbol, response.Symbol)
		}
	})

	t.Run("clears tags with an empty array", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().WithTags("breakout", "news").Build(t, db)

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
			`{"tags": []}`,
		)
		w := httptest.NewRecorder()

		handler.UpdateTrade(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Trade
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response.Tags) != 0 {
			t.Errorf("Expected empty tags, got %v", response.Tags)
		}
	})

	t.Run("returns 404 when trade not found", func(t *testing.T) {
		handler, _ := setupHandler(t)

		nonExistentID := testutil.MakeID()

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/trade/"+nonExistentID,
			map[string]string{"uuid": nonExistentID},
			`{"pnl": 10}`,
		)
		w := httptest.NewRecorder()

		handler.UpdateTrade(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on invalid JSON", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().Build(t, db)

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
			"invalid json",
		)
		w := httptest.NewRecorder()

		handler.UpdateTrade(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 on invalid side", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().Build(t, db)

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
			`{"side": "SIDEWAYS"}`,
		)
		w := httptest.NewRecorder()

		handler.UpdateTrade(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().Build(t, db)
		db.Close()

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
			`{"pnl": 10}`,
		)
		w := httptest.NewRecorder()

		handler.UpdateTrade(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestTradeHandler_DeleteTrade(t *testing.T) {
	setupHandler := func(t *testing.T) (*TradeHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTradeService(t, db)
		return NewTradeHandler(ts), db
	}

	t.Run("deletes trade successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteTrade(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		// Verify trade is deleted
		req2 := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
		)
		w2 := httptest.NewRecorder()

		handler.GetTrade(w2, req2)

		if w2.Code != http.StatusNotFound {
			t.Errorf("Expected trade to be deleted, but got status %d", w2.Code)
		}
	})

	t.Run("returns 404 when trade not found", func(t *testing.T) {
		handler, _ := setupHandler(t)

		nonExistentID := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/trade/"+nonExistentID,
			map[string]string{"uuid": nonExistentID},
		)
		w := httptest.NewRecorder()

		handler.DeleteTrade(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)

		tr := testutil.NewTrade().Build(t, db)
		db.Close()

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/trade/"+tr.ID,
			map[string]string{"uuid": tr.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteTrade(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
