package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/irma-m/cartilla/internal/adapters/notify/envperm"
	mem "github.com/irma-m/cartilla/internal/adapters/storage/memory"
	"github.com/irma-m/cartilla/internal/domain/reminders"
	"github.com/irma-m/cartilla/internal/platform/logger"
	"github.com/irma-m/cartilla/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h := router.NewRouter(router.Options{
		Log:      logger.Nop(),
		PetName:  "Chewie",
		Store:    mem.NewLedgerStore(),
		Notifier: reminders.NewService(mem.NewReminderRegistry(), envperm.New(true), logger.Nop()),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

type recordJSON struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Duration int     `json:"duration"`
	NextDate string  `json:"next_date"`
	Location string  `json:"location"`
	Type     string  `json:"type"`
	Weight   float64 `json:"weight"`
}

type submitJSON struct {
	Message string     `json:"message"`
	Record  recordJSON `json:"record"`
}

func createRecord(t *testing.T, ts *httptest.Server, category string, body map[string]any) recordJSON {
	t.Helper()

	resp, raw := doReq(t, http.MethodPost, ts.URL+"/categories/"+category+"/records", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var out submitJSON
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out.Record
}

func listRecords(t *testing.T, ts *httptest.Server, category string) []recordJSON {
	t.Helper()

	resp, raw := doReq(t, http.MethodGet, ts.URL+"/categories/"+category+"/records", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var out []recordJSON
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doReq(t, http.MethodGet, ts.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK || string(raw) != "ok" {
		t.Fatalf("unexpected health response: %d %s", resp.StatusCode, raw)
	}
}

func TestListCategories(t *testing.T) {
	ts := newTestServer(t)

	resp, raw := doReq(t, http.MethodGet, ts.URL+"/categories", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		PetName    string `json:"pet_name"`
		Categories []struct {
			Category    string `json:"category"`
			HasReminder bool   `json:"has_reminder"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.PetName != "Chewie" {
		t.Errorf("expected pet name Chewie, got %q", out.PetName)
	}
	if len(out.Categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(out.Categories))
	}
	for _, c := range out.Categories {
		if c.Category == "baths" && c.HasReminder {
			t.Error("baths must not advertise reminders")
		}
		if c.Category == "vaccines" && !c.HasReminder {
			t.Error("vaccines must advertise reminders")
		}
	}
}

func TestMedicationLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rec := createRecord(t, ts, "medications", map[string]any{
		"name":     "Amoxicillin",
		"date":     "2024-01-10",
		"duration": 7,
	})
	if rec.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if rec.NextDate != "2024-01-17" {
		t.Errorf("expected next_date 2024-01-17, got %q", rec.NextDate)
	}

	// Listar
	ledger := listRecords(t, ts, "medications")
	if len(ledger) != 1 || ledger[0].ID != rec.ID {
		t.Fatalf("unexpected ledger: %v", ledger)
	}

	// Cargar para edición
	url := fmt.Sprintf("%s/categories/medications/records/%d", ts.URL, rec.ID)
	resp, raw := doReq(t, http.MethodGet, url, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var loaded recordJSON
	if err := json.Unmarshal(raw, &loaded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if loaded.Name != "Amoxicillin" || loaded.Date != "2024-01-10" {
		t.Fatalf("unexpected loaded record: %+v", loaded)
	}

	// Editar: conserva el id, recalcula la próxima fecha
	resp, raw = doReq(t, http.MethodPut, url, map[string]any{
		"name":     "Amoxicillin 500",
		"date":     "2024-01-12",
		"duration": 45,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var updated submitJSON
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Record.ID != rec.ID {
		t.Errorf("edit must preserve the id: got %d, want %d", updated.Record.ID, rec.ID)
	}
	if updated.Record.NextDate != "2024-02-26" {
		t.Errorf("expected next_date 2024-02-26, got %q", updated.Record.NextDate)
	}

	ledger = listRecords(t, ts, "medications")
	if len(ledger) != 1 || ledger[0].Name != "Amoxicillin 500" {
		t.Fatalf("edit must replace in place: %v", ledger)
	}

	// Eliminar
	resp, _ = doReq(t, http.MethodDelete, url, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if ledger = listRecords(t, ts, "medications"); len(ledger) != 0 {
		t.Fatalf("expected empty ledger after delete, got %v", ledger)
	}
}

func TestCreateVaccine_MissingWeight(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doReq(t, http.MethodPost, ts.URL+"/categories/vaccines/records", map[string]any{
		"name":     "Rabia",
		"date":     "2024-01-31",
		"duration": 1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing weight, got %d", resp.StatusCode)
	}
}

func TestCreateBath_LocationRules(t *testing.T) {
	ts := newTestServer(t)

	// Ubicación fuera del catálogo
	resp, _ := doReq(t, http.MethodPost, ts.URL+"/categories/baths/records", map[string]any{
		"date":     "2024-03-05",
		"location": "Spa",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown location, got %d", resp.StatusCode)
	}

	rec := createRecord(t, ts, "baths", map[string]any{
		"date":     "2024-03-05",
		"location": "Casa",
	})
	if rec.NextDate != "" {
		t.Errorf("baths have no recurrence, got next_date %q", rec.NextDate)
	}
	if rec.Location != "Casa" {
		t.Errorf("expected location Casa, got %q", rec.Location)
	}
}

func TestClearAll_ConfirmGate(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 5; i++ {
		createRecord(t, ts, "baths", map[string]any{
			"date":     "2024-03-05",
			"location": "Veterinaria",
		})
	}

	// Sin confirmación: 409 y la cartilla queda intacta
	resp, _ := doReq(t, http.MethodDelete, ts.URL+"/categories/baths/records", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 without confirm, got %d", resp.StatusCode)
	}
	if got := listRecords(t, ts, "baths"); len(got) != 5 {
		t.Fatalf("ledger must be intact, got %d records", len(got))
	}

	resp, _ = doReq(t, http.MethodDelete, ts.URL+"/categories/baths/records?confirm=true", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with confirm, got %d", resp.StatusCode)
	}
	if got := listRecords(t, ts, "baths"); len(got) != 0 {
		t.Fatalf("expected empty ledger, got %d records", len(got))
	}
}

func TestUnknownCategory(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doReq(t, http.MethodGet, ts.URL+"/categories/haircuts/records", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", resp.StatusCode)
	}

	resp, _ = doReq(t, http.MethodPost, ts.URL+"/categories/haircuts/records", map[string]any{
		"date": "2024-01-10",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", resp.StatusCode)
	}
}

func TestDeleteAbsentRecordIsNoOp(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doReq(t, http.MethodDelete, ts.URL+"/categories/medications/records/999", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("deleting an absent record must be a no-op 204, got %d", resp.StatusCode)
	}
}
