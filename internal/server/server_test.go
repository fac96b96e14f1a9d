package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Miegu/Space-Architects/pkg/catalog"
	"github.com/Miegu/Space-Architects/pkg/geo"
	"github.com/Miegu/Space-Architects/pkg/scenario"
)

func testServer() *Server {
	cfg := Config{
		Port:        "8080",
		FrontendURL: "http://localhost:3000",
		RateLimit:   RateLimitConfig{Enabled: false},
	}
	return New(cfg, catalog.Default(), nil)
}

func doRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestListRooms(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/rooms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		RoomTypes []catalog.RoomType `json:"room_types"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.RoomTypes) != catalog.Default().Len() {
		t.Errorf("expected %d room types, got %d", catalog.Default().Len(), len(resp.RoomTypes))
	}
}

func TestListRoomsByCategory(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/rooms?category=essential", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		RoomTypes []catalog.RoomType `json:"room_types"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	for _, rt := range resp.RoomTypes {
		if rt.Category != catalog.CategoryEssential {
			t.Errorf("type %s is not essential", rt.ID)
		}
	}

	rec = doRequest(t, http.MethodGet, "/api/rooms?category=luxurious", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown category should return 400, got %d", rec.Code)
	}
}

func TestGetRoom(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/rooms/"+catalog.Galley, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var rt catalog.RoomType
	if err := json.Unmarshal(rec.Body.Bytes(), &rt); err != nil {
		t.Fatal(err)
	}
	if rt.ID != catalog.Galley {
		t.Errorf("expected %s, got %s", catalog.Galley, rt.ID)
	}

	rec = doRequest(t, http.MethodGet, "/api/rooms/cryochamber", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown room type should return 404, got %d", rec.Code)
	}
}

func TestValidatePlacement(t *testing.T) {
	req := validateRequest{
		Module:   scenario.Size{Width: 20, Length: 15},
		TypeID:   catalog.Galley,
		Position: geo.Pt(5, 5),
	}
	rec := doRequest(t, http.MethodPost, "/api/validate", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Error("unobstructed placement should be valid")
	}
}

func TestValidatePlacementErrors(t *testing.T) {
	req := validateRequest{
		Module:   scenario.Size{Width: 20, Length: 15},
		TypeID:   "cryochamber",
		Position: geo.Pt(0, 0),
	}
	rec := doRequest(t, http.MethodPost, "/api/validate", req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown room type should return 400, got %d", rec.Code)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/validate", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	testServer().Handler().ServeHTTP(rec, r)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body should return 400, got %d", rec.Code)
	}
}

func TestScoreScenario(t *testing.T) {
	sc := scenario.Scenario{
		Mission: scenario.Mission{CrewSize: 2, DurationDays: 30, Destination: scenario.DestinationMoon},
		Module:  scenario.Size{Width: 20, Length: 15},
		Rooms: []scenario.Room{
			{InstanceID: "a", TypeID: catalog.CrewQuarters, Position: geo.Pt(0, 0)},
			{InstanceID: "b", TypeID: catalog.Galley, Position: geo.Pt(5, 5)},
		},
	}
	rec := doRequest(t, http.MethodPost, "/api/score", sc)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp scoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Compliance == nil {
		t.Fatal("expected a compliance report")
	}
	if resp.Compliance.OverallScore <= 0 || resp.Compliance.OverallScore >= 100 {
		t.Errorf("partial layout should score between 0 and 100, got %d", resp.Compliance.OverallScore)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("partial layout should yield recommendations")
	}
}

func TestScoreRejectsInvalidScenario(t *testing.T) {
	sc := scenario.Scenario{
		Mission: scenario.Mission{CrewSize: 0, DurationDays: 30, Destination: scenario.DestinationMoon},
		Module:  scenario.Size{Width: 20, Length: 15},
	}
	rec := doRequest(t, http.MethodPost, "/api/score", sc)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid scenario should return 422, got %d", rec.Code)
	}
	var resp scoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Schema == nil || resp.Schema.Valid {
		t.Error("expected an invalid schema report")
	}
	if resp.Compliance != nil {
		t.Error("no compliance report should be produced for an invalid scenario")
	}
}
