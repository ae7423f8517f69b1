package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
)

type sampleStruct struct {
	ItemID   string `validate:"required,uuid"`
	Name     string `validate:"required,notblank,max=10"`
	Category string `validate:"omitempty,oneof=pieces boards"`
	Date     string `validate:"omitempty,isodate"`
}

func validSample() sampleStruct {
	return sampleStruct{ItemID: "550e8400-e29b-41d4-a716-446655440000", Name: "rook"}
}

func TestValidate_valid(t *testing.T) {
	s := validSample()
	s.Category = "boards"
	s.Date = "2024-03-01"
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *sampleStruct)
		field  string
		want   string
	}{
		{"required", func(s *sampleStruct) { s.ItemID = "" }, "ItemID", "This field is required"},
		{"uuid", func(s *sampleStruct) { s.ItemID = "not-a-uuid" }, "ItemID", "Must be a valid UUID"},
		{"max", func(s *sampleStruct) { s.Name = "12345678901" }, "Name", "Maximum length is 10"},
		{"notblank", func(s *sampleStruct) { s.Name = "   " }, "Name", "Must not be blank"},
		{"oneof", func(s *sampleStruct) { s.Category = "tables" }, "Category", "Must be one of: pieces, boards"},
		{"isodate", func(s *sampleStruct) { s.Date = "03/01/2024" }, "Date", "Must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type purchaseReq struct {
	Quantity json.Number `json:"quantity" validate:"required"`
	Date     string      `json:"date"     validate:"required,isodate"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"quantity":-3,"date":"2024-02-01"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[purchaseReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Quantity.String() != "-3" {
		t.Errorf("unexpected Quantity: %q", req.Quantity)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[purchaseReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_nonNumericQuantity(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":"hello","date":"2024-02-01"}`))
	w := httptest.NewRecorder()

	if _, ok := pkgvalidator.ValidateRequest[purchaseReq](w, r); ok {
		t.Fatal("expected ok=false for non-numeric quantity")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2024-02-01"}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[purchaseReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing quantity")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}

	var body struct {
		Kind   string            `json:"kind"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Kind != "validation" {
		t.Errorf("expected kind validation, got %q", body.Kind)
	}
	if _, ok := body.Fields["quantity"]; !ok {
		t.Errorf("expected quantity field error, got %v", body.Fields)
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"quantity":1,"date":"2024-02-01"}`))
	r.Body = http.MaxBytesReader(w, r.Body, 8)

	if _, ok := pkgvalidator.ValidateRequest[purchaseReq](w, r); ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
