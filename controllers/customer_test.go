package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"workshoppro-backend/repositories"

	"github.com/gin-gonic/gin"
)

// The rejection paths below return before any repository access, so the
// controllers run against a repository with no live database behind it.

func customerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := &CustomerController{Repo: repositories.NewCustomerRepository(nil)}
	r := gin.New()
	r.POST("/customers", ctl.Create)
	r.GET("/customers/search", ctl.Search)
	r.GET("/customers/:id", ctl.Get)
	r.PUT("/customers/:id", ctl.Update)
	r.DELETE("/customers/:id", ctl.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateCustomerMissingFields(t *testing.T) {
	r := customerRouter()
	rec := doJSON(t, r, http.MethodPost, "/customers", `{"kind":"PF"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCustomerInvalidKind(t *testing.T) {
	r := customerRouter()
	rec := doJSON(t, r, http.MethodPost, "/customers",
		`{"kind":"XX","taxId":"98765432100","fullName":"Fulano"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCustomerInvalidTaxIDLength(t *testing.T) {
	r := customerRouter()
	rec := doJSON(t, r, http.MethodPost, "/customers",
		`{"kind":"PF","taxId":"123456","fullName":"Fulano"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCustomerInvalidGender(t *testing.T) {
	r := customerRouter()
	rec := doJSON(t, r, http.MethodPost, "/customers",
		`{"kind":"PF","taxId":"98765432100","fullName":"Fulano","gender":"X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	r := customerRouter()
	rec := doJSON(t, r, http.MethodPost, "/customers",
		`{"kind":"PF","taxId":"98765432100","fullName":"Fulano","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerNonNumericID(t *testing.T) {
	r := customerRouter()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/customers/abc"},
		{http.MethodPut, "/customers/abc"},
		{http.MethodDelete, "/customers/abc"},
	} {
		rec := doJSON(t, r, tc.method, tc.path, `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s %s: expected 400, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestCustomerSearchValidation(t *testing.T) {
	r := customerRouter()

	// Missing pair.
	rec := doJSON(t, r, http.MethodGet, "/customers/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without criterion/term, got %d", rec.Code)
	}

	// Term too short after trimming.
	rec = doJSON(t, r, http.MethodGet, "/customers/search?criterion=name&term=+a+", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short term, got %d", rec.Code)
	}

	// A single multi-byte character is still one character.
	rec = doJSON(t, r, http.MethodGet, "/customers/search?criterion=name&term=%C3%A9", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for one-rune term, got %d", rec.Code)
	}

	// Unknown criterion.
	rec = doJSON(t, r, http.MethodGet, "/customers/search?criterion=city&term=sao", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown criterion, got %d", rec.Code)
	}
}
