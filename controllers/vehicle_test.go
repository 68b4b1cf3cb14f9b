package controllers

import (
	"net/http"
	"testing"
	"workshoppro-backend/repositories"

	"github.com/gin-gonic/gin"
)

func vehicleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := &VehicleController{Repo: repositories.NewVehicleRepository(nil)}
	r := gin.New()
	r.POST("/vehicles", ctl.Create)
	r.GET("/vehicles/search", ctl.Search)
	r.GET("/vehicles/owner", ctl.FindOwner)
	r.PUT("/vehicles/:id", ctl.Update)
	r.DELETE("/vehicles/:id", ctl.Deactivate)
	r.PATCH("/vehicles/:id/reactivate", ctl.Reactivate)
	return r
}

func TestCreateVehicleMissingFields(t *testing.T) {
	r := vehicleRouter()
	rec := doJSON(t, r, http.MethodPost, "/vehicles", `{"make":"FIAT"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateVehicleInvalidPlate(t *testing.T) {
	r := vehicleRouter()
	for _, plate := range []string{"ABCD123", "AB-1234", "ABC12D3"} {
		rec := doJSON(t, r, http.MethodPost, "/vehicles",
			`{"customerId":1,"make":"FIAT","model":"UNO","plate":"`+plate+`"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("plate %q: expected 400, got %d", plate, rec.Code)
		}
	}
}

func TestCreateVehicleNegativeOdometer(t *testing.T) {
	r := vehicleRouter()
	rec := doJSON(t, r, http.MethodPost, "/vehicles",
		`{"customerId":1,"make":"FIAT","model":"UNO","plate":"ABC1234","odometer":-10}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestVehicleNonNumericID(t *testing.T) {
	r := vehicleRouter()
	rec := doJSON(t, r, http.MethodDelete, "/vehicles/abc", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReactivateVehicleRequiresOwner(t *testing.T) {
	r := vehicleRouter()
	rec := doJSON(t, r, http.MethodPatch, "/vehicles/1/reactivate", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without customerId, got %d", rec.Code)
	}
}

func TestVehicleSearchUnknownCriterion(t *testing.T) {
	r := vehicleRouter()
	rec := doJSON(t, r, http.MethodGet, "/vehicles/search?criterion=color&term=red", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFindOwnerValidation(t *testing.T) {
	r := vehicleRouter()

	rec := doJSON(t, r, http.MethodGet, "/vehicles/owner", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without taxId, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/vehicles/owner?taxId=123", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for off-length taxId, got %d", rec.Code)
	}
}
