package controllers

import (
	"net/http"
	"testing"
	"workshoppro-backend/repositories"

	"github.com/gin-gonic/gin"
)

func userRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := &UserController{Repo: repositories.NewUserRepository(nil)}
	r := gin.New()
	r.POST("/users", ctl.Create)
	r.PUT("/users/:id", ctl.Update)
	r.DELETE("/users/:id", ctl.Delete)
	return r
}

func TestCreateUserMissingFields(t *testing.T) {
	r := userRouter()
	rec := doJSON(t, r, http.MethodPost, "/users", `{"login":"admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateUserShortPassword(t *testing.T) {
	r := userRouter()
	rec := doJSON(t, r, http.MethodPost, "/users",
		`{"login":"admin","password":"12345","fullName":"Admin","email":"admin@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", rec.Code)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	r := userRouter()
	rec := doJSON(t, r, http.MethodPost, "/users",
		`{"login":"admin","password":"123456","fullName":"Admin","email":"bad-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", rec.Code)
	}
}

func TestUpdateUserShortPassword(t *testing.T) {
	r := userRouter()
	rec := doJSON(t, r, http.MethodPut, "/users/1",
		`{"fullName":"Admin","email":"admin@example.com","password":"123"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", rec.Code)
	}
}

func TestUserNonNumericID(t *testing.T) {
	r := userRouter()
	rec := doJSON(t, r, http.MethodDelete, "/users/abc", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
