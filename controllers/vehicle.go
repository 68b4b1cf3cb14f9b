package controllers

import (
	"errors"
	"net/http"
	"strings"
	"workshoppro-backend/models"
	"workshoppro-backend/repositories"
	"workshoppro-backend/utils"

	"github.com/gin-gonic/gin"
)

type VehicleController struct {
	Repo *repositories.VehicleRepository
}

// VehicleInput is shared by create and update: owner, make, model and plate
// are always mandatory, so an active vehicle can never lose its owner.
type VehicleInput struct {
	CustomerID uint    `json:"customerId" binding:"required"`
	Make       string  `json:"make" binding:"required"`
	Model      string  `json:"model" binding:"required"`
	Engine     *string `json:"engine"`
	ModelYear  *string `json:"modelYear"`
	Plate      string  `json:"plate" binding:"required"`
	Odometer   *int    `json:"odometer"`
}

type ReactivateVehicleInput struct {
	CustomerID uint `json:"customerId" binding:"required"`
}

func (ctl *VehicleController) Create(c *gin.Context) {
	var input VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Proprietário, marca, modelo e placa são obrigatórios")
		return
	}

	vehicle, ok := buildVehicleFields(c, &input)
	if !ok {
		return
	}

	if err := ctl.Repo.Create(c.Request.Context(), vehicle); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// List returns active vehicles with owner data, ordered by make.
// Optional ?order=desc flips the ordering.
func (ctl *VehicleController) List(c *gin.Context) {
	descending := strings.EqualFold(c.Query("order"), "desc")

	vehicles, err := ctl.Repo.List(c.Request.Context(), descending)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// Get returns the vehicle whether active or not; the reactivation workflow
// depends on being able to load inactive vehicles here.
func (ctl *VehicleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := ctl.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Veículo não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Search handles GET /search?criterion=plate|owner&term=...
func (ctl *VehicleController) Search(c *gin.Context) {
	criterion, term, ok := parseSearch(c)
	if !ok {
		return
	}

	var (
		vehicles []models.Vehicle
		err      error
	)
	switch criterion {
	case "plate":
		vehicles, err = ctl.Repo.SearchByPlate(c.Request.Context(), utils.NormalizePlate(term))
	case "owner":
		vehicles, err = ctl.Repo.SearchByOwnerTaxID(c.Request.Context(), utils.NormalizeTaxID(term))
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Critério de busca inválido. Use: plate ou owner")
		return
	}

	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// FindOwner confirms the owner before a vehicle is registered.
// GET /owner?taxId=98765432100
func (ctl *VehicleController) FindOwner(c *gin.Context) {
	taxID := utils.NormalizeTaxID(c.Query("taxId"))
	if taxID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "CPF/CNPJ é obrigatório")
		return
	}
	if !utils.ValidTaxID(taxID) {
		utils.RespondWithError(c, http.StatusBadRequest, "CPF deve ter 11 dígitos ou CNPJ 14 dígitos")
		return
	}

	owner, err := ctl.Repo.FindOwnerByTaxID(c.Request.Context(), taxID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente não encontrado ou inativo")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, owner)
}

func (ctl *VehicleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input VehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Proprietário, marca, modelo e placa são obrigatórios")
		return
	}

	vehicle, ok := buildVehicleFields(c, &input)
	if !ok {
		return
	}

	updated, err := ctl.Repo.Update(c.Request.Context(), id, vehicle)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Veículo não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Deactivate soft-deletes the vehicle and severs the owner reference in the
// same transition.
func (ctl *VehicleController) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := ctl.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Veículo não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	if !vehicle.Active {
		utils.RespondWithError(c, http.StatusBadRequest, "Veículo já está inativo")
		return
	}

	if err := ctl.Repo.Deactivate(c.Request.Context(), id); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Veículo inativado com sucesso")
}

// Reactivate brings an inactive vehicle back under a new owner; both fields
// move in the same transition.
func (ctl *VehicleController) Reactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input ReactivateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Proprietário é obrigatório para reativar")
		return
	}

	vehicle, err := ctl.Repo.Reactivate(c.Request.Context(), id, input.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Veículo não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func buildVehicleFields(c *gin.Context, input *VehicleInput) (*models.Vehicle, bool) {
	plate := utils.NormalizePlate(input.Plate)
	if !utils.ValidPlate(plate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Placa inválida. Use formato ABC1234 ou ABC1D23")
		return nil, false
	}

	if input.Odometer != nil && *input.Odometer < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Km deve ser um número positivo")
		return nil, false
	}

	customerID := input.CustomerID
	return &models.Vehicle{
		CustomerID: &customerID,
		Make:       strings.ToUpper(strings.TrimSpace(input.Make)),
		Model:      strings.ToUpper(strings.TrimSpace(input.Model)),
		Engine:     utils.CleanUpperString(input.Engine),
		ModelYear:  utils.CleanString(input.ModelYear),
		Plate:      plate,
		Odometer:   input.Odometer,
	}, true
}
