package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
	"workshoppro-backend/models"
	"workshoppro-backend/repositories"
	"workshoppro-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Repo *repositories.CustomerRepository
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Kind          string     `json:"kind" binding:"required"`
	TaxID         string     `json:"taxId" binding:"required"`
	FullName      string     `json:"fullName" binding:"required"`
	BirthDate     *time.Time `json:"birthDate"`
	Gender        *string    `json:"gender"`
	Phone         *string    `json:"phone"`
	PhoneWhatsApp bool       `json:"phoneWhatsApp"`
	Email         *string    `json:"email"`
	PostalCode    *string    `json:"postalCode"`
	Street        *string    `json:"street"`
	Number        *string    `json:"number"`
	Complement    *string    `json:"complement"`
	District      *string    `json:"district"`
	City          *string    `json:"city"`
	State         *string    `json:"state"`
}

// UpdateCustomerInput is the same minus kind and tax id, which are immutable.
type UpdateCustomerInput struct {
	FullName      string     `json:"fullName" binding:"required"`
	BirthDate     *time.Time `json:"birthDate"`
	Gender        *string    `json:"gender"`
	Phone         *string    `json:"phone"`
	PhoneWhatsApp bool       `json:"phoneWhatsApp"`
	Email         *string    `json:"email"`
	PostalCode    *string    `json:"postalCode"`
	Street        *string    `json:"street"`
	Number        *string    `json:"number"`
	Complement    *string    `json:"complement"`
	District      *string    `json:"district"`
	City          *string    `json:"city"`
	State         *string    `json:"state"`
}

// Create registers a customer. A tax id matching an inactive record
// reactivates and overwrites that record instead of inserting a duplicate.
func (ctl *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Tipo, CPF/CNPJ e Nome Completo são obrigatórios")
		return
	}

	kind := strings.ToUpper(strings.TrimSpace(input.Kind))
	if !utils.ValidKind(kind) {
		utils.RespondWithError(c, http.StatusBadRequest, "Tipo deve ser PF ou PJ")
		return
	}

	taxID := utils.NormalizeTaxID(input.TaxID)
	if !utils.ValidTaxID(taxID) {
		utils.RespondWithError(c, http.StatusBadRequest, "CPF deve ter 11 dígitos ou CNPJ 14 dígitos")
		return
	}

	customer, ok := buildCustomerFields(c, input.FullName, input.BirthDate, input.Gender,
		input.Phone, input.PhoneWhatsApp, input.Email, input.PostalCode, input.Street,
		input.Number, input.Complement, input.District, input.City, input.State)
	if !ok {
		return
	}
	customer.Kind = kind
	customer.TaxID = taxID

	if err := ctl.Repo.Create(c.Request.Context(), customer); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "CPF/CNPJ já cadastrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// List returns all active customers ordered by name.
func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get returns a single active customer by id.
func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := ctl.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Search handles GET /search?criterion=name|taxid|phone&term=...
func (ctl *CustomerController) Search(c *gin.Context) {
	criterion, term, ok := parseSearch(c)
	if !ok {
		return
	}

	var (
		customers []models.Customer
		err       error
	)
	switch criterion {
	case "name":
		customers, err = ctl.Repo.SearchByName(c.Request.Context(), term)
	case "taxid":
		customers, err = ctl.Repo.SearchByTaxID(c.Request.Context(), utils.NormalizeTaxID(term))
	case "phone":
		customers, err = ctl.Repo.SearchByPhone(c.Request.Context(), utils.NormalizePhone(term))
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Critério de busca inválido. Use: name, taxid ou phone")
		return
	}

	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Update rewrites every mutable field of an active customer and returns the
// fresh record.
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Nome Completo é obrigatório")
		return
	}

	customer, ok := buildCustomerFields(c, input.FullName, input.BirthDate, input.Gender,
		input.Phone, input.PhoneWhatsApp, input.Email, input.PostalCode, input.Street,
		input.Number, input.Complement, input.District, input.City, input.State)
	if !ok {
		return
	}

	if err := ctl.Repo.Update(c.Request.Context(), id, customer); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	updated, err := ctl.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete soft-deletes a customer.
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Cliente excluído com sucesso")
}

// buildCustomerFields validates and normalizes the shared field set of create
// and update. Identifying fields are stored canonical: names upper-cased,
// phone and postal code stripped of formatting.
func buildCustomerFields(c *gin.Context, fullName string, birthDate *time.Time,
	gender, phone *string, phoneWhatsApp bool, email, postalCode, street, number,
	complement, district, city, state *string) (*models.Customer, bool) {

	gender = utils.CleanUpperString(gender)
	if gender != nil && !utils.ValidGender(*gender) {
		utils.RespondWithError(c, http.StatusBadRequest, "Gênero deve ser M, F ou O")
		return nil, false
	}

	email = utils.CleanString(email)
	if email != nil {
		if !utils.ValidEmail(*email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Formato de email inválido")
			return nil, false
		}
		upper := strings.ToUpper(*email)
		email = &upper
	}

	phone = utils.CleanString(phone)
	if phone != nil {
		normalized := utils.NormalizePhone(*phone)
		phone = &normalized
	}

	postalCode = utils.CleanString(postalCode)
	if postalCode != nil {
		digits := utils.DigitsOnly(*postalCode)
		postalCode = &digits
	}

	return &models.Customer{
		FullName:      strings.ToUpper(strings.TrimSpace(fullName)),
		BirthDate:     birthDate,
		Gender:        gender,
		Phone:         phone,
		PhoneWhatsApp: phoneWhatsApp,
		Email:         email,
		PostalCode:    postalCode,
		Street:        utils.CleanUpperString(street),
		Number:        utils.CleanString(number),
		Complement:    utils.CleanUpperString(complement),
		District:      utils.CleanUpperString(district),
		City:          utils.CleanUpperString(city),
		State:         utils.CleanUpperString(state),
	}, true
}

// parseID rejects non-numeric path ids before any core logic runs.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// parseSearch enforces the criterion/term pair and the 2-character minimum.
func parseSearch(c *gin.Context) (string, string, bool) {
	criterion := c.Query("criterion")
	term := strings.TrimSpace(c.Query("term"))

	if criterion == "" || term == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Parâmetros criterion e term são obrigatórios")
		return "", "", false
	}
	if utf8.RuneCountInString(term) < 2 {
		utils.RespondWithError(c, http.StatusBadRequest, "Digite ao menos 2 caracteres para buscar")
		return "", "", false
	}
	return criterion, term, true
}
