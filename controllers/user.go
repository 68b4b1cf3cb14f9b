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

type UserController struct {
	Repo *repositories.UserRepository
}

type CreateUserInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

type UpdateUserInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// List returns every active account, password hashes excluded.
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Repo.List(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) Create(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Login, senha, nome completo e email são obrigatórios")
		return
	}

	if len(input.Password) < 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "Senha deve ter pelo menos 6 caracteres")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !utils.ValidEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Formato de email inválido")
		return
	}

	user := models.User{
		Login:    strings.TrimSpace(input.Login),
		Password: input.Password,
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
	}

	if err := ctl.Repo.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Login ou email já existem")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Update rewrites name, email and password. The password is rehashed even
// when it did not change.
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Nome completo, email e senha são obrigatórios")
		return
	}

	if len(input.Password) < 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "Senha deve ter pelo menos 6 caracteres")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !utils.ValidEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Formato de email inválido")
		return
	}

	err := ctl.Repo.Update(c.Request.Context(), id, strings.TrimSpace(input.FullName), email, input.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Login ou email já existem")
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

// Delete soft-deletes the account.
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	utils.RespondWithMessage(c, http.StatusOK, "Usuário excluído com sucesso")
}
