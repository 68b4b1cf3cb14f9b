package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"workshoppro-backend/repositories"
	"workshoppro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthController struct {
	Repo *repositories.UserRepository
	Log  *logrus.Logger
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // Can be login or email
	Password   string `json:"password" binding:"required"`
}

type ResetPasswordInput struct {
	Email string `json:"email" binding:"required"`
}

// Login checks the credentials against the stored hash and returns the
// public user record plus a token. A wrong login and a wrong password get
// the same answer.
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Login e senha são obrigatórios")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	user, err := ctl.Repo.FindByLoginOrEmail(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Usuário ou senha inválidos")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Usuário ou senha inválidos")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Login)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

// ResetPassword validates the account and opens a reset protocol. Delivery
// happens out of band; the caller gets the protocol number.
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email é obrigatório")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !utils.ValidEmail(email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Formato de email inválido")
		return
	}

	user, err := ctl.Repo.FindByLoginOrEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	protocol := uuid.New().String()
	ctl.Log.WithFields(logrus.Fields{
		"user":     user.Login,
		"protocol": protocol,
	}).Info("password reset requested")

	c.JSON(http.StatusOK, gin.H{
		"mensagem":  "Solicitação de reset realizada com sucesso",
		"protocolo": protocol,
	})
}

// Me returns the account behind the presented token.
func (ctl *AuthController) Me(c *gin.Context) {
	claim, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Token inválido")
		return
	}

	idStr, _ := claim.(string)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Token inválido")
		return
	}

	user, err := ctl.Repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Usuário não encontrado")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
