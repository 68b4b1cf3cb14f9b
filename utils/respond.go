package utils

import (
	"github.com/gin-gonic/gin"
)

// The frontend consumes {erro} and {mensagem} objects; keep the wire keys
// stable even though the codebase is English.

func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"erro": message})
}

func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"mensagem": message})
}
