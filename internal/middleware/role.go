package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
)

// RequireRole barra a rota para quem não tem o papel exigido. A regra
// de quem pode invocar cada transição mora aqui, nunca no domínio.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ContextUserRole)

		if current != role {
			httperr.Forbidden(c, "insufficient_role", "Seu papel não permite esta ação.")
			c.Abort()
			return
		}

		c.Next()
	}
}
