package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/pmhours/pmhours-go/config"
	"github.com/pmhours/pmhours-go/models"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/response"
	"github.com/pmhours/pmhours-go/types"
)

type Auth struct {
	repos *repositories.Repos
}

func NewAuth(repos *repositories.Repos) *Auth {
	return &Auth{repos: repos}
}

// currentRole re-reads the role from the DB so a demotion takes effect
// before the token expires.
func (a *Auth) currentRole(c *gin.Context) (string, bool) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
		return "", false
	}

	user, err := a.repos.User.GetUserByID(claims.UserID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unknown user"})
		return "", false
	}
	return user.Role, true
}

func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := a.currentRole(c)
		if !ok {
			return
		}
		if role != string(models.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// AllocationEditor guards the bulk-update and validation surface: only
// admins and project leads may change allocations.
func (a *Auth) AllocationEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := a.currentRole(c)
		if !ok {
			return
		}
		if !slices.Contains(config.AllocationEditRoles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "allocation editing requires admin or project lead role"})
			return
		}
		c.Next()
	}
}
