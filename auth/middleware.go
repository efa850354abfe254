package auth

import (
	"net/http"
	"strings"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Middleware verifies the bearer token and loads the principal from storage,
// so role changes take effect immediately rather than at token refresh.
func Middleware(tokens *TokenManager, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, apperr.Authentication("authorization header required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, apperr.Authentication("expected Bearer token"))
			return
		}

		id, model, err := tokens.Verify(parts[1])
		if err != nil {
			abort(c, err)
			return
		}

		principal, err := users.FindPrincipal(c.Request.Context(), id, model)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				err = apperr.Authentication("principal no longer exists")
			}
			abort(c, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRoles lets the request through only when the principal holds one of
// the given roles. It must run after Middleware.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abort(c, apperr.Authentication("not authenticated"))
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		abort(c, apperr.Authorization("role %s is not permitted", principal.Role))
	}
}

func GetPrincipal(c *gin.Context) (*entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*entity.Principal)
	return principal, ok
}

func abort(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	body := gin.H{"error": err.Error()}
	if status == http.StatusInternalServerError {
		body = gin.H{"error": "internal server error"}
	}
	c.AbortWithStatusJSON(status, body)
}
