package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/transport/api/tokens"
)

type UsersHandler struct {
	userService  UserServicer
	jwtSecretKey []byte
	tokenTTL     time.Duration
}

func NewUsersHandler(userService UserServicer, jwtSecretKey []byte, tokenTTL time.Duration) *UsersHandler {
	return &UsersHandler{
		userService:  userService,
		jwtSecretKey: jwtSecretKey,
		tokenTTL:     tokenTTL,
	}
}

type UserRegisterParams struct {
	Username string `binding:"required,min=1,max=150,max_bytes=600" json:"username"`
}

// Register POST RouteGroup + UsersRoute. Регистрирует пользователя и выдает ему токен
// в заголовке Authorization.
func (h *UsersHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Register(ctx, params.Username)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this username already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceErr(c, err)
		return
	}

	token, err := tokens.GenerateUserJWT(user.ID, h.tokenTTL, h.jwtSecretKey)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Show GET RouteGroup + UserRoute.
func (h *UsersHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.FindByUsername(ctx, c.Param("username"))
	if err != nil {
		abortWithServiceErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
