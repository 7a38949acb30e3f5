package delivery

import (
	"net/http"

	authdomain "posts-backend/internal/auth/domain"
	"posts-backend/internal/common/httputil"
	userdto "posts-backend/internal/user/dto"
	"posts-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	users := rg.Group("/user")
	users.Use(auth)
	{
		users.GET("/:id/posts", h.GetUserPosts)
		users.PATCH("/:id", h.UpdateUserInfo)
	}
}

func (h *UserHandler) GetUserPosts(c *gin.Context) {
	id, ok := httputil.ParseID(c, "id")
	if !ok {
		return
	}

	posts, err := h.userUsecase.GetUserPosts(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	id, ok := httputil.ParseID(c, "id")
	if !ok {
		return
	}

	var req userdto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	update := authdomain.UserUpdate{Username: req.Username, Email: req.Email}
	if err := h.userUsecase.UpdateUserInfo(c.Request.Context(), id, update); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user updated"})
}
