package delivery

import (
	"net/http"

	authdelivery "posts-backend/internal/auth/delivery"
	"posts-backend/internal/common/httputil"
	"posts-backend/internal/post/domain"
	postdto "posts-backend/internal/post/dto"
	"posts-backend/internal/post/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUsecase usecase.PostUsecase
}

func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// RegisterRoutes mounts the post routes on rg. Every route requires auth.
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc) {
	posts := rg.Group("/post")
	posts.Use(auth)
	{
		posts.POST("", h.CreatePost)
		posts.GET("/:id", h.GetPost)
		posts.PATCH("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)
		for _, event := range domain.RateEvents {
			posts.POST("/:id/"+string(event), h.RatePost(event))
		}
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), authdelivery.CurrentUserID(c), *req.Text)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := httputil.ParseID(c, "id")
	if !ok {
		return
	}

	post, err := h.postUsecase.GetPost(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := httputil.ParseID(c, "id")
	if !ok {
		return
	}

	var req postdto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, err.Error())
		return
	}

	post, err := h.postUsecase.UpdatePost(c.Request.Context(), id, domain.PostUpdate{Text: req.Text})
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := httputil.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.postUsecase.DeletePost(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// RatePost returns the handler applying event on behalf of the caller.
func (h *PostHandler) RatePost(event domain.RateEvent) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httputil.ParseID(c, "id")
		if !ok {
			return
		}

		post, err := h.postUsecase.RatePost(c.Request.Context(), authdelivery.CurrentUserID(c), id, event)
		if err != nil {
			httputil.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}
