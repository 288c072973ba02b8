package mockapi

import (
	"net/http"
	"strconv"

	ctxutil "Tripnote/pkg/context"
	"Tripnote/pkg/response"
	"Tripnote/pkg/utils"
	"Tripnote/types"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 50

type Handler struct {
	Store *Store
	Salt  string
}

func NewHandler(store *Store, salt string) *Handler {
	return &Handler{Store: store, Salt: salt}
}

func (h *Handler) RegisterRouter(r gin.IRouter) {
	r.POST("/user", ctxutil.Wrap(h.CreateUser))

	api := r.Group("/api")
	api.GET("/user", ctxutil.Wrap(h.GetUser))
	api.PUT("/user", ctxutil.Wrap(h.UpdateUser))
	api.POST("/follow", ctxutil.Wrap(h.Follow))
	api.POST("/unfollow", ctxutil.Wrap(h.Unfollow))
	api.GET("/follow", ctxutil.Wrap(h.IsFollowing))
	api.GET("/notes", ctxutil.Wrap(h.ListNotes))
	api.GET("/notedetail", ctxutil.Wrap(h.NoteDetail))
	api.POST("/comments", ctxutil.Wrap(h.AddComment))
	api.GET("/search", ctxutil.Wrap(h.Search))
}

func (h *Handler) GetUser(c *gin.Context) error {
	id := c.Query("id")
	if id == "" {
		return response.NewError(http.StatusBadRequest, "缺少 id")
	}
	user, err := h.Store.GetUser(id)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, user)
	return nil
}

func (h *Handler) CreateUser(c *gin.Context) error {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	user, err := h.Store.CreateUser(&req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, user)
	return nil
}

func (h *Handler) UpdateUser(c *gin.Context) error {
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	user, err := h.Store.UpdateUser(&req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, user)
	return nil
}

func (h *Handler) Follow(c *gin.Context) error {
	var req types.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	if err := h.Store.Follow(req.UserID, req.TargetUserID); err != nil {
		return err
	}
	c.JSON(http.StatusOK, types.FollowResponse{Success: true})
	return nil
}

func (h *Handler) Unfollow(c *gin.Context) error {
	var req types.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	if err := h.Store.Unfollow(req.UserID, req.TargetUserID); err != nil {
		return err
	}
	c.JSON(http.StatusOK, types.FollowResponse{Success: true})
	return nil
}

func (h *Handler) IsFollowing(c *gin.Context) error {
	var req types.FollowStatusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	c.JSON(http.StatusOK, types.FollowStatusResponse{
		IsFollowing: h.Store.IsFollowing(req.UserID, req.FollowID),
	})
	return nil
}

// ListNotes 传 user_id 时返回该用户全部笔记（数组），否则按游标分页
func (h *Handler) ListNotes(c *gin.Context) error {
	var req types.ListNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	if req.UserID != "" {
		c.JSON(http.StatusOK, h.Store.NotesByUser(req.UserID))
		return nil
	}

	offset := 0
	if req.Cursor != "" {
		v, err := utils.DecodeHashID(h.Salt, req.Cursor)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "无效的游标")
		}
		offset = v
	}
	limit := req.Limit
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	limit = min(limit, maxPageSize)

	notes, hasMore := h.Store.ListNotes(req.Status, offset, limit)
	page := types.NotesPage{Data: notes, HasMore: hasMore}
	if hasMore {
		page.NextCursor = utils.GenHashID(h.Salt, offset+len(notes))
	}
	c.JSON(http.StatusOK, page)
	return nil
}

func (h *Handler) NoteDetail(c *gin.Context) error {
	id := c.Query("id")
	if id == "" {
		return response.NewError(http.StatusBadRequest, "缺少 id")
	}
	note, err := h.Store.GetNote(id)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, note)
	return nil
}

func (h *Handler) AddComment(c *gin.Context) error {
	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	comment, err := h.Store.AddComment(&req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, comment)
	return nil
}

func (h *Handler) Search(c *gin.Context) error {
	results := h.Store.Search(c.Query("keyword"))
	c.Header("X-Total-Count", strconv.Itoa(len(results)))
	c.JSON(http.StatusOK, results)
	return nil
}
