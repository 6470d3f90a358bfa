package public

import (
	"github.com/xihu-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// cartUpdateRequest 购物车更新请求
// id 保留调用方原始形式（JSON 数字或字符串），由购物车内部归一化
type cartUpdateRequest struct {
	ID    interface{} `json:"id" binding:"required"`
	Delta int         `json:"delta" binding:"required"`
}

// GetCart 获取购物车渲染快照
func (h *Handler) GetCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "缺少购物车会话标识", nil)
		return
	}
	snap, err := h.CartService.Get(c.Request.Context(), owner)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, snap)
}

// UpdateCartItem 更新购物车商品数量（增量或目标模式）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "缺少购物车会话标识", nil)
		return
	}
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	snap, err := h.CartService.UpdateItem(c.Request.Context(), owner, req.ID, req.Delta)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, snap)
}

// RemoveCartItem 删除购物车商品，幂等
func (h *Handler) RemoveCartItem(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "缺少购物车会话标识", nil)
		return
	}
	snap, err := h.CartService.RemoveItem(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, snap)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	owner, ok := cartOwner(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "缺少购物车会话标识", nil)
		return
	}
	snap, err := h.CartService.Clear(c.Request.Context(), owner)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, snap)
}
