package public

import (
	"strconv"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.ProductService.List(repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "商品列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, result.Items, response.NewPagination(result.Page, pageSize, result.Total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "商品 ID 无效", nil)
		return
	}
	product, err := h.ProductService.GetDetail(uint(id))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, product)
}
