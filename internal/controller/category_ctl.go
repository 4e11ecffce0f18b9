package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/service"
)

type CategoryController struct {
	categorySvc *service.CategoryService
}

func NewCategoryController(categorySvc *service.CategoryService) *CategoryController {
	return &CategoryController{categorySvc: categorySvc}
}

// Create 创建分类
// @Summary 创建分类
// @Tags Category (分类)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.CategoryCreateReq true "分类参数"
// @Success 201 {object} dto.CategoryResp "创建结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/v1/stores/{storeId}/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var req dto.CategoryCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	resp, err := c.categorySvc.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Update 更新分类
// @Summary 更新分类
// @Tags Category (分类)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param categoryId path int true "分类ID"
// @Param request body dto.CategoryUpdateReq true "分类参数"
// @Success 200 {object} map[string]string "{"message": "更新成功"}"
// @Failure 404 {object} map[string]string "分类不存在"
// @Router /api/v1/stores/{storeId}/categories/{categoryId} [patch]
func (c *CategoryController) Update(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "categoryId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的分类ID"})
		return
	}

	var req dto.CategoryUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	if err := c.categorySvc.Update(ctx.Request.Context(), middleware.GetUserID(ctx), id, req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// Delete 删除分类
// @Summary 删除分类
// @Tags Category (分类)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param categoryId path int true "分类ID"
// @Success 200 {object} map[string]string "{"message": "删除成功"}"
// @Failure 404 {object} map[string]string "分类不存在"
// @Router /api/v1/stores/{storeId}/categories/{categoryId} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "categoryId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的分类ID"})
		return
	}

	if err := c.categorySvc.Delete(ctx.Request.Context(), middleware.GetUserID(ctx), storeID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetList 获取分类列表
// @Summary 获取店铺分类列表
// @Tags Category (分类)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Success 200 {object} dto.CategoryListResp "分类列表"
// @Router /api/v1/stores/{storeId}/categories [get]
func (c *CategoryController) GetList(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	resp, err := c.categorySvc.GetList(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
