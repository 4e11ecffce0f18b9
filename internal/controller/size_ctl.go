package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/service"
)

type SizeController struct {
	sizeSvc *service.SizeService
}

func NewSizeController(sizeSvc *service.SizeService) *SizeController {
	return &SizeController{sizeSvc: sizeSvc}
}

// Create 创建尺码
// @Summary 创建尺码
// @Tags Size (尺码)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.SizeCreateReq true "尺码参数"
// @Success 201 {object} dto.SizeResp "创建结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/v1/stores/{storeId}/sizes [post]
func (c *SizeController) Create(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var req dto.SizeCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	resp, err := c.sizeSvc.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Update 更新尺码
// @Summary 更新尺码
// @Tags Size (尺码)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param sizeId path int true "尺码ID"
// @Param request body dto.SizeUpdateReq true "尺码参数"
// @Success 200 {object} map[string]string "{"message": "更新成功"}"
// @Failure 404 {object} map[string]string "尺码不存在"
// @Router /api/v1/stores/{storeId}/sizes/{sizeId} [patch]
func (c *SizeController) Update(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "sizeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的尺码ID"})
		return
	}

	var req dto.SizeUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	if err := c.sizeSvc.Update(ctx.Request.Context(), middleware.GetUserID(ctx), id, req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// Delete 删除尺码
// @Summary 删除尺码
// @Tags Size (尺码)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param sizeId path int true "尺码ID"
// @Success 200 {object} map[string]string "{"message": "删除成功"}"
// @Failure 404 {object} map[string]string "尺码不存在"
// @Router /api/v1/stores/{storeId}/sizes/{sizeId} [delete]
func (c *SizeController) Delete(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "sizeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的尺码ID"})
		return
	}

	if err := c.sizeSvc.Delete(ctx.Request.Context(), middleware.GetUserID(ctx), storeID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetDetail 获取尺码详情
// @Summary 获取尺码详情
// @Tags Size (尺码)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param sizeId path int true "尺码ID"
// @Success 200 {object} dto.SizeResp "尺码详情"
// @Failure 404 {object} map[string]string "尺码不存在"
// @Router /api/v1/stores/{storeId}/sizes/{sizeId} [get]
func (c *SizeController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "sizeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的尺码ID"})
		return
	}

	resp, err := c.sizeSvc.GetDetail(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetList 获取尺码列表
// @Summary 获取店铺尺码列表
// @Tags Size (尺码)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Success 200 {object} dto.SizeListResp "尺码列表"
// @Router /api/v1/stores/{storeId}/sizes [get]
func (c *SizeController) GetList(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	resp, err := c.sizeSvc.GetList(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
