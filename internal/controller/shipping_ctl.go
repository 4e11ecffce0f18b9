package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/service"
)

type ShippingController struct {
	shippingSvc *service.ShippingService
}

func NewShippingController(shippingSvc *service.ShippingService) *ShippingController {
	return &ShippingController{shippingSvc: shippingSvc}
}

// Create 创建运费方式
// @Summary 创建运费方式
// @Description 固定运费需要 price > 0；按实际计价需要长宽高重齐全
// @Tags Shipping (运费方式)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.ShippingCreateReq true "运费方式参数"
// @Success 201 {object} dto.ShippingResp "创建结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 403 {object} map[string]string "无权操作该店铺"
// @Router /api/v1/stores/{storeId}/shippings [post]
func (c *ShippingController) Create(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var req dto.ShippingCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	resp, err := c.shippingSvc.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Update 更新运费方式
// @Summary 更新运费方式
// @Tags Shipping (运费方式)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param shippingId path int true "运费方式ID"
// @Param request body dto.ShippingUpdateReq true "运费方式参数"
// @Success 200 {object} map[string]string "{"message": "更新成功"}"
// @Failure 404 {object} map[string]string "运费方式不存在"
// @Router /api/v1/stores/{storeId}/shippings/{shippingId} [patch]
func (c *ShippingController) Update(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "shippingId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的运费方式ID"})
		return
	}

	var req dto.ShippingUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	if err := c.shippingSvc.Update(ctx.Request.Context(), middleware.GetUserID(ctx), id, req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// Delete 删除运费方式
// @Summary 删除运费方式
// @Description 仍被商品引用的运费方式不能删除
// @Tags Shipping (运费方式)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param shippingId path int true "运费方式ID"
// @Success 200 {object} map[string]string "{"message": "删除成功"}"
// @Failure 404 {object} map[string]string "运费方式不存在"
// @Failure 409 {object} map[string]string "仍有商品引用"
// @Router /api/v1/stores/{storeId}/shippings/{shippingId} [delete]
func (c *ShippingController) Delete(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "shippingId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的运费方式ID"})
		return
	}

	if err := c.shippingSvc.Delete(ctx.Request.Context(), middleware.GetUserID(ctx), storeID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetDetail 获取运费方式详情
// @Summary 获取运费方式详情
// @Tags Shipping (运费方式)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param shippingId path int true "运费方式ID"
// @Success 200 {object} dto.ShippingResp "运费方式详情"
// @Failure 404 {object} map[string]string "运费方式不存在"
// @Router /api/v1/stores/{storeId}/shippings/{shippingId} [get]
func (c *ShippingController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "shippingId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的运费方式ID"})
		return
	}

	resp, err := c.shippingSvc.GetDetail(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetList 获取运费方式列表
// @Summary 获取店铺的运费方式列表
// @Tags Shipping (运费方式)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Success 200 {object} dto.ShippingListResp "运费方式列表"
// @Router /api/v1/stores/{storeId}/shippings [get]
func (c *ShippingController) GetList(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	resp, err := c.shippingSvc.GetList(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
