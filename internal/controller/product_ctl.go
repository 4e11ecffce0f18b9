package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/repository"
	"turnstone_admin_v1/internal/service"
)

type ProductController struct {
	productSvc *service.ProductService
	aiSvc      *service.AIService
}

func NewProductController(productSvc *service.ProductService, aiSvc *service.AIService) *ProductController {
	return &ProductController{productSvc: productSvc, aiSvc: aiSvc}
}

// Create 创建商品
// @Summary 创建商品
// @Description 颜色与图片随商品一并提交，同一事务写入
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.ProductCreateReq true "商品参数"
// @Success 201 {object} dto.ProductResp "创建结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 403 {object} map[string]string "无权操作该店铺"
// @Router /api/v1/stores/{storeId}/products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var req dto.ProductCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	resp, err := c.productSvc.Create(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Update 更新商品
// @Summary 更新商品
// @Description 颜色与图片按提交的完整列表整体替换
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Param request body dto.ProductUpdateReq true "商品参数"
// @Success 200 {object} map[string]string "{"message": "更新成功"}"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/v1/stores/{storeId}/products/{productId} [patch]
func (c *ProductController) Update(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "productId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的商品ID"})
		return
	}

	var req dto.ProductUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	if err := c.productSvc.Update(ctx.Request.Context(), middleware.GetUserID(ctx), id, req); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "更新成功"})
}

// Delete 删除商品
// @Summary 删除商品
// @Tags Product (商品)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Success 200 {object} map[string]string "{"message": "删除成功"}"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/v1/stores/{storeId}/products/{productId} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}
	id, ok := parseIDParam(ctx, "productId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的商品ID"})
		return
	}

	if err := c.productSvc.Delete(ctx.Request.Context(), middleware.GetUserID(ctx), storeID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetDetail 获取商品详情
// @Summary 获取商品详情
// @Tags Product (商品)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Success 200 {object} dto.ProductResp "商品详情"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/v1/stores/{storeId}/products/{productId} [get]
func (c *ProductController) GetDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "productId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的商品ID"})
		return
	}

	resp, err := c.productSvc.GetDetail(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetList 获取商品列表
// @Summary 获取店铺商品列表
// @Tags Product (商品)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param category_id query int false "分类ID筛选"
// @Param is_featured query bool false "只看首页推荐"
// @Param is_archived query bool false "只看下架商品"
// @Success 200 {object} dto.ProductListResp "商品列表"
// @Router /api/v1/stores/{storeId}/products [get]
func (c *ProductController) GetList(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var filter repository.ProductFilter
	if v := ctx.Query("category_id"); v != "" {
		filter.CategoryID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := ctx.Query("is_featured"); v != "" {
		b := v == "true" || v == "1"
		filter.Featured = &b
	}
	if v := ctx.Query("is_archived"); v != "" {
		b := v == "true" || v == "1"
		filter.Archived = &b
	}

	resp, err := c.productSvc.GetList(ctx.Request.Context(), storeID, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GenerateCopy 生成商品文案
// @Summary AI 生成商品文案
// @Description 以商品名为基础关键词，可追加自定义关键词与指令
// @Tags Product (商品)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Param request body dto.GenerateCopyReq true "生成参数"
// @Success 200 {object} dto.GenerateCopyResp "生成结果"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/v1/stores/{storeId}/products/{productId}/generate [post]
func (c *ProductController) GenerateCopy(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "productId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的商品ID"})
		return
	}

	var req dto.GenerateCopyReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	product, err := c.productSvc.GetDetail(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	keywords := product.Name
	if req.Keywords != "" {
		keywords += ", " + req.Keywords
	}

	resp, err := c.aiSvc.GenerateCopy(ctx.Request.Context(), keywords, req.Instruction)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
