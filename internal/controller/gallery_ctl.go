package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/service"
)

type GalleryController struct {
	gallerySvc *service.GalleryService
}

func NewGalleryController(gallerySvc *service.GalleryService) *GalleryController {
	return &GalleryController{gallerySvc: gallerySvc}
}

// Upsert 创建或替换图库
// @Summary 创建或整体替换图库
// @Description 提交完整图片列表，旧图片全部删除后按提交顺序重建，同一事务
// @Tags Gallery (图库)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.GalleryUpsertReq true "图库参数"
// @Success 200 {object} dto.GalleryResp "图库"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 403 {object} map[string]string "无权操作该店铺"
// @Router /api/v1/stores/{storeId}/gallery [post]
func (c *GalleryController) Upsert(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var req dto.GalleryUpsertReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.StoreID = storeID

	resp, err := c.gallerySvc.Upsert(ctx.Request.Context(), middleware.GetUserID(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Get 获取图库
// @Summary 获取店铺图库
// @Tags Gallery (图库)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Success 200 {object} dto.GalleryResp "图库（没有图库时返回空列表）"
// @Router /api/v1/stores/{storeId}/gallery [get]
func (c *GalleryController) Get(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	resp, err := c.gallerySvc.GetByStore(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
