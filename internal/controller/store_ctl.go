package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/service"
)

type StoreController struct {
	storeSvc *service.StoreService
}

func NewStoreController(storeSvc *service.StoreService) *StoreController {
	return &StoreController{storeSvc: storeSvc}
}

// Create 创建店铺
// @Summary 创建店铺
// @Tags Store (店铺)
// @Accept json
// @Produce json
// @Param request body dto.StoreCreateReq true "店铺参数"
// @Success 201 {object} dto.StoreResp "创建结果"
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/v1/stores [post]
func (c *StoreController) Create(ctx *gin.Context) {
	var req dto.StoreCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}
	req.UserID = middleware.GetUserID(ctx)

	resp, err := c.storeSvc.Create(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetList 当前用户的店铺列表
// @Summary 获取店铺列表
// @Tags Store (店铺)
// @Produce json
// @Success 200 {array} dto.StoreResp "店铺列表"
// @Router /api/v1/stores [get]
func (c *StoreController) GetList(ctx *gin.Context) {
	list, err := c.storeSvc.ListByUser(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}
