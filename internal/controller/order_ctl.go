package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/service"
)

type OrderController struct {
	orderSvc *service.OrderService
	storeSvc *service.StoreService
}

func NewOrderController(orderSvc *service.OrderService, storeSvc *service.StoreService) *OrderController {
	return &OrderController{orderSvc: orderSvc, storeSvc: storeSvc}
}

// GetList 获取订单列表
// @Summary 获取店铺订单列表
// @Description 金额按当前商品价实时重算
// @Tags Order (订单)
// @Produce json
// @Param storeId path int true "店铺ID"
// @Success 200 {object} dto.OrderListResp "订单列表"
// @Failure 403 {object} map[string]string "无权操作该店铺"
// @Router /api/v1/stores/{storeId}/orders [get]
func (c *OrderController) GetList(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	if err := c.storeSvc.CheckOwnership(ctx.Request.Context(), storeID, middleware.GetUserID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}

	resp, err := c.orderSvc.GetList(ctx.Request.Context(), storeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
