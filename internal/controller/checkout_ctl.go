package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/service"
)

type CheckoutController struct {
	checkoutSvc *service.CheckoutService
	orderSvc    *service.OrderService
}

func NewCheckoutController(checkoutSvc *service.CheckoutService, orderSvc *service.OrderService) *CheckoutController {
	return &CheckoutController{checkoutSvc: checkoutSvc, orderSvc: orderSvc}
}

// Checkout 创建结账会话
// @Summary 结账，返回托管支付页跳转地址
// @Description 商城前台公开接口。参数非法时报 400，不落任何数据
// @Tags Checkout (结账)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.CheckoutReq true "商品与变体"
// @Success 200 {object} dto.CheckoutResp "支付页地址"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 404 {object} map[string]string "商品不存在"
// @Router /api/v1/stores/{storeId}/checkout [post]
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	storeID, ok := parseIDParam(ctx, "storeId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的店铺ID"})
		return
	}

	var req dto.CheckoutReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	resp, err := c.checkoutSvc.Checkout(ctx.Request.Context(), storeID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Webhook 支付回调
// @Summary 支付网关回调
// @Description 校验签名后把对应订单翻成已支付，重复回调幂等
// @Tags Checkout (结账)
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "{"received": "true"}"
// @Failure 400 {object} map[string]string "payload 错误"
// @Failure 401 {object} map[string]string "签名校验失败"
// @Router /api/v1/payment/webhook [post]
func (c *CheckoutController) Webhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "读取 payload 失败"})
		return
	}

	sigHeader := ctx.GetHeader("Stripe-Signature")
	if err := c.orderSvc.HandleWebhook(ctx.Request.Context(), payload, sigHeader); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"received": "true"})
}
