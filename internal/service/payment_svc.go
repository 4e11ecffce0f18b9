package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaymentLineItem 发给支付网关的一条商品行
type PaymentLineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64 // 最小货币单位（分）
	Quantity    int64
}

// PaymentShippingOption 结账页可选的配送方式
type PaymentShippingOption struct {
	DisplayName string
	Amount      int64 // 分
	MinDays     int
	MaxDays     int
}

// PaymentSessionReq 创建托管支付会话的入参
type PaymentSessionReq struct {
	Currency         string
	LineItems        []PaymentLineItem
	ShippingOptions  []PaymentShippingOption
	AllowedCountries []string
	SuccessURL       string
	CancelURL        string
	Metadata         map[string]string
}

// PaymentSession 网关返回的支付会话
type PaymentSession struct {
	ID  string
	URL string
}

// PaymentProvider 支付网关抽象，结账服务只依赖这个接口
type PaymentProvider interface {
	CreateSession(ctx context.Context, req PaymentSessionReq) (*PaymentSession, error)
	// VerifySignature 校验回调签名，通过返回 nil
	VerifySignature(payload []byte, sigHeader string) error
}

// ==================== Stripe ====================

// StripeConfig Stripe 接入配置
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	// Tolerance 回调时间戳容忍窗口，0 用默认 5 分钟
	Tolerance time.Duration
}

// StripeProvider 基于 Stripe Checkout Session 的支付实现
type StripeProvider struct {
	client *resty.Client
	config StripeConfig
}

const stripeAPIBase = "https://api.stripe.com/v1"

// NewStripeProvider 创建 Stripe 支付网关
func NewStripeProvider(config StripeConfig) *StripeProvider {
	if config.Tolerance == 0 {
		config.Tolerance = 5 * time.Minute
	}
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second)
	return &StripeProvider{client: client, config: config}
}

// 辅助结构体：会话响应
type stripeSessionResp struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession 创建托管结账会话
// Stripe 的表单编码用索引键表达嵌套结构，如 line_items[0][price_data][currency]
func (p *StripeProvider) CreateSession(ctx context.Context, req PaymentSessionReq) (*PaymentSession, error) {
	form := map[string]string{
		"mode":                       "payment",
		"success_url":                req.SuccessURL,
		"cancel_url":                 req.CancelURL,
		"billing_address_collection": "required",
		"phone_number_collection[enabled]": "true",
		"automatic_tax[enabled]":           "true",
	}

	for i, item := range req.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form[prefix+"[quantity]"] = strconv.FormatInt(item.Quantity, 10)
		form[prefix+"[price_data][currency]"] = strings.ToLower(req.Currency)
		form[prefix+"[price_data][unit_amount]"] = strconv.FormatInt(item.UnitAmount, 10)
		form[prefix+"[price_data][product_data][name]"] = item.Name
		if item.Description != "" {
			form[prefix+"[price_data][product_data][description]"] = item.Description
		}
		if item.ImageURL != "" {
			form[prefix+"[price_data][product_data][images][0]"] = item.ImageURL
		}
	}

	for i, opt := range req.ShippingOptions {
		prefix := fmt.Sprintf("shipping_options[%d][shipping_rate_data]", i)
		form[prefix+"[type]"] = "fixed_amount"
		form[prefix+"[display_name]"] = opt.DisplayName
		form[prefix+"[fixed_amount][amount]"] = strconv.FormatInt(opt.Amount, 10)
		form[prefix+"[fixed_amount][currency]"] = strings.ToLower(req.Currency)
		form[prefix+"[delivery_estimate][minimum][unit]"] = "business_day"
		form[prefix+"[delivery_estimate][minimum][value]"] = strconv.Itoa(opt.MinDays)
		form[prefix+"[delivery_estimate][maximum][unit]"] = "business_day"
		form[prefix+"[delivery_estimate][maximum][value]"] = strconv.Itoa(opt.MaxDays)
	}

	for i, country := range req.AllowedCountries {
		form[fmt.Sprintf("shipping_address_collection[allowed_countries][%d]", i)] = country
	}
	for key, value := range req.Metadata {
		form[fmt.Sprintf("metadata[%s]", key)] = value
	}

	var sessionResp stripeSessionResp
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Authorization", "Bearer "+p.config.SecretKey).
		SetFormData(form).
		SetResult(&sessionResp).
		SetError(&sessionResp).
		Post(stripeAPIBase + "/checkout/sessions")

	if err != nil {
		return nil, fmt.Errorf("支付网关请求失败: %v", err)
	}
	if resp.StatusCode() != 200 {
		if sessionResp.Error.Message != "" {
			return nil, fmt.Errorf("支付网关拒绝 (Status %d): %s", resp.StatusCode(), sessionResp.Error.Message)
		}
		return nil, fmt.Errorf("支付网关拒绝 (Status %d): %s", resp.StatusCode(), resp.String())
	}
	if sessionResp.ID == "" || sessionResp.URL == "" {
		return nil, fmt.Errorf("支付网关响应异常: %s", resp.String())
	}

	return &PaymentSession{ID: sessionResp.ID, URL: sessionResp.URL}, nil
}

// VerifySignature 校验 Stripe-Signature 头
// 头格式 t=<时间戳>,v1=<hex hmac>，签名内容是 "<t>.<payload>"
func (p *StripeProvider) VerifySignature(payload []byte, sigHeader string) error {
	if sigHeader == "" {
		return fmt.Errorf("%w: 缺少签名头", ErrInvalidToken)
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(sigHeader, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return fmt.Errorf("%w: 签名头格式错误", ErrInvalidToken)
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: 签名时间戳无效", ErrInvalidToken)
	}
	if diff := time.Since(time.Unix(ts, 0)); diff > p.config.Tolerance || diff < -p.config.Tolerance {
		return fmt.Errorf("%w: 签名已过期", ErrInvalidToken)
	}

	mac := hmac.New(sha256.New, []byte(p.config.WebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1 {
			return nil
		}
	}
	return fmt.Errorf("%w: 签名校验失败", ErrInvalidToken)
}
