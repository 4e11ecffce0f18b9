package dto

// CheckoutReq 结账请求
// variantIndexes 与 productIds 一一对应，值是商品颜色列表的下标
type CheckoutReq struct {
	ProductIDs     []int64 `json:"productIds"`
	VariantIndexes []int   `json:"variantIndexes"`
}

// CheckoutResp 结账响应，url 是托管支付页跳转地址
type CheckoutResp struct {
	Url string `json:"url"`
}

// PaymentWebhookAddress 回调里的收货地址
type PaymentWebhookAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// PaymentWebhookCustomer 回调里的买家信息
type PaymentWebhookCustomer struct {
	Phone   string                `json:"phone"`
	Address PaymentWebhookAddress `json:"address"`
}

// PaymentWebhookObject 支付会话对象
type PaymentWebhookObject struct {
	ID              string                 `json:"id"`
	Metadata        map[string]string      `json:"metadata"`
	CustomerDetails PaymentWebhookCustomer `json:"customer_details"`
}

// PaymentWebhookEvent 支付回调事件
type PaymentWebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object PaymentWebhookObject `json:"object"`
	} `json:"data"`
}
