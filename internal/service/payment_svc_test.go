package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload 按网关的签名规则生成 Stripe-Signature 头
func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeProvider_VerifySignature(t *testing.T) {
	provider := NewStripeProvider(StripeConfig{WebhookSecret: testWebhookSecret})
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	header := signPayload(testWebhookSecret, time.Now().Unix(), payload)
	if err := provider.VerifySignature(payload, header); err != nil {
		t.Fatalf("VerifySignature() error = %v", err)
	}
}

func TestStripeProvider_VerifySignature_Invalid(t *testing.T) {
	provider := NewStripeProvider(StripeConfig{WebhookSecret: testWebhookSecret})
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now().Unix()

	cases := []struct {
		name   string
		header string
	}{
		{"空签名头", ""},
		{"格式不对", "garbage"},
		{"缺时间戳", "v1=deadbeef"},
		{"用错密钥", signPayload("whsec_wrong", now, payload)},
		{"篡改payload", signPayload(testWebhookSecret, now, []byte(`{"id":"evt_2"}`))},
		{"时间戳过期", signPayload(testWebhookSecret, now-3600, payload)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := provider.VerifySignature(payload, tc.header); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("VerifySignature() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

// 多个 v1 里只要有一个对就放行，对齐网关轮换密钥期间的行为
func TestStripeProvider_VerifySignature_MultipleSignatures(t *testing.T) {
	provider := NewStripeProvider(StripeConfig{WebhookSecret: testWebhookSecret})
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now().Unix()

	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "%d.%s", now, payload)
	good := hex.EncodeToString(mac.Sum(nil))

	header := fmt.Sprintf("t=%d,v1=0000000000,v1=%s", now, good)
	if err := provider.VerifySignature(payload, header); err != nil {
		t.Fatalf("VerifySignature() error = %v", err)
	}
}
