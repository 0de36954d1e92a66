package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signBody(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	s := NewPaymentService(nil, nil, nil, "key_id", "key_secret", "webhook_secret")
	body := []byte(`{"event":"payment.captured"}`)

	if !s.VerifyWebhookSignature(body, signBody("webhook_secret", body)) {
		t.Error("expected valid signature to verify")
	}
	if s.VerifyWebhookSignature(body, signBody("wrong_secret", body)) {
		t.Error("expected signature from wrong secret to fail")
	}
	if s.VerifyWebhookSignature([]byte(`tampered`), signBody("webhook_secret", body)) {
		t.Error("expected tampered body to fail")
	}
}

func TestVerifyWebhookSignatureUnconfigured(t *testing.T) {
	s := NewPaymentService(nil, nil, nil, "", "", "")
	body := []byte(`{}`)
	if s.VerifyWebhookSignature(body, signBody("", body)) {
		t.Error("expected verification to fail when no webhook secret is configured")
	}
}

func TestVerifyCheckoutSignature(t *testing.T) {
	s := NewPaymentService(nil, nil, nil, "key_id", "key_secret", "")
	payload := "order_abc|pay_xyz"

	if !s.verifyCheckoutSignature("order_abc", "pay_xyz", signBody("key_secret", []byte(payload))) {
		t.Error("expected valid checkout signature to verify")
	}
	if s.verifyCheckoutSignature("order_abc", "pay_other", signBody("key_secret", []byte(payload))) {
		t.Error("expected mismatched payment id to fail")
	}
}
