package orders

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(orderID, paymentID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("test_key_secret")
	orderID := "order_MxYz123"
	paymentID := "pay_AbCd456"

	t.Run("valid", func(t *testing.T) {
		if !VerifySignature(orderID, paymentID, sign(orderID, paymentID, secret), secret) {
			t.Error("expected valid signature to verify")
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		sig := sign(orderID, paymentID, secret)
		tampered := "0" + sig[1:]
		if tampered == sig {
			tampered = "1" + sig[1:]
		}
		if VerifySignature(orderID, paymentID, tampered, secret) {
			t.Error("tampered signature verified")
		}
	})

	t.Run("signature for different payment", func(t *testing.T) {
		sig := sign(orderID, "pay_other", secret)
		if VerifySignature(orderID, paymentID, sig, secret) {
			t.Error("signature for another payment verified")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		sig := sign(orderID, paymentID, []byte("other_secret"))
		if VerifySignature(orderID, paymentID, sig, secret) {
			t.Error("signature under the wrong secret verified")
		}
	})

	t.Run("empty signature", func(t *testing.T) {
		if VerifySignature(orderID, paymentID, "", secret) {
			t.Error("empty signature verified")
		}
	})
}
