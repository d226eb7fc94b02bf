package client

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/jameson75/kalshix/clock"
)

func testKeyPEM(t *testing.T, pkcs1 bool) (*rsa.PrivateKey, []byte) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	var block *pem.Block
	if pkcs1 {
		block = &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	} else {
		der, err := x509.MarshalPKCS8PrivateKey(key)
		if err != nil {
			t.Fatalf("marshal pkcs8: %v", err)
		}
		block = &pem.Block{Type: "PRIVATE KEY", Bytes: der}
	}
	return key, pem.EncodeToMemory(block)
}

func TestNewSigner_PKCS8AndPKCS1(t *testing.T) {
	for _, pkcs1 := range []bool{false, true} {
		_, pemBytes := testKeyPEM(t, pkcs1)
		s, err := newSigner("key_1", pemBytes)
		if err != nil {
			t.Fatalf("newSigner(pkcs1=%v): %v", pkcs1, err)
		}
		if s.keyID != "key_1" || s.privateKey == nil {
			t.Fatalf("signer = %+v", s)
		}
	}
}

func TestNewSigner_BadKeyMaterial(t *testing.T) {
	if _, err := newSigner("key_1", []byte("garbage")); err == nil {
		t.Fatalf("expected error for non-PEM input")
	}
	block := &pem.Block{Type: "PRIVATE KEY", Bytes: []byte{0x01, 0x02}}
	if _, err := newSigner("key_1", pem.EncodeToMemory(block)); err == nil {
		t.Fatalf("expected error for malformed key bytes")
	}
}

func TestSign_SignatureVerifies(t *testing.T) {
	key, pemBytes := testKeyPEM(t, false)
	s, err := newSigner("key_1", pemBytes)
	if err != nil {
		t.Fatalf("newSigner: %v", err)
	}

	now := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	req, _ := http.NewRequest(http.MethodGet, "https://example.test/trade-api/v2/portfolio/balance", nil)
	if err := s.sign(req, now, http.MethodGet, "/trade-api/v2/portfolio/balance"); err != nil {
		t.Fatalf("sign: %v", err)
	}

	wantTS := strconv.FormatInt(now.UnixMilli(), 10)
	if got := req.Header.Get("KALSHI-ACCESS-TIMESTAMP"); got != wantTS {
		t.Fatalf("timestamp header = %q, want %q", got, wantTS)
	}
	if got := req.Header.Get("KALSHI-ACCESS-KEY"); got != "key_1" {
		t.Fatalf("key header = %q", got)
	}

	sig, err := base64.StdEncoding.DecodeString(req.Header.Get("KALSHI-ACCESS-SIGNATURE"))
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	message := wantTS + http.MethodGet + "/trade-api/v2/portfolio/balance"
	hash := sha256.Sum256([]byte(message))
	if err := rsa.VerifyPSS(&key.PublicKey, crypto.SHA256, hash[:], sig, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	}); err != nil {
		t.Fatalf("signature does not verify: %v", err)
	}
}

func TestClient_SignedRequest_UsesInjectedClock(t *testing.T) {
	key, pemBytes := testKeyPEM(t, false)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fake := clock.NewFake(fixed)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantTS := strconv.FormatInt(fixed.UnixMilli(), 10)
		if got := r.Header.Get("KALSHI-ACCESS-TIMESTAMP"); got != wantTS {
			t.Errorf("timestamp = %q, want %q", got, wantTS)
		}
		if got := r.Header.Get("KALSHI-ACCESS-KEY"); got != "key_1" {
			t.Errorf("key = %q", got)
		}

		sig, err := base64.StdEncoding.DecodeString(r.Header.Get("KALSHI-ACCESS-SIGNATURE"))
		if err != nil {
			t.Errorf("decode signature: %v", err)
		}
		// signature covers the path without the query string
		message := wantTS + r.Method + "/trade-api/v2/portfolio/balance"
		hash := sha256.Sum256([]byte(message))
		if err := rsa.VerifyPSS(&key.PublicKey, crypto.SHA256, hash[:], sig, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
		}); err != nil {
			t.Errorf("signature does not verify: %v", err)
		}

		_, _ = w.Write([]byte(`{"balance": 1}`))
	}))
	defer srv.Close()

	c, err := NewClient(
		WithBaseURL(srv.URL+"/trade-api/v2"),
		WithAPIKey("key_1", pemBytes),
		WithClock(fake),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := NewPortfolio(c).GetBalance(context.Background()); err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
}

func TestClient_UnsignedWhenNoCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("KALSHI-ACCESS-KEY"); got != "" {
			t.Errorf("unexpected KALSHI-ACCESS-KEY %q on unsigned client", got)
		}
		_, _ = w.Write([]byte(`{"exchange_active":true,"trading_active":true}`))
	}))
	defer srv.Close()

	c, err := NewClient(WithBaseURL(srv.URL + "/trade-api/v2"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := NewExchange(c).GetStatus(context.Background()); err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
}
