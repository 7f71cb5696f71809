package logic

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"github.com/go-fed/httpsig"
	"masto_bridge/shared"
	"net/http"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_chat_signer.go -package mocks masto_bridge/logic IChatSigner

// IChatSigner authenticates traffic between the bridge and the chat gateway with HTTP signatures.
// Both sides hold the same secret, so the algorithm is HMAC-SHA256.
type IChatSigner interface {
	Sign(req *http.Request, body []byte) error
	Verify(req *http.Request, body []byte) error
}

type chatSigner struct {
	cfg *shared.Config
}

func NewChatSigner(cfg *shared.Config) IChatSigner {
	return &chatSigner{cfg}
}

func (cs *chatSigner) Sign(req *http.Request, body []byte) error {

	if req.Header.Get("date") == "" {
		req.Header.Set("date", time.Now().UTC().Format(http.TimeFormat))
	}
	if req.Header.Get("host") == "" {
		req.Header.Set("host", req.URL.Host)
	}

	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.HMAC_SHA256},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "host", "date", "digest"},
		httpsig.Signature,
		0)
	if err != nil {
		return err
	}
	return signer.SignRequest([]byte(cs.cfg.Secrets.ChatSecret), cs.cfg.Chat.KeyId, req, body)
}

func (cs *chatSigner) Verify(req *http.Request, body []byte) error {

	verifier, err := httpsig.NewVerifier(req)
	if err != nil {
		return fmt.Errorf("missing or invalid signature: %w", err)
	}
	if verifier.KeyId() != cs.cfg.Chat.KeyId {
		return fmt.Errorf("unexpected keyId: %s", verifier.KeyId())
	}
	if err = verifier.Verify([]byte(cs.cfg.Secrets.ChatSecret), httpsig.HMAC_SHA256); err != nil {
		return fmt.Errorf("incorrect signature: %w", err)
	}
	// The signature covers the digest header; the header must also match the body
	sum := sha256.Sum256(body)
	if req.Header.Get("digest") != "SHA-256="+base64.StdEncoding.EncodeToString(sum[:]) {
		return fmt.Errorf("digest does not match body")
	}
	return nil
}
