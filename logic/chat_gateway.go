package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"masto_bridge/dto"
	"masto_bridge/shared"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_chat.go -package mocks masto_bridge/logic IChat

const requestIdHeader = "X-Request-Id"

// IChat is the messenger side of the bridge, as exposed by the chat gateway.
type IChat interface {
	CreateGroup(ctx context.Context, name string, members []string) (chatId int64, err error)
	SetAvatar(ctx context.Context, chatId int64, imageUrl string) error
	Send(ctx context.Context, chatId int64, msg *dto.ChatMessage) error
	SendToContact(ctx context.Context, addr, text string) error
	Leave(ctx context.Context, chatId int64) error
}

type chatGateway struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	signer    IChatSigner
	metrics   IMetrics
	client    *http.Client
}

func NewChatGateway(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	signer IChatSigner,
	metrics IMetrics,
) IChat {
	client := &http.Client{}
	client.Timeout = time.Second * time.Duration(cfg.HttpTimeoutSec)
	return &chatGateway{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		signer:    signer,
		metrics:   metrics,
		client:    client,
	}
}

func (cg *chatGateway) post(ctx context.Context, label, path string, body any, resp any) error {

	obs := cg.metrics.StartGatewayRequestOut(label)
	defer obs.Finish()

	bodyJson, err := json.Marshal(body)
	if err != nil {
		return err
	}
	url := strings.TrimRight(cg.cfg.Chat.BaseUrl, "/") + path
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(bodyJson))
	if err != nil {
		return err
	}
	cg.userAgent.AddUserAgent(req)
	reqId := uuid.NewString()
	req.Header.Set(requestIdHeader, reqId)
	req.Header.Set("Content-Type", "application/json")
	if err = cg.signer.Sign(req, bodyJson); err != nil {
		return err
	}

	httpResp, err := cg.client.Do(req)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()
	respBody, _ := io.ReadAll(httpResp.Body)

	if httpResp.StatusCode >= 300 {
		msg := fmt.Sprintf("got status %s: response: %s", httpResp.Status, respBody)
		cg.logger.Warnf("Chat gateway %s failed [%s]: %s", label, reqId, msg)
		return errors.New(msg)
	}
	if resp != nil {
		if err = json.Unmarshal(respBody, resp); err != nil {
			return fmt.Errorf("invalid gateway response: %w", err)
		}
	}
	return nil
}

func (cg *chatGateway) CreateGroup(ctx context.Context, name string, members []string) (int64, error) {
	var resp dto.CreateGroupResp
	if err := cg.post(ctx, "create_group", "/groups", &dto.CreateGroupReq{Name: name, Members: members}, &resp); err != nil {
		return 0, err
	}
	if resp.ChatId == 0 {
		return 0, errors.New("gateway returned no chat id")
	}
	return resp.ChatId, nil
}

func (cg *chatGateway) SetAvatar(ctx context.Context, chatId int64, imageUrl string) error {
	return cg.post(ctx, "set_avatar", fmt.Sprintf("/chats/%d/avatar", chatId), &dto.SetAvatarReq{Url: imageUrl}, nil)
}

func (cg *chatGateway) Send(ctx context.Context, chatId int64, msg *dto.ChatMessage) error {
	return cg.post(ctx, "send", fmt.Sprintf("/chats/%d/messages", chatId), msg, nil)
}

func (cg *chatGateway) SendToContact(ctx context.Context, addr, text string) error {
	return cg.post(ctx, "send_contact", "/contacts/messages", &dto.ContactMessageReq{Addr: addr, Text: text}, nil)
}

func (cg *chatGateway) Leave(ctx context.Context, chatId int64) error {
	return cg.post(ctx, "leave", fmt.Sprintf("/chats/%d/leave", chatId), struct{}{}, nil)
}
