package logic_test

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"io"
	"masto_bridge/dto"
	"masto_bridge/logic"
	"masto_bridge/mocks"
	"masto_bridge/shared"
	"net/http"
	"net/http/httptest"
	"testing"
)

type gatewayRequest struct {
	path      string
	body      map[string]any
	requestId string
	userAgent string
	signature string
}

type chatGatewayHarness struct {
	cfg           *shared.Config
	mockLogger    *mocks.MockILogger
	mockUserAgent *mocks.MockIUserAgent
	mockSigner    *mocks.MockIChatSigner
	mockMetrics   *mocks.MockIMetrics
	srv           *httptest.Server
	requests      []gatewayRequest
	status        int
	response      string
}

func setupChatGatewayTest(t *testing.T) (*gomock.Controller, *chatGatewayHarness, logic.IChat) {

	ctrl := gomock.NewController(t)

	h := &chatGatewayHarness{
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockUserAgent: mocks.NewMockIUserAgent(ctrl),
		mockSigner:    mocks.NewMockIChatSigner(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		status:        http.StatusOK,
		response:      "{}",
	}
	h.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, _ := io.ReadAll(r.Body)
		req := gatewayRequest{
			path:      r.URL.Path,
			requestId: r.Header.Get("X-Request-Id"),
			userAgent: r.Header.Get("User-Agent"),
			signature: r.Header.Get("Signature"),
		}
		_ = json.Unmarshal(bodyBytes, &req.body)
		h.requests = append(h.requests, req)
		w.WriteHeader(h.status)
		_, _ = w.Write([]byte(h.response))
	}))
	t.Cleanup(h.srv.Close)

	h.cfg = &shared.Config{HttpTimeoutSec: 5, Chat: shared.ChatConfig{BaseUrl: h.srv.URL + "/"}}

	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(ctrl, h.mockMetrics)
	h.mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).Do(func(req *http.Request) {
		req.Header.Set("User-Agent", "MastoBridge/test")
	}).AnyTimes()
	h.mockSigner.EXPECT().Sign(gomock.Any(), gomock.Any()).DoAndReturn(func(req *http.Request, body []byte) error {
		req.Header.Set("Signature", "signed")
		return nil
	}).AnyTimes()

	gw := logic.NewChatGateway(h.cfg, h.mockLogger, h.mockUserAgent, h.mockSigner, h.mockMetrics)
	return ctrl, h, gw
}

func TestChatGatewayCreateGroup(t *testing.T) {
	_, h, gw := setupChatGatewayTest(t)
	h.response = `{"chat_id":77}`

	chatId, err := gw.CreateGroup(context.Background(), "Home (a.social)", []string{"bob@chat.example"})
	assert.Nil(t, err)
	assert.Equal(t, int64(77), chatId)

	assert.Len(t, h.requests, 1)
	req := h.requests[0]
	assert.Equal(t, "/groups", req.path)
	assert.Equal(t, "Home (a.social)", req.body["name"])
	assert.Equal(t, []any{"bob@chat.example"}, req.body["members"])
	assert.Equal(t, "MastoBridge/test", req.userAgent)
	assert.Equal(t, "signed", req.signature)
	_, err = uuid.Parse(req.requestId)
	assert.Nil(t, err)
}

func TestChatGatewayCreateGroupNoId(t *testing.T) {
	_, h, gw := setupChatGatewayTest(t)
	h.response = `{}`
	_, err := gw.CreateGroup(context.Background(), "x", nil)
	assert.NotNil(t, err)
}

func TestChatGatewayChatCalls(t *testing.T) {
	_, h, gw := setupChatGatewayTest(t)
	ctx := context.Background()

	msg := &dto.ChatMessage{Text: "hi", FileUrl: "https://x.org/a.png", SenderName: "Alice", QuoteMsgId: 9}
	assert.Nil(t, gw.Send(ctx, 77, msg))
	assert.Nil(t, gw.SetAvatar(ctx, 77, "https://x.org/avatar.png"))
	assert.Nil(t, gw.SendToContact(ctx, "bob@chat.example", "bye"))
	assert.Nil(t, gw.Leave(ctx, 77))

	assert.Len(t, h.requests, 4)
	assert.Equal(t, "/chats/77/messages", h.requests[0].path)
	assert.Equal(t, "hi", h.requests[0].body["text"])
	assert.Equal(t, "Alice", h.requests[0].body["sender_name"])
	assert.Equal(t, float64(9), h.requests[0].body["quote_msg_id"])
	assert.Equal(t, "/chats/77/avatar", h.requests[1].path)
	assert.Equal(t, "https://x.org/avatar.png", h.requests[1].body["url"])
	assert.Equal(t, "/contacts/messages", h.requests[2].path)
	assert.Equal(t, "bob@chat.example", h.requests[2].body["addr"])
	assert.Equal(t, "/chats/77/leave", h.requests[3].path)
	assert.NotEqual(t, h.requests[0].requestId, h.requests[1].requestId)
}

func TestChatGatewayErrorStatus(t *testing.T) {
	_, h, gw := setupChatGatewayTest(t)
	h.status = http.StatusBadGateway
	h.response = "upstream down"

	err := gw.Send(context.Background(), 77, &dto.ChatMessage{Text: "hi"})
	assert.ErrorContains(t, err, "upstream down")
}
