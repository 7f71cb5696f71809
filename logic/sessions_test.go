package logic_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"masto_bridge/dal"
	"masto_bridge/dto"
	"masto_bridge/logic"
	"masto_bridge/mocks"
	"masto_bridge/shared"
	"testing"
	"time"
)

const (
	bobAddr     = "bob@chat.example"
	instanceUrl = "https://a.social"
	avatarUrl   = "https://bridge.example/avatar.png"
)

type sessionsHarness struct {
	cfg           *shared.Config
	mockLogger    *mocks.MockILogger
	repo          dal.IRepo
	mockConnector *mocks.MockIMastoConnector
	mockSession   *mocks.MockIMastoSession
	mockChat      *mocks.MockIChat
	mockBlocked   *mocks.MockIBlockedInstances
	mockTexts     *mocks.MockITexts
	mockMetrics   *mocks.MockIMetrics
}

func setupSessionsTest(t *testing.T) (*gomock.Controller, *sessionsHarness, logic.ISessions) {

	ctrl := gomock.NewController(t)

	h := &sessionsHarness{
		cfg: &shared.Config{
			MaxUsers:         -1,
			MaxUsersInstance: -1,
			ChatAvatarUrl:    avatarUrl,
		},
		mockLogger:    mocks.NewMockILogger(ctrl),
		repo:          setupTestRepo(t),
		mockConnector: mocks.NewMockIMastoConnector(ctrl),
		mockSession:   mocks.NewMockIMastoSession(ctrl),
		mockChat:      mocks.NewMockIChat(ctrl),
		mockBlocked:   mocks.NewMockIBlockedInstances(ctrl),
		mockTexts:     mocks.NewMockITexts(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
	}
	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(ctrl, h.mockMetrics)
	setupFakeTexts(h.mockTexts)
	h.mockBlocked.EXPECT().IsBlocked("https://bad.example").Return(true, nil).AnyTimes()
	h.mockBlocked.EXPECT().IsBlocked(gomock.Any()).Return(false, nil).AnyTimes()

	ss := logic.NewSessions(h.cfg, h.mockLogger, h.repo, h.mockConnector, h.mockChat, h.mockBlocked,
		h.mockTexts, h.mockMetrics)
	return ctrl, h, ss
}

func (h *sessionsHarness) expectRemoteLogin(acct string) {
	h.mockConnector.EXPECT().Login(gomock.Any(), gomock.Any(), "bob@mail.example", "pw").Return("tok-new", nil)
	h.mockConnector.EXPECT().Connect(instanceUrl, "tok-new").Return(h.mockSession)
	h.mockSession.EXPECT().Me(gomock.Any()).Return(&dto.Account{Id: "42", Acct: acct}, nil)
}

// Empty ID means the feed has nothing in it yet.
func (h *sessionsHarness) expectFeedHeads(notifId, homeId string) {
	var notifs []*dto.Notification
	if notifId != "" {
		notifs = append(notifs, &dto.Notification{Id: notifId})
	}
	var home []*dto.Status
	if homeId != "" {
		home = append(home, &dto.Status{Id: homeId})
	}
	h.mockSession.EXPECT().Notifications(gomock.Any(), "", "", 1).Return(notifs, nil)
	h.mockSession.EXPECT().Home(gomock.Any(), "", "", 1).Return(home, nil)
}

func (h *sessionsHarness) expectStandingChats() {
	h.expectFeedHeads("900", "800")
	h.expectChatsCreated()
}

func (h *sessionsHarness) expectChatsCreated() {
	h.mockChat.EXPECT().CreateGroup(gomock.Any(), "Home (a.social)", []string{bobAddr}).Return(int64(10), nil)
	h.mockChat.EXPECT().CreateGroup(gomock.Any(), "Notifications (a.social)", []string{bobAddr}).Return(int64(11), nil)
	h.mockChat.EXPECT().SetAvatar(gomock.Any(), int64(10), avatarUrl).Return(nil)
	h.mockChat.EXPECT().SetAvatar(gomock.Any(), int64(11), avatarUrl).Return(nil)
	vals := map[string]string{"url": instanceUrl}
	h.mockChat.EXPECT().Send(gomock.Any(), int64(10),
		&dto.ChatMessage{Text: fakeTextWithVals("home_intro.txt", vals)}).Return(nil)
	h.mockChat.EXPECT().Send(gomock.Any(), int64(11),
		&dto.ChatMessage{Text: fakeTextWithVals("notif_intro.txt", vals)}).Return(nil)
}

func (h *sessionsHarness) addBob(url, user string) {
	err := h.repo.AddAccount(&dal.Account{
		Addr: bobAddr, User: user, MastoId: "42", Url: url, Token: "tok-old",
		HomeChat: 10, NotifChat: 11, LastHome: "1", LastNotif: "2",
	})
	if err != nil {
		panic(err)
	}
}

func TestLoginNewAccount(t *testing.T) {
	_, h, ss := setupSessionsTest(t)

	h.mockConnector.EXPECT().RegisterApp(gomock.Any(), instanceUrl).
		Return(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}, nil)
	h.expectRemoteLogin("Bob")
	h.expectStandingChats()

	status, acct, err := ss.Login(context.Background(), bobAddr, "a.social/", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsNew, status)
	assert.Equal(t, int64(10), acct.HomeChat)

	stored, _ := h.repo.GetAccount(bobAddr)
	assert.Equal(t, "bob", stored.User)
	assert.Equal(t, "42", stored.MastoId)
	assert.Equal(t, instanceUrl, stored.Url)
	assert.Equal(t, "tok-new", stored.Token)
	assert.Equal(t, "800", stored.LastHome)
	assert.Equal(t, "900", stored.LastNotif)
	assert.Equal(t, int64(11), stored.NotifChat)

	client, _ := h.repo.GetClient(instanceUrl)
	assert.Equal(t, "cid", client.Id)
}

func TestLoginWithEmptyFeeds(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))

	h.expectRemoteLogin("bob")
	h.expectFeedHeads("", "")
	h.expectChatsCreated()

	status, acct, err := ss.Login(context.Background(), bobAddr, "a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsNew, status)
	assert.Equal(t, dal.WatermarkStart, acct.LastHome)

	stored, _ := h.repo.GetAccount(bobAddr)
	assert.Equal(t, dal.WatermarkStart, stored.LastHome)
	assert.Equal(t, dal.WatermarkStart, stored.LastNotif)
}

func TestLoginReusesClient(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))

	h.expectRemoteLogin("bob")
	h.expectStandingChats()

	status, _, err := ss.Login(context.Background(), bobAddr, "https://a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsNew, status)
}

func TestLoginRefreshesToken(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	h.addBob(instanceUrl, "bob")
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))
	h.expectRemoteLogin("bob")

	status, _, err := ss.Login(context.Background(), bobAddr, "a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsRefreshed, status)
	stored, _ := h.repo.GetAccount(bobAddr)
	assert.Equal(t, "tok-new", stored.Token)
	assert.Equal(t, "1", stored.LastHome)
}

func TestLoginAlreadyLoggedIn(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	h.addBob("https://b.social", "bob")

	status, _, err := ss.Login(context.Background(), bobAddr, "a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsAlreadyLoggedIn, status)
}

func TestLoginSameInstanceOtherUser(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	h.addBob(instanceUrl, "bob")
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))
	h.expectRemoteLogin("alice")

	status, _, err := ss.Login(context.Background(), bobAddr, "a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsAlreadyLoggedIn, status)
	stored, _ := h.repo.GetAccount(bobAddr)
	assert.Equal(t, "tok-old", stored.Token)
}

func TestLoginUserLimits(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	assert.Nil(t, h.repo.AddAccount(&dal.Account{Addr: "eve@chat.example", Url: instanceUrl, HomeChat: 20, NotifChat: 21}))
	ctx := context.Background()

	h.cfg.MaxUsers = 1
	status, _, err := ss.Login(ctx, bobAddr, "b.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsMaxUsers, status)

	h.cfg.MaxUsers = -1
	h.cfg.MaxUsersInstance = 1
	status, _, err = ss.Login(ctx, bobAddr, "a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsMaxUsersInstance, status)

	acct, _ := h.repo.GetAccount(bobAddr)
	assert.Nil(t, acct)
}

func TestLoginBlockedInstance(t *testing.T) {
	_, h, ss := setupSessionsTest(t)

	status, _, err := ss.Login(context.Background(), bobAddr, "bad.example", "bob@mail.example", "pw")
	assert.Nil(t, err)
	assert.Equal(t, logic.LsInstanceBlocked, status)
	acct, _ := h.repo.GetAccount(bobAddr)
	assert.Nil(t, acct)
}

func TestLoginRemoteFailure(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))
	h.mockConnector.EXPECT().Login(gomock.Any(), gomock.Any(), "bob@mail.example", "pw").
		Return("", errors.New("invalid_grant"))

	_, _, err := ss.Login(context.Background(), bobAddr, "a.social", "bob@mail.example", "pw")
	assert.ErrorContains(t, err, "invalid_grant")
	acct, _ := h.repo.GetAccount(bobAddr)
	assert.Nil(t, acct)
}

func TestLoginLeavesHomeChatIfNotifChatFails(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))
	h.expectRemoteLogin("bob")
	h.mockSession.EXPECT().Notifications(gomock.Any(), "", "", 1).Return(nil, nil)
	h.mockSession.EXPECT().Home(gomock.Any(), "", "", 1).Return(nil, nil)
	h.mockChat.EXPECT().CreateGroup(gomock.Any(), "Home (a.social)", gomock.Any()).Return(int64(10), nil)
	h.mockChat.EXPECT().CreateGroup(gomock.Any(), "Notifications (a.social)", gomock.Any()).
		Return(int64(0), errors.New("gateway down"))
	h.mockChat.EXPECT().Leave(gomock.Any(), int64(10)).Return(nil)

	_, _, err := ss.Login(context.Background(), bobAddr, "a.social", "bob@mail.example", "pw")
	assert.NotNil(t, err)
	acct, _ := h.repo.GetAccount(bobAddr)
	assert.Nil(t, acct)
}

func TestLoginThenLogoutRestoresStore(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	ctx := context.Background()
	assert.Nil(t, h.repo.AddClient(&dal.Client{Url: instanceUrl, Id: "cid", Secret: "csecret"}))

	h.expectRemoteLogin("bob")
	h.expectStandingChats()
	_, acct, err := ss.Login(ctx, bobAddr, "a.social", "bob@mail.example", "pw")
	assert.Nil(t, err)

	// Some state accumulates while logged in
	alice := &dto.Account{Id: "3", Acct: "alice@b.social"}
	h.mockChat.EXPECT().CreateGroup(gomock.Any(), "alice@b.social", []string{bobAddr}).Return(int64(12), nil)
	h.mockChat.EXPECT().Send(gomock.Any(), int64(12), gomock.Any()).Return(nil)
	_, _, err = ss.GetOrCreateDmChat(ctx, acct, alice)
	assert.Nil(t, err)
	assert.Nil(t, h.repo.RecordDelivery(bobAddr, dal.FkHome, "801", "801", time.Now()))

	h.mockChat.EXPECT().Leave(gomock.Any(), int64(10)).Return(nil)
	h.mockChat.EXPECT().Leave(gomock.Any(), int64(11)).Return(errors.New("already gone"))
	h.mockChat.EXPECT().Leave(gomock.Any(), int64(12)).Return(nil)
	url, found, err := ss.Logout(ctx, bobAddr)
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, instanceUrl, url)

	stored, _ := h.repo.GetAccount(bobAddr)
	assert.Nil(t, stored)
	accts, _ := h.repo.GetAccounts()
	assert.Len(t, accts, 0)
	dmChats, _ := h.repo.GetDmChats(bobAddr)
	assert.Len(t, dmChats, 0)
	delivered, _ := h.repo.IsDelivered(bobAddr, dal.FkHome, "801")
	assert.False(t, delivered)
	byChat, _ := h.repo.GetAccountByChat(10)
	assert.Nil(t, byChat)
}

func TestLogoutNotLoggedIn(t *testing.T) {
	_, _, ss := setupSessionsTest(t)
	url, found, err := ss.Logout(context.Background(), bobAddr)
	assert.Nil(t, err)
	assert.False(t, found)
	assert.Equal(t, "", url)
}

func TestLogoutByChat(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	ctx := context.Background()
	h.addBob(instanceUrl, "bob")
	assert.Nil(t, h.repo.AddDmChat(&dal.DmChat{ChatId: 12, Contact: "alice@b.social", AccAddr: bobAddr}))

	// Leaving a DM chat only forgets that chat
	h.mockChat.EXPECT().Leave(gomock.Any(), int64(12)).Return(nil)
	addr, url, err := ss.LogoutByChat(ctx, 12)
	assert.Nil(t, err)
	assert.Equal(t, "", addr)
	assert.Equal(t, "", url)
	acct, _ := h.repo.GetAccount(bobAddr)
	assert.NotNil(t, acct)

	// Unknown chat: nothing to do
	addr, url, err = ss.LogoutByChat(ctx, 99)
	assert.Nil(t, err)
	assert.Equal(t, "", url)

	// Leaving the notifications chat logs out
	h.mockChat.EXPECT().Leave(gomock.Any(), int64(10)).Return(nil)
	h.mockChat.EXPECT().Leave(gomock.Any(), int64(11)).Return(nil)
	addr, url, err = ss.LogoutByChat(ctx, 11)
	assert.Nil(t, err)
	assert.Equal(t, bobAddr, addr)
	assert.Equal(t, instanceUrl, url)
	acct, _ = h.repo.GetAccount(bobAddr)
	assert.Nil(t, acct)
}

func TestGetOrCreateDmChat(t *testing.T) {
	_, h, ss := setupSessionsTest(t)
	ctx := context.Background()
	h.addBob(instanceUrl, "bob")
	acct, _ := h.repo.GetAccount(bobAddr)
	alice := &dto.Account{Id: "3", Acct: "alice@b.social", AvatarStatic: "https://b.social/alice.png"}

	h.mockChat.EXPECT().CreateGroup(gomock.Any(), "alice@b.social", []string{bobAddr}).Return(int64(12), nil)
	h.mockChat.EXPECT().SetAvatar(gomock.Any(), int64(12), "https://b.social/alice.png").Return(nil)
	h.mockChat.EXPECT().Send(gomock.Any(), int64(12), &dto.ChatMessage{
		Text: fakeTextWithVals("dm_intro.txt", map[string]string{"acct": "alice@b.social"}),
	}).Return(nil)

	chatId, isNew, err := ss.GetOrCreateDmChat(ctx, acct, alice)
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.Equal(t, int64(12), chatId)

	chatId, isNew, err = ss.GetOrCreateDmChat(ctx, acct, alice)
	assert.Nil(t, err)
	assert.False(t, isNew)
	assert.Equal(t, int64(12), chatId)
}
