package logic

import (
	"context"
	"errors"
	"fmt"
	"masto_bridge/dal"
	"masto_bridge/dto"
	"masto_bridge/shared"
	"masto_bridge/texts"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_sessions.go -package mocks masto_bridge/logic ISessions

type LoginStatus int32

const (
	LsNew              LoginStatus = 0
	LsRefreshed        LoginStatus = 1
	LsAlreadyLoggedIn  LoginStatus = -1
	LsMaxUsers         LoginStatus = -2
	LsMaxUsersInstance LoginStatus = -3
	LsInstanceBlocked  LoginStatus = -4
)

// ISessions owns the bridged accounts: credentials, and the chats that belong to each.
type ISessions interface {
	Get(addr string) (*dal.Account, error)
	Connect(acct *dal.Account) IMastoSession
	Login(ctx context.Context, addr, instance, user, password string) (LoginStatus, *dal.Account, error)
	Logout(ctx context.Context, addr string) (url string, found bool, err error)
	LogoutByChat(ctx context.Context, chatId int64) (addr, url string, err error)
	GetOrCreateDmChat(ctx context.Context, acct *dal.Account, contact *dto.Account) (chatId int64, isNew bool, err error)
}

type sessions struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	connector IMastoConnector
	chat      IChat
	blocked   IBlockedInstances
	txt       texts.ITexts
	metrics   IMetrics
}

func NewSessions(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	connector IMastoConnector,
	chat IChat,
	blocked IBlockedInstances,
	txt texts.ITexts,
	metrics IMetrics,
) ISessions {
	return &sessions{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		connector: connector,
		chat:      chat,
		blocked:   blocked,
		txt:       txt,
		metrics:   metrics,
	}
}

func (ss *sessions) Get(addr string) (*dal.Account, error) {
	return ss.repo.GetAccount(addr)
}

func (ss *sessions) Connect(acct *dal.Account) IMastoSession {
	return ss.connector.Connect(acct.Url, acct.Token)
}

func (ss *sessions) updateAccountCountMetric() {
	if total, _, err := ss.repo.CountAccounts(""); err == nil {
		ss.metrics.BridgedAccounts(total)
	}
}

func (ss *sessions) getClient(ctx context.Context, instanceUrl string) (*dal.Client, error) {
	client, err := ss.repo.GetClient(instanceUrl)
	if err != nil || client != nil {
		return client, err
	}
	ss.logger.Infof("Registering app at %s", instanceUrl)
	if client, err = ss.connector.RegisterApp(ctx, instanceUrl); err != nil {
		return nil, err
	}
	if err = ss.repo.AddClient(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (ss *sessions) Login(ctx context.Context, addr, instance, user, password string) (LoginStatus, *dal.Account, error) {

	var err error
	instanceUrl := shared.NormalizeUrl(instance)

	var isBlocked bool
	if isBlocked, err = ss.blocked.IsBlocked(instanceUrl); err != nil {
		return 0, nil, err
	}
	if isBlocked {
		ss.logger.Infof("Refusing login of %s from blocked instance %s", addr, instanceUrl)
		return LsInstanceBlocked, nil, nil
	}

	var existing *dal.Account
	if existing, err = ss.repo.GetAccount(addr); err != nil {
		return 0, nil, err
	}
	if existing != nil && existing.Url != instanceUrl {
		return LsAlreadyLoggedIn, existing, nil
	}
	if existing == nil {
		var total, onInstance int
		if total, onInstance, err = ss.repo.CountAccounts(instanceUrl); err != nil {
			return 0, nil, err
		}
		if ss.cfg.MaxUsers >= 0 && total >= ss.cfg.MaxUsers {
			return LsMaxUsers, nil, nil
		}
		if ss.cfg.MaxUsersInstance >= 0 && onInstance >= ss.cfg.MaxUsersInstance {
			return LsMaxUsersInstance, nil, nil
		}
	}

	var client *dal.Client
	if client, err = ss.getClient(ctx, instanceUrl); err != nil {
		return 0, nil, err
	}
	var token string
	if token, err = ss.connector.Login(ctx, client, user, password); err != nil {
		return 0, nil, err
	}
	session := ss.connector.Connect(instanceUrl, token)
	var me *dto.Account
	if me, err = session.Me(ctx); err != nil {
		return 0, nil, err
	}
	uname := strings.ToLower(me.Acct)

	if existing != nil {
		if existing.User != uname {
			return LsAlreadyLoggedIn, existing, nil
		}
		if err = ss.repo.UpdateToken(addr, token); err != nil {
			return 0, nil, err
		}
		existing.Token = token
		ss.logger.Infof("Refreshed credentials of %s on %s", addr, instanceUrl)
		return LsRefreshed, existing, nil
	}

	acct := &dal.Account{
		Addr:    addr,
		User:    uname,
		MastoId: me.Id,
		Url:     instanceUrl,
		Token:   token,
	}
	// Start from what is there now; no history dump on first poll
	if acct.LastNotif, err = startingWatermark(ctx, session, dal.FkNotif); err != nil {
		return 0, nil, err
	}
	if acct.LastHome, err = startingWatermark(ctx, session, dal.FkHome); err != nil {
		return 0, nil, err
	}

	if err = ss.createStandingChats(ctx, acct); err != nil {
		return 0, nil, err
	}
	if err = ss.repo.AddAccount(acct); err != nil {
		ss.leaveChats(ctx, acct.HomeChat, acct.NotifChat)
		if errors.Is(err, dal.ErrAccountExists) {
			return LsAlreadyLoggedIn, nil, nil
		}
		return 0, nil, err
	}
	ss.logger.Infof("New account: %s is %s on %s", addr, uname, instanceUrl)
	ss.updateAccountCountMetric()
	ss.introduceStandingChats(ctx, acct)

	return LsNew, acct, nil
}

func (ss *sessions) createStandingChats(ctx context.Context, acct *dal.Account) error {
	var err error
	host := shared.StripScheme(acct.Url)
	if acct.HomeChat, err = ss.chat.CreateGroup(ctx, fmt.Sprintf("Home (%s)", host), []string{acct.Addr}); err != nil {
		return err
	}
	if acct.NotifChat, err = ss.chat.CreateGroup(ctx, fmt.Sprintf("Notifications (%s)", host), []string{acct.Addr}); err != nil {
		ss.leaveChats(ctx, acct.HomeChat)
		return err
	}
	return nil
}

// Cosmetics after the account is stored; failures are only logged.
func (ss *sessions) introduceStandingChats(ctx context.Context, acct *dal.Account) {
	vals := map[string]string{"url": acct.Url}
	intros := []struct {
		chatId  int64
		snippet string
	}{
		{acct.HomeChat, "home_intro.txt"},
		{acct.NotifChat, "notif_intro.txt"},
	}
	for _, intro := range intros {
		if ss.cfg.ChatAvatarUrl != "" {
			if err := ss.chat.SetAvatar(ctx, intro.chatId, ss.cfg.ChatAvatarUrl); err != nil {
				ss.logger.Warnf("Failed to set avatar of chat %d: %v", intro.chatId, err)
			}
		}
		msg := &dto.ChatMessage{Text: ss.txt.WithVals(intro.snippet, vals)}
		if err := ss.chat.Send(ctx, intro.chatId, msg); err != nil {
			ss.logger.Warnf("Failed to send intro to chat %d: %v", intro.chatId, err)
		}
	}
}

func (ss *sessions) leaveChats(ctx context.Context, chatIds ...int64) {
	for _, chatId := range chatIds {
		if chatId == 0 {
			continue
		}
		if err := ss.chat.Leave(ctx, chatId); err != nil {
			ss.logger.Warnf("Failed to leave chat %d: %v", chatId, err)
		}
	}
}

func (ss *sessions) Logout(ctx context.Context, addr string) (string, bool, error) {

	acct, err := ss.repo.GetAccount(addr)
	if err != nil {
		return "", false, err
	}
	if acct == nil {
		return "", false, nil
	}
	var dmChatIds []int64
	if dmChatIds, err = ss.repo.DeleteAccount(addr); err != nil {
		return "", false, err
	}
	ss.logger.Infof("Account logged out: %s from %s", addr, acct.Url)
	ss.updateAccountCountMetric()

	ss.leaveChats(ctx, append(dmChatIds, acct.HomeChat, acct.NotifChat)...)
	return acct.Url, true, nil
}

func (ss *sessions) LogoutByChat(ctx context.Context, chatId int64) (string, string, error) {

	acct, err := ss.repo.GetAccountByChat(chatId)
	if err != nil {
		return "", "", err
	}
	if acct != nil {
		url, _, err := ss.Logout(ctx, acct.Addr)
		return acct.Addr, url, err
	}

	var dmChat *dal.DmChat
	if dmChat, err = ss.repo.GetDmChatById(chatId); err != nil || dmChat == nil {
		return "", "", err
	}
	if err = ss.repo.DeleteDmChat(chatId); err != nil {
		return "", "", err
	}
	ss.logger.Infof("DM chat with %s removed by %s", dmChat.Contact, dmChat.AccAddr)
	ss.leaveChats(ctx, chatId)
	return "", "", nil
}

func (ss *sessions) GetOrCreateDmChat(ctx context.Context, acct *dal.Account, contact *dto.Account) (int64, bool, error) {

	dmChat, err := ss.repo.GetDmChat(acct.Addr, contact.Acct)
	if err != nil {
		return 0, false, err
	}
	if dmChat != nil {
		return dmChat.ChatId, false, nil
	}

	var chatId int64
	if chatId, err = ss.chat.CreateGroup(ctx, contact.Acct, []string{acct.Addr}); err != nil {
		return 0, false, err
	}
	err = ss.repo.AddDmChat(&dal.DmChat{ChatId: chatId, Contact: contact.Acct, AccAddr: acct.Addr})
	if err != nil {
		ss.leaveChats(ctx, chatId)
		return 0, false, err
	}

	if contact.AvatarStatic != "" {
		if err = ss.chat.SetAvatar(ctx, chatId, contact.AvatarStatic); err != nil {
			ss.logger.Warnf("Failed to set avatar of DM chat with %s: %v", contact.Acct, err)
		}
	}
	intro := &dto.ChatMessage{Text: ss.txt.WithVals("dm_intro.txt", map[string]string{"acct": contact.Acct})}
	if err = ss.chat.Send(ctx, chatId, intro); err != nil {
		ss.logger.Warnf("Failed to send DM chat intro: %v", err)
	}
	return chatId, true, nil
}
