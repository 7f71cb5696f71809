package logic

import (
	"context"
	"fmt"
	"masto_bridge/dal"
	"masto_bridge/dto"
	"masto_bridge/shared"
	"masto_bridge/texts"
	"os"
	"slices"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_dispatcher.go -package mocks masto_bridge/logic IDispatcher

const (
	profileStatusCount = 10
	timelineCount      = 20
	threadAncestors    = 3
)

const (
	msgWrongUsage        = "❌ Wrong usage"
	msgNotLoggedIn       = "❌ You are not logged in"
	msgAlreadyLoggedIn   = "❌ You are already logged in."
	msgRefreshed         = "✔️ You refreshed your credentials."
	msgMaxUsers          = "❌ No more users allowed in this bot."
	msgMaxUsersInstance  = "❌ No more users from %s allowed in this bot"
	msgInstanceBlocked   = "❌ Logins from %s are not allowed in this bot"
	msgLoggedOut         = "✔️ You logged out from: %s"
	msgChatExists        = "❌ Chat already exists, send messages here"
	msgAccountNotFound   = "❌ Account not found: %s"
	msgInvalidUser       = "❌ Invalid user"
	msgNothingFound      = "❌ Nothing found"
	msgBioUpdated        = "✔️ Biography updated"
	msgAvatarUpdated     = "✔️ Avatar updated"
	msgAvatarMissing     = "❌ You must send an avatar attached to your message"
	msgPublishInHomeChat = "❌ To publish messages you must send them in your Home chat."
	msgUnknownCommand    = "❌ Unknown command: /%s%s. Send /%shelp to see what I understand."
	msgError             = "❌ ERROR: %s"
)

var accountActionReplies = map[AccountAction]string{
	AaFollow:   "✔️ User followed",
	AaUnfollow: "✔️ User unfollowed",
	AaMute:     "✔️ User muted",
	AaUnmute:   "✔️ User unmuted",
	AaBlock:    "✔️ User blocked",
	AaUnblock:  "✔️ User unblocked",
}

// IDispatcher acts on everything the chat gateway tells us: commands, text to publish, members leaving.
type IDispatcher interface {
	Handle(ctx context.Context, evt *dto.ChatEvent)
}

// request is one incoming command in the making.
type request struct {
	ctx     context.Context
	evt     *dto.ChatEvent
	payload string
}

type cmdHandler func(req *request) error

type dispatcher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	sessions ISessions
	chat     IChat
	fetcher  IFileFetcher
	txt      texts.ITexts
	metrics  IMetrics
	commands map[string]cmdHandler
}

func NewDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	sessions ISessions,
	chat IChat,
	fetcher IFileFetcher,
	txt texts.ITexts,
	metrics IMetrics,
) IDispatcher {
	d := &dispatcher{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		sessions: sessions,
		chat:     chat,
		fetcher:  fetcher,
		txt:      txt,
		metrics:  metrics,
	}
	d.commands = map[string]cmdHandler{
		"help":     d.cmdHelp,
		"login":    d.cmdLogin,
		"logout":   d.cmdLogout,
		"dm":       d.cmdDm,
		"reply":    d.cmdReply,
		"boost":    d.statusAction(IMastoSession.Boost),
		"unboost":  d.statusAction(IMastoSession.Unboost),
		"star":     d.statusAction(IMastoSession.Star),
		"unstar":   d.statusAction(IMastoSession.Unstar),
		"open":     d.cmdOpen,
		"profile":  d.cmdProfile,
		"follow":   d.accountAction(AaFollow),
		"unfollow": d.accountAction(AaUnfollow),
		"mute":     d.accountAction(AaMute),
		"unmute":   d.accountAction(AaUnmute),
		"block":    d.accountAction(AaBlock),
		"unblock":  d.accountAction(AaUnblock),
		"bio":      d.cmdBio,
		"avatar":   d.cmdAvatar,
		"local":    d.cmdTimeline(true),
		"public":   d.cmdTimeline(false),
		"tag":      d.cmdTag,
		"search":   d.cmdSearch,
	}
	return d
}

func (d *dispatcher) isKnown(name string) bool {
	_, ok := d.commands[name]
	return ok
}

func (d *dispatcher) Handle(ctx context.Context, evt *dto.ChatEvent) {

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("Handling chat event panicked: %v", r)
		}
	}()

	switch evt.Type {
	case dto.CetMessage:
		d.handleMessage(ctx, evt)
	case dto.CetMemberRemoved:
		d.handleMemberRemoved(ctx, evt)
	default:
		d.logger.Debugf("Ignoring chat event of type '%s'", evt.Type)
	}
}

func (d *dispatcher) handleMessage(ctx context.Context, evt *dto.ChatEvent) {

	pc := ParseCommand(evt.Text, d.cfg.CmdPrefix, d.isKnown)
	switch pc.Status {
	case PcNotCommand:
		d.publish(ctx, evt)
	case PcUnknown:
		d.metrics.CommandHandled("unknown")
		d.reply(ctx, evt, fmt.Sprintf(msgUnknownCommand, d.cfg.CmdPrefix, pc.Name, d.cfg.CmdPrefix))
	case PcKnown:
		d.metrics.CommandHandled(pc.Name)
		d.logger.Infof("Command from %s: %s", evt.Sender, pc.Name)
		req := &request{ctx: ctx, evt: evt, payload: pc.Payload}
		if err := d.commands[pc.Name](req); err != nil {
			d.logger.Warnf("Command %s from %s failed: %v", pc.Name, evt.Sender, err)
			d.replyError(ctx, evt, err)
		}
	}
}

func (d *dispatcher) handleMemberRemoved(ctx context.Context, evt *dto.ChatEvent) {

	// Someone other than us left, but the user is still there
	if !evt.SelfRemoved && evt.RemainingMembers > 1 {
		return
	}
	addr, url, err := d.sessions.LogoutByChat(ctx, evt.ChatId)
	if err != nil {
		d.logger.Errorf("Failed to clean up after member left chat %d: %v", evt.ChatId, err)
		return
	}
	if url == "" {
		return
	}
	if err = d.chat.SendToContact(ctx, addr, fmt.Sprintf(msgLoggedOut, url)); err != nil {
		d.logger.Warnf("Failed to notify %s of logout: %v", addr, err)
	}
}

func (d *dispatcher) reply(ctx context.Context, evt *dto.ChatEvent, text string) {
	msg := &dto.ChatMessage{Text: text, QuoteMsgId: evt.MsgId}
	if err := d.chat.Send(ctx, evt.ChatId, msg); err != nil {
		d.logger.Warnf("Failed to reply in chat %d: %v", evt.ChatId, err)
	}
}

func (d *dispatcher) replyError(ctx context.Context, evt *dto.ChatEvent, err error) {
	d.reply(ctx, evt, fmt.Sprintf(msgError, shared.TruncateWithEllipsis(err.Error(), shared.MaxErrorLen)))
}

func (d *dispatcher) sendStatuses(ctx context.Context, chatId int64, statuses []*dto.Status) error {
	for _, s := range statuses {
		if err := d.chat.Send(ctx, chatId, RenderStatus(s, d.cfg.CmdPrefix)); err != nil {
			return err
		}
	}
	return nil
}

// getSession replies and returns false if the sender has no account.
func (d *dispatcher) getSession(req *request) (*dal.Account, IMastoSession, bool, error) {
	acct, err := d.sessions.Get(req.evt.Sender)
	if err != nil {
		return nil, nil, false, err
	}
	if acct == nil {
		d.reply(req.ctx, req.evt, msgNotLoggedIn)
		return nil, nil, false, nil
	}
	return acct, d.sessions.Connect(acct), true, nil
}

// resolveUser takes an account ID, or a full or local acct with or without the leading @.
func resolveUser(ctx context.Context, session IMastoSession, user string) (*dto.Account, error) {
	user = strings.TrimSpace(user)
	if shared.IsNumeric(user) {
		return session.Account(ctx, user)
	}
	user = shared.NormalizeAcct(user)
	if user == "" {
		return nil, nil
	}
	localPart := strings.Split(user, "@")[0]
	accts, err := session.SearchAccounts(ctx, user, defaultPageSize)
	if err != nil {
		return nil, err
	}
	for _, a := range accts {
		acct := strings.ToLower(a.Acct)
		if acct == user || acct == localPart {
			return a, nil
		}
	}
	return nil, nil
}

func (d *dispatcher) cmdHelp(req *request) error {
	d.reply(req.ctx, req.evt, d.txt.WithVals("help.txt", map[string]string{"p": d.cfg.CmdPrefix}))
	return nil
}

func (d *dispatcher) cmdLogin(req *request) error {

	args := SplitArgs(req.payload, 3)
	if len(args) != 3 {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	status, _, err := d.sessions.Login(req.ctx, req.evt.Sender, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	switch status {
	case LsAlreadyLoggedIn:
		d.reply(req.ctx, req.evt, msgAlreadyLoggedIn)
	case LsRefreshed:
		d.reply(req.ctx, req.evt, msgRefreshed)
	case LsMaxUsers:
		d.reply(req.ctx, req.evt, msgMaxUsers)
	case LsMaxUsersInstance:
		d.reply(req.ctx, req.evt, fmt.Sprintf(msgMaxUsersInstance, shared.NormalizeUrl(args[0])))
	case LsInstanceBlocked:
		d.reply(req.ctx, req.evt, fmt.Sprintf(msgInstanceBlocked, shared.NormalizeUrl(args[0])))
	}
	return nil
}

func (d *dispatcher) cmdLogout(req *request) error {
	url, found, err := d.sessions.Logout(req.ctx, req.evt.Sender)
	if err != nil {
		return err
	}
	if !found {
		d.reply(req.ctx, req.evt, msgNotLoggedIn)
		return nil
	}
	// The chat we got the command in may be one of those we just left
	return d.chat.SendToContact(req.ctx, req.evt.Sender, fmt.Sprintf(msgLoggedOut, url))
}

func (d *dispatcher) cmdDm(req *request) error {

	if req.payload == "" {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	acct, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var user *dto.Account
	if user, err = resolveUser(req.ctx, session, req.payload); err != nil {
		return err
	}
	if user == nil {
		d.reply(req.ctx, req.evt, fmt.Sprintf(msgAccountNotFound, shared.NormalizeAcct(req.payload)))
		return nil
	}
	chatId, isNew, err := d.sessions.GetOrCreateDmChat(req.ctx, acct, user)
	if err != nil {
		return err
	}
	if !isNew {
		return d.chat.Send(req.ctx, chatId, &dto.ChatMessage{Text: msgChatExists})
	}
	return nil
}

// Replies mention the author and everyone else in the thread except ourselves, and keep its visibility.
func replyHead(acct *dal.Account, parent *dto.Status) string {
	var sb strings.Builder
	seen := map[string]bool{acct.MastoId: true}
	add := func(id, handle string) {
		if seen[id] {
			return
		}
		seen[id] = true
		sb.WriteString("@" + handle + " ")
	}
	add(parent.Account.Id, parent.Account.Acct)
	for _, m := range parent.Mentions {
		add(m.Id, m.Acct)
	}
	return sb.String()
}

func (d *dispatcher) cmdReply(req *request) error {

	args := SplitArgs(req.payload, 2)
	if len(args) != 2 && !(len(args) == 1 && req.evt.FileUrl != "") {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	acct, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var parent *dto.Status
	if parent, err = session.Status(req.ctx, args[0]); err != nil {
		return err
	}
	text := ""
	if len(args) == 2 {
		text = args[1]
	}
	ns := &dto.NewStatus{
		Text:        replyHead(acct, parent) + text,
		InReplyToId: parent.Id,
		Visibility:  parent.Visibility,
	}
	return d.post(req.ctx, session, ns, req.evt.FileUrl)
}

func (d *dispatcher) statusAction(action func(IMastoSession, context.Context, string) error) cmdHandler {
	return func(req *request) error {
		args := SplitArgs(req.payload, 1)
		if len(args) == 0 {
			d.reply(req.ctx, req.evt, msgWrongUsage)
			return nil
		}
		_, session, ok, err := d.getSession(req)
		if !ok {
			return err
		}
		return action(session, req.ctx, args[0])
	}
}

func (d *dispatcher) cmdOpen(req *request) error {

	args := SplitArgs(req.payload, 1)
	if len(args) == 0 {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	_, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var ancestors []*dto.Status
	if ancestors, err = session.Ancestors(req.ctx, args[0]); err != nil {
		return err
	}
	if len(ancestors) == 0 {
		d.reply(req.ctx, req.evt, msgNothingFound)
		return nil
	}
	if len(ancestors) > threadAncestors {
		ancestors = ancestors[len(ancestors)-threadAncestors:]
	}
	return d.sendStatuses(req.ctx, req.evt.ChatId, ancestors)
}

func (d *dispatcher) cmdProfile(req *request) error {

	_, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var me, user *dto.Account
	if me, err = session.Me(req.ctx); err != nil {
		return err
	}
	user = me
	if req.payload != "" {
		if user, err = resolveUser(req.ctx, session, req.payload); err != nil {
			return err
		}
		if user == nil {
			d.reply(req.ctx, req.evt, msgInvalidUser)
			return nil
		}
	}
	var rel *dto.Relationship
	if user.Id != me.Id {
		if rel, err = session.Relationship(req.ctx, user.Id); err != nil {
			return err
		}
	}
	d.reply(req.ctx, req.evt, RenderProfile(user, rel, d.cfg.CmdPrefix))

	var statuses []*dto.Status
	if statuses, err = session.AccountStatuses(req.ctx, user.Id, profileStatusCount); err != nil {
		return err
	}
	slices.Reverse(statuses)
	return d.sendStatuses(req.ctx, req.evt.ChatId, statuses)
}

func (d *dispatcher) accountAction(action AccountAction) cmdHandler {
	return func(req *request) error {
		if req.payload == "" {
			d.reply(req.ctx, req.evt, msgWrongUsage)
			return nil
		}
		_, session, ok, err := d.getSession(req)
		if !ok {
			return err
		}
		userId := strings.TrimSpace(req.payload)
		if !shared.IsNumeric(userId) {
			var user *dto.Account
			if user, err = resolveUser(req.ctx, session, userId); err != nil {
				return err
			}
			if user == nil {
				d.reply(req.ctx, req.evt, msgInvalidUser)
				return nil
			}
			userId = user.Id
		}
		if err = session.AccountAction(req.ctx, action, userId); err != nil {
			return err
		}
		d.reply(req.ctx, req.evt, accountActionReplies[action])
		return nil
	}
}

func (d *dispatcher) cmdBio(req *request) error {
	if req.payload == "" {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	_, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	if err = session.UpdateNote(req.ctx, req.payload); err != nil {
		return err
	}
	d.reply(req.ctx, req.evt, msgBioUpdated)
	return nil
}

func (d *dispatcher) cmdAvatar(req *request) error {
	if req.evt.FileUrl == "" {
		d.reply(req.ctx, req.evt, msgAvatarMissing)
		return nil
	}
	_, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var path string
	if path, err = d.fetcher.Fetch(req.ctx, req.evt.FileUrl); err != nil {
		return err
	}
	defer os.Remove(path)
	if err = session.UpdateAvatar(req.ctx, path); err != nil {
		return err
	}
	d.reply(req.ctx, req.evt, msgAvatarUpdated)
	return nil
}

func (d *dispatcher) listStatuses(req *request, get func(session IMastoSession) ([]*dto.Status, error)) error {
	_, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var statuses []*dto.Status
	if statuses, err = get(session); err != nil {
		return err
	}
	if len(statuses) == 0 {
		d.reply(req.ctx, req.evt, msgNothingFound)
		return nil
	}
	slices.Reverse(statuses)
	return d.sendStatuses(req.ctx, req.evt.ChatId, statuses)
}

func (d *dispatcher) cmdTimeline(local bool) cmdHandler {
	return func(req *request) error {
		return d.listStatuses(req, func(session IMastoSession) ([]*dto.Status, error) {
			return session.Timeline(req.ctx, local, timelineCount)
		})
	}
}

func (d *dispatcher) cmdTag(req *request) error {
	tag := strings.TrimLeft(strings.TrimSpace(req.payload), "#")
	if tag == "" {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	return d.listStatuses(req, func(session IMastoSession) ([]*dto.Status, error) {
		return session.Hashtag(req.ctx, tag, timelineCount)
	})
}

func (d *dispatcher) cmdSearch(req *request) error {
	if req.payload == "" {
		d.reply(req.ctx, req.evt, msgWrongUsage)
		return nil
	}
	_, session, ok, err := d.getSession(req)
	if !ok {
		return err
	}
	var res *dto.SearchResults
	if res, err = session.Search(req.ctx, req.payload); err != nil {
		return err
	}
	text := RenderSearch(res, d.cfg.CmdPrefix)
	if text == "" {
		text = msgNothingFound
	}
	d.reply(req.ctx, req.evt, text)
	return nil
}

// publish turns plain text in a Home or DM chat into a toot.
func (d *dispatcher) publish(ctx context.Context, evt *dto.ChatEvent) {

	if !evt.IsGroup {
		d.reply(ctx, evt, msgPublishInHomeChat)
		return
	}
	if strings.TrimSpace(evt.Text) == "" && evt.FileUrl == "" {
		return
	}

	var ns *dto.NewStatus
	acct, err := d.repo.GetAccountByChat(evt.ChatId)
	if err != nil {
		d.logger.Errorf("Failed to look up chat %d: %v", evt.ChatId, err)
		return
	}
	if acct != nil {
		if acct.NotifChat == evt.ChatId {
			d.reply(ctx, evt, msgPublishInHomeChat)
			return
		}
		ns = &dto.NewStatus{Text: evt.Text}
	} else {
		var dmChat *dal.DmChat
		if dmChat, err = d.repo.GetDmChatById(evt.ChatId); err != nil {
			d.logger.Errorf("Failed to look up DM chat %d: %v", evt.ChatId, err)
			return
		}
		if dmChat == nil {
			d.reply(ctx, evt, msgPublishInHomeChat)
			return
		}
		if acct, err = d.repo.GetAccount(dmChat.AccAddr); err != nil || acct == nil {
			d.logger.Errorf("Failed to get owner of DM chat %d: %v", evt.ChatId, err)
			return
		}
		ns = &dto.NewStatus{
			Text:       fmt.Sprintf("@%s %s", dmChat.Contact, evt.Text),
			Visibility: dto.VisDirect,
		}
	}
	if acct.Addr != evt.Sender {
		d.logger.Warnf("Ignoring message from %s in chat %d of %s", evt.Sender, evt.ChatId, acct.Addr)
		return
	}

	if err = d.post(ctx, d.sessions.Connect(acct), ns, evt.FileUrl); err != nil {
		d.logger.Warnf("Failed to publish for %s: %v", acct.Addr, err)
		d.replyError(ctx, evt, err)
	}
}

func (d *dispatcher) post(ctx context.Context, session IMastoSession, ns *dto.NewStatus, fileUrl string) error {
	if fileUrl != "" {
		path, err := d.fetcher.Fetch(ctx, fileUrl)
		if err != nil {
			return err
		}
		defer os.Remove(path)
		ns.MediaFile = path
	}
	_, err := session.Post(ctx, ns)
	return err
}
