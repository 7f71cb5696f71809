package logic

import (
	"context"
	"errors"
	"fmt"
	"masto_bridge/dal"
	"masto_bridge/dto"
	"masto_bridge/shared"
	"slices"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_poller.go -package mocks masto_bridge/logic IPoller

const pollPanicSleepSec = 10

// IPoller forwards new home posts and notifications of every bridged account into its chats.
type IPoller interface {
	Run(ctx context.Context)
	PollAll(ctx context.Context)
	PollAccount(ctx context.Context, acct *dal.Account) error
}

type poller struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	sessions ISessions
	chat     IChat
	metrics  IMetrics
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration)
}

func NewPoller(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	sessions ISessions,
	chat IChat,
	metrics IMetrics,
) IPoller {
	return &poller{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		sessions: sessions,
		chat:     chat,
		metrics:  metrics,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (p *poller) Run(ctx context.Context) {
	p.logger.Infof("Poll loop starting")
	for ctx.Err() == nil {
		p.pollLoopInner(ctx)
		p.sleep(ctx, time.Second*time.Duration(p.cfg.DelaySec))
	}
	p.logger.Infof("Poll loop stopped")
}

func (p *poller) pollLoopInner(ctx context.Context) {

	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorf("Poll cycle panicked: %v", r)
			p.logger.Infof("Sleeping %d seconds after panic", pollPanicSleepSec)
			p.sleep(ctx, time.Second*pollPanicSleepSec)
		}
	}()

	p.PollAll(ctx)
	p.purgeDelivered()
}

func (p *poller) purgeDelivered() {
	if p.cfg.DeliveredRetentionDays <= 0 {
		return
	}
	before := p.now().AddDate(0, 0, -p.cfg.DeliveredRetentionDays)
	count, err := p.repo.PurgeDelivered(before)
	if err != nil {
		p.logger.Errorf("Failed to purge delivery log: %v", err)
		return
	}
	if count != 0 {
		p.logger.Debugf("Purged %d entries from delivery log", count)
	}
}

// interleave takes one account per instance in each round, so no instance gets hit in a burst.
func interleave(accts []*dal.Account) [][]*dal.Account {
	var order []string
	byInstance := map[string][]*dal.Account{}
	for _, acct := range accts {
		if _, ok := byInstance[acct.Url]; !ok {
			order = append(order, acct.Url)
		}
		byInstance[acct.Url] = append(byInstance[acct.Url], acct)
	}
	var rounds [][]*dal.Account
	for i := 0; ; i++ {
		var round []*dal.Account
		for _, url := range order {
			if i < len(byInstance[url]) {
				round = append(round, byInstance[url][i])
			}
		}
		if len(round) == 0 {
			return rounds
		}
		rounds = append(rounds, round)
	}
}

func (p *poller) PollAll(ctx context.Context) {

	obs := p.metrics.StartPollCycle()
	defer obs.Finish()

	accts, err := p.repo.GetAccounts()
	if err != nil {
		p.logger.Errorf("Failed to load accounts to poll: %v", err)
		return
	}
	p.metrics.BridgedAccounts(len(accts))
	p.logger.Debugf("Polling %d accounts", len(accts))

	rounds := interleave(accts)
	for i, round := range rounds {
		if i != 0 {
			p.sleep(ctx, time.Millisecond*time.Duration(p.cfg.RoundPauseMsec))
		}
		for _, acct := range round {
			if ctx.Err() != nil {
				return
			}
			// Errors are logged and counted inside; the user never sees them
			_ = p.PollAccount(ctx, acct)
		}
	}
}

func (p *poller) PollAccount(ctx context.Context, acct *dal.Account) error {
	session := p.sessions.Connect(acct)
	errNotif := p.pollFeed(ctx, acct, session, dal.FkNotif)
	errHome := p.pollFeed(ctx, acct, session, dal.FkHome)
	return errors.Join(errNotif, errHome)
}

func (p *poller) pollFeed(ctx context.Context, acct *dal.Account, session IMastoSession, kind dal.FeedKind) error {
	var err error
	if acct.Watermark(kind) == "" {
		err = p.baseline(ctx, acct, session, kind)
	} else if kind == dal.FkNotif {
		err = p.pollNotifications(ctx, acct, session)
	} else {
		err = p.pollHome(ctx, acct, session)
	}
	if err != nil {
		p.metrics.PollFailed(string(kind))
		p.logger.Errorf("Failed to poll %s feed of %s: %v", kind, acct.Addr, err)
	}
	return err
}

// newestId is the ID of the latest item in a feed, or empty string if the feed is empty.
func newestId(ctx context.Context, session IMastoSession, kind dal.FeedKind) (string, error) {
	if kind == dal.FkNotif {
		notifs, err := session.Notifications(ctx, "", "", 1)
		if err != nil || len(notifs) == 0 {
			return "", err
		}
		return notifs[0].Id, nil
	}
	statuses, err := session.Home(ctx, "", "", 1)
	if err != nil || len(statuses) == 0 {
		return "", err
	}
	return statuses[0].Id, nil
}

// startingWatermark is where a feed seen for the first time starts: past everything already in it.
func startingWatermark(ctx context.Context, session IMastoSession, kind dal.FeedKind) (string, error) {
	id, err := newestId(ctx, session, kind)
	if err == nil && id == "" {
		id = dal.WatermarkStart
	}
	return id, err
}

// Accounts stored without a watermark skip the backlog once, then get everything after it.
func (p *poller) baseline(ctx context.Context, acct *dal.Account, session IMastoSession, kind dal.FeedKind) error {
	id, err := startingWatermark(ctx, session, kind)
	if err != nil {
		return err
	}
	if err = p.repo.AdvanceWatermark(acct.Addr, kind, id); err != nil {
		return err
	}
	setWatermark(acct, kind, id)
	p.logger.Debugf("Baselined %s feed of %s at %s", kind, acct.Addr, id)
	return nil
}

func setWatermark(acct *dal.Account, kind dal.FeedKind, id string) {
	if kind == dal.FkHome {
		acct.LastHome = id
	} else {
		acct.LastNotif = id
	}
}

// fetchAll pages backwards from the newest item down to the watermark, and returns items oldest first.
func fetchAll[T any](
	ctx context.Context,
	since string,
	getPage func(ctx context.Context, sinceId, maxId string, limit int) ([]T, error),
	getId func(T) string,
) ([]T, error) {
	var res []T
	maxId := ""
	for {
		items, err := getPage(ctx, since, maxId, defaultPageSize)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		res = append(res, items...)
		oldest := getId(items[len(items)-1])
		if maxId != "" && !shared.IsNewerId(maxId, oldest) {
			return nil, fmt.Errorf("paging did not progress past %s", maxId)
		}
		maxId = oldest
	}
	slices.Reverse(res)
	return res, nil
}

func (p *poller) pollNotifications(ctx context.Context, acct *dal.Account, session IMastoSession) error {

	notifs, err := fetchAll(ctx, acct.LastNotif, session.Notifications,
		func(n *dto.Notification) string { return n.Id })
	if err != nil {
		return err
	}
	p.logger.Debugf("Notifications of %s: %d new entries (last id: %s)", acct.Addr, len(notifs), acct.LastNotif)

	for _, n := range notifs {
		if !shared.IsNewerId(n.Id, acct.LastNotif) {
			continue
		}
		chatId := acct.NotifChat
		var msg *dto.ChatMessage
		if isDirectMessage(n) {
			if chatId, _, err = p.sessions.GetOrCreateDmChat(ctx, acct, &n.Status.Account); err != nil {
				return err
			}
			msg = RenderDirect(n.Status, p.cfg.CmdPrefix)
		} else {
			msg = RenderNotification(n, p.cfg.CmdPrefix)
		}
		if err = p.deliver(ctx, acct, dal.FkNotif, n.Id, n.Id, chatId, msg); err != nil {
			return err
		}
	}
	return nil
}

func isDirectMessage(n *dto.Notification) bool {
	return n.Type == dto.NtMention &&
		n.Status != nil &&
		n.Status.Visibility == dto.VisDirect &&
		len(n.Status.Mentions) == 1
}

func (p *poller) pollHome(ctx context.Context, acct *dal.Account, session IMastoSession) error {

	statuses, err := fetchAll(ctx, acct.LastHome, session.Home,
		func(s *dto.Status) string { return s.Id })
	if err != nil {
		return err
	}
	p.logger.Debugf("Home of %s: %d new entries (last id: %s)", acct.Addr, len(statuses), acct.LastHome)

	for _, s := range statuses {
		if !shared.IsNewerId(s.Id, acct.LastHome) {
			continue
		}
		var msg *dto.ChatMessage
		// Those come as notifications
		if !mentions(s, acct.MastoId) {
			msg = RenderStatus(s, p.cfg.CmdPrefix)
		}
		if err = p.deliver(ctx, acct, dal.FkHome, s.Id, shownPostId(s), acct.HomeChat, msg); err != nil {
			return err
		}
	}
	return nil
}

// A boost shows the boosted post, so the same post can reach the home feed more than once.
func shownPostId(s *dto.Status) string {
	if s.Reblog != nil {
		return s.Reblog.Id
	}
	return s.Id
}

func mentions(s *dto.Status, mastoId string) bool {
	for _, m := range s.Mentions {
		if m.Id == mastoId {
			return true
		}
	}
	return false
}

// deliver sends one item and moves the watermark past it. A nil msg only moves the watermark,
// and so does a key already in the delivery log.
func (p *poller) deliver(
	ctx context.Context,
	acct *dal.Account,
	kind dal.FeedKind,
	itemId string,
	key string,
	chatId int64,
	msg *dto.ChatMessage,
) error {

	var err error
	skip := msg == nil
	if !skip {
		if skip, err = p.repo.IsDelivered(acct.Addr, kind, key); err != nil {
			return err
		}
		if skip {
			p.logger.Debugf("Skipping %s item %s of %s: %s already shown", kind, itemId, acct.Addr, key)
		}
	}
	if skip {
		if err = p.repo.AdvanceWatermark(acct.Addr, kind, itemId); err != nil {
			return err
		}
		setWatermark(acct, kind, itemId)
		return nil
	}

	if err = p.chat.Send(ctx, chatId, msg); err != nil {
		return err
	}
	if err = p.repo.RecordDelivery(acct.Addr, kind, itemId, key, p.now()); err != nil {
		return err
	}
	setWatermark(acct, kind, itemId)
	p.metrics.ItemDelivered(string(kind))
	return nil
}
