package logic

import (
	"context"
	"encoding/base64"
	"fmt"
	"github.com/mattn/go-mastodon"
	"masto_bridge/dal"
	"masto_bridge/dto"
	"masto_bridge/shared"
	"net/http"
	"os"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_masto.go -package mocks masto_bridge/logic IMastoConnector,IMastoSession

const (
	oauthScopes      = "read write follow"
	oauthRedirectUri = "urn:ietf:wg:oauth:2.0:oob"
	defaultPageSize  = 40
)

type AccountAction string

const (
	AaFollow   AccountAction = "follow"
	AaUnfollow AccountAction = "unfollow"
	AaMute     AccountAction = "mute"
	AaUnmute   AccountAction = "unmute"
	AaBlock    AccountAction = "block"
	AaUnblock  AccountAction = "unblock"
)

// IMastoConnector registers the bridge with instances and opens API sessions.
type IMastoConnector interface {
	RegisterApp(ctx context.Context, instanceUrl string) (*dal.Client, error)
	Login(ctx context.Context, client *dal.Client, user, password string) (token string, err error)
	Connect(instanceUrl, token string) IMastoSession
}

// IMastoSession is one authenticated account on one instance.
type IMastoSession interface {
	Me(ctx context.Context) (*dto.Account, error)
	Home(ctx context.Context, sinceId, maxId string, limit int) ([]*dto.Status, error)
	Notifications(ctx context.Context, sinceId, maxId string, limit int) ([]*dto.Notification, error)
	Status(ctx context.Context, id string) (*dto.Status, error)
	Ancestors(ctx context.Context, id string) ([]*dto.Status, error)
	Post(ctx context.Context, status *dto.NewStatus) (*dto.Status, error)
	Boost(ctx context.Context, id string) error
	Unboost(ctx context.Context, id string) error
	Star(ctx context.Context, id string) error
	Unstar(ctx context.Context, id string) error
	Account(ctx context.Context, id string) (*dto.Account, error)
	SearchAccounts(ctx context.Context, query string, limit int) ([]*dto.Account, error)
	AccountStatuses(ctx context.Context, id string, limit int) ([]*dto.Status, error)
	Relationship(ctx context.Context, id string) (*dto.Relationship, error)
	AccountAction(ctx context.Context, action AccountAction, id string) error
	UpdateNote(ctx context.Context, note string) error
	UpdateAvatar(ctx context.Context, imagePath string) error
	Timeline(ctx context.Context, local bool, limit int) ([]*dto.Status, error)
	Hashtag(ctx context.Context, tag string, limit int) ([]*dto.Status, error)
	Search(ctx context.Context, query string) (*dto.SearchResults, error)
}

type mastoConnector struct {
	cfg       *shared.Config
	userAgent shared.IUserAgent
}

func NewMastoConnector(cfg *shared.Config, userAgent shared.IUserAgent) IMastoConnector {
	return &mastoConnector{cfg, userAgent}
}

func (mc *mastoConnector) newClient(config *mastodon.Config) *mastodon.Client {
	client := mastodon.NewClient(config)
	client.Timeout = time.Second * time.Duration(mc.cfg.HttpTimeoutSec)
	client.UserAgent = mc.userAgent.Value()
	return client
}

func (mc *mastoConnector) RegisterApp(ctx context.Context, instanceUrl string) (*dal.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*time.Duration(mc.cfg.HttpTimeoutSec))
	defer cancel()
	app, err := mastodon.RegisterApp(ctx, &mastodon.AppConfig{
		Server:       instanceUrl,
		ClientName:   mc.cfg.AppName,
		Scopes:       oauthScopes,
		Website:      mc.cfg.AppWebsite,
		RedirectURIs: oauthRedirectUri,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register app at %s: %w", instanceUrl, err)
	}
	return &dal.Client{Url: instanceUrl, Id: app.ClientID, Secret: app.ClientSecret}, nil
}

func (mc *mastoConnector) Login(ctx context.Context, client *dal.Client, user, password string) (string, error) {
	mcl := mc.newClient(&mastodon.Config{
		Server:       client.Url,
		ClientID:     client.Id,
		ClientSecret: client.Secret,
	})
	if err := mcl.Authenticate(ctx, user, password); err != nil {
		return "", err
	}
	return mcl.Config.AccessToken, nil
}

func (mc *mastoConnector) Connect(instanceUrl, token string) IMastoSession {
	return &mastoSession{mc.newClient(&mastodon.Config{
		Server:      instanceUrl,
		AccessToken: token,
	})}
}

type mastoSession struct {
	mcl *mastodon.Client
}

func page(sinceId, maxId string, limit int) *mastodon.Pagination {
	if limit <= 0 {
		limit = defaultPageSize
	}
	return &mastodon.Pagination{
		SinceID: mastodon.ID(sinceId),
		MaxID:   mastodon.ID(maxId),
		Limit:   int64(limit),
	}
}

func (ms *mastoSession) Me(ctx context.Context) (*dto.Account, error) {
	acct, err := ms.mcl.GetAccountCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return convertAccount(acct), nil
}

func (ms *mastoSession) Home(ctx context.Context, sinceId, maxId string, limit int) ([]*dto.Status, error) {
	statuses, err := ms.mcl.GetTimelineHome(ctx, page(sinceId, maxId, limit))
	if err != nil {
		return nil, err
	}
	return convertStatuses(statuses), nil
}

func (ms *mastoSession) Notifications(ctx context.Context, sinceId, maxId string, limit int) ([]*dto.Notification, error) {
	notifs, err := ms.mcl.GetNotifications(ctx, page(sinceId, maxId, limit))
	if err != nil {
		return nil, err
	}
	res := make([]*dto.Notification, 0, len(notifs))
	for _, n := range notifs {
		res = append(res, convertNotification(n))
	}
	return res, nil
}

func (ms *mastoSession) Status(ctx context.Context, id string) (*dto.Status, error) {
	status, err := ms.mcl.GetStatus(ctx, mastodon.ID(id))
	if err != nil {
		return nil, err
	}
	return convertStatus(status), nil
}

func (ms *mastoSession) Ancestors(ctx context.Context, id string) ([]*dto.Status, error) {
	sctx, err := ms.mcl.GetStatusContext(ctx, mastodon.ID(id))
	if err != nil {
		return nil, err
	}
	return convertStatuses(sctx.Ancestors), nil
}

func (ms *mastoSession) Post(ctx context.Context, status *dto.NewStatus) (*dto.Status, error) {
	toot := &mastodon.Toot{
		Status:      status.Text,
		InReplyToID: mastodon.ID(status.InReplyToId),
		Visibility:  status.Visibility,
	}
	if status.MediaFile != "" {
		att, err := ms.mcl.UploadMedia(ctx, status.MediaFile)
		if err != nil {
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}
		toot.MediaIDs = []mastodon.ID{att.ID}
	}
	posted, err := ms.mcl.PostStatus(ctx, toot)
	if err != nil {
		return nil, err
	}
	return convertStatus(posted), nil
}

func (ms *mastoSession) Boost(ctx context.Context, id string) error {
	_, err := ms.mcl.Reblog(ctx, mastodon.ID(id))
	return err
}

func (ms *mastoSession) Unboost(ctx context.Context, id string) error {
	_, err := ms.mcl.Unreblog(ctx, mastodon.ID(id))
	return err
}

func (ms *mastoSession) Star(ctx context.Context, id string) error {
	_, err := ms.mcl.Favourite(ctx, mastodon.ID(id))
	return err
}

func (ms *mastoSession) Unstar(ctx context.Context, id string) error {
	_, err := ms.mcl.Unfavourite(ctx, mastodon.ID(id))
	return err
}

func (ms *mastoSession) Account(ctx context.Context, id string) (*dto.Account, error) {
	acct, err := ms.mcl.GetAccount(ctx, mastodon.ID(id))
	if err != nil {
		return nil, err
	}
	return convertAccount(acct), nil
}

func (ms *mastoSession) SearchAccounts(ctx context.Context, query string, limit int) ([]*dto.Account, error) {
	accts, err := ms.mcl.AccountsSearch(ctx, query, int64(limit))
	if err != nil {
		return nil, err
	}
	res := make([]*dto.Account, 0, len(accts))
	for _, acct := range accts {
		res = append(res, convertAccount(acct))
	}
	return res, nil
}

func (ms *mastoSession) AccountStatuses(ctx context.Context, id string, limit int) ([]*dto.Status, error) {
	statuses, err := ms.mcl.GetAccountStatuses(ctx, mastodon.ID(id), page("", "", limit))
	if err != nil {
		return nil, err
	}
	return convertStatuses(statuses), nil
}

func (ms *mastoSession) Relationship(ctx context.Context, id string) (*dto.Relationship, error) {
	rels, err := ms.mcl.GetAccountRelationships(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return &dto.Relationship{Id: id}, nil
	}
	rel := rels[0]
	return &dto.Relationship{
		Id:         string(rel.ID),
		Following:  rel.Following,
		FollowedBy: rel.FollowedBy,
		Requested:  rel.Requested,
		Muting:     rel.Muting,
		Blocking:   rel.Blocking,
	}, nil
}

func (ms *mastoSession) AccountAction(ctx context.Context, action AccountAction, id string) error {
	var err error
	mid := mastodon.ID(id)
	switch action {
	case AaFollow:
		_, err = ms.mcl.AccountFollow(ctx, mid)
	case AaUnfollow:
		_, err = ms.mcl.AccountUnfollow(ctx, mid)
	case AaMute:
		_, err = ms.mcl.AccountMute(ctx, mid)
	case AaUnmute:
		_, err = ms.mcl.AccountUnmute(ctx, mid)
	case AaBlock:
		_, err = ms.mcl.AccountBlock(ctx, mid)
	case AaUnblock:
		_, err = ms.mcl.AccountUnblock(ctx, mid)
	default:
		err = fmt.Errorf("unknown account action: %s", action)
	}
	return err
}

func (ms *mastoSession) UpdateNote(ctx context.Context, note string) error {
	_, err := ms.mcl.AccountUpdate(ctx, &mastodon.Profile{Note: &note})
	return err
}

func (ms *mastoSession) UpdateAvatar(ctx context.Context, imagePath string) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return err
	}
	// The API takes the image as a data URI
	dataUri := "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
	_, err = ms.mcl.AccountUpdate(ctx, &mastodon.Profile{Avatar: dataUri})
	return err
}

func (ms *mastoSession) Timeline(ctx context.Context, local bool, limit int) ([]*dto.Status, error) {
	statuses, err := ms.mcl.GetTimelinePublic(ctx, local, page("", "", limit))
	if err != nil {
		return nil, err
	}
	return convertStatuses(statuses), nil
}

func (ms *mastoSession) Hashtag(ctx context.Context, tag string, limit int) ([]*dto.Status, error) {
	statuses, err := ms.mcl.GetTimelineHashtag(ctx, tag, false, page("", "", limit))
	if err != nil {
		return nil, err
	}
	return convertStatuses(statuses), nil
}

func (ms *mastoSession) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	results, err := ms.mcl.Search(ctx, query, false)
	if err != nil {
		return nil, err
	}
	res := &dto.SearchResults{}
	for _, acct := range results.Accounts {
		res.Accounts = append(res.Accounts, convertAccount(acct))
	}
	for _, tag := range results.Hashtags {
		res.Hashtags = append(res.Hashtags, tag.Name)
	}
	return res, nil
}

func convertAccount(acct *mastodon.Account) *dto.Account {
	res := &dto.Account{
		Id:             string(acct.ID),
		Acct:           acct.Acct,
		Username:       acct.Username,
		DisplayName:    acct.DisplayName,
		Note:           acct.Note,
		Url:            acct.URL,
		Avatar:         acct.Avatar,
		AvatarStatic:   acct.AvatarStatic,
		Bot:            acct.Bot,
		Locked:         acct.Locked,
		FollowersCount: acct.FollowersCount,
		FollowingCount: acct.FollowingCount,
		StatusesCount:  acct.StatusesCount,
	}
	for _, f := range acct.Fields {
		res.Fields = append(res.Fields, dto.Field{Name: f.Name, Value: f.Value})
	}
	return res
}

func convertStatuses(statuses []*mastodon.Status) []*dto.Status {
	res := make([]*dto.Status, 0, len(statuses))
	for _, s := range statuses {
		res = append(res, convertStatus(s))
	}
	return res
}

func convertStatus(s *mastodon.Status) *dto.Status {
	if s == nil {
		return nil
	}
	res := &dto.Status{
		Id:              string(s.ID),
		Url:             s.URL,
		CreatedAt:       s.CreatedAt,
		Account:         *convertAccount(&s.Account),
		Visibility:      s.Visibility,
		Content:         s.Content,
		SpoilerText:     s.SpoilerText,
		InReplyToId:     idString(s.InReplyToID),
		Reblog:          convertStatus(s.Reblog),
		RepliesCount:    s.RepliesCount,
		ReblogsCount:    s.ReblogsCount,
		FavouritesCount: s.FavouritesCount,
	}
	for _, att := range s.MediaAttachments {
		res.Attachments = append(res.Attachments, dto.Attachment{Id: string(att.ID), Type: att.Type, Url: att.URL})
	}
	for _, m := range s.Mentions {
		res.Mentions = append(res.Mentions, dto.Mention{Id: string(m.ID), Acct: m.Acct, Url: m.URL})
	}
	return res
}

func convertNotification(n *mastodon.Notification) *dto.Notification {
	return &dto.Notification{
		Id:        string(n.ID),
		Type:      n.Type,
		CreatedAt: n.CreatedAt,
		Account:   *convertAccount(&n.Account),
		Status:    convertStatus(n.Status),
	}
}

// Some ID fields come back untyped from the library
func idString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case mastodon.ID:
		return string(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
