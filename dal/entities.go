package dal

import (
	"time"
)

// FeedKind identifies one of the two watermarked feeds of an account.
type FeedKind string

const (
	FkHome  FeedKind = "home"
	FkNotif FeedKind = "notif"
)

type Account struct {
	Id        int
	CreatedAt time.Time
	Addr      string // bob@chat.example.org
	User      string // bob, lower-cased acct on the instance
	MastoId   string // 109348681889386281
	Url       string // https://mastodon.social
	Token     string
	HomeChat  int64
	NotifChat int64
	LastHome  string // Newest home timeline status ID delivered
	LastNotif string // Newest notification ID delivered
}

// WatermarkStart sorts before every item ID. A feed that was empty when first seen starts here,
// so its first item is delivered.
const WatermarkStart = "0"

func (acct *Account) Watermark(kind FeedKind) string {
	if kind == FkHome {
		return acct.LastHome
	}
	return acct.LastNotif
}

type DmChat struct {
	ChatId  int64
	Contact string // alice@example.com
	AccAddr string
}

type Client struct {
	Url    string
	Id     string
	Secret string
}
