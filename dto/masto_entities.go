package dto

import "time"

// Visibility values of a status
const (
	VisDirect   = "direct"   // Only mentioned users
	VisPrivate  = "private"  // Followers only
	VisUnlisted = "unlisted" // Public, but not on public timelines
	VisPublic   = "public"
)

// Notification types we render; everything else is skipped
const (
	NtMention   = "mention"
	NtReblog    = "reblog"
	NtFavourite = "favourite"
	NtFollow    = "follow"
)

type Account struct {
	Id             string
	Acct           string // bob, or bob@other.instance if remote
	Username       string
	DisplayName    string
	Note           string // HTML
	Url            string
	Avatar         string
	AvatarStatic   string
	Bot            bool
	Locked         bool
	FollowersCount int64
	FollowingCount int64
	StatusesCount  int64
	Fields         []Field
}

type Field struct {
	Name  string // HTML
	Value string // HTML
}

type Mention struct {
	Id   string
	Acct string
	Url  string
}

type Attachment struct {
	Id   string
	Type string // image, video, gifv, audio, unknown
	Url  string
}

type Status struct {
	Id              string
	Url             string
	CreatedAt       time.Time
	Account         Account
	Visibility      string
	Content         string // HTML
	SpoilerText     string
	InReplyToId     string
	Attachments     []Attachment
	Mentions        []Mention
	Reblog          *Status
	RepliesCount    int64
	ReblogsCount    int64
	FavouritesCount int64
}

type Notification struct {
	Id        string
	Type      string
	CreatedAt time.Time
	Account   Account
	Status    *Status
}

type Relationship struct {
	Id         string
	Following  bool
	FollowedBy bool
	Requested  bool
	Muting     bool
	Blocking   bool
}

type SearchResults struct {
	Accounts []*Account
	Hashtags []string
}

// NewStatus is what we post: a toot, a reply or a direct message.
type NewStatus struct {
	Text        string
	InReplyToId string
	Visibility  string // Empty means the account's default
	MediaFile   string // Local path of a file to upload first
}
