package logic_test

import (
	"github.com/stretchr/testify/assert"
	"masto_bridge/dto"
	"masto_bridge/logic"
	"testing"
	"time"
)

const contentWithMention = `<p>Hello <span class="h-card"><a href="https://ex.com/@bob" class="u-url mention">@<span>bob</span></a></span></p><p>Line1<br>Line2</p>`
const contentText = "Hello @bob@ex.com\n\nLine1\nLine2"

var renderTime = time.Date(2024, 3, 5, 14, 7, 31, 0, time.UTC)

func makeStatus(id, visibility string) *dto.Status {
	return &dto.Status{
		Id:         id,
		CreatedAt:  renderTime,
		Account:    dto.Account{Id: "3", Acct: "alice@ex.com", DisplayName: "Alice"},
		Visibility: visibility,
		Content:    contentWithMention,
		Mentions:   []dto.Mention{{Id: "7", Acct: "bob@ex.com", Url: "https://ex.com/@bob"}},
	}
}

func TestGetName(t *testing.T) {
	assert.Equal(t, "bob", logic.GetName(&dto.Account{Acct: "bob"}))
	assert.Equal(t, "Bob (@bob@ex.com)", logic.GetName(&dto.Account{Acct: "bob@ex.com", DisplayName: "Bob"}))
	assert.Equal(t, "[BOT] feed", logic.GetName(&dto.Account{Acct: "feed", Bot: true}))
}

func TestStripHtml(t *testing.T) {
	assert.Equal(t, "x & y", logic.StripHtml("<b>x</b> &amp; y "))
	assert.Equal(t, "b.org", logic.StripHtml(`<a href="https://b.org" rel="me">b.org</a>`))
	assert.Equal(t, "", logic.StripHtml(""))
}

func TestHtmlToText(t *testing.T) {
	assert.Equal(t, contentText, logic.HtmlToText(contentWithMention,
		[]dto.Mention{{Acct: "bob@ex.com", Url: "https://ex.com/@bob"}}))
	// Without mention data, the anchor text stays
	assert.Equal(t, "Hello @bob\n\nLine1\nLine2", logic.HtmlToText(contentWithMention, nil))
	assert.Equal(t, "Fish & chips", logic.HtmlToText("<p>Fish &amp; chips</p>", nil))
	assert.Equal(t, "", logic.HtmlToText("", nil))
}

func TestRenderStatus(t *testing.T) {
	msg := logic.RenderStatus(makeStatus("101", dto.VisPublic), "")
	assert.Equal(t, contentText+"\n\n[🌎 2024-03-05 14:07]\n"+
		"↩️ /reply_101\n⭐ /star_101\n🔁 /boost_101\n⏫ /open_101", msg.Text)
	assert.Equal(t, "Alice (@alice@ex.com)", msg.SenderName)
	assert.Equal(t, "", msg.FileUrl)
}

func TestRenderStatusReblog(t *testing.T) {
	post := makeStatus("101", dto.VisPrivate)
	post.SpoilerText = "cw"
	post.Attachments = []dto.Attachment{
		{Id: "1", Type: "image", Url: "https://x.org/1.png"},
		{Id: "2", Type: "image", Url: "https://x.org/2.png"},
	}
	boost := &dto.Status{
		Id:        "102",
		CreatedAt: renderTime,
		Account:   dto.Account{Acct: "carol", Bot: true},
		Reblog:    post,
	}
	msg := logic.RenderStatus(boost, "p_")
	assert.Equal(t, "🔁 [BOT] carol\n\n⚠️ cw\n\nhttps://x.org/2.png\n\n"+contentText+
		"\n\n[🔒 2024-03-05 14:07]\n↩️ /p_reply_101\n⭐ /p_star_101\n⏫ /p_open_101", msg.Text)
	assert.Equal(t, "https://x.org/1.png", msg.FileUrl)
	assert.Equal(t, "Alice (@alice@ex.com)", msg.SenderName)
}

func TestRenderNotification(t *testing.T) {
	alice := dto.Account{Acct: "alice@ex.com", DisplayName: "Alice"}

	msg := logic.RenderNotification(&dto.Notification{Id: "1", Type: dto.NtFollow, Account: alice, CreatedAt: renderTime}, "")
	assert.Equal(t, "👤 Alice (@alice@ex.com) followed you. (2024-03-05 14:07)", msg.Text)
	assert.Equal(t, "Alice (@alice@ex.com)", msg.SenderName)

	msg = logic.RenderNotification(&dto.Notification{Id: "2", Type: dto.NtFavourite, Account: alice,
		CreatedAt: renderTime, Status: makeStatus("101", dto.VisPublic)}, "")
	assert.Equal(t, "⭐ Alice (@alice@ex.com) favorited your toot. (2024-03-05 14:07)\n\n"+
		contentText+"\n\n[🌎 2024-03-05 14:07]", msg.Text)

	msg = logic.RenderNotification(&dto.Notification{Id: "3", Type: dto.NtReblog, Account: alice,
		CreatedAt: renderTime, Status: makeStatus("101", dto.VisUnlisted)}, "")
	assert.Equal(t, "🔁 Alice (@alice@ex.com) boosted your toot. (2024-03-05 14:07)\n\n"+
		contentText+"\n\n[🔓 2024-03-05 14:07]", msg.Text)

	msg = logic.RenderNotification(&dto.Notification{Id: "4", Type: dto.NtMention, Account: alice,
		CreatedAt: renderTime, Status: makeStatus("101", dto.VisPrivate)}, "")
	assert.Equal(t, contentText+"\n\n[🔒 2024-03-05 14:07]\n↩️ /reply_101\n⭐ /star_101\n⏫ /open_101", msg.Text)

	assert.Nil(t, logic.RenderNotification(&dto.Notification{Id: "5", Type: "poll", Account: alice}, ""))
	assert.Nil(t, logic.RenderNotification(&dto.Notification{Id: "6", Type: dto.NtMention, Account: alice}, ""))
}

func TestRenderIsDeterministic(t *testing.T) {
	status := makeStatus("101", dto.VisPublic)
	assert.Equal(t, logic.RenderStatus(status, "x"), logic.RenderStatus(status, "x"))
}

func TestRenderDirect(t *testing.T) {
	msg := logic.RenderDirect(makeStatus("101", dto.VisDirect), "")
	assert.Equal(t, contentText+"\n\n[✉ 2024-03-05 14:07]\n⭐ /star_101", msg.Text)
	assert.Equal(t, "Alice (@alice@ex.com)", msg.SenderName)
}

func TestRenderProfile(t *testing.T) {
	user := &dto.Account{
		Id:             "5",
		Acct:           "bob",
		Note:           "<p>Hi &amp; bye</p>",
		Fields:         []dto.Field{{Name: "Web", Value: `<a href="https://b.org">b.org</a>`}},
		StatusesCount:  1,
		FollowingCount: 2,
		FollowersCount: 3,
	}
	self := logic.RenderProfile(user, nil, "")
	assert.Equal(t, "bob:\n\nWeb: b.org\n\nHi & bye\n\nToots: 1\nFollowing: 2\nFollowers: 3", self)

	rel := &dto.Relationship{Id: "5", FollowedBy: true, Following: true, Blocking: true}
	other := logic.RenderProfile(user, rel, "")
	assert.Equal(t, self+"\n[follows you]\n\n/unfollow_5\n/mute_5\n/unblock_5\n/dm_5", other)

	rel = &dto.Relationship{Id: "5", Requested: true, Muting: true}
	other = logic.RenderProfile(user, rel, "m_")
	assert.Equal(t, self+"\n\n/m_unfollow_5\n/m_unmute_5\n/m_block_5\n/m_dm_5", other)
}

func TestRenderSearch(t *testing.T) {
	assert.Equal(t, "", logic.RenderSearch(&dto.SearchResults{}, ""))
	res := &dto.SearchResults{
		Accounts: []*dto.Account{{Id: "1", Acct: "a"}},
		Hashtags: []string{"go"},
	}
	assert.Equal(t, "👤 Accounts:\n@a /profile_1\n\n#️⃣ Hashtags:\n#go /tag_go", logic.RenderSearch(res, ""))
	res.Hashtags = nil
	assert.Equal(t, "👤 Accounts:\n@a /profile_1", logic.RenderSearch(res, ""))
}
