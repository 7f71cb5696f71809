package logic

import (
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"masto_bridge/dto"
	"strings"
	"time"
)

// Everything in this file is a pure function of its arguments: no clock, no I/O.

const renderTimeFormat = "2006-01-02 15:04"

var visibilityEmoji = map[string]string{
	dto.VisDirect:   "✉",
	dto.VisPrivate:  "🔒",
	dto.VisUnlisted: "🔓",
	dto.VisPublic:   "🌎",
}

// GetName is how a remote account appears as a chat sender: "[BOT] Display Name (@acct)".
func GetName(acct *dto.Account) string {
	name := acct.Acct
	if acct.DisplayName != "" {
		name = fmt.Sprintf("%s (@%s)", acct.DisplayName, acct.Acct)
	}
	if acct.Bot {
		name = "[BOT] " + name
	}
	return name
}

func formatTime(t time.Time) string {
	return t.UTC().Format(renderTimeFormat)
}

// StripHtml flattens an HTML snippet like a profile field to plain text.
func StripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

// HtmlToText converts post content to chat text. Mention links become @acct, <br> a newline,
// and each paragraph is followed by an empty line.
func HtmlToText(content string, mentions []dto.Mention) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return StripHtml(content)
	}
	if len(mentions) != 0 {
		accts := make(map[string]string, len(mentions))
		for _, m := range mentions {
			accts[m.Url] = "@" + m.Acct
		}
		doc.Find("a.u-url").Each(func(_ int, s *goquery.Selection) {
			if name, ok := accts[s.AttrOr("href", "")]; ok {
				s.SetText(name)
			}
		})
	}
	var sb strings.Builder
	for _, n := range doc.Nodes {
		writeNodeText(&sb, n)
	}
	return strings.TrimSpace(sb.String())
}

func writeNodeText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		sb.WriteString("\n")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(sb, c)
	}
	if n.Type == html.ElementNode && n.Data == "p" {
		sb.WriteString("\n\n")
	}
}

// Writes content warning, extra media and body; returns the URL of the media sent as attachment.
func writePost(sb *strings.Builder, post *dto.Status) (fileUrl string) {
	if post.SpoilerText != "" {
		sb.WriteString("⚠️ " + post.SpoilerText + "\n\n")
	}
	if len(post.Attachments) != 0 {
		fileUrl = post.Attachments[0].Url
		extra := post.Attachments[1:]
		for _, att := range extra {
			sb.WriteString(att.Url + "\n")
		}
		if len(extra) != 0 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(HtmlToText(post.Content, post.Mentions))
	return
}

func writeFooter(sb *strings.Builder, post *dto.Status) {
	sb.WriteString("\n\n[")
	if emoji, ok := visibilityEmoji[post.Visibility]; ok {
		sb.WriteString(emoji + " ")
	}
	sb.WriteString(formatTime(post.CreatedAt) + "]\n")
}

func writeActions(sb *strings.Builder, post *dto.Status, prefix string) {
	sb.WriteString(fmt.Sprintf("↩️ /%sreply_%s\n", prefix, post.Id))
	sb.WriteString(fmt.Sprintf("⭐ /%sstar_%s\n", prefix, post.Id))
	if post.Visibility == dto.VisPublic || post.Visibility == dto.VisUnlisted {
		sb.WriteString(fmt.Sprintf("🔁 /%sboost_%s\n", prefix, post.Id))
	}
	sb.WriteString(fmt.Sprintf("⏫ /%sopen_%s\n", prefix, post.Id))
}

func finish(sb *strings.Builder, fileUrl, senderName string) *dto.ChatMessage {
	return &dto.ChatMessage{
		Text:       strings.TrimRight(sb.String(), "\n"),
		FileUrl:    fileUrl,
		SenderName: senderName,
	}
}

// RenderStatus renders a timeline post; a boost shows the original post, sent in its author's name.
func RenderStatus(status *dto.Status, prefix string) *dto.ChatMessage {
	var sb strings.Builder
	post := status
	if status.Reblog != nil {
		sb.WriteString("🔁 " + GetName(&status.Account) + "\n\n")
		post = status.Reblog
	}
	fileUrl := writePost(&sb, post)
	writeFooter(&sb, post)
	writeActions(&sb, post, prefix)
	return finish(&sb, fileUrl, GetName(&post.Account))
}

// RenderNotification returns nil for notification types the bridge does not show.
func RenderNotification(n *dto.Notification, prefix string) *dto.ChatMessage {
	var sb strings.Builder
	name := GetName(&n.Account)
	ts := formatTime(n.CreatedAt)
	switch n.Type {
	case dto.NtReblog:
		sb.WriteString(fmt.Sprintf("🔁 %s boosted your toot. (%s)", name, ts))
	case dto.NtFavourite:
		sb.WriteString(fmt.Sprintf("⭐ %s favorited your toot. (%s)", name, ts))
	case dto.NtFollow:
		sb.WriteString(fmt.Sprintf("👤 %s followed you. (%s)", name, ts))
		return finish(&sb, "", name)
	case dto.NtMention:
		if n.Status == nil {
			return nil
		}
		fileUrl := writePost(&sb, n.Status)
		writeFooter(&sb, n.Status)
		writeActions(&sb, n.Status, prefix)
		return finish(&sb, fileUrl, name)
	default:
		return nil
	}
	fileUrl := ""
	if n.Status != nil {
		sb.WriteString("\n\n")
		fileUrl = writePost(&sb, n.Status)
		writeFooter(&sb, n.Status)
	}
	return finish(&sb, fileUrl, name)
}

// RenderDirect renders a private message for its DM chat, where replying is just writing.
func RenderDirect(status *dto.Status, prefix string) *dto.ChatMessage {
	var sb strings.Builder
	fileUrl := writePost(&sb, status)
	writeFooter(&sb, status)
	sb.WriteString(fmt.Sprintf("⭐ /%sstar_%s\n", prefix, status.Id))
	return finish(&sb, fileUrl, GetName(&status.Account))
}

// RenderProfile lays out an account; rel is nil when looking at ourselves.
func RenderProfile(user *dto.Account, rel *dto.Relationship, prefix string) string {
	var sb strings.Builder
	sb.WriteString(GetName(user) + ":\n\n")
	if len(user.Fields) != 0 {
		for _, f := range user.Fields {
			sb.WriteString(fmt.Sprintf("%s: %s\n", StripHtml(f.Name), StripHtml(f.Value)))
		}
		sb.WriteString("\n")
	}
	if note := HtmlToText(user.Note, nil); note != "" {
		sb.WriteString(note + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("Toots: %d\nFollowing: %d\nFollowers: %d",
		user.StatusesCount, user.FollowingCount, user.FollowersCount))
	if rel == nil {
		return sb.String()
	}
	if rel.FollowedBy {
		sb.WriteString("\n[follows you]")
	}
	sb.WriteString("\n")
	action := "follow"
	if rel.Following || rel.Requested {
		action = "unfollow"
	}
	sb.WriteString(fmt.Sprintf("\n/%s%s_%s", prefix, action, user.Id))
	action = "mute"
	if rel.Muting {
		action = "unmute"
	}
	sb.WriteString(fmt.Sprintf("\n/%s%s_%s", prefix, action, user.Id))
	action = "block"
	if rel.Blocking {
		action = "unblock"
	}
	sb.WriteString(fmt.Sprintf("\n/%s%s_%s", prefix, action, user.Id))
	sb.WriteString(fmt.Sprintf("\n/%sdm_%s", prefix, user.Id))
	return sb.String()
}

// RenderSearch returns an empty string if there are no results.
func RenderSearch(res *dto.SearchResults, prefix string) string {
	var sb strings.Builder
	if len(res.Accounts) != 0 {
		sb.WriteString("👤 Accounts:")
		for _, a := range res.Accounts {
			sb.WriteString(fmt.Sprintf("\n@%s /%sprofile_%s", a.Acct, prefix, a.Id))
		}
		sb.WriteString("\n\n")
	}
	if len(res.Hashtags) != 0 {
		sb.WriteString("#️⃣ Hashtags:")
		for _, tag := range res.Hashtags {
			sb.WriteString(fmt.Sprintf("\n#%s /%stag_%s", tag, prefix, tag))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
