package dto

// Chat gateway event types
const (
	CetMessage       = "message"
	CetMemberRemoved = "member_removed"
)

// ChatEvent is what the chat gateway posts to us for incoming messages and membership changes.
type ChatEvent struct {
	Type             string `json:"type"`
	ChatId           int64  `json:"chat_id"`
	MsgId            int64  `json:"msg_id"`
	Sender           string `json:"sender"` // Author's address; for member_removed: the removed member
	Text             string `json:"text"`
	FileUrl          string `json:"file_url,omitempty"`
	IsGroup          bool   `json:"is_group"`
	SelfRemoved      bool   `json:"self_removed,omitempty"`
	RemainingMembers int    `json:"remaining_members,omitempty"`
}

// ChatMessage is one outgoing message, possibly impersonating a remote author.
type ChatMessage struct {
	Text       string `json:"text"`
	FileUrl    string `json:"file_url,omitempty"`
	SenderName string `json:"sender_name,omitempty"`
	QuoteMsgId int64  `json:"quote_msg_id,omitempty"`
}

type CreateGroupReq struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type CreateGroupResp struct {
	ChatId int64 `json:"chat_id"`
}

type ContactMessageReq struct {
	Addr string `json:"addr"`
	Text string `json:"text"`
}

type SetAvatarReq struct {
	Url string `json:"url"`
}
