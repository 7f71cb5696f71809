package dto

import "time"

// BridgedAccount is one row of the operator listing at /api/accounts.
type BridgedAccount struct {
	Addr      string    `json:"addr"`
	User      string    `json:"user"`
	Url       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	LastHome  string    `json:"last_home"`
	LastNotif string    `json:"last_notif"`
	DmChats   int       `json:"dm_chats"`
}

type BridgedAccounts struct {
	Total     int               `json:"total"`
	Instances map[string]int    `json:"instances"`
	Accounts  []*BridgedAccount `json:"accounts"`
}
