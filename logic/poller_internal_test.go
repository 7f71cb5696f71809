package logic

import (
	"github.com/stretchr/testify/assert"
	"masto_bridge/dal"
	"testing"
)

func TestInterleave(t *testing.T) {
	a1 := &dal.Account{Addr: "a1", Url: "https://a.social"}
	a2 := &dal.Account{Addr: "a2", Url: "https://a.social"}
	a3 := &dal.Account{Addr: "a3", Url: "https://a.social"}
	b1 := &dal.Account{Addr: "b1", Url: "https://b.social"}
	c1 := &dal.Account{Addr: "c1", Url: "https://c.social"}

	rounds := interleave([]*dal.Account{a1, a2, b1, a3, c1})
	assert.Equal(t, [][]*dal.Account{{a1, b1, c1}, {a2}, {a3}}, rounds)

	assert.Nil(t, interleave(nil))
}
