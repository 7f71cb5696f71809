package shared

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_user_agent.go -package mocks masto_bridge/shared IUserAgent

const (
	versionFileName   = "version.txt"
	userAgentTemplate = "MastoBridge/%s (+%s)"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
	Value() string
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(cfg.AppWebsite),
	}
}

func buildUserAgentString(website string) string {
	versionBytes, _ := os.ReadFile(versionFileName)
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		versionStr = "dev"
	}
	return fmt.Sprintf(userAgentTemplate, versionStr, website)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}

func (ua *userAgent) Value() string {
	return ua.userAgentValue
}
