package logic

import (
	"bufio"
	"masto_bridge/shared"
	"os"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_blocked_instances.go -package mocks masto_bridge/logic IBlockedInstances

// IBlockedInstances tells if the operator refuses logins from an instance.
type IBlockedInstances interface {
	IsBlocked(instanceUrl string) (bool, error)
}

type blockedInstances struct {
	cfg *shared.Config
}

func NewBlockedInstances(cfg *shared.Config) IBlockedInstances {
	return &blockedInstances{cfg}
}

// The file has one host name per line, and blocks its subdomains too. Lines starting with # are comments.
func (bi *blockedInstances) IsBlocked(instanceUrl string) (bool, error) {

	if bi.cfg.BlockedInstancesFile == "" {
		return false, nil
	}
	host := strings.ToLower(shared.StripScheme(instanceUrl))
	host = strings.TrimRight(host, "/")
	readFile, err := os.Open(bi.cfg.BlockedInstancesFile)
	if err != nil {
		return false, err
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)

	for fileScanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(fileScanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if host == line || strings.HasSuffix(host, "."+line) {
			return true, nil
		}
	}
	return false, fileScanner.Err()
}
