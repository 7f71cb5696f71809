package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets                Secrets    `json:"-"`
	LogFile                string     `json:"log_file"`
	LogLevel               string     `json:"log_level"`
	ServicePort            uint       `json:"service_port"`
	DbFile                 string     `json:"db_file"`
	CmdPrefix              string     `json:"cmd_prefix"`
	DelaySec               int        `json:"delay_sec"`
	RoundPauseMsec         int        `json:"round_pause_msec"`
	MaxUsers               int        `json:"max_users"`
	MaxUsersInstance       int        `json:"max_users_instance"`
	HttpTimeoutSec         int        `json:"http_timeout_sec"`
	AppName                string     `json:"app_name"`
	AppWebsite             string     `json:"app_website"`
	ChatAvatarUrl          string     `json:"chat_avatar_url"`
	DeliveredRetentionDays int        `json:"delivered_retention_days"`
	BlockedInstancesFile   string     `json:"blocked_instances_file"`
	ProfileDir             string     `json:"profile_dir"`
	ProfileKeepDays        int        `json:"profile_keep_days"`
	Chat                   ChatConfig `json:"chat"`
}

// ChatConfig describes how we reach the chat gateway that fronts the messenger account.
type ChatConfig struct {
	BaseUrl string `json:"base_url"`
	KeyId   string `json:"key_id"`
}

type Secrets struct {
	ChatSecret  string   `json:"chat_secret"`
	MetricsAuth string   `json:"metrics_auth"`
	ApiKeys     []string `json:"api_keys"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	config := defaultConfig()
	mustDeserializeFile(cfgPath, config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return config
}

// Values used where the config file is silent.
func defaultConfig() *Config {
	return &Config{
		LogLevel:               "Info",
		ServicePort:            8080,
		DelaySec:               30,
		RoundPauseMsec:         2000,
		MaxUsers:               -1,
		MaxUsersInstance:       -1,
		HttpTimeoutSec:         15,
		AppName:                "DeltaChat Bridge",
		DeliveredRetentionDays: 30,
		ProfileKeepDays:        7,
	}
}

func ParseConfig(cfgJson []byte) (*Config, error) {
	var err error
	config := defaultConfig()
	if cfgJson, err = standardizeJSON(cfgJson); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(cfgJson, config); err != nil {
		return nil, err
	}
	return config, nil
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
