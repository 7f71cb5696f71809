package server

import (
	"masto_bridge/dal"
	"masto_bridge/dto"
	"masto_bridge/logic"
	"masto_bridge/shared"
	"net/http"
	"slices"
)

// Operator endpoints, guarded by API keys from the secrets file.
type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	repo    dal.IRepo
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		repo:    repo,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{http.MethodGet, "/accounts", hg.getAccounts},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(apiKeyHeader)
		if !slices.ContainsFunc(hg.cfg.Secrets.ApiKeys, func(key string) bool { return secretMatches(apiKey, key) }) {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling accounts GET: %s", r.URL.Path)
	obs := hg.metrics.StartWebRequestIn("api/accounts")
	defer obs.Finish()

	accts, err := hg.repo.GetAccounts()
	if err != nil {
		hg.logger.Errorf("Failed to list accounts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.BridgedAccounts{
		Total:     len(accts),
		Instances: map[string]int{},
		Accounts:  []*dto.BridgedAccount{},
	}
	for _, acct := range accts {
		var dmChats []*dal.DmChat
		if dmChats, err = hg.repo.GetDmChats(acct.Addr); err != nil {
			hg.logger.Errorf("Failed to get DM chats of %s: %v", acct.Addr, err)
			writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
			return
		}
		resp.Instances[acct.Url]++
		resp.Accounts = append(resp.Accounts, &dto.BridgedAccount{
			Addr:      acct.Addr,
			User:      acct.User,
			Url:       acct.Url,
			CreatedAt: acct.CreatedAt,
			LastHome:  acct.LastHome,
			LastNotif: acct.LastNotif,
			DmChats:   len(dmChats),
		})
	}
	writeJsonResponse(hg.logger, w, http.StatusOK, &resp)
}
