package server

import (
	"context"
	"encoding/json"
	"masto_bridge/dto"
	"masto_bridge/logic"
	"masto_bridge/shared"
	"net/http"
)

// Receives what happens in the messenger, as reported by the chat gateway.
type chatHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	signer     logic.IChatSigner
	dispatcher logic.IDispatcher
}

func NewChatHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	signer logic.IChatSigner,
	dispatcher logic.IDispatcher,
) IHandlerGroup {
	res := chatHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		signer:     signer,
		dispatcher: dispatcher,
	}
	return &res
}

func (hg *chatHandlerGroup) Prefix() string {
	return "/chat"
}

func (hg *chatHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{http.MethodPost, "/events", hg.postEvents},
	}
}

// Signature covers the body, so it is checked in the handler itself.
func (hg *chatHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

type acceptedResp struct {
	Status string `json:"status"`
}

func (hg *chatHandlerGroup) postEvents(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("chat/events")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}

	if err := hg.signer.Verify(r, bodyBytes); err != nil {
		hg.logger.Warnf("Incorrectly signed chat event: %v", err)
		writeErrorResponse(w, badSignatureStr, http.StatusUnauthorized)
		return
	}

	var evt dto.ChatEvent
	if err := json.Unmarshal(bodyBytes, &evt); err != nil {
		hg.logger.Infof("Invalid JSON in chat event: %v", err)
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}
	if evt.Type == "" || evt.ChatId == 0 {
		hg.logger.Infof("Chat event without type or chat ID")
		writeErrorResponse(w, "Missing type or chat_id", http.StatusBadRequest)
		return
	}
	hg.logger.Debugf("Chat event: %s in chat %d from %s", evt.Type, evt.ChatId, evt.Sender)

	// Commands can take a while; the gateway only needs to know we have it
	ctx := context.WithoutCancel(r.Context())
	go hg.dispatcher.Handle(ctx, &evt)

	writeJsonResponse(hg.logger, w, http.StatusAccepted, &acceptedResp{"accepted"})
}
