package server

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"masto_bridge/shared"
	"net/http"
	"strings"
)

const (
	apiKeyHeader     = "X-API-KEY"
	authHeader       = "Authorization"
	bearerPrefix     = "Bearer "
	maxBodyBytes     = 1024 * 1024
	internalErrorStr = "500 Internal Server Error"
	badRequestStr    = "400 Invalid Request"
	notFoundStr      = "404 Not Found"
	badMethodStr     = "405 Method Not Allowed"
	tooLargeStr      = "413 Request Body Too Large"
	badApiKeyStr     = "401 Missing or Invalid API Key"
	badAuthorization = "401 Missing or Invalid Authorization"
	badSignatureStr  = "401 Missing or Invalid Signature"
)

// One endpoint within a handler group.
type handlerDef struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// IHandlerGroup is a set of endpoints under one path prefix, sharing an auth middleware.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

func emptyMW(next http.Handler) http.Handler {
	return next
}

// Compares secrets in constant time; an empty secret never matches.
func secretMatches(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

// Empty string if the request has no bearer token.
func bearerToken(r *http.Request) string {
	hdr := r.Header.Get(authHeader)
	if !strings.HasPrefix(hdr, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(hdr[len(bearerPrefix):])
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, code int, resp any) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		logger.Warnf("Failed to serialize response: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	respJson = append(respJson, '\n')
	if _, err = w.Write(respJson); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	respJson, _ := json.Marshal(errorResp{msg, code})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(append(respJson, '\n'))
}

// Reads at most maxBodyBytes. On failure the error response is already written and the result is nil.
func readBody(logger shared.ILogger, w http.ResponseWriter, r *http.Request) []byte {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil {
		return body
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logger.Warnf("Request body over %d bytes: %s", tooLarge.Limit, r.URL.Path)
		writeErrorResponse(w, tooLargeStr, http.StatusRequestEntityTooLarge)
		return nil
	}
	logger.Warnf("Failed to read request body: %v", err)
	writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
	return nil
}
