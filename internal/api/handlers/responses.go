package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse единый формат ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON-ответ с указанным статусом
// nil payload — тело {"success": true}
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		payload = map[string]bool{"success": true}
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// DecodeJSON декодирует JSON-тело запроса
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondBadRequest отвечает 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отвечает 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	respondError(w, http.StatusNotFound, message)
}

// RespondConflict отвечает 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	respondError(w, http.StatusConflict, message)
}

// RespondBadGateway отвечает 502 с сообщением
func RespondBadGateway(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadGateway, message)
}

// RespondInternalError отвечает 500 с общим сообщением
func RespondInternalError(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "внутренняя ошибка сервиса")
}

func respondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
