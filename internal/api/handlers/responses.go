// Package handlers общие хелперы HTTP-слоя: декодирование запросов
// и формирование JSON-ответов с единым форматом ошибок.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервера"

// errorEnvelope единый формат тела ошибки API
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON разбирает JSON-тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет data как JSON с указанным статусом.
// При data == nil отдается только статус без тела.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	// Ошибку кодирования уже не вернуть клиенту, статус отправлен
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку в едином формате envelope
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, errorEnvelope{
		Error: errorBody{
			Code:    status,
			Message: message,
		},
	})
}

// RespondBadRequest отвечает 400 с указанным сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отвечает 404 с указанным сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отвечает 409 с указанным сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отвечает 500 со стандартным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
