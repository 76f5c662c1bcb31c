package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-VehicleService/internal/api/handlers"
)

const msgTooManyRequests = "превышен лимит запросов, попробуйте позже"

// RateLimit ограничивает общий поток запросов к сервису.
// perSec задает скорость пополнения, burst допустимый всплеск.
func RateLimit(perSec, burst int) mux.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSec), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
