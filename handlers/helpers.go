package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sportsync/pickup-games/services"
)

func renderErrorPage(w http.ResponseWriter, status int, message string) {
	RenderTemplate(w, status, "error.html", map[string]interface{}{
		"Status":  status,
		"Message": message,
	})
}

func notFoundResponse(w http.ResponseWriter, message string) {
	renderErrorPage(w, http.StatusNotFound, message)
}

func badRequestResponse(w http.ResponseWriter, err error) {
	renderErrorPage(w, http.StatusBadRequest, err.Error())
}

func forbiddenResponse(w http.ResponseWriter, message string) {
	renderErrorPage(w, http.StatusForbidden, message)
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	renderErrorPage(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		notFoundResponse(w, "the requested resource could not be found")

	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrGameTitleRequired),
		errors.Is(err, services.ErrGameInvalidCapacity):
		badRequestResponse(w, err)

	case errors.Is(err, services.ErrForbiddenOperation):
		forbiddenResponse(w, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
