package http

import (
	"errors"
	"net/http"

	"github.com/ndanilov/shelf-viewer/internal/fetcher"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrAllFieldsRequired: http.StatusBadRequest,
	service.ErrUsernameHasSpaces: http.StatusBadRequest,
	service.ErrPasswordTooShort:  http.StatusBadRequest,
	service.ErrUsernameExists:    http.StatusBadRequest,

	service.ErrInvalidCredentials:          http.StatusUnauthorized,
	service.ErrCouldNotValidateCredentials: http.StatusUnauthorized,
	service.ErrTokenInvalid:                http.StatusUnauthorized,
	service.ErrTokenMissingSubject:         http.StatusUnauthorized,

	service.ErrUnknownCollection: http.StatusBadRequest,

	fetcher.ErrScraperUnavailable: http.StatusBadGateway,
	fetcher.ErrBadScraperResponse: http.StatusBadGateway,

	store.ErrUsernameTaken:     http.StatusBadRequest,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrDocumentsNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
