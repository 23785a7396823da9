package http

import (
	"errors"
	"net/http"

	"github.com/etorres/go-api-scaffold/internal/adapter"
	"github.com/etorres/go-api-scaffold/internal/service"
	"github.com/etorres/go-api-scaffold/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrLoginAlreadyExists:     http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrElementNotFound:        http.StatusNotFound,
	store.ErrUnknownField:           http.StatusBadRequest,
	store.ErrUnsupportedOperator:    http.StatusBadRequest,
	store.ErrSoftDeleteUnsupported:  http.StatusConflict,
	store.ErrBuildingSQLQuery:       http.StatusInternalServerError,
	store.ErrExecutingQuery:         http.StatusInternalServerError,
	store.ErrBeginningTransaction:   http.StatusInternalServerError,
	store.ErrCommittingTransaction:  http.StatusInternalServerError,
	store.ErrScanningRow:            http.StatusInternalServerError,

	adapter.ErrEmptyTopic: http.StatusBadRequest,
}

func statusFromError(err error) int {
	// Transient store failures also wrap one of the operational sentinels
	// below, so they must be matched before the map lookup.
	if errors.Is(err, store.ErrRetryableStoreFailure) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
