package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	identityerrors "nusakarya/contexts/identity-access/identity-service/domain/errors"
	karyaerrors "nusakarya/contexts/provenance/karya-registry/domain/errors"
	licenseerrors "nusakarya/contexts/provenance/license-service/domain/errors"
)

// envelope is the uniform response wrapper on every route. Code is null on
// success; data is null on failure.
type envelope struct {
	Status  int     `json:"status"`
	Code    *string `json:"code"`
	Message *string `json:"message"`
	Data    any     `json:"data"`
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	body := envelope{
		Status: status,
		Data:   data,
	}
	if message != "" {
		body.Message = &message
	}
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	body := envelope{
		Status:  status,
		Code:    &code,
		Message: &message,
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeDomainError maps the failure taxonomy to status/code pairs. Anything
// unclassified becomes a 500 with a generic message; internal diagnostic
// detail never reaches the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identityerrors.ErrMissingAuthHeader),
		errors.Is(err, identityerrors.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, identityerrors.ErrUserNotFound),
		errors.Is(err, karyaerrors.ErrOwnerNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found in database")
	case errors.Is(err, karyaerrors.ErrKaryaNotFound),
		errors.Is(err, licenseerrors.ErrKaryaNotFound):
		writeError(w, http.StatusNotFound, "KARYA_NOT_FOUND", "Karya not found")
	case errors.Is(err, karyaerrors.ErrFileHashExists):
		writeError(w, http.StatusConflict, "FILE_HASH_EXISTS", "A karya with this file hash already exists")
	case errors.Is(err, karyaerrors.ErrHashRequired),
		errors.Is(err, karyaerrors.ErrInvalidKaryaInput),
		errors.Is(err, licenseerrors.ErrInvalidLicenseInput),
		errors.Is(err, identityerrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "SYSTEM_ERROR", "An error occurred on the system")
	}
}
