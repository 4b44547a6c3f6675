package handlers

import (
	"net/http"

	"joblane-backend/utils/response"
)

// storeError reports a persistence failure with the underlying message for
// operator diagnosis.
func storeError(w http.ResponseWriter, message string, err error) {
	response.ErrorDetails(w, http.StatusInternalServerError, message, err.Error())
}
