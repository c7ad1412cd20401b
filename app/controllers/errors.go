package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/warehouse/app/repositories"
	"github.com/shashiranjanraj/warehouse/app/services"
	"github.com/shashiranjanraj/warehouse/pkg/bind"
	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"github.com/shashiranjanraj/warehouse/pkg/response"
)

// conflictMessages is checked in order; the first match names the field.
var conflictMessages = []struct {
	err error
	msg string
}{
	{repositories.ErrDuplicateEmail, "A supplier with this email already exists."},
	{repositories.ErrDuplicatePhone, "A supplier with this phone already exists."},
	{repositories.ErrDuplicateDescription, "A product with this description already exists."},
	{repositories.ErrDuplicateAddress, "A storage with this address already exists."},
	{repositories.ErrDuplicateLink, "This link already exists."},
	{repositories.ErrNegativeLeftover, "The leftover cannot be negative."},
	{repositories.ErrUnknownReference, "The referenced product, supplier or storage does not exist."},
}

// fail maps a service error to its HTTP status.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		response.ValidationError(w, ve.Fields)
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w, "Not found")
	case errors.Is(err, repositories.ErrConflict):
		for _, c := range conflictMessages {
			if errors.Is(err, c.err) {
				response.Conflict(w, c.msg)
				return
			}
		}
		response.Conflict(w, "The request conflicts with existing data.")
	default:
		logger.WithCtx(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decode binds the JSON body into dest, answering 400 or 422 itself when
// the body is unusable. It reports whether the handler should go on.
func decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	errs, err := bind.JSON(r, dest)
	switch {
	case err != nil:
		response.BadRequest(w, err.Error())
		return false
	case errs != nil:
		response.ValidationError(w, errs)
		return false
	}
	return true
}

type created struct {
	OK bool `json:"ok"`
	ID uint `json:"id"`
}

type ok struct {
	OK bool `json:"ok"`
}

var okBody = ok{OK: true}
