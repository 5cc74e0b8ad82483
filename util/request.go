package util

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
)

var ErrEmptyBody = errors.New("request body is empty")

// ReadJSON decodes the JSON request body into v.
func ReadJSON(r *http.Request, v interface{}) error {
	err := render.DecodeJSON(r.Body, v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}
