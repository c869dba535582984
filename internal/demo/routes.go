// Package demo serves the two demonstration endpoints.
package demo

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/demolink/internal/envelope"
	"github.com/ziadkadry99/demolink/internal/hostaddr"
	"github.com/ziadkadry99/demolink/internal/user"
)

const (
	linkMessage       = "Link to /test"
	successMessage    = "success"
	resolutionMessage = "could not resolve host address"
)

// RegisterRoutes mounts GET / and GET /test on the given router.
func RegisterRoutes(r chi.Router, links *LinkBuilder, log logrus.FieldLogger) {
	r.Get("/", handleLink(links, log))
	r.Get("/test", handleTest())
}

func handleLink(links *LinkBuilder, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := links.TestURL(r.Context())
		if err != nil {
			var resErr *hostaddr.AddressResolutionError
			if !errors.As(err, &resErr) {
				resErr = &hostaddr.AddressResolutionError{Err: err}
			}
			log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"error":      resErr,
			}).Error("building test link failed")
			envelope.Write[any](w, http.StatusInternalServerError, envelope.New[any](nil, resolutionMessage))
			return
		}

		envelope.Write(w, http.StatusOK, envelope.New([]string{link}, linkMessage))
	}
}

func handleTest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		envelope.Write(w, http.StatusOK, envelope.New(user.Sample(), successMessage))
	}
}
