//
// api.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package api implements an HTTP interface for SM3 digests and SM4
// encryption.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/markkurossi/gmsm"
	"github.com/markkurossi/gmsm/sm3"
	"github.com/sirupsen/logrus"
)

// MaxBodySize limits the size of request bodies.
const MaxBodySize = 8 * 1024 * 1024

// DigestRequest is the request of the SM3 endpoint.
type DigestRequest struct {
	Data     string `json:"data"`
	Encoding string `json:"encoding,omitempty"`
}

// DigestResponse is the response of the SM3 endpoint. Hex digests are
// returned in Digest and raw digests in Raw. JSON carries Raw as
// base64.
type DigestResponse struct {
	Digest string `json:"digest,omitempty"`
	Raw    []byte `json:"raw,omitempty"`
}

// CipherRequest is the request of the SM4 endpoints. The key and IV
// are given as text. Plaintext and base64 ciphertext are given in
// Data. With the "text" output form the ciphertext is binary and it
// is given in Raw, which JSON carries as base64.
type CipherRequest struct {
	Key    string `json:"key"`
	IV     string `json:"iv,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Output string `json:"output,omitempty"`
	Strict bool   `json:"strict,omitempty"`
	Data   string `json:"data,omitempty"`
	Raw    []byte `json:"raw,omitempty"`
}

// CipherResponse is the response of the SM4 endpoints. Like in
// CipherRequest, "text" form ciphertext is returned in Raw and all
// other results in Data.
type CipherResponse struct {
	Data string `json:"data,omitempty"`
	Raw  []byte `json:"raw,omitempty"`
}

// ErrorResponse is returned on failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	log *logrus.Logger
}

// NewRouter creates the HTTP handler for the API.
func NewRouter(log *logrus.Logger) http.Handler {
	s := &server{
		log: log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logger)

	r.Get("/health", s.health)
	r.Post("/sm3", s.digest)
	r.Route("/sm4", func(r chi.Router) {
		r.Post("/encrypt", s.encrypt)
		r.Post("/decrypt", s.decrypt)
	})

	return r
}

func (s *server) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
			"request":  middleware.GetReqID(r.Context()),
		}).Info("request")
	})
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	s.reply(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (s *server) digest(w http.ResponseWriter, r *http.Request) {
	var req DigestRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	enc, err := sm3.ParseEncoding(req.Encoding)
	if err != nil {
		s.fail(w, err)
		return
	}
	var resp DigestResponse
	if enc == sm3.Raw {
		sum := gmsm.DigestBytes([]byte(req.Data))
		resp.Raw = sum[:]
	} else {
		resp.Digest = gmsm.DigestString(req.Data, enc)
	}
	s.reply(w, http.StatusOK, &resp)
}

func (s *server) encrypt(w http.ResponseWriter, r *http.Request) {
	s.crypt(w, r, true)
}

func (s *server) decrypt(w http.ResponseWriter, r *http.Request) {
	s.crypt(w, r, false)
}

func (s *server) crypt(w http.ResponseWriter, r *http.Request, encrypt bool) {
	var req CipherRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	c, err := newCipher(&req)
	if err != nil {
		s.fail(w, err)
		return
	}
	binary := c.Output() == gmsm.OutputText

	var resp CipherResponse
	if encrypt {
		var ct string
		ct, err = c.Encrypt(req.Data)
		if binary {
			resp.Raw = []byte(ct)
		} else {
			resp.Data = ct
		}
	} else {
		input := req.Data
		if binary {
			input = string(req.Raw)
		}
		resp.Data, err = c.Decrypt(input)
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	s.reply(w, http.StatusOK, &resp)
}

func newCipher(req *CipherRequest) (*gmsm.Cipher, error) {
	mode, err := gmsm.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	output, err := gmsm.ParseOutput(req.Output)
	if err != nil {
		return nil, err
	}
	config := gmsm.Config{
		Key:    []byte(req.Key),
		Mode:   mode,
		Output: output,
		Strict: req.Strict,
	}
	if len(req.IV) > 0 {
		config.IV = []byte(req.IV)
	}
	return gmsm.New(config)
}

func (s *server) decode(w http.ResponseWriter, r *http.Request,
	v interface{}) error {

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (s *server) fail(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		status = http.StatusRequestEntityTooLarge
	}
	s.log.WithError(err).Warn("request failed")
	s.reply(w, status, &ErrorResponse{
		Error: err.Error(),
	})
}

func (s *server) reply(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}
