package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"numscore/internal/heuristic"
	"numscore/internal/scorer"
)

type scoreRequest struct {
	Kind      string  `json:"kind"`
	Input     *string `json:"input"`
	MaxDigits *int    `json:"max_digits"`
}

type batchRequest struct {
	Kind   string    `json:"kind"`
	Inputs []*string `json:"inputs"`
}

// NewMux builds the HTTP API on top of sc.
func NewMux(sc *scorer.Scorer) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/score", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		in := heuristic.FromPtr(req.Input)
		var (
			res scorer.Result
			err error
		)
		if req.MaxDigits != nil {
			res, err = sc.ScoreCustom(in, *req.MaxDigits)
		} else {
			var kind heuristic.Kind
			if kind, err = heuristic.ParseKind(req.Kind); err == nil {
				res, err = sc.Score(kind, in)
			}
		}
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
	})

	mux.HandleFunc("/api/v1/score/batch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		kind, err := heuristic.ParseKind(req.Kind)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		inputs := make([]heuristic.Input, len(req.Inputs))
		for i, p := range req.Inputs {
			inputs[i] = heuristic.FromPtr(p)
		}
		results, err := sc.ScoreAll(kind, inputs)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"kind": kind.String(), "results": results})
	})

	mux.HandleFunc("/api/v1/best/", func(w http.ResponseWriter, r *http.Request) {
		kind, err := heuristic.ParseKind(strings.TrimPrefix(r.URL.Path, "/api/v1/best/"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		switch r.Method {
		case http.MethodGet:
			n := sc.Config().TopK
			if v := r.URL.Query().Get("n"); v != "" {
				if n, err = strconv.Atoi(v); err != nil {
					writeError(w, http.StatusBadRequest, "n must be an integer")
					return
				}
			}
			best, err := sc.Best(kind, n)
			if err != nil {
				writeError(w, statusFor(err), err.Error())
				return
			}
			writeJSON(w, http.StatusOK, best)
		case http.MethodDelete:
			if err := sc.ResetArchive(kind); err != nil {
				writeError(w, statusFor(err), err.Error())
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		default:
			http.NotFound(w, r)
		}
	})

	return mux
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, heuristic.ErrUnknownKind), errors.Is(err, heuristic.ErrNegativeDigits):
		return http.StatusBadRequest
	case errors.Is(err, scorer.ErrNoArchive):
		return http.StatusServiceUnavailable
	}
	log.Printf("request failed: %v", err)
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
