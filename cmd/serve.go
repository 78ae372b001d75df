package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/tertian/chord"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/interval"
	"github.com/jsphweid/tertian/lang"
	"github.com/jsphweid/tertian/logging"
	"github.com/jsphweid/tertian/model"
	"github.com/jsphweid/tertian/pitch"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves interval and chord names over HTTP",
	Long:  `Serves /interval, /chord and /chord/keys on PORT (8080 by default).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestIDMiddleware)
	router.HandleFunc("/healthz", HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/interval", HandleInterval).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/chord", HandleChord).Methods(http.MethodPost)
	router.HandleFunc("/chord/keys", HandleChordKeys).Methods(http.MethodPost)
	return cors.Default().Handler(router)
}

func serve() error {
	addr := ":" + constants.GetPort()
	logging.Info("listening", logging.Fields{"addr": addr})
	return http.ListenAndServe(addr, NewRouter())
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		logging.Debug("request", logging.Fields{"id": id, "method": r.Method, "path": r.URL.Path})
		next.ServeHTTP(w, r)
	})
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

func HandleInterval(w http.ResponseWriter, r *http.Request) {
	loc, err := requestLocale(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.IntervalRequestBody
	if r.Method == http.MethodPost {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
			return
		}
	} else {
		q := r.URL.Query()
		input.Low = q.Get("low")
		input.High = q.Get("high")
	}
	if r.URL.Query().Get("order") == "auto" {
		input.Auto = true
	}

	ps, err := pitch.ParseAll([]string{input.Low, input.High})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var iv interval.Interval
	if input.Auto {
		iv = interval.Between(ps[0], ps[1])
	} else {
		iv = interval.Classify(ps[0], ps[1])
	}

	writeJSON(w, model.IntervalResponse{
		Low:     iv.Low.String(),
		High:    iv.High.String(),
		Number:  iv.Number,
		Degree:  iv.Degree,
		Quality: iv.Quality.String(),
		Label:   iv.Label(loc),
	})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	loc, err := requestLocale(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.ChordRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	ps, err := pitch.ParseAll(input.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := chord.Classify(ps)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, chordResponse(c, loc))
}

func HandleChordKeys(w http.ResponseWriter, r *http.Request) {
	loc, err := requestLocale(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var input model.ChordKeysRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}
	keys := make([]uint8, 0, len(input.Keys))
	for _, k := range input.Keys {
		if k < 0 || k > 127 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %d", pitch.ErrKeyOutOfMIDIRange, k))
			return
		}
		keys = append(keys, uint8(k))
	}
	c, err := chord.ClassifyKeys(keys)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, chordResponse(c, loc))
}

func chordResponse(c chord.Chord, loc lang.Locale) model.ChordResponse {
	res := model.ChordResponse{
		Notes:     []string{},
		Quality:   chord.QualityName(c.Quality(), c.IsSeventh()),
		Inversion: c.Inversion().String(),
		Figure:    c.Figure(),
		Label:     c.Label(loc),
	}
	for _, p := range c.Pitches() {
		res.Notes = append(res.Notes, p.String())
	}
	if root, ok := c.Root(); ok {
		res.Root = root.String()
	}
	return res
}

// requestLocale prefers ?lang= over Accept-Language.
func requestLocale(r *http.Request) (lang.Locale, error) {
	if name := r.URL.Query().Get("lang"); name != "" {
		return lang.Parse(name)
	}
	return lang.Match(r.Header.Get("Accept-Language")), nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err, "could not encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if errors.Is(err, chord.ErrInvalidChordArity) || errors.Is(err, pitch.ErrInvalidPitchSpec) {
		logging.Debug("rejected request", logging.Fields{"reason": err.Error()})
	} else {
		logging.Warn("rejected request", logging.Fields{"reason": err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()}); encErr != nil {
		logging.Error(encErr, "could not encode error response")
	}
}
