package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const requestIDHeader = "X-Request-ID"

var errBadRequest = errors.New("bad request")

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the fretboard over HTTP",
	Long: `Serves tunings, notes, chords, scales and fretboards as JSON. The listen
address comes from FRETDEX_ADDR.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := constants.GetListenAddr()
		slog.Info("listening", "addr", addr)
		srv := &http.Server{
			Addr:              addr,
			Handler:           NewRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		return srv.ListenAndServe()
	},
}

// NewRouter wires every route behind request ID and CORS middleware.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/tunings", HandleTunings).Methods(http.MethodGet)
	router.HandleFunc("/tunings/{id}", HandleTuning).Methods(http.MethodGet)
	router.HandleFunc("/note", HandleNote).Methods(http.MethodGet)
	router.HandleFunc("/types", HandleTypes).Methods(http.MethodGet)
	router.HandleFunc("/selection", HandleSelection).Methods(http.MethodGet)
	router.HandleFunc("/fretboard", HandleFretboard).Methods(http.MethodGet)
	router.HandleFunc("/identify", HandleIdentify).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

// requestID tags each request and its log lines, keeping a caller supplied ID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", "err", err)
	}
}

// writeError maps lookup failures to 404 and everything else to 400.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrUnknownTuning) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func queryPreference(r *http.Request) (enharmonic.Preference, error) {
	s := r.URL.Query().Get("enharmonic")
	if s == "" {
		return enharmonic.Auto, nil
	}
	return parsePreference(s)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", errBadRequest, key, s)
	}
	return v, nil
}

func queryTuning(r *http.Request) (tuning.ID, tuning.Instrument, error) {
	id := tuning.ID(r.URL.Query().Get("tuning"))
	if id == "" {
		id = tuning.DefaultID
	}
	inst, err := lookupInstrument(id)
	return id, inst, err
}

// querySelection reads root and type. Both are required.
func querySelection(r *http.Request) (theory.Selection, error) {
	q := r.URL.Query()
	if q.Get("root") == "" || q.Get("type") == "" {
		return theory.Selection{}, fmt.Errorf("%w: root and type are required", errBadRequest)
	}
	root, err := parseClass(q.Get("root"))
	if err != nil {
		return theory.Selection{}, err
	}
	t, err := parseType(q.Get("type"))
	if err != nil {
		return theory.Selection{}, err
	}
	return theory.NewSelection(root, t), nil
}

func HandleTunings(w http.ResponseWriter, r *http.Request) {
	presets := tuning.All()
	if c := r.URL.Query().Get("category"); c != "" {
		presets = tuning.ByCategory(tuning.Category(c))
	}
	writeJSON(w, http.StatusOK, model.TuningsResponse{
		Categories: tuning.Categories(),
		Tunings:    presets,
	})
}

func HandleTuning(w http.ResponseWriter, r *http.Request) {
	id := tuning.ID(mux.Vars(r)["id"])
	p, ok := tuning.Lookup(id)
	if !ok {
		writeError(w, fmt.Errorf("%w: %q", ErrUnknownTuning, id))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func HandleNote(w http.ResponseWriter, r *http.Request) {
	id, inst, err := queryTuning(r)
	if err != nil {
		writeError(w, err)
		return
	}
	str, err := queryInt(r, "string", -1)
	if err == nil && (str < 0 || str >= len(inst.Strings)) {
		err = fmt.Errorf("%w: string must be 0-%d", errBadRequest, len(inst.Strings)-1)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	fret, err := queryInt(r, "fret", -1)
	if err == nil && fret < 0 {
		err = fmt.Errorf("%w: fret must be 0 or more", errBadRequest)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	pref, err := queryPreference(r)
	if err != nil {
		writeError(w, err)
		return
	}

	n := inst.Strings[str].NoteAt(fret)
	writeJSON(w, http.StatusOK, model.NoteResponse{
		Tuning: id,
		String: str,
		Fret:   fret,
		Note:   n,
		Label:  enharmonic.DisplaySpelling(n.Class.Sharp(), pref, ""),
	})
}

func HandleTypes(w http.ResponseWriter, r *http.Request) {
	var types []model.TypeInfo
	for _, t := range theory.AllTypes() {
		types = append(types, model.TypeInfo{
			ID:        t,
			Kind:      t.Kind(),
			Label:     t.Label(),
			Intervals: theory.Intervals(t),
		})
	}
	common := append(append([]theory.Type{}, theory.CommonChords...), theory.CommonScales...)
	writeJSON(w, http.StatusOK, model.TypesResponse{
		Types:      types,
		Categories: theory.Categories(),
		Common:     common,
	})
}

func HandleSelection(w http.ResponseWriter, r *http.Request) {
	sel, err := querySelection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pref, err := queryPreference(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res := model.SelectionResponse{Selection: sel}
	spell := enharmonic.Resolver{Preference: pref, Root: sel.Root().Sharp()}
	for _, c := range sel.Notes() {
		info, _ := sel.DegreeInfo(c)
		res.Spelled = append(res.Spelled, spell.Spell(c))
		res.Degrees = append(res.Degrees, info)
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleFretboard(w http.ResponseWriter, r *http.Request) {
	_, inst, err := queryTuning(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var sel *theory.Selection
	q := r.URL.Query()
	if q.Get("root") != "" || q.Get("type") != "" {
		s, err := querySelection(r)
		if err != nil {
			writeError(w, err)
			return
		}
		sel = &s
	}
	lo, err := queryInt(r, "min", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	hi, err := queryInt(r, "max", 12)
	if err != nil {
		writeError(w, err)
		return
	}
	win := fretboard.Window{Min: lo, Max: hi}
	if err := checkWindow(win); err != nil {
		writeError(w, err)
		return
	}
	pref, err := queryPreference(r)
	if err != nil {
		writeError(w, err)
		return
	}

	board := fretboard.Project(inst, sel, pref, win)
	highlighted := board.Highlighted()
	if highlighted == nil {
		highlighted = []pitch.Note{}
	}
	writeJSON(w, http.StatusOK, model.FretboardResponse{Board: board, Highlighted: highlighted})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, fmt.Errorf("%w: could not parse body: %v", errBadRequest, err))
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, fmt.Errorf("%w: notes is empty", errBadRequest))
		return
	}
	var classes []pitch.Class
	for _, n := range input.Notes {
		c, err := parseClass(n)
		if err != nil {
			writeError(w, err)
			return
		}
		classes = append(classes, c)
	}
	matches := theory.Identify(classes)
	if matches == nil {
		matches = []theory.Selection{}
	}
	writeJSON(w, http.StatusOK, model.IdentifyResponse{Matches: matches})
}
