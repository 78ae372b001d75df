package analysis

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/tertian/chord"
	"github.com/jsphweid/tertian/lang"
	"github.com/jsphweid/tertian/logging"
	"github.com/jsphweid/tertian/midi"
	"github.com/jsphweid/tertian/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Analyzer reads chords out of MIDI files. Classifications are memoized
// per chord key, so an Analyzer is not safe for concurrent use.
type Analyzer struct {
	locale lang.Locale
	cache  map[string]chord.Chord
	log    logging.Logger
}

func New(locale lang.Locale) *Analyzer {
	return &Analyzer{
		locale: locale,
		cache:  make(map[string]chord.Chord),
		log:    logging.WithFields(logging.Fields{"component": "analysis"}),
	}
}

// Classify reads one sonority. It reports false for sonorities that are
// not 3 or 4 notes.
func (a *Analyzer) Classify(son model.Sonority) (model.ClassifiedSonority, bool, error) {
	cs, _, ok, err := a.classify(son)
	return cs, ok, err
}

func (a *Analyzer) classify(son model.Sonority) (model.ClassifiedSonority, chord.Chord, bool, error) {
	if len(son.Notes) != 3 && len(son.Notes) != 4 {
		return model.ClassifiedSonority{}, chord.Chord{}, false, nil
	}

	notes := append(model.Notes(nil), son.Notes...)
	c, err := a.chordFor(notes)
	if err != nil {
		return model.ClassifiedSonority{}, chord.Chord{}, false, err
	}

	res := model.ClassifiedSonority{
		AbsTickOffset: son.AbsTickOffset,
		Quality:       chord.QualityName(c.Quality(), c.IsSeventh()),
		Inversion:     c.Inversion().String(),
		Label:         c.Label(a.locale),
	}
	for _, k := range notes {
		res.Keys = append(res.Keys, int(k))
	}
	for _, p := range c.Pitches() {
		res.Spelled = append(res.Spelled, p.String())
	}
	return res, c, true, nil
}

func (a *Analyzer) chordFor(notes model.Notes) (chord.Chord, error) {
	key := chord.CreateChordKey(notes)
	if c, ok := a.cache[key]; ok {
		return c, nil
	}
	c, err := chord.ClassifyKeys(notes)
	if err != nil {
		return chord.Chord{}, err
	}
	a.cache[key] = c
	return c, nil
}

// AnalyzeSMF classifies every 3 or 4 note sonority of s.
func (a *Analyzer) AnalyzeSMF(filename string, s *smf.SMF) (model.Analysis, error) {
	res := model.Analysis{
		ID:       uuid.New().String(),
		Filename: filename,
		Counts:   make(map[string]int),
	}

	for _, son := range midi.GetSonorities(s) {
		cs, c, ok, err := a.classify(son)
		if err != nil {
			return model.Analysis{}, fmt.Errorf("classifying sonority at tick %d: %w", son.AbsTickOffset, err)
		}
		if !ok {
			res.Skipped++
			continue
		}
		res.Sonorities = append(res.Sonorities, cs)

		// counted under the English label whatever the locale
		res.Counts[c.String()]++
	}
	return res, nil
}

func (a *Analyzer) ProcessMidiFile(path string) (model.Analysis, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return model.Analysis{}, err
	}
	return a.AnalyzeSMF(filepath.Base(path), parsed)
}

// ProcessAllMidiFiles analyzes paths in order. Files that fail are logged
// and skipped.
func (a *Analyzer) ProcessAllMidiFiles(paths []string) []model.Analysis {
	var res []model.Analysis
	for i, path := range paths {
		a.log.Info("processing midi file", logging.Fields{"n": i + 1, "of": len(paths), "path": path})
		an, err := a.ProcessMidiFile(path)
		if err != nil {
			a.log.Warn("skipping midi file", logging.Fields{"path": path, "reason": err.Error()})
			continue
		}
		res = append(res, an)
	}
	return res
}
