package model

type Notes = []uint8

// Sonority is a set of MIDI keys sounding together.
type Sonority struct {
	AbsTickOffset uint32
	Notes         Notes
}

// ClassifiedSonority is a sonority with its chord reading. Keys are ints
// so they encode as numbers rather than base64.
type ClassifiedSonority struct {
	AbsTickOffset uint32   `json:"offset" dynamodbav:"Offset"`
	Keys          []int    `json:"keys" dynamodbav:"Keys"`
	Spelled       []string `json:"notes" dynamodbav:"Notes"`
	Quality       string   `json:"quality" dynamodbav:"Quality"`
	Inversion     string   `json:"inversion" dynamodbav:"Inversion"`
	Label         string   `json:"label" dynamodbav:"Label"`
}

// Analysis is the chord reading of one MIDI file.
type Analysis struct {
	ID         string               `json:"id" dynamodbav:"PK"`
	Filename   string               `json:"filename" dynamodbav:"Filename"`
	Sonorities []ClassifiedSonority `json:"sonorities" dynamodbav:"Sonorities"`
	// keyed by English chord label, unknowns under "undefined"
	Counts map[string]int `json:"counts" dynamodbav:"Counts"`
	// sonorities outside 3-4 notes
	Skipped int `json:"skipped" dynamodbav:"Skipped"`
}
