package model

type IntervalRequestBody struct {
	Low  string `json:"low"`
	High string `json:"high"`
	// Auto orders the pair by staff position first.
	Auto bool `json:"auto"`
}

type IntervalResponse struct {
	Low     string `json:"low"`
	High    string `json:"high"`
	Number  int    `json:"number"`
	Degree  int    `json:"degree"`
	Quality string `json:"quality"`
	Label   string `json:"label"`
}

type ChordRequestBody struct {
	Notes []string `json:"notes"`
}

type ChordKeysRequestBody struct {
	Keys []int `json:"keys"`
}

type ChordResponse struct {
	Notes     []string `json:"notes"`
	Quality   string   `json:"quality"`
	Inversion string   `json:"inversion"`
	Figure    string   `json:"figure"`
	Root      string   `json:"root,omitempty"`
	Label     string   `json:"label"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
