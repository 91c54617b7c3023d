// Package quiz implements the round engine for the capitals quiz: difficulty
// buckets, country selection, answer matching, and per-session scoring.
// It has no transport or storage dependencies.
package quiz

// Country is one record of the quiz dataset. Records are produced by the
// offline scraper pipeline and are immutable at runtime.
type Country struct {
	Name       string `json:"countryName"`
	Capital    string `json:"capital"`
	WikiURL    string `json:"wikiUrl"`
	Population int64  `json:"population"`
}
