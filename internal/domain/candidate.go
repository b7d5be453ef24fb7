package domain

// CandidateRecord is a remote record a provider offers as a possible source
// for some canonical ID.
type CandidateRecord struct {
	Name      string   `json:"name"`
	Title     string   `json:"title,omitempty"`
	URL       string   `json:"url"`
	Fallbacks []string `json:"fallbacks,omitempty"`
	Provider  string   `json:"provider"`
	// CatalogID pins the candidate to one canonical ID (static tables).
	CatalogID string `json:"catalog_id,omitempty"`
}

// Text returns the display text the matcher scans
func (c CandidateRecord) Text() string {
	if c.Title == "" {
		return c.Name
	}
	return c.Name + " " + c.Title
}

// URLs returns the primary URL followed by fallbacks
func (c CandidateRecord) URLs() []string {
	urls := make([]string, 0, 1+len(c.Fallbacks))
	if c.URL != "" {
		urls = append(urls, c.URL)
	}
	for _, u := range c.Fallbacks {
		if u != "" && u != c.URL {
			urls = append(urls, u)
		}
	}
	return urls
}

// MatchResult is the candidate selected for a catalog entry
type MatchResult struct {
	Candidate CandidateRecord
	Score     int
}
