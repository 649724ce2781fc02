package response_models

// ImportResult reports a best-effort bulk import. Rows that fail keep
// their error; rows that duplicate an existing guest are skipped.
type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors"`
}

type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
