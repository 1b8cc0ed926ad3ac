package model

// QueryRequest represents a natural language query request
type QueryRequest struct {
	Query string `json:"query"`
}

// Filter is the structured filter extracted from a natural language query,
// used by the frontend to highlight matching buildings. Value is a number
// or a string depending on Attribute.
type Filter struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     any    `json:"value"`
}

// Valid reports whether all three fields are populated. The zero Filter is
// the uniform failure signal returned when no filter could be extracted.
func (f Filter) Valid() bool {
	return f.Attribute != "" && f.Operator != "" && f.Value != nil
}
