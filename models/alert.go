package models

// Alert is one disaster report as stored in alerts.json. Everything except
// the resolved fields is immutable after creation.
type Alert struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Desc      string  `json:"desc"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	User      string  `json:"user"`
	Timestamp string  `json:"timestamp"` // "2006-01-02 15:04:05"
	Resolved  bool    `json:"resolved"`

	ResolvedBy string `json:"resolved_by,omitempty"`
	ResolvedAt string `json:"resolved_at,omitempty"`
}
