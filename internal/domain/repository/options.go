package repository

// Default and maximum page sizes for list queries.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ListOptions bounds a list query.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps the options into the supported range.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}

	return o
}

// GameFilter narrows a game listing.
type GameFilter struct {
	ListOptions

	// Name matches games whose name contains it, case-insensitively. Empty matches all.
	Name string
}

// OwnedGameFilter narrows an ownership listing. Zero values match all.
type OwnedGameFilter struct {
	ListOptions

	SteamID string
	AppID   int64
}
