package model

// EndangermentStatus follows the UNESCO vitality scale.
type EndangermentStatus string

const (
	StatusSafe                 EndangermentStatus = "safe"
	StatusVulnerable           EndangermentStatus = "vulnerable"
	StatusDefinitelyEndangered EndangermentStatus = "definitely_endangered"
	StatusSeverelyEndangered   EndangermentStatus = "severely_endangered"
	StatusCriticallyEndangered EndangermentStatus = "critically_endangered"
)

// Language is one entry of the static language catalog.
type Language struct {
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	NativeName  string             `json:"nativeName"`
	Region      string             `json:"region"`
	Country     string             `json:"country"`
	Speakers    int64              `json:"speakers"`
	Status      EndangermentStatus `json:"status"`
	Family      string             `json:"family"`
	Script      string             `json:"script,omitempty"`
	Tribal      bool               `json:"isTribal,omitempty"`
	Description string             `json:"description,omitempty"`
}
