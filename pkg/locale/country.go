package locale

import (
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezone = "America/Argentina/Cordoba"
	DefaultRegion   = "AR"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 country code (e.g., "AR")
	Name            string   // Human-readable country name
	PhonePrefixes   []string // Valid phone number prefixes (e.g., ["+54", "54"])
	DefaultTimezone string   // IANA timezone identifier
}

var Countries = map[string]Country{
	"AR": {
		Code:            "AR",
		Name:            "Argentina",
		PhonePrefixes:   []string{"+54", "54"},
		DefaultTimezone: DefaultTimezone,
	},
	"UY": {
		Code:            "UY",
		Name:            "Uruguay",
		PhonePrefixes:   []string{"+598", "598"},
		DefaultTimezone: "America/Montevideo",
	},
}

// InferCountryFromPhone returns the country whose prefix the phone number
// starts with, or nil.
func InferCountryFromPhone(phone string) *Country {
	normalized := strings.TrimSpace(phone)

	for _, country := range Countries {
		for _, prefix := range country.PhonePrefixes {
			if strings.HasPrefix(normalized, prefix) {
				return &country
			}
		}
	}

	return nil
}

// LoadLocation loads an IANA zone, falling back to the clinic's zone and then
// to UTC.
func LoadLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
