package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used for numbers typed without a country code.
const DefaultRegion = "AR"

var supportedRegions = []string{
	DefaultRegion,
	"UY",
	"CL",
}

// NormalizePhone converts a phone number to E.164. Input that does not parse
// in any supported region is returned trimmed.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err == nil {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}
	return phone
}

// FormatPhoneDisplay renders a phone number in international format for
// showing it back to the visitor. Unparseable input is returned trimmed.
func FormatPhoneDisplay(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	parsedNumber, err := phonenumbers.Parse(phone, DefaultRegion)
	if err != nil {
		return phone
	}
	return phonenumbers.Format(parsedNumber, phonenumbers.INTERNATIONAL)
}
