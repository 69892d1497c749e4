// Package visa answers visa-requirement lookups from a static table. The
// data set is advisory only and keyed by nationality and destination
// country.
package visa

import "strings"

const defaultRequirement = "Visa requirements vary. Please check with the embassy or consulate of your destination country."

// requirements is keyed "<nationality>-<destination>". Nationalities use
// the demonym codes the app presents (United_States, British, Canadian,
// ...); destinations use plain country names.
var requirements = map[string]string{
	"United_States-France":         "No visa required for stays up to 90 days.",
	"United_States-United Kingdom": "No visa required for stays up to 6 months.",
	"United_States-China":          "Visa required. Apply at a Chinese embassy or consulate before travel.",
	"United_States-Russia":         "Visa required. Apply in advance at a Russian consulate.",
	"United_States-Brazil":         "No visa required for stays up to 90 days.",
	"United_States-Australia":      "Electronic Travel Authority (ETA) required before arrival.",
	"United_States-India":          "e-Visa available online. Apply at least 4 days before travel.",
	"United_States-Turkey":         "e-Visa available online before arrival.",
	"British-France":               "No visa required for stays up to 90 days in any 180-day period.",
	"British-United States":        "ESTA authorization required under the Visa Waiver Program.",
	"British-Australia":            "eVisitor visa required. Free to apply online.",
	"British-India":                "e-Visa available online. Apply before travel.",
	"Canadian-United States":       "No visa required for tourist visits.",
	"Canadian-France":              "No visa required for stays up to 90 days.",
	"Australian-United States":     "ESTA authorization required under the Visa Waiver Program.",
	"Australian-United Kingdom":    "No visa required for stays up to 6 months.",
	"German-United States":         "ESTA authorization required under the Visa Waiver Program.",
	"German-Thailand":              "No visa required for stays up to 30 days.",
	"French-United States":         "ESTA authorization required under the Visa Waiver Program.",
	"French-Japan":                 "No visa required for stays up to 90 days.",
	"Indian-United States":         "B-1/B-2 visitor visa required. Apply at a US embassy or consulate.",
	"Indian-United Kingdom":        "Standard Visitor visa required. Apply online before travel.",
	"Indian-Thailand":              "Visa on arrival available for stays up to 15 days.",
	"Chinese-United States":        "B-1/B-2 visitor visa required. Apply at a US embassy or consulate.",
	"Chinese-Japan":                "Visa required. Apply at a Japanese embassy or consulate.",
	"Japanese-United States":       "ESTA authorization required under the Visa Waiver Program.",
	"Japanese-France":              "No visa required for stays up to 90 days.",
	"Brazilian-France":             "No visa required for stays up to 90 days.",
	"Russian-Turkey":               "No visa required for stays up to 60 days.",
	"Turkish-Japan":                "No visa required for stays up to 90 days.",
}

// Check returns the requirement text for the pair, or a generic fallback
// when the pair is not in the table.
func Check(nationality, destination string) string {
	key := strings.TrimSpace(nationality) + "-" + strings.TrimSpace(destination)
	if req, ok := requirements[key]; ok {
		return req
	}
	return defaultRequirement
}
