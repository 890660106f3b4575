package media

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayCountryNames resolves ISO country codes to English display names.
// Codes that fail to resolve are dropped.
func DisplayCountryNames(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		region, err := language.ParseRegion(code)
		if err != nil {
			continue
		}
		name := display.English.Regions().Name(region)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
