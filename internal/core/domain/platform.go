package domain

import "strings"

// platformRules maps link substrings to platform names. Order matters: the
// first match wins.
var platformRules = []struct {
	needle string
	name   string
}{
	{"linkedin", "LinkedIn"},
	{"indeed", "Indeed"},
	{"glassdoor", "Glassdoor"},
	{"wttj", "WTTJ"},
	{"welcometothejungle", "WTTJ"},
	{"hellowork", "HelloWork"},
}

// ClassifyPlatform derives a platform name from an application's offer link,
// falling back to the company link. Unrecognised or empty links classify as
// "Web".
func ClassifyPlatform(offerLink, companyLink string) string {
	link := offerLink
	if link == "" {
		link = companyLink
	}
	if link == "" {
		return "Web"
	}
	link = strings.ToLower(link)
	for _, r := range platformRules {
		if strings.Contains(link, r.needle) {
			return r.name
		}
	}
	return "Web"
}
