package domain

import "testing"

func TestClassifyPlatform(t *testing.T) {
	cases := []struct {
		name        string
		offerLink   string
		companyLink string
		want        string
	}{
		{"linkedin offer", "https://www.linkedin.com/jobs/view/42", "", "LinkedIn"},
		{"indeed offer", "https://fr.indeed.com/viewjob?jk=1", "", "Indeed"},
		{"glassdoor offer", "https://www.glassdoor.fr/job/1", "", "Glassdoor"},
		{"wttj short", "https://wttj.co/jobs/1", "", "WTTJ"},
		{"wttj full", "https://www.welcometothejungle.com/fr/companies/x", "", "WTTJ"},
		{"hellowork", "https://www.hellowork.com/fr/emploi/1", "", "HelloWork"},
		{"case insensitive", "https://WWW.LINKEDIN.COM/jobs/1", "", "LinkedIn"},
		{"company link fallback", "", "https://indeed.com/cmp/acme", "Indeed"},
		{"offer link wins over company link", "https://indeed.com/1", "https://linkedin.com/x", "Indeed"},
		{"unrecognised", "https://jobs.acme.example/1", "", "Web"},
		{"no links", "", "", "Web"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyPlatform(tc.offerLink, tc.companyLink); got != tc.want {
				t.Fatalf("ClassifyPlatform(%q, %q) = %q, want %q", tc.offerLink, tc.companyLink, got, tc.want)
			}
		})
	}
}
