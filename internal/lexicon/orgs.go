package lexicon

import (
	"regexp"
	"sort"
	"strings"
)

// OrgSuffixes are trailing words that mark a company name.
var OrgSuffixes = []string{
	"Inc", "Inc.", "Incorporated", "Ltd", "Ltd.", "Limited", "LLC", "LLP", "PLC", "Corp", "Corp.",
	"Corporation", "Co.", "Company", "GmbH", "AG", "Pte", "Pte.", "Sdn Bhd", "Sdn. Bhd.", "Bhd",
	"Berhad", "Technologies", "Technology", "Solutions", "Systems", "Labs", "Consulting",
	"Consultancy", "Services", "Group", "Holdings", "Bank", "Partners", "Enterprise",
	"Enterprises", "Studio", "Studios", "Networks", "Ventures",
	"Associates", "Industries", "International", "Foundation", "Agency",
}

// InstitutionWords mark an educational institution.
var InstitutionWords = []string{
	"University", "Universiti", "College", "Kolej", "Institute", "Institut", "School",
	"Polytechnic", "Politeknik", "Academy", "Akademi", "Sekolah", "Campus",
}

var issuerMatcher = newListMatcher([]string{
	"Amazon Web Services", "AWS", "Microsoft", "Google", "Cisco", "Oracle", "CompTIA", "PMI",
	"Project Management Institute", "Coursera", "Udemy", "edX", "LinkedIn Learning", "ISC2",
	"ISACA", "Scrum Alliance", "Scrum.org", "Salesforce", "IBM", "Red Hat", "Linux Foundation",
	"Meta", "HRDF", "HubSpot", "Autodesk", "Adobe", "ACCA", "CIMA", "Tableau", "Databricks",
	"Snowflake", "HashiCorp", "CNCF", "DataCamp", "freeCodeCamp",
}, map[string]string{
	"hrd corp":     "HRDF",
	"google cloud": "Google",
	"azure":        "Microsoft",
}, "Meta", "PMI", "AWS", "IBM")

// Issuers returns the certification issuer matcher.
func Issuers() *Matcher {
	return issuerMatcher
}

// capWord is a capitalized name word.
const capWord = `[A-Z][A-Za-z0-9&'.\-]*`

var (
	companyPattern     = buildCompanyPattern()
	institutionPattern = buildInstitutionPattern()
)

// CompanyPattern matches one to four capitalized words closed by a company
// suffix, e.g. "ABC Technologies Sdn Bhd".
func CompanyPattern() *regexp.Regexp {
	return companyPattern
}

// InstitutionPattern matches names containing an institution word, e.g.
// "University of Malaya" or "Sunway College".
func InstitutionPattern() *regexp.Regexp {
	return institutionPattern
}

func buildCompanyPattern() *regexp.Regexp {
	seen := make(map[string]bool)
	var suffixes []string
	for _, s := range OrgSuffixes {
		s = strings.TrimSuffix(s, ".")
		if !seen[s] {
			seen[s] = true
			suffixes = append(suffixes, regexp.QuoteMeta(s))
		}
	}
	sort.Slice(suffixes, func(i, j int) bool { return len(suffixes[i]) > len(suffixes[j]) })
	return regexp.MustCompile(
		`\b(?:` + capWord + `[ \t]+){1,4}(?:` + strings.Join(suffixes, "|") + `)\b\.?` +
			`(?:[ \t]+(?:Sdn\.?[ \t]+Bhd|Bhd|Pte\.?[ \t]+Ltd|Ltd|Inc)\b\.?)?`)
}

func buildInstitutionPattern() *regexp.Regexp {
	inst := strings.Join(InstitutionWords, "|")
	return regexp.MustCompile(
		`\b(?:(?:` + inst + `)(?:[ \t]+of(?:[ \t]+the)?)?(?:[ \t]+` + capWord + `){1,5}` +
			`|(?:` + capWord + `[ \t]+){1,3}(?:` + inst + `)\b(?:[ \t]+of(?:[ \t]+the)?(?:[ \t]+` + capWord + `){1,4})?)`)
}

// HasInstitutionWord reports whether s contains an institution word.
func HasInstitutionWord(s string) bool {
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ",.;:()")
		for _, iw := range InstitutionWords {
			if strings.EqualFold(w, iw) {
				return true
			}
		}
	}
	return false
}
