package parsing

import (
	"regexp"

	"github.com/jonathan/job-matcher/internal/types"
)

// labeledPatterns binds a canonical label to the regexes that detect it.
type labeledPatterns struct {
	Label    string
	Patterns []*regexp.Regexp
}

// patternTable is an ordered label -> patterns table. Order is the tie-break:
// for exclusive categories the first matching entry wins.
type patternTable []labeledPatterns

// firstMatch returns the label of the first entry with a matching pattern.
func (t patternTable) firstMatch(s string) (string, bool) {
	for _, entry := range t {
		for _, re := range entry.Patterns {
			if re.MatchString(s) {
				return entry.Label, true
			}
		}
	}
	return "", false
}

// allMatches returns every label with at least one matching pattern, in table order.
func (t patternTable) allMatches(s string) []string {
	var labels []string
	for _, entry := range t {
		for _, re := range entry.Patterns {
			if re.MatchString(s) {
				labels = append(labels, entry.Label)
				break
			}
		}
	}
	return labels
}

// Labels returns the table's labels in order.
func (t patternTable) Labels() []string {
	labels := make([]string, 0, len(t))
	for _, entry := range t {
		labels = append(labels, entry.Label)
	}
	return labels
}

// each calls fn for every non-nil pattern in the table.
func (t patternTable) each(fn func(*regexp.Regexp)) {
	for _, entry := range t {
		for _, re := range entry.Patterns {
			if re != nil {
				fn(re)
			}
		}
	}
}

// patternSet holds every table the parser consults.
type patternSet struct {
	jobTypes    patternTable
	experiences patternTable
	industries  patternTable
	skills      patternTable
	locations   []*regexp.Regexp
	salaries    []*regexp.Regexp
	stopWords   map[string]bool
}

func rx(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

func newPatternSet() *patternSet {
	return &patternSet{
		jobTypes: patternTable{
			{types.JobTypeFullTime, []*regexp.Regexp{rx(`\b(full\s*time|fulltime|permanent|full-time|ft)\b`)}},
			{types.JobTypePartTime, []*regexp.Regexp{rx(`\b(part\s*time|parttime|part-time|pt|flexible|hourly)\b`)}},
			{types.JobTypeContract, []*regexp.Regexp{rx(`\b(contract|contractor|freelance|temporary|temp|consulting)\b`)}},
			{types.JobTypeInternship, []*regexp.Regexp{rx(`\b(intern|internship|trainee|apprentice|co-op|student)\b`)}},
			{types.JobTypeRemote, []*regexp.Regexp{rx(`\b(remote|work\s*from\s*home|wfh|virtual|distributed|anywhere)\b`)}},
		},
		experiences: patternTable{
			{types.ExperienceEntry, []*regexp.Regexp{rx(`\b(entry|junior|beginner|fresh|new\s*grad|graduate|starter)\b`)}},
			{types.ExperienceMid, []*regexp.Regexp{rx(`\b(mid|intermediate|experienced|mid-level|2-5\s*years)\b`)}},
			{types.ExperienceSenior, []*regexp.Regexp{rx(`\b(senior|lead|principal|expert|architect|5\+\s*years)\b`)}},
			{types.ExperienceExecutive, []*regexp.Regexp{rx(`\b(executive|manager|director|vp|ceo|cto|head\s*of|chief)\b`)}},
		},
		industries: patternTable{
			{"Software", []*regexp.Regexp{rx(`\b(software|tech|technology|it|programming|coding|development)\b`)}},
			{"Healthcare", []*regexp.Regexp{rx(`\b(healthcare|medical|hospital|clinic|health|pharma)\b`)}},
			{"Finance", []*regexp.Regexp{rx(`\b(finance|financial|bank|banking|investment|trading|fintech)\b`)}},
			{"Education", []*regexp.Regexp{rx(`\b(education|school|university|college|teaching|academic)\b`)}},
			{"Marketing", []*regexp.Regexp{rx(`\b(marketing|advertising|promotion|brand|campaign|digital\s*marketing)\b`)}},
			{"Design", []*regexp.Regexp{rx(`\b(design|creative|graphic|ui|ux|visual|art)\b`)}},
			{"Sales", []*regexp.Regexp{rx(`\b(sales|selling|business\s*development|account|customer)\b`)}},
		},
		skills: patternTable{
			{"JavaScript", []*regexp.Regexp{rx(`\b(javascript|js|es6|node|nodejs|react|angular|vue)\b`)}},
			{"Python", []*regexp.Regexp{rx(`\b(python|django|flask|pandas|numpy|tensorflow)\b`)}},
			{"Java", []*regexp.Regexp{rx(`\b(java|spring|hibernate|maven|gradle)\b`)}},
			{"React", []*regexp.Regexp{rx(`\b(react|reactjs|react\.js|jsx|hooks)\b`)}},
			{"Angular", []*regexp.Regexp{rx(`\b(angular|angularjs|typescript)\b`)}},
			{"Vue", []*regexp.Regexp{rx(`\b(vue|vuejs|vue\.js|nuxt)\b`)}},
			{"PHP", []*regexp.Regexp{rx(`\b(php|laravel|symfony|wordpress)\b`)}},
			{"SQL", []*regexp.Regexp{rx(`\b(sql|mysql|postgresql|postgres|database)\b`)}},
			{"MongoDB", []*regexp.Regexp{rx(`\b(mongodb|mongo|nosql)\b`)}},
			{"AWS", []*regexp.Regexp{rx(`\b(aws|amazon\s*web\s*services|cloud)\b`)}},
			{"Docker", []*regexp.Regexp{rx(`\b(docker|containerization|containers)\b`)}},
			{"Git", []*regexp.Regexp{rx(`\b(git|github|gitlab|version\s*control)\b`)}},
			{"Machine Learning", []*regexp.Regexp{rx(`\b(machine\s*learning|ml|ai|artificial\s*intelligence)\b`)}},
			{"Data Science", []*regexp.Regexp{rx(`\b(data\s*science|data\s*scientist|analytics|big\s*data)\b`)}},
			{"UI/UX", []*regexp.Regexp{rx(`\b(ui|ux|user\s*experience|user\s*interface|design)\b`)}},
			{"SEO", []*regexp.Regexp{rx(`\b(seo|search\s*engine\s*optimization)\b`)}},
			{"Digital Marketing", []*regexp.Regexp{rx(`\b(digital\s*marketing|online\s*marketing|sem)\b`)}},
		},
		// The capture is lazy and stops at the first qualifier, connective,
		// punctuation mark, number or end of input.
		locations: []*regexp.Regexp{
			rx(`\bin\s+([a-z][a-z\s]*?)(?:\s+(?:area|city|state|for|with|at|as|making|earning|paying|over|under|above|below|up|near|and|or|who|that)\b|\s*[,.;!?]|\s+\$|\s+\d|\s*$)`),
			rx(`\bnear\s+([a-z][a-z\s]*?)(?:\s+(?:area|city|for|with|at|as|making|earning|paying|over|under|above|below|up|and|or|who|that)\b|\s*[,.;!?]|\s+\$|\s+\d|\s*$)`),
			rx(`\bat\s+([a-z][a-z\s]*?)(?:\s+(?:for|with|as|making|earning|paying|over|under|above|below|up|and|or|who|that)\b|\s*[,.;!?]|\s+\$|\s+\d|\s*$)`),
		},
		// Ranges need a "$" or "k" on one figure so "2-5 years" is not a salary.
		salaries: []*regexp.Regexp{
			rx(`\$(\d+)k?\s*[-–—]\s*\$?(\d+)k?`),
			rx(`(\d+)k\s*[-–—]\s*\$?(\d+)k?`),
			rx(`(\d+)\s*[-–—]\s*\$?(\d+)k`),
			rx(`\$(\d+)k?\s*\+`),
			rx(`(\d+)k?\+?\s*(?:thousand|k)\s*(?:dollars?|usd|\$)?`),
			rx(`above\s*\$?(\d+)k?`),
			rx(`over\s*\$?(\d+)k?`),
			rx(`under\s*\$?(\d+)k?`),
			rx(`below\s*\$?(\d+)k?`),
			rx(`up\s*to\s*\$?(\d+)k?`),
		},
		stopWords: map[string]bool{
			"find": true, "me": true, "a": true, "an": true, "the": true, "for": true,
			"in": true, "at": true, "with": true, "job": true, "jobs": true,
			"position": true, "positions": true, "role": true, "roles": true, "work": true,
			"need": true, "want": true, "looking": true, "search": true, "searching": true,
			"seeking": true, "opportunity": true, "opportunities": true, "career": true,
		},
	}
}

var (
	openEndedSalary = rx(`\b(above|over)\b`)
	cappedSalary    = rx(`\b(under|below)\b|\bup\s*to\b`)
	locationSuffix  = rx(`\s+(area|city|state)$`)
	trailingPunct   = regexp.MustCompile(`[,.]$`)
	nonWord         = regexp.MustCompile(`[^\w\s]`)
)
