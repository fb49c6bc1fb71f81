package lexicon

import "strings"

// skillAliases maps common skill name variants to canonical names.
var skillAliases = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"javascript":          "JavaScript",
	"js":                  "JavaScript",
	"es6":                 "JavaScript",
	"typescript":          "TypeScript",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"react.js":            "React",
	"reactjs":             "React",
	"vue.js":              "Vue",
	"vuejs":               "Vue",
	"node.js":             "Node.js",
	"nodejs":              "Node.js",
	"postgres":            "PostgreSQL",
	"postgresql":          "PostgreSQL",
	"mongo":               "MongoDB",
	"ms excel":            "Microsoft Excel",
	"ms word":             "Microsoft Word",
	"powerpoint":          "Microsoft PowerPoint",
	"ms office":           "Microsoft Office",
	"gcp":                 "Google Cloud",
	"amazon web services": "AWS",
	"ml":                  "Machine Learning",
	"nlp":                 "Natural Language Processing",
	"c sharp":             "C#",
	"dotnet":              ".NET",
	"sklearn":             "scikit-learn",
	"restful api":         "REST API",
	"ci/cd":               "CI/CD",
	"oop":                 "Object-Oriented Programming",
	"ui/ux":               "UI/UX Design",
}

// skillNames is the canonical skill vocabulary.
var skillNames = []string{
	// languages
	"Go", "Python", "Java", "JavaScript", "TypeScript", "C", "C++", "C#", "R", "Ruby", "PHP",
	"Kotlin", "Swift", "Rust", "Scala", "MATLAB", "Perl", "Dart", "SQL", "HTML", "CSS", "Bash",
	// frameworks and libraries
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "FastAPI", "Spring Boot",
	"Laravel", "Ruby on Rails", ".NET", "Flutter", "React Native", "TensorFlow", "PyTorch",
	"Keras", "scikit-learn", "Pandas", "NumPy", "jQuery", "Bootstrap", "Tailwind CSS",
	// data and infrastructure
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Oracle", "SQLite", "Elasticsearch", "Kafka",
	"RabbitMQ", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git", "GitHub",
	"GitLab", "Linux", "AWS", "Azure", "Google Cloud", "Firebase", "Hadoop", "Spark", "Airflow",
	"Tableau", "Power BI", "Microsoft Excel", "Microsoft Word", "Microsoft PowerPoint",
	"Microsoft Office", "Jira", "Figma", "Photoshop", "Illustrator", "AutoCAD", "SolidWorks", "SAP",
	"GraphQL", "REST API", "gRPC", "CI/CD", "Microservices", "Unit Testing", "Selenium",
	// disciplines
	"Machine Learning", "Deep Learning", "Natural Language Processing", "Computer Vision",
	"Data Analysis", "Data Science", "Data Visualization", "Statistics", "Web Development",
	"Mobile Development", "Cloud Computing", "Cybersecurity", "Networking", "DevOps", "Agile",
	"Scrum", "Object-Oriented Programming", "UI/UX Design", "Digital Marketing", "SEO",
	"Accounting", "Financial Analysis", "Project Management", "Business Analysis",
	// soft skills
	"Communication", "Leadership", "Teamwork", "Problem Solving", "Time Management",
	"Critical Thinking", "Public Speaking", "Negotiation",
}

// shortSkills are matched case-sensitively to avoid hits on common words.
var shortSkills = []string{"Go", "C", "R", "Swift", "Rust", "Express", "Spark", "Git", "Dart", "SAP"}

var skillMatcher = newSkillMatcher()

func newSkillMatcher() *Matcher {
	aliases := make(map[string]string, len(skillNames)+len(skillAliases))
	for _, s := range skillNames {
		aliases[s] = s
	}
	for alias, canonical := range skillAliases {
		aliases[alias] = canonical
	}
	return NewMatcher(aliases, shortSkills...)
}

// Skills returns the skill matcher.
func Skills() *Matcher {
	return skillMatcher
}

// IsKnownSkill reports whether s is a skill name or alias.
func IsKnownSkill(s string) bool {
	_, ok := skillMatcher.Lookup(s)
	return ok
}

// NormalizeSkillName normalizes a skill name to its canonical form.
func NormalizeSkillName(skillName string) string {
	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillMatcher.Lookup(normalized); ok {
		return canonical
	}

	lower := strings.ToLower(normalized)
	upper := strings.ToUpper(normalized)

	// Mixed case is kept as written
	if normalized != upper && normalized != lower {
		return normalized
	}

	// All-caps single words that aren't known acronyms: capitalize first letter only
	if normalized == upper && len(normalized) > 3 && !strings.Contains(normalized, " ") {
		return normalized[:1] + strings.ToLower(normalized[1:])
	}

	// All lowercase single word: capitalize first letter
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}
