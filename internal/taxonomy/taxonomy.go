// Package taxonomy provides the static catalog of canonical skill names,
// aliases and categories used for skill normalization.
package taxonomy

import (
	"strings"
	"unicode"
)

// Entry is one canonical skill in the catalog.
type Entry struct {
	Canonical string   // stable key, e.g. "postgresql"
	Name      string   // display name, e.g. "PostgreSQL"
	Category  string   // e.g. "database"
	Aliases   []string // variant spellings matched case-insensitively
}

// Taxonomy indexes entries by canonical key, display name and alias.
type Taxonomy struct {
	entries []Entry
	index   map[string]int // lowercased key/name/alias -> entries index
}

// Skill categories used by the default catalog.
const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryDatabase  = "database"
	CategoryCloud     = "cloud"
	CategoryData      = "data"
	CategoryAnalytics = "analytics"
	CategoryTooling   = "tooling"
	CategoryPractice  = "practice"
	CategorySoft      = "soft_skill"
)

// New builds a taxonomy from the given entries. Later entries never displace
// earlier ones when keys collide.
func New(entries []Entry) *Taxonomy {
	t := &Taxonomy{
		entries: entries,
		index:   make(map[string]int, len(entries)*3),
	}
	for i, e := range entries {
		t.add(e.Canonical, i)
		t.add(e.Name, i)
		for _, alias := range e.Aliases {
			t.add(alias, i)
		}
	}
	return t
}

func (t *Taxonomy) add(key string, i int) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return
	}
	if _, exists := t.index[key]; !exists {
		t.index[key] = i
	}
}

// Lookup resolves a raw skill string to a catalog entry by exact name,
// canonical key, or alias (case-insensitive).
func (t *Taxonomy) Lookup(raw string) (Entry, bool) {
	i, ok := t.index[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of catalog entries.
func (t *Taxonomy) Len() int { return len(t.entries) }

// CanonicalKey derives a canonical key for a skill string that has no catalog
// entry: lower-cased, punctuation stripped, words joined with underscores.
func CanonicalKey(raw string) string {
	var b strings.Builder
	lastUnderscore := true // suppress leading underscore
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
		// remaining punctuation is dropped
	}
	return strings.TrimSuffix(b.String(), "_")
}

// Default returns the built-in skill catalog.
func Default() *Taxonomy {
	return New(defaultEntries)
}

var defaultEntries = []Entry{
	{Canonical: "go", Name: "Go", Category: CategoryLanguage, Aliases: []string{"golang", "go lang"}},
	{Canonical: "python", Name: "Python", Category: CategoryLanguage},
	{Canonical: "javascript", Name: "JavaScript", Category: CategoryLanguage, Aliases: []string{"js", "ecmascript"}},
	{Canonical: "typescript", Name: "TypeScript", Category: CategoryLanguage, Aliases: []string{"ts"}},
	{Canonical: "java", Name: "Java", Category: CategoryLanguage},
	{Canonical: "c_sharp", Name: "C#", Category: CategoryLanguage, Aliases: []string{"csharp", ".net c#"}},
	{Canonical: "c_plus_plus", Name: "C++", Category: CategoryLanguage, Aliases: []string{"cpp"}},
	{Canonical: "ruby", Name: "Ruby", Category: CategoryLanguage},
	{Canonical: "rust", Name: "Rust", Category: CategoryLanguage},
	{Canonical: "sql", Name: "SQL", Category: CategoryData},
	{Canonical: "react", Name: "React", Category: CategoryFramework, Aliases: []string{"react.js", "reactjs"}},
	{Canonical: "vue", Name: "Vue", Category: CategoryFramework, Aliases: []string{"vue.js", "vuejs"}},
	{Canonical: "angular", Name: "Angular", Category: CategoryFramework, Aliases: []string{"angularjs"}},
	{Canonical: "node_js", Name: "Node.js", Category: CategoryFramework, Aliases: []string{"node", "nodejs"}},
	{Canonical: "django", Name: "Django", Category: CategoryFramework},
	{Canonical: "rails", Name: "Ruby on Rails", Category: CategoryFramework, Aliases: []string{"ror", "ruby on rails"}},
	{Canonical: "spring", Name: "Spring", Category: CategoryFramework, Aliases: []string{"spring boot", "springboot"}},
	{Canonical: "postgresql", Name: "PostgreSQL", Category: CategoryDatabase, Aliases: []string{"postgres", "psql"}},
	{Canonical: "mysql", Name: "MySQL", Category: CategoryDatabase},
	{Canonical: "mongodb", Name: "MongoDB", Category: CategoryDatabase, Aliases: []string{"mongo"}},
	{Canonical: "redis", Name: "Redis", Category: CategoryDatabase},
	{Canonical: "elasticsearch", Name: "Elasticsearch", Category: CategoryDatabase, Aliases: []string{"elastic search", "opensearch"}},
	{Canonical: "aws", Name: "AWS", Category: CategoryCloud, Aliases: []string{"amazon web services"}},
	{Canonical: "gcp", Name: "GCP", Category: CategoryCloud, Aliases: []string{"google cloud", "google cloud platform"}},
	{Canonical: "azure", Name: "Azure", Category: CategoryCloud, Aliases: []string{"microsoft azure"}},
	{Canonical: "kubernetes", Name: "Kubernetes", Category: CategoryCloud, Aliases: []string{"k8s"}},
	{Canonical: "docker", Name: "Docker", Category: CategoryCloud},
	{Canonical: "terraform", Name: "Terraform", Category: CategoryCloud},
	{Canonical: "kafka", Name: "Kafka", Category: CategoryData, Aliases: []string{"apache kafka"}},
	{Canonical: "spark", Name: "Spark", Category: CategoryData, Aliases: []string{"apache spark", "pyspark"}},
	{Canonical: "airflow", Name: "Airflow", Category: CategoryData, Aliases: []string{"apache airflow"}},
	{Canonical: "dbt", Name: "dbt", Category: CategoryData},
	{Canonical: "snowflake", Name: "Snowflake", Category: CategoryData},
	{Canonical: "tableau", Name: "Tableau", Category: CategoryAnalytics},
	{Canonical: "power_bi", Name: "Power BI", Category: CategoryAnalytics, Aliases: []string{"powerbi"}},
	{Canonical: "looker", Name: "Looker", Category: CategoryAnalytics},
	{Canonical: "excel", Name: "Excel", Category: CategoryAnalytics, Aliases: []string{"microsoft excel"}},
	{Canonical: "machine_learning", Name: "Machine Learning", Category: CategoryData, Aliases: []string{"ml"}},
	{Canonical: "data_analysis", Name: "Data Analysis", Category: CategoryAnalytics, Aliases: []string{"data analytics"}},
	{Canonical: "git", Name: "Git", Category: CategoryTooling, Aliases: []string{"github", "gitlab"}},
	{Canonical: "ci_cd", Name: "CI/CD", Category: CategoryTooling, Aliases: []string{"cicd", "continuous integration"}},
	{Canonical: "jira", Name: "Jira", Category: CategoryTooling},
	{Canonical: "salesforce", Name: "Salesforce", Category: CategoryTooling, Aliases: []string{"sfdc"}},
	{Canonical: "agile", Name: "Agile", Category: CategoryPractice, Aliases: []string{"scrum", "kanban"}},
	{Canonical: "product_management", Name: "Product Management", Category: CategoryPractice, Aliases: []string{"product mgmt"}},
	{Canonical: "project_management", Name: "Project Management", Category: CategoryPractice, Aliases: []string{"pmp"}},
	{Canonical: "microservices", Name: "Microservices", Category: CategoryPractice, Aliases: []string{"micro services", "micro-services"}},
	{Canonical: "rest_apis", Name: "REST APIs", Category: CategoryPractice, Aliases: []string{"rest", "rest api", "restful apis"}},
	{Canonical: "graphql", Name: "GraphQL", Category: CategoryPractice},
	{Canonical: "leadership", Name: "Leadership", Category: CategorySoft, Aliases: []string{"people management", "team leadership"}},
	{Canonical: "communication", Name: "Communication", Category: CategorySoft},
	{Canonical: "stakeholder_management", Name: "Stakeholder Management", Category: CategorySoft},
}
