package query

// Built-in skill names. Entries are searched in order, so "java" claims
// "javascript" before the javascript entry is reached.
var skillEntries = []Entry{
	{Canonical: "java", Synonyms: []string{"jvm", "jdk", "j2ee", "javascript"}},
	{Canonical: "javascript", Synonyms: []string{"js", "ecmascript", "es6"}},
	{Canonical: "typescript", Synonyms: []string{"ts"}},
	{Canonical: "python", Synonyms: []string{"py", "python3"}},
	{Canonical: "golang", Synonyms: []string{"go"}},
	{Canonical: "rust", Synonyms: []string{"rustlang"}},
	{Canonical: "c++", Synonyms: []string{"cpp", "cplusplus"}},
	{Canonical: "c#", Synonyms: []string{"csharp", ".net", "dotnet"}},
	{Canonical: "ruby", Synonyms: []string{"rails", "ruby on rails", "ror"}},
	{Canonical: "php", Synonyms: []string{"laravel"}},
	{Canonical: "react", Synonyms: []string{"reactjs", "react.js", "react native"}},
	{Canonical: "angular", Synonyms: []string{"angularjs"}},
	{Canonical: "vue", Synonyms: []string{"vuejs", "vue.js"}},
	{Canonical: "node", Synonyms: []string{"nodejs", "node.js"}},
	{Canonical: "sql", Synonyms: []string{"mysql", "postgresql", "postgres", "sqlite"}},
	{Canonical: "nosql", Synonyms: []string{"mongodb", "mongo", "cassandra", "dynamodb"}},
	{Canonical: "aws", Synonyms: []string{"amazon web services", "ec2", "s3", "lambda"}},
	{Canonical: "gcp", Synonyms: []string{"google cloud", "google cloud platform"}},
	{Canonical: "azure", Synonyms: []string{"microsoft azure"}},
	{Canonical: "docker", Synonyms: []string{"containers", "containerization"}},
	{Canonical: "kubernetes", Synonyms: []string{"k8s", "kube"}},
	{Canonical: "machine learning", Synonyms: []string{"ml", "deep learning"}},
	{Canonical: "data science", Synonyms: []string{"data scientist", "analytics"}},
	{Canonical: "devops", Synonyms: []string{"sre", "site reliability", "ci/cd"}},
	{Canonical: "frontend", Synonyms: []string{"front-end", "front end"}},
	{Canonical: "backend", Synonyms: []string{"back-end", "back end", "server-side"}},
	{Canonical: "fullstack", Synonyms: []string{"full-stack", "full stack"}},
}

// Built-in seniority names.
var seniorityEntries = []Entry{
	{Canonical: "intern", Synonyms: []string{"internship", "trainee"}},
	{Canonical: "junior", Synonyms: []string{"jr", "jr.", "entry level", "entry-level"}},
	{Canonical: "mid", Synonyms: []string{"mid-level", "intermediate"}},
	{Canonical: "senior", Synonyms: []string{"sr", "sr.", "lead"}},
	{Canonical: "staff", Synonyms: []string{"staff engineer"}},
	{Canonical: "principal", Synonyms: []string{"principal engineer", "architect"}},
	{Canonical: "manager", Synonyms: []string{"mgr", "engineering manager"}},
	{Canonical: "director", Synonyms: []string{"head of", "vp"}},
}

var (
	defaultSkills    = mustTaxonomy("skills", skillEntries)
	defaultSeniority = mustTaxonomy("seniority", seniorityEntries)
)

// SkillTaxonomy returns the built-in skill taxonomy.
func SkillTaxonomy() *Taxonomy {
	return defaultSkills
}

// SeniorityTaxonomy returns the built-in seniority taxonomy.
func SeniorityTaxonomy() *Taxonomy {
	return defaultSeniority
}

func mustTaxonomy(name string, entries []Entry) *Taxonomy {
	t, err := NewTaxonomy(name, entries)
	if err != nil {
		panic(err)
	}
	return t
}
