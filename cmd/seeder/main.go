package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/talentq"
	"github.com/poiesic/talentq/ingestion"
)

var firstNames = []string{
	"Ada", "Grace", "Alan", "Linus", "Barbara", "Dennis", "Margaret", "Ken",
	"Frances", "Edsger", "Radia", "Donald", "Sophie", "Tim", "Hedy", "Guido",
}

var lastNames = []string{
	"Lovelace", "Hopper", "Turing", "Torvalds", "Liskov", "Ritchie", "Hamilton",
	"Thompson", "Allen", "Dijkstra", "Perlman", "Knuth", "Wilson", "Berners-Lee",
}

var locations = []string{
	"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
	"Berlin, Germany", "London, UK", "Toronto, Canada", "Remote",
}

var levels = []string{"Intern", "Junior", "Mid", "Senior", "Staff", "Principal"}

var roles = []struct {
	title  string
	skills []string
}{
	{"Backend Engineer", []string{"Go", "PostgreSQL", "Kubernetes", "gRPC", "Redis"}},
	{"Frontend Developer", []string{"JavaScript", "React", "TypeScript", "CSS", "HTML"}},
	{"Java Developer", []string{"Java", "Spring", "Kafka", "Microservices", "SQL"}},
	{"Data Scientist", []string{"Python", "Machine Learning", "Pandas", "TensorFlow", "SQL"}},
	{"DevOps Engineer", []string{"AWS", "Terraform", "Docker", "Kubernetes", "CI/CD"}},
	{"Mobile Developer", []string{"Swift", "Kotlin", "iOS", "Android", "Flutter"}},
	{"Engineering Manager", []string{"Leadership", "Agile", "Hiring", "Java", "Go"}},
}

var companies = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella", "Hooli", "Stark Industries", "Wayne Enterprises",
}

var universities = []string{
	"MIT", "Stanford University", "University of Waterloo", "ETH Zurich", "Georgia Tech",
}

var certifications = []struct{ name, issuer string }{
	{"AWS Certified Solutions Architect", "Amazon"},
	{"Certified Kubernetes Administrator", "CNCF"},
	{"Oracle Certified Professional Java SE", "Oracle"},
	{"Professional Scrum Master", "Scrum.org"},
}

var (
	count    = flag.Int("n", 100, "number of profiles to generate")
	seed     = flag.Uint64("seed", 1, "random seed")
	outFile  = flag.String("out", "", "write the document to this file instead of stdout")
	database = flag.String("db", "", "import the generated profiles into this database")
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func pick[T any](r *rand.Rand, vs []T) T {
	return vs[r.IntN(len(vs))]
}

// profiles yields n synthetic profiles. The same seed always yields the same
// profiles.
func profiles(n int, seed uint64) iter.Seq[ingestion.ProfileDoc] {
	return func(yield func(ingestion.ProfileDoc) bool) {
		r := rand.New(rand.NewPCG(seed, seed))
		for i := range n {
			first, last := pick(r, firstNames), pick(r, lastNames)
			role := pick(r, roles)
			level := pick(r, levels)

			doc := ingestion.ProfileDoc{
				FullName:        first + " " + last,
				Email:           fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
				Headline:        level + " " + role.title,
				Location:        pick(r, locations),
				Bio:             fmt.Sprintf("%s %s with %d years of experience.", level, role.title, 1+r.IntN(20)),
				ExperienceLevel: level,
				Skills:          sample(r, role.skills, 2+r.IntN(len(role.skills)-1)),
				Experience: []ingestion.ExperienceDoc{{
					Title:       role.title,
					Company:     pick(r, companies),
					Description: "Worked with " + strings.Join(sample(r, role.skills, 2), " and "),
				}},
				Education: []ingestion.EducationDoc{{
					Degree:     "BS",
					Major:      "Computer Science",
					University: pick(r, universities),
				}},
			}
			if r.IntN(3) == 0 {
				c := pick(r, certifications)
				doc.Certifications = []ingestion.CertificationDoc{{Name: c.name, Issuer: c.issuer}}
			}
			if r.IntN(2) == 0 {
				doc.ResumeURL = fmt.Sprintf("https://example.com/resumes/%d.pdf", i)
			}
			if r.IntN(4) == 0 {
				doc.VideoURL = fmt.Sprintf("https://example.com/videos/%d.mp4", i)
			}
			if !yield(doc) {
				return
			}
		}
	}
}

// sample returns k distinct elements of vs in random order.
func sample(r *rand.Rand, vs []string, k int) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:min(k, len(out))]
}

func main() {
	var doc ingestion.Document
	for p := range profiles(*count, *seed) {
		doc.Profiles = append(doc.Profiles, p)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		panic(err)
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, out, 0644); err != nil {
			panic(err)
		}
		slog.Info("wrote profiles", "count", len(doc.Profiles), "path", *outFile)
	} else if *database == "" {
		os.Stdout.Write(out)
	}

	if *database == "" {
		return
	}

	db, err := talentq.NewDatabase(*database)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	importer, err := db.NewImporter()
	if err != nil {
		panic(err)
	}
	defer importer.Release()

	stats, err := importer.ImportReader(context.Background(), "seed", strings.NewReader(string(out)))
	if err != nil {
		panic(err)
	}
	slog.Info("seeded database", "path", *database, "imported", stats.Imported, "created", stats.Created)
}
