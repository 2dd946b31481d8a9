package services

import (
	"regexp"
	"strings"
)

// DefaultSkills is the technical vocabulary checked in resumes and job
// descriptions. Matches are reported in this order.
var DefaultSkills = []string{
	"Python", "Java", "JavaScript", "C", "Go",
	"SQL", "NoSQL", "MongoDB", "MySQL",
	"Docker", "Kubernetes", "AWS", "Azure", "REST API",
	"GraphQL", "React", "Node.js", "Django", "Flask",
	"Microservices", "Git", "CI/CD", "Jenkins", "RAG", "LangChain",
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"Agile", "Scrum", "Data Structures", "Algorithms", "OOP",
}

// EducationLevel maps a degree level to the keywords that indicate it.
type EducationLevel struct {
	Level    string
	Keywords []string
}

var DefaultEducation = []EducationLevel{
	{Level: "phd", Keywords: []string{"phd", "ph.d", "doctor of philosophy"}},
	{Level: "masters", Keywords: []string{"masters", "ms", "m.s", "master of", "msc", "m.sc", "mba"}},
	{Level: "bachelors", Keywords: []string{"bachelors", "bachelor of", "bs", "b.s", "b.tech", "btech", "be", "b.e"}},
	{Level: "associate", Keywords: []string{"associate", "a.s", "as degree"}},
}

// DefaultJobDescription is the Software Engineer posting used when a caller
// supplies no job description.
const DefaultJobDescription = `Software Engineer

Requirements:
1+ years of experience in software development
Strong proficiency in Python and JavaScript
Experience with web frameworks like React or Vue (Angular is a plus)
Knowledge of databases (SQL, NoSQL)
Familiarity with cloud services (AWS, Azure, or GCP)
Hands-on experience with AI/ML frameworks (TensorFlow, PyTorch, or Scikit-learn)
Exposure to LLM/AI tools (LangChain, Hugging Face, or Gemini AI)
Experience with version control systems like Git
Understanding of data structures, algorithms, and applied ML techniques
Bachelor’s degree in Computer Science, AI/ML, or related field
Experience with Docker, CI/CD pipelines, and MLOps is a plus`

var experiencePatterns = []string{
	`(?i)(\d+)(?:\+)?\s*(?:years?|yrs?)(?:\s+of)?\s+experience`,
	`(?i)experience\s+of\s+(\d+)(?:\+)?\s*(?:years?|yrs?)`,
	`(?i)(?:worked|working)\s+for\s+(\d+)(?:\+)?\s*(?:years?|yrs?)`,
}

// englishStopWords is the common English stop-word list used for
// bag-of-words vectorization.
const englishStopWords = `a about above across after afterwards again against all almost alone along
already also although always am among amongst amoungst amount an and another any anyhow anyone
anything anyway anywhere are around as at back be became because become becomes becoming been
before beforehand behind being below beside besides between beyond bill both bottom but by call
can cannot cant co con could couldnt cry de describe detail do done down due during each eg eight
either eleven else elsewhere empty enough etc even ever every everyone everything everywhere except
few fifteen fifty fill find fire first five for former formerly forty found four from front full
further get give go had has hasnt have he hence her here hereafter hereby herein hereupon hers
herself him himself his how however hundred i ie if in inc indeed interest into is it its itself
keep last latter latterly least less ltd made many may me meanwhile might mill mine more moreover
most mostly move much must my myself name namely neither never nevertheless next nine no nobody
none noone nor not nothing now nowhere of off often on once one only onto or other others
otherwise our ours ourselves out over own part per perhaps please put rather re same see seem
seemed seeming seems serious several she should show side since sincere six sixty so some somehow
someone something sometime sometimes somewhere still such system take ten than that the their them
themselves then thence there thereafter thereby therefore therein thereupon these they thick thin
third this those though three through throughout thru thus to together too top toward towards
twelve twenty two un under until up upon us very via was we well were what whatever when whence
whenever where whereafter whereas whereby wherein whereupon wherever whether which while whither
who whoever whole whom whose why will with within without would yet you your yours yourself
yourselves`

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

type educationPattern struct {
	level    string
	patterns []*regexp.Regexp
}

// Lexicon holds the compiled vocabularies shared by the feature extractor and
// the similarity scorer. It is built once and never mutated afterwards.
type Lexicon struct {
	skills     []skillPattern
	education  []educationPattern
	experience []*regexp.Regexp
	stopWords  map[string]struct{}
}

// NewLexicon compiles the default vocabularies.
func NewLexicon() *Lexicon {
	return NewLexiconWith(DefaultSkills, DefaultEducation)
}

// NewLexiconWith compiles a lexicon from custom skill and education tables.
func NewLexiconWith(skills []string, education []EducationLevel) *Lexicon {
	l := &Lexicon{
		stopWords: make(map[string]struct{}),
	}

	for _, skill := range skills {
		l.skills = append(l.skills, skillPattern{name: skill, re: wordPattern(skill)})
	}

	for _, level := range education {
		ep := educationPattern{level: level.Level}
		for _, keyword := range level.Keywords {
			ep.patterns = append(ep.patterns, wordPattern(keyword))
		}
		l.education = append(l.education, ep)
	}

	for _, p := range experiencePatterns {
		l.experience = append(l.experience, regexp.MustCompile(p))
	}

	for _, w := range strings.Fields(englishStopWords) {
		l.stopWords[w] = struct{}{}
	}

	return l
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

func (l *Lexicon) isStopWord(word string) bool {
	_, ok := l.stopWords[word]
	return ok
}
