package prospect

// CategoryQuery maps a prospect category to its search query template.
// {company} is replaced with the company name at query time. Categories are
// queried in declared order so a capped result budget always feeds earlier
// categories first.
type CategoryQuery struct {
	Name  string `mapstructure:"name"`
	Query string `mapstructure:"query"`
}

// PageKeyword maps a news-page keyword to a category. The table is checked
// in declared order and the first match wins for a line.
type PageKeyword struct {
	Keyword  string `mapstructure:"keyword"`
	Category string `mapstructure:"category"`
}

type Config struct {
	Categories   []CategoryQuery
	PageKeywords []PageKeyword
	Freshness    string
	MaxResults   int
}

// DefaultConfig returns the built-in prospect configuration, tailored to a
// market of OEMs buying technical documentation, diagnostics and training.
func DefaultConfig() Config {
	return Config{
		Freshness:  "pw",
		MaxResults: 5,
		Categories: []CategoryQuery{
			{Name: "new_model", Query: `"{company}" new model OR new vehicle OR new product launch OR new equipment announced`},
			{Name: "service_challenge", Query: `"{company}" service operations OR technician shortage OR parts supply OR recall OR warranty`},
			{Name: "ev_transition", Query: `"{company}" electric vehicle OR EV OR electrification OR battery OR hybrid transition`},
			{Name: "regulatory", Query: `"{company}" regulation OR compliance OR safety standard OR emissions OR right to repair`},
		},
		PageKeywords: []PageKeyword{
			{Keyword: "new model", Category: "new_model"},
			{Keyword: "new vehicle", Category: "new_model"},
			{Keyword: "new product", Category: "new_model"},
			{Keyword: "product launch", Category: "new_model"},
			{Keyword: "all-new", Category: "new_model"},
			{Keyword: "next-generation", Category: "new_model"},
			{Keyword: "unveils", Category: "new_model"},
			{Keyword: "introduces", Category: "new_model"},
			{Keyword: "autonomous", Category: "new_model"},
			{Keyword: "recall", Category: "service_challenge"},
			{Keyword: "warranty", Category: "service_challenge"},
			{Keyword: "technician", Category: "service_challenge"},
			{Keyword: "service network", Category: "service_challenge"},
			{Keyword: "parts supply", Category: "service_challenge"},
			{Keyword: "service center", Category: "service_challenge"},
			{Keyword: "electric vehicle", Category: "ev_transition"},
			{Keyword: "electrification", Category: "ev_transition"},
			{Keyword: "battery", Category: "ev_transition"},
			{Keyword: "EV platform", Category: "ev_transition"},
			{Keyword: "zero emission", Category: "ev_transition"},
			{Keyword: "hybrid", Category: "ev_transition"},
			{Keyword: "charging", Category: "ev_transition"},
			{Keyword: "regulation", Category: "regulatory"},
			{Keyword: "compliance", Category: "regulatory"},
			{Keyword: "safety standard", Category: "regulatory"},
			{Keyword: "emissions", Category: "regulatory"},
			{Keyword: "right to repair", Category: "regulatory"},
			{Keyword: "NHTSA", Category: "regulatory"},
		},
	}
}
