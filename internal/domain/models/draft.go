package models

// Draft is a generated cold-email draft for a detected signal. The agent
// never sends these itself, it only queues them for human review.
type Draft struct {
	Company    string
	Role       string
	SignalType string
	Subject    string
	Body       string
	Model      string
}

// Target is one company to scan, loaded from the targets CSV. NewsURL is
// optional and enables the direct news-page prospect source.
type Target struct {
	Company    string
	Domain     string
	CareersURL string
	NewsURL    string
}
