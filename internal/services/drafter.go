package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

// ErrNotApplicable marks a signal the LLM refused to draft for: the matched
// text was not a real, current business signal (footer text, diversity
// statement, stale news). Distinct from a generation failure.
var ErrNotApplicable = errors.New("signal rejected as not draftable")

const maxRoleLen = 100

const hiringSystemPrompt = `You are an expert SDR (Sales Development Representative).
Your goal is to write a short, 3-sentence cold email.

Context: We sell AI Security software.
Trigger: The company is hiring for %[2]s at %[1]s.
Task: Connect the hiring of this role to the value of securing their new AI initiatives.
Tone: Professional, direct, no fluff.

CRITICAL RULE: Analyze the "Hiring Signal" text carefully.
If the text is NOT a real job listing - for example, it is a diversity statement, footer text, generic marketing copy, a "Board of Directors" page, a fraud warning, or any other non-hiring content - you MUST return: {"subject_line": null, "body": null}
Do not hallucinate a job opening. Do not invent a role.
Only draft an email when the signal clearly indicates an open position being hired for.

You MUST respond with valid JSON only, no markdown, no explanation:
{"subject_line": "...", "body": "..."}`

const prospectSystemPrompt = `You are an expert SDR (Sales Development Representative).
Your goal is to write a short, 3-sentence cold email.

Context: We sell technical documentation, diagnostics and training solutions to OEMs.
Trigger: A "%[3]s" business signal about %[1]s: %[2]s
Task: Connect this development to the value of our solutions for their service organization.
Tone: Professional, direct, no fluff.

CRITICAL RULE: Analyze the signal text carefully.
If it is NOT a real, recent business development about this company - for example, it is site chrome, an ad, a job board aggregator page, or news about a different company - you MUST return: {"subject_line": null, "body": null}
Do not hallucinate a development. Do not invent facts.

You MUST respond with valid JSON only, no markdown, no explanation:
{"subject_line": "...", "body": "..."}`

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

// Drafter turns detected signals into cold-email drafts via an LLM. The
// model decides per signal whether drafting applies at all. Outcomes are
// cached by company and signal text, so a signal repeated within the cache
// window never triggers a second generation.
type Drafter struct {
	ai    aiClient
	model string
	cache *gocache.Cache
}

func NewDrafter(ai aiClient, model string) *Drafter {
	return &Drafter{
		ai:    ai,
		model: model,
		cache: gocache.New(30*time.Minute, time.Hour),
	}
}

func (d *Drafter) DraftForHiringSignal(ctx context.Context, company string,
	signal models.HiringSignal) (*models.Draft, error) {

	role := truncateRunes(signal.MatchedText, maxRoleLen)
	prompt := fmt.Sprintf(hiringSystemPrompt, company, role)

	return d.generate(ctx, company, role, "hiring", prompt)
}

func (d *Drafter) DraftForProspectSignal(ctx context.Context, company string,
	signal models.ProspectSignal) (*models.Draft, error) {

	role := truncateRunes(signal.Headline, maxRoleLen)
	description := signal.Headline + ": " + truncateRunes(signal.Snippet, 150)
	prompt := fmt.Sprintf(prospectSystemPrompt, company, description, signal.Category)

	return d.generate(ctx, company, role, "prospect_"+signal.Category, prompt)
}

func (d *Drafter) generate(ctx context.Context, company, role, signalType, prompt string) (*models.Draft, error) {

	cacheKey := company + "|" + signalType + "|" + role
	if cached, found := d.cache.Get(cacheKey); found {
		if draft, ok := cached.(models.Draft); ok {
			return &draft, nil
		}
		return nil, ErrNotApplicable
	}

	request := prompt + "\n\n" +
		"Company: " + company + "\n" +
		"Detected Signal: " + role + "\n\n" +
		"Write the cold email draft as JSON."

	response, err := d.ai.GenerateResponse(ctx, request)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		SubjectLine *string `json:"subject_line"`
		Body        *string `json:"body"`
	}
	if err := json.Unmarshal([]byte(stripFences(response)), &parsed); err != nil {
		return nil, errors.Wrap(err, "LLM returned invalid JSON")
	}

	if parsed.SubjectLine == nil || parsed.Body == nil {
		d.cache.Set(cacheKey, nil, gocache.DefaultExpiration)
		return nil, ErrNotApplicable
	}

	draft := models.Draft{
		Company:    company,
		Role:       role,
		SignalType: signalType,
		Subject:    *parsed.SubjectLine,
		Body:       *parsed.Body,
		Model:      d.model,
	}
	d.cache.Set(cacheKey, draft, gocache.DefaultExpiration)
	return &draft, nil
}

// stripFences removes a markdown code fence if the LLM wrapped its JSON in
// one despite instructions.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		raw = raw[idx+1:]
	} else {
		raw = raw[3:]
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
