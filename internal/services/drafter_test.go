package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func hiringSignal() models.HiringSignal {
	return models.HiringSignal{Keyword: "VP", MatchedText: "VP of Security", LineNumber: 3}
}

func Test_DraftForHiringSignal_WhenResponseIsValidJSON_ShouldReturnDraft(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"subject_line": "Securing your AI roadmap", "body": "Three sentences."}`, nil)

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	draft, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())

	require.NoError(t, err)
	assert.Equal(t, "Acme", draft.Company)
	assert.Equal(t, "VP of Security", draft.Role)
	assert.Equal(t, "hiring", draft.SignalType)
	assert.Equal(t, "Securing your AI roadmap", draft.Subject)
	assert.Equal(t, "Three sentences.", draft.Body)
	assert.Equal(t, "gemini-1.5-flash", draft.Model)
}

func Test_DraftForHiringSignal_WhenResponseIsFencedJSON_ShouldStillParse(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("```json\n{\"subject_line\": \"Subject\", \"body\": \"Body\"}\n```", nil)

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	draft, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())

	require.NoError(t, err)
	assert.Equal(t, "Subject", draft.Subject)
}

func Test_DraftForHiringSignal_WhenModelReturnsNulls_ShouldReturnNotApplicable(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"subject_line": null, "body": null}`, nil)

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	draft, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())

	assert.Nil(t, draft)
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func Test_DraftForHiringSignal_WhenResponseIsNotJSON_ShouldReturnError(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return("Sure! Here is your email: ...", nil)

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	draft, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())

	assert.Nil(t, draft)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotApplicable)
}

func Test_DraftForHiringSignal_ShouldTruncateLongRoles(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"subject_line": "s", "body": "b"}`, nil)

	signal := models.HiringSignal{Keyword: "VP", MatchedText: strings.Repeat("a", 150)}

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	draft, err := drafter.DraftForHiringSignal(context.Background(), "Acme", signal)

	require.NoError(t, err)
	assert.Len(t, draft.Role, 100)
}

func Test_DraftForProspectSignal_ShouldCarryCategoryInSignalType(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.MatchedBy(func(request string) bool {
		return strings.Contains(request, "Acme raises Series B")
	})).Return(`{"subject_line": "Congrats on the round", "body": "Body"}`, nil)

	signal := models.ProspectSignal{
		Category: "funding",
		Headline: "Acme raises Series B",
		Snippet:  "Acme announced a $40M round",
	}

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	draft, err := drafter.DraftForProspectSignal(context.Background(), "Acme", signal)

	require.NoError(t, err)
	assert.Equal(t, "prospect_funding", draft.SignalType)
	assert.Equal(t, "Acme raises Series B", draft.Role)
}

func Test_DraftForHiringSignal_WhenSignalRepeats_ShouldNotGenerateTwice(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"subject_line": "Subject", "body": "Body"}`, nil).Once()

	drafter := NewDrafter(ai, "gemini-1.5-flash")

	first, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())
	require.NoError(t, err)
	second, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	ai.AssertExpectations(t)
}

func Test_DraftForHiringSignal_WhenRejectedSignalRepeats_ShouldNotGenerateTwice(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"subject_line": null, "body": null}`, nil).Once()

	drafter := NewDrafter(ai, "gemini-1.5-flash")

	_, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())
	assert.ErrorIs(t, err, ErrNotApplicable)
	_, err = drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())
	assert.ErrorIs(t, err, ErrNotApplicable)

	ai.AssertExpectations(t)
}

func Test_DraftForHiringSignal_SameSignalForDifferentCompanies_ShouldGenerateBoth(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).
		Return(`{"subject_line": "Subject", "body": "Body"}`, nil).Twice()

	drafter := NewDrafter(ai, "gemini-1.5-flash")

	_, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())
	require.NoError(t, err)
	_, err = drafter.DraftForHiringSignal(context.Background(), "Globex", hiringSignal())
	require.NoError(t, err)

	ai.AssertExpectations(t)
}

func Test_DraftForHiringSignal_WhenGenerationFails_ShouldPropagateError(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("GenerateResponse", mock.Anything, mock.Anything).Return("", assert.AnError)

	drafter := NewDrafter(ai, "gemini-1.5-flash")
	_, err := drafter.DraftForHiringSignal(context.Background(), "Acme", hiringSignal())

	assert.ErrorIs(t, err, assert.AnError)
}
