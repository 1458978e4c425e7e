package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdr-labs/signalsdr/internal/domain/models"
)

func prospectSignal(category, headline string) models.Signal {
	return models.ProspectSignal{Category: category, Headline: headline}
}

func Test_Reduce_ShouldDropDuplicateKeysKeepingFirst(t *testing.T) {

	signals := []models.Signal{
		models.HiringSignal{Keyword: "VP", MatchedText: "first", LineNumber: 1},
		models.HiringSignal{Keyword: "VP", MatchedText: "second", LineNumber: 7},
		models.HiringSignal{Keyword: "CTO", MatchedText: "third", LineNumber: 9},
	}

	reduced := Reduce(signals, 0)

	assert.Len(t, reduced, 2)
	assert.Equal(t, "first", reduced[0].(models.HiringSignal).MatchedText)
	assert.Equal(t, "CTO", reduced[1].Key())
}

func Test_Reduce_WhenUnderCap_ShouldOnlyDeduplicate(t *testing.T) {

	signals := []models.Signal{
		prospectSignal("funding", "a"),
		prospectSignal("leadership", "b"),
	}

	reduced := Reduce(signals, 5)

	assert.Equal(t, signals, reduced)
}

func Test_Reduce_WhenOverCap_ShouldPreferOnePerCategory(t *testing.T) {

	signals := []models.Signal{
		prospectSignal("funding", "a1"),
		prospectSignal("funding", "a2"),
		prospectSignal("funding", "a3"),
		prospectSignal("leadership", "b1"),
		prospectSignal("expansion", "c1"),
	}

	reduced := Reduce(signals, 3)

	assert.Equal(t, []models.Signal{
		prospectSignal("funding", "a1"),
		prospectSignal("leadership", "b1"),
		prospectSignal("expansion", "c1"),
	}, reduced)
}

func Test_Reduce_WhenCapBelowCategoryCount_ShouldKeepEncounterOrder(t *testing.T) {

	signals := []models.Signal{
		prospectSignal("x", "x1"),
		prospectSignal("y", "y1"),
		prospectSignal("z", "z1"),
	}

	reduced := Reduce(signals, 2)

	assert.Equal(t, []models.Signal{
		prospectSignal("x", "x1"),
		prospectSignal("y", "y1"),
	}, reduced)
}

func Test_Reduce_ShouldBeIdempotent(t *testing.T) {

	signals := []models.Signal{
		prospectSignal("funding", "a1"),
		prospectSignal("funding", "a2"),
		prospectSignal("leadership", "b1"),
		prospectSignal("expansion", "c1"),
	}

	once := Reduce(signals, 3)
	twice := Reduce(once, 3)

	assert.Equal(t, once, twice)
}

func Test_Reduce_WhenEmptyInput_ShouldReturnEmpty(t *testing.T) {
	assert.Empty(t, Reduce(nil, 5))
}
