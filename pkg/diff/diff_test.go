package diff

import (
	"strings"
	"testing"

	"github.com/anishTP/echo-portal-sub004/internal/rand"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestComputeIdentical(t *testing.T) {
	for _, fixture := range [][]string{
		nil,
		{"only"},
		lines("a\nb\nc"),
		rand.Lines(50, 40),
	} {
		res := Compute(fixture, fixture)
		assert.Zero(t, res.Additions)
		assert.Zero(t, res.Deletions)
		assert.Empty(t, res.Hunks)
	}
}

func TestComputePureAddition(t *testing.T) {
	content := lines("one\ntwo\nthree")
	res := Compute(nil, content)

	assert.Equal(t, len(content), res.Additions)
	assert.Zero(t, res.Deletions)
	require.Len(t, res.Hunks, 1)

	h := res.Hunks[0]
	assert.Equal(t, 0, h.OldLineCount)
	assert.Equal(t, len(content), h.NewLineCount)
	for i, l := range h.Lines {
		assert.Equal(t, model.LineAdded, l.Type)
		assert.Zero(t, l.OldNumber)
		assert.Equal(t, i+1, l.NewNumber)
	}
}

func TestComputePureDeletion(t *testing.T) {
	content := lines("one\ntwo\nthree")
	res := Compute(content, nil)

	assert.Zero(t, res.Additions)
	assert.Equal(t, len(content), res.Deletions)
	require.Len(t, res.Hunks, 1)

	h := res.Hunks[0]
	assert.Equal(t, len(content), h.OldLineCount)
	assert.Equal(t, 0, h.NewLineCount)
	for i, l := range h.Lines {
		assert.Equal(t, model.LineRemoved, l.Type)
		assert.Equal(t, i+1, l.OldNumber)
		assert.Zero(t, l.NewNumber)
	}
}

func TestComputeSingleModification(t *testing.T) {
	res := Compute(lines("a\nb\nc"), lines("a\nX\nc"))

	assert.Equal(t, 1, res.Additions)
	assert.Equal(t, 1, res.Deletions)
	require.Len(t, res.Hunks, 1)

	h := res.Hunks[0]
	assert.Equal(t, 1, h.OldStart)
	assert.Equal(t, 3, h.OldLineCount)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 3, h.NewLineCount)

	var types []model.LineType
	var contents []string
	for _, l := range h.Lines {
		types = append(types, l.Type)
		contents = append(contents, l.Content)
	}
	assert.Equal(t, []model.LineType{model.LineContext, model.LineRemoved, model.LineAdded, model.LineContext}, types)
	assert.Equal(t, []string{"a", "b", "X", "c"}, contents)
}

func TestComputeGroupsAdjacentChanges(t *testing.T) {
	oldDoc := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	newDoc := []string{"1", "x", "3", "4", "y", "6", "7", "8"}

	// changes at lines 2 and 5 are within 2*context of one another
	res := Compute(oldDoc, newDoc)
	assert.Equal(t, 2, res.Additions)
	assert.Equal(t, 2, res.Deletions)
	assert.Len(t, res.Hunks, 1)
}

func TestComputeSplitsDistantChanges(t *testing.T) {
	oldDoc := make([]string, 30)
	newDoc := make([]string, 30)
	for i := range oldDoc {
		oldDoc[i] = strings.Repeat("s", i+1)
		newDoc[i] = oldDoc[i]
	}
	newDoc[2] = "first change"
	newDoc[25] = "second change"

	res := Compute(oldDoc, newDoc)
	require.Len(t, res.Hunks, 2)
	assert.Equal(t, 2, res.Additions)
	assert.Equal(t, 2, res.Deletions)

	// context never exceeds the configured window
	for _, h := range res.Hunks {
		ctx := 0
		for _, l := range h.Lines {
			if l.Type == model.LineContext {
				ctx++
			}
		}
		assert.LessOrEqual(t, ctx, 2*DefaultContextLines)
	}
}

func TestComputeEmptyBothSides(t *testing.T) {
	res := Compute(nil, nil)
	assert.Zero(t, res.Additions)
	assert.Zero(t, res.Deletions)
	assert.Empty(t, res.Hunks)
}

func TestComputeDeterministic(t *testing.T) {
	oldDoc := rand.Lines(120, 30)
	newDoc := make([]string, len(oldDoc))
	copy(newDoc, oldDoc)
	for i := 0; i < 15; i++ {
		newDoc[rand.Intn(len(newDoc))] = rand.LetterString(12)
	}

	first := Compute(oldDoc, newDoc)
	AssignIDs("guide", first.Hunks)
	second := Compute(oldDoc, newDoc)
	AssignIDs("guide", second.Hunks)

	require.Equal(t, first, second)
}

func TestComputeMonotonicNumbers(t *testing.T) {
	res := Compute(rand.Lines(60, 20), rand.Lines(70, 20))
	lastOld, lastNew := 0, 0
	for _, h := range res.Hunks {
		for _, l := range h.Lines {
			if l.OldNumber > 0 {
				assert.Greater(t, l.OldNumber, lastOld)
				lastOld = l.OldNumber
			}
			if l.NewNumber > 0 {
				assert.Greater(t, l.NewNumber, lastNew)
				lastNew = l.NewNumber
			}
		}
	}
}

func TestAdditionHunksEmpty(t *testing.T) {
	assert.Nil(t, AdditionHunks(nil))
	assert.Nil(t, DeletionHunks(nil))
}
