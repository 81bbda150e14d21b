package compare

import (
	"context"
	"testing"

	"github.com/anishTP/echo-portal-sub004/pkg/compare/status"
	"github.com/anishTP/echo-portal-sub004/pkg/errors"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"github.com/anishTP/echo-portal-sub004/pkg/store/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	branches store.BranchStore
	content  store.ContentStore
	engine   *Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		branches: mem.NewBranchStore(),
		content:  mem.NewContentStore(),
	}
	f.engine = New(f.branches, f.content)

	branch := model.BranchDescriptor{
		ID: "br-1", Name: "spring-updates", OwnerID: "alice",
		State: model.StateReview, RequiredApprovals: 1,
	}
	require.NoError(t, f.branches.Create(context.Background(), &branch))
	return f
}

func (f *fixture) addItem(t *testing.T, item model.ContentItem) {
	t.Helper()
	require.NoError(t, f.content.Upsert(context.Background(), &item))
}

func TestComparisonMissingBranch(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Comparison(context.Background(), "nope")
	assert.True(t, errors.Is(err, status.ErrNotFound))
}

func TestComparisonEmptyBranch(t *testing.T) {
	f := newFixture(t)
	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	assert.Empty(t, comparison.Files)
	assert.Zero(t, comparison.Stats.FilesChanged)
	assert.Equal(t, "published", comparison.BaseRef)
	assert.Equal(t, "spring-updates", comparison.HeadRef)
}

func TestComparisonAddedItem(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "New Guide", Slug: "new-guide",
		Body: "line one\nline two",
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	require.Len(t, comparison.Files, 1)

	file := comparison.Files[0]
	assert.Equal(t, model.DiffAdded, file.Status)
	assert.Equal(t, "New Guide", file.Path)
	// metadata block (---, title, ---) + blank separator + 2 body lines
	assert.Equal(t, 6, file.Additions)
	assert.Zero(t, file.Deletions)
	require.Len(t, file.Hunks, 1)
	for _, l := range file.Hunks[0].Lines {
		assert.Equal(t, model.LineAdded, l.Type)
	}
	assert.NotEmpty(t, file.Hunks[0].ID)
}

func TestComparisonModifiedBody(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "pub-1", Title: "Guide", Slug: "guide", Body: "a\nb\nc",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Guide", Slug: "guide",
		SourceContentID: "pub-1", Body: "a\nX\nc",
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	require.Len(t, comparison.Files, 1)

	file := comparison.Files[0]
	assert.Equal(t, model.DiffModified, file.Status)
	assert.Equal(t, 1, file.Additions)
	assert.Equal(t, 1, file.Deletions)
	require.Len(t, file.Hunks, 1)

	var types []model.LineType
	var contents []string
	for _, l := range file.Hunks[0].Lines {
		types = append(types, l.Type)
		contents = append(contents, l.Content)
	}
	assert.Equal(t, []model.LineType{model.LineContext, model.LineRemoved, model.LineAdded, model.LineContext}, types)
	assert.Equal(t, []string{"a", "b", "X", "c"}, contents)

	// body numbers are offset past the 3-line metadata block and the
	// blank separator: virtual line of body line 1 is 5
	h := file.Hunks[0]
	assert.Equal(t, 5, h.OldStart)
	assert.Equal(t, 5, h.NewStart)
	assert.Equal(t, 5, h.Lines[0].OldNumber)
	assert.Equal(t, 5, h.Lines[0].NewNumber)
}

func TestComparisonMetadataAndBodyMerged(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "pub-1", Title: "Guide", Slug: "guide",
		Tags: []string{"howto"}, Body: "a\nb\nc",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Guide", Slug: "guide",
		SourceContentID: "pub-1",
		Tags:            []string{"howto", "field"}, Body: "a\nb\nZ",
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	require.Len(t, comparison.Files, 1)

	file := comparison.Files[0]
	require.Len(t, file.Hunks, 2)

	// metadata hunk first, then the body hunk with offset numbers
	metaHunk, bodyHunk := file.Hunks[0], file.Hunks[1]
	assert.Less(t, metaHunk.NewStart, bodyHunk.NewStart)

	var metaChanged []string
	for _, l := range metaHunk.Lines {
		if l.Type != model.LineContext {
			metaChanged = append(metaChanged, l.Content)
		}
	}
	assert.Equal(t, []string{"tags: howto", "tags: howto, field"}, metaChanged)

	lastMetaNew := metaHunk.Lines[len(metaHunk.Lines)-1].NewNumber
	assert.Greater(t, bodyHunk.Lines[0].NewNumber, lastMetaNew)
}

func TestComparisonUnchangedExcluded(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "pub-1", Title: "Guide", Slug: "guide", Body: "same\nbody",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Guide", Slug: "guide",
		SourceContentID: "pub-1", Body: "same\nbody",
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	assert.Empty(t, comparison.Files)
}

func TestComparisonDeletedItem(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "pub-1", Title: "Old Guide", Slug: "old-guide", Body: "x\ny",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Old Guide", Slug: "old-guide",
		SourceContentID: "pub-1", Body: "x\ny", Archived: true,
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	require.Len(t, comparison.Files, 1)

	file := comparison.Files[0]
	assert.Equal(t, model.DiffDeleted, file.Status)
	assert.Equal(t, "pub-1", file.ContentID)
	assert.Zero(t, file.Additions)
	// metadata block + separator + 2 body lines
	assert.Equal(t, 6, file.Deletions)
	require.Len(t, file.Hunks, 1)
	for _, l := range file.Hunks[0].Lines {
		assert.Equal(t, model.LineRemoved, l.Type)
	}
}

func TestComparisonArchivedWithoutSourceSkipped(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Scratch", Slug: "scratch",
		Body: "draft", Archived: true,
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	assert.Empty(t, comparison.Files)
}

func TestComparisonMissingSourceSkipsItemOnly(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Broken", Slug: "broken",
		SourceContentID: "vanished", Body: "text",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-2", BranchID: "br-1", Title: "Fresh", Slug: "fresh", Body: "new",
	})

	comparison, err := f.engine.Comparison(context.Background(), "br-1")
	require.NoError(t, err)
	require.Len(t, comparison.Files, 1)
	assert.Equal(t, "c-2", comparison.Files[0].ContentID)
}

func TestComparisonSubcategoryResolved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.content.PutSubcategory(ctx, "sub-1", "Field Guides"))
	f.addItem(t, model.ContentItem{
		ID: "pub-1", Title: "Guide", Slug: "guide", Body: "b",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Guide", Slug: "guide",
		SourceContentID: "pub-1", SubcategoryID: "sub-1", Body: "b",
	})

	comparison, err := f.engine.Comparison(ctx, "br-1")
	require.NoError(t, err)
	require.Len(t, comparison.Files, 1)

	var added []string
	for _, h := range comparison.Files[0].Hunks {
		for _, l := range h.Lines {
			if l.Type == model.LineAdded {
				added = append(added, l.Content)
			}
		}
	}
	assert.Contains(t, added, "subcategory: Field Guides")
}

func TestStatsMatchesComparison(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, model.ContentItem{
		ID: "pub-1", Title: "Guide", Slug: "guide", Body: "a\nb\nc",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-1", BranchID: "br-1", Title: "Guide", Slug: "guide",
		SourceContentID: "pub-1", Body: "a\nX\nc\nd",
	})
	f.addItem(t, model.ContentItem{
		ID: "c-2", BranchID: "br-1", Title: "Another", Slug: "another", Body: "fresh",
	})

	ctx := context.Background()
	comparison, err := f.engine.Comparison(ctx, "br-1")
	require.NoError(t, err)
	stats, err := f.engine.Stats(ctx, "br-1")
	require.NoError(t, err)

	assert.Equal(t, comparison.Stats, *stats)
	assert.Equal(t, 2, stats.FilesChanged)
}

func TestMetadataLinesOrderAndOmission(t *testing.T) {
	full := model.ContentItem{
		Title:       "T",
		Description: "D",
		Category:    "C",
		Tags:        []string{"t1", "t2"},
	}
	assert.Equal(t, []string{
		"---",
		"title: T",
		"description: D",
		"category: C",
		"subcategory: S",
		"tags: t1, t2",
		"---",
	}, MetadataLines(full, "S"))

	sparse := model.ContentItem{Title: "T"}
	assert.Equal(t, []string{"---", "title: T", "---"}, MetadataLines(sparse, ""))
}
