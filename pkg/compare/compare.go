// Package compare computes the diff of a branch's content against its
// source lineage: per-item file diffs with stable hunks, plus
// aggregated statistics. All operations are read-only and safe to run
// concurrently across branches.
package compare

import (
	"context"
	"sort"
	"sync"

	"github.com/anishTP/echo-portal-sub004/pkg/compare/status"
	"github.com/anishTP/echo-portal-sub004/pkg/diff"
	"github.com/anishTP/echo-portal-sub004/pkg/model"
	"github.com/anishTP/echo-portal-sub004/pkg/store"
	"go.uber.org/zap"
)

// Option is a functor to configure the comparison engine.
type Option func(*Engine)

// Logger injects a logging facility into the engine.
func Logger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.l = l
		}
	}
}

// ContextLines tunes the unchanged-line window kept around changes.
// Non-positive values keep the default.
func ContextLines(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.contextLines = n
		}
	}
}

// Engine orchestrates branch comparisons.
type Engine struct {
	branches     store.BranchStore
	content      store.ContentStore
	contextLines int
	l            *zap.Logger
}

// New builds a comparison engine over the given stores.
func New(branches store.BranchStore, content store.ContentStore, opts ...Option) *Engine {
	e := &Engine{
		branches:     branches,
		content:      content,
		contextLines: diff.DefaultContextLines,
		l:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// lookups holds the batch-fetched cross references for one comparison
// call: source items and subcategory display names.
type lookups struct {
	sources map[string]model.ContentItem
	subcats map[string]string
}

// Comparison computes the full diff of a branch against its source
// lineage. Items without lineage are additions, forked items are
// diffed against their source, archived forks are deletions.
// Unchanged items are excluded. A missing source item skips that item
// only; the comparison is best-effort over the full set.
func (e *Engine) Comparison(ctx context.Context, branchID string) (*model.BranchComparison, error) {
	return e.compare(ctx, branchID, true)
}

// Stats performs the identical classification and line counting as
// Comparison but skips hunk construction, for summary display.
func (e *Engine) Stats(ctx context.Context, branchID string) (*model.ComparisonStats, error) {
	comparison, err := e.compare(ctx, branchID, false)
	if err != nil {
		return nil, err
	}
	return &comparison.Stats, nil
}

func (e *Engine) compare(ctx context.Context, branchID string, withHunks bool) (*model.BranchComparison, error) {
	branch, err := e.branches.Get(ctx, branchID)
	if err != nil {
		return nil, status.ErrNotFound.Wrap(err)
	}
	items, err := e.content.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	refs, err := e.fetchLookups(ctx, items)
	if err != nil {
		return nil, err
	}

	comparison := &model.BranchComparison{
		BranchID: branchID,
		BaseRef:  "published",
		HeadRef:  branch.Name,
		Files:    []model.FileDiff{},
	}
	for _, item := range items {
		file, ok := e.compareItem(item, refs, withHunks)
		if !ok {
			continue
		}
		comparison.Files = append(comparison.Files, file)
	}
	sort.Slice(comparison.Files, func(i, j int) bool {
		if comparison.Files[i].Path != comparison.Files[j].Path {
			return comparison.Files[i].Path < comparison.Files[j].Path
		}
		return comparison.Files[i].ContentID < comparison.Files[j].ContentID
	})
	for _, f := range comparison.Files {
		comparison.Stats.FilesChanged++
		comparison.Stats.Additions += f.Additions
		comparison.Stats.Deletions += f.Deletions
	}
	return comparison, nil
}

// fetchLookups batch-fetches all cross-referenced source items and
// subcategory names once per comparison call. The two families are
// fetched concurrently and joined before diffing.
func (e *Engine) fetchLookups(ctx context.Context, items []model.ContentItem) (lookups, error) {
	sourceIDs := make([]string, 0, len(items))
	subcatSet := map[string]struct{}{}
	for _, item := range items {
		if item.SourceContentID != "" {
			sourceIDs = append(sourceIDs, item.SourceContentID)
		}
		if item.SubcategoryID != "" {
			subcatSet[item.SubcategoryID] = struct{}{}
		}
	}

	var (
		wg            sync.WaitGroup
		refs          lookups
		srcErr, scErr error
	)
	subcatIDs := make([]string, 0, len(subcatSet))
	for id := range subcatSet {
		subcatIDs = append(subcatIDs, id)
	}
	wg.Add(2)
	go func() {
		defer wg.Done()
		refs.sources, srcErr = e.content.GetMany(ctx, sourceIDs)
	}()
	go func() {
		defer wg.Done()
		refs.subcats, scErr = e.content.SubcategoryNames(ctx, subcatIDs)
	}()
	wg.Wait()
	if srcErr != nil {
		return refs, srcErr
	}
	if scErr != nil {
		return refs, scErr
	}

	// source items may point at subcategories the branch items do not
	extra := make([]string, 0)
	for _, src := range refs.sources {
		if src.SubcategoryID == "" {
			continue
		}
		if _, ok := refs.subcats[src.SubcategoryID]; !ok {
			extra = append(extra, src.SubcategoryID)
		}
	}
	if len(extra) > 0 {
		names, err := e.content.SubcategoryNames(ctx, extra)
		if err != nil {
			return refs, err
		}
		for id, name := range names {
			refs.subcats[id] = name
		}
	}
	return refs, nil
}

func (e *Engine) compareItem(item model.ContentItem, refs lookups, withHunks bool) (model.FileDiff, bool) {
	switch {
	case item.Archived:
		if item.SourceContentID == "" {
			// authored and discarded on the same branch, nothing to show
			return model.FileDiff{}, false
		}
		src, ok := refs.sources[item.SourceContentID]
		if !ok {
			e.l.Warn("skipping item with unreachable source",
				zap.String("content", item.ID),
				zap.String("source", item.SourceContentID))
			return model.FileDiff{}, false
		}
		return e.deletedFile(src, refs, withHunks), true

	case item.SourceContentID == "":
		return e.addedFile(item, refs, withHunks), true

	default:
		src, ok := refs.sources[item.SourceContentID]
		if !ok {
			e.l.Warn("skipping item with unreachable source",
				zap.String("content", item.ID),
				zap.String("source", item.SourceContentID))
			return model.FileDiff{}, false
		}
		return e.modifiedFile(item, src, refs, withHunks)
	}
}

func (e *Engine) addedFile(item model.ContentItem, refs lookups, withHunks bool) model.FileDiff {
	doc := virtualDocument(item, refs.subcats[item.SubcategoryID])
	file := model.FileDiff{
		Path:      item.Title,
		ContentID: item.ID,
		Status:    model.DiffAdded,
		Additions: len(doc),
		After:     item.Body,
	}
	if withHunks {
		file.Hunks = diff.AdditionHunks(doc)
		diff.AssignIDs(file.Path, file.Hunks)
	}
	return file
}

func (e *Engine) deletedFile(src model.ContentItem, refs lookups, withHunks bool) model.FileDiff {
	doc := virtualDocument(src, refs.subcats[src.SubcategoryID])
	file := model.FileDiff{
		Path:      src.Title,
		ContentID: src.ID,
		Status:    model.DiffDeleted,
		Deletions: len(doc),
		Before:    src.Body,
	}
	if withHunks {
		file.Hunks = diff.DeletionHunks(doc)
		diff.AssignIDs(file.Path, file.Hunks)
	}
	return file
}

func (e *Engine) modifiedFile(item, src model.ContentItem, refs lookups, withHunks bool) (model.FileDiff, bool) {
	oldMeta := MetadataLines(src, refs.subcats[src.SubcategoryID])
	newMeta := MetadataLines(item, refs.subcats[item.SubcategoryID])
	oldBody := bodyLines(src.Body)
	newBody := bodyLines(item.Body)

	if !withHunks {
		metaAdd, metaDel := diff.Counts(oldMeta, newMeta)
		bodyAdd, bodyDel := diff.Counts(oldBody, newBody)
		if metaAdd+metaDel+bodyAdd+bodyDel == 0 {
			return model.FileDiff{}, false
		}
		return model.FileDiff{
			Path:      item.Title,
			ContentID: item.ID,
			Status:    model.DiffModified,
			Additions: metaAdd + bodyAdd,
			Deletions: metaDel + bodyDel,
		}, true
	}

	metaRes := diff.ComputeContext(oldMeta, newMeta, e.contextLines)
	bodyRes := diff.ComputeContext(oldBody, newBody, e.contextLines)
	merged := mergeDiffs(metaRes, bodyRes, len(oldMeta), len(newMeta))
	if merged.Additions+merged.Deletions == 0 {
		return model.FileDiff{}, false
	}

	file := model.FileDiff{
		Path:      item.Title,
		ContentID: item.ID,
		Status:    model.DiffModified,
		Additions: merged.Additions,
		Deletions: merged.Deletions,
		Hunks:     merged.Hunks,
		Before:    src.Body,
		After:     item.Body,
	}
	diff.AssignIDs(file.Path, file.Hunks)
	return file, true
}
