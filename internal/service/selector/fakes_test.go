package selector

import (
	"context"
	"io"
	"log/slog"

	"cmsselect/internal/domain/models"
	"cmsselect/internal/domain/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCategories struct {
	rows    []models.Category
	err     error
	filters []repositories.CategoryFilter
}

func (f *fakeCategories) ListTree(_ context.Context, filter repositories.CategoryFilter) ([]models.Category, error) {
	f.filters = append(f.filters, filter)
	return f.rows, f.err
}

type fakeArticles struct {
	byCategory map[int][]models.Article
	err        error
	filters    []repositories.ArticleFilter
}

func (f *fakeArticles) ListByCategory(_ context.Context, filter repositories.ArticleFilter) ([]models.Article, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Article
	for _, a := range f.byCategory[filter.CategoryID] {
		if filter.OnlineOnly && !a.Online {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeContents struct {
	rows    []models.ContentValue
	filters []repositories.ContentFilter
}

func (f *fakeContents) ListByCategoryArticles(_ context.Context, filter repositories.ContentFilter) ([]models.ContentValue, error) {
	f.filters = append(f.filters, filter)
	return f.rows, nil
}

type fakeUploads struct {
	rows    []models.Upload
	filters []repositories.FileFilter
}

func (f *fakeUploads) List(_ context.Context, filter repositories.FileFilter) ([]models.Upload, error) {
	f.filters = append(f.filters, filter)
	return f.rows, nil
}

type fakeDbfs struct {
	rows    []models.DbfsEntry
	filters []repositories.FileFilter
}

func (f *fakeDbfs) List(_ context.Context, filter repositories.FileFilter) ([]models.DbfsEntry, error) {
	f.filters = append(f.filters, filter)
	return f.rows, nil
}

func labels(l *models.Listing) []string {
	out := make([]string, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		out = append(out, n.Label)
	}
	return out
}

func levels(l *models.Listing) []int {
	out := make([]int, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		out = append(out, n.Level)
	}
	return out
}

func selectedValues(l *models.Listing) []string {
	var out []string
	for _, n := range l.Nodes {
		if n.Selected {
			out = append(out, n.Value)
		}
	}
	return out
}
