package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"newsportal/pkg/models"
)

var csvHeader = []string{
	"id", "title", "summary", "content", "language", "category", "categories",
	"source_name", "source_url", "url", "tags", "view_count", "published_at",
	"resolved_category", "resolved_by",
}

type articleCSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func newArticleCSVWriter(w io.Writer) *articleCSVWriter {
	return &articleCSVWriter{w: csv.NewWriter(w)}
}

func (cw *articleCSVWriter) Write(v models.ArticleView) error {
	if !cw.wroteHeader {
		if err := cw.w.Write(csvHeader); err != nil {
			return err
		}
		cw.wroteHeader = true
	}
	cats, err := jsonList(v.Categories)
	if err != nil {
		return err
	}
	tags, err := jsonList(v.Tags)
	if err != nil {
		return err
	}
	return cw.w.Write([]string{
		v.ID, v.Title, v.Summary, v.Content, v.Language, v.StoredCategory, cats,
		v.Source.Name, v.Source.URL, v.URL, tags, strconv.Itoa(v.ViewCount),
		v.PublishedAt.UTC().Format(time.RFC3339),
		v.Category, v.ResolvedBy,
	})
}

// Flush writes the header even when no rows were written.
func (cw *articleCSVWriter) Flush() error {
	if !cw.wroteHeader {
		if err := cw.w.Write(csvHeader); err != nil {
			return err
		}
		cw.wroteHeader = true
	}
	cw.w.Flush()
	return cw.w.Error()
}

func jsonList(v []string) (string, error) {
	if len(v) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readArticlesCSV parses the export format. Columns are matched by header
// name, so files with fewer or reordered columns load as well. Rows without
// an id or title are skipped; resolved_* columns are ignored.
func readArticlesCSV(r io.Reader) ([]models.Article, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	var out []models.Article
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		id := valueAt(header, row, "id")
		title := valueAt(header, row, "title")
		if id == "" || title == "" {
			continue
		}

		a := models.Article{
			ID:       id,
			Title:    title,
			Summary:  valueAt(header, row, "summary"),
			Content:  valueAt(header, row, "content"),
			Language: valueAt(header, row, "language"),
			Category: valueAt(header, row, "category"),
			Source: models.Source{
				Name: valueAt(header, row, "source_name"),
				URL:  valueAt(header, row, "source_url"),
			},
			URL: valueAt(header, row, "url"),
		}
		if a.Categories, err = parseList(valueAt(header, row, "categories")); err != nil {
			return nil, fmt.Errorf("line %d categories: %w", line, err)
		}
		if a.Tags, err = parseList(valueAt(header, row, "tags")); err != nil {
			return nil, fmt.Errorf("line %d tags: %w", line, err)
		}
		if raw := valueAt(header, row, "published_at"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("line %d published_at: %w", line, err)
			}
			a.PublishedAt = t
		}
		out = append(out, a)
	}
	return out, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseList accepts a JSON array or a "|" separated list.
func parseList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	var out []string
	for _, p := range strings.Split(raw, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
