package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NEWSPORTAL_CONFIG", "")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const seedCSV = `id,title,summary,language,category,categories,source_name,tags,published_at
65a1f0c2e4b0a1b2c3d4e501,Government announces new election schedule,,en,,[],Daily Ledger,[],2024-03-01T08:00:00Z
65a1f0c2e4b0a1b2c3d4e502,India beat Australia in a thrilling cricket match at the stadium,,en,,,Metro Wire,cricket|india,2024-03-01T09:00:00Z
65a1f0c2e4b0a1b2c3d4e503,Police arrested two men after a robbery,,english,,,Crime Watch,,2024-03-01T10:00:00Z
,missing id is skipped,,en,,,,,
`

func seed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "news.db")
	csvPath := filepath.Join(dir, "seed.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(seedCSV), 0o600))

	out, err := run(t, "", "import", "--db", db, "--csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 article(s): 3 new, 0 updated")
	return db
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "newsctl dev")
}

func TestClassify(t *testing.T) {
	out, err := run(t, "", "classify", "--explain", "Government announces new election schedule")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "politics\t6\t(english)"), out)
	assert.Contains(t, out, "government")

	out, err = run(t, "క్రికెట్ మ్యాచ్‌లో విజయం", "classify", "-l", "te")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sports\t3\t(telugu)"), out)

	out, err = run(t, "", "classify", "--json", "--title", "Weather is calm today")
	require.NoError(t, err)
	assert.Contains(t, out, `"category": "general"`)
}

func TestListUsesBothPaths(t *testing.T) {
	db := seed(t)

	out, err := run(t, "", "list", "--db", db, "--category", "crime", "--language", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "65a1f0c2e4b0a1b2c3d4e503")
	assert.NotContains(t, out, "65a1f0c2e4b0a1b2c3d4e501")
	assert.Contains(t, out, "page 1 of 1 article(s) via smart path")

	out, err = run(t, "", "list", "--db", db, "--sort", "oldest", "--page-size", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "via all path")
	assert.Contains(t, out, "65a1f0c2e4b0a1b2c3d4e501")
	assert.NotContains(t, out, "65a1f0c2e4b0a1b2c3d4e503")
}

func TestExportRoundTrip(t *testing.T) {
	db := seed(t)

	out, err := run(t, "", "export", "--db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "id,title,summary"))
	assert.Contains(t, lines[1], "politics,content")
	assert.Contains(t, lines[2], `"[""cricket"",""india""]"`)
	assert.Contains(t, lines[2], "sports,content")
	assert.Contains(t, lines[3], "crime,source_override")

	items, err := readArticlesCSV(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"cricket", "india"}, items[1].Tags)

	// re-importing an export only updates
	path := filepath.Join(t.TempDir(), "export.csv")
	_, err = run(t, "", "export", "--db", db, "--out", path)
	require.NoError(t, err)
	out, err = run(t, "", "import", "--db", db, "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 new, 3 updated")
}

func TestWriteFileReportsCloseFailure(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "nested", "ok.csv")
	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "id\n")
		return err
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n", string(b))

	err = writeFile(filepath.Join(dir, "closed.csv"), func(w io.Writer) error {
		return w.(*os.File).Close()
	})
	assert.ErrorIs(t, err, os.ErrClosed)

	boom := errors.New("boom")
	err = writeFile(filepath.Join(dir, "failed.csv"), func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestImportFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Desk</title>
<item><title>Markets rally on rate cut</title><link>https://desk.example.test/1</link></item>
</channel></rss>`))
	}))
	defer srv.Close()

	db := filepath.Join(t.TempDir(), "news.db")
	out, err := run(t, "", "import", "--db", db, "--feed", srv.URL, "--name", "Desk", "--language", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "fetched 1 item(s), 1 after merge: 1 new, 0 updated")

	_, err = run(t, "", "import", "--db", db)
	assert.Error(t, err)
}
