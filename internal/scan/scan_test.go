package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file of n bytes under dir, making parents as needed.
func writeFile(t *testing.T, dir, name string, n int) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, n), 0o644))
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestChildren_Ordering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zeta.txt", 1)
	writeFile(t, dir, "alpha.txt", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zoo"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))

	entries, err := Children(dir, "", Filter{ShowFiles: true})
	require.NoError(t, err)

	// Directories first, each group lexicographic.
	assert.Equal(t, []string{"bin", "zoo", "alpha.txt", "zeta.txt"}, names(entries))
	assert.True(t, entries[0].IsDir)
	assert.True(t, entries[1].IsDir)
	assert.False(t, entries[2].IsDir)
	assert.False(t, entries[3].IsDir)
}

func TestChildren_IgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", 1)
	writeFile(t, dir, "drop.log", 1)
	writeFile(t, dir, "cache", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))

	entries, err := Children(dir, "", Filter{
		ShowFiles: true,
		Ignore:    []string{"*.log", "node_modules", "c?che"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.txt"}, names(entries))
}

func TestChildren_DirsOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	entries, err := Children(dir, "", Filter{ShowFiles: false})
	require.NoError(t, err)

	assert.Equal(t, []string{"sub"}, names(entries))
}

func TestChildren_Hidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", 1)
	writeFile(t, dir, "visible.txt", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))

	entries, err := Children(dir, "", Filter{ShowFiles: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.txt"}, names(entries))

	entries, err = Children(dir, "", Filter{ShowFiles: true, ShowHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{".git", ".env", "visible.txt"}, names(entries))
}

func TestChildren_EmptyDirectory(t *testing.T) {
	entries, err := Children(t.TempDir(), "", Filter{ShowFiles: true})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestChildren_MissingDirectory(t *testing.T) {
	_, err := Children(filepath.Join(t.TempDir(), "gone"), "", Filter{ShowFiles: true})
	assert.Error(t, err)
}

// relIgnorer records the relative paths it is asked about and excludes a
// fixed set.
type relIgnorer struct {
	excluded map[string]bool
	asked    []string
}

func (r *relIgnorer) MatchesPath(rel string) bool {
	r.asked = append(r.asked, rel)
	return r.excluded[rel]
}

func TestChildren_Gitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kept.go", 1)
	writeFile(t, dir, "dropped.log", 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build"), 0o755))

	ign := &relIgnorer{excluded: map[string]bool{
		"sub/dropped.log": true,
		"sub/build/":      true,
	}}

	entries, err := Children(dir, "sub", Filter{ShowFiles: true, Gitignore: ign})
	require.NoError(t, err)

	assert.Equal(t, []string{"kept.go"}, names(entries))
	// Directories are matched with a trailing slash, files without.
	assert.Contains(t, ign.asked, "sub/build/")
	assert.Contains(t, ign.asked, "sub/kept.go")
}

func TestChildren_SkipsUnstatableEntries(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	writeFile(t, dir, "sub/a.txt", 1)
	writeFile(t, dir, "sub/b.txt", 1)

	// Read-only without exec: names still list, but stat on them fails.
	require.NoError(t, os.Chmod(sub, 0o400))
	t.Cleanup(func() { _ = os.Chmod(sub, 0o755) })

	entries, err := Children(sub, "", Filter{ShowFiles: true})
	require.NoError(t, err)
	assert.Empty(t, entries, "unstatable entries are skipped, not fatal")
}

func TestDirSize_RecursiveSum(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.bin", 100)
	writeFile(t, dir, "a/mid.bin", 200)
	writeFile(t, dir, "a/b/deep.bin", 300)

	assert.Equal(t, int64(600), DirSize(dir))
	assert.Equal(t, int64(500), DirSize(filepath.Join(dir, "a")))
}

func TestDirSize_IndependentOfFilters(t *testing.T) {
	// Hidden and ignorable files still count: aggregate size reflects true
	// on-disk content, not what is currently visible.
	dir := t.TempDir()
	writeFile(t, dir, ".hidden", 512)
	writeFile(t, dir, "junk.log", 256)

	assert.Equal(t, int64(768), DirSize(dir))
}

func TestDirSize_SkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	writeFile(t, dir, "readable.bin", 100)
	writeFile(t, dir, "locked/secret.bin", 900)

	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	// The unreadable subtree contributes nothing; the rest still counts.
	assert.Equal(t, int64(100), DirSize(dir))
}

func TestDirSize_EmptyDirectory(t *testing.T) {
	assert.Equal(t, int64(0), DirSize(t.TempDir()))
}

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, ValidatePatterns([]string{"*.log", "nod?_modules", "[abc]*"}))

	err := ValidatePatterns([]string{"*.log", "[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[unclosed")
}
