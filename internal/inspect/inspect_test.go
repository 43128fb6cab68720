package inspect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgorman/clipstty-check/internal/clock"
	"github.com/rickgorman/clipstty-check/internal/ui"
)

var testDay = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

func dayDir(home string) string {
	return filepath.Join(home, ".clipstty", "sessions", "2024", "03", "05")
}

func TestRunNoDataDir(t *testing.T) {
	home := t.TempDir()

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	assert.False(t, r.DataDirExists)
	assert.False(t, r.SessionsDirExists)
	assert.False(t, r.ExpectedDirExists)
	assert.Equal(t, dayDir(home), r.ExpectedDir)
	assert.Empty(t, r.Files)

	out := Plain(r)
	assert.Contains(t, out, "✘ Data directory does not exist")
	assert.Contains(t, out, "✘ Sessions directory does not exist")
	assert.Contains(t, out, "Expected directory does not exist yet")
	assert.NotContains(t, out, "Directory exists but is empty")
}

func TestRunEmptySessionsDir(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".clipstty", "sessions"), 0755))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	assert.True(t, r.DataDirExists)
	assert.True(t, r.SessionsDirExists)
	assert.Empty(t, r.SessionsContents)
	assert.False(t, r.ExpectedDirExists)

	out := Plain(r)
	assert.Contains(t, out, "✔ Sessions directory exists")
	assert.Contains(t, out, "Contents: (empty)")
}

func TestRunSessionsContentsOneLevel(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(dayDir(home), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".clipstty", "sessions", "2023", "12"), 0755))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{"2023", "2024"}, r.SessionsContents)
}

func TestRunOneFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(dayDir(home), 0755))
	content := []byte("RIFF....WAVE")
	require.NoError(t, os.WriteFile(filepath.Join(dayDir(home), "test session.wav"), content, 0644))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	require.True(t, r.ExpectedDirExists)
	require.Len(t, r.Files, 1)
	assert.Equal(t, "test session.wav", r.Files[0].Name)
	assert.Equal(t, int64(len(content)), r.Files[0].Size)
	assert.Equal(t, KindAudio, r.Files[0].Kind)

	out := Plain(r)
	assert.Contains(t, out, "Found 1 file:")
	assert.Contains(t, out, "- test session.wav (12 bytes)")
	assert.Equal(t, 1, strings.Count(out, "(12 bytes)"))
}

func TestRunEmptyExpectedDir(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(dayDir(home), 0755))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	assert.True(t, r.ExpectedDirExists)
	assert.Empty(t, r.Files)

	out := Plain(r)
	assert.Contains(t, out, "Directory exists but is empty")
	assert.NotContains(t, out, "does not exist yet")
}

func TestRunVanishedFileReportsZero(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(dayDir(home), 0755))
	// A dangling symlink lists but cannot be stat'ed, like a file removed mid-run.
	require.NoError(t, os.Symlink(filepath.Join(home, "gone.wav"), filepath.Join(dayDir(home), "gone.wav")))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	require.Len(t, r.Files, 1)
	assert.Equal(t, "gone.wav", r.Files[0].Name)
	assert.Equal(t, int64(0), r.Files[0].Size)
	assert.Contains(t, Plain(r), "- gone.wav (0 bytes)")
}

func TestRunFilesSortedAndClassified(t *testing.T) {
	home := t.TempDir()
	dir := dayDir(home)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chunks"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("hi"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "6f1c2b9e-3a4d-4e5f-8a9b-0c1d2e3f4a5b.wav"), []byte("x"), 0644))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	require.Len(t, r.Files, 3)
	assert.Equal(t, "6f1c2b9e-3a4d-4e5f-8a9b-0c1d2e3f4a5b.wav", r.Files[0].Name)
	assert.Equal(t, "6f1c2b9e-3a4d-4e5f-8a9b-0c1d2e3f4a5b", r.Files[0].SessionID)
	assert.Equal(t, "b.txt", r.Files[1].Name)
	assert.Equal(t, KindTranscript, r.Files[1].Kind)
	assert.Equal(t, "chunks", r.Files[2].Name)
	assert.True(t, r.Files[2].IsDir)
	assert.Equal(t, KindDirectory, r.Files[2].Kind)

	assert.Contains(t, Plain(r), "session 6f1c2b9e")
}

func TestRunPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	home := t.TempDir()
	sessions := filepath.Join(home, ".clipstty", "sessions")
	require.NoError(t, os.MkdirAll(sessions, 0755))
	require.NoError(t, os.Chmod(sessions, 0000))
	t.Cleanup(func() { _ = os.Chmod(sessions, 0755) })

	_, err := New(home, clock.Fixed(testDay)).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestRunMalformedIndexIsNotFatal(t *testing.T) {
	home := t.TempDir()
	sessions := filepath.Join(home, ".clipstty", "sessions")
	require.NoError(t, os.MkdirAll(sessions, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sessions, "session_index.json"), []byte("{not json"), 0644))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)

	assert.Error(t, r.IndexErr)
	assert.Nil(t, r.Index)
	assert.Contains(t, Plain(r), "Session index unreadable")
}

func TestRunIndexSummary(t *testing.T) {
	home := t.TempDir()
	sessions := filepath.Join(home, ".clipstty", "sessions")
	require.NoError(t, os.MkdirAll(sessions, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sessions, "session_index.json"),
		[]byte(`{"sessions": {"a": {"start_time": "2024-03-05T09:00:00Z", "file_path": "/missing/a.wav"}}}`), 0644))

	r, err := New(home, clock.Fixed(testDay)).Run()
	require.NoError(t, err)
	require.NotNil(t, r.Index)

	out := Plain(r)
	assert.Contains(t, out, "Session index lists 1 session, 1 started on 2024-03-05")
	assert.Contains(t, out, "Indexed recording missing: /missing/a.wav")
}

func TestRunIsIdempotent(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(dayDir(home), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dayDir(home), "a.wav"), []byte("abc"), 0644))

	insp := New(home, clock.Fixed(testDay))
	first, err := insp.Run()
	require.NoError(t, err)
	second, err := insp.Run()
	require.NoError(t, err)

	assert.Equal(t, Plain(first), Plain(second))
	assert.Equal(t, Digest(first), Digest(second))

	require.NoError(t, os.WriteFile(filepath.Join(dayDir(home), "b.wav"), []byte("d"), 0644))
	third, err := insp.Run()
	require.NoError(t, err)
	assert.NotEqual(t, Digest(first), Digest(third))
}

func TestRunDateBoundary(t *testing.T) {
	home := t.TempDir()

	before := time.Date(2024, time.March, 5, 23, 59, 59, 999999999, time.Local)
	after := before.Add(time.Nanosecond)

	r1, err := New(home, clock.Fixed(before)).Run()
	require.NoError(t, err)
	r2, err := New(home, clock.Fixed(after)).Run()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".clipstty", "sessions", "2024", "03", "05"), r1.ExpectedDir)
	assert.Equal(t, filepath.Join(home, ".clipstty", "sessions", "2024", "03", "06"), r2.ExpectedDir)
}

func TestPaths(t *testing.T) {
	home := "/home/u"
	got := New(home, clock.Fixed(testDay)).Paths()

	assert.Equal(t, []string{
		filepath.Join(home, ".clipstty"),
		filepath.Join(home, ".clipstty", "sessions"),
		filepath.Join(home, ".clipstty", "sessions", "2024"),
		filepath.Join(home, ".clipstty", "sessions", "2024", "03"),
		filepath.Join(home, ".clipstty", "sessions", "2024", "03", "05"),
	}, got)
}

func TestCheckPrints(t *testing.T) {
	home := t.TempDir()

	var r *Report
	out := ui.Plain(func() {
		var err error
		r, err = New(home, clock.Fixed(testDay)).Check()
		require.NoError(t, err)
	})

	require.NotNil(t, r)
	assert.Contains(t, out, ui.Title)
	assert.Contains(t, out, "Expected directory: "+dayDir(home))
}

func TestNewDefaultsToSystemClock(t *testing.T) {
	insp := New("/home/u", nil)
	assert.IsType(t, clock.System{}, insp.clock)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{"missing", Report{}, "expected directory does not exist yet"},
		{"empty", Report{ExpectedDirExists: true}, "expected directory is empty"},
		{"files", Report{ExpectedDirExists: true, Files: []FileEntry{{Size: 3}, {Size: 4}}}, "2 files, 7 bytes"},
		{"one file", Report{ExpectedDirExists: true, Files: []FileEntry{{Size: 1}}}, "1 file, 1 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(&tt.report))
		})
	}
}

func TestRenderHintOnlyWithoutFiles(t *testing.T) {
	home := t.TempDir()
	insp := New(home, clock.Fixed(testDay))

	r, err := insp.Run()
	require.NoError(t, err)
	assert.Contains(t, Plain(r), "Say 'start recording test session'")

	require.NoError(t, os.MkdirAll(dayDir(home), 0755))
	r, err = insp.Run()
	require.NoError(t, err)
	assert.Contains(t, Plain(r), "Say 'stop recording'")

	require.NoError(t, os.WriteFile(filepath.Join(dayDir(home), "a.wav"), []byte("x"), 0644))
	r, err = insp.Run()
	require.NoError(t, err)
	assert.NotContains(t, Plain(r), "start recording")
}
