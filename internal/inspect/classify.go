package inspect

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is a coarse guess at what a session file holds, from its extension.
type Kind string

const (
	KindAudio      Kind = "audio"
	KindTranscript Kind = "transcript"
	KindMetadata   Kind = "metadata"
	KindDirectory  Kind = "directory"
	KindOther      Kind = "other"
)

// TimestampLayout is the recorder's timestamp file naming, e.g. 20240510_142233.wav.
const TimestampLayout = "20060102_150405"

var kindByExt = map[string]Kind{
	".wav":  KindAudio,
	".flac": KindAudio,
	".mp3":  KindAudio,
	".ogg":  KindAudio,
	".opus": KindAudio,
	".txt":  KindTranscript,
	".srt":  KindTranscript,
	".vtt":  KindTranscript,
	".md":   KindTranscript,
	".json": KindMetadata,
}

// classify fills in Kind, SessionID and RecordedAt from the file name.
func classify(f *FileEntry, loc *time.Location) {
	if f.IsDir {
		f.Kind = KindDirectory
		return
	}

	ext := filepath.Ext(f.Name)
	stem := strings.TrimSuffix(f.Name, ext)

	f.Kind = KindOther
	if kind, ok := kindByExt[strings.ToLower(ext)]; ok {
		f.Kind = kind
	}

	// Session-id naming only uses the canonical 36 character form.
	if len(stem) == 36 {
		if id, err := uuid.Parse(stem); err == nil {
			f.SessionID = id.String()
			return
		}
	}

	// The recorder formats start times in UTC.
	if t, err := time.ParseInLocation(TimestampLayout, stem, time.UTC); err == nil {
		f.RecordedAt = t.In(loc)
	}
}
