package style

import (
	"testing"
	"time"

	"github.com/openpress/depositor/internal/article"
)

func TestJournalVolume(t *testing.T) {
	pub := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)

	if got := JournalVolume(pub, 2011); got != "9" {
		t.Errorf("JournalVolume(2020, 2011) = %q, want %q", got, "9")
	}
	if got := JournalVolume(pub, 0); got != "" {
		t.Errorf("JournalVolume with no first volume year should be empty, got %q", got)
	}
	if got := JournalVolume(pub, 2020); got != "" {
		t.Errorf("JournalVolume with non-positive result should be empty, got %q", got)
	}
}

func TestVersionLabel(t *testing.T) {
	if got := VersionLabel(&article.Article{Version: 2}); got != "v2" {
		t.Errorf("VersionLabel(version 2) = %q, want %q", got, "v2")
	}
	if got := VersionLabel(&article.Article{}); got != "" {
		t.Errorf("VersionLabel(unversioned) = %q, want empty", got)
	}
}

func TestComponentAttributes(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantID     string
		wantPrefix string
	}{
		{"figure", "Fig3", "fig3", "figures"},
		{"table", "table2", "table2", "figures"},
		{"video", "video1", "video1", "figures"},
		{"supplementary file", "SD1-data", "sd1-data", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, prefix := ComponentAttributes(&article.Component{ID: tt.id})
			if id != tt.wantID || prefix != tt.wantPrefix {
				t.Errorf("ComponentAttributes(%q) = (%q, %q), want (%q, %q)",
					tt.id, id, prefix, tt.wantID, tt.wantPrefix)
			}
		})
	}
}
