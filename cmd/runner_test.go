package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thornlake/spotline/catalog"
	"github.com/thornlake/spotline/internal/shared"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"name": "Kind of Blue"}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		got := output.String()
		if got != "{\"name\":\"Kind of Blue\"}\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("writeJSON pretty", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"name": "Kind of Blue"}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		if !strings.Contains(output.String(), "  \"name\"") {
			t.Errorf("expected indented output, got %q", output.String())
		}
	})

	t.Run("writePlain formats", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("found %d", 3); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if output.String() != "found 3" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})
}

func TestItemResolution(t *testing.T) {
	t.Run("search items", func(t *testing.T) {
		cases := []struct {
			name string
			want catalog.Kind
		}{
			{"track", catalog.KindTrack},
			{"Tracks", catalog.KindTrack},
			{"album", catalog.KindAlbum},
			{"artist", catalog.KindArtist},
			{"playlists", catalog.KindPlaylist},
		}

		for _, tc := range cases {
			item, err := searchItemFor(tc.name)
			if err != nil {
				t.Errorf("searchItemFor(%q) failed: %v", tc.name, err)
				continue
			}
			if item.Kind() != tc.want {
				t.Errorf("searchItemFor(%q) = %v, want %v", tc.name, item.Kind(), tc.want)
			}
		}

		if _, err := searchItemFor("podcast"); err == nil {
			t.Error("expected error for unknown item type")
		}
	})

	t.Run("library items exclude artists", func(t *testing.T) {
		if _, err := libraryItemFor("artist"); err == nil {
			t.Error("expected error: artists have no library collection")
		}

		item, err := libraryItemFor("album")
		if err != nil {
			t.Fatalf("libraryItemFor(album) failed: %v", err)
		}
		if item.Kind() != catalog.KindAlbum {
			t.Errorf("unexpected kind %v", item.Kind())
		}
	})
}
