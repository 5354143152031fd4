package assets

import "testing"

func TestURL(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"https://cdn.tailbound.xyz", "assets/audio/gui/button-click.mp3", "https://cdn.tailbound.xyz/assets/audio/gui/button-click.mp3"},
		{"https://cdn.tailbound.xyz/", "/assets/a.mp3", "https://cdn.tailbound.xyz/assets/a.mp3"},
		{"http://127.0.0.1:8080/prefix", "dir/with space.wav", "http://127.0.0.1:8080/prefix/dir/with%20space.wav"},
	}
	for _, tc := range tests {
		if got := URL(tc.base, tc.rel); got != tc.want {
			t.Fatalf("URL(%q, %q) = %q, want %q", tc.base, tc.rel, got, tc.want)
		}
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a/b.mp3":      FormatMP3,
		"a/b.MP3":      FormatMP3,
		"a/b.wav":      FormatWAV,
		"a/b.ogg":      FormatUnsupported,
		"a/noext":      FormatUnsupported,
		"a/b.mp3.part": FormatUnsupported,
	}
	for rel, want := range tests {
		if got := FormatOf(rel); got != want {
			t.Fatalf("FormatOf(%q) = %q, want %q", rel, got, want)
		}
		if IsSupported(rel) != (want != FormatUnsupported) {
			t.Fatalf("IsSupported(%q) mismatch", rel)
		}
	}
	if Extension("a/noext") != "(none)" {
		t.Fatalf("unexpected extension for bare name: %q", Extension("a/noext"))
	}
	if Extension("x/Y.OGG") != ".ogg" {
		t.Fatalf("unexpected extension: %q", Extension("x/Y.OGG"))
	}
}

func TestCategory(t *testing.T) {
	tests := map[string]string{
		"assets/audio/background/bgm-lobby-01.mp3": "background",
		"assets/audio/boss/white-tiger/attack.mp3": "boss",
		"audio/bgm/main.mp3":                       "bgm",
		"sfx/hit.wav":                              "sfx",
		"loose.mp3":                                "misc",
	}
	for rel, want := range tests {
		if got := Category(rel); got != want {
			t.Fatalf("Category(%q) = %q, want %q", rel, got, want)
		}
	}
}

func TestFromPathsKeepsOrder(t *testing.T) {
	got := FromPaths([]string{"assets/audio/gui/a.mp3", "assets/audio/enemy/b.mp3"})
	if len(got) != 2 || got[0].Path != "assets/audio/gui/a.mp3" || got[1].Category != "enemy" {
		t.Fatalf("unexpected assets: %+v", got)
	}
}
