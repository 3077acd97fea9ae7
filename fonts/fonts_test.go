package fonts

import "testing"

func TestLoadMono(t *testing.T) {
	if err := LoadMono(12); err != nil {
		t.Fatal(err)
	}

	face := Mono.Get()
	a, okA := face.GlyphAdvance('i')
	w, okW := face.GlyphAdvance('W')
	if !okA || !okW {
		t.Fatal("expected glyphs for i and W")
	}
	if a != w {
		t.Fatalf("expected monospace advances; got %v and %v", a, w)
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
