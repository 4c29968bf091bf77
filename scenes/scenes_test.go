package scenes

import "testing"

func TestNamesMatchesRegisteredBuilders(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("expected at least one registered scene")
	}
	for _, name := range names {
		if _, ok := Get(name); !ok {
			t.Errorf("Names() lists %q but Get(%q) reports it missing", name, name)
		}
	}
}

func TestGetUnknownSceneReportsMissing(t *testing.T) {
	if _, ok := Get("does-not-exist"); ok {
		t.Fatal("expected an unknown scene name to report ok=false")
	}
}

func TestEveryBuilderProducesANonEmptyScene(t *testing.T) {
	for _, name := range Names() {
		builder, _ := Get(name)
		sc, cam := builder()
		if sc == nil {
			t.Errorf("scene %q: builder returned a nil scene", name)
			continue
		}
		if cam == nil {
			t.Errorf("scene %q: builder returned a nil camera", name)
			continue
		}
		if len(sc.Objects) == 0 {
			t.Errorf("scene %q: no objects", name)
		}
		if len(sc.Lights) == 0 {
			t.Errorf("scene %q: no lights", name)
		}
		if cam.Width <= 0 || cam.Height <= 0 {
			t.Errorf("scene %q: camera has non-positive dimensions %dx%d", name, cam.Width, cam.Height)
		}
	}
}
