package objects

import (
	"testing"
)

type stubSurfaceResolver struct {
	byName map[string]*FootpathMapping
}

func (s *stubSurfaceResolver) FootpathSurface(d Descriptor) *FootpathMapping {
	return s.byName[d.Name()]
}

func newStubResolver() *stubSurfaceResolver {
	return &stubSurfaceResolver{byName: map[string]*FootpathMapping{
		"TARMAC": {
			Original:      "TARMAC",
			NormalSurface: "rct2.footpath_surface.tarmac",
			QueueSurface:  "rct2.footpath_surface.queue_blue",
			Railings:      "rct2.footpath_railings.concrete",
		},
	}}
}

func TestResolveFootpathMappingDAT(t *testing.T) {
	var e LegacyEntry
	e.Flags = uint32(TypePaths)
	e.SetName("TARMAC")

	m := ResolveFootpathMapping(FromLegacyEntry(e), newStubResolver())
	if m == nil {
		t.Fatal("expected a mapping for TARMAC")
	}
	if m.NormalSurface != "rct2.footpath_surface.tarmac" {
		t.Errorf("NormalSurface = %q", m.NormalSurface)
	}
}

func TestResolveFootpathMappingEarlyIdentifier(t *testing.T) {
	// Early revisions wrote namespaced ids for legacy path objects; those
	// translate back to DAT names before hitting the resolver.
	d := FromIdentifier(TypePaths, "rct2.tarmac", "")
	m := ResolveFootpathMapping(d, newStubResolver())
	if m == nil {
		t.Fatal("expected a mapping for rct2.tarmac")
	}
	if m.QueueSurface != "rct2.footpath_surface.queue_blue" {
		t.Errorf("QueueSurface = %q", m.QueueSurface)
	}
}

func TestResolveFootpathMappingExtended(t *testing.T) {
	// rct1.path.tarmac has no DAT-era equivalent; it resolves from the
	// extended table without touching the resolver.
	d := FromIdentifier(TypePaths, "rct1.path.tarmac", "")
	m := ResolveFootpathMapping(d, nil)
	if m == nil {
		t.Fatal("expected extended mapping")
	}
	if m.Railings != "rct2.footpath_railings.wood" {
		t.Errorf("Railings = %q", m.Railings)
	}
}

func TestResolveFootpathMappingNotAPath(t *testing.T) {
	d := FromIdentifier(TypeFootpathSurface, "rct2.footpath_surface.tarmac", "")
	if m := ResolveFootpathMapping(d, newStubResolver()); m != nil {
		t.Errorf("modern surface object should not resolve, got %+v", m)
	}
	var e LegacyEntry
	e.Flags = uint32(TypePaths)
	e.SetName("UNKNOWN")
	if m := ResolveFootpathMapping(FromLegacyEntry(e), newStubResolver()); m != nil {
		t.Errorf("unknown DAT path should not resolve, got %+v", m)
	}
}
