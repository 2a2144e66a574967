package objects

// FootpathMapping describes how one legacy single-object footpath splits
// into the three objects that replaced it.
type FootpathMapping struct {
	Original      string
	NormalSurface string
	QueueSurface  string
	Railings      string
}

// SurfaceResolver resolves a legacy binary path entry to its split
// mapping. The byte-format lookup data lives with the object catalog,
// not in this package; a nil resolver simply never matches.
type SurfaceResolver interface {
	FootpathSurface(desc Descriptor) *FootpathMapping
}

// extendedFootpathMappings overrides the byte-format lookup for exact
// identifiers that never had a DAT-era equivalent.
var extendedFootpathMappings = []FootpathMapping{
	{"rct1.path.tarmac", "rct1.footpath_surface.tarmac", "rct1.footpath_surface.queue_blue", "rct2.footpath_railings.wood"},
}

// datPathNames translates early namespaced path identifiers back to the
// space-padded DAT names the surface resolver is keyed by. Early format
// revisions used namespaced ids for paths that were still legacy objects.
var datPathNames = map[string]string{
	"rct2.pathash":  "PATHASH ",
	"rct2.pathcrzy": "PATHCRZY",
	"rct2.pathdirt": "PATHDIRT",
	"rct2.pathspce": "PATHSPCE",
	"rct2.road":     "ROAD    ",
	"rct2.tarmacb":  "TARMACB ",
	"rct2.tarmacg":  "TARMACG ",
	"rct2.tarmac":   "TARMAC  ",
	"rct2.1920path": "1920PATH",
	"rct2.futrpath": "FUTRPATH",
	"rct2.futrpat2": "FUTRPAT2",
	"rct2.jurrpath": "JURRPATH",
	"rct2.medipath": "MEDIPATH",
	"rct2.mythpath": "MYTHPATH",
	"rct2.ranbpath": "RANBPATH",
}

// DATPathName returns the DAT name for an early namespaced path
// identifier, or "" when the identifier is not a legacy path.
func DATPathName(identifier string) string {
	return datPathNames[identifier]
}

// ResolveFootpathMapping returns the split mapping for a legacy footpath
// descriptor, or nil when the object is not a split-eligible legacy
// footpath. Pure; deduplication is the caller's concern.
func ResolveFootpathMapping(d Descriptor, res SurfaceResolver) *FootpathMapping {
	for i := range extendedFootpathMappings {
		if extendedFootpathMappings[i].Original == d.Name() {
			return &extendedFootpathMappings[i]
		}
	}

	if d.Generation == GenerationJSON {
		// The surface resolver is keyed by old-style DAT names. Early
		// revisions wrote namespaced ids for legacy paths, so translate
		// those first; anything else is not a legacy path.
		datName := DATPathName(d.Identifier)
		if datName == "" {
			return nil
		}
		var e LegacyEntry
		e.Flags = uint32(TypePaths)
		copy(e.Name[:], datName)
		d = FromLegacyEntry(e)
	}

	if res == nil {
		return nil
	}
	return res.FootpathSurface(d)
}
