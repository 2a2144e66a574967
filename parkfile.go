// Package parkfile reads and writes the versioned park save container:
// a small header followed by typed chunks holding the object list, tile
// map, rides, entities and the rest of the park state. Reading accepts
// every format revision since the first; writing always emits the
// current revision.
//
// A load happens in two phases, matching how a frontend consumes the
// file: Load returns the object list the save depends on so the caller
// can resolve content first, then Import decodes the world state.
package parkfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mzki/parkfile/chunk"
	"github.com/mzki/parkfile/objects"
	"github.com/mzki/parkfile/util/log"
	"github.com/mzki/parkfile/world"
)

// Magic identifies the container ("PARK" little-endian).
const Magic uint32 = 0x4B524150

// Versions of the container format.
const (
	// CurrentVersion is the revision written by Save.
	CurrentVersion uint32 = 0x6

	// MinVersion is the oldest revision forward compatible with the
	// current one, stamped into the header so older engines can tell
	// whether they may read a newer file.
	MinVersion uint32 = 0x6

	// MinSupportedVersion is the oldest revision Load accepts.
	MinSupportedVersion uint32 = 0x0
)

// Chunk type identifiers.
const (
	chunkAuthoring         uint32 = 0x01
	chunkObjects           uint32 = 0x02
	chunkScenario          uint32 = 0x03
	chunkGeneral           uint32 = 0x04
	chunkClimate           uint32 = 0x05
	chunkPark              uint32 = 0x06
	chunkResearch          uint32 = 0x08
	chunkNotifications     uint32 = 0x09
	chunkInterface         uint32 = 0x20
	chunkTiles             uint32 = 0x30
	chunkEntities          uint32 = 0x31
	chunkRides             uint32 = 0x32
	chunkBanners           uint32 = 0x33
	chunkCheats            uint32 = 0x36
	chunkRestrictedObjects uint32 = 0x37
	chunkPackedObjects     uint32 = 0x80
)

var (
	// ErrUnsupportedVersion indicates the file requires a newer engine.
	ErrUnsupportedVersion = errors.New("parkfile: unsupported format version")

	// ErrMissingChunk indicates a chunk the format requires was absent.
	ErrMissingChunk = errors.New("parkfile: required chunk missing")

	// ErrNotLoaded indicates Import was called before a successful Load.
	ErrNotLoaded = errors.New("parkfile: no file loaded")
)

// Engine decodes and encodes park save files. One engine handles one
// file at a time; it is not safe for concurrent use.
type Engine struct {
	opts    Options
	catalog ObjectCatalog

	rs  io.ReadSeeker
	hdr chunk.Header

	// Required is the object list of the loaded file, populated by Load.
	Required objects.List

	// ExportObjects are packed into the file on Save.
	ExportObjects []PackedObject

	// OmitTracklessRides drops rides without track from the output,
	// matching how autosaves exclude half-built rides.
	OmitTracklessRides bool

	pathToSurfaceMap      [objects.MaxPathObjects]objects.EntryIndex
	pathToQueueSurfaceMap [objects.MaxPathObjects]objects.EntryIndex
	pathToRailingsMap     [objects.MaxPathObjects]objects.EntryIndex
}

// New returns an engine using the given options and object catalog.
// A nil catalog disables footpath migration and packed object import.
func New(opts Options, catalog ObjectCatalog) *Engine {
	return &Engine{opts: opts, catalog: catalog, OmitTracklessRides: opts.OmitTracklessRides}
}

// Header returns the container header of the loaded file.
func (e *Engine) Header() chunk.Header { return e.hdr }

// Load validates the header and decodes the object dependency list and
// any packed objects, keeping rs for a later Import. The returned list
// is also retained as e.Required.
func (e *Engine) Load(rs io.ReadSeeker) (*objects.List, error) {
	hdr, err := chunk.ReadHeader(rs)
	if err != nil {
		return nil, err
	}
	if hdr.Magic != Magic {
		return nil, chunk.ErrBadMagic
	}
	if hdr.MinVersion > CurrentVersion {
		return nil, fmt.Errorf("%w: file requires version %#x, engine supports %#x",
			ErrUnsupportedVersion, hdr.MinVersion, CurrentVersion)
	}
	if hdr.TargetVersion < MinSupportedVersion {
		return nil, fmt.Errorf("%w: file version %#x predates %#x",
			ErrUnsupportedVersion, hdr.TargetVersion, MinSupportedVersion)
	}
	log.Debugf("parkfile: loading version %#x (min %#x)", hdr.TargetVersion, hdr.MinVersion)

	e.rs = rs
	e.hdr = hdr
	e.Required = objects.List{}
	for i := range e.pathToSurfaceMap {
		e.pathToSurfaceMap[i] = objects.EntryIndexNull
		e.pathToQueueSurfaceMap[i] = objects.EntryIndexNull
		e.pathToRailingsMap[i] = objects.EntryIndexNull
	}

	if err := e.readObjectsChunk(); err != nil {
		return nil, err
	}
	if err := e.readPackedObjectsChunk(); err != nil {
		return nil, err
	}
	return &e.Required, nil
}

// LoadFile opens path and calls Load. The file stays open for Import;
// Close releases it.
func (e *Engine) LoadFile(path string) (*objects.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	list, err := e.Load(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return list, nil
}

// Close releases the file handle a LoadFile left open. Engines loaded
// from a caller-owned stream are unaffected.
func (e *Engine) Close() error {
	if c, ok := e.rs.(io.Closer); ok {
		e.rs = nil
		return c.Close()
	}
	e.rs = nil
	return nil
}

// Import decodes the world state of the loaded file into st, applying
// the migrations the file's revision calls for.
func (e *Engine) Import(st *world.State) error {
	if e.rs == nil {
		return ErrNotLoaded
	}
	if err := e.readTilesChunk(st); err != nil {
		return err
	}
	if err := e.readBannersChunk(st); err != nil {
		return err
	}
	if err := e.readRidesChunk(st); err != nil {
		return err
	}
	if err := e.readEntitiesChunk(st); err != nil {
		return err
	}
	if err := e.readScenarioChunk(st); err != nil {
		return err
	}
	if err := e.readGeneralChunk(st); err != nil {
		return err
	}
	if err := e.readParkChunk(st); err != nil {
		return err
	}
	if err := e.readClimateChunk(st); err != nil {
		return err
	}
	if err := e.readResearchChunk(st); err != nil {
		return err
	}
	if err := e.readNotificationsChunk(st); err != nil {
		return err
	}
	if err := e.readInterfaceChunk(st); err != nil {
		return err
	}
	if err := e.readCheatsChunk(st); err != nil {
		return err
	}
	if err := e.readRestrictedObjectsChunk(st); err != nil {
		return err
	}
	applyImportFixups(e.hdr.TargetVersion, st)
	return nil
}

// Save writes the complete state as a current-revision file.
func (e *Engine) Save(ws io.WriteSeeker, st *world.State) error {
	hdr := chunk.Header{
		Magic:         Magic,
		TargetVersion: CurrentVersion,
		MinVersion:    MinVersion,
	}
	if err := chunk.WriteHeader(ws, hdr); err != nil {
		return err
	}

	if err := e.writeAuthoringChunk(ws); err != nil {
		return err
	}
	if err := e.writeObjectsChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeTilesChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeBannersChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeRidesChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeEntitiesChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeScenarioChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeGeneralChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeParkChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeClimateChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeResearchChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeNotificationsChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeInterfaceChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeCheatsChunk(ws, st); err != nil {
		return err
	}
	if err := e.writeRestrictedObjectsChunk(ws, st); err != nil {
		return err
	}
	return e.writePackedObjectsChunk(ws)
}

// SaveFile writes the state to a new file at path.
func (e *Engine) SaveFile(path string, st *world.State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.Save(f, st); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
