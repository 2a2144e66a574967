package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/DataDog/zstd"
	"github.com/golang/groupcache/lru"
	"github.com/ugorji/go/codec"

	parkfile "github.com/mzki/parkfile"
	"github.com/mzki/parkfile/util/log"
)

const (
	scenarioFileExt      = ".park"
	defaultIndexFileName = "scenario.idx"
	defaultCacheSize     = 64
)

// Config locates the scenario directory and the index cache.
type Config struct {
	// Dir is the directory scanned for scenario files.
	Dir string `toml:"dir"`

	// IndexFile is the index cache path; empty means a default file
	// inside Dir.
	IndexFile string `toml:"index_file"`

	// CacheSize bounds the in-memory summary cache. Zero or negative
	// falls back to the default.
	CacheSize int `toml:"cache_size"`
}

func (c Config) indexPath() string {
	if c.IndexFile != "" {
		return c.IndexFile
	}
	return filepath.Join(c.Dir, defaultIndexFileName)
}

// indexEntry is one cached summary with the file identity it was read
// from. A changed mtime or size invalidates the entry.
type indexEntry struct {
	ModTime int64
	Size    int64
	Summary parkfile.ScenarioSummary
}

// ScenarioRepository lists the scenarios of a directory without
// importing them. Summaries come from a three-level lookup: an
// in-memory LRU, a compressed index file carried between runs, and
// finally the scenario file itself.
type ScenarioRepository struct {
	config Config
	opts   parkfile.Options

	mu    sync.Mutex
	cache *lru.Cache
	index map[string]indexEntry
	dirty bool
}

// NewScenarioRepository returns a repository over config.Dir. A stale
// or unreadable index cache is discarded silently; it is rebuilt on the
// next List.
func NewScenarioRepository(opts parkfile.Options, config Config) *ScenarioRepository {
	cacheSize := config.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	repo := &ScenarioRepository{
		config: config,
		opts:   opts,
		cache:  lru.New(cacheSize),
		index:  make(map[string]indexEntry),
	}
	if err := repo.loadIndex(); err != nil {
		log.Debugf("repo: discarding index cache: %v", err)
		repo.index = make(map[string]indexEntry)
	}
	return repo
}

// List scans the directory and returns the summaries of every scenario
// file, sorted by name. Files that fail to parse are skipped with a
// debug note so one broken download does not hide the rest.
func (repo *ScenarioRepository) List(ctx context.Context) ([]parkfile.ScenarioSummary, error) {
	entries, err := os.ReadDir(repo.config.Dir)
	if err != nil {
		return nil, fmt.Errorf("repo: scan %s: %w", repo.config.Dir, err)
	}

	var out []parkfile.ScenarioSummary
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), scenarioFileExt) {
			continue
		}
		path := filepath.Join(repo.config.Dir, entry.Name())
		sum, err := repo.Summary(path)
		if err != nil {
			log.Debugf("repo: skipping %s: %v", path, err)
			continue
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	if err := repo.saveIndex(); err != nil {
		log.Debugf("repo: failed to persist index cache: %v", err)
	}
	return out, nil
}

// Summary returns the summary of one scenario file, reading it only
// when neither cache level has a current entry.
func (repo *ScenarioRepository) Summary(path string) (parkfile.ScenarioSummary, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return parkfile.ScenarioSummary{}, err
	}
	key := repo.cacheKey(path, fi)

	repo.mu.Lock()
	if entry, ok := repo.cache.Get(key); ok {
		repo.mu.Unlock()
		return entry.(parkfile.ScenarioSummary), nil
	}
	if entry, ok := repo.index[path]; ok &&
		entry.ModTime == fi.ModTime().UnixNano() && entry.Size == fi.Size() {
		repo.cache.Add(key, entry.Summary)
		repo.mu.Unlock()
		return entry.Summary, nil
	}
	repo.mu.Unlock()

	sum, err := repo.readSummary(path)
	if err != nil {
		return parkfile.ScenarioSummary{}, err
	}

	repo.mu.Lock()
	repo.cache.Add(key, sum)
	repo.index[path] = indexEntry{
		ModTime: fi.ModTime().UnixNano(),
		Size:    fi.Size(),
		Summary: sum,
	}
	repo.dirty = true
	repo.mu.Unlock()
	return sum, nil
}

// Invalidate drops the cached summary of one path. Used by the watcher
// when the file changes or disappears.
func (repo *ScenarioRepository) Invalidate(path string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.index[path]; ok {
		delete(repo.index, path)
		repo.dirty = true
	}
	// The LRU key embeds mtime and size, so a rewritten file never hits
	// the stale entry; removal is only needed for the exact identity.
}

func (repo *ScenarioRepository) readSummary(path string) (parkfile.ScenarioSummary, error) {
	engine := parkfile.New(repo.opts, nil)
	if _, err := engine.LoadFile(path); err != nil {
		return parkfile.ScenarioSummary{}, err
	}
	defer engine.Close()
	return engine.ReadScenarioSummary()
}

func (repo *ScenarioRepository) cacheKey(path string, fi os.FileInfo) lru.Key {
	return lru.Key(fmt.Sprintf("%s-%d-%d", path, fi.ModTime().UnixNano(), fi.Size()))
}

// loadIndex reads the persisted index cache.
func (repo *ScenarioRepository) loadIndex() error {
	compressed, err := os.ReadFile(repo.config.indexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	raw, err := zstd.Decompress(nil, compressed)
	if err != nil {
		return err
	}
	index := make(map[string]indexEntry)
	if err := deserialize(raw, &index); err != nil {
		return err
	}
	repo.mu.Lock()
	repo.index = index
	repo.mu.Unlock()
	return nil
}

// saveIndex persists the index cache when it changed since the last
// save.
func (repo *ScenarioRepository) saveIndex() error {
	repo.mu.Lock()
	if !repo.dirty {
		repo.mu.Unlock()
		return nil
	}
	raw, err := serialize(repo.index)
	repo.mu.Unlock()
	if err != nil {
		return err
	}
	compressed, err := zstd.Compress(nil, raw)
	if err != nil {
		return err
	}
	if err := os.WriteFile(repo.config.indexPath(), compressed, 0o644); err != nil {
		return err
	}
	repo.mu.Lock()
	repo.dirty = false
	repo.mu.Unlock()
	return nil
}

var codecHandler = &codec.MsgpackHandle{}

func serialize(data interface{}) ([]byte, error) {
	var b []byte
	enc := codec.NewEncoderBytes(&b, codecHandler)
	err := enc.Encode(data)
	return b, err
}

func deserialize(b []byte, data interface{}) error {
	dec := codec.NewDecoderBytes(b, codecHandler)
	return dec.Decode(data)
}
