package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/timepp/uu/internal/config"
	"github.com/timepp/uu/internal/fileutil"
	"github.com/timepp/uu/internal/options"
	"github.com/timepp/uu/value"
)

// cfg is the active configuration; Run replaces it with the loaded one.
var cfg = config.Default()

type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON\\, YAML or msgpack file (optionally gzip or zstd compressed)"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
	Format  string `json:"format,omitempty"  jsonschema:"Input format: auto (default)\\, json\\, yaml or msgpack"`
}

var (
	docCacheMu sync.Mutex
	docCache   *ristretto.Cache[string, any]
)

// resetCache replaces the document cache with an empty one sized from cfg.
func resetCache() error {
	docCacheMu.Lock()
	defer docCacheMu.Unlock()
	if docCache != nil {
		docCache.Close()
		docCache = nil
	}
	if !cfg.CacheEnabled {
		return nil
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: 1e4,
		MaxCost:     cfg.CacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return fmt.Errorf("mcpserver: creating document cache: %w", err)
	}
	docCache = c
	return nil
}

func closeCache() {
	docCacheMu.Lock()
	defer docCacheMu.Unlock()
	if docCache != nil {
		docCache.Close()
		docCache = nil
	}
}

func cacheGet(key string) (any, bool) {
	docCacheMu.Lock()
	c := docCache
	docCacheMu.Unlock()
	if c == nil || key == "" {
		return nil, false
	}
	return c.Get(key)
}

// cachePut stores v and waits for the write buffer to drain so the entry is
// visible to the next call.
func cachePut(key string, v any, cost int64) {
	docCacheMu.Lock()
	c := docCache
	docCacheMu.Unlock()
	if c == nil || key == "" {
		return
	}
	if c.Set(key, v, max(cost, 1)) {
		c.Wait()
	}
}

// makeCacheKey builds a cache key. File entries include the modification time
// and size so an edited file is decoded again; inline content is keyed by its
// digest.
func makeCacheKey(d docInput, format value.Format) string {
	if d.File != "" {
		if d.File == fileutil.StdinPath {
			return ""
		}
		abs, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%d:%s", abs, info.ModTime().UnixNano(), info.Size(), format)
	}
	sum := sha256.Sum256([]byte(d.Content))
	return "content:" + hex.EncodeToString(sum[:]) + ":" + string(format)
}

// resolve decodes the document, consulting the cache first.
func (d docInput) resolve() (any, error) {
	if err := options.ExactlyOne(
		options.Source{Name: "file", Set: d.File != ""},
		options.Source{Name: "content", Set: d.Content != ""},
	); err != nil {
		return nil, err
	}
	if d.File == fileutil.StdinPath {
		return nil, fmt.Errorf("stdin is reserved for the MCP transport; pass a file path or inline content")
	}
	format, err := value.ParseFormat(d.Format)
	if err != nil {
		return nil, err
	}
	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInputSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set UU_MAX_INPUT_SIZE to increase",
			len(d.Content), cfg.MaxInputSize)
	}

	key := makeCacheKey(d, format)
	if v, ok := cacheGet(key); ok {
		return v, nil
	}

	var in *fileutil.Input
	if d.File != "" {
		in, err = fileutil.Read(d.File, cfg.MaxInputSize)
	} else {
		in, err = fileutil.ReadFrom(strings.NewReader(d.Content), "<content>", cfg.MaxInputSize)
	}
	if err != nil {
		return nil, err
	}
	v, err := in.Decode(format,
		value.WithMaxDepth(cfg.DecodeMaxDepth),
		value.WithMaxNodes(cfg.DecodeMaxNodes))
	if err != nil {
		return nil, err
	}

	cachePut(key, v, int64(len(in.Data)))
	return v, nil
}
