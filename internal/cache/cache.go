package cache

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"island-gen/internal/config"
	"island-gen/internal/meshing"
	"island-gen/internal/noise"
	"island-gen/internal/terrain"
	"island-gen/internal/world"

	"github.com/syndtr/goleveldb/leveldb"
)

// ErrMiss is returned by Load when no island is stored under a key.
var ErrMiss = errors.New("island not cached")

// ErrCorrupt is returned by Load when stored buffers fail the digest check.
var ErrCorrupt = errors.New("cached island is corrupt")

// Store keeps generated islands in a LevelDB database. Each island spans
// three records: <key>-metadata, <key>-vertices and <key>-indices. The
// buffers are gzip-compressed little-endian arrays.
type Store struct {
	db *leveldb.DB
}

// maxNodes bounds the grid size read back from metadata.
const maxNodes = 1 << 15

// metadata is the JSON record describing a cached island.
type metadata struct {
	TerrainVertexCount int                     `json:"terrainVertexCount"`
	TerrainIndexCount  int                     `json:"terrainIndexCount"`
	VertexCount        int                     `json:"vertexCount"`
	IndexCount         int                     `json:"indexCount"`
	Nodes              int                     `json:"nodes"`
	MinHeight          float64                 `json:"minHeight"`
	MaxHeight          float64                 `json:"maxHeight"`
	Water              terrain.WaterParameters `json:"water"`
	Hints              world.ShadingHints      `json:"hints"`
	Digest             string                  `json:"digest"`
}

// checkCounts reports whether the counts describe a terrain block of
// Nodes x Nodes vertices followed by a water block of the same shape.
func (m metadata) checkCounts() error {
	n := m.Nodes
	if n < 2 || n > maxNodes {
		return fmt.Errorf("%w: %d nodes per axis", ErrCorrupt, n)
	}
	if m.TerrainVertexCount != n*n || m.VertexCount != 2*m.TerrainVertexCount {
		return fmt.Errorf("%w: vertex counts %d/%d for %d nodes", ErrCorrupt, m.TerrainVertexCount, m.VertexCount, n)
	}
	if m.TerrainIndexCount != 6*(n-1)*(n-1) || m.IndexCount != 2*m.TerrainIndexCount {
		return fmt.Errorf("%w: index counts %d/%d for %d nodes", ErrCorrupt, m.TerrainIndexCount, m.IndexCount, n)
	}
	return nil
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open island cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key identifies the island s generates. The worker count does not affect
// the output and is left out.
func Key(s config.WorldGenSettings) string {
	sampler := s.Sampler
	if sampler == "" {
		sampler = noise.SamplerPerlin
	}
	canon := fmt.Sprintf("seed=%d width=%d step=%d freq=%v amp=%v oct=%d pers=%v lac=%v sampler=%s",
		s.Seed, s.Width, s.Step, s.Frequency, s.Amplitude, s.Octaves, s.Persistence, s.Lacunarity, sampler)
	sum := sha256.Sum256([]byte(canon))
	return "island-" + hex.EncodeToString(sum[:12])
}

// Save stores is under key, replacing any previous entry.
func (s *Store) Save(key string, is *world.Island) error {
	if is == nil {
		return fmt.Errorf("island cannot be nil")
	}

	vertexData, err := compress(is.Vertices)
	if err != nil {
		return fmt.Errorf("failed to compress vertices: %w", err)
	}
	indexData, err := compress(is.Indices)
	if err != nil {
		return fmt.Errorf("failed to compress indices: %w", err)
	}

	digest := is.Digest()
	meta := metadata{
		TerrainVertexCount: is.TerrainVertexCount,
		TerrainIndexCount:  is.TerrainIndexCount,
		VertexCount:        is.VertexCount(),
		IndexCount:         len(is.Indices),
		Nodes:              is.Nodes,
		MinHeight:          is.MinHeight,
		MaxHeight:          is.MaxHeight,
		Water:              is.Water,
		Hints:              is.Hints,
		Digest:             hex.EncodeToString(digest[:]),
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal island metadata: %w", err)
	}

	batch := new(leveldb.Batch)
	batch.Put([]byte(key+"-vertices"), vertexData)
	batch.Put([]byte(key+"-indices"), indexData)
	batch.Put([]byte(key+"-metadata"), metaData)
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to save island: %w", err)
	}
	return nil
}

// Load returns the island stored under key, or ErrMiss.
func (s *Store) Load(key string) (*world.Island, error) {
	metaData, err := s.db.Get([]byte(key+"-metadata"), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load island metadata: %w", err)
	}

	var meta metadata
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", ErrCorrupt, err)
	}
	if err := meta.checkCounts(); err != nil {
		return nil, err
	}

	vertices := make([]float32, meta.VertexCount*meshing.Stride)
	if err := s.loadBuffer(key+"-vertices", vertices); err != nil {
		return nil, err
	}
	indices := make([]uint32, meta.IndexCount)
	if err := s.loadBuffer(key+"-indices", indices); err != nil {
		return nil, err
	}

	is := &world.Island{
		Vertices:           vertices,
		Indices:            indices,
		TerrainVertexCount: meta.TerrainVertexCount,
		TerrainIndexCount:  meta.TerrainIndexCount,
		Nodes:              meta.Nodes,
		MinHeight:          meta.MinHeight,
		MaxHeight:          meta.MaxHeight,
		Water:              meta.Water,
		Hints:              meta.Hints,
	}
	digest := is.Digest()
	if hex.EncodeToString(digest[:]) != meta.Digest {
		return nil, fmt.Errorf("%w: digest mismatch for %s", ErrCorrupt, key)
	}
	return is, nil
}

// Delete removes the island stored under key, if any.
func (s *Store) Delete(key string) error {
	batch := new(leveldb.Batch)
	for _, suffix := range []string{"-metadata", "-vertices", "-indices"} {
		batch.Delete([]byte(key + suffix))
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to delete island: %w", err)
	}
	return nil
}

func (s *Store) loadBuffer(key string, out any) error {
	data, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return fmt.Errorf("%w: %s missing", ErrCorrupt, key)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	defer gz.Close()
	if err := binary.Read(gz, binary.LittleEndian, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	// Draining to EOF verifies the gzip checksum. Trailing bytes mean the
	// counts in the metadata are wrong.
	n, err := io.Copy(io.Discard, gz)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	if n != 0 {
		return fmt.Errorf("%w: %s has %d trailing bytes", ErrCorrupt, key, n)
	}
	return nil
}

func compress(data any) ([]byte, error) {
	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)
	if err := binary.Write(gzWriter, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	if err := gzWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
