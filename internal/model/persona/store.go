package persona

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Store exposes persona retrieval for HTTP handlers.
type Store interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Persona
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas.
func NewMemoryStore(items []Persona) *MemoryStore {
	return &MemoryStore{items: append([]Persona(nil), items...)}
}

// List returns the persona catalog in declaration order.
func (s *MemoryStore) List() []Persona {
	return append([]Persona(nil), s.items...)
}

// FindByID looks up a persona by its label.
func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Persona{}, false
}

type catalogFile struct {
	Personas []Persona `yaml:"personas"`
}

// LoadFile 从 YAML 文件读取人设目录。
func LoadFile(path string) ([]Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read persona catalog %s", path)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.Wrapf(err, "parse persona catalog %s", path)
	}

	seen := make(map[string]struct{}, len(catalog.Personas))
	for i, item := range catalog.Personas {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, errors.Errorf("persona catalog %s: entry %d has no id", path, i)
		}
		if _, dup := seen[id]; dup {
			return nil, errors.Errorf("persona catalog %s: duplicate id %q", path, id)
		}
		seen[id] = struct{}{}
		catalog.Personas[i].ID = id
	}
	return catalog.Personas, nil
}

// Load returns the catalog from path, or the seeded catalog when path is empty.
func Load(path string) ([]Persona, error) {
	if strings.TrimSpace(path) == "" {
		return Seed(), nil
	}
	return LoadFile(path)
}
