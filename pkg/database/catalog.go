package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bisegni/cursormock/pkg/cursor"
)

// Catalog manages a collection of named tables
type Catalog struct {
	tables map[string]*Table
	mu     sync.RWMutex
}

// NewCatalog creates a new empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		tables: make(map[string]*Table),
	}
}

// RegisterTable adds a table to the catalog under its name, replacing any
// table registered with the same name.
func (c *Catalog) RegisterTable(t *Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[t.Name] = t
}

// GetTable retrieves a table by name
func (c *Catalog) GetTable(name string) (*Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("table '%s' not found", name)
	}
	return t, nil
}

// Open returns a new cursor over the named table.
func (c *Catalog) Open(name string) (*cursor.Cursor, error) {
	t, err := c.GetTable(name)
	if err != nil {
		return nil, err
	}
	return t.Open(), nil
}

// Names returns the registered table names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
