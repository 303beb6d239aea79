// Package catalog loads named custom descriptors from a YAML file.
//
// Example:
//
//	descriptors:
//	  maintenance:
//	    title: Scheduled Maintenance
//	    message: Back at <b>10:00</b>.
//	    category: info
//	    icon: clock
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/statusmodal/internal/status"
)

type entry struct {
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
	Category string `yaml:"category"`
	Icon     string `yaml:"icon"`
}

type file struct {
	Descriptors map[string]entry `yaml:"descriptors"`
}

// Catalog maps names to custom descriptors. The zero value is empty.
type Catalog struct {
	descriptors map[string]status.Descriptor
}

// Load reads and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates a catalog held in memory.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{descriptors: make(map[string]status.Descriptor, len(f.Descriptors))}
	for name, e := range f.Descriptors {
		d, err := e.descriptor()
		if err != nil {
			return nil, fmt.Errorf("descriptor %q: %w", name, err)
		}
		c.descriptors[name] = d
	}
	return c, nil
}

func (e entry) descriptor() (status.Descriptor, error) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return status.Descriptor{}, errors.New("title is required")
	}

	category := status.Info
	if e.Category != "" {
		c, ok := status.ParseCategory(e.Category)
		if !ok {
			return status.Descriptor{}, fmt.Errorf("unknown category %q", e.Category)
		}
		category = c
	}

	return status.Descriptor{
		Title:    title,
		Message:  strings.TrimSpace(e.Message),
		Category: category,
		Icon:     e.Icon,
	}, nil
}

// Lookup returns the descriptor stored under name.
func (c *Catalog) Lookup(name string) (status.Descriptor, bool) {
	if c == nil {
		return status.Descriptor{}, false
	}
	d, ok := c.descriptors[name]
	return d, ok
}

// Names returns the descriptor names in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.descriptors))
	for name := range c.descriptors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.descriptors)
}
