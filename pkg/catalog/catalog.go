// Package catalog holds the two static lookup tables the rest of
// cdxlib is built around: which 16-bit tag opens which object element,
// and which 16-bit tag carries which named, typed attribute. The
// tables are data, not code - they are loaded once from embedded YAML,
// and the codec merely consumes them.
package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/cdx_objects.yaml data/cdx_properties.yaml
var dataFS embed.FS

// ValueKind names one of the value codec's closed set of kinds (e.g.
// "CDXCoordinate", "UINT16"). It is a plain string handle: catalog
// doesn't know how to decode a value of this kind, it only records
// which kind a given attribute tag carries. Package cdxvalue maps
// ValueKind names to concrete codecs.
type ValueKind string

// ObjectDescriptor names the element an object tag introduces.
type ObjectDescriptor struct {
	Tag         uint16 `yaml:"tag"`
	ElementName string `yaml:"element_name"`
}

// AttributeDescriptor names and types the value an attribute tag
// introduces.
type AttributeDescriptor struct {
	Tag  uint16    `yaml:"tag"`
	Name string    `yaml:"name"`
	Kind ValueKind `yaml:"kind"`
}

type objectsFile struct {
	Objects []ObjectDescriptor `yaml:"objects"`
}

type attributesFile struct {
	Attributes []AttributeDescriptor `yaml:"attributes"`
}

var (
	once sync.Once

	objectByTag  map[uint16]ObjectDescriptor
	objectByName map[string]ObjectDescriptor
	attrByTag    map[uint16]AttributeDescriptor
	attrByName   map[string]AttributeDescriptor
	loadErr      error
)

func load() {
	var of objectsFile
	raw, err := dataFS.ReadFile("data/cdx_objects.yaml")
	if err != nil {
		loadErr = fmt.Errorf("catalog: read cdx_objects.yaml: %w", err)
		return
	}
	if err := yaml.Unmarshal(raw, &of); err != nil {
		loadErr = fmt.Errorf("catalog: parse cdx_objects.yaml: %w", err)
		return
	}

	var af attributesFile
	raw, err = dataFS.ReadFile("data/cdx_properties.yaml")
	if err != nil {
		loadErr = fmt.Errorf("catalog: read cdx_properties.yaml: %w", err)
		return
	}
	if err := yaml.Unmarshal(raw, &af); err != nil {
		loadErr = fmt.Errorf("catalog: parse cdx_properties.yaml: %w", err)
		return
	}

	objectByTag = make(map[uint16]ObjectDescriptor, len(of.Objects))
	objectByName = make(map[string]ObjectDescriptor, len(of.Objects))
	for _, o := range of.Objects {
		objectByTag[o.Tag] = o
		objectByName[o.ElementName] = o
	}

	attrByTag = make(map[uint16]AttributeDescriptor, len(af.Attributes))
	attrByName = make(map[string]AttributeDescriptor, len(af.Attributes))
	for _, a := range af.Attributes {
		attrByTag[a.Tag] = a
		attrByName[a.Name] = a
	}
}

func ensureLoaded() {
	once.Do(load)
	if loadErr != nil {
		panic(loadErr)
	}
}

// ObjectByTag returns the descriptor for an object tag (bit 15 set).
func ObjectByTag(tag uint16) (ObjectDescriptor, bool) {
	ensureLoaded()
	d, ok := objectByTag[tag]
	return d, ok
}

// ObjectByName returns the descriptor for an element name, used by the
// writer to resolve an element back to its object tag.
func ObjectByName(name string) (ObjectDescriptor, bool) {
	ensureLoaded()
	d, ok := objectByName[name]
	return d, ok
}

// AttributeByTag returns the descriptor for an attribute tag (bit 15 clear).
func AttributeByTag(tag uint16) (AttributeDescriptor, bool) {
	ensureLoaded()
	d, ok := attrByTag[tag]
	return d, ok
}

// AttributeByName returns the descriptor for an attribute name, used by
// the writer to resolve an XML attribute back to its tag.
func AttributeByName(name string) (AttributeDescriptor, bool) {
	ensureLoaded()
	d, ok := attrByName[name]
	return d, ok
}

// IsObjectTag reports whether bit 15 is set - the tag-space invariant
// that partitions the 16-bit tag space into object tags and attribute
// tags. The sentinel 0x0000 is neither: it means end-of-object.
func IsObjectTag(tag uint16) bool {
	return tag&0x8000 != 0
}

// IsEndOfObject reports whether tag is the end-of-object sentinel.
func IsEndOfObject(tag uint16) bool {
	return tag == 0x0000
}
