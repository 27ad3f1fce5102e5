// Package premis maps PREMIS 3.0 preservation metadata documents onto typed
// Go values. The package accepts exactly the profile meemoo produces: the
// object union is closed over file, representation, intellectualEntity and
// bitstream, and any element or discriminator outside the profile fails the
// whole document.
package premis

import (
	"io"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/xmltree"
)

// Version is the only PREMIS version this package accepts.
const Version = "3.0"

var rootName = Namespace.QName("premis")

// Premis is a parsed premis:premis document.
type Premis struct {
	Source  string
	Version string
	Objects []Object
	Events  []Event
	Agents  []Agent
}

// ParseFile reads and maps a PREMIS document from disk.
func ParseFile(path string) (Premis, error) {
	root, err := xmltree.ParseFile(path)
	if err != nil {
		return Premis{}, err
	}
	return FromNode(root)
}

// Parse reads and maps a PREMIS document from a reader. The source string
// names the origin for issue reporting.
func Parse(r io.Reader, source string) (Premis, error) {
	root, err := xmltree.Parse(r, source)
	if err != nil {
		return Premis{}, err
	}
	return FromNode(root)
}

// FromNode maps an already parsed tree. The root element must be
// premis:premis with version 3.0; nothing below the root is inspected before
// the version gate passes.
func FromNode(root *xmltree.Node) (Premis, error) {
	if root.Name() != rootName {
		return Premis{}, earkmodels.Issues{{
			Path:    root.Path(),
			Code:    earkmodels.CodeUnknownElement,
			Message: "expected a " + rootName.String() + " document",
			Hint:    root.Name().String(),
			Source:  root.Source(),
		}}
	}
	version, ok := root.Attr("version")
	if !ok || version != Version {
		return Premis{}, earkmodels.Issues{{
			Path:    root.Path() + "/@version",
			Code:    earkmodels.CodeUnsupportedVersion,
			Message: "unsupported PREMIS version",
			Hint:    version,
			Source:  root.Source(),
			Params:  map[string]any{"expected": Version, "got": version},
		}}
	}

	objects, errObjs := decode.Collect(root, elObject, parseObject)
	events, errEvts := decode.Collect(root, elEvent, parseEvent)
	agents, errAgs := decode.Collect(root, elAgent, parseAgent)
	if err := earkmodels.Merge(errObjs, errEvts, errAgs); err != nil {
		return Premis{}, err
	}
	return Premis{
		Source:  root.Source(),
		Version: version,
		Objects: objects,
		Events:  events,
		Agents:  agents,
	}, nil
}

// Entity returns the first intellectual entity object.
func (p Premis) Entity() (IntellectualEntity, bool) {
	for _, o := range p.Objects {
		if e, ok := o.(IntellectualEntity); ok {
			return e, true
		}
	}
	return IntellectualEntity{}, false
}

// Representation returns the first representation object.
func (p Premis) Representation() (Representation, bool) {
	for _, o := range p.Objects {
		if r, ok := o.(Representation); ok {
			return r, true
		}
	}
	return Representation{}, false
}

// Files returns every file object in document order.
func (p Premis) Files() []File {
	var out []File
	for _, o := range p.Objects {
		if f, ok := o.(File); ok {
			out = append(out, f)
		}
	}
	return out
}

// Bitstreams returns every bitstream object in document order.
func (p Premis) Bitstreams() []Bitstream {
	var out []Bitstream
	for _, o := range p.Objects {
		if b, ok := o.(Bitstream); ok {
			out = append(out, b)
		}
	}
	return out
}
