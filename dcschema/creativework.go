package dcschema

import (
	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/decode"
	"github.com/meemoo/earkmodels/langstring"
	"github.com/meemoo/earkmodels/xmltree"
)

// CreativeWork is the sealed union of collections a resource can be part of.
// The concrete type is selected by the expanded xsi:type discriminator on
// the isPartOf element (schema.org or DCMI namespace).
type CreativeWork interface {
	// WorkName returns the collection's name in the requested language,
	// falling back to the first name.
	WorkName(lang string) string

	isCreativeWork()
}

type workNames struct {
	Names langstring.Strings
}

func (w workNames) WorkName(lang string) string {
	if v, ok := w.Names.Get(lang); ok {
		return v
	}
	if len(w.Names) > 0 {
		return w.Names[0].Value
	}
	return ""
}

// Part is a name-only member of a series or archive component. Its xsi:type
// must repeat the parent collection's type.
type Part struct {
	workNames
}

// Series is a schema:CreativeWorkSeries collection.
type Series struct {
	workNames
	Position *int
	HasPart  []Part
}

// Season is a schema:CreativeWorkSeason collection.
type Season struct {
	workNames
	SeasonNumber *int
}

// Episode is a schema:Episode within a series or season.
type Episode struct {
	workNames
	EpisodeNumber *int
}

// ArchiveComponent is a schema:ArchiveComponent collection.
type ArchiveComponent struct {
	workNames
	HasPart []Part
}

// BroadcastEvent is a schema:BroadcastEvent the resource was part of.
type BroadcastEvent struct {
	workNames
}

func (Series) isCreativeWork()           {}
func (Season) isCreativeWork()           {}
func (Episode) isCreativeWork()          {}
func (ArchiveComponent) isCreativeWork() {}
func (BroadcastEvent) isCreativeWork()   {}

func parseIsPartOf(n *xmltree.Node) (CreativeWork, error) {
	xsiType, ok := n.QAttr(xmltree.XSIType)
	if !ok || xsiType == "" {
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/@xsi:type",
			Code:    earkmodels.CodeDiscriminatorMissing,
			Message: "isPartOf requires an xsi:type discriminator",
			Source:  n.Source(),
		}}
	}

	names, err := langstring.CollectUnique(n, elName)
	if err != nil {
		return nil, err
	}
	base := workNames{Names: names}

	switch xsiType {
	case typeSeries:
		w := Series{workNames: base}
		pos, ok, err := decode.OptionalChildInt(n, elPosition)
		parts, errParts := collectParts(n, typeSeries)
		if err := earkmodels.Merge(err, errParts); err != nil {
			return nil, err
		}
		if ok {
			w.Position = &pos
		}
		w.HasPart = parts
		return w, nil
	case typeSeason:
		w := Season{workNames: base}
		num, ok, err := decode.OptionalChildInt(n, elSeasonNumber)
		if err != nil {
			return nil, err
		}
		if ok {
			w.SeasonNumber = &num
		}
		return w, nil
	case typeEpisode:
		w := Episode{workNames: base}
		num, ok, err := decode.OptionalChildInt(n, elEpisodeNumber)
		if err != nil {
			return nil, err
		}
		if ok {
			w.EpisodeNumber = &num
		}
		return w, nil
	case typeArchive:
		parts, err := collectParts(n, typeArchive)
		if err != nil {
			return nil, err
		}
		return ArchiveComponent{workNames: base, HasPart: parts}, nil
	case typeBroadcast:
		return BroadcastEvent{workNames: base}, nil
	default:
		return nil, earkmodels.Issues{{
			Path:    n.Path() + "/@xsi:type",
			Code:    earkmodels.CodeDiscriminatorUnknown,
			Message: "unknown collection type",
			Hint:    xsiType,
			Source:  n.Source(),
			Params: map[string]any{
				"allowed": []string{typeSeries, typeSeason, typeEpisode, typeArchive, typeBroadcast},
				"got":     xsiType,
			},
		}}
	}
}

func collectParts(n *xmltree.Node, want string) ([]Part, error) {
	return decode.Collect(n, elHasPart, func(c *xmltree.Node) (Part, error) {
		xsiType, ok := c.QAttr(xmltree.XSIType)
		if !ok || xsiType == "" {
			return Part{}, earkmodels.Issues{{
				Path:    c.Path() + "/@xsi:type",
				Code:    earkmodels.CodeDiscriminatorMissing,
				Message: "hasPart requires an xsi:type discriminator",
				Source:  c.Source(),
			}}
		}
		if xsiType != want {
			return Part{}, earkmodels.Issues{{
				Path:    c.Path() + "/@xsi:type",
				Code:    earkmodels.CodeDiscriminatorUnknown,
				Message: "hasPart must repeat the collection type",
				Hint:    xsiType,
				Source:  c.Source(),
				Params:  map[string]any{"allowed": []string{want}, "got": xsiType},
			}}
		}
		names, err := langstring.CollectUnique(c, elName)
		if err != nil {
			return Part{}, err
		}
		return Part{workNames{Names: names}}, nil
	})
}
