package cdxvalue

import (
	"strconv"
	"strings"
)

// bracketUsageNames is the CDXBracketUsage symbolic table.
var bracketUsageNames = []EnumPair{
	{Name: "Unspecified", Value: 0},
	{Name: "Unused1", Value: 1},
	{Name: "SRU", Value: 2},
	{Name: "Monomer", Value: 3},
	{Name: "Mer", Value: 4},
	{Name: "Copolymer", Value: 5},
	{Name: "CopolymerAlternating", Value: 6},
	{Name: "CopolymerRandom", Value: 7},
	{Name: "CopolymerBlock", Value: 8},
	{Name: "Crosslink", Value: 9},
	{Name: "Graft", Value: 10},
	{Name: "Modification", Value: 11},
	{Name: "Component", Value: 12},
	{Name: "MixtureUnordered", Value: 13},
	{Name: "MixtureOrdered", Value: 14},
	{Name: "MultipleGroup", Value: 15},
	{Name: "Generic", Value: 16},
	{Name: "Anypolymer", Value: 17},
}

// BracketUsage is a CDXBracketUsage. Real files have been observed
// carrying a legacy 2-byte encoding (the documented format is 1 byte);
// when that happens the extra byte is preserved verbatim and re-emitted
// on write rather than discarded, since its meaning is unknown. The
// extra byte rides along in the textual form as a second field
// ("SRU 127") so it survives the trip through the element tree.
type BracketUsage struct {
	value  int64
	name   string
	legacy bool
	extra  byte
}

func (b BracketUsage) EncodeBinary() ([]byte, error) {
	out := []byte{byte(b.value)}
	if b.legacy {
		out = append(out, b.extra)
	}
	return out, nil
}

func (b BracketUsage) FormatText() string {
	if b.legacy {
		return b.name + " " + strconv.FormatUint(uint64(b.extra), 10)
	}
	return b.name
}

type bracketUsageKind struct {
	byName  map[string]int64
	byValue map[int64]string
}

func (bracketUsageKind) Name() string { return "CDXBracketUsage" }

func newBracketUsageKind() bracketUsageKind {
	byName := make(map[string]int64, len(bracketUsageNames))
	byValue := make(map[int64]string, len(bracketUsageNames))
	for _, p := range bracketUsageNames {
		byName[p.Name] = p.Value
		byValue[p.Value] = p.Name
	}
	return bracketUsageKind{byName: byName, byValue: byValue}
}

func (k bracketUsageKind) DecodeBinary(b []byte) (Value, error) {
	switch len(b) {
	case 1:
		v := int64(b[0])
		name, ok := k.byValue[v]
		if !ok {
			return nil, errUnknownEnum("CDXBracketUsage", strconv.FormatInt(v, 10))
		}
		return BracketUsage{value: v, name: name}, nil
	case 2:
		v := int64(b[0])
		name, ok := k.byValue[v]
		if !ok {
			return nil, errUnknownEnum("CDXBracketUsage", strconv.FormatInt(v, 10))
		}
		return BracketUsage{value: v, name: name, legacy: true, extra: b[1]}, nil
	default:
		return nil, errInvalidLength("CDXBracketUsage", 1, len(b))
	}
}

func (k bracketUsageKind) ParseText(s string) (Value, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, errUnknownEnum("CDXBracketUsage", s)
	}
	v, ok := k.byName[fields[0]]
	if !ok {
		return nil, errUnknownEnum("CDXBracketUsage", s)
	}
	if len(fields) == 2 {
		extra, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return nil, errUnknownEnum("CDXBracketUsage", s)
		}
		return BracketUsage{value: v, name: fields[0], legacy: true, extra: byte(extra)}, nil
	}
	return BracketUsage{value: v, name: fields[0]}, nil
}

// KindBracketUsage is the CDXBracketUsage value kind.
var KindBracketUsage Kind = newBracketUsageKind()
