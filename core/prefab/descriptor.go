package prefab

import (
	"fmt"
	"strconv"
	"strings"
)

// DescriptorKind discriminates the two descriptor variants.
type DescriptorKind uint8

const (
	// KindNamedEntity is a container record identified by its name.
	KindNamedEntity DescriptorKind = iota + 1
	// KindComponent is any other record, identified by its type tag and owner name.
	KindComponent
)

// Descriptor is the id independent identity of a block. It is comparable and
// used directly as a map key; two blocks describe the same entity iff their
// descriptors are equal.
type Descriptor struct {
	Kind DescriptorKind
	// Type is the verbatim type tag line of a component, empty for named entities.
	Type string
	// Name is the entity name, or the owner's name for a component.
	Name string
}

// NamedEntity returns the descriptor of a container record.
func NamedEntity(name string) Descriptor {
	return Descriptor{Kind: KindNamedEntity, Name: name}
}

// Component returns the descriptor of a record of type kind owned by ownerName.
func Component(kind, ownerName string) Descriptor {
	return Descriptor{Kind: KindComponent, Type: kind, Name: ownerName}
}

func (d Descriptor) String() string {
	switch d.Kind {
	case KindNamedEntity:
		return fmt.Sprintf("NamedEntity(%q)", d.Name)
	case KindComponent:
		return fmt.Sprintf("Component(%q, %q)", d.Type, d.Name)
	default:
		return "Descriptor(invalid)"
	}
}

// ExtractNames collects the owner table: the id and name of every container
// record in blocks.
func (d Dialect) ExtractNames(blocks []string) (map[uint64]string, error) {
	d = d.withDefaults()
	names := make(map[uint64]string)
	for i, text := range blocks {
		lines, err := blockLines(i, text)
		if err != nil {
			return nil, err
		}
		if !strings.HasPrefix(lines[1], d.ContainerTag) {
			continue
		}
		id, err := parseBlockID(i, lines[0])
		if err != nil {
			return nil, err
		}
		name, err := d.entityName(i, lines)
		if err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, nil
}

// Describe parses the id of body and computes its descriptor, resolving owner
// ids through names.
func (d Dialect) Describe(body string, names map[uint64]string) (Block, error) {
	return d.describe(-1, body, names)
}

func (d Dialect) describe(index int, body string, names map[uint64]string) (Block, error) {
	d = d.withDefaults()
	lines, err := blockLines(index, body)
	if err != nil {
		return Block{}, err
	}
	id, err := parseBlockID(index, lines[0])
	if err != nil {
		return Block{}, err
	}

	if strings.HasPrefix(lines[1], d.ContainerTag) {
		name, err := d.entityName(index, lines)
		if err != nil {
			return Block{}, err
		}
		return Block{Body: body, ID: id, Descriptor: NamedEntity(name)}, nil
	}

	line, ok := findLine(lines, d.OwnerField)
	if !ok {
		return Block{}, parseErrorf(index, "missing %q line", strings.TrimSpace(d.OwnerField))
	}
	ownerID, err := parseOwnerID(index, line)
	if err != nil {
		return Block{}, err
	}
	owner, ok := names[ownerID]
	if !ok {
		return Block{}, parseErrorf(index, "unknown owner %d", ownerID)
	}

	return Block{Body: body, ID: id, Descriptor: Component(lines[1], owner)}, nil
}

func (d Dialect) entityName(index int, lines []string) (string, error) {
	line, ok := findLine(lines, d.NameField)
	if !ok {
		return "", parseErrorf(index, "missing %q line", strings.TrimSpace(d.NameField))
	}
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value), nil
}

// blockLines splits text into lines, dropping a trailing '\r' from each.
// A block needs at least its header line and its type tag line.
func blockLines(index int, text string) ([]string, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) < 2 {
		return nil, parseErrorf(index, "expected at least 2 lines, got %d", len(lines))
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

func findLine(lines []string, prefix string) (string, bool) {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return l, true
		}
	}
	return "", false
}

// parseBlockID reads the id from a header line such as "--- !u!1 &100100".
func parseBlockID(index int, line string) (uint64, error) {
	i := strings.LastIndexByte(line, '&')
	if i < 0 {
		return 0, parseErrorf(index, "missing '&' in %q", line)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(line[i+1:]), 10, 64)
	if err != nil {
		return 0, parseErrorf(index, "invalid id in %q", line)
	}
	return id, nil
}

// parseOwnerID reads the owner id from a line such as
// "  m_GameObject: {fileID: 100100}".
func parseOwnerID(index int, line string) (uint64, error) {
	_, ref, ok := strings.Cut(line, ":")
	if ok {
		_, ref, ok = strings.Cut(ref, ":")
	}
	if ok {
		ref, _, ok = strings.Cut(ref, "}")
	}
	if !ok {
		return 0, parseErrorf(index, "malformed owner reference %q", line)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(ref), 10, 64)
	if err != nil {
		return 0, parseErrorf(index, "invalid owner id in %q", line)
	}
	return id, nil
}
