package prefab

// Dialect holds the marker literals used to extract fields from a block.
type Dialect struct {
	// ContainerTag starts the second line of a container (named entity) record.
	ContainerTag string `mapstructure:"container_tag" default:"GameObject:"`
	// NameField starts the line holding the name of a container record.
	NameField string `mapstructure:"name_field" default:"  m_Name:"`
	// OwnerField starts the line holding the owner reference of any other record.
	OwnerField string `mapstructure:"owner_field" default:"  m_GameObject:"`
}

// DefaultDialect returns the markers of Unity scene and prefab files.
func DefaultDialect() Dialect {
	return Dialect{
		ContainerTag: "GameObject:",
		NameField:    "  m_Name:",
		OwnerField:   "  m_GameObject:",
	}
}

// withDefaults fills empty markers from DefaultDialect.
func (d Dialect) withDefaults() Dialect {
	def := DefaultDialect()
	if d.ContainerTag == "" {
		d.ContainerTag = def.ContainerTag
	}
	if d.NameField == "" {
		d.NameField = def.NameField
	}
	if d.OwnerField == "" {
		d.OwnerField = def.OwnerField
	}
	return d
}
