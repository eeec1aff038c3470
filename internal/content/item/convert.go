package item

// Convert transforms validated raw data into a runtime Item.
//
// Precondition: d must have passed field validation.
// Postcondition: returns an Item with canonical Type and Size, or a
// ConversionError for an unmappable enum value. State and Flags are never
// nil. Properties (including unknown keys and null values) are carried
// through verbatim.
func Convert(d *Data) (*Item, error) {
	typ, err := ParseType(d.Type)
	if err != nil {
		return nil, err
	}
	size, err := ParseSize(d.Size)
	if err != nil {
		return nil, err
	}

	state := d.InitialState
	if state == nil {
		state = map[string]any{}
	}
	props := d.Properties
	if props == nil {
		props = Properties{}
	}

	return &Item{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		ExamineText:     d.ExamineText,
		Aliases:         d.Aliases,
		Type:            typ,
		Portable:        d.Portable,
		Visible:         d.Visible,
		Weight:          d.Weight,
		Size:            size,
		InitialLocation: d.InitialLocation,
		CurrentLocation: d.InitialLocation,
		State:           state,
		Flags:           map[string]bool{},
		Tags:            d.Tags,
		Properties:      props,
		Interactions:    d.Interactions,
	}, nil
}
