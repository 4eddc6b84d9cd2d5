package style

// Specificity of alias targets used by standard tables. Narrower alias has
// higher rank, direct physical property beats them all.
const (
	SpecificityAll  = 1 // padding, margin, borderWidth...
	SpecificityAxis = 2 // paddingBlock, paddingInline...
)

// DefaultNamespace prefixes intermediate custom properties.
const DefaultNamespace = "pc-box"

// DefaultTokenPrefix prefixes token custom properties.
const DefaultTokenPrefix = "p"

// DefaultBreakpoints are standard breakpoints, narrowest first.
func DefaultBreakpoints() []Breakpoint {
	return []Breakpoint{
		{Alias: "xs", Condition: "(min-width: 0em)"},
		{Alias: "sm", Condition: "(min-width: 30.625em)"},
		{Alias: "md", Condition: "(min-width: 48em)"},
		{Alias: "lg", Condition: "(min-width: 65em)"},
		{Alias: "xl", Condition: "(min-width: 90em)"},
	}
}

// logicalBox builds aliases for logical box sides: prefix+suffix for all four
// sides, prefix+Block+suffix and prefix+Inline+suffix for axes.
func logicalBox(prefix, suffix string) []AliasEntry {
	side := func(axis, edge string) PropertyName {
		return PropertyName(prefix + axis + edge + suffix)
	}
	return []AliasEntry{
		{
			Alias: PropertyName(prefix + suffix),
			Targets: []Target{
				{Physical: side("Block", "Start"), Specificity: SpecificityAll},
				{Physical: side("Block", "End"), Specificity: SpecificityAll},
				{Physical: side("Inline", "Start"), Specificity: SpecificityAll},
				{Physical: side("Inline", "End"), Specificity: SpecificityAll},
			},
		},
		{
			Alias: PropertyName(prefix + "Block" + suffix),
			Targets: []Target{
				{Physical: side("Block", "Start"), Specificity: SpecificityAxis},
				{Physical: side("Block", "End"), Specificity: SpecificityAxis},
			},
		},
		{
			Alias: PropertyName(prefix + "Inline" + suffix),
			Targets: []Target{
				{Physical: side("Inline", "Start"), Specificity: SpecificityAxis},
				{Physical: side("Inline", "End"), Specificity: SpecificityAxis},
			},
		},
	}
}

func pair(alias, first, second PropertyName) AliasEntry {
	return AliasEntry{
		Alias: alias,
		Targets: []Target{
			{Physical: first, Specificity: SpecificityAll},
			{Physical: second, Specificity: SpecificityAll},
		},
	}
}

func group(groups map[PropertyName]string, name string, props ...PropertyName) {
	for _, p := range props {
		groups[p] = name
	}
}

func sides(prefix, suffix string) []PropertyName {
	return []PropertyName{
		PropertyName(prefix + "BlockStart" + suffix),
		PropertyName(prefix + "BlockEnd" + suffix),
		PropertyName(prefix + "InlineStart" + suffix),
		PropertyName(prefix + "InlineEnd" + suffix),
	}
}

// DefaultDefinition returns standard tables of the box layout primitive.
// Every call returns a new copy.
func DefaultDefinition() *Definition {
	def := &Definition{
		Namespace:   DefaultNamespace,
		TokenPrefix: DefaultTokenPrefix,
		Breakpoints: DefaultBreakpoints(),
		Physical: []PropertyName{
			"display", "position", "visibility", "overflowX", "overflowY",
			"zIndex", "opacity", "order",
			"width", "minWidth", "maxWidth", "height", "minHeight", "maxHeight",
			"color", "backgroundColor", "boxShadow",
			"fontSize", "fontWeight", "lineHeight", "textAlign",
			"flexDirection", "flexWrap", "alignItems", "justifyContent",
			"gridTemplateColumns", "gridTemplateRows",
			"outlineWidth", "outlineStyle", "outlineColor", "outlineOffset",
			"rowGap", "columnGap",
		},
		TokenGroups: make(map[PropertyName]string),
	}

	def.Aliases = append(def.Aliases, logicalBox("padding", "")...)
	def.Aliases = append(def.Aliases, logicalBox("margin", "")...)
	def.Aliases = append(def.Aliases, logicalBox("inset", "")...)
	def.Aliases = append(def.Aliases, logicalBox("border", "Width")...)
	def.Aliases = append(def.Aliases, logicalBox("border", "Color")...)
	def.Aliases = append(def.Aliases, logicalBox("border", "Style")...)
	def.Aliases = append(def.Aliases,
		AliasEntry{
			Alias: "borderRadius",
			Targets: []Target{
				{Physical: "borderStartStartRadius", Specificity: SpecificityAll},
				{Physical: "borderStartEndRadius", Specificity: SpecificityAll},
				{Physical: "borderEndStartRadius", Specificity: SpecificityAll},
				{Physical: "borderEndEndRadius", Specificity: SpecificityAll},
			},
		},
		pair("gap", "rowGap", "columnGap"),
		pair("overflow", "overflowX", "overflowY"),
	)

	group(def.TokenGroups, "space", sides("padding", "")...)
	group(def.TokenGroups, "space", sides("margin", "")...)
	group(def.TokenGroups, "space", sides("inset", "")...)
	group(def.TokenGroups, "space", "rowGap", "columnGap")
	group(def.TokenGroups, "border-width", sides("border", "Width")...)
	group(def.TokenGroups, "border-width", "outlineWidth")
	group(def.TokenGroups, "border-radius",
		"borderStartStartRadius", "borderStartEndRadius", "borderEndStartRadius", "borderEndEndRadius")
	group(def.TokenGroups, "color", sides("border", "Color")...)
	group(def.TokenGroups, "color", "color", "backgroundColor", "outlineColor")
	group(def.TokenGroups, "shadow", "boxShadow")
	group(def.TokenGroups, "z-index", "zIndex")
	group(def.TokenGroups, "width", "width", "minWidth", "maxWidth")
	group(def.TokenGroups, "height", "height", "minHeight", "maxHeight")
	group(def.TokenGroups, "font-size", "fontSize")
	group(def.TokenGroups, "font-weight", "fontWeight")
	group(def.TokenGroups, "font-line-height", "lineHeight")

	return def
}
