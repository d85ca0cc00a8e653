package jsxattr

// attributeAliases maps JSX property names to the HTML/SVG attributes they stand for.
// Entries are applied in this order.
var attributeAliases = [...]struct {
	alias     string
	canonical string
}{
	{alias: "className", canonical: "class"},
	{alias: "htmlFor", canonical: "for"},
}

// NormalizeIntrinsicElementProps renames JSX aliases in props to their literal
// attribute names, in place. The value moves from the alias key to the canonical
// key; when both are present the alias value wins. Other keys are left untouched.
func NormalizeIntrinsicElementProps(props *PropertyBag) {
	if props.Len() == 0 {
		return
	}
	for _, a := range attributeAliases {
		value, ok := props.Get(a.alias)
		if !ok {
			continue
		}
		props.Delete(a.alias)
		props.Set(a.canonical, value)
	}
}

// CanonicalAttributeName returns the attribute name for a JSX alias,
// or name itself when it is not an alias. Matching is exact and case-sensitive.
func CanonicalAttributeName(name string) string {
	for _, a := range attributeAliases {
		if a.alias == name {
			return a.canonical
		}
	}
	return name
}
