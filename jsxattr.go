// Package jsxattr translates JSX-style element properties into the attribute
// names and values HTML and SVG serialization expects.
//
// # Attribute aliases
//
// JSX authors write className and htmlFor because class and for are reserved
// words. NormalizeIntrinsicElementProps renames them in place:
//
//	props := jsxattr.BagOf("className", "btn", "id", "save")
//	jsxattr.NormalizeIntrinsicElementProps(props)
//	// props: id="save", class="btn"
//
// # Style objects
//
// StyleObjectForEach walks a camelCase style bag and hands each declaration to
// a sink with a kebab-case name and a formatted value. Numbers get a px suffix
// unless the property is unitless (opacity, zIndex, flexGrow, ...):
//
//	style := jsxattr.BagOf("fontSize", 12, "zIndex", 2, "color", "red")
//	jsxattr.StyleObjectForEach(style, func(name, value string) {
//		fmt.Printf("%s:%s;", name, value)
//	})
//	// font-size:12px;z-index:2;color:red;
//
// # Rendering
//
// RenderElement combines both steps and writes escaped HTML. Render does the
// same for every YAML/JSON element document under a directory.
//
// # CLI Tool
//
//	go install github.com/yacobolo/jsxattr/cmd/jsxattr@latest
package jsxattr
