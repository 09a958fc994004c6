// Package syntax implements the svgmacro authoring language: a compact
// bracket notation for SVG and XML that compiles to markup nodes.
//
//	svg(width=100 height=100 xmlns="http://www.w3.org/2000/svg")[
//	    // a row of circles
//	    @for i in 0..count [
//	        circle(cx={i} cy=50 r=5 fill={palette.fg})
//	    ];
//	    text(font-family="monospace" x=10 y=90)[ "label: " {title} ]
//	    @footer;
//	]
//
// An element is a tag followed by an attribute list in parentheses, a
// body in brackets, or both. Without a body it is self-closing.
// Attribute values are emitted as written, so quoted values keep their
// quotes and bare numbers stay bare; a braced expression is evaluated and
// always quoted. Strings in content position are written without quotes.
// No characters are escaped anywhere.
//
// Expressions are numbers, strings and dotted variable paths resolved in
// a Scope. A variable holding markup nodes is spliced into the tree.
//
// Directives start with @ and end with a semicolon:
//
//	@for x in items [ ... ];        elements of a slice, sorted map keys, or 0..n-1
//	@for i in 0..n [ ... ];         integers from 0 up to n-1
//	@if flag [ ... ] else [ ... ];  else is optional, @if !flag negates
//	@name;                          run the escape bound to name
package syntax
