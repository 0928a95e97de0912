// Package widgets provides the built-in widget modules.
//
// Importing the package registers one module per tag under
// "gtkml/widgets/<tag>", where the resolver finds them after widget
// directories have been searched:
//
//	vbox hbox label button checkbox switch entry textview
//	frame scroll notebook img
//
// Event attributes are bound when the widget is constructed. Push and link
// buttons call their onclick handler with no arguments; toggle buttons,
// check buttons and switches pass the new state; entries pass the new text
// to onchange.
package widgets
