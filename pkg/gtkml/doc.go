// Package gtkml turns a parsed markup document into a widget tree.
//
// # Pipeline
//
// The [App] shell parses the document, creates a [Context], loads the logic
// unit, and builds the window when the toolkit activates the application:
//
//	markup text -> markup.Parse -> Context.Build -> toolkit event loop
//
// Build walks the window element. Every element goes through the same
// pipeline: its tag is resolved to a [WidgetModule] by the [Resolver], the
// module constructs a widget, and [Context.ApplyCommon] applies the
// cross-cutting attributes (margins, alignment, expansion, sensitivity,
// style classes and id registration). Container modules recurse through
// [Context.CreateWidget].
//
// # Widget modules
//
// Modules are looked up per tag and cached for the life of the context.
// The resolver searches widget directories for a Go plugin (<tag>.so) or a
// declarative module (<tag>.yaml), then falls back to modules registered at
// build time with [RegisterWidget]. The built-in modules live in the
// widgets package and register themselves on import:
//
//	import _ "github.com/go-drift/gtkml/pkg/widgets"
//
// A declarative module extends another tag with default attributes:
//
//	# widgets/primary.yaml
//	extends: button
//	attributes:
//	  class: suggested-action
//	  margin: "6"
//
// # Logic units
//
// Event attributes such as onclick name functions of the logic unit. A
// logic unit is a [LogicUnit] registered with [RegisterLogic], or a Go
// plugin exporting Handlers. It receives the Context before any handler
// runs, so handlers can reach widgets by id:
//
//	gtkml.RegisterLogic("greeter", func(ctx *gtkml.Context) (gtkml.HandlerTable, error) {
//	    return gtkml.HandlerTable{
//	        "nameSubmit": func(ctx *gtkml.Context, w toolkit.Widget, args ...any) {
//	            entry, _ := ctx.Widget("nameEntry")
//	            label, _ := ctx.Widget("nameLabel")
//	            label.(toolkit.Label).SetText("Hello, " + entry.(toolkit.Entry).Text() + "!")
//	        },
//	    }, nil
//	})
//
// # Errors
//
// A malformed document or a document without a window is fatal and returned
// from [NewApp] or [Context.Build]. Everything else (unknown tags, missing
// handlers, missing assets, broken logic units) is reported to the
// context's errors.Handler and construction continues.
package gtkml
