package widgets

import "github.com/go-drift/gtkml/pkg/gtkml"

// PathPrefix is the registry namespace of the built-in modules.
const PathPrefix = "gtkml/widgets/"

// Builtins maps each built-in tag to its module.
func Builtins() map[string]gtkml.WidgetModule {
	return map[string]gtkml.WidgetModule{
		"vbox":     gtkml.ConstructFunc(VBox),
		"hbox":     gtkml.ConstructFunc(HBox),
		"label":    gtkml.ConstructFunc(Label),
		"button":   gtkml.ConstructFunc(Button),
		"checkbox": gtkml.ConstructFunc(Checkbox),
		"switch":   gtkml.ConstructFunc(Switch),
		"entry":    gtkml.ConstructFunc(Entry),
		"textview": gtkml.ConstructFunc(TextView),
		"frame":    gtkml.ConstructFunc(Frame),
		"scroll":   gtkml.ConstructFunc(Scroll),
		"notebook": gtkml.ConstructFunc(Notebook),
		"img":      gtkml.ConstructFunc(Img),
	}
}

func init() {
	for tag, m := range Builtins() {
		gtkml.RegisterWidget(PathPrefix+tag, m)
	}
}
