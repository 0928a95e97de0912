// Package markup parses gtkml documents into an element tree.
//
// A document is XML. Its root is either a window element or a wrapper whose
// direct window child describes the UI:
//
//	<gtkm>
//	    <head>
//	        <program_name>Greeter</program_name>
//	        <css>style.css</css>
//	    </head>
//	    <script src="logic.so"/>
//	    <window title="Hello">
//	        <vbox spacing="6">
//	            <entry id="nameEntry">Your name</entry>
//	            <button onclick="nameSubmit">Greet</button>
//	        </vbox>
//	    </window>
//	</gtkm>
//
// Children of head elements become [AppInfo] entries. The last script
// element with a src attribute, in document order, names the logic unit.
// Everything under the window is left for the builder to interpret.
package markup
