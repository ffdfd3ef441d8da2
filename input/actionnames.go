package input

// actionRegistry maps canonical action names to intents
// Used by the key binding loader to resolve configured action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"up":    IntentUp,
	"down":  IntentDown,
	"left":  IntentLeft,
	"right": IntentRight,

	"toggle":  IntentToggle,
	"restart": IntentRestart,
	"quit":    IntentQuit,
}

// ActionIntent returns the intent for an action name
func ActionIntent(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}
