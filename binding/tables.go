package binding

// Translation tables grounded on original_source/src/scconfig.py's
// Evgen_* classes. Keys are the short codes accepted in a binding
// expression; values are the VDF wire literals Steam expects.

var mouseButtonTable = map[string]string{
	"1": "LEFT", "2": "MIDDLE", "3": "RIGHT",
	"4": "BACK", "5": "FORWARD",
}

var mouseWheelTable = map[string]string{
	"u": "SCROLL_UP", "d": "SCROLL_DOWN",
}

var gamepadTable = map[string]string{
	"A": "A", "B": "B", "X": "X", "Y": "Y",
	"LB": "SHOULDER_LEFT", "RB": "SHOULDER_RIGHT",
	"LT": "TRIGGER_LEFT", "RT": "TRIGGER_RIGHT",
	"DUP": "DPAD_UP", "DDN": "DPAD_DOWN", "DLT": "DPAD_LEFT", "DRT": "DPAD_RIGHT",
	"BK": "SELECT", "ST": "START", "LS": "JOYSTICK_LEFT", "RS": "JOYSTICK_RIGHT",
	"LJx": "LSTICK_LEFT", "LJX": "LSTICK_RIGHT", "LJy": "LSTICK_UP", "LJY": "LSTICK_DOWN",
	"RJx": "RSTICK_LEFT", "RJX": "RSTICK_RIGHT", "RJy": "RSTICK_UP", "RJY": "RSTICK_DOWN",
}

var hostTable = map[string]string{
	"keyboard":        "show_keyboard",
	"screenshot":      "screenshot",
	"magnifier":       "toggle_magnifier",
	"magnify":         "toggle_magnifier",
	"music":           "steammusic_playpause",
	"music_play/pause": "steammusic_playpause",
	"music_play":      "steammusic_playpause",
	"music_pause":     "steammusic_playpause",
	"music_next":      "steammusic_next",
	"music_prev":      "steammusic_prev",
	"music_previous":  "steammusic_previous",
	"volume_up":       "steammusic_volup",
	"volume_down":     "steammusic_voldown",
	"volume_mute":     "steammusic_volmute",
	"steam_hangup":    "controller_poweroff",
	"steam_kill":      "quit_application",
	"steam_terminate": "quit_application",
	"steam_forcequit": "quit_application",
	"steam_open":      "bigpicture_open",
	"steam_hide":      "bigpicture_minimize",
	"steam_exit":      "bigpicture_quit",
	"host_suspend":    "host_suspend",
	"host_restart":    "host_restart",
	"host_poweroff":   "host_poweroff",
}

var overlayActionTable = map[string]string{
	"apply_layer": "add_layer",
	"apply":       "add_layer",
	"peel_layer":  "remove_layer",
	"peel":        "remove_layer",
	"hold_layer":  "hold_layer",
	"hold":        "hold_layer",
	"change":      "change_preset",
}

// modeshiftSources enumerates the legal cluster identifiers accepted as the
// first argument to a mode-shift generator.
var modeshiftSources = map[string]bool{
	"left_trackpad": true, "right_trackpad": true,
	"left_trigger": true, "right_trigger": true,
	"dpad": true, "button_diamond": true,
	"joystick": true, "right_joystick": true,
	"gyro": true,
}

const (
	vscKeypress         = "key_press"
	vscMouseButton      = "mouse_button"
	vscMouseWheel       = "mouse_wheel"
	vscGamepadButton    = "xinput_button"
	vscControllerAction = "controller_action"
	vscModeShift        = "mode_shift"
	vscEmptyBinding     = "empty_binding"
	vscSetLED           = "set_led"
)
