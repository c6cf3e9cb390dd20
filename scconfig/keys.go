package scconfig

// Group settings keys, grounded verbatim on original_source/src/scconfig.py's
// GroupBase.Settings._VSC_KEYS PseudoNamespace (including its one
// preserved misspelling, doubetap_max_duration, marked [sic] in the
// source — the Steam client's VDF wire format depends on the exact
// string, so the typo is kept rather than corrected).
const (
	KeyRequiresClick              = "requires_click"
	KeyLayout                     = "layout"
	KeyDeadzone                   = "deadzone"
	KeyEdgeBindingRadius          = "edge_binding_radius"
	KeyEdgeBindingInvert          = "edge_binding_invert"
	KeyAnalogEmulationPeriod      = "analog_emulation_period"
	KeyAnalogEmulationDutyCycle   = "analog_emulation_duty_cycle"
	KeyOverlapRegion              = "overlap_region"
	KeyGyroButtonInvert           = "gyro_button_invert"
	KeyHapticIntensityOverride    = "haptic_intensity_override"
	KeyGyroNeutral                = "gyro_neutral"
	KeyGyroButton                 = "gyro_button"
	KeyButtonSize                 = "button_size"
	KeyButtonDist                 = "button_dist"
	KeyCurveExponent              = "curve_exponent"
	KeySwipeDuration               = "swipe_duration"
	KeyHapticIntensity            = "haptic_intensity"
	KeyOutputJoystick             = "output_joystick"
	KeySensitivityVertScale       = "sensitivity_vert_scale"
	KeyAntiDeadzone               = "anti_deadzone"
	KeyAntiDeadzoneBuffer         = "anti_deadzone_buffer"
	KeyInvertX                    = "invert_x"
	KeyInvertY                    = "invert_y"
	KeyJoystickSmoothing          = "joystick_smoothing"
	KeyGyroAxis                   = "gyro_axis"
	KeyCustomCurveExponent        = "custom_curve_exponent"
	KeyDeadzoneInnerRadius        = "deadzone_inner_radius"
	KeyDeadzoneOuterRadius        = "deadzone_outer_radius"
	KeyDeadzoneShape              = "deadzone_shape"
	KeySensitivity                = "sensitivity"
	KeySensitivityHorizScale      = "sensitivity_horiz_scale"
	KeyGyroLockExtents            = "gyro_lock_extents"
	KeyOutputAxis                 = "output_axis"
	KeyDoubletapBeep              = "doubletap_beep"
	KeyTrackball                  = "trackball"
	KeyRotation                   = "rotation"
	KeyFriction                   = "friction"
	KeyFrictionVertScale          = "friction_vert_scale"
	KeyMouseMoveThreshold         = "mouse_move_threshold"
	KeyEdgeSpinVelocity           = "edge_spin_velocity"
	KeyEdgeSpinRadius             = "edge_spin_radius"
	KeyDoubletapMaxDuration       = "doubetap_max_duration" // [sic]
	KeyMouseDampeningTrigger      = "mouse_dampening_trigger"
	KeyMouseTriggerClampAmount    = "mouse_trigger_clamp_amount"
	KeyMousejoystickDeadzoneX     = "mousejoystick_deadzone_x"
	KeyMousejoystickDeadzoneY     = "mousejoystick_deadzone_y"
	KeyMousejoystickPrecision     = "mousejoystick_precision"
	KeyGyroSensitivityScale       = "gyro_sensitivity_scale"
	KeyScale                      = "scale"
	KeyPositionX                  = "position_x"
	KeyPositionY                  = "position_y"
	KeyTeleportStop               = "teleport_stop"
	KeyTouchmenuButtonFireType    = "touchmenu_button_fire_type"
	KeyTouchMenuOpacity           = "touch_menu_opacity"
	KeyTouchMenuPositionX         = "touch_menu_position_x"
	KeyTouchMenuPositionY         = "touch_menu_position_y"
	KeyTouchMenuScale             = "touch_menu_scale"
	KeyTouchMenuShowLabels        = "touch_menu_show_labels"
	KeyScrollAngle                = "scroll_angle"
	KeyScrollType                 = "scroll_type"
	KeyScrollInvert               = "scroll_invert"
	KeyScrollWrap                 = "scroll_wrap"
	KeyScrollFriction             = "scroll_friction"
	KeyTouchMenuButtonCount       = "touch_menu_button_count"
	KeyAdaptiveThreshold          = "adaptive_threshold"
	KeyOutputTrigger              = "output_trigger"
	KeyAcceleration               = "acceleration"
	KeyMouseSmoothing             = "mouse_smoothing"
)

// Group mode strings, grounded on each Group* subclass's literal mode
// passed to GroupBase.__init__.
const (
	ModeAbsoluteMouse   = "absolute_mouse"
	ModeDpad            = "dpad"
	ModeFourButtons     = "four_buttons"
	ModeJoystickCamera  = "joystick_camera"
	ModeJoystickMouse   = "joystick_mouse"
	ModeJoystickMove    = "joystick_move"
	ModeMouseJoystick   = "mouse_joystick"
	ModeMouseRegion     = "mouse_region"
	ModeRadialMenu      = "radial_menu"
	ModeScrollwheel     = "scrollwheel"
	ModeSingleButton    = "single_button"
	ModeSwitches        = "switches"
	ModeTouchMenu       = "touch_menu"
	ModeTrigger         = "trigger"
)
