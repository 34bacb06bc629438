package entity

// Action identifies a logical game control (e.g. "move-forward").
// The set of actions is fixed at build time.
type Action string

const (
	// Movement and combat.
	ActionMoveForward     Action = "move-forward"
	ActionMoveBackward    Action = "move-backward"
	ActionTurnLeft        Action = "turn-left"
	ActionTurnRight       Action = "turn-right"
	ActionStrafeLeft      Action = "strafe-left"
	ActionStrafeRight     Action = "strafe-right"
	ActionFire            Action = "fire"
	ActionUse             Action = "use"
	ActionStrafe          Action = "strafe"
	ActionSpeed           Action = "speed"
	ActionPause           Action = "pause"
	ActionToggleAutorun   Action = "toggle-autorun"
	ActionToggleCrosshair Action = "toggle-crosshair"
	ActionToggleMouseLook Action = "toggle-mouselook"
	ActionWeapon1         Action = "weapon-1"
	ActionWeapon2         Action = "weapon-2"
	ActionWeapon3         Action = "weapon-3"
	ActionWeapon4         Action = "weapon-4"
	ActionWeapon5         Action = "weapon-5"
	ActionWeapon6         Action = "weapon-6"
	ActionWeapon7         Action = "weapon-7"
	ActionWeapon8         Action = "weapon-8"
	ActionPrevWeapon      Action = "prev-weapon"
	ActionNextWeapon      Action = "next-weapon"

	// Menu navigation.
	ActionMenuActivate Action = "menu-activate"
	ActionMenuUp       Action = "menu-up"
	ActionMenuDown     Action = "menu-down"
	ActionMenuLeft     Action = "menu-left"
	ActionMenuRight    Action = "menu-right"
	ActionMenuBack     Action = "menu-back"
	ActionMenuForward  Action = "menu-forward"
	ActionMenuConfirm  Action = "menu-confirm"
	ActionMenuAbort    Action = "menu-abort"

	// Shortcut keys.
	ActionMenuHelp       Action = "menu-help"
	ActionMenuSave       Action = "menu-save"
	ActionMenuLoad       Action = "menu-load"
	ActionMenuVolume     Action = "menu-volume"
	ActionMenuDetail     Action = "menu-detail"
	ActionMenuQuickSave  Action = "menu-quicksave"
	ActionMenuEndGame    Action = "menu-endgame"
	ActionMenuMessages   Action = "menu-messages"
	ActionMenuQuickLoad  Action = "menu-quickload"
	ActionMenuQuit       Action = "menu-quit"
	ActionMenuGamma      Action = "menu-gamma"
	ActionScreenIncrease Action = "screen-increase"
	ActionScreenDecrease Action = "screen-decrease"
	ActionScreenshot     Action = "screenshot"
	ActionMessageRefresh Action = "message-refresh"

	// Automap.
	ActionMapNorth      Action = "map-north"
	ActionMapSouth      Action = "map-south"
	ActionMapEast       Action = "map-east"
	ActionMapWest       Action = "map-west"
	ActionMapZoomIn     Action = "map-zoom-in"
	ActionMapZoomOut    Action = "map-zoom-out"
	ActionMapToggle     Action = "map-toggle"
	ActionMapMaxZoom    Action = "map-max-zoom"
	ActionMapFollow     Action = "map-follow"
	ActionMapGrid       Action = "map-grid"
	ActionMapMark       Action = "map-mark"
	ActionMapClearMarks Action = "map-clear-marks"
)

// ActionInfo describes an action for persistence and display.
type ActionInfo struct {
	Action Action
	// Name is the persistence key (e.g. "key_up"). Stable across releases.
	Name  string
	Label string
}

var actionInfos = []ActionInfo{
	{ActionMoveForward, "key_up", "Move Forward"},
	{ActionMoveBackward, "key_down", "Move Backward"},
	{ActionTurnLeft, "key_left", "Turn Left"},
	{ActionTurnRight, "key_right", "Turn Right"},
	{ActionStrafeLeft, "key_strafeleft", "Strafe Left"},
	{ActionStrafeRight, "key_straferight", "Strafe Right"},
	{ActionSpeed, "key_speed", "Speed On"},
	{ActionStrafe, "key_strafe", "Strafe On"},
	{ActionFire, "key_fire", "Fire/Attack"},
	{ActionUse, "key_use", "Use"},
	{ActionToggleMouseLook, "key_togglemlook", "Mouse look"},
	{ActionWeapon1, "key_weapon1", "Weapon 1"},
	{ActionWeapon2, "key_weapon2", "Weapon 2"},
	{ActionWeapon3, "key_weapon3", "Weapon 3"},
	{ActionWeapon4, "key_weapon4", "Weapon 4"},
	{ActionWeapon5, "key_weapon5", "Weapon 5"},
	{ActionWeapon6, "key_weapon6", "Weapon 6"},
	{ActionWeapon7, "key_weapon7", "Weapon 7"},
	{ActionWeapon8, "key_weapon8", "Weapon 8"},
	{ActionPrevWeapon, "key_prevweapon", "Previous weapon"},
	{ActionNextWeapon, "key_nextweapon", "Next weapon"},
	{ActionToggleAutorun, "key_toggleautorun", "Toggle always run"},
	{ActionToggleCrosshair, "key_togglecrosshair", "Toggle crosshair"},

	{ActionMenuActivate, "key_menu_activate", "Activate menu"},
	{ActionMenuUp, "key_menu_up", "Move cursor up"},
	{ActionMenuDown, "key_menu_down", "Move cursor down"},
	{ActionMenuLeft, "key_menu_left", "Move slider left"},
	{ActionMenuRight, "key_menu_right", "Move slider right"},
	{ActionMenuBack, "key_menu_back", "Go to previous menu"},
	{ActionMenuForward, "key_menu_forward", "Activate menu item"},
	{ActionMenuConfirm, "key_menu_confirm", "Confirm action"},
	{ActionMenuAbort, "key_menu_abort", "Cancel action"},

	{ActionPause, "key_pause", "Pause game"},
	{ActionMenuHelp, "key_menu_help", "Help screen"},
	{ActionMenuSave, "key_menu_save", "Save game"},
	{ActionMenuLoad, "key_menu_load", "Load game"},
	{ActionMenuVolume, "key_menu_volume", "Sound volume"},
	{ActionMenuDetail, "key_menu_detail", "Toggle detail"},
	{ActionMenuQuickSave, "key_menu_qsave", "Quick save"},
	{ActionMenuEndGame, "key_menu_endgame", "End game"},
	{ActionMenuMessages, "key_menu_messages", "Toggle messages"},
	{ActionMenuQuickLoad, "key_menu_qload", "Quick load"},
	{ActionMenuQuit, "key_menu_quit", "Quit game"},
	{ActionMenuGamma, "key_menu_gamma", "Toggle gamma"},
	{ActionScreenIncrease, "key_menu_incscreen", "Increase screen size"},
	{ActionScreenDecrease, "key_menu_decscreen", "Decrease screen size"},
	{ActionScreenshot, "key_menu_screenshot", "Save a screenshot"},
	{ActionMessageRefresh, "key_message_refresh", "Display last message"},

	{ActionMapToggle, "key_map_toggle", "Toggle map"},
	{ActionMapZoomIn, "key_map_zoomin", "Zoom in"},
	{ActionMapZoomOut, "key_map_zoomout", "Zoom out"},
	{ActionMapMaxZoom, "key_map_maxzoom", "Maximum zoom out"},
	{ActionMapFollow, "key_map_follow", "Follow mode"},
	{ActionMapNorth, "key_map_north", "Pan north"},
	{ActionMapSouth, "key_map_south", "Pan south"},
	{ActionMapEast, "key_map_east", "Pan east"},
	{ActionMapWest, "key_map_west", "Pan west"},
	{ActionMapGrid, "key_map_grid", "Toggle grid"},
	{ActionMapMark, "key_map_mark", "Mark location"},
	{ActionMapClearMarks, "key_map_clearmark", "Clear all marks"},
}

var actionIndex = func() map[Action]int {
	idx := make(map[Action]int, len(actionInfos))
	for i, info := range actionInfos {
		idx[info.Action] = i
	}
	return idx
}()

// Actions returns every known action in display order.
func Actions() []Action {
	out := make([]Action, len(actionInfos))
	for i, info := range actionInfos {
		out[i] = info.Action
	}
	return out
}

// LookupAction returns the metadata for an action.
func LookupAction(a Action) (ActionInfo, bool) {
	i, ok := actionIndex[a]
	if !ok {
		return ActionInfo{}, false
	}
	return actionInfos[i], true
}

// ParseAction resolves a user supplied action identifier.
// Persistence names ("key_up") are accepted as aliases.
func ParseAction(s string) (Action, error) {
	if _, ok := actionIndex[Action(s)]; ok {
		return Action(s), nil
	}
	for _, info := range actionInfos {
		if info.Name == s {
			return info.Action, nil
		}
	}
	return "", &UnknownError{Kind: ErrUnknownAction, Value: s}
}

// Name returns the persistence key, or the identifier itself when unknown.
func (a Action) Name() string {
	if info, ok := LookupAction(a); ok {
		return info.Name
	}
	return string(a)
}

// Label returns the human readable label.
func (a Action) Label() string {
	if info, ok := LookupAction(a); ok {
		return info.Label
	}
	return string(a)
}

// Valid reports whether the action is part of the compiled-in set.
func (a Action) Valid() bool {
	_, ok := actionIndex[a]
	return ok
}

// Binding pairs an action with its key code.
type Binding struct {
	Action Action
	Code   KeyCode
}
