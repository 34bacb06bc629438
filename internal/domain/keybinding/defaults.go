package keybinding

import "github.com/bnema/keysetup/internal/domain/entity"

// DefaultGroups returns the four reference exclusivity groups.
func DefaultGroups() []entity.Group {
	return []entity.Group{
		{
			ID:    entity.GroupControls,
			Label: "Movement",
			Actions: []entity.Action{
				entity.ActionTurnLeft, entity.ActionTurnRight,
				entity.ActionMoveForward, entity.ActionMoveBackward,
				entity.ActionToggleAutorun, entity.ActionToggleCrosshair, entity.ActionToggleMouseLook,
				entity.ActionStrafeLeft, entity.ActionStrafeRight,
				entity.ActionFire, entity.ActionUse, entity.ActionStrafe, entity.ActionSpeed,
				entity.ActionPause,
				entity.ActionWeapon1, entity.ActionWeapon2, entity.ActionWeapon3, entity.ActionWeapon4,
				entity.ActionWeapon5, entity.ActionWeapon6, entity.ActionWeapon7, entity.ActionWeapon8,
				entity.ActionPrevWeapon, entity.ActionNextWeapon,
			},
		},
		{
			ID:    entity.GroupMenuNav,
			Label: "Menu navigation",
			Actions: []entity.Action{
				entity.ActionMenuActivate, entity.ActionMenuUp, entity.ActionMenuDown,
				entity.ActionMenuLeft, entity.ActionMenuRight, entity.ActionMenuBack,
				entity.ActionMenuForward,
			},
		},
		{
			ID:    entity.GroupShortcuts,
			Label: "Shortcut keys",
			Actions: []entity.Action{
				entity.ActionMenuHelp, entity.ActionMenuSave, entity.ActionMenuLoad,
				entity.ActionMenuVolume, entity.ActionMenuDetail, entity.ActionMenuQuickSave,
				entity.ActionMenuEndGame, entity.ActionMenuMessages,
				entity.ActionMenuQuickLoad, entity.ActionMenuQuit, entity.ActionMenuGamma,
				entity.ActionScreenIncrease, entity.ActionScreenDecrease,
				entity.ActionScreenshot,
				entity.ActionMessageRefresh,
			},
		},
		{
			ID:    entity.GroupMap,
			Label: "Map",
			Actions: []entity.Action{
				entity.ActionMapNorth, entity.ActionMapSouth, entity.ActionMapEast,
				entity.ActionMapWest, entity.ActionMapZoomIn, entity.ActionMapZoomOut,
				entity.ActionMapToggle, entity.ActionMapMaxZoom, entity.ActionMapFollow,
				entity.ActionMapGrid, entity.ActionMapMark, entity.ActionMapClearMarks,
			},
		},
	}
}

// DefaultRegistry returns a registry of DefaultGroups.
func DefaultRegistry() *Registry {
	return MustNewRegistry(DefaultGroups()...)
}

// DefaultBindings returns the compiled-in key for every action, in display order.
func DefaultBindings() []entity.Binding {
	defaults := map[entity.Action]entity.KeyCode{
		entity.ActionMoveForward:     entity.KeyUpArrow,
		entity.ActionMoveBackward:    entity.KeyDownArrow,
		entity.ActionTurnLeft:        entity.KeyLeftArrow,
		entity.ActionTurnRight:       entity.KeyRightArrow,
		entity.ActionStrafeLeft:      ',',
		entity.ActionStrafeRight:     '.',
		entity.ActionFire:            entity.KeyRCtrl,
		entity.ActionUse:             entity.KeySpace,
		entity.ActionStrafe:          entity.KeyRAlt,
		entity.ActionSpeed:           entity.KeyRShift,
		entity.ActionPause:           entity.KeyPause,
		entity.ActionToggleAutorun:   entity.KeyCapsLock,
		entity.ActionToggleCrosshair: entity.KeyUnbound,
		entity.ActionToggleMouseLook: entity.KeyUnbound,
		entity.ActionWeapon1:         '1',
		entity.ActionWeapon2:         '2',
		entity.ActionWeapon3:         '3',
		entity.ActionWeapon4:         '4',
		entity.ActionWeapon5:         '5',
		entity.ActionWeapon6:         '6',
		entity.ActionWeapon7:         '7',
		entity.ActionWeapon8:         '8',
		entity.ActionPrevWeapon:      entity.KeyUnbound,
		entity.ActionNextWeapon:      entity.KeyUnbound,

		entity.ActionMenuActivate: entity.KeyEscape,
		entity.ActionMenuUp:       entity.KeyUpArrow,
		entity.ActionMenuDown:     entity.KeyDownArrow,
		entity.ActionMenuLeft:     entity.KeyLeftArrow,
		entity.ActionMenuRight:    entity.KeyRightArrow,
		entity.ActionMenuBack:     entity.KeyBackspace,
		entity.ActionMenuForward:  entity.KeyEnter,
		entity.ActionMenuConfirm:  'y',
		entity.ActionMenuAbort:    'n',

		entity.ActionMenuHelp:       entity.KeyF1,
		entity.ActionMenuSave:       entity.KeyF2,
		entity.ActionMenuLoad:       entity.KeyF3,
		entity.ActionMenuVolume:     entity.KeyF4,
		entity.ActionMenuDetail:     entity.KeyF5,
		entity.ActionMenuQuickSave:  entity.KeyF6,
		entity.ActionMenuEndGame:    entity.KeyF7,
		entity.ActionMenuMessages:   entity.KeyF8,
		entity.ActionMenuQuickLoad:  entity.KeyF9,
		entity.ActionMenuQuit:       entity.KeyF10,
		entity.ActionMenuGamma:      entity.KeyF11,
		entity.ActionScreenIncrease: entity.KeyEquals,
		entity.ActionScreenDecrease: entity.KeyMinus,
		entity.ActionScreenshot:     entity.KeyUnbound,
		entity.ActionMessageRefresh: entity.KeyEnter,

		entity.ActionMapNorth:      entity.KeyUpArrow,
		entity.ActionMapSouth:      entity.KeyDownArrow,
		entity.ActionMapEast:       entity.KeyRightArrow,
		entity.ActionMapWest:       entity.KeyLeftArrow,
		entity.ActionMapZoomIn:     entity.KeyEquals,
		entity.ActionMapZoomOut:    entity.KeyMinus,
		entity.ActionMapToggle:     entity.KeyTab,
		entity.ActionMapMaxZoom:    '0',
		entity.ActionMapFollow:     'f',
		entity.ActionMapGrid:       'g',
		entity.ActionMapMark:       'm',
		entity.ActionMapClearMarks: 'c',
	}

	actions := entity.Actions()
	out := make([]entity.Binding, len(actions))
	for i, a := range actions {
		out[i] = entity.Binding{Action: a, Code: defaults[a]}
	}
	return out
}
