package core

// Action is a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Move the cursor up
	ActionDown              // Move the cursor down
	ActionLeft              // Move the cursor left
	ActionRight             // Move the cursor right
	ActionSelect            // Pick up the piece under the cursor, or move it there
	ActionCancel            // Drop the current selection
	ActionRotateCW          // Rotate the selected piece clockwise
	ActionRotateCCW         // Rotate the selected piece counter-clockwise
	ActionFireRock          // Fire a slingshot
	ActionFireFire          // Obelisk projectiles, in projectile order
	ActionFireWater
	ActionFireRoot
	ActionFireShield
	ActionFireStun
	ActionFireHeal
	ActionReload     // Restart the board from its starting layout
	ActionSaveReplay // Write the actions played so far as a script
	ActionHelp       // Toggle the full help view
	ActionQuit       // Leave the game
)

var actionNames = map[Action]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionSelect:     "Select",
	ActionCancel:     "Cancel",
	ActionRotateCW:   "RotateCW",
	ActionRotateCCW:  "RotateCCW",
	ActionFireRock:   "FireRock",
	ActionFireFire:   "FireFire",
	ActionFireWater:  "FireWater",
	ActionFireRoot:   "FireRoot",
	ActionFireShield: "FireShield",
	ActionFireStun:   "FireStun",
	ActionFireHeal:   "FireHeal",
	ActionReload:     "Reload",
	ActionSaveReplay: "SaveReplay",
	ActionHelp:       "Help",
	ActionQuit:       "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsFire reports whether the action fires a projectile.
func (a Action) IsFire() bool {
	return a >= ActionFireRock && a <= ActionFireHeal
}

// FireIndex returns the projectile ordinal fired by a fire action:
// 0 for rock, 1 for fire and so on. It returns -1 for other actions.
func (a Action) FireIndex() int {
	if !a.IsFire() {
		return -1
	}
	return int(a - ActionFireRock)
}

// Delta returns the cursor offset of a movement action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	}
	return 0, 0
}
