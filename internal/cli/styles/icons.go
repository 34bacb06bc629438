package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFile     = "\uf15b" // file

	IconKeyboard  = "\uf11c" // keyboard
	IconToggleOn  = "\uf205" // toggle-on
	IconToggleOff = "\uf204" // toggle-off
	IconUndo      = "\uf0e2" // rotate-left
	IconEye       = "\uf06e" // eye
)
