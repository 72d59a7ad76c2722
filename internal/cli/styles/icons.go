package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconChat      = "\uf086" // comments
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right
	IconRocket    = "\uf135" // rocket

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconDesktop  = "\uf108" // desktop
	IconImage    = "\uf1c5" // image file
	IconLogs     = "\uf0f6" // file-text
)
