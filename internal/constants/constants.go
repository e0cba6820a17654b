package constants

import "time"

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.startpage-cli/`
)

const (
	// DefaultRecentLimit is the number of recent documents shown when the
	// user has not configured one.
	DefaultRecentLimit = 10

	// MinRecentLimit is the floor a configured limit is clamped to.
	MinRecentLimit = 1

	// RecencyDecayStep is the synthetic access-time decay applied per rank
	// position in the recently-opened list. The list only carries an
	// order, not timestamps, so each position is treated as one step less
	// recent than the one before it.
	RecencyDecayStep = time.Minute

	// RefreshInterval drives the periodic start page re-render while any
	// displayed document was modified within RefreshWindow.
	RefreshInterval = time.Minute
	RefreshWindow   = 24 * time.Hour

	// RecentlyOpenedCap bounds the persisted recently-opened path list.
	RecentlyOpenedCap = 50
)

const (
	// QuoteFetchTimeout bounds a single daily-quote fetch.
	QuoteFetchTimeout = 5 * time.Second

	QuoteEndpointEN = "http://api.quotable.io/random"
	QuoteEndpointZH = "https://v2.jinrishici.com/one.json?client=browser-sdk/1.2"

	DefaultFooterText = "Every note is a step forward."
)

const Help = `Usage:
	{{if .Runnable}}
		{{.UseLine}}
	{{end}}
	{{if .HasAvailableSubCommands}}
		{{.CommandPath}} [command]
	{{end}}
	{{if gt (len .Aliases) 0}}
  	Aliases:
		{{.NameAndAliases}}
	{{end}}
  {{if .HasExample}}
  Examples:
	{{.Example}}
  {{end}}
  {{if .HasAvailableSubCommands}}
  Available Commands:
	{{range .Commands}}
		{{if (or .IsAvailableCommand (eq .Name "help"))}}
			{{rpad .Name .NamePadding }} {{.Short}}
		{{end}}
	{{end}}
  {{end}}
  {{if .HasAvailableLocalFlags}}
  Flags:
  {{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
  {{end}}
  {{if .HasAvailableInheritedFlags}}
  Global Flags:
  {{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
  {{end}}
  {{if .HasHelpSubCommands}}
  Additional help topics:
	{{range .Commands}}
		{{if .IsAdditionalHelpTopicCommand}}
		{{rpad .CommandPath .CommandPathPadding}} {{.Short}}
		{{end}}
	{{end}}
  {{end}}
  {{if .HasAvailableSubCommands}}
  Use "{{.CommandPath}} [command] --help" for more information about a command.
  {{end}}
  `
