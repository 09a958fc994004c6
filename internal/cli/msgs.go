package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render SVG documents from a compact tag-tree syntax"
	MsgRenderShort     = "Render a document"
	MsgTreeShort       = "Print the node tree of a document"
	MsgSyntaxShort     = "Show the authoring syntax guide"
	MsgGenConfigShort  = "Generate a starter configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgRendered      = "<Success>rendered</Success> <Path>%s</Path> <Muted>(%s, %s syntax, %s)</Muted>"
	MsgWatching      = "<Info>watching</Info> <Path>%s</Path> <Muted>(ctrl-c to stop)</Muted>"
	MsgRenderFailed  = "<Error>render failed:</Error> %s"
	MsgConfigWritten = "<Success>wrote</Success> <Path>%s</Path>"
	MsgConfigSkipped = "<Warning>kept existing</Warning> <Path>%s</Path>"
	MsgManWritten    = "<Success>wrote man pages to</Success> <Path>%s</Path>"
	MsgError         = "<Error>Error:</Error> %s"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Message and tree format (auto, term, text, json)"
	MsgFlagOutput   = "Write to this file instead of stdout"
	MsgFlagData     = "Data file (YAML, TOML or JSON) merged into the variables (repeatable)"
	MsgFlagSet      = "Set a variable, key=value with dotted keys (repeatable)"
	MsgFlagMarkdown = "Markdown block available as {name} and @name; given as name=file (repeatable)"
	MsgFlagSyntax   = "Source syntax (auto, macro, xml)"
	MsgFlagCheck    = "Fail unless the output parses as XML"
	MsgFlagWatch    = "Render again whenever an input changes"
	MsgFlagWrite    = "Write config to file(s) instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/tree-long.txt
	msgTreeLongRaw string
	MsgTreeLong    = strings.TrimSpace(msgTreeLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
