package ensure

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Make sure a file holds exactly the given content"
	MsgFileShort       = "Ensure a file has the given content"
	MsgModuleShort     = "Run as a binary module reading an arguments file"
	MsgConfigShort     = "Print the effective configuration"
	MsgDocsShort       = "Show the module documentation"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionLine = "ensure %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrContentMissing = "content file %s not found"
	MsgErrReadContent    = "failed to read content from %s"
	MsgErrArgsMissing    = "arguments file %s not found"
	MsgErrOpenArgs       = "failed to open arguments file %s"
	MsgErrGenerateConfig = "failed to generate configuration: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagFormat      = "Output format: auto, term, text or json"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/ensure/config.toml)"
	MsgFlagPath        = "Path of the file to manage"
	MsgFlagContent     = "Exact content the file must hold"
	MsgFlagContentFile = "Read the content from a file, - for standard input"
	MsgFlagDefaults    = "Print the annotated built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/file-long.txt
	msgFileLongRaw string
	MsgFileLong    = strings.TrimSpace(msgFileLongRaw)

	//go:embed msgs/file-example.txt
	msgFileExampleRaw string
	MsgFileExample    = strings.TrimRight(msgFileExampleRaw, "\n")

	//go:embed msgs/module-long.txt
	msgModuleLongRaw string
	MsgModuleLong    = strings.TrimSpace(msgModuleLongRaw)

	//go:embed msgs/module-example.txt
	msgModuleExampleRaw string
	MsgModuleExample    = strings.TrimRight(msgModuleExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/docs.md
	MsgDocs string
)
