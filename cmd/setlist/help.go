package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: setlist <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  annotate    Normalize entry times and add stream deep links")
	fmt.Fprintln(w, "  preview     Render the setlist to an HTML page")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'setlist help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default setlist.yaml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every rewritten entry")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SETLIST_CONFIG, SETLIST_DOCUMENT, SETLIST_STYLE, SETLIST_OUTPUT,")
	fmt.Fprintln(w, "  SETLIST_ENGINE, SETLIST_LOG_LEVEL, SETLIST_LOG_FORMAT (also read from .env)")
}

// printAnnotateUsage prints usage for the annotate command.
func printAnnotateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: setlist annotate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite every setlist entry as \"1. hh:mm:ss [title](url&t=Ns)\" using the")
	fmt.Fprintln(w, "stream link of its \"## \" section heading. Running it again changes nothing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -d, --document <path>     Setlist document (default README.md)")
	fmt.Fprintln(w, "      --dry-run             Show changes without writing")
	fmt.Fprintln(w, "      --on-malformed <s>    Unreadable entries: skip (default), abort")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Backup:")
	fmt.Fprintln(w, "      --no-backup           Do not keep a copy of the original")
	fmt.Fprintln(w, "      --backup-stamp <s>    Timestamp in backup name (default YYYYMMDD-HHmmss)")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MM, DD, HH, mm, ss")
	fmt.Fprintln(w, "                            \"\" names the copy README-backup.md")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: setlist preview [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the setlist document to a standalone HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -d, --document <path>     Setlist document (default README.md)")
	fmt.Fprintln(w, "  -o, --output <path>       HTML file (default preview.html)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --style <ref>         Stylesheet path or embedded style name")
	fmt.Fprintln(w, "                            (default assets/css/style.css, missing = unstyled)")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: builtin, goldmark")
	fmt.Fprintln(w, "      --title <s>           Page title")
	fmt.Fprintln(w, "      --lang <s>            Page lang attribute (default ja)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: setlist config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying the config file and environment.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "annotate":
		printAnnotateUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: setlist version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: setlist help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
