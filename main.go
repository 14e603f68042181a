// tagpad: type one tab-delimited line, get a well-formed tag on the
// clipboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"tagpad/internal/markup"
	appTUI "tagpad/internal/tui"
)

const Version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		cmdRun(nil)
		return
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "-v", "--version":
		fmt.Println("tagpad", Version)
	case "run":
		cmdRun(os.Args[2:])
	case "gen":
		cmdGen(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Print(`tagpad ` + Version + `
Tab-to-tag compiler: a single line of tab-delimited text becomes a
well-formed tag, with full undo/redo while you type.
USAGE
  tagpad [command] [options]
COMMANDS
  run          Interactive editor (default when no command is given)
  gen          One-shot: compile arguments to a tag and print it
  help         Show help (try: tagpad help gen)
  version      Print version
NOTES
  • Inside the editor, Tab separates fields: the first field is the
    tag name, then name/value pairs. An empty value makes the
    attribute boolean. Enter copies the compact form and exits.

`)
}

func helpTopic(name string) {
	switch name {
	case "run":
		fmt.Print(`USAGE
  tagpad run [--self-closing]
DESCRIPTION
  Opens the interactive editor. Keys:
    tab      next field (inserts the delimiter)
    enter    copy the compact form to the clipboard and exit
    ctrl+z   undo        ctrl+y   redo
    ctrl+t   toggle self-closing mode
    ctrl+v   paste clipboard text into the line
    ctrl+d   toggle the last-change line
    esc      exit without copying
OPTIONS
  --self-closing   Start in self-closing mode (<tag ... />)

`)
	case "gen":
		fmt.Print(`USAGE
  tagpad gen [--self-closing] [--copy] [--display] TOKEN...
DESCRIPTION
  Joins the TOKENs with tabs, compiles them, and prints the compact
  form. The first token is the tag name; each following token is an
  attribute name, optionally followed by a value token. An empty
  token ("") after a name makes that attribute boolean.
OPTIONS
  --self-closing   Render <tag ... /> instead of a closing tag
  --copy           Also place the compact form on the clipboard
  --display        Print the word-wrapped display form instead
EXAMPLES
  tagpad gen moin                      → <moin>…</moin>
  tagpad gen div class container      → <div class="container">…</div>
  tagpad gen div class "" id "" hidden → <div class id hidden>…</div>

`)
	default:
		usage()
	}
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	fs.Usage = func() { helpTopic("run") }
	selfClosing := fs.Bool("self-closing", false, "Start in self-closing mode")
	_ = fs.Parse(args)

	mode := markup.Regular
	if *selfClosing {
		mode = markup.SelfClosing
	}
	res, err := appTUI.Run(mode)
	if err != nil {
		fmt.Println("tagpad:", err)
		os.Exit(1)
	}
	if res.Copied {
		fmt.Println("Copied to clipboard:")
		fmt.Println(res.Compact)
	}
}

func cmdGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	fs.Usage = func() { helpTopic("gen") }
	selfClosing := fs.Bool("self-closing", false, "Render a self-closing tag")
	copyOut := fs.Bool("copy", false, "Also copy the compact form to the clipboard")
	display := fs.Bool("display", false, "Print the display form instead of the compact form")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		helpTopic("gen")
		os.Exit(2)
	}

	mode := markup.Regular
	if *selfClosing {
		mode = markup.SelfClosing
	}
	raw := strings.Join(fs.Args(), "\t")
	out := markup.Compile([]byte(raw), mode)

	if *display {
		fmt.Println(out.Display)
	} else {
		fmt.Println(out.Compact)
	}
	if *copyOut {
		if err := clipboard.WriteAll(out.Compact); err != nil {
			fmt.Println("tagpad: clipboard:", err)
			os.Exit(1)
		}
	}
}
