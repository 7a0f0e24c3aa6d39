package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/notoize"
	"github.com/npillmayer/notoize/catalog"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'noto.resolve'
func tracer() tracing.Trace {
	return tracing.Select("noto.resolve")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.noto.resolve": "Info",
		"trace.noto.uscript": "Info",
		"trace.noto.catalog": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	serif := flag.Bool("serif", false, "Prefer serif faces")
	math := flag.Bool("math", false, "Prefer the math font for dual Math/Symbols characters")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Noto font-stack CLI")
	//
	// set up REPL
	repl, err := readline.New("noto > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	config := notoize.NewSans()
	if *serif {
		config = notoize.PreferSerif()
	}
	config.PreferMath = *math
	intp := &Intp{repl: repl, config: config}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	config notoize.Config
	result *notoize.Result
}

func (intp *Intp) String() string {
	if intp == nil || intp.result == nil {
		return fmt.Sprintf("( style=%s math=%v )", intp.config.Style, intp.config.PreferMath)
	}
	return fmt.Sprintf("( style=%s math=%v fonts=%d )",
		intp.config.Style, intp.config.PreferMath, len(intp.result.Fonts))
}

// REPL starts interactive mode. A line starting with a known command word is
// executed as a command, everything else is resolved as text.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (error, bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	switch strings.ToLower(cmd) {
	case "quit":
		return nil, true
	case "help":
		return helpOp(), false
	case "serif":
		intp.config.Style = catalog.PreferSerif
		intp.result = nil // resolved under the old preference
		return nil, false
	case "sans":
		intp.config.Style = catalog.PreferSans
		intp.result = nil
		return nil, false
	case "math":
		intp.config.PreferMath = !intp.config.PreferMath
		intp.result = nil
		return nil, false
	case "files":
		return intp.filesOp(), false
	case "map":
		return intp.mapOp(), false
	case "missing":
		return intp.missingOp(), false
	case "stack":
		line = arg
	}
	return intp.stackOp(line), false
}

func helpOp() error {
	pterm.Println("stack <text>   resolve the font stack for <text> (default for plain text)")
	pterm.Println("files          show file names of the last resolved stack")
	pterm.Println("map            show which font each codepoint resolved to")
	pterm.Println("missing        show uncovered variants of the touched scripts")
	pterm.Println("sans | serif   switch the global style preference")
	pterm.Println("math           toggle the Math/Symbols preference")
	pterm.Println("quit           exit")
	return nil
}
