// Package cmd implements the gtkml CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, dump, check, version).
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "gtkml",
	Short: "gtkml - declarative markup to live widget trees",
	Long: `gtkml builds a widget tree from a markup document, resolving each tag
through a widget module and wiring event attributes to handlers from a
logic unit.

Use "gtkml <command> --help" for more information about a command.`,
	Usage: "gtkml <command> [flags] [path]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version":
		printVersion()
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the gtkml CLI version and the Go toolchain it was built with.",
		Usage: "gtkml version",
		Run: func([]string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	goVersion := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}
	fmt.Printf("gtkml CLI version %s (built %s, %s)\n", Version, BuildTime, goVersion)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Application flags (run, dump, check):")
	fmt.Println("  --widgets DIR        Search DIR for widget modules first")
	fmt.Println("  --assets DIR         Search DIR for images first")
	fmt.Println("  --app-id ID          Override the application id")
	fmt.Println("  --verbose            Print operations, kinds and stack traces")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gtkml run example          Run the bundled example")
	fmt.Println("  gtkml dump ui.gtkm         Print the widget tree of a document")
	fmt.Println("  gtkml check .              Report every diagnostic and fail on warnings")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
