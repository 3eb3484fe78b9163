// Package main is the entry point for the sci2fb CLI
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sierrafm/sci2fb/pkg/api"
	"github.com/sierrafm/sci2fb/pkg/converter"
	"github.com/sierrafm/sci2fb/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile  string
	outputFile2 string
	labelHint   string
	force       bool
	serverPort  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sci2fb",
	Short: "Convert Sierra SCI0 patch resources to Yamaha FB-01 SysEx banks",
	Long: `sci2fb converts a Sierra SCI0 patch resource containing Yamaha FB-01
voice data into SysEx bank files loadable by the FB-01 tone generator.

A patch resource carries one bank (48 voices) or two banks (96 voices);
sci2fb emits one .syx file per bank.

Examples:
  sci2fb convert patch.002
  sci2fb convert sound.pat -o castle.syx --label CASTLE
  sci2fb info patch.002
  sci2fb tui
  sci2fb serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var convertCmd = &cobra.Command{
	Use:   "convert <patchfile>",
	Short: "Convert a patch resource to FB-01 bank file(s)",
	Long: `Converts an SCI0 FB-01 patch resource into one or two SysEx bank files.
If the input path does not exist as given, the .pat and .002 extensions
are tried. Output names default to <input>.syx and <input>2.syx.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var infoCmd = &cobra.Command{
	Use:   "info <patchfile>",
	Short: "Show the shape of a patch resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Bank A output path (default <input>.syx)")
	convertCmd.Flags().StringVar(&outputFile2, "output2", "", "Bank B output path (default <input>2.syx)")
	convertCmd.Flags().StringVarP(&labelHint, "label", "l", "", "Bank label shown on the FB-01 (default from output name)")
	convertCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing output files without asking")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, err := converter.ResolveInputPath(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	shape, err := converter.Identify(data)
	if err != nil {
		return err
	}
	fmt.Printf("SCI patch resource detected: %s\n", shape)

	outA := outputFile
	if outA == "" {
		outA = converter.DefaultOutputPath(input, 1)
	}
	outB := outputFile2
	if shape == converter.ShapeDoubleBank && outB == "" {
		outB = converter.DefaultOutputPath(input, 2)
	}

	targets := []string{outA}
	if shape == converter.ShapeDoubleBank {
		targets = append(targets, outB)
	}
	for _, target := range targets {
		if err := confirmOverwrite(target); err != nil {
			return err
		}
	}

	paths, err := converter.ConvertFile(input, outA, outB, labelHint)
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	fmt.Println("FB-01 sysex bank(s) created successfully!")
	return nil
}

// confirmOverwrite asks before clobbering an existing output file unless
// --force was given
func confirmOverwrite(path string) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	fmt.Printf("Output file %s already exists. Overwrite? (y/N): ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("aborted: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		return fmt.Errorf("aborted: %s not overwritten", path)
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	input, err := converter.ResolveInputPath(args[0])
	if err != nil {
		return err
	}

	patch, err := converter.ParsePatchFile(input)
	if err != nil {
		return err
	}

	fmt.Printf("File:         %s\n", input)
	fmt.Printf("Shape:        %s\n", patch.Shape)
	fmt.Printf("Title length: %d\n", patch.TitleLength)
	if patch.TitleLength > 0 {
		fmt.Printf("Title:        %q\n", patch.Title)
	}
	fmt.Printf("Voices:       %d\n", len(patch.Voices))
	fmt.Printf("Output banks: %d x %d bytes\n", patch.Shape.Banks(), converter.BankStreamSize)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
