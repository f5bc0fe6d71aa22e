// rtasm encodes programs written in the portable macro vocabulary into
// x86_64 or POWER machine code.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	rtasm "github.com/VectorChief/UniSIMD-assembler-sub003"
	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

var Version = "dev"

// dump prints struct fields even for types that implement fmt.Stringer.
var dump = spew.ConfigState{Indent: " ", DisableMethods: true}

// profileFlags are shared by every subcommand that needs a target profile.
type profileFlags struct {
	arch      string
	p32       bool
	endian    string
	simd      int
	strict    bool
	remNative bool
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.arch, "arch", "", "target profile: x64, x32, p64, p64le, p32, ... (default from RTASM_ARCH or host)")
	cmd.Flags().BoolVar(&f.p32, "p32", false, "32-bit pointers (RT_P32)")
	cmd.Flags().StringVar(&f.endian, "endian", "", "POWER instruction byte order: little or big (RT_ENDIAN)")
	cmd.Flags().IntVar(&f.simd, "simd", 0, "SIMD level 1, 2, 4 or 8 (RT_128X1)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "check ranges and operand preconditions")
	cmd.Flags().BoolVar(&f.remNative, "rem-native", false, "use POWER ISA 3.0 mod instructions (RT_BASE_COMPAT_REM)")
}

// resolve starts from the environment and applies the flags that were set.
func (f *profileFlags) resolve(cmd *cobra.Command) (rtasm.Config, error) {
	cfg, err := rtasm.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("arch") {
		p, err := engine.ParsePlatform(f.arch)
		if err != nil {
			return cfg, err
		}
		cfg.Arch, cfg.Pointer, cfg.Endian = p.Arch, p.Pointer, p.Endian
		if cfg.Arch == engine.ArchX86_64 {
			cfg.RemNative = false
		}
	}
	if f.p32 {
		cfg.Pointer = engine.P32
	}
	if cmd.Flags().Changed("endian") {
		if cfg.Endian, err = engine.ParseEndian(f.endian); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("simd") {
		cfg.SIMD = f.simd
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = f.strict
	}
	if cmd.Flags().Changed("rem-native") {
		cfg.RemNative = f.remNative
	}
	return cfg, cfg.Validate()
}

func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

// hexDump prints bytes for x86 and whole instruction words for POWER.
func hexDump(w io.Writer, cfg rtasm.Config, code []byte) {
	if cfg.Arch == engine.ArchPower {
		var order binary.ByteOrder = binary.LittleEndian
		if cfg.Endian == engine.BigEndian {
			order = binary.BigEndian
		}
		for i := 0; i+4 <= len(code); i += 4 {
			fmt.Fprintf(w, "%08x\n", order.Uint32(code[i:]))
		}
		return
	}
	for i := 0; i < len(code); i += 16 {
		end := min(i+16, len(code))
		parts := make([]string, 0, 16)
		for _, b := range code[i:end] {
			parts = append(parts, fmt.Sprintf("%02x", b))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "rtasm",
		Short:   "Portable BASE/SIMD instruction encoder for x86_64 and POWER",
		Version: Version,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		encodeFlags profileFlags
		disasm      bool
		verbose     bool
	)
	var encodeCmd = &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Encode a program and print the machine code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := encodeFlags.resolve(cmd)
			if err != nil {
				return err
			}
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			if verbose {
				rtasm.VerboseMode = true
			}
			o := rtasm.NewOut(cfg)
			if err := o.EmitAll(src); err != nil {
				return err
			}
			if err := o.Finish(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !disasm {
				hexDump(out, cfg, o.Bytes())
				return nil
			}
			lines, err := rtasm.Disassemble(cfg, o.Bytes())
			if err != nil {
				return err
			}
			fmt.Fprint(out, rtasm.Listing(lines))
			return nil
		},
	}
	encodeFlags.register(encodeCmd)
	encodeCmd.Flags().BoolVar(&disasm, "disasm", false, "print a disassembly listing instead of hex")
	encodeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every instruction to stderr (RTASM_VERBOSE)")

	var regsFlags profileFlags
	var regsCmd = &cobra.Command{
		Use:   "regs",
		Short: "List the register and scratch mappings of a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := regsFlags.resolve(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", cfg.Platform().FullString())
			for _, name := range rtasm.RegNames() {
				r, _ := rtasm.LookupReg(name)
				fmt.Fprintf(out, "  %-6s %d\n", name, rtasm.HardwareReg(cfg.Arch, r))
			}
			fmt.Fprintf(out, "scratch:\n%s", dump.Sdump(rtasm.ScratchFor(cfg.Arch)))
			return nil
		},
	}
	regsFlags.register(regsCmd)

	var configFlags profileFlags
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Dump the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFlags.resolve(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg)
			fmt.Fprint(cmd.OutOrStdout(), dump.Sdump(cfg))
			return nil
		},
	}
	configFlags.register(configCmd)

	var mnemonicsCmd = &cobra.Command{
		Use:   "mnemonics [prefix]",
		Short: "List the accepted mnemonics",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range rtasm.Mnemonics() {
				if len(args) == 0 || strings.HasPrefix(m, args[0]) {
					fmt.Fprintln(cmd.OutOrStdout(), m)
				}
			}
		},
	}

	rootCmd.AddCommand(encodeCmd, regsCmd, configCmd, mnemonicsCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
