package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodePowerWords(t *testing.T) {
	out, err := run(t, "addwx_ri(Reax, IB(5))\n", "encode", "--arch", "p32be")
	require.NoError(t, err)
	assert.Equal(t, "3b400005\n7c84d214\n", out)
}

func TestEncodeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.s")
	require.NoError(t, os.WriteFile(path, []byte("cmpwx_ri(Recx, IC(0))\njeqxx_lb(lb)\nlb:\n"), 0o644))
	out, err := run(t, "", "encode", "--arch", "p64", path)
	require.NoError(t, err)
	assert.Equal(t, "7cb807b4\n3b200000\n7c38c840\n41820004\n", out)
}

func TestEncodeX86Disasm(t *testing.T) {
	out, err := run(t, "addzx_rr(Reax, Recx)", "encode", "--arch", "x64", "--disasm")
	require.NoError(t, err)
	assert.Contains(t, out, "add %rcx,%rax")
}

func TestEncodeReportsLine(t *testing.T) {
	_, err := run(t, "addwx_rr(Reax, Recx)\naddwx_ri(Reax, Recx)\n", "encode", "--arch", "x64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEncodeStrictFlag(t *testing.T) {
	_, err := run(t, "divwx_rr(Reax, Resi)", "encode", "--arch", "x64")
	assert.NoError(t, err)
	_, err = run(t, "divwx_rr(Reax, Resi)", "encode", "--arch", "x64", "--strict")
	assert.Error(t, err)
}

func TestBadProfile(t *testing.T) {
	_, err := run(t, "", "config", "--arch", "mips")
	assert.Error(t, err)
	_, err = run(t, "", "config", "--arch", "x64", "--simd", "3")
	assert.Error(t, err)
}

func TestRegsCommand(t *testing.T) {
	out, err := run(t, "", "regs", "--arch", "p64")
	require.NoError(t, err)
	assert.Contains(t, out, "Reax   4")
	assert.Contains(t, out, "TmmM")
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "config", "--arch", "p64be", "--rem-native")
	require.NoError(t, err)
	assert.Contains(t, out, "big-endian")
	assert.Contains(t, out, "RemNative: (bool) true")
	assert.Contains(t, out, "Strict: (bool) false")
	assert.Contains(t, out, "SIMD: (int) ")
}

func TestMnemonicsCommand(t *testing.T) {
	out, err := run(t, "", "mnemonics", "stack_")
	require.NoError(t, err)
	assert.Equal(t, "stack_la\nstack_ld\nstack_sa\nstack_st\n", out)
}
