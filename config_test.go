package rtasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

func TestConfigValidate(t *testing.T) {
	valid := []Config{X64(), X32(), P64(engine.LittleEndian), P32(engine.BigEndian), strict(avx())}
	for _, cfg := range valid {
		assert.NoError(t, cfg.Validate(), cfg.String())
	}

	bigX86 := X64()
	bigX86.Endian = engine.BigEndian
	remX86 := X64()
	remX86.RemNative = true
	badSIMD := P64(engine.BigEndian)
	badSIMD.SIMD = 16
	for _, cfg := range []Config{{}, bigX86, remX86, badSIMD} {
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrUnsupported, cfg.String())
	}
}

func TestConfigString(t *testing.T) {
	cfg := P64(engine.BigEndian)
	cfg.RemNative = true
	assert.Equal(t, "power 64-bit pointers, big-endian simd=2 rem-native=true strict=false", cfg.String())
	assert.Equal(t, "p64", cfg.Platform().String())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("RTASM_ARCH", "p32be")
	t.Setenv("RT_128X1", "4")
	t.Setenv("RT_BASE_COMPAT_REM", "1")
	t.Setenv("RTASM_STRICT", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, engine.ArchPower, cfg.Arch)
	assert.Equal(t, engine.P32, cfg.Pointer)
	assert.Equal(t, engine.BigEndian, cfg.Endian)
	assert.Equal(t, SIMD4, cfg.SIMD)
	assert.True(t, cfg.RemNative)
	assert.True(t, cfg.Strict)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("RTASM_ARCH", "x64")
	t.Setenv("RT_P32", "1")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, X32().Platform(), cfg.Platform())
	assert.False(t, cfg.RemNative)

	t.Setenv("RTASM_ARCH", "p64")
	t.Setenv("RT_P32", "")
	t.Setenv("RT_ENDIAN", "big")
	cfg, err = ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, P64(engine.BigEndian).Platform(), cfg.Platform())
}

func TestConfigFromEnvSeesLaterChanges(t *testing.T) {
	// VerboseMode already read the environment when the package was loaded
	t.Setenv("RTASM_ARCH", "x64")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, engine.ArchX86_64, cfg.Arch)
	assert.False(t, cfg.Strict)

	t.Setenv("RTASM_ARCH", "p64le")
	t.Setenv("RTASM_STRICT", "1")
	cfg, err = ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, engine.ArchPower, cfg.Arch)
	assert.Equal(t, engine.LittleEndian, cfg.Endian)
	assert.True(t, cfg.Strict)
}

func TestConfigFromEnvErrors(t *testing.T) {
	t.Setenv("RTASM_ARCH", "sparc")
	_, err := ConfigFromEnv()
	assert.Error(t, err)

	t.Setenv("RTASM_ARCH", "x64")
	t.Setenv("RT_128X1", "3")
	_, err = ConfigFromEnv()
	assert.ErrorIs(t, err, ErrUnsupported)

	t.Setenv("RT_128X1", "1")
	t.Setenv("RT_BASE_COMPAT_REM", "true")
	_, err = ConfigFromEnv()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestHostConfigIsValid(t *testing.T) {
	assert.NoError(t, HostConfig().Validate())
}
