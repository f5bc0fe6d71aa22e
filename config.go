package rtasm

import (
	"fmt"
	"runtime"

	"github.com/xyproto/env/v2"
	"golang.org/x/sys/cpu"

	"github.com/VectorChief/UniSIMD-assembler-sub003/internal/engine"
)

// SIMD levels accepted by Config.SIMD (RT_128X1).
//
//	x86_64: 1 = SSE2, 2 = SSE4.1, 4 = AVX (VEX.128), 8 = AVX2 (VEX.128)
//	POWER:  1, 2 = VSX (POWER7), 4, 8 = VSX with POWER8 integer ops
const (
	SIMD1 = 1
	SIMD2 = 2
	SIMD4 = 4
	SIMD8 = 8
)

// Config is the closed set of build switches an Out is created with.
// It is resolved once, before any instruction is encoded.
type Config struct {
	Arch    engine.Arch
	Pointer engine.Pointer
	Endian  engine.Endian

	// SIMD is the RT_128X1 level, see the SIMD1..SIMD8 constants.
	SIMD int

	// RemNative selects ISA 3.0 mod* instructions on POWER (RT_BASE_COMPAT_REM)
	// instead of the divide, multiply, subtract sequence.
	RemNative bool

	// Strict turns on range and precondition checks before emission.
	Strict bool
}

// X64 returns the x86_64 profile with 64-bit pointers and SSE2.
func X64() Config {
	return Config{Arch: engine.ArchX86_64, Pointer: engine.P64, SIMD: SIMD1}
}

// X32 returns the x86_64 profile with 32-bit pointers (address-size prefixed).
func X32() Config {
	return Config{Arch: engine.ArchX86_64, Pointer: engine.P32, SIMD: SIMD1}
}

// P64 returns the 64-bit POWER profile in the given byte order.
func P64(e engine.Endian) Config {
	return Config{Arch: engine.ArchPower, Pointer: engine.P64, Endian: e, SIMD: SIMD2}
}

// P32 returns the 32-bit POWER profile in the given byte order.
func P32(e engine.Endian) Config {
	return Config{Arch: engine.ArchPower, Pointer: engine.P32, Endian: e, SIMD: SIMD2}
}

// Platform returns the architecture, pointer width and byte order triple.
func (c Config) Platform() engine.Platform {
	return engine.Platform{Arch: c.Arch, Pointer: c.Pointer, Endian: c.Endian}
}

func (c Config) String() string {
	return fmt.Sprintf("%s simd=%d rem-native=%t strict=%t", c.Platform().FullString(), c.SIMD, c.RemNative, c.Strict)
}

// Validate rejects combinations no backend can encode.
func (c Config) Validate() error {
	switch c.Arch {
	case engine.ArchX86_64, engine.ArchPower:
	default:
		return newError(CategoryUnsupported, "config", ErrUnsupported, "unknown architecture %v", c.Arch)
	}
	switch c.SIMD {
	case SIMD1, SIMD2, SIMD4, SIMD8:
	default:
		return newError(CategoryUnsupported, "config", ErrUnsupported, "RT_128X1 must be 1, 2, 4 or 8, got %d", c.SIMD)
	}
	if c.Arch == engine.ArchX86_64 && c.Endian == engine.BigEndian {
		return newError(CategoryUnsupported, "config", ErrUnsupported, "x86_64 is little-endian only")
	}
	if c.Arch == engine.ArchX86_64 && c.RemNative {
		return newError(CategoryUnsupported, "config", ErrUnsupported, "RT_BASE_COMPAT_REM applies to POWER only")
	}
	return nil
}

// ConfigFromEnv builds a Config from the same switches the headers take:
// RTASM_ARCH (x32, x64, p32, p64, p64le, ...), RT_P32, RT_ENDIAN, RT_128X1,
// RT_BASE_COMPAT_REM and RTASM_STRICT. Unset variables keep the host defaults.
// The environment is re-read on every call.
func ConfigFromEnv() (Config, error) {
	env.Load()
	cfg := HostConfig()
	if env.Has("RTASM_ARCH") {
		p, err := engine.ParsePlatform(env.Str("RTASM_ARCH"))
		if err != nil {
			return Config{}, err
		}
		cfg.Arch, cfg.Pointer, cfg.Endian = p.Arch, p.Pointer, p.Endian
		if cfg.Arch == engine.ArchX86_64 {
			cfg.RemNative = false
		}
	}
	if env.Bool("RT_P32") {
		cfg.Pointer = engine.P32
	}
	if env.Has("RT_ENDIAN") {
		e, err := engine.ParseEndian(env.Str("RT_ENDIAN"))
		if err != nil {
			return Config{}, err
		}
		cfg.Endian = e
	}
	cfg.SIMD = env.Int("RT_128X1", cfg.SIMD)
	if env.Has("RT_BASE_COMPAT_REM") {
		cfg.RemNative = env.Bool("RT_BASE_COMPAT_REM")
	}
	cfg.Strict = env.Bool("RTASM_STRICT")
	return cfg, cfg.Validate()
}

// HostConfig returns the profile matching the running machine. Feature probing only
// fills the config, encoders never look at the host.
func HostConfig() Config {
	switch runtime.GOARCH {
	case "ppc64", "ppc64le":
		cfg := P64(engine.LittleEndian)
		if runtime.GOARCH == "ppc64" {
			cfg.Endian = engine.BigEndian
		}
		if cpu.PPC64.IsPOWER8 {
			cfg.SIMD = SIMD4
		}
		cfg.RemNative = cpu.PPC64.IsPOWER9
		return cfg
	default:
		cfg := X64()
		switch {
		case cpu.X86.HasAVX2:
			cfg.SIMD = SIMD8
		case cpu.X86.HasAVX:
			cfg.SIMD = SIMD4
		case cpu.X86.HasSSE41:
			cfg.SIMD = SIMD2
		}
		return cfg
	}
}
