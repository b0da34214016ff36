package render

import (
	"fmt"
	"math"
	"strings"
)

// WireframeEpsilon bounds the absolute value of every barycentric coordinate
// of a pixel written in wireframe mode.
const WireframeEpsilon = 0.3

// Mode selects which inside pixels a render writes.
type Mode int

const (
	// ModeDepth writes every inside pixel.
	ModeDepth Mode = iota
	// ModeWireframe writes only inside pixels whose three barycentric
	// coordinates are all within WireframeEpsilon of zero.
	ModeWireframe
)

func (m Mode) String() string {
	switch m {
	case ModeDepth:
		return "depth"
	case ModeWireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name as printed by Mode.String. Matching ignores
// case; the empty string selects ModeDepth.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "depth":
		return ModeDepth, nil
	case "wireframe", "wire":
		return ModeWireframe, nil
	default:
		return ModeDepth, fmt.Errorf("unknown render mode %q (want depth or wireframe)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// pixelPolicy decides whether an inside pixel gets written.
type pixelPolicy func(Barycentric) bool

func (m Mode) policy() pixelPolicy {
	switch m {
	case ModeDepth:
		return writeAll
	case ModeWireframe:
		return withinEpsilon
	default:
		panic(fmt.Sprintf("render: unknown mode %d", int(m)))
	}
}

func writeAll(Barycentric) bool { return true }

// withinEpsilon keeps pixels where |alpha|, |beta| and |gamma| are all under
// WireframeEpsilon.
func withinEpsilon(b Barycentric) bool {
	return math.Abs(b.Alpha) < WireframeEpsilon &&
		math.Abs(b.Beta) < WireframeEpsilon &&
		math.Abs(b.Gamma) < WireframeEpsilon
}
