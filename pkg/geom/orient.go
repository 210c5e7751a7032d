package geom

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/errors"
)

// Orient is a placement orientation. Names follow the database convention;
// DEF compass aliases are accepted by ParseOrient.
type Orient int

const (
	R0    Orient = iota // N
	R90                 // W
	R180                // S
	R270                // E
	MY                  // FN
	MYR90               // FE
	MX                  // FS
	MXR90               // FW
)

var orientNames = [...]string{"R0", "R90", "R180", "R270", "MY", "MYR90", "MX", "MXR90"}

var orientDEF = [...]string{"N", "W", "S", "E", "FN", "FE", "FS", "FW"}

// Valid reports whether o is one of the eight orientations.
func (o Orient) Valid() bool {
	return o >= R0 && o <= MXR90
}

func (o Orient) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orient(%d)", int(o))
	}
	return orientNames[o]
}

// DEF returns the compass alias (N, FS, ...).
func (o Orient) DEF() string {
	if !o.Valid() {
		return o.String()
	}
	return orientDEF[o]
}

// ParseOrient accepts either spelling, e.g. "R0" or "N", "MX" or "FS".
func ParseOrient(s string) (Orient, error) {
	for i := range orientNames {
		if orientNames[i] == s || orientDEF[i] == s {
			return Orient(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidOrientation, "unknown orientation %q", s)
}

// IsRotated reports whether o turns the cell by 90 or 270 degrees, with or
// without mirroring.
func (o Orient) IsRotated() bool {
	switch o {
	case R90, R270, MYR90, MXR90:
		return true
	}
	return false
}

// FlipY returns o mirrored about the X axis. Adjacent rows alternate
// between an orientation and its flip (N, FS, N, ...).
func (o Orient) FlipY() Orient {
	switch o {
	case R0:
		return MX
	case MX:
		return R0
	case MY:
		return R180
	case R180:
		return MY
	case R90:
		return MXR90
	case MXR90:
		return R90
	case R270:
		return MYR90
	case MYR90:
		return R270
	}
	return o
}

// OrientedSize returns (height, width) for the rotated orientations and
// (width, height) otherwise.
func OrientedSize(width, height float64, o Orient) (float64, float64, error) {
	switch o {
	case R90, MXR90, R270, MYR90:
		return height, width, nil
	case R0, R180, MY, MX:
		return width, height, nil
	}
	return 0, 0, errors.New(errors.ErrCodeInvalidOrientation, "orientation %d has no size transform", int(o))
}
