package probeio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/probeplace/placement"
)

// Format writes the single result line "peaks altitudeSum placedAltitude".
func Format(w io.Writer, o placement.Outcome) error {
	_, err := fmt.Fprintf(w, "%d %d %d\n", o.Peaks, o.AltitudeSum, o.PlacedAltitude)

	return err
}
