package distance

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// DefaultBaud is the sensor's serial line rate.
const DefaultBaud = 115200

// OpenSerial opens the sensor's serial port as a sample transport. The
// returned closer must be closed by the caller; closing it also unblocks a
// [Signal] waiting on a read.
func OpenSerial(port string, baud int) (io.ReadCloser, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}

	p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("opening serial port %s: %w", port, err)
	}

	return p, nil
}
