// Package serial implements servo.Sink over a USB-serial link, framing
// each command the way the teacher's packet transport does — a fixed
// magic number, a packet id, and a size-prefixed payload
// (pkg/robot/transport/transport.go) — but with a plain encoding/binary
// payload in place of the teacher's protobuf-generated PacketData, since
// this project does not run protoc.
package serial

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tarm/serial"

	"github.com/kinemach/arm5/x/kinematics/servo"
)

// magic identifies a well-formed command frame on the wire.
const magic uint32 = 0xBADAB00A

const (
	packetMoveAll uint32 = 1
	packetRest    uint32 = 2
)

// Sink drives the physical servos over a github.com/tarm/serial port,
// implementing servo.Sink.
type Sink struct {
	port *serial.Port
}

// Config mirrors tarm/serial's connection parameters; zero-valued fields
// fall back to serial.Config's own defaults.
type Config struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

// Open opens the serial port at cfg.Name and returns a ready Sink.
func Open(cfg Config) (*Sink, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Name,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Name, err)
	}
	return &Sink{port: port}, nil
}

// Close releases the underlying port.
func (s *Sink) Close() error {
	return s.port.Close()
}

func writeFrame(w interface{ Write([]byte) (int, error) }, id uint32, payload []byte) error {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, magic)
	binary.Write(&buf, binary.LittleEndian, id)
	binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	_, err := w.Write(buf.Bytes())
	return err
}

// MoveAll sends a move command for all six channels.
func (s *Sink) MoveAll(values [servo.NumChannels]float64, durationMs uint32) error {
	var payload bytes.Buffer
	for _, v := range values {
		binary.Write(&payload, binary.LittleEndian, v)
	}
	binary.Write(&payload, binary.LittleEndian, durationMs)
	return writeFrame(s.port, packetMoveAll, payload.Bytes())
}

// Rest sends the parked-pose command.
func (s *Sink) Rest() error {
	return writeFrame(s.port, packetRest, nil)
}
