// Command armctl is an interactive console for driving the manipulator
// without physical hardware attached: it runs the tick loop against a
// NullSink (or a real serial port, if -port is given) and accepts
// operator commands from stdin.
//
// Grounded on the teacher's cmd/manipulator/main.go interactive command
// loop (flag + bufio.Scanner, a fixed small vocabulary of subcommands),
// adapted from its DNDM message-bus client into a direct in-process
// driver over pkg/manipulator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kinemach/arm5/pkg/manipulator"
	"github.com/kinemach/arm5/x/kinematics/chain"
	"github.com/kinemach/arm5/x/kinematics/servo"
	"github.com/kinemach/arm5/x/logger"
	serialsink "github.com/kinemach/arm5/x/transport/serial"
)

func main() {
	port := flag.String("port", "", "serial port path; empty uses an in-memory sink")
	baud := flag.Int("baud", 115200, "serial port baud rate")
	flag.Parse()

	var sink servo.Sink
	null := &servo.NullSink{}
	sink = null

	if *port != "" {
		s, err := serialsink.Open(serialsink.Config{Name: *port, Baud: *baud, ReadTimeout: time.Second})
		if err != nil {
			logger.Log.Error().Err(err).Msg("failed to open serial port")
			os.Exit(1)
		}
		defer s.Close()
		sink = s
	}

	m := manipulator.New(chain.New(), sink)

	fmt.Println("armctl - interactive manipulator console")
	fmt.Println("Commands:")
	fmt.Println("  target <x> <y> <z>   - set the operator target (millimetres)")
	fmt.Println("  axis <x> <y> <z>     - apply one tick of operator axis input")
	fmt.Println("  pose                 - print the last commanded joint vector")
	fmt.Println("  rest                 - send the parked pose")
	fmt.Println("  quit                 - exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	last := time.Now()
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "target":
			x, y, z, err := parseXYZ(parts[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			now := time.Now()
			dt := now.Sub(last)
			last = now
			if err := tickToTarget(m, x, y, z, dt); err != nil {
				fmt.Println("error:", err)
			}

		case "axis":
			x, y, z, err := parseXYZ(parts[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			now := time.Now()
			dt := now.Sub(last)
			last = now
			if err := m.Tick(manipulator.Input{AxisX: x, AxisY: y, AxisZ: z}, dt); err != nil {
				fmt.Println("error:", err)
			}

		case "pose":
			joints := m.LastJoints()
			fmt.Printf("J6=%.4f J5=%.4f J4=%.4f J3=%.4f turns, target=%v\n",
				joints[chain.J6], joints[chain.J5], joints[chain.J4], joints[chain.J3], m.Target())

		case "rest":
			if err := m.Rest(); err != nil {
				fmt.Println("error:", err)
			}

		case "quit":
			return

		default:
			fmt.Printf("unknown command: %s\n", parts[0])
		}
	}
}

func parseXYZ(args []string) (x, y, z float64, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 values, got %d", len(args))
	}
	vals := make([]float64, 3)
	for i, a := range args {
		v, parseErr := strconv.ParseFloat(a, 64)
		if parseErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid number %q", a)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

// tickToTarget drives the operator target directly to (x, y, z) by
// repeatedly stepping axis input toward it; intended for quick manual
// testing rather than production teleop, which feeds raw axis samples
// every tick instead.
func tickToTarget(m *manipulator.Manipulator, x, y, z float64, dt time.Duration) error {
	for i := 0; i < 200; i++ {
		cur := m.Target()
		dx, dy, dz := x-cur.X(), y-cur.Y(), z-cur.Z()
		if absf(dx) < 1 && absf(dy) < 1 && absf(dz) < 1 {
			break
		}
		in := manipulator.Input{AxisX: clampAxis(dx), AxisY: clampAxis(dy), AxisZ: clampAxis(dz)}
		if err := m.Tick(in, dt); err != nil {
			return err
		}
	}
	return nil
}

func clampAxis(d float64) float64 {
	const step = 500 * 0.01
	switch {
	case d > step:
		return 1
	case d < -step:
		return -1
	default:
		return d / step
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
