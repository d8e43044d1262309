package debugger

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jetsetilly/test64/gui"
	"github.com/jetsetilly/test64/hardware"
	"github.com/jetsetilly/test64/logger"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	ctx context

	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	g *gui.GUI

	console     hardware.Console
	breakpoints map[uint16]bool
	watches     map[uint16]watch

	// rule for stepping. by default (the field is nil) the step will move
	// forward one cycle
	stepRule func() bool

	// the program file to load on console reset
	loader string

	// printing styles
	styles styles
}

func (m *debugger) reset() {
	m.ctx.Reset()

	err := m.console.Reset(true)
	if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	} else {
		fmt.Println(m.styles.debugger.Render("console reset"))
	}

	// load file specified by loader
	if m.loader != "" {
		d, err := os.ReadFile(m.loader)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("error loading %s: %s", m.loader, err.Error()),
			))
			m.loader = ""
		} else {
			origin, err := m.console.InsertProgram(d)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("%s: %s", filepath.Base(m.loader), err.Error()),
				))
				m.loader = ""
			} else {
				fmt.Println(m.styles.debugger.Render(
					fmt.Sprintf("%s loaded to $%04x", filepath.Base(m.loader), origin),
				))
			}
		}
	}

	fmt.Println(m.styles.cpu.Render(
		m.console.MC.String(),
	))
}

// step advances the emulation according to the current step rule. the rule is
// reset after the step has completed
//
// returns true if quit signal has been received
func (m *debugger) step() bool {
	// the number of cycles stepped over
	var ct int

	// loop until the step rule returns true
	var done bool
	for !done {
		select {
		case <-m.sig:
			done = true
			continue // for loop
		case <-m.guiQuit:
			return true
		default:
		}

		err := m.console.Step()
		if err != nil {
			fmt.Println(m.styles.err.Render(
				err.Error(),
			))
			return false
		}

		// apply step rule
		if m.stepRule == nil {
			done = true
		} else {
			done = m.stepRule()
		}

		ct++
	}

	m.console.PushRender()

	// report how many cycles were stepped if it is more than one
	if ct > 1 {
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d cycles stepped", ct),
		))
	}

	fmt.Println(m.styles.cpu.Render(
		m.console.MC.String(),
	))
	if s := m.console.LastMemoryAccess(); len(s) > 0 {
		fmt.Println(m.styles.mem.Render(s))
	}

	m.stepRule = nil

	return false
}

// returns true if quit signal has been received
func (m *debugger) run() bool {
	fmt.Println(m.styles.debugger.Render("emulation running"))

	// we measure the number of cycles in the time period of the running emulation
	var cycleCt int
	var startTime time.Time

	// sentinal errors for the run hook
	var (
		breakpointErr = errors.New("breakpoint")
		watchErr      = errors.New("watch")
		endRunErr     = errors.New("end run")
		quitErr       = errors.New("quit")
	)

	// hook is called after every cycle
	hook := func() error {
		select {
		case <-m.sig:
			return endRunErr
		case <-m.guiQuit:
			return quitErr
		default:
		}

		cycleCt++

		if _, ok := m.breakpoints[m.console.MC.PC]; ok {
			return fmt.Errorf("%w: %04x", breakpointErr, m.console.MC.PC)
		}

		w, err := m.checkWatches()
		if err != nil {
			return err
		}
		if w != nil {
			return fmt.Errorf("%w: %04x = %02x -> %02x", watchErr, w.ma.address, w.prev, w.data)
		}

		return nil
	}

	startTime = time.Now()

	m.g.State <- gui.StateRunning
	err := m.console.Run(hook)
	m.g.State <- gui.StatePaused

	if errors.Is(err, quitErr) {
		return true
	}

	m.console.PushRender()

	if errors.Is(err, endRunErr) {
		fmt.Println(m.styles.debugger.Render(
			fmt.Sprintf("%d cycles in %.02f seconds", cycleCt, time.Since(startTime).Seconds())),
		)
	} else if errors.Is(err, breakpointErr) {
		fmt.Println(m.styles.breakpoint.Render(err.Error()))
	} else if errors.Is(err, watchErr) {
		fmt.Println(m.styles.watch.Render(err.Error()))
	} else if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	// it's useful to see the state of the CPU and the video coords at the end of the run
	fmt.Println(m.styles.cpu.Render(m.console.MC.String()))
	fmt.Println(m.styles.video.Render(m.console.VIC.String()))

	// consume last memory access information
	_ = m.console.LastMemoryAccess()

	return false
}

func (m *debugger) insert(file string) {
	d, err := os.ReadFile(file)
	if err != nil {
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("error loading %s: %s", file, err.Error()),
		))
		return
	}
	origin, err := m.console.InsertProgram(d)
	if err != nil {
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("%s: %s", filepath.Base(file), err.Error()),
		))
		return
	}
	m.loader = file
	fmt.Println(m.styles.debugger.Render(
		fmt.Sprintf("%s loaded to $%04x", filepath.Base(file), origin),
	))
}

func (m *debugger) loop() {
	for {
		fmt.Printf("fr=%d sl=%d> ", m.console.VIC.Frame, m.console.VIC.Scanline)

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				fmt.Println(m.styles.err.Render(input.err.Error()))
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case c := <-m.g.Commands:
			cmd = c
		case <-m.sig:
			fmt.Print("\r")
			return
		case <-m.guiQuit:
			fmt.Print("\n")
			return
		}

		switch strings.ToUpper(cmd[0]) {
		case "R", "RUN":
			if m.run() {
				return
			}
		case "ST", "STEP":
			if len(cmd) > 1 {
				if !m.parseStepRule(cmd[1:]) {
					break // switch
				}
			}
			if m.step() {
				return
			}
		case "RESET":
			m.reset()
		case "CPU":
			fmt.Println(m.styles.cpu.Render(
				m.console.MC.String(),
			))
		case "CIA1":
			fmt.Println(m.styles.mem.Render(
				m.console.CIA1.Status(),
			))
		case "CIA2":
			fmt.Println(m.styles.mem.Render(
				m.console.CIA2.Status(),
			))
		case "TOD":
			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("CIA1 %s", m.console.CIA1.TODStatus()),
			))
			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("CIA2 %s", m.console.CIA2.TODStatus()),
			))
		case "VIC":
			fmt.Println(m.styles.video.Render(
				m.console.VIC.Status(),
			))
		case "RAM":
			fmt.Println(m.styles.mem.Render(
				m.console.Mem.RAM.String(),
			))
		case "INSERT":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"INSERT requires a program file",
				))
				break // switch
			}
			m.insert(strings.Join(cmd[1:], " "))
		case "DUMP":
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render(
					"DUMP requires a 'from' and a 'to' address",
				))
				break // switch
			}

			from, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("dump: %s", err.Error()),
				))
				break // switch
			}

			to, err := m.parseAddress(cmd[2])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("dump: %s", err.Error()),
				))
				break // switch
			}

			if to.address < from.address {
				fmt.Println(m.styles.err.Render(
					"dump: the 'to' address is less than the 'from' address",
				))
				break // switch
			}

			var column int
			for address := from.address; address <= to.address; address++ {
				if column == 0 {
					fmt.Printf("%04x", address)
				}

				data, err := m.console.Mem.Peek(address)
				if err != nil {
					fmt.Println(m.styles.err.Render(
						fmt.Sprintf("dump address is not readable: %04x", address),
					))
					break // switch
				}
				fmt.Printf(" %02x", data)

				column++
				if column > 15 {
					fmt.Printf("\n")
					column = 0
				}
			}
			if column != 0 {
				fmt.Printf("\n")
			}
		case "PEEK":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"PEEK requires an address",
				))
				break // switch
			}

			ma, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek: %s", err.Error()),
				))
				break // switch
			}

			data, err := m.console.Mem.Peek(ma.address)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("peek address is not readable: %s", cmd[1]),
				))
				break // switch
			}

			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("$%04x = %02x (%s)", ma.address, data, ma.area.Label()),
			))
		case "POKE":
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render(
					"POKE requires an address and a value",
				))
				break // switch
			}

			ma, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}

			v, err := strconv.ParseUint(cmd[2], 0, 8)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke value is not valid: %s", cmd[2]),
				))
				break // switch
			}

			err = m.console.Mem.Write(ma.address, uint8(v))
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("poke: %s", err.Error()),
				))
				break // switch
			}

			fmt.Println(m.styles.mem.Render(
				fmt.Sprintf("$%04x = %02x (%s)", ma.address, uint8(v), ma.area.Label()),
			))
		case "BREAK":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"BREAK requires an address",
				))
				break // switch
			}

			// we check the first argument for special keywords before assuming
			// it is an address. the keywords are case insensitive
			arg := strings.ToUpper(cmd[1])

			if arg == "DROP" {
				if len(cmd) < 3 {
					fmt.Println(m.styles.err.Render(
						"BREAK DROP requires an address",
					))
					break // switch
				}

				if strings.ToUpper(cmd[2]) == "ALL" {
					clear(m.breakpoints)
				} else {
					ma, err := m.parseAddress(cmd[2])
					if err != nil {
						fmt.Println(m.styles.err.Render(
							fmt.Sprintf("breakpoint: %s", err.Error()),
						))
						break // switch
					}
					if _, ok := m.breakpoints[ma.address]; !ok {
						fmt.Println(m.styles.debugger.Render(
							fmt.Sprintf("breakpoint for $%04x not present", ma.address),
						))
						break // switch
					}
					delete(m.breakpoints, ma.address)
					fmt.Println(m.styles.debugger.Render(
						fmt.Sprintf("breakpoint %04x has been removed", ma.address),
					))
				}
				break // switch
			}

			ma, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("breakpoint: %s", err.Error()),
				))
				break // switch
			}

			if _, ok := m.breakpoints[ma.address]; ok {
				fmt.Println(m.styles.debugger.Render(
					fmt.Sprintf("breakpoint on $%04x already present", ma.address),
				))
				break // switch
			}

			m.breakpoints[ma.address] = true
			fmt.Println(m.styles.debugger.Render(
				fmt.Sprintf("added breakpoint for $%04x", ma.address),
			))
		case "WATCH":
			if len(cmd) < 2 {
				fmt.Println(m.styles.err.Render(
					"WATCH requires an address",
				))
				break // switch
			}

			// we check the first argument for special keywords before assuming
			// it is an address. the keywords are case insensitive
			arg := strings.ToUpper(cmd[1])

			if arg == "DROP" {
				if len(cmd) < 3 {
					fmt.Println(m.styles.err.Render(
						"WATCH DROP requires an address",
					))
					break // switch
				}

				if strings.ToUpper(cmd[2]) == "ALL" {
					clear(m.watches)
				} else {
					ma, err := m.parseAddress(cmd[2])
					if err != nil {
						fmt.Println(m.styles.err.Render(
							fmt.Sprintf("watch: %s", err.Error()),
						))
						break // switch
					}
					if _, ok := m.watches[ma.address]; !ok {
						fmt.Println(m.styles.debugger.Render(
							fmt.Sprintf("watch for $%04x not present", ma.address),
						))
						break // switch
					}
					delete(m.watches, ma.address)
					fmt.Println(m.styles.debugger.Render(
						fmt.Sprintf("watch %04x has been removed", ma.address),
					))
				}
				break // switch
			}

			ma, err := m.parseAddress(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("watch: %s", err.Error()),
				))
				break // switch
			}

			if _, ok := m.watches[ma.address]; ok {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("watch for %s already present", cmd[1]),
				))
				break // switch
			}

			d, err := m.console.Mem.Peek(ma.address)
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("watch address is not readable: %s", cmd[1]),
				))
				break // switch
			}

			m.watches[ma.address] = watch{
				ma:   ma,
				data: d,
			}
		case "LIST":
			fmt.Println(m.styles.debugger.Render("breakpoints"))
			if len(m.breakpoints) == 0 {
				fmt.Println("none")
			} else {
				for a := range m.breakpoints {
					fmt.Printf("%#04x\n", a)
				}
			}
			fmt.Println(m.styles.debugger.Render("watches"))
			if len(m.watches) == 0 {
				fmt.Println("none")
			} else {
				for a := range m.watches {
					fmt.Printf("%#04x\n", a)
				}
			}
		case "LOG":
			logger.Tail(os.Stdout, -1)
		case "QUIT":
			return
		default:
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
			))
		}
	}
}

const programName = "test64"

func Launch(guiQuit chan bool, g *gui.GUI, args []string) error {
	var program string
	var spec string
	var profile bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&spec, "spec", "PAL", "TV specification of the console: PAL or NTSC")
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for emulator")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if len(args) == 1 {
		program = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments to debugger")
	}

	ctx := context{
		requestedSpec: strings.ToUpper(spec),
	}
	ctx.Reset()

	m := &debugger{
		ctx:         ctx,
		guiQuit:     guiQuit,
		g:           g,
		sig:         make(chan os.Signal, 1),
		input:       make(chan input, 1),
		loader:      program,
		styles:      newStyles(),
		breakpoints: make(map[uint16]bool),
		watches:     make(map[uint16]watch),
	}
	m.console = hardware.Create(&m.ctx, g)

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	m.reset()

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	m.loop()

	return nil
}
