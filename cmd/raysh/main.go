// The raysh command runs an interactive shell for loading and inspecting
// ray-tracer scenes.
package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	"github.com/dt-raytrace/obj-raytracer/internal/prim"
	"github.com/dt-raytrace/obj-raytracer/internal/render"
	"github.com/dt-raytrace/obj-raytracer/internal/sceneio"
)

type Command struct {
	// Symbol is the canonical name of the command.
	// It should include the leading ":".
	Symbol       string
	Aliases      []string
	ExpectedArgs []string // For generating help.
	HelpText     string
	Run          func(*State) error
}

type State struct {
	args     []string
	scene    *sceneio.Scene
	camera   render.Camera
	commands []*Command
}

// errQuit is a signal to the main loop to quit.
var errQuit = errors.New("quit")

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "raysh> ",
		HistoryFile:  readlineHistoryFilePath(),
		HistoryLimit: 10000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	state := &State{
		camera: render.NewCamera(
			prim.Vec3{X: 0, Y: 0, Z: 5}, prim.Vec3{X: 0, Y: 0, Z: 0},
			prim.Vec3{X: 0, Y: 1, Z: 0}, render.FallbackUp(),
			1.0471975511965976, // 60deg
			200, 150,
		),
	}

	var commands []*Command
	commandLookup := make(map[string]*Command)

	registerCommand := func(command *Command) {
		mustAddToLookup := func(symbol string) {
			if commandLookup[symbol] != nil {
				log.Fatalf("duplicate command: %v vs %v", command, commandLookup[symbol])
			}
			commandLookup[symbol] = command
		}
		commands = append(commands, command)
		mustAddToLookup(command.Symbol)
		for _, alias := range command.Aliases {
			mustAddToLookup(alias)
		}
	}

	registerCommand(&Command{
		Symbol:       ":load",
		Aliases:      []string{":l"},
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Parse and load an .obj scene",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :load <filename>")
			}
			scene, err := sceneio.ParseFile(st.args[0])
			if err != nil {
				return err
			}
			st.scene = scene
			fmt.Printf("loaded %d triangles, %d spheres, %d lights, %d materials\n",
				len(scene.Triangles), len(scene.Spheres), len(scene.Lights), len(scene.Materials))
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":materials",
		Aliases:  []string{":m"},
		HelpText: "List loaded materials",
		Run: func(st *State) error {
			if err := requireScene(st); err != nil {
				return err
			}
			for name, m := range st.scene.Materials {
				fmt.Printf("  %s: Kd=%v Ks=%v Ns=%v Ni=%v A=%v\n", name, m.Diffuse, m.Specular, m.SpecularExponent, m.RefractionIndex, m.Albedo)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":lights",
		HelpText: "List point lights",
		Run: func(st *State) error {
			if err := requireScene(st); err != nil {
				return err
			}
			for i, l := range st.scene.Lights {
				fmt.Printf("  %d: pos=%v intensity=%v\n", i, l.Position, l.Intensity)
			}
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":objects",
		HelpText: "List triangle and sphere objects",
		Run: func(st *State) error {
			if err := requireScene(st); err != nil {
				return err
			}
			fmt.Printf("  %d triangles, %d spheres\n", len(st.scene.Triangles), len(st.scene.Spheres))
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":trace",
		ExpectedArgs: []string{"<j>", "<i>"},
		HelpText:     "Fire the camera ray through pixel (j, i) and print the hit",
		Run:          runTrace,
	})
	registerCommand(&Command{
		Symbol:       ":render",
		ExpectedArgs: []string{"<mode>", "<out.png>"},
		HelpText:     "Render the loaded scene to a PNG file",
		Run:          runRender,
	})
	registerCommand(&Command{
		Symbol:   ":help",
		Aliases:  []string{":h"},
		HelpText: "Prints this help text",
		Run:      showHelp,
	})
	registerCommand(&Command{
		Symbol:   ":quit",
		Aliases:  []string{":q"},
		HelpText: "Exit the shell",
		Run: func(st *State) error {
			return errQuit
		},
	})

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		args := parseCommandArgs(line)
		if len(args) == 0 {
			continue
		}
		cmd := commandLookup[args[0]]
		if cmd == nil {
			fmt.Printf("Unknown command: %v (try :help)\n", args[0])
			continue
		}
		state.args = args[1:]
		state.commands = commands
		err = cmd.Run(state)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func requireScene(st *State) error {
	if st.scene == nil {
		return errors.New("no scene loaded, use :load <filename>")
	}
	return nil
}

func runTrace(st *State) error {
	if err := requireScene(st); err != nil {
		return err
	}
	if len(st.args) < 2 {
		return errors.New("usage: :trace <j> <i>")
	}
	j, err := strconv.Atoi(st.args[0])
	if err != nil {
		return err
	}
	i, err := strconv.Atoi(st.args[1])
	if err != nil {
		return err
	}
	ray := st.camera.RayThrough(j, i)
	hit, ok := render.ClosestIntersection(st.scene, ray)
	if !ok {
		fmt.Println("no hit")
		return nil
	}
	fmt.Printf("hit: point=%v normal=%v distance=%v material=%s sphere=%v\n",
		hit.Intersection.Point, hit.Intersection.Normal, hit.Intersection.Distance, hit.Material.Name, hit.IsSphere)
	radiance := render.Shade(st.scene, ray, false, 0, 4)
	fmt.Printf("radiance: %v\n", radiance)
	return nil
}

func runRender(st *State) error {
	if err := requireScene(st); err != nil {
		return err
	}
	if len(st.args) < 2 {
		return errors.New("usage: :render <mode> <out.png>")
	}
	var mode render.Mode
	switch st.args[0] {
	case "depth":
		mode = render.ModeDepth
	case "normal":
		mode = render.ModeNormal
	case "full":
		mode = render.ModeFull
	default:
		return fmt.Errorf("unknown mode %q (want depth, normal, or full)", st.args[0])
	}

	img := render.Render(st.scene, st.camera, mode, 4)
	f, err := os.Create(st.args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", st.args[1])
	return nil
}

func showHelp(st *State) error {
	usageHelp := make([]string, len(st.commands))
	maxLen := 0
	for i, command := range st.commands {
		parts := []string{command.Symbol}
		parts = append(parts, command.Aliases...)
		parts = append(parts, command.ExpectedArgs...)
		usageHelp[i] = strings.Join(parts, " ")
		maxLen = max(maxLen, len(usageHelp[i]))
	}
	fmt.Printf("Commands:\n")
	for i, command := range st.commands {
		fmt.Printf("  %-*s : %s\n", maxLen, usageHelp[i], command.HelpText)
	}
	return nil
}

func readlineHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".raysh_history")
}

func parseCommandArgs(line string) []string {
	var args []string
	var start int
	for i := range line {
		curr := line[i]
		if strings.IndexByte(" \t\n\r", curr) != -1 {
			if start < i {
				args = append(args, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		args = append(args, line[start:])
	}
	return args
}
