package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fk3r/internal/config"
	"github.com/san-kum/fk3r/internal/export"
	"github.com/san-kum/fk3r/internal/form"
	"github.com/san-kum/fk3r/internal/kinematics"
	"github.com/san-kum/fk3r/internal/sweep"
	"github.com/san-kum/fk3r/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	logFile    string
	noPose     bool
	// joint overrides, indexed by form.Field
	joints [9]float64
	// calc
	asJSON bool
	// sweep
	from     float64
	to       float64
	steps    int
	quantity string
	// pose
	outPath  string
	widthIn  float64
	heightIn float64
)

// main registers the fk3r commands; with no subcommand it opens the
// interactive form.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fk3r",
		Short:        "forward kinematics of a planar 3-link arm",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset joint state")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write debug log to file")
	rootCmd.Flags().BoolVar(&noPose, "no-pose", false, "hide the pose canvas")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "compute the end-effector state once",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}
	addJointFlags(calcCmd)
	calcCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	sweepCmd := &cobra.Command{
		Use:   "sweep [field]",
		Short: "plot an output while one field varies",
		Long:  "plot an output while one field (L1..L3, A1..A3, O1..O3) varies over a range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addJointFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&from, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&to, "to", 360, "last value")
	sweepCmd.Flags().IntVar(&steps, "steps", 73, "number of samples")
	sweepCmd.Flags().StringVar(&quantity, "quantity", "x", "output to plot ("+strings.Join(sweep.Quantities, ", ")+")")

	poseCmd := &cobra.Command{
		Use:   "pose",
		Short: "export the arm pose as png or svg",
		Args:  cobra.NoArgs,
		RunE:  runPose,
	}
	addJointFlags(poseCmd)
	poseCmd.Flags().StringVar(&outPath, "out", "pose.png", "output file (.png or .svg)")
	poseCmd.Flags().Float64Var(&widthIn, "width", 6, "image width (inches, svg: x100 px)")
	poseCmd.Flags().Float64Var(&heightIn, "height", 6, "image height (inches, svg: x100 px)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				j := config.Presets[name]
				fmt.Printf("  %-10s L=(%g, %g, %g) θ=(%g, %g, %g) ω=(%g, %g, %g)\n", name,
					j.L1, j.L2, j.L3, j.Theta1, j.Theta2, j.Theta3, j.Omega1, j.Omega2, j.Omega3)
			}
		},
	}

	rootCmd.AddCommand(calcCmd, sweepCmd, poseCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addJointFlags(cmd *cobra.Command) {
	for _, f := range form.Fields() {
		name := strings.ToLower(f.String())
		usage := fmt.Sprintf("%s%s (%s)", f.Symbol(), f.Subscript(), strings.TrimSpace(f.Unit()))
		cmd.Flags().Float64Var(&joints[f], name, 0, usage)
	}
}

// loadConfig resolves defaults, then the preset, then the config file.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	return cfg, nil
}

// jointState applies the joint flags the user set on top of cfg.
func jointState(cmd *cobra.Command, cfg *config.Config) kinematics.JointState {
	s := cfg.JointState()
	for _, f := range form.Fields() {
		if cmd.Flags().Changed(strings.ToLower(f.String())) {
			f.Set(&s, joints[f])
		}
	}
	return s
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(cfg.JointState(), tui.Options{
		ShowPose: cfg.Display.ShowPose && !noPose,
		LogFile:  logFile,
	})
}

type calcOutput struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Heading     float64 `json:"heading_deg"`
	VX          float64 `json:"vx"`
	VY          float64 `json:"vy"`
	HeadingRate float64 `json:"heading_rate"`
	Position    string  `json:"position"`
	Velocity    string  `json:"velocity"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := jointState(cmd, cfg)
	r := form.Render(s).Results

	if asJSON {
		out := calcOutput{
			X: r.Output.X, Y: r.Output.Y, Heading: r.Output.Heading,
			VX: r.Output.VX, VY: r.Output.VY, HeadingRate: r.Output.HeadingRate,
			Position: r.Position, Velocity: r.Velocity,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%s: %s\n", form.PositionLabel, r.Position)
	fmt.Printf("%s: %s\n", form.VelocityLabel, r.Velocity)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	field, err := form.ParseField(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	samples, err := sweep.Run(jointState(cmd, cfg), field, from, to, steps)
	if err != nil {
		return err
	}
	data, err := sweep.Series(samples, quantity)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s (%s) vs %s%s from %g to %g%s",
		quantity, sweep.Unit(quantity), field.Symbol(), field.Subscript(), from, to, field.Unit())
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runPose(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := jointState(cmd, cfg)

	if strings.EqualFold(filepath.Ext(outPath), ".svg") {
		svg := export.PoseToSVG(s, int(widthIn*100), int(heightIn*100))
		if svg == "" {
			return export.ErrNotDrawable
		}
		if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
			return err
		}
	} else if err := export.SavePosePNG(s, outPath, widthIn, heightIn); err != nil {
		return err
	}

	fmt.Printf("pose written to %s\n", outPath)
	return nil
}
