package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/greut/iiifcanon/iiif"
	"github.com/spf13/cobra"
)

// app is the iiif-canon command line.
type app struct {
	out     io.Writer
	rootCmd *cobra.Command

	// Flags
	width  int
	height int
	strict bool
	asJSON bool
}

func newApp(out io.Writer) *app {
	a := &app{out: out}

	a.rootCmd = &cobra.Command{
		Use:   "iiif-canon",
		Short: "Canonicalize IIIF Image API request parameters",
		Long: `iiif-canon prints the canonical form of IIIF Image API 2.1 requests.

Examples:
  iiif-canon path lena.jpg/pct:50,50,100,100/full/90.0/default.jpg -W 101 -H 101
  iiif-canon region pct:0,0,101,101 -W 1 -H 1
  iiif-canon rotation '!90.10'`,
		SilenceUsage: true,
	}

	a.rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "Fail on invalid parameters")
	a.rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print a JSON description")

	pathCmd := &cobra.Command{
		Use:   "path <identifier>/<region>/<size>/<rotation>/<quality>.<format>",
		Short: "Canonicalize a whole image request",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runPath,
	}
	a.boundsFlags(pathCmd)

	regionCmd := &cobra.Command{
		Use:   "region <region>",
		Short: "Canonicalize a region",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRegion,
	}
	a.boundsFlags(regionCmd)

	rotationCmd := &cobra.Command{
		Use:   "rotation <rotation>",
		Short: "Canonicalize a rotation",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runRotation,
	}

	a.rootCmd.AddCommand(pathCmd, regionCmd, rotationCmd)
	a.rootCmd.SetOut(out)
	a.rootCmd.SetErr(out)

	return a
}

func (a *app) boundsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&a.width, "width", "W", 0, "Width of the image in pixels")
	cmd.Flags().IntVarP(&a.height, "height", "H", 0, "Height of the image in pixels")
}

// Execute runs the command line.
func (a *app) Execute() error {
	return a.rootCmd.Execute()
}

func (a *app) runPath(cmd *cobra.Command, args []string) error {
	ir, err := iiif.ParseImagePath(args[0], a.width, a.height)
	if err != nil {
		return err
	}
	return a.print(ir, ir.CanonicalPath(), ir.Descriptor())
}

func (a *app) runRegion(cmd *cobra.Command, args []string) error {
	region := iiif.NewRegion(args[0], a.width, a.height)
	return a.print(region, region.CanonicalValue(), struct {
		Canonical string    `json:"canonical"`
		Valid     bool      `json:"valid"`
		Mode      string    `json:"mode"`
		Full      bool      `json:"full"`
		Pct       bool      `json:"pct"`
		Rect      iiif.Rect `json:"rect"`
	}{region.CanonicalValue(), region.IsValid(), region.Mode().String(), region.IsFull(), region.IsPct(), region.Rect()})
}

func (a *app) runRotation(cmd *cobra.Command, args []string) error {
	rotation := iiif.NewRotation(args[0])
	angle, ok := rotation.Angle()
	var value *float64
	if ok {
		value = &angle
	}
	return a.print(rotation, rotation.CanonicalValue(), struct {
		Canonical string   `json:"canonical"`
		Valid     bool     `json:"valid"`
		Mirror    bool     `json:"mirror"`
		InRange   bool     `json:"inRange"`
		Angle     *float64 `json:"angle"`
	}{rotation.CanonicalValue(), rotation.IsValid(), rotation.Mirror(), rotation.InRange(), value})
}

// validator is satisfied by parameters and whole requests.
type validator interface {
	Validate() error
}

// print writes the canonical value, or the description with --json.
func (a *app) print(v validator, canonical string, description interface{}) error {
	if a.strict {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(description)
	}

	_, err := fmt.Fprintln(a.out, canonical)
	return err
}
