package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/crazy3lf/colorconv"
	"github.com/spf13/cobra"

	"lifetrail/pkg/hsv"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert colors between HSV and RGB",
	}
	cmd.AddCommand(newColorHSVCmd(), newColorRGBCmd())
	return cmd
}

func newColorHSVCmd() *cobra.Command {
	var compare bool
	cmd := &cobra.Command{
		Use:   "hsv H S V",
		Short: "Convert an HSV color (all components in 0..1) to RGB",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			in := hsv.New(v[0], v[1], v[2])
			px := in.ToPixel()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rgb   %s\n", in.ToRGB())
			fmt.Fprintf(out, "pixel %s (%d, %d, %d)\n", hexPixel(px), px.R, px.G, px.B)
			if compare {
				r, g, b, err := colorconv.HSVToRGB(float64(in.H)*360, float64(in.S), float64(in.V))
				if err != nil {
					return fmt.Errorf("colorconv: %w", err)
				}
				fmt.Fprintf(out, "colorconv (%d, %d, %d)\n", r, g, b)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compare, "compare", false, "also print the colorconv conversion")
	return cmd
}

func newColorRGBCmd() *cobra.Command {
	var pixel bool
	cmd := &cobra.Command{
		Use:   "rgb R G B",
		Short: "Convert an RGB color (components in 0..255) to HSV",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out hsv.HSV
			if pixel {
				c, err := parseBytes(args)
				if err != nil {
					return err
				}
				out = hsv.FromPixel(c)
			} else {
				v, err := parseFloats(args)
				if err != nil {
					return err
				}
				out = hsv.FromRGB(hsv.RGB{R: v[0], G: v[1], B: v[2]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hsv %s\n", out)
			if out.Undefined() {
				fmt.Fprintln(cmd.OutOrStdout(), "value undefined for black")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pixel, "pixel", false, "treat components as 8-bit integers")
	return cmd
}

func parseFloats(args []string) ([3]float32, error) {
	var out [3]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return out, fmt.Errorf("component %d: %w", i+1, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseBytes(args []string) (color.RGBA, error) {
	var ch [3]uint8
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		ch[i] = uint8(n)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

func hexPixel(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
