// Command vatti2 exercises the clipper package's boolean-op and offset
// surfaces from the shell, for smoke-testing and scripting.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	clipper "github.com/go-clipper/vatti2"
)

func main() {
	cmd := &cli.Command{
		Name:        "vatti2",
		Usage:       "Polygon boolean clipping and offsetting",
		HideVersion: true,
		Commands: []*cli.Command{
			boolopCommand(),
			offsetCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// parsePaths decodes a JSON array-of-arrays-of-[x,y] pairs, e.g.
// [[[0,0],[10,0],[10,10],[0,10]]], into a clipper.Paths64.
func parsePaths(raw string) (clipper.Paths64, error) {
	var pts [][][2]int64
	if err := json.Unmarshal([]byte(raw), &pts); err != nil {
		return nil, fmt.Errorf("decoding paths: %w", err)
	}
	paths := make(clipper.Paths64, len(pts))
	for i, p := range pts {
		path := make(clipper.Path64, len(p))
		for j, xy := range p {
			path[j] = clipper.Point64{X: xy[0], Y: xy[1]}
		}
		paths[i] = path
	}
	return paths, nil
}

func printPaths(paths clipper.Paths64) error {
	out := make([][][2]int64, len(paths))
	for i, p := range paths {
		row := make([][2]int64, len(p))
		for j, pt := range p {
			row[j] = [2]int64{pt.X, pt.Y}
		}
		out[i] = row
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func parseClipType(s string) (clipper.ClipType, error) {
	switch s {
	case "intersection":
		return clipper.Intersection, nil
	case "union":
		return clipper.Union, nil
	case "difference":
		return clipper.Difference, nil
	case "xor":
		return clipper.Xor, nil
	default:
		return 0, fmt.Errorf("unknown clip type %q", s)
	}
}

func parseFillRule(s string) (clipper.FillRule, error) {
	switch s {
	case "evenodd":
		return clipper.EvenOdd, nil
	case "nonzero":
		return clipper.NonZero, nil
	case "positive":
		return clipper.Positive, nil
	case "negative":
		return clipper.Negative, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseJoinType(s string) (clipper.JoinType, error) {
	switch s {
	case "square":
		return clipper.JoinSquare, nil
	case "bevel":
		return clipper.JoinBevel, nil
	case "round":
		return clipper.JoinRound, nil
	case "miter":
		return clipper.JoinMiter, nil
	default:
		return 0, fmt.Errorf("unknown join type %q", s)
	}
}

func parseEndType(s string) (clipper.EndType, error) {
	switch s {
	case "polygon":
		return clipper.EndPolygon, nil
	case "joined":
		return clipper.EndJoined, nil
	case "butt":
		return clipper.EndButt, nil
	case "square":
		return clipper.EndSquare, nil
	case "round":
		return clipper.EndRound, nil
	default:
		return 0, fmt.Errorf("unknown end type %q", s)
	}
}

func boolopCommand() *cli.Command {
	return &cli.Command{
		Name:  "boolop",
		Usage: "Compute a boolean operation between subject and clip paths",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "op", Value: "union", Usage: "intersection|union|difference|xor"},
			&cli.StringFlag{Name: "fill", Value: "nonzero", Usage: "evenodd|nonzero|positive|negative"},
			&cli.StringFlag{Name: "subject", Required: true, Usage: "JSON paths, e.g. [[[0,0],[10,0],[10,10],[0,10]]]"},
			&cli.StringFlag{Name: "clip", Usage: "JSON paths"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			clipType, err := parseClipType(cmd.String("op"))
			if err != nil {
				return err
			}
			fillRule, err := parseFillRule(cmd.String("fill"))
			if err != nil {
				return err
			}
			subjects, err := parsePaths(cmd.String("subject"))
			if err != nil {
				return err
			}
			var clips clipper.Paths64
			if raw := cmd.String("clip"); raw != "" {
				clips, err = parsePaths(raw)
				if err != nil {
					return err
				}
			}

			solution, _, err := clipper.BooleanOp64(clipType, fillRule, subjects, nil, clips)
			if err != nil {
				return err
			}
			return printPaths(solution)
		},
	}
}

func offsetCommand() *cli.Command {
	return &cli.Command{
		Name:  "offset",
		Usage: "Inflate or deflate a path by a signed delta",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Required: true, Usage: "JSON paths"},
			&cli.FloatFlag{Name: "delta", Required: true, Usage: "positive inflates, negative deflates"},
			&cli.StringFlag{Name: "join", Value: "round", Usage: "square|bevel|round|miter"},
			&cli.StringFlag{Name: "end", Value: "polygon", Usage: "polygon|joined|butt|square|round"},
			&cli.FloatFlag{Name: "miter-limit", Value: 2.0},
			&cli.FloatFlag{Name: "arc-tolerance", Value: 0.25},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			joinType, err := parseJoinType(cmd.String("join"))
			if err != nil {
				return err
			}
			endType, err := parseEndType(cmd.String("end"))
			if err != nil {
				return err
			}
			paths, err := parsePaths(cmd.String("path"))
			if err != nil {
				return err
			}

			opts := clipper.OffsetOptions{
				MiterLimit:   cmd.Float("miter-limit"),
				ArcTolerance: cmd.Float("arc-tolerance"),
			}
			solution, err := clipper.InflatePaths64(paths, cmd.Float("delta"), joinType, endType, opts)
			if err != nil {
				return err
			}
			return printPaths(solution)
		},
	}
}
