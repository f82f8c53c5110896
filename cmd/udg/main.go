package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/udg"
	udgimage "github.com/bodgit/udg/image"
	"github.com/bodgit/udg/raster"
	"github.com/bodgit/udg/render"
	"github.com/bodgit/udg/tile"
	"github.com/urfave/cli/v2"
)

const defaultDB = "udg.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func parseRatio(s string) (raster.Ratio, error) {
	switch strings.ToLower(s) {
	case "half":
		return raster.Half, nil
	case "normal", "":
		return raster.Normal, nil
	case "double":
		return raster.Double, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pixel ratio %q", s)
	}
	return raster.NormalizeRatio(float32(f)), nil
}

func open(c *cli.Context, file string) (*udg.Editor, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	e := udg.NewEditor(newLogger(c))
	if err := e.Do(udg.Open{Reader: f}); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return e, nil
}

func save(e *udg.Editor, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := e.Do(udg.Save{Writer: f}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeRaster(r *raster.Raster, ratio raster.Ratio, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := udgimage.Encode(f, r, ratio); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parsePoints(args []string) ([]udg.Paint, error) {
	if len(args)&1 != 0 {
		return nil, fmt.Errorf("coordinates must be given as X Y pairs")
	}
	var points []udg.Paint
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, udg.Paint{X: x, Y: y})
	}
	return points, nil
}

var sizeFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "width",
		Aliases: []string{"x"},
		Value:   1,
		Usage:   "width in characters",
	},
	&cli.IntFlag{
		Name:    "height",
		Aliases: []string{"y"},
		Value:   1,
		Usage:   "height in characters",
	},
	&cli.StringFlag{
		Name:    "ratio",
		Aliases: []string{"r"},
		Usage:   "pixel ratio: half, normal or double",
	},
}

func libraryCommands() []*cli.Command {
	withLibrary := func(f func(*cli.Context, *udg.Library) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			l, err := udg.NewLibrary(c.String("db"))
			if err != nil {
				return cli.Exit(err, 1)
			}
			defer l.Close()

			if err := f(c, l); err != nil {
				return cli.Exit(err, 1)
			}
			return nil
		}
	}

	return []*cli.Command{
		{
			Name:      "add",
			Usage:     "Add an image to the library",
			ArgsUsage: "NAME FILE",
			Action: withLibrary(func(c *cli.Context, l *udg.Library) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				e, err := open(c, c.Args().Get(1))
				if err != nil {
					return err
				}
				return l.Add(c.Args().First(), e.Raster(), e.Ratio())
			}),
		},
		{
			Name:      "get",
			Usage:     "Write an image from the library to a file",
			ArgsUsage: "NAME FILE",
			Action: withLibrary(func(c *cli.Context, l *udg.Library) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				r, ratio, err := l.Get(c.Args().First())
				if err != nil {
					return err
				}
				return writeRaster(r, ratio, c.Args().Get(1))
			}),
		},
		{
			Name:  "list",
			Usage: "List the images in the library",
			Action: withLibrary(func(c *cli.Context, l *udg.Library) error {
				entries, err := l.List()
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Printf("%s\t%dx%d\t%s\n", e.Name, e.Width, e.Height, e.Ratio)
				}
				return nil
			}),
		},
		{
			Name:      "remove",
			Usage:     "Remove an image from the library",
			ArgsUsage: "NAME",
			Action: withLibrary(func(c *cli.Context, l *udg.Library) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				return l.Remove(c.Args().First())
			}),
		},
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "udg"
	app.Usage = "User Defined Graphics editing utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "new",
			Usage:     "Create a blank image",
			ArgsUsage: "FILE",
			Flags:     sizeFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				ratio, err := parseRatio(c.String("ratio"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				e := udg.NewEditor(newLogger(c))
				if err := e.Do(udg.NewImage{WidthTiles: c.Int("width"), HeightTiles: c.Int("height"), Ratio: ratio}); err != nil {
					return cli.Exit(err, 1)
				}

				if err := save(e, c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "info",
			Usage:     "Describe an image",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				config, err := udgimage.DecodeConfig(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Printf("%dx%d px (%dx%d chars), %s\n", config.Width, config.Height, config.Width/raster.TileSize, config.Height/raster.TileSize, config.Ratio)

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Print the block text of an image",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				e, err := open(c, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Println(e.Export())

				return nil
			},
		},
		{
			Name:      "parse",
			Usage:     "Create an image from block text",
			ArgsUsage: "TEXTFILE FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "ratio",
					Aliases: []string{"r"},
					Usage:   "pixel ratio: half, normal or double",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				ratio, err := parseRatio(c.String("ratio"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				r, err := tile.Decode(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := writeRaster(r, ratio, c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "set",
			Usage:     "Set or clear pixels",
			ArgsUsage: "FILE X Y [X Y...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "clear",
					Aliases: []string{"c"},
					Usage:   "clear the pixels instead",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				points, err := parsePoints(c.Args().Tail())
				if err != nil {
					return cli.Exit(err, 1)
				}

				e, err := open(c, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				cmds := []udg.Command{udg.SetColour{Index: raster.Foreground}}
				if c.Bool("clear") {
					cmds[0] = udg.SetColour{Index: raster.Background}
				}
				for _, p := range points {
					cmds = append(cmds, p)
				}

				if err := e.Do(cmds...); err != nil {
					return cli.Exit(err, 1)
				}

				if err := save(e, c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Println(e.Status())

				return nil
			},
		},
		{
			Name:      "resize",
			Usage:     "Resize an image keeping it centred",
			ArgsUsage: "FILE",
			Flags:     sizeFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				e, err := open(c, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				var ratio raster.Ratio
				if c.IsSet("ratio") {
					if ratio, err = parseRatio(c.String("ratio")); err != nil {
						return cli.Exit(err, 1)
					}
				}

				if err := e.Do(udg.Resize{WidthTiles: c.Int("width"), HeightTiles: c.Int("height"), Ratio: ratio}); err != nil {
					return cli.Exit(err, 1)
				}

				if err := save(e, c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "show",
			Usage:     "Print an image as text",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				e, err := open(c, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := render.WriteText(os.Stdout, e.Raster()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Render an image as a scaled preview",
			ArgsUsage: "FILE OUTPUT",
			Flags: []cli.Flag{
				&cli.Float64Flag{
					Name:    "zoom",
					Aliases: []string{"z"},
					EnvVars: []string{"UDG_ZOOM"},
					Value:   render.DefaultZoom,
					Usage:   "zoom factor",
				},
				&cli.BoolFlag{
					Name:  "grid",
					Value: true,
					Usage: "draw a pixel grid",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Usage:   "output format: " + strings.Join(render.Formats, ", ") + " (default from the file extension)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				e, err := open(c, c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := e.Do(udg.SetZoom{Zoom: c.Float64("zoom")}); err != nil {
					return cli.Exit(err, 1)
				}

				canvas := e.Canvas()
				canvas.Grid = c.Bool("grid")

				output := c.Args().Get(1)
				format := c.String("format")
				if format == "" {
					format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
				}

				f, err := os.Create(output)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				if err := render.Encode(f, canvas.Draw(e.Raster()), format); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert image files to UDG images",
			Description: "Each image is reduced to two colors, the lighter of which is set",
			ArgsUsage:   "FILE|DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				if err := udg.New(newLogger(c)).Convert(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "library",
			Usage: "Manage a library of named images",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"UDG_DB"},
					Value:   filepath.Join(cwd, defaultDB),
					Usage:   "path to database",
				},
			},
			Subcommands: libraryCommands(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
