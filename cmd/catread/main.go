// Command catread inspects, exports and plots catman AP measurement files.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/strainstack/catread"
	"github.com/strainstack/catread/export"
	"github.com/strainstack/catread/plot"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "catread",
		Usage: "Read catman AP binary measurement files: channels, groups, export, plots",
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "Decode a file and list its channels and groups",
				ArgsUsage: "<file>",
				Action:    runInfo,
			},
			{
				Name:      "export",
				Usage:     "Export all groups (or one channel) as CSV or JSON",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "Destination directory"},
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "csv", Usage: "Output mode: csv or json"},
					&cli.BoolFlag{Name: "gzip", Aliases: []string{"z"}, Usage: "Gzip the output files"},
					&cli.StringFlag{Name: "channel", Aliases: []string{"c"}, Usage: "Export a single channel by name"},
				},
				Action: runExport,
			},
			{
				Name:      "plot",
				Usage:     "Render each group as an HTML line chart",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "Destination directory"},
				},
				Action: runPlot,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func decode(cmd *cli.Command) (*catread.DecodedFile, error) {
	path := cmd.Args().First()
	if path == "" {
		return nil, fmt.Errorf("missing <file> argument")
	}

	var bar *pterm.ProgressbarPrinter
	file, err := catread.ReadFile(path, catread.WithProgress(func(done, total int) {
		if bar == nil {
			bar, _ = pterm.DefaultProgressbar.WithTotal(total).WithTitle("Decoding channels").Start()
		}
		bar.Increment()
		if done == total {
			_, _ = bar.Stop()
		}
	}))
	if err != nil {
		return nil, err
	}

	for _, issue := range file.Issues {
		pterm.Warning.Println(issue.String())
	}

	return file, nil
}

func runInfo(_ context.Context, cmd *cli.Command) error {
	file, err := decode(cmd)
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("%s: %d channels, %d groups", file.SourceName, len(file.Channels), len(file.Groups))
	if file.Comment != "" {
		pterm.Info.Println(file.Comment)
	}

	rows := pterm.TableData{{"#", "Name", "Unit", "Samples", "Kind", "Time axis"}}
	for i, c := range file.Channels {
		timeName := ""
		if t := file.TimeOf(c); t != nil {
			timeName = t.Name
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			c.Name,
			c.Unit,
			strconv.Itoa(c.Len()),
			c.Kind.String(),
			timeName,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	for i, g := range file.Groups {
		pterm.Printf("group %d: %s (%d data channels, interval %s)\n",
			i+1, g.Name(), len(g.Data), g.IntervalString())
	}

	return nil
}

func runExport(_ context.Context, cmd *cli.Command) error {
	mode := export.Mode(cmd.String("mode"))
	if mode != export.CSV && mode != export.JSON {
		return fmt.Errorf("unknown mode %q: want csv or json", cmd.String("mode"))
	}

	file, err := decode(cmd)
	if err != nil {
		return err
	}

	outDir := cmd.String("out")
	gzipped := cmd.Bool("gzip")

	if name := cmd.String("channel"); name != "" {
		c, err := file.ChannelByName(name)
		if err != nil {
			return err
		}
		path, err := export.SaveChannel(outDir, file.SourceName, file.TimeOf(c), c, mode, gzipped)
		if err != nil {
			return err
		}
		pterm.Success.Printf("wrote %s\n", path)

		return nil
	}

	for i := range file.Groups {
		path, err := export.SaveGroup(outDir, file.SourceName, &file.Groups[i], mode, gzipped)
		if err != nil {
			return err
		}
		pterm.Success.Printf("wrote %s\n", path)
	}

	return nil
}

func runPlot(_ context.Context, cmd *cli.Command) error {
	file, err := decode(cmd)
	if err != nil {
		return err
	}

	outDir := cmd.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for i := range file.Groups {
		g := &file.Groups[i]
		path := filepath.Join(outDir, export.FileName(file.SourceName, g.Name(), "html", false))

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := plot.Group(f, g); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		pterm.Success.Printf("wrote %s\n", path)
	}

	return nil
}
