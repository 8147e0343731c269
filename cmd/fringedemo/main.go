package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/corostack/fringego"
	"github.com/corostack/fringego/examples"
)

func main() {
	app := &cli.App{
		Name:  "fringedemo",
		Usage: "Demonstrates fringego generators",
		Commands: []*cli.Command{
			&naturalsCmd,
			&addOneCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var naturalsCmd = cli.Command{
	Name:      "naturals",
	Usage:     "print the first N natural numbers starting at --from",
	ArgsUsage: "N",
	Flags: []cli.Flag{
		&cli.Int64Flag{Name: "from", Value: 0, Usage: "starting value"},
	},
	Action: doNaturals,
}

func doNaturals(c *cli.Context) error {
	n := c.Args().Get(0)
	count := int64(10)
	if n != "" {
		if _, err := fmt.Sscanf(n, "%d", &count); err != nil {
			return fmt.Errorf("invalid N %q: %w", n, err)
		}
	}

	it, err := fringego.NewIteratorGenerator[int64](newDemoStack(), examples.Range(c.Int64("from")), nil)
	if err != nil {
		return err
	}
	defer it.Close()

	for i := int64(0); i < count; i++ {
		v, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	return nil
}

var addOneCmd = cli.Command{
	Name:      "addone",
	Usage:     "feed a starting int through AddOne a number of times",
	ArgsUsage: "START TIMES",
	Action:    doAddOne,
}

func doAddOne(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("usage: fringedemo addone START TIMES")
	}
	var start, times int
	if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &start); err != nil {
		return fmt.Errorf("invalid START: %w", err)
	}
	if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &times); err != nil {
		return fmt.Errorf("invalid TIMES: %w", err)
	}

	gen, err := fringego.NewGenerator[int, int, struct{}](newDemoStack(), examples.AddOne, nil)
	if err != nil {
		return err
	}

	v := start
	ok := true
	for i := 0; i < times && ok; i++ {
		v, ok = gen.Resume(v)
		fmt.Println(v)
	}
	return nil
}
