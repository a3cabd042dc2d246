// Command slots inspects and edits the save slot record without a display.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"lifebox/internal/app"
	"lifebox/internal/slots"
)

func main() {
	log.SetPrefix("[slots] ")
	log.SetFlags(0)
	flags := flag.NewFlagSet("slots", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: slots [flags] list | show N | clear N")
		flags.PrintDefaults()
	}
	cfg, err := app.ParseConfig(flags, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if err := run(context.Background(), cfg, flags.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *app.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command: list, show or clear")
	}
	backend, err := app.OpenSlots(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	store := slots.NewStore()
	loadErr := store.Load(ctx, backend)
	if loadErr != nil {
		log.Printf("%v", loadErr)
	}

	switch args[0] {
	case "list":
		labels := store.Describe()
		for i, id := range slots.IDs() {
			cells, _ := store.Get(id)
			fmt.Fprintf(out, "%-15s %d cells\n", labels[i], len(cells))
		}
		return nil
	case "show":
		id, err := slotArg(args)
		if err != nil {
			return err
		}
		cells, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(out, "Slot %s: Empty\n", id)
			return nil
		}
		for _, p := range cells {
			fmt.Fprintf(out, "%d,%d\n", p.X, p.Y)
		}
		return nil
	case "clear":
		id, err := slotArg(args)
		if err != nil {
			return err
		}
		// Writing back a record that failed to load would wipe every board in it.
		if loadErr != nil && !errors.Is(loadErr, fs.ErrNotExist) {
			return fmt.Errorf("refusing to clear slot %s: %w", id, loadErr)
		}
		if err := store.Delete(id); err != nil {
			return err
		}
		return store.Persist(ctx, backend)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func slotArg(args []string) (slots.ID, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s needs a slot number", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("slot %q: %w", args[1], err)
	}
	if n < 1 || n > slots.NumSlots {
		return 0, fmt.Errorf("%w: %d", slots.ErrInvalidSlot, n)
	}
	return slots.ID(n), nil
}
