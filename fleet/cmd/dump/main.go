package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.lepak.sg/fleet/fleet"
)

var (
	kind     = flag.String("t", "bst", "tree type: bst, avl or splay")
	drawTree = flag.Bool("tree", false, "also draw the tree")
)

func main() {
	flag.Parse()

	tt, err := fleet.ParseTreeType(*kind)
	if err != nil {
		fail(err)
	}

	fmt.Print("ids: ")
	ids, err := readInts()
	if err != nil {
		fail(err)
	}

	f := fleet.New(tt)
	for _, id := range ids {
		if !f.Insert(fleet.Ship{ID: id, Type: fleet.Cargo, State: fleet.Alive}) {
			fmt.Fprintf(os.Stderr, "skipped %d\n", id)
		}
	}

	fmt.Println("dump:")
	if err := f.DumpTo(os.Stdout); err != nil {
		fail(err)
	}
	fmt.Println()

	if *drawTree {
		fmt.Println("tree:")
		fmt.Print(f.String())
	}

	fmt.Println("height:", f.Height())
}

func readInts() ([]int, error) {
	raw, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && raw == "" {
		return nil, fmt.Errorf("reading ids: %w", err)
	}

	raws := strings.Fields(raw)

	out := make([]int, len(raws))

	for i, rawNum := range raws {
		num, err := strconv.Atoi(rawNum)
		if err != nil {
			return nil, fmt.Errorf("id %d: %w", i, err)
		}

		out[i] = num
	}
	return out, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
