package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2016, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/itemset"
	"github.com/timtadh/apriori/reporters"
	"github.com/timtadh/apriori/stores/itemset_int"
	"github.com/timtadh/apriori/transactions"
)

func init() {
	cmd.UsageMessage = "list-itemsets --help"
	cmd.ExtendedMessage = `
list-itemsets [Options] <support.bptree>

Prints the itemsets and supports written by the store reporter.

Options
    -h, --help                view this message
    --items=<path>            a dictionary of item labels, lines of
                              id::label[::rest...]
    --min-size=<int>          only list itemsets with at least this many items
    -f, --find=<items>        only list the itemset with these comma separated
                              item ids
`
}

func main() {
	os.Exit(run())
}

func parseItemset(str string) (itemset.Itemset, error) {
	items := make([]itemset.Item, 0, 10)
	for _, col := range strings.Split(str, ",") {
		i, err := strconv.ParseInt(strings.TrimSpace(col), 10, 32)
		if err != nil {
			return nil, errors.Errorf("item '%v' is not an int32", col)
		}
		items = append(items, itemset.Item(i))
	}
	return itemset.New(items...), nil
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hf:",
		[]string{
			"help",
			"items=",
			"min-size=",
			"find=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	items := ""
	minSize := 0
	var find itemset.Itemset
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "--items":
			items = cmd.AssertFileExists(oa.Arg())
		case "--min-size":
			minSize = cmd.ParseInt(oa.Arg())
		case "-f", "--find":
			find, err = parseItemset(oa.Arg())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				cmd.Usage(cmd.ErrorCodes["opts"])
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly one store\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	path := cmd.AssertFileExists(args[0])

	var dict transactions.Dictionary
	if items != "" {
		dict, err = cmd.LoadDictionary(items)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error loading the item labels\n")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}
	fmtr := &reporters.Formatter{Dictionary: dict}

	store, err := itemset_int.OpenBpTree(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error opening the store\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer store.Close()
	errors.Logf("DEBUG", "opened %v with %d itemsets", path, store.Size())

	list := store.Iterate
	if find != nil {
		list = func() (itemset_int.Iterator, error) {
			return store.Find(find)
		}
	}
	err = itemset_int.Do(list, func(items itemset.Itemset, support int32) error {
		if items.Size() < minSize {
			return nil
		}
		fmt.Println(fmtr.FormatItemset(&apriori.Frequent{Items: items, Support: int(support)}))
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "There was error reading the store\n")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
