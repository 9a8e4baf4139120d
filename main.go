package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
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
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/transactions"
)

func init() {
	cmd.UsageMessage = "apriori --help"
	cmd.ExtendedMessage = `
apriori - frequent itemsets and association rules

$ apriori -o <path> --support=<int> [Global Options] \
    <format> [Format Options] <transactions-path> \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then [<format> [Format Options]] then
      <transactions-path> and finally the reporters. Changes in ordering are
      not supported.

Note: You may either supply the <transactions-path> as a regular file, a
      gzipped file or a directory of files. If supplying a gzip file the file
      extension must be '.gz'.

Note: The transactions are re-read once per round. Use --in-memory to read
      them once and keep them in memory instead.

Note: If you don't supply a reporter by default it will use 'chain log file'.
      See the the documentations for Reporters for details.


Global Options
    -h, --help                view this message
    --formats                 show the available formats
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    --support=<int>           minimum support of itemsets, an absolute
                              transaction count (required)
    --confidence=<float>      minimum confidence of rules as a percentage in
                              [0, 100] (default 0). Rules must be strictly
                              more confident than this.
    --max-size=<int>          largest itemset to mine (default 0, unbounded)
    --strict                  keep itemsets with support > --support instead of
                              support >= --support
    --items=<path>            a dictionary of item labels, lines of
                              id::label[::rest...]
    --in-memory               load the transactions once before mining
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Formats
    ratings                   lines of tx::item[::rest...]. Consecutive lines
                              with the same tx id are one transaction. The
                              rest of the fields are ignored.
    lines                     each line is a transaction
                              the items are integers
                              the items are space separated

    ratings Options
        -s, separator=<str>   the field separator (default ::)

    ratings Example file:
        1::1193::5::978300760
        1::661::3::978302109
        2::1357::5::978298709

    lines Example file:
        10 1 5 7
        213 2 5 1
        3 4 1

Reporters
    chain                     chain several reporters together (end the chain
                              with endchain)
    log                       log the itemsets and rules
    file                      write the itemsets and rules to files in the
                              output dir
    store                     write the itemset supports to a b+tree in the
                              output dir (read it with list-itemsets)
    count                     write the number of itemsets of each size and
                              the number of rules
    unique                    takes an "inner reporter" but only passes the
                              unique itemsets to the inner reporter
    max                       takes an "inner reporter" but only passes the
                              maximal itemsets to the inner reporter
    skip                      takes an "inner reporter" but only passes every
                              n-th itemset and rule to the inner reporter

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -i, itemsets=<name>   the name of the file in the output directory to
                              write the itemsets (default itemsets)
        -r, rules=<name>      the name of the file in the output directory to
                              write the rules (default rules)

    store Options
        -n, name=<name>       the name of the b+tree file (default support)

    count Options
        -f, filename=<name>   the name of the file (default count)

    skip Options
        -n, skip=<int>        pass every n-th itemset and rule (required)

    Examples

        $ apriori -o /tmp/apriori --support=100 --confidence=50 \
            --items=./data/movies.dat \
            ratings ./data/ratings.dat.gz

        $ apriori -o /tmp/apriori --support=5 \
            lines ./data/transactions.dat \
            chain log -p found store count endchain

        $ apriori --skip-log=DEBUG -o /tmp/apriori --support=5 --max-size=3 \
            lines ./data/transactions.dat \
            chain \
                log -p all \
                max file -i max-itemsets -r max-rules \
            endchain
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:",
		[]string{
			"help",
			"output=",
			"formats", "reporters",
			"support=",
			"confidence=",
			"max-size=",
			"strict",
			"items=",
			"in-memory",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a format?) try:")
		fmt.Fprintf(os.Stderr, "$ %v lines %v\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	support := 0
	confidence := 0.0
	maxSize := 0
	strict := false
	items := ""
	inMemory := false
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = oa.Arg()
		case "--support":
			support = cmd.ParseInt(oa.Arg())
		case "--confidence":
			confidence = cmd.ParseFloat(oa.Arg())
		case "--max-size":
			maxSize = cmd.ParseInt(oa.Arg())
		case "--strict":
			strict = true
		case "--items":
			items = cmd.AssertFileExists(oa.Arg())
		case "--in-memory":
			inMemory = true
		case "--formats":
			cmd.ListFormats()
			os.Exit(0)
		case "--reporters":
			cmd.ListReporters()
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	conf := &config.Config{
		Support:    support,
		Confidence: confidence,
		MaxSize:    maxSize,
		Strict:     strict,
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	conf.Output = cmd.EmptyDir(output)

	var dict transactions.Dictionary
	if items != "" {
		dict, err = cmd.LoadDictionary(items)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error loading the item labels\n")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		errors.Logf("INFO", "loaded %d item labels", len(dict))
	}

	if cpuProfile != "" {
		stop, err := cmd.CPUProfile(cpuProfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer stop()
	}

	return cmd.Main(args, conf, dict, inMemory)
}
