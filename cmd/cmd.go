package cmd

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
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"runtime/pprof"
	"sort"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/apriori"
	"github.com/timtadh/apriori/config"
	"github.com/timtadh/apriori/reporters"
	"github.com/timtadh/apriori/transactions"
)

var ErrorCodes map[string]int = map[string]int{
	"usage":    0,
	"version":  2,
	"opts":     3,
	"badint":   5,
	"badfloat": 6,
	"baddir":   6,
	"badfile":  7,
}

var UsageMessage string
var ExtendedMessage string

func Usage(code int) {
	fmt.Fprintln(os.Stderr, UsageMessage)
	if code == 0 {
		fmt.Fprintln(os.Stdout, ExtendedMessage)
		code = ErrorCodes["usage"]
	} else {
		fmt.Fprintln(os.Stderr, "Try -h or --help for help")
	}
	os.Exit(code)
}

// Input opens a file or every regular file in a directory (in name order) as
// one stream. Files ending in .gz are decompressed. Each file in a directory
// must end with a newline.
func Input(inputPath string) (reader io.Reader, closeall func(), err error) {
	stat, err := os.Stat(inputPath)
	if err != nil {
		return nil, nil, err
	}
	if stat.IsDir() {
		return InputDir(inputPath)
	} else {
		return InputFile(inputPath)
	}
}

func InputFile(inputPath string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(inputPath, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, errors.Errorf("could not read %v as gzip: %v", inputPath, err)
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func InputDir(inputDir string) (reader io.Reader, closeall func(), err error) {
	var readers []io.Reader
	var closers []func()
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	dir, err := ioutil.ReadDir(inputDir)
	if err != nil {
		return nil, nil, err
	}
	for _, info := range dir {
		if info.IsDir() {
			continue
		}
		creader, closer, err := InputFile(path.Join(inputDir, info.Name()))
		if err != nil {
			closeall()
			return nil, nil, err
		}
		readers = append(readers, creader)
		closers = append(closers, closer)
	}
	return io.MultiReader(readers...), closeall, nil
}

func ParseInt(str string) int {
	i, err := strconv.Atoi(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected an int\n", str)
		Usage(ErrorCodes["badint"])
	}
	return i
}

func ParseFloat(str string) float64 {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing '%v' expected a float\n", str)
		Usage(ErrorCodes["badfloat"])
	}
	return f
}

func AssertDir(dir string) string {
	dir = path.Clean(dir)
	fi, err := os.Stat(dir)
	if err != nil && os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0775)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			Usage(ErrorCodes["baddir"])
		}
		return dir
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["baddir"])
	}
	if !fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was not a directory, %s\n", dir)
		Usage(ErrorCodes["baddir"])
	}
	return dir
}

func EmptyDir(dir string) string {
	dir = path.Clean(dir)
	_, err := os.Stat(dir)
	if err == nil {
		// something already exists lets delete it
		err = os.RemoveAll(dir)
	} else if os.IsNotExist(err) {
		err = nil
	}
	if err == nil {
		err = os.MkdirAll(dir, 0775)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["baddir"])
	}
	return dir
}

func AssertFileOrDirExists(fname string) string {
	fname = path.Clean(fname)
	_, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "File '%s' does not exist!\n", fname)
		Usage(ErrorCodes["badfile"])
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFileExists(fname string) string {
	fname = AssertFileOrDirExists(fname)
	if fi, _ := os.Stat(fname); fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

func AssertFile(fname string) string {
	fname = path.Clean(fname)
	fi, err := os.Stat(fname)
	if err != nil && os.IsNotExist(err) {
		return fname
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		Usage(ErrorCodes["badfile"])
	} else if fi.IsDir() {
		fmt.Fprintf(os.Stderr, "Passed in file was a directory, %s\n", fname)
		Usage(ErrorCodes["badfile"])
	}
	return fname
}

// CPUProfile starts a cpu profile written to path. The returned func stops
// it and must be called before exiting.
func CPUProfile(path string) (stop func(), err error) {
	errors.Logf("DEBUG", "starting cpu profile: %v", path)
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		errors.Logf("DEBUG", "closing cpu profile")
		pprof.StopCPUProfile()
		err := f.Close()
		errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
	}, nil
}

func LoadDictionary(fname string) (transactions.Dictionary, error) {
	reader, closer, err := Input(fname)
	if err != nil {
		return nil, err
	}
	defer closer()
	return transactions.LoadDictionary(reader)
}

func listNames(title string, names []string) {
	sort.Strings(names)
	fmt.Fprintln(os.Stderr, title)
	for _, k := range names {
		fmt.Fprintln(os.Stderr, "  ", k)
	}
}

func ListFormats() {
	names := make([]string, 0, len(Formats))
	for k := range Formats {
		names = append(names, k)
	}
	listNames("Formats:", names)
}

func ListReporters() {
	names := make([]string, 0, len(Reporters))
	for k := range Reporters {
		names = append(names, k)
	}
	listNames("Reporters:", names)
}

type Format func([]string, *config.Config) (transactions.Parser, []string)

func ratingsFormat(argv []string, conf *config.Config) (transactions.Parser, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs:", []string{"help", "separator="},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	sep := "::"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-s", "--separator":
			sep = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if sep == "" {
		fmt.Fprintln(os.Stderr, "The ratings separator may not be empty")
		Usage(ErrorCodes["opts"])
	}
	return transactions.Ratings{Separator: sep}, args
}

func linesFormat(argv []string, conf *config.Config) (transactions.Parser, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h", []string{"help"},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return transactions.Lines{}, args
}

type Reporter func(map[string]Reporter, []string, *reporters.Formatter, *config.Config) (apriori.Reporter, []string)

func logReporter(rptrs map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hl:p:",
		[]string{
			"help",
			"level=",
			"prefix=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}
	level := "INFO"
	prefix := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-l", "--level":
			level = oa.Arg()
		case "-p", "--prefix":
			prefix = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return reporters.NewLog(fmtr, level, prefix), args
}

func fileReporter(rptrs map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hi:r:",
		[]string{
			"help",
			"itemsets=",
			"rules=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	itemsets := "itemsets"
	rules := "rules"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-i", "--itemsets":
			itemsets = oa.Arg()
		case "-r", "--rules":
			rules = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	fr, err := reporters.NewFile(conf, fmtr, itemsets, rules)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return fr, args
}

func storeReporter(rptrs map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"name=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	name := "support"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--name":
			name = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	s, err := reporters.NewStore(conf, name)
	if err != nil {
		errors.Logf("ERROR", "There was error creating the support store\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return s, args
}

func countReporter(rptrs map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hf:",
		[]string{
			"help",
			"filename=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	filename := "count"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-f", "--filename":
			filename = oa.Arg()
		default:
			errors.Logf("ERROR", "Unknown flag '%v'\n", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	c, err := reporters.NewCount(conf, filename)
	if err != nil {
		errors.Logf("ERROR", "There was error creating output files\n")
		errors.Logf("ERROR", "%v\n", err)
		os.Exit(1)
	}
	return c, args
}

func chainReporter(reports map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	rptrs := make([]apriori.Reporter, 0, 10)
	for len(args) >= 1 {
		if args[0] == "endchain" {
			args = args[1:]
			break
		}
		var rptr apriori.Reporter
		rptr, args = inner("chain", reports, args, fmtr, conf)
		rptrs = append(rptrs, rptr)
	}
	if len(rptrs) == 0 {
		errors.Logf("ERROR", "Empty chain")
		fmt.Fprintln(os.Stderr, "try: chain log file")
		Usage(ErrorCodes["opts"])
	}
	return &reporters.Chain{Reporters: rptrs}, args
}

// inner parses the reporter named by args[0] for a wrapping reporter.
func inner(outer string, reports map[string]Reporter, args []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	if len(args) == 0 {
		errors.Logf("ERROR", "You must supply an inner reporter to %v", outer)
		fmt.Fprintf(os.Stderr, "try: %v file\n", outer)
		Usage(ErrorCodes["opts"])
	} else if _, has := reports[args[0]]; !has {
		errors.Logf("ERROR", "Unknown reporter '%v'", args[0])
		ListReporters()
		Usage(ErrorCodes["opts"])
	}
	return reports[args[0]](reports, args[1:], fmtr, conf)
}

func noOptions(argv []string) []string {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	return args
}

func uniqueReporter(reports map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	rptr, args := inner("unique", reports, noOptions(argv), fmtr, conf)
	return reporters.NewUnique(rptr), args
}

func maxReporter(reports map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	rptr, args := inner("max", reports, noOptions(argv), fmtr, conf)
	m, err := reporters.NewMax(rptr)
	if err != nil {
		errors.Logf("ERROR", "Error creating max reporter '%v'", err)
		Usage(ErrorCodes["opts"])
	}
	return m, args
}

func skipReporter(reports map[string]Reporter, argv []string, fmtr *reporters.Formatter, conf *config.Config) (apriori.Reporter, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hn:",
		[]string{
			"help",
			"skip=",
		},
	)
	if err != nil {
		errors.Logf("ERROR", "%v", err)
		Usage(ErrorCodes["opts"])
	}
	n := 0
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			Usage(0)
		case "-n", "--skip":
			n = ParseInt(oa.Arg())
		default:
			errors.Logf("ERROR", "Unknown flag '%v'", oa.Opt())
			Usage(ErrorCodes["opts"])
		}
	}
	if n <= 0 {
		errors.Logf("ERROR", "skip needs -n <int> greater than 0")
		Usage(ErrorCodes["opts"])
	}
	rptr, args := inner("skip", reports, args, fmtr, conf)
	s, err := reporters.NewSkip(n, rptr)
	if err != nil {
		errors.Logf("ERROR", "Error creating skip reporter '%v'", err)
		Usage(ErrorCodes["opts"])
	}
	return s, args
}

var Formats map[string]Format = map[string]Format{
	"ratings": ratingsFormat,
	"lines":   linesFormat,
}

var Reporters map[string]Reporter

func init() {
	// Reporters refers to itself through chain and the wrapping reporters
	Reporters = map[string]Reporter{
		"log":    logReporter,
		"file":   fileReporter,
		"store":  storeReporter,
		"count":  countReporter,
		"chain":  chainReporter,
		"unique": uniqueReporter,
		"max":    maxReporter,
		"skip":   skipReporter,
	}
}

func Main(args []string, conf *config.Config, dict transactions.Dictionary, inMemory bool) int {
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		Usage(ErrorCodes["opts"])
	}

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply a format and an input path\n")
		Usage(ErrorCodes["opts"])
	} else if _, has := Formats[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown format '%v'\n", args[0])
		ListFormats()
		Usage(ErrorCodes["opts"])
	}
	parser, args := Formats[args[0]](args[1:], conf)

	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "You must supply exactly an input path\n")
		fmt.Fprintf(os.Stderr, "You gave: %v\n", args)
		Usage(ErrorCodes["opts"])
	}
	inputPath := AssertFileOrDirExists(args[0])
	args = args[1:]

	fmtr := &reporters.Formatter{Dictionary: dict}

	var rptr apriori.Reporter
	if len(args) == 0 {
		rptr, _ = Reporters["chain"](Reporters, []string{"log", "file"}, fmtr, conf)
	} else if _, has := Reporters[args[0]]; !has {
		fmt.Fprintf(os.Stderr, "Unknown reporter '%v'\n", args[0])
		ListReporters()
		Usage(ErrorCodes["opts"])
	} else {
		rptr, args = Reporters[args[0]](Reporters, args[1:], fmtr, conf)
	}

	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "unconsumed commandline options: '%v'\n", strings.Join(args, " "))
		Usage(ErrorCodes["opts"])
	}

	var src transactions.Source = transactions.NewFile(func() (io.Reader, func(), error) {
		return Input(inputPath)
	}, parser)
	if inMemory {
		errors.Logf("INFO", "Got configuration about to load dataset")
		txs, err := transactions.Load(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "There was error during the loading process\n")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			rptr.Close()
			return 1
		}
		errors.Logf("INFO", "loaded %d transactions", len(txs))
		src = txs
	}

	errors.Logf("INFO", "about to start mining %v", conf)
	mineErr := apriori.NewMiner(conf).Mine(src, rptr)

	code := 0
	if e := rptr.Close(); e != nil {
		errors.Logf("ERROR", "error closing %v", e)
		code++
	}
	if mineErr != nil {
		fmt.Fprintf(os.Stderr, "There was error during the mining process\n")
		fmt.Fprintf(os.Stderr, "%v\n", mineErr)
		code++
	} else {
		errors.Logf("INFO", "Done!")
	}
	return code
}
