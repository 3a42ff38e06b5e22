package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"rerun": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"mtime": cmdMtime,
			"newer": cmdNewer,
		},
	})
}

// cmdMtime sets the access and modification time of files.
//
//	mtime <unix-seconds> path...
func cmdMtime(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! mtime")
	}
	if len(args) < 2 {
		ts.Fatalf("usage: mtime <unix-seconds> path...")
	}

	sec, err := strconv.ParseInt(args[0], 10, 64)
	ts.Check(err)

	at := time.Unix(sec, 0)
	for _, p := range args[1:] {
		ts.Check(os.Chtimes(ts.MkAbs(p), at, at))
	}
}

// cmdNewer checks that the first file was modified after the second.
//
//	newer a b
func cmdNewer(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: newer a b")
	}

	a, err := os.Stat(ts.MkAbs(args[0]))
	ts.Check(err)
	b, err := os.Stat(ts.MkAbs(args[1]))
	ts.Check(err)

	isNewer := a.ModTime().After(b.ModTime())
	switch {
	case isNewer && neg:
		ts.Fatalf("%s is newer than %s", args[0], args[1])
	case !isNewer && !neg:
		ts.Fatalf("%s (%v) is not newer than %s (%v)", args[0], a.ModTime(), args[1], b.ModTime())
	}
}
