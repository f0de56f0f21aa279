package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/store"
	"github.com/audithound/audithound/pkg/ui"
)

// openStore opens the store at the resolved root or exits.
func openStore(dir string) *store.Store {
	st, err := store.Open(store.DefaultRoot(dir))
	if err != nil {
		ui.PrintError(fmt.Sprintf("cannot open store: %v", err))
		os.Exit(1)
	}
	return st
}

// requireCurrent resolves the current engagement or exits with
// guidance on the next command to run.
func requireCurrent(st *store.Store) *engagement.Engagement {
	e, err := st.Current()
	if err != nil {
		fail(err)
	}
	return e
}

// fail prints the error with a suggested next command and exits.
// Every error kind gets guidance; nothing aborts without it.
func fail(err error) {
	switch {
	case errors.Is(err, store.ErrNoEngagement):
		ui.PrintError("no engagement found")
		ui.PrintHelp("Run 'audithound init <name> -entity <entity>' to create one.")
	case errors.Is(err, store.ErrAlreadyExists):
		ui.PrintError(err.Error())
		ui.PrintHelp("Choose a different name, or run 'audithound status' to inspect the existing engagement.")
	case errors.Is(err, store.ErrNoWorkProgram):
		ui.PrintError("no work program has been generated")
		ui.PrintHelp("Run 'audithound plan' to generate one.")
	case errors.Is(err, store.ErrMalformedConfig):
		ui.PrintError(fmt.Sprintf("engagement record is unreadable: %v", err))
		ui.PrintHelp("Inspect the engagement.yaml under the store root and fix or remove it.")
	default:
		ui.PrintError(err.Error())
		ui.PrintHelp("Run 'audithound help' for usage.")
	}
	os.Exit(1)
}
