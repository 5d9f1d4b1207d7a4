package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ponchorolls/rfcli"
	"github.com/ponchorolls/rfcli/reader"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	session := &reader.Session{
		Selector:   &reader.Selector{Index: deps.Index, Picker: deps.Picker},
		Documents:  deps.Documents,
		Pager:      deps.Pager,
		Stdout:     deps.Stdout,
		Stderr:     deps.Stderr,
		RetryDelay: deps.RetryDelay,
	}

	err := session.Run(deps.Ctx, c.Refresh, c.Query)
	if errors.Is(err, context.Canceled) {
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfcli.ErrorMessage(err))
		return err
	}
	return nil
}
