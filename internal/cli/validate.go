package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ianwalkeruk/c2draw/pkg/codec"
	"github.com/ianwalkeruk/c2draw/pkg/errors"
)

// validateCommand creates the validate command for checking diagram files.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file.c4d]",
		Short: "Check a diagram file against the format's invariants",
		Long: `Validate a .c4d file.

Decoding re-checks everything a well-formed document guarantees:
a readable version, known element and diagram types, parseable
identifiers, and no relationship referencing a missing element.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := codec.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(codecErrCode(err), err, "%s failed validation", args[0])
			}
			msg := fmt.Sprintf("%s is valid: %d element(s), %d relationship(s)",
				args[0], len(d.Elements()), len(d.Relationships()))
			fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(msg))
			return nil
		},
	}
	return cmd
}

// codecErrCode maps codec sentinel errors to structured error codes for
// user-facing reporting.
func codecErrCode(err error) errors.Code {
	switch {
	case stderrors.Is(err, codec.ErrUnsupportedVersion):
		return errors.ErrCodeDocumentVersion
	case stderrors.Is(err, codec.ErrDanglingRelationship):
		return errors.ErrCodeDocumentDangling
	case stderrors.Is(err, codec.ErrMalformed):
		return errors.ErrCodeDocumentMalformed
	}
	return errors.ErrCodeFileNotFound
}
