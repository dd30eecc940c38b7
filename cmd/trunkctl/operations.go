package main

import (
	"context"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/errgo.v2/fmt/errors"
	"trunkctl/internal/cleanup"
)

type rootOperationFlags struct {
	ListResources        bool
	ListTrunk            string
	ListVapi             bool
	RemoveDestination    string
	RemovePhoneMapping   string
	RemoveVapiCredential string
	RemoveVapiPhone      string
	DeleteTrunk          string
}

var operationFlags rootOperationFlags

// operation is one root-flag invocation, resolved before any configuration is loaded.
type operation struct {
	Name    string
	Scope   cleanup.Scope
	Confirm bool
	// Args is how many positional arguments the operation consumes.
	Args int
	Run     func(ctx context.Context, c *cleanup.Cleanup)
}

func addOperationFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&operationFlags.ListResources, "list-resources", false, "List all resources")
	flags.StringVar(&operationFlags.ListTrunk, "list-trunk", "", "List resources for a specific trunk (TRUNK_SID)")
	flags.BoolVar(&operationFlags.ListVapi, "list-vapi", false, "List Vapi resources only")
	flags.StringVar(&operationFlags.RemoveDestination, "remove-destination", "", "Remove a trunk destination (TRUNK_SID DEST_ID)")
	flags.StringVar(&operationFlags.RemovePhoneMapping, "remove-phone-mapping", "", "Remove a phone number mapping (TRUNK_SID MAPPING_ID)")
	flags.StringVar(&operationFlags.RemoveVapiCredential, "remove-vapi-credential", "", "Remove a Vapi BYO credential (CREDENTIAL_ID)")
	flags.StringVar(&operationFlags.RemoveVapiPhone, "remove-vapi-phone", "", "Remove a Vapi phone number resource (PHONE_NUMBER_ID)")
	flags.StringVar(&operationFlags.DeleteTrunk, "delete-trunk", "", "Delete an entire trunk, asks for confirmation (TRUNK_SID)")
}

// selectOperation picks the first operation flag that is set, in a fixed order.
// Flags taking two values read the second one from the positional arguments.
// A nil operation means no flag was given. Positional arguments the operation
// does not consume are rejected.
func selectOperation(args []string) (*operation, error) {
	op, err := matchOperation(args)
	if err != nil {
		return nil, err
	}
	consumed := 0
	if op != nil {
		consumed = op.Args
	}
	if len(args) > consumed {
		return nil, errors.Newf("unexpected arguments %v", args[consumed:])
	}
	return op, nil
}

func matchOperation(args []string) (*operation, error) {
	f := operationFlags
	switch {
	case f.ListResources:
		return &operation{
			Name:  "list-resources",
			Scope: cleanup.ScopeTrunks | cleanup.ScopePlatform,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.ListAll(ctx)
			},
		}, nil
	case f.ListTrunk != "":
		return &operation{
			Name:  "list-trunk",
			Scope: cleanup.ScopeTrunks,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.ListTrunk(ctx, f.ListTrunk)
			},
		}, nil
	case f.ListVapi:
		return &operation{
			Name:  "list-vapi",
			Scope: cleanup.ScopePlatform,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.ListPlatform(ctx)
			},
		}, nil
	case f.RemoveDestination != "":
		destinationId, err := secondValue("remove-destination", "DEST_ID", args)
		if err != nil {
			return nil, err
		}
		return &operation{
			Name:  "remove-destination",
			Scope: cleanup.ScopeTrunks,
			Args:  1,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.RemoveDestination(ctx, f.RemoveDestination, destinationId)
			},
		}, nil
	case f.RemovePhoneMapping != "":
		mappingId, err := secondValue("remove-phone-mapping", "MAPPING_ID", args)
		if err != nil {
			return nil, err
		}
		return &operation{
			Name:  "remove-phone-mapping",
			Scope: cleanup.ScopeTrunks,
			Args:  1,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.RemovePhoneMapping(ctx, f.RemovePhoneMapping, mappingId)
			},
		}, nil
	case f.RemoveVapiCredential != "":
		return &operation{
			Name:  "remove-vapi-credential",
			Scope: cleanup.ScopePlatform,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.RemoveCredential(ctx, f.RemoveVapiCredential)
			},
		}, nil
	case f.RemoveVapiPhone != "":
		return &operation{
			Name:  "remove-vapi-phone",
			Scope: cleanup.ScopePlatform,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.RemovePhoneNumber(ctx, f.RemoveVapiPhone)
			},
		}, nil
	case f.DeleteTrunk != "":
		return &operation{
			Name:    "delete-trunk",
			Scope:   cleanup.ScopeTrunks,
			Confirm: true,
			Run: func(ctx context.Context, c *cleanup.Cleanup) {
				c.DeleteTrunk(ctx, f.DeleteTrunk)
			},
		}, nil
	}
	return nil, nil
}

func secondValue(flag, name string, args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", errors.Newf("--%s requires TRUNK_SID and %s", flag, name)
	}
	return args[0], nil
}

func runOperation(cmd *cobra.Command, args []string) error {
	op, err := selectOperation(args)
	if err != nil {
		return err
	}
	if op == nil {
		return cmd.Help()
	}
	log.Debug().Str("operation", op.Name).Msg("running")

	var confirm cleanup.Confirm
	if op.Confirm {
		confirm = cleanup.PromptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	c, err := cleanup.Setup(cmd.Context(), op.Scope, confirm)
	if err != nil {
		return err
	}
	op.Run(cmd.Context(), c)
	return nil
}
