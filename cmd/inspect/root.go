package inspect

import (
	"fmt"

	"github.com/ValentinKolb/redisc/client"
	"github.com/ValentinKolb/redisc/cmd/util"
	"github.com/spf13/cobra"
)

var (
	// InspectCmd renders a command line into the exact wire argument vector
	// the builder produces. It never touches a transport and exists purely
	// as a debugging aid.
	InspectCmd = &cobra.Command{
		Use:   "inspect [command] [args...]",
		Short: "Show the wire argument vector for a command",
		Long: util.WrapString("Builds the given command with the library's argument builder and " +
			"prints the resulting keyword and argument vector without sending anything."),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := client.NewArgs(args[0], len(args)-1)
			builder.AddStrings(args[1:]...)
			built := builder.Command()

			fmt.Printf("command: %s\n", built.Name)
			for i, arg := range built.Args {
				fmt.Printf("  arg[%d]: %s\n", i, arg)
			}
			fmt.Printf("(%d arguments)\n", len(built.Args))
			return nil
		},
	}
)
