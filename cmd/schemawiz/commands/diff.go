package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"f0oster/schemawiz/schema"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old-file> <new-file>",
	Short: "Compare the schemas inferred from two sample files",
	Long: `diff infers a schema from each file and reports field-level changes:
added fields, removed fields, and fields whose proposed type, nullability,
multiplicity or length changed. Both files must be the same format.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	addInputFlags(diffCmd)
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldProposal, _, err := inferPath(cmd, args[0])
	if err != nil {
		return err
	}
	newProposal, _, err := inferPath(cmd, args[1])
	if err != nil {
		return err
	}

	changes := schema.FindChanges(oldProposal.Fields, newProposal.Fields)
	out := cmd.OutOrStdout()
	if len(changes) == 0 {
		fmt.Fprintln(out, "no schema changes")
		return nil
	}

	for _, change := range changes {
		switch {
		case change.Old == nil:
			fmt.Fprintf(out, "+ %s (%s)\n", change.Name, change.New.Type)
		case change.New == nil:
			fmt.Fprintf(out, "- %s (%s)\n", change.Name, change.Old.Type)
		default:
			fmt.Fprintf(out, "~ %s: %s -> %s\n", change.Name, describeField(*change.Old), describeField(*change.New))
		}
	}
	return nil
}

func describeField(field schema.Field) string {
	desc := string(field.Type)
	if field.Nullable {
		desc += ", nullable"
	}
	if field.MultiValued {
		desc += ", multi-valued"
	}
	if field.RecommendedLength > 0 {
		desc += fmt.Sprintf(", len %d", field.RecommendedLength)
	}
	return desc
}
