package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"f0oster/schemawiz/schema"
	"f0oster/schemawiz/sources"
	"f0oster/schemawiz/wizard"
)

var inferCmd = &cobra.Command{
	Use:   "infer <file>",
	Short: "Infer a field schema from a sample file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfer,
}

func init() {
	addInputFlags(inferCmd)
	inferCmd.Flags().Bool("json", false, "print the proposal as JSON")
	rootCmd.AddCommand(inferCmd)
}

// addInputFlags registers the format flags shared by infer and diff.
func addInputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("format", "", "input format: ldif, csv, tsv or json (default: by file extension)")
	flags.String("delimiter", ",", "field delimiter for csv input")
	flags.Bool("no-header", false, "treat the first delimited row as data")
	flags.Int("max-records", 0, "cap on sampled records (0 = all)")
}

func runInfer(cmd *cobra.Command, args []string) error {
	proposal, dirResult, err := inferPath(cmd, args[0])
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		encoded, err := json.MarshalIndent(proposal, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	out := cmd.OutOrStdout()
	if dirResult != nil {
		fmt.Fprintf(out, "entries: %d  attributes: %d  base dn: %s\n\n",
			dirResult.TotalEntries, dirResult.TotalAttributes, dirResult.BaseDN)
	} else {
		fmt.Fprintf(out, "records: %d  fields: %d\n\n", proposal.TotalRecords, proposal.TotalFields)
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tTYPE\tNULLABLE\tMULTI\tLENGTH\tSAMPLES")
	for _, field := range proposal.Fields {
		length := ""
		if field.RecommendedLength > 0 {
			length = fmt.Sprintf("%d", field.RecommendedLength)
		}
		fmt.Fprintf(writer, "%s\t%s\t%v\t%v\t%s\t%s\n",
			field.Name, field.Type, field.Nullable, field.MultiValued,
			length, strings.Join(field.SampleValues, ", "))
	}
	return writer.Flush()
}

// inferPath runs the wizard matching the file's format. The directory result
// is non-nil only for the ldif path.
func inferPath(cmd *cobra.Command, path string) (*schema.Proposal, *wizard.DirectoryResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	content := string(raw)

	format, err := resolveFormat(cmd, path)
	if err != nil {
		return nil, nil, err
	}

	maxRecords, _ := cmd.Flags().GetInt("max-records")
	opts := wizard.Options{
		SampleLimit:  wizardConfig.SampleLimit,
		PreviewLimit: wizardConfig.PreviewLimit,
	}

	switch format {
	case "ldif":
		result, err := wizard.InferDirectory(content, opts)
		if err != nil {
			return nil, nil, err
		}
		return result.Schema, result, nil

	case "csv", "tsv":
		delimiter := ','
		if format == "tsv" {
			delimiter = '\t'
		} else if flagValue, _ := cmd.Flags().GetString("delimiter"); flagValue != "" {
			delimiter = []rune(flagValue)[0]
		}
		noHeader, _ := cmd.Flags().GetBool("no-header")
		result, err := wizard.InferDelimited(content, sources.DelimitedOptions{
			Comma:      delimiter,
			HasHeader:  !noHeader,
			MaxRecords: maxRecords,
		}, opts)
		if err != nil {
			return nil, nil, err
		}
		return result.Schema, nil, nil

	case "json":
		result, err := wizard.InferJSON(content, sources.JSONOptions{MaxRecords: maxRecords}, opts)
		if err != nil {
			return nil, nil, err
		}
		return result.Schema, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}
}

func resolveFormat(cmd *cobra.Command, path string) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format != "" {
		return strings.ToLower(format), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ldif", ".ldf":
		return "ldif", nil
	case ".csv":
		return "csv", nil
	case ".tsv", ".tab":
		return "tsv", nil
	case ".json", ".ndjson", ".jsonl":
		return "json", nil
	}
	return "", fmt.Errorf("cannot determine format of %s; pass --format", path)
}
