package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pspoerri/planetwkt/internal/body"
	"github.com/pspoerri/planetwkt/internal/crs"
	"github.com/pspoerri/planetwkt/internal/csvdata"
	"github.com/pspoerri/planetwkt/internal/projection"
)

func newGenerateCmd() *cobra.Command {
	var (
		output      string
		splitDir    string
		catalogPath string
		triaxial    string
	)

	cmd := &cobra.Command{
		Use:   "generate <input.csv>",
		Short: "Generate WKT2 definitions from an IAU body parameter table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			var policy body.TriaxialPolicy
			switch triaxial {
			case "mean-radius":
				policy = body.MeanRadiusSphere
			case "native":
				policy = body.NativeTriaxial
			default:
				return fmt.Errorf("unknown triaxial policy %q (supported: mean-radius, native)", triaxial)
			}

			var catalog []projection.Conversion
			if catalogPath != "" {
				catalog, err = projection.LoadCatalog(catalogPath)
				if err != nil {
					return err
				}
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			records, err := csvdata.Load(in)
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			doc, err := crs.Generate(crs.Config{
				Policy:  policy,
				Catalog: catalog,
				Logger:  logger,
			}, records)
			if err != nil {
				return err
			}

			if splitDir != "" {
				if err := writeSplit(splitDir, doc); err != nil {
					return err
				}
				fmt.Printf("Wrote %d WKT files to %s\n", doc.Len(), splitDir)
				return nil
			}

			out, err := os.Create(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := doc.WriteTo(out); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("Wrote %d CRS definitions to %s\n", doc.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "result.wkts", "Aggregated output file")
	cmd.Flags().StringVar(&splitDir, "split-dir", "", "Write one <code>.wkt file per CRS into this directory")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML projection catalog override")
	cmd.Flags().StringVar(&triaxial, "triaxial", "mean-radius", "Triaxial interoperability policy: mean-radius, native")
	return cmd
}

// writeSplit writes one file per CRS, named by authority code, the layout
// external validators consume.
func writeSplit(dir string, doc *crs.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, e := range doc.Entries() {
		path := filepath.Join(dir, fmt.Sprintf("%d.wkt", e.Code))
		if err := os.WriteFile(path, []byte(e.WKT+"\n"), 0o644); err != nil {
			return err
		}
	}
	return nil
}
