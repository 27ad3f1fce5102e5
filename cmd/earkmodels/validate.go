package main

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meemoo/earkmodels"
	"github.com/meemoo/earkmodels/dcschema"
	"github.com/meemoo/earkmodels/mods"
	"github.com/meemoo/earkmodels/premis"
	"github.com/meemoo/earkmodels/sip"
)

var errInvalid = errors.New("validation failed")

// fileReport is one entry of the machine-readable output.
type fileReport struct {
	Source string            `json:"source"`
	Valid  bool              `json:"valid"`
	Issues earkmodels.Issues `json:"issues,omitempty"`
}

func validators() map[string]func(path string) error {
	return map[string]func(path string) error{
		"premis": func(path string) error {
			_, err := premis.ParseFile(path)
			return err
		},
		"mods": func(path string) error {
			_, err := mods.ParseFile(path)
			return err
		},
		"dcschema": func(path string) error {
			_, err := dcschema.ParseFile(path)
			return err
		},
	}
}

func newValidateCmd(cfg *config, logger func() *zap.Logger) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate metadata documents against one profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = cfg.Format
			}
			validate, ok := validators()[format]
			if !ok {
				return fmt.Errorf("unknown format %q (premis, mods, dcschema)", format)
			}
			log := logger()

			reports := make([]fileReport, 0, len(args))
			failed := 0
			for _, path := range args {
				err := validate(path)
				rep := fileReport{Source: path, Valid: err == nil}
				if err != nil {
					failed++
					if iss, ok := earkmodels.AsIssues(err); ok {
						rep.Issues = iss
					} else {
						rep.Issues = earkmodels.Issues{{Code: "error", Message: err.Error(), Source: path}}
					}
					log.Debug("document invalid", zap.String("path", path), zap.Int("issues", len(rep.Issues)))
				}
				reports = append(reports, rep)
			}

			if err := writeReports(cmd.OutOrStdout(), cfg.Report, reports); err != nil {
				return err
			}
			log.Info("validation done",
				zap.String("format", format),
				zap.Int("files", len(args)),
				zap.Int("failed", failed))
			if failed > 0 {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "document profile: premis, mods or dcschema")
	return cmd
}

func newSIPCmd(cfg *config, logger func() *zap.Logger) *cobra.Command {
	var descriptive string
	cmd := &cobra.Command{
		Use:   "sip [dir]",
		Short: "Validate a whole E-ARK SIP directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			var err error
			switch descriptive {
			case "dcschema":
				_, err = sip.FromPath(dir, dcschema.ParseFile)
			case "mods":
				_, err = sip.FromPath(dir, mods.ParseFile)
			default:
				return fmt.Errorf("unknown descriptive profile %q (dcschema, mods)", descriptive)
			}

			rep := fileReport{Source: dir, Valid: err == nil}
			if err != nil {
				if iss, ok := earkmodels.AsIssues(err); ok {
					rep.Issues = iss
				} else {
					return err
				}
			}
			if werr := writeReports(cmd.OutOrStdout(), cfg.Report, []fileReport{rep}); werr != nil {
				return werr
			}
			logger().Info("sip validation done",
				zap.String("dir", dir),
				zap.Bool("valid", rep.Valid),
				zap.Int("issues", len(rep.Issues)))
			if !rep.Valid {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&descriptive, "descriptive", "d", "dcschema", "descriptive profile: dcschema or mods")
	return cmd
}

func writeReports(w io.Writer, style string, reports []fileReport) error {
	switch style {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "", "text":
		for _, rep := range reports {
			if rep.Valid {
				fmt.Fprintf(w, "ok\t%s\n", rep.Source)
				continue
			}
			fmt.Fprintf(w, "FAIL\t%s\n", rep.Source)
			for _, it := range rep.Issues {
				fmt.Fprintf(w, "  %s\t%s", it.Code, it.Path)
				if it.Hint != "" {
					fmt.Fprintf(w, "\t(%s)", it.Hint)
				}
				fmt.Fprintln(w)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown report style %q (text, json)", style)
	}
}
