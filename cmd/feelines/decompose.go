package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/fee-details-api/internal/application/billing"
	"github.com/jhoicas/fee-details-api/internal/application/dto"
	"github.com/jhoicas/fee-details-api/pkg/config"
	"github.com/jhoicas/fee-details-api/pkg/logger"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <snapshot.json>",
	Short: "Desglosa un snapshot de tarifa porcentual",
	Long: `Lee un snapshot con el mismo formato que POST /api/fee-detail-lines/preview
e imprime las líneas de detalle formateadas. Use "-" para leer de stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecompose,
}

var (
	decomposeCurrency string
	decomposeLocale   string
	decomposeOutput   string
)

func init() {
	rootCmd.AddCommand(decomposeCmd)

	decomposeCmd.Flags().StringVar(&decomposeCurrency, "currency", "", "moneda ISO 4217 (sobrescribe la del snapshot)")
	decomposeCmd.Flags().StringVar(&decomposeLocale, "locale", "", "locale BCP 47 (por defecto DISPLAY_LOCALE)")
	decomposeCmd.Flags().StringVarP(&decomposeOutput, "output", "o", outputTable, "formato de salida: table o json")
}

// decomposeOptions parámetros de una ejecución de decompose.
type decomposeOptions struct {
	Currency string
	Locale   string
	Output   string
}

func runDecompose(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	level := cfg.App.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   level,
		Service: "feelines",
		Output:  cmd.ErrOrStderr(),
	})

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("abrir snapshot: %w", err)
		}
		defer f.Close()
		in = f
	}

	uc := billing.NewFeeDetailsUseCase(nil, nil, nil, billing.DisplayConfig{
		Locale:   cfg.Display.Locale,
		Currency: cfg.Display.Currency,
	})
	opts := decomposeOptions{Currency: decomposeCurrency, Locale: decomposeLocale, Output: decomposeOutput}
	if err := decompose(uc, in, cmd.OutOrStdout(), opts); err != nil {
		log.Error().Err(err).Str("snapshot", args[0]).Msg("desglose fallido")
		return err
	}
	log.Debug().Str("snapshot", args[0]).Str("output", opts.Output).Msg("desglose generado")
	return nil
}

// decompose lee el snapshot de r, lo desglosa y escribe el resultado en w.
func decompose(uc *billing.FeeDetailsUseCase, r io.Reader, w io.Writer, opts decomposeOptions) error {
	output := strings.ToLower(strings.TrimSpace(opts.Output))
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("formato de salida %q no soportado (table|json)", opts.Output)
	}

	var req dto.PreviewFeeDetailLinesRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return fmt.Errorf("leer snapshot: %w", err)
	}
	if opts.Currency != "" {
		req.Currency = opts.Currency
	}
	if opts.Locale != "" {
		req.Locale = opts.Locale
	}

	res, err := uc.Preview(req)
	if err != nil {
		return err
	}

	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return writeTable(w, res)
}

func writeTable(w io.Writer, res *dto.FeeDetailLinesResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tQUANTITY\tUNIT\tTAXES\tTOTAL")
	fmt.Fprintln(tw, "----\t--------\t----\t-----\t-----")
	for _, l := range res.Lines {
		taxes := make([]string, 0, len(l.Taxes))
		for _, t := range l.Taxes {
			taxes = append(taxes, t.Display)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.Kind, l.Quantity, l.UnitValue, strings.Join(taxes, ", "), l.TotalValue)
	}
	return tw.Flush()
}
