package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "feelines",
	Short: "Desglose de tarifas porcentuales",
	Long: `feelines desglosa el snapshot de una tarifa porcentual en sus líneas
de detalle (unidades gratis, unidades pagadas, cargo fijo y ajuste mínimo/máximo).

Ejemplos:
  feelines decompose snapshot.json
  feelines decompose snapshot.json --locale es-CO --output json
  cat snapshot.json | feelines decompose -`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz y termina el proceso si falla.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")
}
