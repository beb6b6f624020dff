package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hiveden/machinefacts/internal/app"
	"github.com/hiveden/machinefacts/internal/config"
	"github.com/hiveden/machinefacts/internal/logging"
	"github.com/hiveden/machinefacts/internal/macaddr"
	"github.com/hiveden/machinefacts/internal/netif"
	"github.com/hiveden/machinefacts/internal/report"
	"github.com/hiveden/machinefacts/internal/sysctl"
)

var machine *app.App

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "machinefacts",
		Short:         "Report facts about this Mac",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.GetViper(), configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			machine = app.New(cfg, logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/machinefacts/machinefacts.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().String("interfaces-plist", "", "Path to NetworkInterfaces.plist")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("interfaces_plist", rootCmd.PersistentFlags().Lookup("interfaces-plist"))

	macCmd := &cobra.Command{
		Use:   "mac",
		Short: "Work with hardware addresses",
	}
	macCmd.AddCommand(buildMACFormatCommand())
	macCmd.AddCommand(buildMACEqualCommand())

	rootCmd.AddCommand(buildShowCommand())
	rootCmd.AddCommand(buildInterfacesCommand())
	rootCmd.AddCommand(buildSysctlCommand())
	rootCmd.AddCommand(buildExportCommand())
	rootCmd.AddCommand(macCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the machine summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := machine.Device.Summary(cmd.Context())
			return report.Write(cmd.OutOrStdout(), s, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", report.FormatTable, "Output format (table, json, yaml)")

	return cmd
}

func buildInterfacesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "interfaces [role]",
		Short: "List network interfaces, or select the wifi, ethernet or bluetooth one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ifaces []netif.Interface
			if len(args) == 1 {
				f := machine.Device.Interface(cmd.Context(), args[0])
				if f.Err != nil {
					return f.Err
				}
				ifaces = []netif.Interface{f.Value}
			} else {
				ifaces = machine.Device.Interfaces(cmd.Context())
			}

			switch format {
			case report.FormatJSON:
				return report.JSON(cmd.OutOrStdout(), ifaces)
			case report.FormatYAML:
				return report.YAML(cmd.OutOrStdout(), ifaces)
			}
			return report.Interfaces(cmd.OutOrStdout(), ifaces)
		},
	}

	cmd.Flags().StringVar(&format, "format", report.FormatTable, "Output format (table, json, yaml)")

	return cmd
}

func buildSysctlCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "sysctl [name|path]",
		Short: "Query a sysctl attribute by name (hw.model) or key path (6.2)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sysctl.IsKind(kind) {
				return fmt.Errorf("unknown value type %q", kind)
			}
			path, err := machine.Sysctl.Lookup(args[0])
			if err != nil {
				return err
			}
			value, err := machine.Sysctl.Format(path, kind)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", sysctl.KindString, "Value type (string, int32, uint32, int64, uint64, hex)")

	return cmd
}

func buildMACFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format [address]...",
		Short: "Print addresses in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				fmt.Fprintln(cmd.OutOrStdout(), macaddr.Canonicalize(raw))
			}
			return nil
		},
	}
}

func buildMACEqualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal [address] [address]",
		Short: "Exit non-zero unless both addresses are the same",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := macaddr.New(args[0]), macaddr.New(args[1])
			if !a.Equal(b) {
				return fmt.Errorf("%s != %s", a, b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func buildExportCommand() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the machine summary to a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				return fmt.Errorf("file path must be specified with --file")
			}
			return report.WriteFile(filePath, machine.Device.Summary(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "File path to export the summary to")

	return cmd
}
