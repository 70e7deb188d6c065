package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/treesize"
	"github.com/replicatedhq/treesize/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
// Every call gets its own viper instance, so commands built in the same
// process never see each other's flags.
func RootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Rebuild a directory tree from a cd/ls transcript and report on its sizes",
		Long: `treesize replays a terminal transcript of "$ cd" and "$ ls" commands,
rebuilds the directory tree it walked through and answers size questions
about it.

A transcript looks like:

  $ cd /
  $ ls
  dir a
  14848514 b.txt
  $ cd a
  $ ls
  29116 f
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			version.Init()
			return initConfig(v)
		},
	}

	cmd.PersistentFlags().StringP(constants.ConfigFlag, "c", "", fmt.Sprintf("config file (default is %s/%s.yaml or %s/%s.yaml)", constants.UserConfigPath, constants.ConfigName, constants.SystemConfigPath, constants.ConfigName))
	cmd.PersistentFlags().String(constants.LogLevelFlag, "off", "Log level: debug, info, warn, error or off")
	cmd.PersistentFlags().String(constants.LogFormatFlag, "logfmt", "Log format: logfmt or json")
	cmd.PersistentFlags().String(constants.DebugLogFlag, "", "Also write a debug level log to this file")
	cmd.PersistentFlags().String(constants.TranscriptFlag, constants.StdinPath, "Transcript to read when none is given as an argument, - for stdin")
	cmd.PersistentFlags().String(constants.ConflictPolicyFlag, "replace", "What a listing does to an existing entry of the same name: replace, merge or strict")
	cmd.PersistentFlags().StringP(constants.OutputFlag, "o", "text", "Output format: text, json, yaml or template")
	cmd.PersistentFlags().String(constants.TemplateFlag, "", "Go template (with sprig functions) used by --output=template")
	cmd.PersistentFlags().String(constants.OutFlag, constants.StdoutPath, "File to write results to, - for stdout")
	cmd.PersistentFlags().Bool(constants.HumanFlag, false, "Print sizes in human readable units")
	cmd.PersistentFlags().Bool(constants.NoColorFlag, false, "Disable colored messages")
	cmd.PersistentFlags().Bool(constants.NoOSExitFlag, false, "Return errors instead of exiting the process")
	_ = cmd.PersistentFlags().MarkHidden(constants.NoOSExitFlag)

	_ = v.BindPFlags(cmd.PersistentFlags())
	v.SetEnvPrefix(constants.AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(Report(v))
	cmd.AddCommand(Tree(v))
	cmd.AddCommand(Dirs(v))
	cmd.AddCommand(Version())
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in a config file if one is given or found.
func initConfig(v *viper.Viper) error {
	if cfgFile := v.GetString(constants.ConfigFlag); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return errors.Wrapf(v.ReadInConfig(), "read config file %q", cfgFile)
	}

	v.SetConfigName(constants.ConfigName)
	v.AddConfigPath(constants.UserConfigPath)
	v.AddConfigPath(constants.SystemConfigPath)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrap(err, "read config file")
	}
	return nil
}

type operation func(app *treesize.App, ctx context.Context, path string) error

func runOperation(v *viper.Viper, args []string, op operation) error {
	app, err := treesize.Get(v)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	ctx, cancel := contextWithSignals()
	defer cancel()

	return app.RunAndMaybeExit(ctx, path, func(ctx context.Context, path string) error {
		return op(app, ctx, path)
	})
}

func contextWithSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-signalChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signalChan)
	}()
	return ctx, cancel
}
